package clickplc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token    string
		expected AddressRange
	}{
		{"df1", AddressRange{DF, 1, 1}},
		{"df1-df20", AddressRange{DF, 1, 20}},
		{"DF1-DF500", AddressRange{DF, 1, 500}},
		{"y101", AddressRange{Y, 101, 101}},
		{"y101-y316", AddressRange{Y, 101, 316}},
		{"x001-x816", AddressRange{X, 1, 816}},
		{"c1-c2000", AddressRange{C, 1, 2000}},
		{"ds4500", AddressRange{DS, 4500, 4500}},
		{"ctd1-ctd250", AddressRange{CTD, 1, 250}},
		{" x016 ", AddressRange{X, 16, 16}},
	}
	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			r, err := Parse(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, r)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		token    string
		expected error
	}{
		{"", ErrInvalidAddress},
		{"df", ErrInvalidAddress},
		{"123", ErrInvalidAddress},
		{"df0", ErrInvalidAddress},
		{"df501", ErrInvalidAddress},
		{"x999", ErrInvalidAddress},  // above the 816 bound
		{"x17", ErrInvalidAddress},   // in the group gap
		{"x100", ErrInvalidAddress},  // *00 does not exist
		{"c3-c1", ErrInvalidAddress}, // end before start
		{"df1-ds5", ErrInvalidAddress},
		{"df1-dfx", ErrInvalidAddress},
		{"foo1", ErrUnsupportedCategory},
		{"t1", ErrUnsupportedCategory},
	}
	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			_, err := Parse(tc.token)
			require.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestParseRoundtrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cat := Category(rapid.IntRange(0, len(descriptors)-1).Draw(t, "category"))
		start := validIndex(t, cat, 1)
		end := validIndex(t, cat, start)
		r := AddressRange{Category: cat, Start: start, End: end}

		parsed, err := Parse(r.String())
		if err != nil {
			t.Fatalf("parsing %q: %+v", r.String(), err)
		}
		if !cmp.Equal(r, parsed) {
			t.Errorf("roundtrip mismatch: %s", cmp.Diff(r, parsed))
		}
	})
}

// validIndex draws an index in [from, max] that exists in the category's
// numbering.
func validIndex(t *rapid.T, c Category, from int) int {
	return rapid.IntRange(from, descriptors[c].max).
		Filter(func(i int) bool { return c.valid(i) }).
		Draw(t, "index")
}

func TestRangeLen(t *testing.T) {
	tests := []struct {
		token    string
		expected int
	}{
		{"df1", 1},
		{"df1-df20", 20},
		{"y101-y316", 48}, // group-aware, not 216
		{"x001-x816", 144},
		{"y114-y201", 4},
		{"c1-c100", 100},
	}
	for _, tc := range tests {
		r, err := Parse(tc.token)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, r.Len(), tc.token)
		assert.Len(t, r.Labels(), tc.expected, tc.token)
	}
}

func TestRangeLabels(t *testing.T) {
	r, err := Parse("y114-y202")
	require.NoError(t, err)
	expected := []string{"y114", "y115", "y116", "y201", "y202"}
	if !cmp.Equal(expected, r.Labels()) {
		t.Errorf("labels mismatch: %s", cmp.Diff(expected, r.Labels()))
	}

	r, err = Parse("df9-df11")
	require.NoError(t, err)
	assert.Equal(t, []string{"df9", "df10", "df11"}, r.Labels())
}
