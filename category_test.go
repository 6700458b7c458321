package clickplc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Offsets from the Click Modbus addressing table.
func TestOffset(t *testing.T) {
	tests := []struct {
		address  string
		expected uint16
	}{
		{"x001", 0},
		{"x016", 15},
		{"x101", 32}, // each hundred starts a 32-coil stride
		{"x316", 32*3 + 15},
		{"x816", 271},
		{"y001", 8192},
		{"y316", 8192 + 32*3 + 15},
		{"c1", 16384},
		{"c2000", 16384 + 1999},
		{"ds1", 0},
		{"ds4500", 4499},
		{"df1", 28672},
		{"df2", 28674}, // two registers per DF
		{"df500", 28672 + 2*499},
		{"ctd1", 49152},
		{"ctd250", 49152 + 2*249},
	}
	for _, tc := range tests {
		r, err := Parse(tc.address)
		require.NoError(t, err, tc.address)
		assert.Equal(t, tc.expected, r.Category.offset(r.Start), tc.address)
	}
}

func TestNext(t *testing.T) {
	assert.Equal(t, 2, X.next(1))
	assert.Equal(t, 101, X.next(16), "x016 is followed by x101")
	assert.Equal(t, 201, Y.next(116))
	assert.Equal(t, 17, C.next(16), "flat categories have no gaps")
	assert.Equal(t, 2, DF.next(1))
}

func TestLookup(t *testing.T) {
	for c, d := range descriptors {
		got, err := Lookup(d.tag)
		require.NoError(t, err)
		assert.Equal(t, Category(c), got)
	}
	_, err := Lookup("sd")
	require.ErrorIs(t, err, ErrUnsupportedCategory)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "x001", X.label(1))
	assert.Equal(t, "y316", Y.label(316))
	assert.Equal(t, "c1", C.label(1))
	assert.Equal(t, "df20", DF.label(20))
}
