package tagfile

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grid-x/clickplc"
)

const export = `Address,Data Type,Nickname,Initial Value,Retentive,Address Comment
X001,BIT,start_button,,No,panel start
Y101,BIT,pump_run,,No,
C1,BIT,,,No,unnamed relay
DF1,FLOAT,tank_level,0.0,Yes,
DS3,INT,batch_size,0,Yes,
CTD2,INT2,total_count,,Yes,
T1,BIT,cycle_timer,,No,unsupported category
`

func TestParse(t *testing.T) {
	entries, err := Parse(strings.NewReader(export))
	require.NoError(t, err)

	expected := []clickplc.TagEntry{
		{Nickname: "start_button", Category: clickplc.X, Index: 1},
		{Nickname: "pump_run", Category: clickplc.Y, Index: 101},
		{Nickname: "tank_level", Category: clickplc.DF, Index: 1},
		{Nickname: "batch_size", Category: clickplc.DS, Index: 3},
		{Nickname: "total_count", Category: clickplc.CTD, Index: 2},
	}
	if !cmp.Equal(expected, entries) {
		t.Errorf("entries mismatch: %s", cmp.Diff(expected, entries))
	}
}

func TestParseFeedsTagIndex(t *testing.T) {
	entries, err := Parse(strings.NewReader(export))
	require.NoError(t, err)
	idx, err := clickplc.NewTagIndex(entries)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"start_button", "pump_run", "tank_level", "batch_size", "total_count"},
		idx.All())
}

func TestParseBadAddress(t *testing.T) {
	_, err := Parse(strings.NewReader("Address,Nickname\nDF999,too_far\n"))
	require.ErrorIs(t, err, clickplc.ErrInvalidAddress)
}

func TestParseMissingColumns(t *testing.T) {
	_, err := Parse(strings.NewReader("Device,Name\nplc,one\n"))
	require.Error(t, err)
}

func TestParseShortRows(t *testing.T) {
	entries, err := Parse(strings.NewReader("Address,Data Type,Nickname\nDF2,FLOAT,setpoint\nX001\n"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "setpoint", entries[0].Nickname)
}
