package hhts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWideToLong(t *testing.T) {
	f := NewFrame("hhid", "mode_1", "poe_1", "mode_2", "poe_2")
	f.AppendRow("1", "", "", "3", "2")
	f.AppendRow("2", "1", "", "", "")
	f.AppendRow("3", "", "", "", "")

	long := wideToLong(f, []string{"hhid"}, []string{"mode", "poe"}, 2, "trip_id")

	assert.Equal(t, []string{"hhid", "trip_id", "mode", "poe"}, long.Columns())
	// Household 1 only used the second slot and keeps its occurrence
	// number; household 3 never answered and produces no rows.
	assert.Equal(t, 2, long.Len())
	assert.Equal(t, "1", long.Get(0, "hhid"))
	assert.Equal(t, "2", long.Get(0, "trip_id"))
	assert.Equal(t, "3", long.Get(0, "mode"))
	assert.Equal(t, "2", long.Get(0, "poe"))
	assert.Equal(t, "2", long.Get(1, "hhid"))
	assert.Equal(t, "1", long.Get(1, "trip_id"))
	assert.Equal(t, "", long.Get(1, "poe"))
}
