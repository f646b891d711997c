package hhts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBorderTrips(t *testing.T) {
	cols := borderCols()
	sdrts := rawFrame(cols,
		map[string]string{
			"hhid":              "1",
			"border_mode_2":     "1",
			"border_poe_2":      "2",
			"border_purpose_2":  "3",
			"border_duration_2": "1",
			"border_party_2":    "2",
			// slot 3 was only partially answered and must not survive
			"border_mode_3": "1",
		},
		map[string]string{"hhid": "2"},
	)
	at := rawFrame(cols,
		map[string]string{
			"hhid":              "900",
			"border_mode_1":     "4",
			"border_poe_1":      "1",
			"border_purpose_1":  "2",
			"border_duration_1": "2",
			"border_party_1":    "1",
		},
	)

	got, err := buildBorderTrips(sdrts, at)
	require.NoError(t, err)
	assert.Equal(t, "border_trips", got.Name)
	assert.Equal(t, borderColumns, got.F.Columns())
	require.Equal(t, 2, got.F.Len())

	assert.Equal(t, "0", got.F.Get(0, "border_trip_id"))
	assert.Equal(t, "1", got.F.Get(0, "household_id"))
	// The occurrence number survives, so a household that only filled
	// slot 2 keeps trip 2.
	assert.Equal(t, "2", got.F.Get(0, "trip_id"))
	assert.Equal(t, "My own vehicle (or motorcycle)", got.F.Get(0, "mode"))
	assert.Equal(t, "San Ysidro (I-5/I-805) Port of Entry", got.F.Get(0, "port_of_entry"))
	assert.Equal(t, "Leisure/recreation/vacation", got.F.Get(0, "purpose"))
	assert.Equal(t, "Less than 1 day", got.F.Get(0, "duration"))
	assert.Equal(t, "2 persons total", got.F.Get(0, "party_size"))

	assert.Equal(t, "1", got.F.Get(1, "border_trip_id"))
	assert.Equal(t, "900", got.F.Get(1, "household_id"))
	assert.Equal(t, "1", got.F.Get(1, "trip_id"))
	assert.Equal(t, "Walking (or biking)", got.F.Get(1, "mode"))
}
