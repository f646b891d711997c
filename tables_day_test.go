package hhts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDay(t *testing.T) {
	sdrts := rawFrame(daySdrtsCols,
		// Online diary day where the trip count contradicts the
		// reported indicator.
		map[string]string{
			"personid": "11", "hhid": "1", "daynum": "1", "data_source": "2",
			"trips_yesno": "2", "num_trips": "3", "loc_start": "1",
		},
		// Online diary day with no travel and no stated reason.
		map[string]string{
			"personid": "11", "hhid": "1", "daynum": "2", "data_source": "2",
			"num_trips": "0",
		},
	)
	at := rawFrame(dayAtCols,
		map[string]string{
			"personid": "9001", "hhid": "900", "daynum": "1",
			"num_trips": "2", "toll_no": "0",
		},
	)

	got, err := buildDay(sdrts, at)
	require.NoError(t, err)
	assert.Equal(t, "day", got.Name)
	assert.Equal(t, dayColumns, got.F.Columns())
	require.Equal(t, 3, got.F.Len())

	// Keys number the merged rows in output order.
	assert.Equal(t, "0", got.F.Get(0, "day_id"))
	assert.Equal(t, "2", got.F.Get(2, "day_id"))

	// The trip count wins over the reported yes/no.
	assert.Equal(t, "Yes", got.F.Get(0, "made_trips"))
	assert.Equal(t, notApplicable, got.F.Get(0, "no_trips_reason_1"))
	assert.Equal(t, "Home", got.F.Get(0, "start_location"))
	assert.Equal(t, notApplicable, got.F.Get(0, "start_location_other"))

	assert.Equal(t, "No", got.F.Get(1, "made_trips"))
	assert.Equal(t, missing, got.F.Get(1, "no_trips_reason_1"))
	// Online days with no stated start location read as Missing.
	assert.Equal(t, missing, got.F.Get(1, "start_location"))

	// The AT extract is rMove only: the online location questions do
	// not apply and the back-filled household completion resolves.
	assert.Equal(t, "rMove", got.F.Get(2, "data_source"))
	assert.Equal(t, notApplicable, got.F.Get(2, "completed_household_survey"))
	assert.Equal(t, notApplicable, got.F.Get(2, "start_location"))
	assert.Equal(t, "Yes", got.F.Get(2, "made_trips"))
	// Negated toll question: code 0 means Yes.
	assert.Equal(t, "Yes", got.F.Get(2, "toll_road"))
}
