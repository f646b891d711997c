package hhts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTrips(t *testing.T) {
	tr := testTransformer(t)

	sdrts := rawFrame(tripSdrtsCols,
		// Online diary trip in a household vehicle.
		map[string]string{
			"tripid": "10", "tripid_linked": "10", "location_tripid": "77",
			"personid": "101", "hhid": "1", "data_source": "2",
			"mode1": "6", "toll_no": "1", "o_purpose": "1",
			"origin_address": "123 Main St|Apt 2",
			"origin_lat":     "32.7157", "origin_lng": "-117.1611",
			"h_complete_weekdays": "5", "travelers_hh": "2",
		},
		// rMove rideshare trip.
		map[string]string{
			"tripid": "11", "tripid_linked": "11", "location_tripid": "11",
			"personid": "101", "hhid": "1", "data_source": "1",
			"mode1": "37", "taxitype": "1", "taxi_cost_dk": "1",
		},
	)
	at := rawFrame(tripAtCols,
		// Intercept bus trip; the extract has no location_tripid.
		map[string]string{
			"tripid": "501", "tripid_linked": "500",
			"personid": "901", "hhid": "900",
			"mode1": "23", "bustype": "3", "bus_cost_dk": "0",
		},
	)

	got, err := buildTrips(sdrts, at, tr)
	require.NoError(t, err)
	assert.Equal(t, "trips", got.Name)
	assert.Equal(t, tripColumns, got.F.Columns())
	require.Equal(t, 3, got.F.Len())

	online := 0
	assert.Equal(t, "Online", got.F.Get(online, "data_source"))
	// Online diaries carry no location trace.
	assert.Equal(t, "0", got.F.Get(online, "trip_id_location"))
	assert.Equal(t, "123 Main StApt 2", got.F.Get(online, "origin_address"))
	assert.Equal(t, "Home", got.F.Get(online, "origin_purpose"))
	assert.Equal(t, notApplicable, got.F.Get(online, "origin_purpose_other_specify"))
	// The vehicle was on a toll question path; the instrument asked the
	// negated question, so code 1 means No.
	assert.Equal(t, "No", got.F.Get(online, "toll_road"))
	assert.Equal(t, missing, got.F.Get(online, "toll_road_express"))
	assert.Equal(t, notApplicable, got.F.Get(online, "mode_transit_access"))
	assert.Equal(t, missing, got.F.Get(online, "driver"))
	assert.Equal(t, notApplicable, got.F.Get(online, "parking_pay_type"))
	assert.Equal(t, notApplicable, got.F.Get(online, "taxi_pay_type"))
	assert.Equal(t, notApplicable, got.F.Get(online, "revised_count"))
	assert.Equal(t, "1", got.F.Get(online, "weight_person_trip"))
	assert.Equal(t, "0.5", got.F.Get(online, "weight_trip"))
	assert.True(t, strings.HasPrefix(got.F.Get(online, "origin_shape"), "POINT"))
	assert.Equal(t, "", got.F.Get(online, "destination_shape"))

	rideshare := 1
	assert.Equal(t, "rMove", got.F.Get(rideshare, "data_source"))
	assert.Equal(t, notApplicable, got.F.Get(rideshare, "origin_name"))
	assert.Equal(t, notApplicable, got.F.Get(rideshare, "toll_road"))
	assert.Equal(t, "I paid the fare myself (no reimbursement)", got.F.Get(rideshare, "taxi_pay_type"))
	assert.Equal(t, "Yes", got.F.Get(rideshare, "taxi_cost_dk"))
	// Taxis are not in the drive-and-park group.
	assert.Equal(t, notApplicable, got.F.Get(rideshare, "driver"))
	assert.Equal(t, notApplicable, got.F.Get(rideshare, "parking_location"))
	assert.Equal(t, notApplicable, got.F.Get(rideshare, "airplane_cost_dk"))
	// Ineligible household: no weights.
	assert.Equal(t, "", got.F.Get(rideshare, "weight_trip"))
	assert.Equal(t, "", got.F.Get(rideshare, "weight_person_trip"))

	bus := 2
	// AT trips identify locations by the linked trip and are rMove.
	assert.Equal(t, "500", got.F.Get(bus, "trip_id_location"))
	assert.Equal(t, "rMove", got.F.Get(bus, "data_source"))
	assert.Equal(t, notApplicable, got.F.Get(bus, "completed_household_survey"))
	assert.Equal(t, "Cash, credit card, or ticket(s)", got.F.Get(bus, "bus_pay_type"))
	assert.Equal(t, "No", got.F.Get(bus, "bus_cost_dk"))
	// Bus is absent from the transit access group, and the rail group
	// repeats the bus group, both inherited from the delivered coding.
	assert.Equal(t, notApplicable, got.F.Get(bus, "mode_transit_access"))
	assert.Equal(t, missing, got.F.Get(bus, "rail_pay_type"))
	assert.Equal(t, notApplicable, got.F.Get(bus, "rail_cost_dk"))
}
