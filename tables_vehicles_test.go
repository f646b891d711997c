package hhts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVehicles(t *testing.T) {
	sdrts := rawFrame(vehicleCols,
		map[string]string{"hhid": "7", "vehnum": "1", "year": "2010", "make": "Toyota",
			"model": "Corolla", "fuel": "1", "obtain": "1", "tolltransp": "1",
			"respark_pass": "1", "respark_pass_dontknow_cost": "0"},
		map[string]string{"hhid": "3", "vehnum": "1", "fuel": "2", "obtain": "2",
			"tolltransp": "2", "respark_pass": "3"},
		map[string]string{"hhid": "7", "vehnum": "2", "fuel": "4", "obtain": "1",
			"respark_pass": "2"},
	)
	at := rawFrame(vehicleCols,
		map[string]string{"hhid": "900", "vehnum": "1", "fuel": "5", "obtain": "3",
			"tolltransp": "1", "respark_pass": "4", "respark_pass_dontknow_cost": "1"},
	)

	got, err := buildVehicles(sdrts, at)
	require.NoError(t, err)
	assert.Equal(t, "vehicles", got.Name)
	assert.Equal(t, vehicleColumns, got.F.Columns())
	require.Equal(t, 4, got.F.Len())

	// Surrogate keys number household/vehicle pairs in the order first
	// seen, so household 7's second vehicle comes after household 3.
	assert.Equal(t, "1", got.F.Get(0, "vehicle_id"))
	assert.Equal(t, "2", got.F.Get(1, "vehicle_id"))
	assert.Equal(t, "3", got.F.Get(2, "vehicle_id"))
	assert.Equal(t, "4", got.F.Get(3, "vehicle_id"))

	assert.Equal(t, "Gas", got.F.Get(0, "fuel_type"))
	assert.Equal(t, "No", got.F.Get(0, "toll_transponder"))
	assert.Equal(t, "No", got.F.Get(0, "residence_parking_cost_unknown"))
	assert.Equal(t, "Yes", got.F.Get(1, "toll_transponder"))
	assert.Equal(t, "Electric", got.F.Get(2, "fuel_type"))
	assert.Equal(t, "Flex Fuel", got.F.Get(3, "fuel_type"))
	assert.Equal(t, "Employer/Institutional Car", got.F.Get(3, "how_obtained"))
	assert.Equal(t, "Yes", got.F.Get(3, "residence_parking_cost_unknown"))

	// These columns have no declared null label and keep their nulls.
	assert.Equal(t, "", got.F.Get(2, "toll_transponder"))
	// The parking cost follow-up does declare one.
	assert.Equal(t, notApplicable, got.F.Get(1, "residence_parking_cost_unknown"))
}
