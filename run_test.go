package hhts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunVehicles(t *testing.T) {
	sdrtsDir := testTempdir(t)
	atDir := testTempdir(t)

	header := strings.Join(vehicleCols, ",")
	writeExtract(t, filepath.Join(sdrtsDir, sdrtsFiles["vehicles"]), header+"\n"+
		"7,1,2010,Toyota,Prius,3,1,2,1,50,0\n"+
		"7,2,2005,Ford,F-150,1,1,1,2,,\n")
	// Short rows are padded out to the header, matching the ragged
	// trailing columns in the real extracts.
	writeExtract(t, filepath.Join(atDir, atFiles["vehicles"]), header+"\n"+
		"9,1,2016,Tesla,Model S,4,2\n")

	tables, err := Run(&RunOpts{
		SdrtsDir:    sdrtsDir,
		AtDir:       atDir,
		Tables:      []string{"vehicles"},
		Frequencies: true,
	})
	require.NoError(t, err)
	require.Len(t, tables, 2)

	vehicles := tables[0]
	require.Equal(t, "vehicles", vehicles.Name)
	assert.Equal(t, vehicleColumns, vehicles.F.Columns())
	require.Equal(t, 3, vehicles.F.Len())

	assert.Equal(t, "1", vehicles.F.Get(0, "vehicle_id"))
	assert.Equal(t, "2", vehicles.F.Get(1, "vehicle_id"))
	assert.Equal(t, "3", vehicles.F.Get(2, "vehicle_id"))

	assert.Equal(t, "Hybrid", vehicles.F.Get(0, "fuel_type"))
	assert.Equal(t, "Own", vehicles.F.Get(0, "how_obtained"))
	assert.Equal(t, "Yes", vehicles.F.Get(0, "toll_transponder"))
	assert.Equal(t, "No", vehicles.F.Get(0, "residence_parking_cost_unknown"))

	assert.Equal(t, "Gas", vehicles.F.Get(1, "fuel_type"))
	assert.Equal(t, "Not Applicable", vehicles.F.Get(1, "residence_parking_cost_unknown"))

	assert.Equal(t, "Electric", vehicles.F.Get(2, "fuel_type"))
	assert.Equal(t, "Lease", vehicles.F.Get(2, "how_obtained"))
	assert.Equal(t, "", vehicles.F.Get(2, "toll_transponder"))

	freqs := tables[1]
	require.Equal(t, "frequencies", freqs.Name)

	var fuelCats []string
	fuelCounts := make(map[string]string)
	for i := 0; i < freqs.F.Len(); i++ {
		if freqs.F.Get(i, "column_name") != "fuel_type" {
			continue
		}
		require.Equal(t, "vehicles", freqs.F.Get(i, "table_name"))
		fuelCats = append(fuelCats, freqs.F.Get(i, "category"))
		fuelCounts[freqs.F.Get(i, "category")] = freqs.F.Get(i, "count")
	}
	assert.Equal(t, []string{"Gas", "Diesel", "Hybrid", "Electric", "Flex Fuel", "Other"}, fuelCats)
	assert.Equal(t, map[string]string{
		"Gas":       "1",
		"Diesel":    "0",
		"Hybrid":    "1",
		"Electric":  "1",
		"Flex Fuel": "0",
		"Other":     "0",
	}, fuelCounts)
}

func TestRunUnknownTable(t *testing.T) {
	_, err := Run(&RunOpts{Tables: []string{"bogus"}})
	require.ErrorIs(t, err, ErrUnknownColumn)
	assert.Contains(t, err.Error(), "bogus")
}

func writeExtract(t *testing.T, path string, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}
