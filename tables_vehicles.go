package hhts

// Both vehicle extracts carry the same columns, so the merge needs no
// back-fills.
var vehicleCols = []string{
	"hhid", "vehnum", "year", "make", "model", "fuel", "obtain",
	"tolltransp", "respark_pass", "respark_pass_monthly_cost",
	"respark_pass_dontknow_cost",
}

var vehicleMappings = map[string]codeMapping{
	"fuel": {pairs: []codePair{
		{"1", "Gas"},
		{"2", "Diesel"},
		{"3", "Hybrid"},
		{"4", "Electric"},
		{"5", "Flex Fuel"},
		{"97", "Other"},
	}},
	"obtain": {pairs: []codePair{
		{"1", "Own"},
		{"2", "Lease"},
		{"3", "Employer/Institutional Car"},
		{"97", "Other"},
	}},
	"tolltransp": {pairs: []codePair{
		{"1", "No"},
		{"2", "Yes"},
	}},
	"respark_pass": {pairs: []codePair{
		{"1", "Yes, vehicle has permit for parking at/near residence"},
		{"2", "No pass needed - typically park at residence"},
		{"3", "No pass needed - typically park on street"},
		{"4", "No pass needed - typically park elsewhere"},
	}},
	"respark_pass_dontknow_cost": {missing: notApplicable, pairs: []codePair{
		{"0", "No"},
		{"1", "Yes"},
	}},
}

var vehicleRenames = [][2]string{
	{"hhid", "household_id"},
	{"vehnum", "vehicle_number"},
	{"fuel", "fuel_type"},
	{"obtain", "how_obtained"},
	{"tolltransp", "toll_transponder"},
	{"respark_pass", "residence_parking_pass"},
	{"respark_pass_monthly_cost", "residence_parking_monthly_cost"},
	{"respark_pass_dontknow_cost", "residence_parking_cost_unknown"},
}

var vehicleColumns = []string{
	"vehicle_id", "household_id", "vehicle_number", "year", "make",
	"model", "fuel_type", "how_obtained", "toll_transponder",
	"residence_parking_pass", "residence_parking_cost_unknown",
	"residence_parking_monthly_cost",
}

// buildVehicles produces the household vehicle list.
func buildVehicles(sdrtsRaw, atRaw *Frame) (*Table, error) {
	sdrts, err := sdrtsRaw.Select(vehicleCols...)
	if err != nil {
		return nil, err
	}
	at, err := atRaw.Select(vehicleCols...)
	if err != nil {
		return nil, err
	}

	df, err := reconcile(sdrts, at, nil, nil)
	if err != nil {
		return nil, err
	}

	b := newBatch(df)
	if err := applyMappings(b, vehicleMappings); err != nil {
		return nil, err
	}

	groupKey(df, "vehicle_id", "hhid", "vehnum")

	if err := renameAll(b, vehicleRenames); err != nil {
		return nil, err
	}
	return finish("vehicles", b, vehicleColumns)
}
