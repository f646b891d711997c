package hhts

import "strconv"

var borderStubs = []string{
	"border_mode", "border_poe", "border_purpose", "border_duration",
	"border_party",
}

func borderCols() []string {
	cols := []string{"hhid"}
	for _, stub := range borderStubs {
		for i := 1; i <= 4; i++ {
			cols = append(cols, stub+"_"+strconv.Itoa(i))
		}
	}
	return cols
}

var borderMappings = map[string]codeMapping{
	"border_mode": {pairs: []codePair{
		{"1", "My own vehicle (or motorcycle)"},
		{"2", "Other vehicle (e.g., rental, carshare, taxi, work car, friends)"},
		{"3", "Bus/shuttle"},
		{"4", "Walking (or biking)"},
		{"5", "Airplane (or helicopter)"},
		{"97", "Other way of traveling"},
	}},
	"border_poe": {pairs: []codePair{
		{"1", "Otay Mesa (SR-905) Port of Entry"},
		{"2", "San Ysidro (I-5/I-805) Port of Entry"},
		{"3", "Tecate (SR 188) Port of Entry"},
		{"4", "Cross-border Terminal, Tijuana Intl Airport (pedestrian only)"},
		{"97", "Other"},
	}},
	"border_purpose": {pairs: []codePair{
		{"1", "Drop-off/pick-up someone (e.g., at Tijuana Intl Airport)"},
		{"2", "Social (visit friends/family)"},
		{"3", "Leisure/recreation/vacation"},
		{"4", "Work/business-related"},
		{"5", "Personal business (e.g., medical appointment)"},
		{"97", "Other"},
	}},
	"border_duration": {pairs: []codePair{
		{"1", "Less than 1 day"},
		{"2", "1-2 days"},
		{"3", "3-5 days"},
		{"4", "6-10 days"},
		{"5", "More than 10 days"},
	}},
	"border_party": {pairs: []codePair{
		{"1", "1 (I traveled alone)"},
		{"2", "2 persons total"},
		{"3", "3 persons total"},
		{"4", "4 persons total"},
		{"5", "5 or more persons total (including me)"},
	}},
}

var borderColumns = []string{
	"border_trip_id", "household_id", "trip_id", "mode", "port_of_entry",
	"purpose", "duration", "party_size",
}

// buildBorderTrips reshapes the per-household cross border slots into
// one row per trip. Placeholder occurrences stay in the wide format
// whether or not a trip happened, so empty occurrences are dropped
// before the surrogate key is assigned.
func buildBorderTrips(sdrtsRaw, atRaw *Frame) (*Table, error) {
	cols := borderCols()
	sdrts, err := sdrtsRaw.Select(cols...)
	if err != nil {
		return nil, err
	}
	at, err := atRaw.Select(cols...)
	if err != nil {
		return nil, err
	}

	df, err := reconcile(sdrts, at, nil, nil)
	if err != nil {
		return nil, err
	}

	long := wideToLong(df, []string{"hhid"}, borderStubs, 4, "trip_id")

	b := newBatch(long)
	if err := applyMappings(b, borderMappings); err != nil {
		return nil, err
	}

	// Drop any occurrence that is not fully answered, matching the
	// delivered table.
	long.Filter(func(i int) bool {
		for _, stub := range borderStubs {
			if long.Get(i, stub) == "" {
				return false
			}
		}
		return true
	})

	sequentialKey(long, "border_trip_id", 0)

	renames := [][2]string{
		{"hhid", "household_id"},
		{"border_mode", "mode"},
		{"border_poe", "port_of_entry"},
		{"border_purpose", "purpose"},
		{"border_duration", "duration"},
		{"border_party", "party_size"},
	}
	if err := renameAll(b, renames); err != nil {
		return nil, err
	}
	return finish("border_trips", b, borderColumns)
}
