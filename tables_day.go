package hhts

// Day diary extract columns. The AT day extract is rMove-only and
// never carries the online diary fields or the multiday weights.
var daySdrtsCols = []string{
	"personid", "hhid", "traveldate", "daynum", "travel_dow",
	"data_source", "day_hhcomplete", "day_iscomplete", "completed_at",
	"revised_at", "revised_count", "diary_start_pt", "diary_end_pt",
	"diary_duration", "survey_status", "proxy", "trips_yesno",
	"notravel", "notravel_secondary", "notravel_other", "num_trips",
	"num_answer", "loc_start", "loc_start_other", "loc_end",
	"loc_end_other", "telework_time", "shop_time", "toll_no",
	"toll_express", "deliver_package", "deliver_food", "deliver_work",
	"multiday_factor", "multiday_weight_456x",
}

var dayAtCols = []string{
	"personid", "hhid", "traveldate", "daynum", "travel_dow",
	"day_iscomplete", "completed_at", "revised_at", "revised_count",
	"survey_status", "trips_yesno", "notravel", "notravel_secondary",
	"num_trips", "num_answer", "telework_time", "shop_time", "toll_no",
	"toll_express", "deliver_package", "deliver_food", "deliver_work",
}

var dayAtFills = map[string]string{
	"data_source":          "1", // all use rMoves
	"day_hhcomplete":       "99",
	"notravel_other":       notApplicable,
	"loc_start":            "99",
	"loc_start_other":      notApplicable,
	"loc_end":              "99",
	"loc_end_other":        notApplicable,
	"diary_start_pt":       "",
	"diary_end_pt":         "",
	"diary_duration":       "",
	"proxy":                "",
	"multiday_factor":      "",
	"multiday_weight_456x": "",
}

var noTravelReasonPairs = []codePair{
	{"1", "Did travel, but rMove did not collect any trips"},
	{"2", "Not scheduled to work/took day off"},
	{"3", "Worked at home (for pay)"},
	{"4", "Worked around home (not for pay)"},
	{"5", "Kids were on school vacation/break"},
	{"6", "No available transportation"},
	{"7", "Was sick or caring for another person"},
	{"8", "Was waiting for visitor/delivery"},
	{"9", "Other reason (no reason given)"},
	{"10", "Stayed on base all day"},
	{"97", "Other reason"},
	{"-9998", "Participant non-response"},
	{"-9999", "Technical error"},
}

var dayLocationPairs = []codePair{
	{"1", "Home"},
	{"2", "Work (Primary)"},
	{"3", "Work (Second Jobs)"},
	{"97", "Other"},
	{"99", notApplicable},
}

var yesNoNotApplicable = codeMapping{missing: notApplicable, pairs: []codePair{
	{"0", "No"},
	{"1", "Yes"},
	{"-9998", "Participant non-response"},
	{"-9999", "Technical error"},
}}

var dayMappings = map[string]codeMapping{
	"travel_dow": {missing: missing, pairs: []codePair{
		{"1", "Monday"},
		{"2", "Tuesday"},
		{"3", "Wednesday"},
		{"4", "Thursday"},
		{"5", "Friday"},
		{"6", "Saturday"},
		{"7", "Sunday"},
	}},
	"data_source": {missing: missing, pairs: []codePair{
		{"1", "rMove"},
		{"2", "Online"},
	}},
	"day_hhcomplete": {missing: missing, pairs: []codePair{
		{"0", "No"},
		{"1", "Yes"},
		{"99", notApplicable},
	}},
	"day_iscomplete": yesNoMissing,
	"survey_status": {missing: notApplicable, pairs: []codePair{
		{"0", "Diary/daily summary survey not complete"},
		{"1", "Diary/daily summary survey complete"},
		{"2", "Diary/daily summary survey not asked"},
	}},
	"proxy": {missing: notApplicable, pairs: []codePair{
		{"1", "No"},
		{"2", "Present while other member filled out survey"},
		{"3", "Not present while other member filled out survey"},
	}},
	"trips_yesno": {missing: missing, pairs: []codePair{
		{"1", "Yes"},
		{"2", "No"},
	}},
	"notravel":           {pairs: noTravelReasonPairs},
	"notravel_secondary": {missing: notApplicable, pairs: noTravelReasonPairs},
	"loc_start":          {pairs: dayLocationPairs},
	"loc_end":            {pairs: dayLocationPairs},
	// flip mapping from 0-No, 1-Yes
	"toll_no": {missing: notApplicable, pairs: []codePair{
		{"0", "Yes"},
		{"1", "No"},
		{"-9998", "Participant non-response"},
		{"-9999", "Technical error"},
	}},
	"toll_express":    yesNoNotApplicable,
	"deliver_package": yesNoNotApplicable,
	"deliver_food":    yesNoNotApplicable,
	"deliver_work":    yesNoNotApplicable,
}

// Rules run after the made_trips derivation so the reason-for-no-travel
// fills see the forced value of num_trips, and in this exact order: the
// loc_start/loc_end fills key on data_source.
var dayRules = []rule{
	{when: allOf(isEqNum("num_trips", 0), isNull("notravel")), set: []string{"notravel"}, to: missing},
	{when: allOf(isPositive("num_trips"), isNull("notravel")), set: []string{"notravel"}, to: notApplicable},
	{when: allOf(not(isEq("notravel", "Other reason")), not(isEq("notravel_secondary", "Other reason"))),
		set: []string{"notravel_other"}, to: notApplicable},
	{when: allOf(anyOf(isEq("notravel", "Other reason"), isEq("notravel_secondary", "Other reason")), isNull("notravel_other")),
		set: []string{"notravel_other"}, to: missing},
	{when: isEq("data_source", "rMove"),
		set: []string{"loc_start", "loc_start_other", "loc_end", "loc_end_other"}, to: notApplicable},
	{when: allOf(isEq("data_source", "Online"), isNull("loc_start")), set: []string{"loc_start"}, to: missing},
	{when: allOf(isEq("data_source", "Online"), isNull("loc_end")), set: []string{"loc_end"}, to: missing},
	{when: allOf(isEq("data_source", "Online"), not(isEq("loc_start", "Other"))),
		set: []string{"loc_start_other"}, to: notApplicable},
	{when: allOf(isEq("data_source", "Online"), not(isEq("loc_end", "Other"))),
		set: []string{"loc_end_other"}, to: notApplicable},
}

var dayRenames = [][2]string{
	{"personid", "person_id"},
	{"hhid", "household_id"},
	{"traveldate", "travel_date"},
	{"daynum", "travel_day_number"},
	{"travel_dow", "travel_day_of_week"},
	{"day_hhcomplete", "completed_household_survey"},
	{"day_iscomplete", "completed_person_survey"},
	{"completed_at", "completed_date"},
	{"diary_start_pt", "diary_start_time"},
	{"diary_end_pt", "diary_end_time"},
	{"trips_yesno", "made_trips"},
	{"notravel", "no_trips_reason_1"},
	{"notravel_secondary", "no_trips_reason_2"},
	{"notravel_other", "no_trips_reason_specify_other"},
	{"num_trips", "number_trips"},
	{"num_answer", "number_surveys"},
	{"loc_start", "start_location"},
	{"loc_start_other", "start_location_other"},
	{"loc_end", "end_location"},
	{"loc_end_other", "end_location_other"},
	{"telework_time", "time_telework"},
	{"shop_time", "time_shop"},
	{"toll_no", "toll_road"},
	{"toll_express", "toll_road_express"},
	{"multiday_factor", "weight_household_multiday_factor"},
	{"multiday_weight_456x", "weight_person_multiday_456x"},
}

var dayColumns = []string{
	"day_id", "person_id", "household_id", "travel_date",
	"travel_day_number", "travel_day_of_week", "data_source",
	"completed_household_survey", "completed_person_survey",
	"completed_date", "revised_at", "revised_count", "diary_start_time",
	"diary_end_time", "diary_duration", "survey_status", "proxy",
	"made_trips", "no_trips_reason_1", "no_trips_reason_2",
	"no_trips_reason_specify_other", "number_trips", "number_surveys",
	"start_location", "start_location_other", "end_location",
	"end_location_other", "time_telework", "time_shop", "toll_road",
	"toll_road_express", "deliver_package", "deliver_food",
	"deliver_work", "weight_household_multiday_factor",
	"weight_person_multiday_456x",
}

// buildDay produces the person day-level trip diary table.
func buildDay(sdrtsRaw, atRaw *Frame) (*Table, error) {
	sdrts, err := sdrtsRaw.Select(daySdrtsCols...)
	if err != nil {
		return nil, err
	}
	at, err := atRaw.Select(dayAtCols...)
	if err != nil {
		return nil, err
	}

	df, err := reconcile(sdrts, at, nil, dayAtFills)
	if err != nil {
		return nil, err
	}

	b := newBatch(df)
	if err := applyMappings(b, dayMappings); err != nil {
		return nil, err
	}

	// Number of trips takes precedence over the reported indicator.
	for i := 0; i < df.Len(); i++ {
		if n, ok := parseIntCell(df, i, "num_trips"); ok {
			if n > 0 {
				df.Set(i, "trips_yesno", "Yes")
			} else if n == 0 {
				df.Set(i, "trips_yesno", "No")
			}
		}
	}

	if err := applyRules(b, dayRules); err != nil {
		return nil, err
	}

	sequentialKey(df, "day_id", 0)

	if err := renameAll(b, dayRenames); err != nil {
		return nil, err
	}
	return finish("day", b, dayColumns)
}
