package hhts

var interceptCols = []string{
	"hhid", "status", "survey_start_pdt", "survey_end_pdt", "survey_day",
	"pilot_study", "origin_purpose_1_1", "employment_int_1_1",
	"student_int_1_1", "origin_loc_address_1", "origin_loc_lat_1",
	"origin_loc_lng_1", "dest_purpose_1_1", "dest_loc_address_1",
	"dest_loc_lat_1", "dest_loc_lng_1", "distance_beeline",
	"distance_beeline_agg", "work_int_1_1", "work_int_1_2",
	"school_int_1_1", "school_int_1_2", "vehicle_count_1_1",
	"age_groups_1_1", "age_groups_1_2", "age_groups_1_3", "age_int_1_1",
	"smartphone_int_1_1", "resident_int_1_1", "bikeparty_1_1",
	"bikeshare_1_1", "gender_1_1", "intercept_location_1_1",
	"intercept_location_dir_1_1", "language_1_1", "rmove_qualify",
	"optout_1_1", "rmove_participate", "rmove_complete",
	"recruit_complete", "survey_time_peak", "expansion_site",
	"exp_factor",
}

var interceptPurposePairs = []codePair{
	{"1", "My home"},
	{"2", "My work or a work-related place"},
	{"3", "My school"},
	{"4", "Someone elses home"},
	{"5", "A business (e.g., shopping, errand, banking, doctor, etc.)"},
	{"6", "A restaurant"},
	{"7", "A leisure activity (e.g., museum, gym, sporting event, etc.)"},
	{"8", "Pickup or drop-off child at daycare, school, etc."},
	{"9", "Other"},
}

var interceptVisitPairs = []codePair{
	{"1", "Yes"},
	{"2", "No"},
	{"3", notApplicable},
}

var interceptSitePairs = []codePair{
	{"1", "1 - (Oceanside) - S. Pacific Street and Tyson St"},
	{"2", "2 - (Oceanside) - Rail Trail and Elm Street"},
	{"3", "3 - (Oceanside) - N Coast Highway and Topeka St (8/16/16 - 2/05/17)"},
	{"4", "4 - (San Marcos) - Valpreda Rd and Mission Rd"},
	{"5", "5 - (San Marcos) - Campus Way and Campus View Dr"},
	{"6", "6 - (Escondido) - Rock Springs Rd and W Mission Ave"},
	{"7", "7 - (Escondido) - Centre City Pkwy and W Valley Pkwy"},
	{"8", "8 - (Solana Beach) - Coast Highway and Lomas Santa Fe/Plaza St"},
	{"9", "9 - (Chula Vista) - Broadway, Between E Street and Flower St"},
	{"10", "10 - (San Diego - La Jolla) - N Torrey Pines Rd and La Jolla Shores Dr"},
	{"11", "11 - (San Diego - La Jolla) - Gilman Dr between Osler Ln and La Jolla Village Dr"},
	{"12", "12 - (San Diego - Pacific Beach) - Fanuel St and Crown Point Bike Path"},
	{"13", "13 - (San Diego - Pacific Beach) - Ingraham St and Hornblend St"},
	{"14", "14 - (San Diego - Downtown) - Union St and Ash St"},
	{"15", "15 - (San Diego - Downtown) - 4th Ave and C St"},
	{"16", "16 - (San Diego - Downtown) - 5th Ave and Broadway (8/16/16 - 02/05/17)"},
	{"17", "17 - (San Diego - Downtown) - 10th Ave and Market St"},
	{"18", "18 - (San Diego - North Park) - Park Blvd and Myrtle St"},
	{"19", "19 - (San Diego - North Park) - 30th St and University Ave"},
	{"20", "20 - (San Diego - North Park) - Oregon St and El Cajon Blvd"},
	{"21", "21 - (San Diego - North Park) - Utah St and Meade Ave"},
	{"22", "22 - (San Diego - College Area) - Collwood Blvd and Montezuma Rd"},
	{"23", "23 - (San Diego - College Area) - E Campus Dr and Montezuma Rd"},
	{"24", "24 - (El Cajon) - Orlando St and Main St"},
	{"25", "25 - (El Cajon) - Jamacha Road and E. Washington Ave"},
	{"26", "26 - Other"},
	{"27", "3 - (Oceanside) - N Coast Highway and Mission Ave (2/06/17 - 2/16/17)"},
	{"28", "16 - (San Diego - Downtown) - 5th Ave, between Elm St and Fir St (2/06/17 - 2/16/17)"},
}

var interceptMappings = map[string]codeMapping{
	"status": {missing: missing, pairs: []codePair{
		{"0", "Incomplete"},
		{"1", "Complete"},
	}},
	"pilot_study":        yesNoMissing,
	"origin_purpose_1_1": {missing: missing, pairs: interceptPurposePairs},
	"employment_int_1_1": {missing: missing, pairs: []codePair{
		{"1", "Employed full-time (paid) 35+ hours/week"},
		{"2", "Employed part-time (paid) up to 35 hours/week"},
		{"3", "Unpaid volunteer or intern"},
		{"4", "Not currently employed"},
	}},
	"student_int_1_1": {missing: missing, pairs: []codePair{
		{"1", "Not a student"},
		{"2", "Enrolled in higher education"},
		{"3", "Enrolled in high school (grades 9-12)"},
		{"4", "Enrolled in grade school or middle school (grades K-8)"},
	}},
	"dest_purpose_1_1": {missing: missing, pairs: interceptPurposePairs},
	"distance_beeline_agg": {missing: missing, pairs: []codePair{
		{"0", "0-2 miles"},
		{"2", "2-4 miles"},
		{"4", "4-6 miles"},
		{"6", "6-8 miles"},
		{"8", "8-10 miles"},
		{"10", "10-12 miles"},
		{"12", "12-14 miles"},
		{"14", "14-16 miles"},
		{"16", "16-18 miles"},
		{"18", "18-20 miles"},
		{"20", "20 miles or more"},
	}},
	"work_int_1_1":   {missing: missing, pairs: interceptVisitPairs},
	"work_int_1_2":   {missing: missing, pairs: interceptVisitPairs},
	"school_int_1_1": {missing: missing, pairs: interceptVisitPairs},
	"school_int_1_2": {missing: missing, pairs: interceptVisitPairs},
	"vehicle_count_1_1": {missing: missing, pairs: []codePair{
		{"0", "0"},
		{"1", "1"},
		{"2", "2"},
		{"3", "3"},
		{"4", "4"},
		{"5", "5"},
		{"6", "6"},
		{"7", "7+"},
	}},
	"age_int_1_1": {missing: missing, pairs: []codePair{
		{"1", "16-17 years"},
		{"2", "18-24 years"},
		{"3", "25-34 years"},
		{"4", "35-44 years"},
		{"5", "45-49 years"},
		{"6", "50-54 years"},
		{"7", "55-59 years"},
		{"8", "60-64 years"},
		{"9", "65 years or older"},
	}},
	"smartphone_int_1_1": {missing: missing, pairs: []codePair{
		{"1", "Yes, an Android smartphone"},
		{"2", "Yes, an Apple smartphone"},
		{"3", "Yes, another type of smartphone"},
		{"4", "No, I do not own a smartphone"},
	}},
	"resident_int_1_1": {missing: missing, pairs: []codePair{
		{"1", "Yes"},
		{"2", "No"},
	}},
	// codes shift down one: 1 means the respondent biked alone
	"bikeparty_1_1": {missing: missing, pairs: []codePair{
		{"1", "0"},
		{"2", "1"},
		{"3", "2"},
		{"4", "3"},
		{"5", "4"},
		{"6", "5+"},
	}},
	"bikeshare_1_1": {missing: missing, pairs: []codePair{
		{"1", "Yes"},
		{"2", "No"},
	}},
	"gender_1_1": {missing: missing, pairs: []codePair{
		{"1", "Male"},
		{"2", "Female"},
		{"3", "Do not know"},
	}},
	"intercept_location_1_1": {missing: missing, pairs: interceptSitePairs},
	"intercept_location_dir_1_1": {missing: missing, pairs: []codePair{
		{"1", "North"},
		{"2", "East"},
		{"3", "South"},
		{"4", "West"},
	}},
	"language_1_1": {missing: missing, pairs: []codePair{
		{"1", "English"},
		{"2", "Spanish"},
		{"3", "Other"},
	}},
	"rmove_qualify": yesNoMissing,
	"optout_1_1": {missing: notApplicable, pairs: []codePair{
		{"0", "No"},
		{"1", "Yes"},
	}},
	"rmove_participate": yesNoMissing,
	"rmove_complete": {missing: notApplicable, pairs: []codePair{
		{"0", "No"},
		{"1", "Yes"},
	}},
	"recruit_complete": {missing: notApplicable, pairs: []codePair{
		{"0", "No (dropped out)"},
		{"1", "Yes"},
	}},
	"survey_time_peak": yesNoMissing,
	"expansion_site":   {missing: missing, pairs: interceptSitePairs},
}

var interceptRenames = [][2]string{
	{"hhid", "household_id"},
	{"status", "survey_status"},
	{"survey_start_pdt", "survey_start"},
	{"survey_end_pdt", "survey_end"},
	{"survey_day", "survey_date"},
	{"origin_purpose_1_1", "origin_purpose"},
	{"employment_int_1_1", "employment_status"},
	{"student_int_1_1", "student_status"},
	{"origin_loc_address_1", "origin_address"},
	{"origin_loc_lat_1", "origin_latitude"},
	{"origin_loc_lng_1", "origin_longitude"},
	{"dest_purpose_1_1", "destination_purpose"},
	{"dest_loc_address_1", "destination_address"},
	{"dest_loc_lat_1", "destination_latitude"},
	{"dest_loc_lng_1", "destination_longitude"},
	{"distance_beeline_agg", "distance_beeline_bin"},
	{"vehicle_count_1_1", "number_household_vehicles"},
	{"age_groups_1_1", "number_children_0_15"},
	{"age_groups_1_2", "number_children_16_17"},
	{"age_groups_1_3", "number_adults"},
	{"age_int_1_1", "age"},
	{"smartphone_int_1_1", "smartphone"},
	{"resident_int_1_1", "resident"},
	{"bikeparty_1_1", "bike_party"},
	{"bikeshare_1_1", "bike_share"},
	{"gender_1_1", "gender"},
	{"intercept_location_1_1", "intercept_site"},
	{"intercept_location_dir_1_1", "intercept_direction"},
	{"language_1_1", "language"},
	{"optout_1_1", "opt_out"},
	{"exp_factor", "expansion_factor"},
}

var interceptColumns = []string{
	"household_id", "survey_status", "survey_start", "survey_end",
	"survey_date", "pilot_study", "origin_purpose", "employment_status",
	"student_status", "origin_address", "origin_latitude",
	"origin_longitude", "destination_purpose", "destination_address",
	"destination_latitude", "destination_longitude", "distance_beeline",
	"distance_beeline_bin", "visit_work", "visit_school",
	"number_household_vehicles", "number_children_0_15",
	"number_children_16_17", "number_adults", "age", "smartphone",
	"resident", "bike_party", "bike_share", "gender", "intercept_site",
	"intercept_direction", "language", "rmove_qualify", "opt_out",
	"rmove_participate", "rmove_complete", "recruit_complete",
	"survey_time_peak", "expansion_site", "expansion_factor",
}

// buildIntercept produces the active transportation intercept survey
// table. Unlike the other tables it has a single source.
func buildIntercept(atRaw *Frame) (*Table, error) {
	df, err := atRaw.Select(interceptCols...)
	if err != nil {
		return nil, err
	}

	b := newBatch(df)
	if err := applyMappings(b, interceptMappings); err != nil {
		return nil, err
	}

	// Visit flags fall back to the second asking of the question when
	// the first was Missing or Not Applicable.
	coalesceSentinel(df, "visit_work", "work_int_1_1", "work_int_1_2")
	coalesceSentinel(df, "visit_school", "school_int_1_1", "school_int_1_2")

	if err := renameAll(b, interceptRenames); err != nil {
		return nil, err
	}
	return finish("intercept", b, interceptColumns)
}
