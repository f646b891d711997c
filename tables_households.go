package hhts

// Extract column lists declare exactly which columns each source
// carries; a column missing from the extract fails the build.
var householdSdrtsCols = []string{
	"hhid", "sample_segment", "hhgroup", "traveldate_start",
	"callcenter_recruit", "mobile_recruit", "recruit_start_pt",
	"recruit_end_pt", "num_rmove_participants",
	"participate_future_studies", "hh_iscomplete", "numdays_complete",
	"language_pref", "language_pref_other", "hhsize", "numadults",
	"numkids", "numworkers", "vehicle_count", "bicycle_count",
	"share_car", "share_bike", "share_vanpool", "home_address",
	"home_lat", "home_lng", "res_duration", "rent_own", "res_type",
	"hhincome_detailed", "hhincome_broad",
	"tool_paper", "tool_freq_paper", "tool_carnav", "tool_freq_carnav",
	"tool_511sd", "tool_freq_511sd", "tool_apple", "tool_freq_apple",
	"tool_car2go", "tool_freq_car2go", "tool_google", "tool_freq_google",
	"tool_icommutesd", "tool_freq_icommutesd", "tool_lyft", "tool_freq_lyft",
	"tool_mapmy", "tool_freq_mapmy", "tool_mapquest", "tool_freq_mapquest",
	"tool_sdmts", "tool_freq_sdmts", "tool_nctd", "tool_freq_nctd",
	"tool_waze", "tool_freq_waze", "tool_uber", "tool_freq_uber",
	"tool_other", "tool_other_specify", "tool_freq_other", "tool_none",
	"border_freq_1", "hh_init_wt", "hh_weight_4x", "hh_final_weight_456x",
}

var householdAtCols = []string{
	"hhid", "hhgroup", "traveldate_start", "mobile_recruit",
	"recruit_start_pt", "recruit_end_pt", "num_rmove_participants",
	"participate_future_studies", "hh_iscomplete", "numdays_complete",
	"language_pref", "language_pref_other", "hhsize", "numadults",
	"numkids", "numworkers", "vehicle_count", "bicycle_count",
	"share_car", "share_bike", "share_vanpool", "home_address",
	"home_lat", "home_lng", "res_duration", "rent_own", "res_type",
	"hhincome_detailed", "hhincome_broad",
	"tool_paper", "tool_freq_paper", "tool_carnav", "tool_freq_carnav",
	"tool_511sd", "tool_freq_511sd", "tool_apple", "tool_freq_apple",
	"tool_car2go", "tool_freq_car2go", "tool_google", "tool_freq_google",
	"tool_icommutesd", "tool_freq_icommutesd", "tool_lyft", "tool_freq_lyft",
	"tool_mapmy", "tool_freq_mapmy", "tool_mapquest", "tool_freq_mapquest",
	"tool_sdmts", "tool_freq_sdmts", "tool_nctd", "tool_freq_nctd",
	"tool_waze", "tool_freq_waze", "tool_uber", "tool_freq_uber",
	"tool_other", "tool_other_specify", "tool_freq_other", "tool_none",
	"border_freq_1",
}

// The AT extract never carries the sample segment, the call center
// recruit flag, or the household weights. 99 is the hardcoded Not
// Applicable code introduced for the merge; the weights stay null.
var householdAtFills = map[string]string{
	"sample_segment":       "AT segment",
	"callcenter_recruit":   "99",
	"hh_init_wt":           "",
	"hh_weight_4x":         "",
	"hh_final_weight_456x": "",
}

var yesNoMissing = codeMapping{missing: missing, pairs: []codePair{
	{"0", "No"},
	{"1", "Yes"},
}}

var toolFreq = codeMapping{missing: notApplicable, pairs: []codePair{
	{"1", "Less than once a week"},
	{"2", "A few times a week"},
	{"3", "Daily or more"},
}}

var householdMappings = map[string]codeMapping{
	"sample_segment": {pairs: []codePair{
		{"AT segment", "AT segment"},
		{"Hispanic oversample", "Hispanic oversample"},
		{"Other oversample", "Other oversample"},
		{"Regular", "Regular"},
		{"Transportation oversample", "Transportation oversample"},
	}},
	"hhgroup": {missing: missing, pairs: []codePair{
		{"1", "Group 1: rMove only"},
		{"3", "Group 3: Online diary only"},
		{"4", "Group 4: Split HH: some rMove, some online diary"},
		{"5", "Group 5: AT/Intercept (rMove only)"},
	}},
	"callcenter_recruit": {missing: missing, pairs: []codePair{
		{"0", "Recruit survey completed online"},
		{"1", "Recruit survey completed via call center"},
		{"99", notApplicable},
	}},
	"mobile_recruit": {missing: missing, pairs: []codePair{
		{"0", "Recruit survey was not completed on mobile device"},
		{"1", "Recruit survey was completed on mobile device"},
	}},
	"participate_future_studies": {missing: missing, pairs: []codePair{
		{"1", "Yes"},
		{"2", "No"},
	}},
	"hh_iscomplete": yesNoMissing,
	"language_pref": {missing: missing, pairs: []codePair{
		{"1", "English"},
		{"2", "Spanish"},
		{"97", "Other"},
	}},
	"hhsize":        {missing: missing, pairs: countPairs(12, "12+")},
	"numadults":     {missing: missing, pairs: countPairs(12, "12+")},
	"numkids":       {missing: missing, pairs: countPairs(11, "11+")},
	"numworkers":    {missing: missing, pairs: countPairs(11, "11+")},
	"vehicle_count": {missing: missing, pairs: countPairs(7, "7+")},
	"bicycle_count": {missing: missing, pairs: countPairs(10, "10+")},
	"share_car":     yesNoMissing,
	"share_bike":    yesNoMissing,
	"share_vanpool": yesNoMissing,
	"res_duration": {missing: missing, pairs: []codePair{
		{"1", "Less than a year"},
		{"2", "Between 1 and 2 years"},
		{"3", "Between 2 and 3 years"},
		{"4", "Between 3 and 5 years"},
		{"5", "Between 5 and 10 years"},
		{"6", "Between 10 and 20 years"},
		{"7", "More than 20 years"},
	}},
	"rent_own": {missing: missing, pairs: []codePair{
		{"1", "Own/Buying (paying mortgage)"},
		{"2", "Rent"},
		{"3", "Provided by job or military"},
		{"97", "Other"},
		{"99", "Prefer not to answer"},
	}},
	"res_type": {missing: missing, pairs: []codePair{
		{"1", "Single-family house (detached house)"},
		{"2", "Townhouse (attached house)"},
		{"3", "Building with 3 or fewer apartments/condos"},
		{"4", "Building with 4 or more apartments/condos"},
		{"5", "Mobile home/trailer"},
		{"6", "Dorm, barracks, or institutional housing"},
		{"97", "Other (including boat, RV, van, etc.)"},
	}},
	"hhincome_detailed": {missing: missing, pairs: []codePair{
		{"1", "Under $15,000"},
		{"2", "$15,000-$29,999"},
		{"3", "$30,000-$44,999"},
		{"4", "$45,000-$59,999"},
		{"5", "$60,000-$74,999"},
		{"6", "$75,000-$99,999"},
		{"7", "$100,000-$124,999"},
		{"8", "$125,000-$149,999"},
		{"9", "$150,000-$199,999"},
		{"10", "$200,000-$249,999"},
		{"11", "$250,000 or more"},
		{"99", "Prefer not to answer"},
	}},
	"hhincome_broad": {missing: missing, pairs: []codePair{
		{"1", "Under $30,000"},
		{"2", "$30,000-$59,999"},
		{"3", "$60,000-$99,999"},
		{"4", "$100,000-$149,999"},
		{"5", "$150,000 or more"},
		{"99", "Prefer not to answer"},
	}},
	"tool_paper":           yesNoMissing,
	"tool_freq_paper":      toolFreq,
	"tool_carnav":          yesNoMissing,
	"tool_freq_carnav":     toolFreq,
	"tool_511sd":           yesNoMissing,
	"tool_freq_511sd":      toolFreq,
	"tool_apple":           yesNoMissing,
	"tool_freq_apple":      toolFreq,
	"tool_car2go":          yesNoMissing,
	"tool_freq_car2go":     toolFreq,
	"tool_google":          yesNoMissing,
	"tool_freq_google":     toolFreq,
	"tool_icommutesd":      yesNoMissing,
	"tool_freq_icommutesd": toolFreq,
	"tool_lyft":            yesNoMissing,
	"tool_freq_lyft":       toolFreq,
	"tool_mapmy":           yesNoMissing,
	"tool_freq_mapmy":      toolFreq,
	"tool_mapquest":        yesNoMissing,
	"tool_freq_mapquest":   toolFreq,
	"tool_sdmts":           yesNoMissing,
	"tool_freq_sdmts":      toolFreq,
	"tool_nctd":            yesNoMissing,
	"tool_freq_nctd":       toolFreq,
	"tool_waze":            yesNoMissing,
	"tool_freq_waze":       toolFreq,
	"tool_uber":            yesNoMissing,
	"tool_freq_uber":       toolFreq,
	"tool_other":           yesNoMissing,
	"tool_freq_other":      toolFreq,
	"tool_none":            yesNoMissing,
	"border_freq_1": {missing: missing, pairs: append(countPairs(10, "10+"),
		codePair{"98", "Do not know"})},
}

var householdRules = []rule{
	{when: isEq("hhgroup", "Group 3: Online diary only"), set: []string{"num_rmove_participants"}, to: notApplicable},
	{when: not(isEq("language_pref", "Other")), set: []string{"language_pref_other"}, to: notApplicable},
	{when: isEq("tool_other", "No"), set: []string{"tool_other_specify"}, to: notApplicable},
}

var householdRenames = [][2]string{
	{"hhid", "household_id"},
	{"hhgroup", "sample_group"},
	{"traveldate_start", "travel_date_start"},
	{"callcenter_recruit", "recruit_survey_where"},
	{"mobile_recruit", "recruit_survey_mobile"},
	{"recruit_start_pt", "recruit_survey_start"},
	{"recruit_end_pt", "recruit_survey_end"},
	{"num_rmove_participants", "number_rmove_participants"},
	{"hh_iscomplete", "household_completed"},
	{"numdays_complete", "completed_days"},
	{"language_pref", "language"},
	{"language_pref_other", "language_other"},
	{"hhsize", "persons"},
	{"numadults", "adults"},
	{"numkids", "children"},
	{"numworkers", "workers"},
	{"vehicle_count", "vehicles"},
	{"bicycle_count", "bicycles"},
	{"share_car", "has_share_car"},
	{"share_bike", "has_share_bicycle"},
	{"share_vanpool", "has_share_vanpool"},
	{"home_address", "address"},
	{"home_lat", "latitude"},
	{"home_lng", "longitude"},
	{"res_duration", "residence_duration"},
	{"rent_own", "residence_tenure_status"},
	{"res_type", "residence_type"},
	{"hhincome_detailed", "income_category_detailed"},
	{"hhincome_broad", "income_category_broad"},
	{"tool_paper", "use_paper_maps"},
	{"tool_freq_paper", "freq_paper_maps"},
	{"tool_carnav", "use_car_navigation"},
	{"tool_freq_carnav", "freq_car_navigation"},
	{"tool_511sd", "use_511sd"},
	{"tool_freq_511sd", "freq_511sd"},
	{"tool_apple", "use_apple_maps"},
	{"tool_freq_apple", "freq_apple_maps"},
	{"tool_car2go", "use_car2go"},
	{"tool_freq_car2go", "freq_car2go"},
	{"tool_google", "use_google_maps"},
	{"tool_freq_google", "freq_google_maps"},
	{"tool_icommutesd", "use_icommutesd"},
	{"tool_freq_icommutesd", "freq_icommutesd"},
	{"tool_lyft", "use_lyft"},
	{"tool_freq_lyft", "freq_lyft"},
	{"tool_mapmy", "use_mapmyride"},
	{"tool_freq_mapmy", "freq_mapmyride"},
	{"tool_mapquest", "use_mapquest"},
	{"tool_freq_mapquest", "freq_mapquest"},
	{"tool_sdmts", "use_sdmts"},
	{"tool_freq_sdmts", "freq_sdmts"},
	{"tool_nctd", "use_nctd"},
	{"tool_freq_nctd", "freq_nctd"},
	{"tool_waze", "use_waze"},
	{"tool_freq_waze", "freq_waze"},
	{"tool_uber", "use_uber"},
	{"tool_freq_uber", "freq_uber"},
	{"tool_other", "use_other_tool"},
	{"tool_other_specify", "specify_other_tool"},
	{"tool_freq_other", "freq_other_tool"},
	{"tool_none", "use_no_navigation_tools"},
	{"border_freq_1", "freq_cross_border"},
	{"hh_init_wt", "weight_household_initial"},
	{"hh_weight_4x", "weight_household_4x"},
	{"hh_final_weight_456x", "weight_household_456x"},
}

var householdColumns = []string{
	"household_id", "sample_segment", "sample_group", "travel_date_start",
	"recruit_survey_where", "recruit_survey_mobile", "recruit_survey_start",
	"recruit_survey_end", "number_rmove_participants",
	"participate_future_studies", "household_completed", "completed_days",
	"language", "language_other", "persons", "adults", "children",
	"workers", "vehicles", "bicycles", "has_share_car",
	"has_share_bicycle", "has_share_vanpool", "address", "latitude",
	"longitude", "shape", "residence_duration", "residence_tenure_status",
	"residence_type", "income_category_detailed", "income_category_broad",
	"use_paper_maps", "freq_paper_maps", "use_car_navigation",
	"freq_car_navigation", "use_511sd", "freq_511sd", "use_apple_maps",
	"freq_apple_maps", "use_car2go", "freq_car2go", "use_google_maps",
	"freq_google_maps", "use_icommutesd", "freq_icommutesd", "use_lyft",
	"freq_lyft", "use_mapmyride", "freq_mapmyride", "use_mapquest",
	"freq_mapquest", "use_sdmts", "freq_sdmts", "use_nctd", "freq_nctd",
	"use_waze", "freq_waze", "use_uber", "freq_uber", "use_other_tool",
	"specify_other_tool", "freq_other_tool", "use_no_navigation_tools",
	"freq_cross_border", "weight_household_initial", "weight_household_4x",
	"weight_household_456x",
}

// buildHouseholds produces the canonical household list from the main
// survey and AT extracts.
func buildHouseholds(sdrtsRaw, atRaw *Frame, tr *Transformer) (*Table, error) {
	sdrts, err := sdrtsRaw.Select(householdSdrtsCols...)
	if err != nil {
		return nil, err
	}
	at, err := atRaw.Select(householdAtCols...)
	if err != nil {
		return nil, err
	}

	df, err := reconcile(sdrts, at, nil, householdAtFills)
	if err != nil {
		return nil, err
	}
	if err := requireUnique(df, "hhid", ErrDuplicateHousehold); err != nil {
		return nil, err
	}

	b := newBatch(df)
	if err := applyMappings(b, householdMappings); err != nil {
		return nil, err
	}
	if err := applyRules(b, householdRules); err != nil {
		return nil, err
	}

	df.AddColumn("shape", "")
	for i := 0; i < df.Len(); i++ {
		df.Set(i, "shape", pointWKT(tr, df.Get(i, "home_lng"), df.Get(i, "home_lat")))
	}

	if err := renameAll(b, householdRenames); err != nil {
		return nil, err
	}
	return finish("households", b, householdColumns)
}
