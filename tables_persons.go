package hhts

var personSdrtsCols = []string{
	"personid", "hhid", "pernum", "traveldate_start", "rmove_participant",
	"relationship", "gender", "age", "employment", "jobs_count",
	"student", "education", "license", "military",
	"ethnicity_amindian_alaska", "ethnicity_asian", "ethnicity_black",
	"ethnicity_hispanic", "ethnicity_hawaiian_pacific", "ethnicity_white",
	"ethnicity_other", "ethnicity_prefernot", "disability", "height",
	"weight_lbs", "physical_activity", "transit_freq", "transitpass",
	"schooltype", "school_freq", "other_school", "school_mode",
	"daycare_early", "daycare_late", "job_type", "occupation", "industry",
	"hours_work", "commute_freq", "commute_mode", "work_flex",
	"work_park_pay", "work_park_cost", "work_park_cost_dk",
	"work_park_ease", "telecommute_freq", "commute_subsidy_none",
	"commute_subsidy_parking", "commute_subsidy_transit",
	"commute_subsidy_vanpool", "commute_subsidy_cash",
	"commute_subsidy_other", "commute_subsidy_specify", "secondhome",
	"secondhome_address", "secondhome_lat", "secondhome_lng",
	"mainschool_address", "mainschool_lat", "mainschool_lng",
	"secondschool_address", "secondschool_lat", "secondschool_lng",
	"work_address", "work_lat", "work_lng", "secondwork_address",
	"secondwork_lat", "secondwork_lng", "smartphone_type",
	"smartphone_age", "child_smartphone", "callcenter_diary",
	"mobile_diary", "activated_rmove", "numdays_complete",
	"day1_complete", "day2_complete", "day3_complete", "day4_complete",
	"day5_complete", "day6_complete", "day7_complete",
}

var personAtCols = []string{
	"personid", "hhid", "pernum", "traveldate_start", "rmove_participant",
	"relationship", "gender", "age", "employment", "jobs_count",
	"student", "education", "license", "military",
	"ethnicity_amindian_alaska", "ethnicity_asian", "ethnicity_black",
	"ethnicity_hispanic", "ethnicity_hawaiian_pacific", "ethnicity_white",
	"ethnicity_other", "ethnicity_prefernot", "disability", "height",
	"weight_lbs", "physical_activity", "transit_freq", "transitpass",
	"schooltype", "school_freq", "other_school", "school_mode",
	"daycare_early", "daycare_late", "job_type", "occupation", "industry",
	"hours_work", "commute_freq", "commute_mode", "work_flex",
	"work_park_pay", "work_park_cost", "work_park_cost_dk",
	"work_park_ease", "telecommute_freq", "commute_subsidy_none",
	"commute_subsidy_parking", "commute_subsidy_transit",
	"commute_subsidy_vanpool", "commute_subsidy_cash",
	"commute_subsidy_other", "commute_subsidy_specify", "secondhome",
	"secondhome_address", "secondhome_lat", "secondhome_lng",
	"mainschool_address", "mainschool_lat", "mainschool_lng",
	"secondschool_address", "secondschool_lat", "secondschool_lng",
	"work_address", "work_lat", "work_lng", "secondwork_address",
	"secondwork_lat", "secondwork_lng", "numdays_complete",
	"day1_complete", "day2_complete", "day3_complete", "day4_complete",
	"day5_complete", "day6_complete", "day7_complete",
}

// The AT person extract has no part two diary metadata.
var personAtFills = map[string]string{
	"smartphone_type":  "99",
	"smartphone_age":   "99",
	"child_smartphone": "99",
	"callcenter_diary": "99",
	"mobile_diary":     "99",
	"activated_rmove":  "",
}

var commuteModePairs = []codePair{
	{"1", "Drive alone"},
	{"2", "Carpool with only family/household member(s)"},
	{"3", "Carpool with at least one person not in household"},
	{"4", "Motorcycle/moped/scooter"},
	{"5", "Walk/jog/wheelchair"},
	{"6", "Bicycle"},
	{"7", "School bus"},
	{"8", "Bus (public transit)"},
	{"9", "Private shuttle bus"},
	{"10", "Vanpool"},
	{"11", "Light Rail (e.g., Trolley, SPRINTER)"},
	{"12", "Intercity Rail (e.g., COASTER, Amtrak)"},
	{"13", "Paratransit"},
	{"14", "Taxi or other hired car service (e.g., Lyft, Uber)"},
	{"97", "Other"},
}

var weeklyFreqPairs = []codePair{
	{"1", "6-7 days a week"},
	{"2", "5 days a week"},
	{"3", "4 days a week"},
	{"4", "2-3 days a week"},
	{"5", "1 day a week"},
	{"6", "9 days every 2 weeks"},
	{"7", "1-3 days per month"},
	{"8", "Less than monthly"},
	{"9", "Never"},
}

var yesNoNA99 = codeMapping{missing: missing, pairs: []codePair{
	{"0", "No"},
	{"1", "Yes"},
	{"99", notApplicable},
}}

var dayCompleteMapping = codeMapping{missing: notApplicable, pairs: []codePair{
	{"0", "No"},
	{"1", "Yes"},
}}

var personMappings = map[string]codeMapping{
	"rmove_participant": yesNoMissing,
	"relationship": {missing: missing, pairs: []codePair{
		{"0", "Self"},
		{"1", "Husband/Wife/Partner"},
		{"2", "Son/Daughter/In-law"},
		{"3", "Mother/Father/In-law"},
		{"4", "Brother/Sister/In-law"},
		{"5", "Other relative"},
		{"6", "Roommate/Friend"},
		{"7", "Household help"},
		{"97", "Other"},
	}},
	"gender": {missing: missing, pairs: []codePair{
		{"1", "Male"},
		{"2", "Female"},
	}},
	"age": {missing: missing, pairs: []codePair{
		{"1", "Under 5 years old"},
		{"2", "5-15 years"},
		{"3", "16-17 years"},
		{"4", "18-24 years"},
		{"5", "25-34 years"},
		{"6", "35-44 years"},
		{"7", "45-49 years"},
		{"8", "50-54 years"},
		{"9", "55-59 years"},
		{"10", "60-64 years"},
		{"11", "65-74 years"},
		{"12", "75-79 years"},
		{"13", "80-84 years"},
		{"14", "85 years or older"},
	}},
	"employment": {missing: missing, pairs: []codePair{
		{"1", "Employed full-time (paid) 35+ hours/week"},
		{"2", "Employed part-time (paid) up to 35 hours/week"},
		{"3", "Unpaid volunteer or intern"},
		{"4", "Not currently employed"},
	}},
	"jobs_count": {missing: missing, pairs: []codePair{
		{"0", "0 (age 16+)"},
		{"1", "1"},
		{"2", "2"},
		{"3", "3"},
		{"4", "4"},
		{"5", "5+"},
	}},
	"student": {missing: missing, pairs: []codePair{
		{"1", "Not a student"},
		{"2", "Part-time student"},
		{"3", "Full-time student"},
	}},
	"education": {missing: missing, pairs: []codePair{
		{"1", "Less than high school"},
		{"2", "High school graduate/GED"},
		{"3", "Some college"},
		{"4", "Vocational/technical training"},
		{"5", "Associates degree"},
		{"6", "Bachelor degree"},
		{"7", "Graduate/post-graduate degree"},
	}},
	"license": {missing: missing, pairs: []codePair{
		{"1", "Yes"},
		{"2", "No"},
	}},
	"military": {missing: missing, pairs: []codePair{
		{"1", "No current affiliation with the military"},
		{"2", "Active duty within the San Diego region"},
		{"3", "Active duty outside of the San Diego region"},
		{"4", "Reserve or National Guard"},
		{"5", "Department of Defense civilian workforce and/or contractor"},
		{"6", "Veteran"},
		{"97", "Other affiliation (e.g., spouse or parent of active military)"},
	}},
	"ethnicity_amindian_alaska":  yesNoMissing,
	"ethnicity_asian":            yesNoMissing,
	"ethnicity_black":            yesNoMissing,
	"ethnicity_hispanic":         yesNoMissing,
	"ethnicity_hawaiian_pacific": yesNoMissing,
	"ethnicity_white":            yesNoMissing,
	"ethnicity_other":            yesNoMissing,
	"ethnicity_prefernot":        yesNoMissing,
	"disability": {missing: missing, pairs: []codePair{
		{"1", "No"},
		{"2", "Yes"},
		{"99", "Prefer not to answer"},
	}},
	"physical_activity": {missing: missing, pairs: []codePair{
		{"1", "I rarely or never do any physical activity"},
		{"2", "I do some light or moderate physical activities"},
		{"3", "I do some vigorous physical activities"},
		{"99", "Prefer not to answer"},
	}},
	"transit_freq": {missing: missing, pairs: []codePair{
		{"1", "6-7 days a week"},
		{"2", "4-5 days a week"},
		{"3", "2-3 days a week"},
		{"4", "1 day a week"},
		{"5", "1-3 days per month"},
		{"6", "Less than monthly"},
		{"7", "Never"},
	}},
	"transitpass": {missing: missing, pairs: []codePair{
		{"1", "Monthly Adult Regional Compass Card: $72"},
		{"2", "Monthly Adult Premium Compass Card: $100"},
		{"3", "Monthly Adult COASTER Compass Card: by zone"},
		{"4", "MTS College Semester Pass"},
		{"5", "MTS College Monthly Pass"},
		{"6", "UC San Diego Annual U-Pass"},
		{"7", "Monthly Youth Regional Compass Card: $36"},
		{"8", "Monthly Youth Premium Compass Card: $50"},
		{"9", "Monthly Youth COASTER Compass Card: $82.50"},
		{"10", "Monthly Senior/Disabled/Medicare Regional Compass Card: $18"},
		{"11", "Monthly Senior/Disabled/Medicare Premium Compass Card: $25"},
		{"12", "Monthly Senior/Disabled/Medicare COASTER Compass Card: $41.25"},
		{"13", "Other transit pass (e.g., free, employee, etc.)"},
		{"14", "Do not have a transit pass"},
		{"98", "Do not know"},
	}},
	"schooltype": {missing: missing, pairs: []codePair{
		{"1", "Cared for at home"},
		{"2", "Daycare outside home"},
		{"3", "Preschool"},
		{"4", "Kindergarten-Grade 5 (public or private)"},
		{"5", "Kindergarten-Grade 5 (home school)"},
		{"6", "Grade 6-Grade 8 (public or private)"},
		{"7", "Grade 6-Grade 8 (home school)"},
		{"8", "Grade 9-Grade 12 (public or private)"},
		{"9", "Grade 9-Grade 12 (home school)"},
		{"10", "Vocational/technical school"},
		{"11", "2-year college"},
		{"12", "4-year college"},
		{"13", "Graduate or professional school"},
		{"97", "Other"},
	}},
	"school_freq": {missing: missing, pairs: []codePair{
		{"1", "6-7 days a week"},
		{"2", "5 days a week"},
		{"3", "3-4 days a week"},
		{"4", "1-2 days a week"},
		{"5", "1-3 days per month"},
		{"6", "Less than monthly"},
		{"7", "Never, only takes online classes"},
	}},
	"other_school": {missing: missing, pairs: []codePair{
		{"1", "Never, only 1 school location"},
		{"2", "1 or more days a week"},
		{"3", "A few times per month"},
		{"4", "Less than monthly"},
	}},
	"school_mode": {missing: missing, pairs: commuteModePairs},
	"daycare_early": {missing: missing, pairs: []codePair{
		{"1", "Before 6 AM"},
		{"2", "6:00 AM"},
		{"3", "6:15 AM"},
		{"4", "6:30 AM"},
		{"5", "6:45 AM"},
		{"6", "7:00 AM"},
		{"7", "7:15 AM"},
		{"8", "7:30 AM"},
		{"9", "7:45 AM"},
		{"10", "8:00 AM"},
		{"11", "8:15 AM"},
		{"12", "8:30 AM"},
		{"13", "After 8:30 AM"},
	}},
	"daycare_late": {missing: missing, pairs: []codePair{
		{"1", "Before 5 PM"},
		{"2", "5:00 PM"},
		{"3", "5:15 PM"},
		{"4", "5:30 PM"},
		{"5", "5:45 PM"},
		{"6", "6:00 PM"},
		{"7", "6:15 PM"},
		{"8", "6:30 PM"},
		{"9", "6:45 PM"},
		{"10", "7:00 PM"},
		{"11", "7:15 PM"},
		{"12", "7:30 PM"},
		{"13", "After 7:30 PM"},
	}},
	"job_type": {missing: missing, pairs: []codePair{
		{"1", "Has one work location (outside of home, may also telework)"},
		{"2", "Work location regularly varies (work in different offices or jobsites)"},
		{"3", "Work at home only (only telework or self-employed)"},
		{"4", "Drive/Travel for a living (e.g., bus/truck driver, salesman)"},
	}},
	"occupation": {missing: missing, pairs: []codePair{
		{"11", "Management Occupations"},
		{"13", "Business & Financial Operations"},
		{"15", "Computer & Mathematical"},
		{"17", "Architecture & Engineering"},
		{"19", "Life, Physical, & Social Science"},
		{"21", "Community & Social Services"},
		{"23", "Legal"},
		{"25", "Education, Training, & Library"},
		{"27", "Arts, Design, Entertainment, Sports, & Media"},
		{"29", "Healthcare Practitioners & Technical"},
		{"31", "Healthcare Support"},
		{"33", "Protective Service"},
		{"35", "Food Preparation & Serving Related"},
		{"37", "Building & Grounds Cleaning/Maintenance"},
		{"39", "Personal Care & Service"},
		{"41", "Sales & Related"},
		{"43", "Office & Administrative Support"},
		{"45", "Farming, Fishing, & Forestry"},
		{"47", "Construction & Extraction"},
		{"49", "Installation, Maintenance, & Repair"},
		{"51", "Production"},
		{"53", "Transportation & Material Moving"},
		{"55", "Military"},
		{"97", "Other"},
		{"98", "Do not know"},
	}},
	"industry": {missing: missing, pairs: []codePair{
		{"1", "Accommodation (e.g., hotels/motels)"},
		{"2", "Administrative, Support, & Waste Management Services"},
		{"3", "Agriculture, Forestry, Fishing, & Hunting"},
		{"4", "Arts, Entertainment, & Recreation"},
		{"5", "Construction"},
		{"6", "Education Services"},
		{"7", "Food Services & Drinking Places"},
		{"8", "Finance & Insurance"},
		{"9", "Health Care & Social Assistance"},
		{"10", "Information"},
		{"11", "Management of Companies & Enterprises"},
		{"12", "Manufacturing"},
		{"13", "Military"},
		{"14", "Mining, Quarrying, & Oil/Gas Extraction"},
		{"15", "Other Services"},
		{"16", "Professional, Scientific, & Technical Services"},
		{"17", "Public Administration"},
		{"18", "Real Estate, Rental, & Leasing"},
		{"19", "Retail Trade"},
		{"20", "Transportation & Warehousing"},
		{"21", "Utilities"},
		{"22", "Wholesale Trade"},
		{"97", "Other"},
		{"98", "Do not know"},
	}},
	"hours_work": {missing: missing, pairs: []codePair{
		{"1", "50 or more hours"},
		{"2", "40-49 hours"},
		{"3", "35-39 hours"},
		{"4", "30-34 hours"},
		{"5", "20-29 hours"},
		{"6", "10-19 hours"},
		{"7", "Fewer than 10 hours"},
		{"8", "Hours vary greatly from week to week"},
	}},
	"commute_freq": {missing: missing, pairs: weeklyFreqPairs},
	"commute_mode": {missing: missing, pairs: commuteModePairs},
	"work_flex": {missing: missing, pairs: []codePair{
		{"1", "No flexibility (must always arrive on time)"},
		{"2", "Can arrive up to 15 minutes earlier/later"},
		{"3", "Can arrive up to 30 minutes earlier/later"},
		{"4", "Can arrive up to 45 minutes earlier/later"},
		{"5", "Can arrive more than an hour earlier/later"},
		{"6", "Sets own schedule (start time can vary greatly)"},
	}},
	"work_park_pay": {missing: missing, pairs: []codePair{
		{"1", "No cost to anyone to park at/near work"},
		{"2", "Employer pays all parking costs"},
		{"3", "Employer offers discounted monthly parking pass"},
		{"4", "Employer offers discounted other (e.g., daily, weekly) parking pass"},
		{"5", "Personally pay all cost for monthly parking pass"},
		{"6", "Personally pay all cost for daily parking"},
		{"7", "Personally pay for parking on other (daily, biweekly, annual) schedule"},
		{"96", notApplicable},
		{"98", "Do not know"},
	}},
	"work_park_cost_dk": {missing: notApplicable, pairs: []codePair{
		{"0", "No"},
		{"1", "Yes"},
	}},
	"work_park_ease": {missing: missing, pairs: []codePair{
		{"1", "Easy to find a parking spot"},
		{"2", "Difficult to find a parking spot (usually takes a few minutes)"},
		{"96", notApplicable},
	}},
	"telecommute_freq":        {missing: missing, pairs: weeklyFreqPairs},
	"commute_subsidy_none":    yesNoMissing,
	"commute_subsidy_parking": yesNoMissing,
	"commute_subsidy_transit": yesNoMissing,
	"commute_subsidy_vanpool": yesNoMissing,
	"commute_subsidy_cash":    yesNoMissing,
	"commute_subsidy_other":   yesNoMissing,
	"secondhome":              yesNoMissing,
	"smartphone_type": {missing: missing, pairs: []codePair{
		{"1", "Yes, has an Android phone"},
		{"2", "Yes, has an iPhone"},
		{"3", "Yes, has a Windows Phone"},
		{"4", "Yes, has a Blackberry"},
		{"5", "Yes, has other type of smartphone"},
		{"99", notApplicable},
	}},
	"smartphone_age": {missing: missing, pairs: []codePair{
		{"1", "Yes"},
		{"2", "No"},
		{"99", notApplicable},
	}},
	"child_smartphone": {missing: missing, pairs: []codePair{
		{"1", "Yes"},
		{"2", "No"},
		{"99", notApplicable},
	}},
	"callcenter_diary": yesNoNA99,
	"mobile_diary":     yesNoNA99,
	"day1_complete":    dayCompleteMapping,
	"day2_complete":    dayCompleteMapping,
	"day3_complete":    dayCompleteMapping,
	"day4_complete":    dayCompleteMapping,
	"day5_complete":    dayCompleteMapping,
	"day6_complete":    dayCompleteMapping,
	"day7_complete":    dayCompleteMapping,
}

var personAge16Fields = []string{
	"employment", "jobs_count", "license", "military",
	"ethnicity_amindian_alaska", "ethnicity_asian", "ethnicity_black",
	"ethnicity_hispanic", "ethnicity_hawaiian_pacific", "ethnicity_white",
	"ethnicity_other", "ethnicity_prefernot", "disability",
	"transit_freq", "transitpass", "job_type", "occupation", "industry",
	"hours_work", "commute_freq", "commute_mode", "work_flex",
	"work_park_pay", "work_park_cost_dk", "work_park_ease",
	"telecommute_freq", "commute_subsidy_none", "commute_subsidy_parking",
	"commute_subsidy_transit", "commute_subsidy_vanpool",
	"commute_subsidy_cash", "commute_subsidy_other",
	"commute_subsidy_specify", "work_address", "secondwork_address",
	"smartphone_type", "smartphone_age",
}

var personNotEmployedFields = []string{
	"jobs_count", "military", "job_type", "occupation", "industry",
	"hours_work", "commute_freq", "commute_mode", "work_flex",
	"work_park_pay", "work_park_cost_dk", "work_park_ease",
	"telecommute_freq", "commute_subsidy_none", "commute_subsidy_parking",
	"commute_subsidy_transit", "commute_subsidy_vanpool",
	"commute_subsidy_cash", "commute_subsidy_other",
	"commute_subsidy_specify", "work_address", "secondwork_address",
}

var personActiveDutyFields = []string{
	"job_type", "occupation", "industry", "hours_work", "commute_freq",
	"commute_mode", "work_flex", "work_park_pay", "work_park_cost_dk",
	"work_park_ease", "telecommute_freq", "commute_subsidy_none",
	"commute_subsidy_parking", "commute_subsidy_transit",
	"commute_subsidy_vanpool", "commute_subsidy_cash",
	"commute_subsidy_other", "commute_subsidy_specify",
}

var personCommuteNeverFields = []string{
	"commute_mode", "work_flex", "work_park_pay", "work_park_cost_dk",
	"work_park_ease", "commute_subsidy_none", "commute_subsidy_parking",
	"commute_subsidy_transit", "commute_subsidy_vanpool",
	"commute_subsidy_cash", "commute_subsidy_other",
	"commute_subsidy_specify",
}

// Commute modes that put the trip in a personal vehicle; anything else
// makes the work parking questions inapplicable.
var personVehicleCommuteModes = []string{
	"Drive alone",
	"Carpool with only family/household member(s)",
	"Carpool with at least one person not in household",
	"Motorcycle/moped/scooter",
}

// The person rule chain is long and order is load bearing: the age
// blocks run first so the later employment and commute blocks see
// their assignments, and the final Missing fills only touch what no
// earlier rule claimed.
var personRules = []rule{
	{when: isIn("age", "Under 5 years old", "5-15 years"), set: personAge16Fields, to: notApplicable},
	{when: not(isEq("age", "16-17 years")), set: []string{"child_smartphone"}, to: notApplicable},
	{when: isIn("age", "Under 5 years old", "5-15 years", "16-17 years"),
		set: []string{"student", "education", "physical_activity"}, to: notApplicable},
	{when: isEq("employment", "Not currently employed"), set: personNotEmployedFields, to: notApplicable},
	// no way to differentiate between those with a second work that
	// have second work address missing and those who do not have a
	// second work, assume Not Applicable if missing
	{when: isNull("secondwork_address"), set: []string{"secondwork_address"}, to: notApplicable},
	{when: isEq("ethnicity_prefernot", "Yes"),
		set: []string{"ethnicity_amindian_alaska", "ethnicity_asian", "ethnicity_black",
			"ethnicity_hispanic", "ethnicity_hawaiian_pacific", "ethnicity_white",
			"ethnicity_other"}, to: notApplicable},
	{when: isIn("transit_freq", "1-3 days per month", "Less than monthly", "Never"),
		set: []string{"transitpass"}, to: notApplicable},
	{when: isIn("schooltype", missing, notApplicable),
		set: []string{"mainschool_address", "secondschool_address"}, to: notApplicable},
	// no indicator if second school exists, assume Not Applicable if missing
	{when: isNull("secondschool_address"), set: []string{"secondschool_address"}, to: notApplicable},
	{when: isIn("schooltype", "Cared for at home", "Kindergarten-Grade 5 (home school)",
		"Grade 6-Grade 8 (home school)", "Grade 9-Grade 12 (home school)", missing, notApplicable),
		set: []string{"school_freq", "other_school", "school_mode"}, to: notApplicable},
	{when: isEq("school_freq", "Never, only takes online classes"),
		set: []string{"school_mode"}, to: notApplicable},
	{when: not(isEq("schooltype", "Daycare outside home")),
		set: []string{"daycare_early", "daycare_late"}, to: notApplicable},
	{when: isIn("military", "Active duty within the San Diego region",
		"Active duty outside of the San Diego region"),
		set: personActiveDutyFields, to: notApplicable},
	{when: isEq("job_type", "Work at home only (only telework or self-employed)"),
		set: []string{"telecommute_freq"}, to: notApplicable},
	{when: isIn("job_type", "Work at home only (only telework or self-employed)",
		"Drive/Travel for a living (e.g., bus/truck driver, salesman)"),
		set: []string{"commute_freq"}, to: notApplicable},
	{when: isIn("commute_freq", "Never", notApplicable),
		set: personCommuteNeverFields, to: notApplicable},
	{when: isIn("commute_subsidy_other", "No", notApplicable),
		set: []string{"commute_subsidy_specify"}, to: notApplicable},
	{when: not(isIn("commute_mode", personVehicleCommuteModes...)),
		set: []string{"work_park_pay", "work_park_cost_dk", "work_park_ease"}, to: notApplicable},
	{when: not(isEq("secondhome", "Yes")), set: []string{"secondhome_address"}, to: notApplicable},
	{when: isEq("rmove_participant", "Yes"),
		set: []string{"callcenter_diary", "mobile_diary"}, to: notApplicable},
	{when: isIn("smartphone_type", "Yes, has a Windows Phone",
		"Yes, has other type of smartphone", "Yes, has a Blackberry",
		"No, does not have a smartphone", notApplicable),
		set: []string{"smartphone_age"}, to: notApplicable},
	{when: isNull("mainschool_address"), set: []string{"mainschool_address"}, to: missing},
	{when: isNull("work_address"), set: []string{"work_address"}, to: missing},
}

var personRenames = [][2]string{
	{"personid", "person_id"},
	{"hhid", "household_id"},
	{"pernum", "person_number"},
	{"traveldate_start", "travel_date_start"},
	{"age", "age_category"},
	{"employment", "employment_status"},
	{"jobs_count", "number_of_jobs"},
	{"student", "adult_student_status"},
	{"education", "educational_attainment"},
	{"license", "drivers_license"},
	{"military", "military_status"},
	{"ethnicity_amindian_alaska", "ethnicity_americanindian_alaskanative"},
	{"weight_lbs", "weight"},
	{"transit_freq", "transit_frequency"},
	{"transitpass", "transit_pass"},
	{"schooltype", "school_type"},
	{"school_freq", "school_frequency"},
	{"daycare_early", "daycare_open"},
	{"daycare_late", "daycare_close"},
	{"job_type", "work_location_type"},
	{"hours_work", "hours_worked"},
	{"commute_freq", "commute_frequency"},
	{"work_flex", "work_arrival_frequency"},
	{"work_park_pay", "work_parking_payment"},
	{"work_park_cost", "work_parking_cost"},
	{"work_park_cost_dk", "work_parking_cost_dk"},
	{"work_park_ease", "work_parking_ease"},
	{"telecommute_freq", "telecommute_frequency"},
	{"secondhome", "has_second_home"},
	{"secondhome_address", "second_home_address"},
	{"secondhome_lat", "second_home_latitude"},
	{"secondhome_lng", "second_home_longitude"},
	{"mainschool_address", "school_address"},
	{"mainschool_lat", "school_latitude"},
	{"mainschool_lng", "school_longitude"},
	{"secondschool_address", "second_school_address"},
	{"secondschool_lat", "second_school_latitude"},
	{"secondschool_lng", "second_school_longitude"},
	{"work_lat", "work_latitude"},
	{"work_lng", "work_longitude"},
	{"secondwork_address", "second_work_address"},
	{"secondwork_lat", "second_work_latitude"},
	{"secondwork_lng", "second_work_longitude"},
	{"child_smartphone", "smartphone_child"},
	{"callcenter_diary", "diary_callcenter"},
	{"mobile_diary", "diary_mobile"},
	{"activated_rmove", "rmove_activated"},
	{"numdays_complete", "completed_days"},
	{"day1_complete", "completed_day1"},
	{"day2_complete", "completed_day2"},
	{"day3_complete", "completed_day3"},
	{"day4_complete", "completed_day4"},
	{"day5_complete", "completed_day5"},
	{"day6_complete", "completed_day6"},
	{"day7_complete", "completed_day7"},
}

var personColumns = []string{
	"person_id", "household_id", "person_number", "travel_date_start",
	"rmove_participant", "relationship", "gender", "age_category",
	"employment_status", "number_of_jobs", "adult_student_status",
	"educational_attainment", "drivers_license", "military_status",
	"ethnicity_americanindian_alaskanative", "ethnicity_asian",
	"ethnicity_black", "ethnicity_hispanic", "ethnicity_hawaiian_pacific",
	"ethnicity_white", "ethnicity_other", "disability", "height",
	"weight", "physical_activity", "transit_frequency", "transit_pass",
	"school_type", "school_frequency", "other_school", "school_mode",
	"daycare_open", "daycare_close", "work_location_type", "occupation",
	"industry", "hours_worked", "commute_frequency", "commute_mode",
	"work_arrival_frequency", "work_parking_payment",
	"work_parking_cost", "work_parking_cost_dk", "work_parking_ease",
	"telecommute_frequency", "commute_subsidy_none",
	"commute_subsidy_parking", "commute_subsidy_transit",
	"commute_subsidy_vanpool", "commute_subsidy_cash",
	"commute_subsidy_other", "commute_subsidy_specify",
	"has_second_home", "second_home_address", "second_home_latitude",
	"second_home_longitude", "second_home_shape", "school_address",
	"school_latitude", "school_longitude", "school_shape",
	"second_school_address", "second_school_latitude",
	"second_school_longitude", "second_school_shape", "work_address",
	"work_latitude", "work_longitude", "work_shape",
	"second_work_address", "second_work_latitude",
	"second_work_longitude", "second_work_shape", "smartphone_type",
	"smartphone_age", "smartphone_child", "diary_callcenter",
	"diary_mobile", "rmove_activated", "completed_days",
	"completed_day1", "completed_day2", "completed_day3",
	"completed_day4", "completed_day5", "completed_day6",
	"completed_day7",
}

// buildPersons produces the canonical person list.
func buildPersons(sdrtsRaw, atRaw *Frame, tr *Transformer) (*Table, error) {
	sdrts, err := sdrtsRaw.Select(personSdrtsCols...)
	if err != nil {
		return nil, err
	}
	at, err := atRaw.Select(personAtCols...)
	if err != nil {
		return nil, err
	}

	df, err := reconcile(sdrts, at, nil, personAtFills)
	if err != nil {
		return nil, err
	}

	b := newBatch(df)
	if err := applyMappings(b, personMappings); err != nil {
		return nil, err
	}
	if err := applyRules(b, personRules); err != nil {
		return nil, err
	}

	shapes := [][3]string{
		{"second_home_shape", "secondhome_lng", "secondhome_lat"},
		{"school_shape", "mainschool_lng", "mainschool_lat"},
		{"second_school_shape", "secondschool_lng", "secondschool_lat"},
		{"work_shape", "work_lng", "work_lat"},
		{"second_work_shape", "secondwork_lng", "secondwork_lat"},
	}
	for _, s := range shapes {
		df.AddColumn(s[0], "")
		for i := 0; i < df.Len(); i++ {
			df.Set(i, s[0], pointWKT(tr, df.Get(i, s[1]), df.Get(i, s[2])))
		}
	}

	if err := renameAll(b, personRenames); err != nil {
		return nil, err
	}
	return finish("persons", b, personColumns)
}
