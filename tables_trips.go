package hhts

import "strings"

var tripSdrtsCols = []string{
	"tripid", "tripid_linked", "location_tripid", "personid", "hhid",
	"traveldate", "daynum", "travel_dow", "data_source", "svy_complete",
	"completed_at", "day_hhcomplete", "pday_complete",
	"h_complete_weekdays", "revised_at", "revised_count", "error",
	"flag_teleport", "copied_trip", "analyst_merged", "analyst_split",
	"user_merged", "user_split", "added_trip", "nonproxy_derived_trip",
	"proxy_added_trip", "unlinked_transit_trip", "origin_name",
	"origin_address", "origin_lat", "origin_lng", "destination_name",
	"destination_address", "destination_lat", "destination_lng",
	"o_purpose", "o_purpose_other", "o_purpose_inferred", "d_purpose",
	"d_purpose_other", "d_purpose_inferred", "departure_time",
	"arrival_time", "travelers_total", "travelers_hh", "travelers_nonhh",
	"mode1", "mode2", "mode3", "mode4", "transit_access",
	"transit_egress", "google_mode", "driver", "toll_no", "toll_express",
	"parklocation", "parktype", "parkcost", "park_cost_dk",
	"parkegress_time", "taxitype", "taxicost", "taxi_cost_dk", "airtype",
	"airfarecost", "airfare_cost_dk", "bustype", "buscost",
	"bus_cost_dk", "railtype", "railcost", "rail_cost_dk", "ferrytype",
	"ferrycost", "ferry_cost_dk", "parkride_lot", "parkride_city",
	"trip_path_distance", "trip_duration", "trip_duration_reported",
	"speed_mph", "h_multiday_factor", "multiday_weight_456x",
}

var tripAtCols = []string{
	"tripid", "tripid_linked", "personid", "hhid", "traveldate",
	"daynum", "travel_dow", "svy_complete", "completed_at", "revised_at",
	"revised_count", "error", "flag_teleport", "copied_trip",
	"analyst_merged", "analyst_split", "user_merged", "user_split",
	"added_trip", "unlinked_transit_trip", "origin_lat", "origin_lng",
	"destination_lat", "destination_lng", "o_purpose", "o_purpose_other",
	"o_purpose_inferred", "d_purpose", "d_purpose_other",
	"d_purpose_inferred", "departure_time", "arrival_time",
	"travelers_total", "travelers_hh", "travelers_nonhh", "mode1",
	"google_mode", "driver", "parklocation", "parktype", "parkcost",
	"park_cost_dk", "parkegress_time", "taxitype", "taxicost",
	"taxi_cost_dk", "airtype", "airfarecost", "airfare_cost_dk",
	"bustype", "buscost", "bus_cost_dk", "railtype", "railcost",
	"rail_cost_dk", "ferrytype", "ferrycost", "ferry_cost_dk",
	"trip_path_distance", "trip_duration", "speed_mph",
}

// The AT trip extract is rMove only and carries no part two diary or
// weighting fields. location_tripid is back-filled separately from
// tripid_linked before the merge.
var tripAtFills = map[string]string{
	"data_source":            "1",
	"day_hhcomplete":         "99",
	"pday_complete":          "99",
	"nonproxy_derived_trip":  "99",
	"proxy_added_trip":       "99",
	"origin_name":            notApplicable,
	"origin_address":         notApplicable,
	"destination_name":       notApplicable,
	"destination_address":    notApplicable,
	"transit_access":         "99",
	"transit_egress":         "99",
	"toll_no":                "99",
	"toll_express":           "99",
	"mode2":                  "",
	"mode3":                  "",
	"mode4":                  "",
	"parkride_lot":           "",
	"parkride_city":          "",
	"h_complete_weekdays":    "",
	"trip_duration_reported": "",
	"h_multiday_factor":      "",
	"multiday_weight_456x":   "",
}

var tripPurposePairs = []codePair{
	{"1", "Home"},
	{"3", "School/Class"},
	{"5", "Drop off, pick up, accompany person (Online diary only)"},
	{"7", "Social/leisure/vacation activity (Online diary only)"},
	{"10", "Primary workplace"},
	{"11", "Work-related"},
	{"12", "Traveling for work (e.g., going to airport)"},
	{"13", "Volunteer work"},
	{"14", "Other work"},
	{"21", "K-12 School"},
	{"22", "College/University"},
	{"24", "Other education-related (e.g., field trip)"},
	{"25", "Vocational education"},
	{"30", "Grocery"},
	{"31", "Gas"},
	{"32", "Routine shopping"},
	{"33", "Errands without appointment"},
	{"34", "Medical"},
	{"36", "Shopping for a major item"},
	{"37", "Errands with appointment"},
	{"45", "Pick someone up (rMove only)"},
	{"46", "Drop someone off (rMove only)"},
	{"47", "Accompany someone (rMove only)"},
	{"48", "Multiple: pickup, dropoff, accompany (rMove only)"},
	{"50", "Restaurant"},
	{"51", "Exercise"},
	{"52", "Social (rMove only)"},
	{"53", "Leisure/entertainment (rMove only)"},
	{"54", "Religious/civic (rMove only)"},
	{"55", "Vacation/travel (rMove only)"},
	{"56", "Family activity (rMove only)"},
	{"60", "Change travel mode"},
	{"61", "Other errand"},
	{"62", "Other leisure (rMove only)"},
	{"97", "Other purpose"},
	{"99", "Other"},
	{"-9999", "Technical error"},
	{"-9998", "Participant non-response"},
}

var tripModePairs = []codePair{
	{"1", "Walk/jog/wheelchair"},
	{"2", "Personal bicycle"},
	{"3", "Borrowed bicycle"},
	{"4", "Rental bicycle"},
	{"6", "Household vehicle 1"},
	{"7", "Household vehicle 2"},
	{"8", "Household vehicle 3"},
	{"9", "Household vehicle 4"},
	{"10", "Household vehicle 5"},
	{"11", "Household vehicle 6"},
	{"12", "Household vehicle 7"},
	{"16", "Other household vehicle"},
	{"17", "Rental car"},
	{"18", "Carshare"},
	{"21", "Vanpool"},
	{"22", "Other auto"},
	{"23", "Bus"},
	{"24", "School bus"},
	{"25", "Intercity bus"},
	{"26", "Shuttle bus"},
	{"27", "Paratransit"},
	{"28", "Other bus"},
	{"30", "Subway"},
	{"31", "Airplane"},
	{"32", "Ferry or water taxi"},
	{"33", "Work car"},
	{"34", "Friends car"},
	{"36", "Taxi - Regular"},
	{"37", "Taxi - Rideshare"},
	{"38", "University bus or shuttle"},
	{"39", "Rail - Light"},
	{"41", "Rail - Intercity"},
	{"42", "Rail - Other"},
	{"43", "Skateboard"},
	{"44", "Golf cart"},
	{"45", "ATV"},
	{"47", "Other household motorcycle"},
	{"55", "Express bus/Rapid"},
	{"97", "Other mode"},
	{"150", "San Diego Coaster Line"},
	{"-9999", "Technical error"},
	{"-9998", "Participant non-response"},
}

var tripTransitAccessPairs = []codePair{
	{"1", "Walked or jogged"},
	{"2", "Rode a bike"},
	{"3", "Drove and parked a car"},
	{"4", "Got dropped off"},
	{"5", "Took a taxi"},
	{"6", "Transferred from other transit"},
	{"7", "Was already at the stop"},
	{"97", "Other"},
	{"99", notApplicable},
}

var tripTravelersPairs = []codePair{
	{"1", "1"},
	{"2", "2"},
	{"3", "3"},
	{"4", "4"},
	{"5", "5"},
	{"6", "6"},
	{"7", "7"},
	{"8", "8"},
	{"9", "9"},
	{"10", "10"},
	{"-9998", "Participant Non-response"},
	{"-9999", "Technical error"},
}

var tripParkrideLotPairs = []codePair{
	{"1", "Lot #16 Poway Rd at Sabre Springs Pkwy"},
	{"2", "Lot #17 I-8 at Taylor St"},
	{"3", "Lot #20 I-805 at Governor Dr"},
	{"4", "Lot #24 I-805 at Mira Mesa Blvd & Vista Sorrento Pkwy"},
	{"5", "Lot #26 Carmel Mountain Rd at Rancho Carmel Dr"},
	{"6", "Lot #31 SR 56 at Rancho Carmel Dr"},
	{"7", "Lot #4 Carmel Mountain Rd at Freeport Rd"},
	{"8", "Lot #43 I-5 at Gilman Dr"},
	{"9", "Lot #51 I-15 at Rancho Penasquitos Blvd"},
	{"10", "Lot #53 Carmel Mountain Rd at Paseo Cardiel"},
	{"11", "Lot #57 Carmel Mountain Rd at Stoney Creek Rd"},
	{"12", "Lot #6 I-15 at Mira Mesa Blvd"},
	{"13", "Lot #65 I-15 at Rancho Bernardo Rd"},
	{"14", "Lot #7 I-5 at Carmel Valley Rd & Sorrento Valley Rd"},
	{"15", "Lot #76 I-15 at Scripps Poway Pkwy"},
	{"16", "Lot #78 I-805 at Childrens Way"},
	{"17", "Lot #80 Caliente Ave"},
	{"18", "Lot #1 SR 94 at Sweetwater Springs Blvd"},
	{"19", "Lot #28 SR 94 at Potrero Post Office"},
	{"20", "Lot #33 I-15 at Deer Springs Rd"},
	{"21", "Lot #34 I-15 at Mountain Meadow Rd"},
	{"22", "Lot #35 I-15 at Gopher Canyon Rd"},
	{"23", "Lot #37 SR 94 at Avocado Blvd"},
	{"24", "Lot #40 SR 54 at Jamacha Blvd"},
	{"25", "Lot #71 Sweetwater Springs Blvd at Austin Dr"},
	{"26", "Lot #11 SR 78 at Broadway"},
	{"27", "Lot #3 Felicita Ave at Escondido Blvd"},
	{"28", "Lot #30 I-15 at El Norte Pkwy"},
	{"29", "Lot #38 7 Oakes Rd at El Norte Pkwy"},
	{"30", "Lot #81 Westfield North County"},
	{"31", "Lot #22 I-8 at Murray Dr"},
	{"32", "Lot #59 Bancroft Dr at Grossmont Blvd"},
	{"33", "Lot #60 Severin Dr at Bancroft Dr"},
	{"34", "Lot #61 Severin Dr at Murray Dr"},
	{"35", "Lot #8 Lemon Grove Ave at High St"},
	{"36", "Lot #39 SR 78 at College Blvd (South)"},
	{"37", "Lot #44 I-5 at SR 78 & Moreno St"},
	{"38", "Lot #45 SR 78 at College Blvd (North)"},
	{"39", "Lot #5 Maxson St at Barnes St"},
	{"40", "Lot #73 Mission Ave at Frontier Dr"},
	{"41", "Lot #32 I-5 at La Costa Ave"},
	{"42", "Lot #47 I-5 at Birmingham Dr"},
	{"43", "Lot #62 Encinitas Blvd at Calle Magdelena"},
	{"44", "Lot #10 SR 67 at Mapleview St"},
	{"45", "Lot #2 SR 67 at Riverford Rd & Woodside Ave"},
	{"46", "Lot #42 I-8 at Lake Jennings Park Rd"},
	{"47", "Lot #48 Twin Peaks Rd at Budwin Ln"},
	{"48", "Lot #77 SR 67 at Poway Rd"},
	{"49", "Lot #25 SR 54 at Washington Ave"},
	{"50", "Lot #41 I-8 at Los Coches Rd"},
	{"51", "Lot #63 SR 67 at Day St"},
	{"52", "Lot #75 SR 67 at Dye Rd"},
	{"53", "Lot #70 Mission Gorge Rd at Big Rock Dr"},
	{"54", "Lot #72 North Magnolia Ave at Alexander Way"},
	{"55", "Lot #50 Telegraph Canyon Rd at Paseo Del Ray"},
	{"56", "Lot #56 East H St at Buena Vista Way"},
	{"57", "Lot #46 SR 76 at Sweetgrass Ln"},
	{"58", "Lot #29 I-8 at Japatul Valley Rd"},
	{"59", "Lot #69 SR 78 at Barham Dr"},
	{"60", "Lot #19 I-15 at SR 76"},
	{"61", "Lot #21 SR 78 at Sunset Dr & Seaview Pl"},
	{"62", "Lot #12 Lemon Grove Ave at Lincoln St"},
	{"63", "Lot #9 I-805 at Sweetwater Rd"},
}

var tripParkrideCityPairs = []codePair{
	{"1", "Bonsall"},
	{"2", "Chula Vista"},
	{"3", "Descanso"},
	{"4", "El Cajon"},
	{"5", "Encinitas"},
	{"6", "Escondido"},
	{"7", "La Mesa"},
	{"8", "Lakeside"},
	{"9", "Lemon Grove"},
	{"10", "National City"},
	{"11", "Oceanside"},
	{"12", "Pala"},
	{"13", "Poway"},
	{"14", "Ramona"},
	{"15", "San Diego"},
	{"16", "San Diego County"},
	{"17", "San Marcos"},
	{"18", "Santee"},
	{"19", "Vista"},
}

var yesNoNotApplicable99 = codeMapping{missing: missing, pairs: []codePair{
	{"0", "No"},
	{"1", "Yes"},
	{"99", notApplicable},
}}

var tripMappings = map[string]codeMapping{
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
	"svy_complete":   yesNoMissing,
	"day_hhcomplete": yesNoNotApplicable99,
	"pday_complete":  yesNoNotApplicable99,
	"error": {missing: missing, pairs: []codePair{
		{"1", "No error"},
		{"2", "Not moving"},
		{"3", "Still traveling"},
		{"4", "Made other stops"},
		{"97", "Other error"},
	}},
	"flag_teleport":         yesNoMissing,
	"copied_trip":           yesNoMissing,
	"analyst_merged":        yesNoMissing,
	"analyst_split":         yesNoMissing,
	"user_merged":           yesNoMissing,
	"user_split":            yesNoMissing,
	"added_trip":            yesNoMissing,
	"nonproxy_derived_trip": yesNoNotApplicable99,
	"proxy_added_trip":      yesNoNotApplicable99,
	"unlinked_transit_trip": yesNoMissing,
	"o_purpose":             {missing: missing, pairs: tripPurposePairs},
	"o_purpose_inferred":    {missing: missing, pairs: tripPurposePairs},
	"d_purpose":             {missing: missing, pairs: tripPurposePairs},
	"d_purpose_inferred":    {missing: missing, pairs: tripPurposePairs},
	"travelers_total":       {missing: missing, pairs: tripTravelersPairs},
	"travelers_hh":          {missing: missing, pairs: tripTravelersPairs},
	"travelers_nonhh": {missing: missing, pairs: []codePair{
		{"0", "0"},
		{"1", "1"},
		{"2", "2"},
		{"3", "3"},
		{"4", "4"},
		{"5", "5+"},
		{"-9998", "Participant Non-response"},
		{"-9999", "Technical error"},
	}},
	"mode1":          {missing: notApplicable, pairs: tripModePairs},
	"mode2":          {missing: notApplicable, pairs: tripModePairs},
	"mode3":          {missing: notApplicable, pairs: tripModePairs},
	"mode4":          {missing: notApplicable, pairs: tripModePairs},
	"transit_access": {missing: missing, pairs: tripTransitAccessPairs},
	"transit_egress": {missing: missing, pairs: tripTransitAccessPairs},
	"google_mode": {missing: notApplicable, pairs: []codePair{
		{"DRIVE", "DRIVE"},
		{"TRANSIT", "TRANSIT"},
		{"WALK/BIKE", "WALK/BIKE"},
	}},
	"driver": {missing: missing, pairs: []codePair{
		{"1", "Driver"},
		{"2", "Passenger"},
		{"3", "Both (switched drivers during trip)"},
	}},
	// flip mapping, the survey instrument asked the question negated
	"toll_no": {missing: missing, pairs: []codePair{
		{"1", "No"},
		{"0", "Yes"},
		{"99", notApplicable},
	}},
	"toll_express": yesNoNotApplicable99,
	"parklocation": {missing: missing, pairs: []codePair{
		{"1", "My own driveway/garage"},
		{"2", "Someone elses driveway"},
		{"3", "Parking lot/garage"},
		{"4", "On street parking"},
		{"5", "Park & Ride lot"},
		{"6", "Did not park (e.g., waited, drop-off, drive-thru)"},
		{"97", "Other"},
		{"-9999", "Technical error"},
		{"-9998", "Participant non-response"},
	}},
	"parktype": {missing: missing, pairs: []codePair{
		{"1", "Free parking (no cost)"},
		{"2", "Used a parking pass (any type)"},
		{"3", "Paid via cash, credit card, or ticket(s)"},
		{"4", "Reserved parking service (e.g., ParkingPanda)"},
		{"5", "Another person paid"},
		{"97", "Other"},
		{"-9999", "Technical error"},
		{"-9998", "Participant non-response"},
	}},
	"park_cost_dk": yesNoMissing,
	"taxitype": {missing: missing, pairs: []codePair{
		{"1", "I paid the fare myself (no reimbursement)"},
		{"2", "Employer paid (I am reimbursed)"},
		{"3", "Split/shared fare with other(s)"},
		{"4", "Someone else paid 100% (all of taxi fare)"},
		{"97", "Other"},
		{"-9999", "Technical error"},
		{"-9998", "Participant non-response"},
	}},
	"taxi_cost_dk": yesNoMissing,
	"airtype": {missing: missing, pairs: []codePair{
		{"1", "Personally paid the airfare cost"},
		{"2", "Employer paid 100%"},
		{"3", "Used miles/points to purchase flight"},
		{"4", "Someone else paid 100% (all of airfare cost)"},
		{"97", "Other"},
		{"-9999", "Technical error"},
		{"-9998", "Participant non-response"},
	}},
	"airfare_cost_dk": yesNoMissing,
	"bustype": {missing: missing, pairs: []codePair{
		{"-9999", "Technical error"},
		{"-9998", "Participant non-response"},
		{"1", "Free (no cost)"},
		{"2", "Used pass (any type)"},
		{"3", "Cash, credit card, or ticket(s)"},
		{"97", "Other"},
		{"98", "Do not know"},
	}},
	"bus_cost_dk": yesNoMissing,
	"railtype": {missing: missing, pairs: []codePair{
		{"1", "Free (no cost)"},
		{"2", "Used pass (any type)"},
		{"3", "Cash, credit card, or ticket(s)"},
		{"97", "Other"},
		{"98", "Do not know"},
		{"-9999", "Technical error"},
		{"-9998", "Participant non-response"},
	}},
	"rail_cost_dk": yesNoMissing,
	"ferrytype": {missing: missing, pairs: []codePair{
		{"1", "Free (no cost)"},
		{"2", "Used pass (any type)"},
		{"3", "Cash, credit card, or ticket(s)"},
		{"97", "Other"},
		{"98", "Do not know"},
	}},
	"ferry_cost_dk": yesNoMissing,
	"parkride_lot":  {missing: notApplicable, pairs: tripParkrideLotPairs},
	"parkride_city": {missing: notApplicable, pairs: tripParkrideCityPairs},
}

// Mode groups driving the conditional recodes. The source coding sheet
// merged Vanpool and Bus into a single entry, so the transit group
// matches neither alone; the rail group repeats the bus group.
var tripTransitModes = []string{
	"VanpoolBus",
	"School bus",
	"Intercity bus",
	"Shuttle bus",
	"Paratransit",
	"Other bus",
	"Subway",
	"Ferry or water taxi",
	"University bus or shuttle",
	"Rail - Light",
	"Rail - Intercity",
	"Rail - Other",
	"Express bus/Rapid",
	"San Diego Coaster Line",
}

var tripAutoModes = []string{
	"Household vehicle 1",
	"Household vehicle 2",
	"Household vehicle 3",
	"Household vehicle 4",
	"Household vehicle 5",
	"Household vehicle 6",
	"Household vehicle 7",
	"Other household vehicle",
	"Rental car",
	"Carshare",
	"Other auto",
	"Work car",
	"Friends car",
	"Taxi - Regular",
	"Taxi - Rideshare",
}

var tripAutoNonTaxiModes = tripAutoModes[:len(tripAutoModes)-2]

var tripTaxiModes = []string{"Taxi - Regular", "Taxi - Rideshare"}

var tripBusModes = []string{"Bus", "Intercity bus", "Express bus/Rapid"}

var tripRailModes = tripBusModes

// noTripMode holds when none of the four mode slots is in the group.
func noTripMode(modes ...string) cond {
	return allOf(
		not(isIn("mode1", modes...)),
		not(isIn("mode2", modes...)),
		not(isIn("mode3", modes...)),
		not(isIn("mode4", modes...)),
	)
}

var tripRMoveOnlyFields = []string{
	"origin_name", "origin_address", "destination_name",
	"destination_address", "toll_no", "toll_express", "transit_access",
	"transit_egress", "parkride_lot", "parkride_city",
}

var tripOnlineOnlyFields = []string{
	"revised_count", "error", "flag_teleport", "copied_trip",
	"analyst_merged", "analyst_split", "user_merged", "user_split",
	"added_trip", "nonproxy_derived_trip", "proxy_added_trip",
	"o_purpose_inferred", "d_purpose_inferred",
}

var tripRules = append(
	fillMissing("revised_count", "origin_name", "destination_name",
		"origin_address", "destination_address", "o_purpose_other",
		"d_purpose_other"),
	rule{when: isEq("data_source", "rMove"), set: tripRMoveOnlyFields, to: notApplicable},
	rule{when: isEq("data_source", "Online"), set: tripOnlineOnlyFields, to: notApplicable},
	rule{when: not(isIn("o_purpose", "Other", "Other purpose")),
		set: []string{"o_purpose_other"}, to: notApplicable},
	rule{when: not(isIn("d_purpose", "Other", "Other purpose")),
		set: []string{"d_purpose_other"}, to: notApplicable},
	rule{when: noTripMode(tripTransitModes...),
		set: []string{"transit_access", "transit_egress"}, to: notApplicable},
	rule{when: noTripMode(tripAutoModes...),
		set: []string{"toll_no", "toll_express"}, to: notApplicable},
	rule{when: noTripMode(tripAutoNonTaxiModes...),
		set: []string{"driver", "parklocation"}, to: notApplicable},
	rule{when: not(isIn("parklocation", "Someone elses driveway",
		"Parking lot/garage", "On street parking", "Park & Ride lot")),
		set: []string{"parktype"}, to: notApplicable},
	rule{when: not(isIn("parktype", "Paid via cash, credit card, or ticket(s)",
		"Reserved parking service (e.g., ParkingPanda)", "Another person paid")),
		set: []string{"park_cost_dk"}, to: notApplicable},
	rule{when: not(isEq("parklocation", "Park & Ride lot")),
		set: []string{"parkride_lot", "parkride_city"}, to: notApplicable},
	rule{when: noTripMode(tripTaxiModes...),
		set: []string{"taxitype"}, to: notApplicable},
	rule{when: not(isIn("taxitype", "I paid the fare myself (no reimbursement)",
		"Employer paid (I am reimbursed)", "Split/shared fare with other(s)")),
		set: []string{"taxi_cost_dk"}, to: notApplicable},
	rule{when: noTripMode("Airplane"), set: []string{"airtype"}, to: notApplicable},
	rule{when: not(isIn("taxitype", "Personally paid the airfare cost",
		"Employer paid 100%")),
		set: []string{"airfare_cost_dk"}, to: notApplicable},
	rule{when: noTripMode(tripBusModes...), set: []string{"bustype"}, to: notApplicable},
	rule{when: not(isEq("bustype", "Cash, credit card, or ticket(s)")),
		set: []string{"bus_cost_dk"}, to: notApplicable},
	rule{when: noTripMode(tripRailModes...), set: []string{"railtype"}, to: notApplicable},
	rule{when: not(isEq("railtype", "Cash, credit card, or ticket(s)")),
		set: []string{"rail_cost_dk"}, to: notApplicable},
	rule{when: noTripMode("Ferry or water taxi"),
		set: []string{"ferrytype"}, to: notApplicable},
	rule{when: not(isEq("ferrytype", "Cash, credit card, or ticket(s)")),
		set: []string{"ferry_cost_dk"}, to: notApplicable},
)

var tripRenames = [][2]string{
	{"tripid", "trip_id"},
	{"tripid_linked", "trip_id_linked"},
	{"location_tripid", "trip_id_location"},
	{"personid", "person_id"},
	{"hhid", "household_id"},
	{"traveldate", "travel_date"},
	{"daynum", "travel_day_number"},
	{"travel_dow", "travel_day_of_week"},
	{"svy_complete", "completed_trip_survey"},
	{"completed_at", "completed_date"},
	{"day_hhcomplete", "completed_household_survey"},
	{"pday_complete", "completed_person_survey"},
	{"h_complete_weekdays", "number_household_survey_weekdays"},
	{"analyst_merged", "analyst_merged_trip"},
	{"analyst_split", "analyst_split_trip"},
	{"user_merged", "user_merged_trip"},
	{"user_split", "user_split_trip"},
	{"origin_lat", "origin_latitude"},
	{"origin_lng", "origin_longitude"},
	{"destination_lat", "destination_latitude"},
	{"destination_lng", "destination_longitude"},
	{"o_purpose", "origin_purpose"},
	{"o_purpose_other", "origin_purpose_other_specify"},
	{"o_purpose_inferred", "origin_purpose_inferred"},
	{"d_purpose", "destination_purpose"},
	{"d_purpose_other", "destination_purpose_other_specify"},
	{"d_purpose_inferred", "destination_purpose_inferred"},
	{"travelers_total", "travelers"},
	{"travelers_hh", "travelers_household"},
	{"travelers_nonhh", "travelers_non_household"},
	{"mode1", "mode_1"},
	{"mode2", "mode_2"},
	{"mode3", "mode_3"},
	{"mode4", "mode_4"},
	{"transit_access", "mode_transit_access"},
	{"transit_egress", "mode_transit_egress"},
	{"toll_no", "toll_road"},
	{"toll_express", "toll_road_express"},
	{"parklocation", "parking_location"},
	{"parktype", "parking_pay_type"},
	{"parkcost", "parking_cost"},
	{"park_cost_dk", "parking_cost_dk"},
	{"parkegress_time", "parking_egress_duration"},
	{"taxitype", "taxi_pay_type"},
	{"taxicost", "taxi_cost"},
	{"airtype", "airplane_pay_type"},
	{"airfarecost", "airplane_cost"},
	{"airfare_cost_dk", "airplane_cost_dk"},
	{"bustype", "bus_pay_type"},
	{"buscost", "bus_cost"},
	{"railtype", "rail_pay_type"},
	{"railcost", "rail_cost"},
	{"ferrytype", "ferry_pay_type"},
	{"ferrycost", "ferry_cost"},
	{"trip_path_distance", "distance"},
	{"trip_duration", "duration"},
	{"trip_duration_reported", "duration_reported"},
	{"speed_mph", "speed"},
	{"h_multiday_factor", "weight_household_multiday_factor"},
	{"multiday_weight_456x", "weight_person_multiday_456x"},
}

var tripColumns = []string{
	"trip_id", "trip_id_linked", "trip_id_location", "person_id",
	"household_id", "travel_date", "travel_day_number",
	"travel_day_of_week", "data_source", "completed_trip_survey",
	"completed_date", "completed_household_survey",
	"completed_person_survey", "number_household_survey_weekdays",
	"revised_at", "revised_count", "error", "flag_teleport",
	"copied_trip", "analyst_merged_trip", "analyst_split_trip",
	"user_merged_trip", "user_split_trip", "added_trip",
	"nonproxy_derived_trip", "proxy_added_trip", "unlinked_transit_trip",
	"origin_name", "origin_address", "origin_latitude",
	"origin_longitude", "origin_shape", "destination_name",
	"destination_address", "destination_latitude",
	"destination_longitude", "destination_shape", "origin_purpose",
	"origin_purpose_other_specify", "origin_purpose_inferred",
	"destination_purpose", "destination_purpose_other_specify",
	"destination_purpose_inferred", "departure_time", "arrival_time",
	"travelers", "travelers_household", "travelers_non_household",
	"mode_1", "mode_2", "mode_3", "mode_4", "mode_transit_access",
	"mode_transit_egress", "google_mode", "driver", "toll_road",
	"toll_road_express", "parking_location", "parking_pay_type",
	"parking_cost", "parking_cost_dk", "parking_egress_duration",
	"taxi_pay_type", "taxi_cost", "taxi_cost_dk", "airplane_pay_type",
	"airplane_cost", "airplane_cost_dk", "bus_pay_type", "bus_cost",
	"bus_cost_dk", "rail_pay_type", "rail_cost", "rail_cost_dk",
	"ferry_pay_type", "ferry_cost", "ferry_cost_dk", "parkride_lot",
	"parkride_city", "distance", "duration", "duration_reported",
	"speed", "weight_trip", "weight_person_trip",
	"weight_household_multiday_factor", "weight_person_multiday_456x",
}

// buildTrips produces the canonical person trip list.
func buildTrips(sdrtsRaw, atRaw *Frame, tr *Transformer) (*Table, error) {
	sdrts, err := sdrtsRaw.Select(tripSdrtsCols...)
	if err != nil {
		return nil, err
	}
	at, err := atRaw.Select(tripAtCols...)
	if err != nil {
		return nil, err
	}

	// The AT extract identifies locations by the linked trip id.
	at.AddColumn("location_tripid", "")
	for i := 0; i < at.Len(); i++ {
		at.Set(i, "location_tripid", at.Get(i, "tripid_linked"))
	}

	df, err := reconcile(sdrts, at, nil, tripAtFills)
	if err != nil {
		return nil, err
	}

	b := newBatch(df)
	if err := applyMappings(b, tripMappings); err != nil {
		return nil, err
	}
	if err := applyRules(b, tripRules); err != nil {
		return nil, err
	}

	// Online diaries have no location trace; the sink resolves the
	// zero key to its Not Applicable record.
	for i := 0; i < df.Len(); i++ {
		if df.Get(i, "data_source") == "Online" {
			df.Set(i, "location_tripid", "0")
		}
	}

	// The pipe is the bulk-load field delimiter and must not appear in
	// free-text addresses.
	for i := 0; i < df.Len(); i++ {
		df.Set(i, "origin_address", strings.ReplaceAll(df.Get(i, "origin_address"), "|", ""))
		df.Set(i, "destination_address", strings.ReplaceAll(df.Get(i, "destination_address"), "|", ""))
	}

	// Weighting eligibility requires one fully complete travel weekday
	// for the household. Trip weight splits evenly across household
	// members on the trip since each files their own record.
	df.AddColumn("weight_trip", "")
	df.AddColumn("weight_person_trip", "")
	for i := 0; i < df.Len(); i++ {
		weekdays, ok := parseIntCell(df, i, "h_complete_weekdays")
		if !ok || weekdays < 1 {
			continue
		}
		df.Set(i, "weight_person_trip", "1")
		df.Set(i, "weight_trip", "1")
		if n, ok := parseIntString(df.Get(i, "travelers_hh")); ok && n >= 1 && n <= 10 {
			df.Set(i, "weight_trip", formatWeight(1/float64(n)))
		}
	}

	df.AddColumn("origin_shape", "")
	df.AddColumn("destination_shape", "")
	for i := 0; i < df.Len(); i++ {
		df.Set(i, "origin_shape", pointWKT(tr, df.Get(i, "origin_lng"), df.Get(i, "origin_lat")))
		df.Set(i, "destination_shape", pointWKT(tr, df.Get(i, "destination_lng"), df.Get(i, "destination_lat")))
	}

	if err := renameAll(b, tripRenames); err != nil {
		return nil, err
	}
	return finish("trips", b, tripColumns)
}
