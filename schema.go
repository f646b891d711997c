package hhts

// tableSchema declares the relational shape of one output table. Types
// lists the columns that are not plain text; everything else loads as
// TEXT. ForeignIDs drive the referential check after a load.
type tableSchema struct {
	PrimaryKey []string
	Types      map[string]string
	ForeignIDs map[string]foreignID
}

type foreignID struct {
	Table  string
	Column string
}

var surveySchema = map[string]tableSchema{
	"households": {
		PrimaryKey: []string{"household_id"},
		Types: map[string]string{
			"household_id":             "INTEGER",
			"completed_days":           "INTEGER",
			"latitude":                 "REAL",
			"longitude":                "REAL",
			"weight_household_initial": "REAL",
			"weight_household_4x":      "REAL",
			"weight_household_456x":    "REAL",
		},
	},

	"persons": {
		PrimaryKey: []string{"person_id"},
		Types: map[string]string{
			"person_id":               "INTEGER",
			"household_id":            "INTEGER",
			"person_number":           "INTEGER",
			"height":                  "REAL",
			"weight":                  "REAL",
			"work_parking_cost":       "REAL",
			"second_home_latitude":    "REAL",
			"second_home_longitude":   "REAL",
			"school_latitude":         "REAL",
			"school_longitude":        "REAL",
			"second_school_latitude":  "REAL",
			"second_school_longitude": "REAL",
			"work_latitude":           "REAL",
			"work_longitude":          "REAL",
			"second_work_latitude":    "REAL",
			"second_work_longitude":   "REAL",
			"completed_days":          "INTEGER",
		},
		ForeignIDs: map[string]foreignID{
			"household_id": {Table: "households", Column: "household_id"},
		},
	},

	"vehicles": {
		PrimaryKey: []string{"vehicle_id"},
		Types: map[string]string{
			"vehicle_id":                     "INTEGER",
			"household_id":                   "INTEGER",
			"vehicle_number":                 "INTEGER",
			"year":                           "INTEGER",
			"residence_parking_monthly_cost": "REAL",
		},
		ForeignIDs: map[string]foreignID{
			"household_id": {Table: "households", Column: "household_id"},
		},
	},

	"day": {
		PrimaryKey: []string{"day_id"},
		Types: map[string]string{
			"day_id":                           "INTEGER",
			"person_id":                        "INTEGER",
			"household_id":                     "INTEGER",
			"travel_day_number":                "INTEGER",
			"diary_duration":                   "REAL",
			"number_trips":                     "INTEGER",
			"number_surveys":                   "INTEGER",
			"weight_household_multiday_factor": "REAL",
			"weight_person_multiday_456x":      "REAL",
		},
		ForeignIDs: map[string]foreignID{
			"person_id":    {Table: "persons", Column: "person_id"},
			"household_id": {Table: "households", Column: "household_id"},
		},
	},

	"trips": {
		PrimaryKey: []string{"trip_id"},
		Types: map[string]string{
			"trip_id":                          "INTEGER",
			"trip_id_linked":                   "INTEGER",
			"trip_id_location":                 "INTEGER",
			"person_id":                        "INTEGER",
			"household_id":                     "INTEGER",
			"travel_day_number":                "INTEGER",
			"number_household_survey_weekdays": "INTEGER",
			"origin_latitude":                  "REAL",
			"origin_longitude":                 "REAL",
			"destination_latitude":             "REAL",
			"destination_longitude":            "REAL",
			"parking_cost":                     "REAL",
			"parking_egress_duration":          "REAL",
			"taxi_cost":                        "REAL",
			"airplane_cost":                    "REAL",
			"bus_cost":                         "REAL",
			"rail_cost":                        "REAL",
			"ferry_cost":                       "REAL",
			"distance":                         "REAL",
			"duration":                         "REAL",
			"duration_reported":                "REAL",
			"speed":                            "REAL",
			"weight_trip":                      "REAL",
			"weight_person_trip":               "REAL",
			"weight_household_multiday_factor": "REAL",
			"weight_person_multiday_456x":      "REAL",
		},
		ForeignIDs: map[string]foreignID{
			"person_id":    {Table: "persons", Column: "person_id"},
			"household_id": {Table: "households", Column: "household_id"},
		},
	},

	"location": {
		PrimaryKey: []string{"point_id"},
		Types: map[string]string{
			"point_id":         "INTEGER",
			"trip_id_location": "INTEGER",
			"accuracy":         "REAL",
			"heading":          "REAL",
			"speed":            "REAL",
			"latitude":         "REAL",
			"longitude":        "REAL",
		},
	},

	"location_lines": {
		PrimaryKey: []string{"trip_id_location"},
		Types: map[string]string{
			"trip_id_location": "INTEGER",
		},
	},

	"border_trips": {
		PrimaryKey: []string{"border_trip_id"},
		Types: map[string]string{
			"border_trip_id": "INTEGER",
			"household_id":   "INTEGER",
			"trip_id":        "INTEGER",
		},
		ForeignIDs: map[string]foreignID{
			"household_id": {Table: "households", Column: "household_id"},
		},
	},

	"frequencies": {
		PrimaryKey: []string{"table_name", "column_name", "category"},
		Types: map[string]string{
			"count": "INTEGER",
		},
	},

	"intercept": {
		PrimaryKey: []string{"household_id"},
		Types: map[string]string{
			"household_id":          "INTEGER",
			"origin_latitude":       "REAL",
			"origin_longitude":      "REAL",
			"destination_latitude":  "REAL",
			"destination_longitude": "REAL",
			"distance_beeline":      "REAL",
			"expansion_factor":      "REAL",
		},
	},
}
