package hhts

import (
	"fmt"
	"path/filepath"

	"github.com/tidwall/geojson"
)

// Source extract file names, fixed by the 2016-2017 survey delivery.
var sdrtsFiles = map[string]string{
	"households": "SDRTS_Household_Data_20170731.csv",
	"persons":    "SDRTS_Person_Data_20170731.csv",
	"vehicles":   "SDRTS_Vehicle_Data_20170731.csv",
	"day":        "SDRTS_Day_Data_20170731.csv",
	"trips":      "SDRTS_Trip_Data_20170731.csv",
	"location":   "SDRTS_Location_Data_20170731.csv",
}

var atFiles = map[string]string{
	"households": "SDRTS_AT_HH_Data_20170809.csv",
	"persons":    "SDRTS_AT_Person_Data_20170831.csv",
	"vehicles":   "SDRTS_AT_Vehicle_Data_20170809.csv",
	"day":        "SDRTS_AT_Day_Data_20170831.csv",
	"trips":      "SDRTS_AT_Trip_Data_20170831.csv",
	"location":   "SDRTS_AT_Location_Data_20170809.csv",
	"intercept":  "SDRTS_AT_Intercept_Data_20170608.csv",
}

type RunOpts struct {
	SdrtsDir    string
	AtDir       string
	Tables      []string // subset of canonical table names; nil builds all
	Boundary    geojson.Object
	Frequencies bool
	SRID        int
}

var canonicalTables = []string{
	"households", "persons", "vehicles", "day", "trips", "location",
	"border_trips", "intercept",
}

// Run builds the requested canonical tables from the two survey
// extract directories. Table pipelines are independent: each reads its
// own extracts and any failure aborts the run.
func Run(opts *RunOpts) ([]*Table, error) {
	if opts == nil {
		opts = &RunOpts{}
	}
	srid := opts.SRID
	if srid == 0 {
		srid = 2230
	}
	tr, err := NewTransformer(srid)
	if err != nil {
		return nil, err
	}

	want := make(map[string]bool)
	if len(opts.Tables) == 0 {
		for _, name := range canonicalTables {
			want[name] = true
		}
	} else {
		for _, name := range opts.Tables {
			found := false
			for _, known := range canonicalTables {
				if name == known {
					found = true
					break
				}
			}
			if !found {
				return nil, fmt.Errorf("unknown table %q: %w", name, ErrUnknownColumn)
			}
			want[name] = true
		}
	}

	srcs := &sourceSet{
		sdrtsDir: opts.SdrtsDir,
		atDir:    opts.AtDir,
		cache:    make(map[string]*Frame),
	}

	var tables []*Table
	add := func(t *Table, err error) error {
		if err != nil {
			return err
		}
		tables = append(tables, t)
		return nil
	}

	if want["households"] {
		s, a, err := srcs.pair("households")
		if err != nil {
			return nil, err
		}
		if err := add(buildHouseholds(s, a, tr)); err != nil {
			return nil, fmt.Errorf("households: %w", err)
		}
	}
	if want["persons"] {
		s, a, err := srcs.pair("persons")
		if err != nil {
			return nil, err
		}
		if err := add(buildPersons(s, a, tr)); err != nil {
			return nil, fmt.Errorf("persons: %w", err)
		}
	}
	if want["vehicles"] {
		s, a, err := srcs.pair("vehicles")
		if err != nil {
			return nil, err
		}
		if err := add(buildVehicles(s, a)); err != nil {
			return nil, fmt.Errorf("vehicles: %w", err)
		}
	}
	if want["day"] {
		s, a, err := srcs.pair("day")
		if err != nil {
			return nil, err
		}
		if err := add(buildDay(s, a)); err != nil {
			return nil, fmt.Errorf("day: %w", err)
		}
	}
	if want["trips"] {
		s, a, err := srcs.pair("trips")
		if err != nil {
			return nil, err
		}
		if err := add(buildTrips(s, a, tr)); err != nil {
			return nil, fmt.Errorf("trips: %w", err)
		}
	}
	if want["location"] {
		s, a, err := srcs.pair("location")
		if err != nil {
			return nil, err
		}
		if opts.Boundary != nil {
			clipPoints(s, "lng", "lat", opts.Boundary)
			clipPoints(a, "lng", "lat", opts.Boundary)
		}
		points, lines, err := buildLocation(s, a, tr)
		if err != nil {
			return nil, fmt.Errorf("location: %w", err)
		}
		tables = append(tables, points, lines)
	}
	if want["border_trips"] {
		s, a, err := srcs.pair("households")
		if err != nil {
			return nil, err
		}
		if err := add(buildBorderTrips(s, a)); err != nil {
			return nil, fmt.Errorf("border_trips: %w", err)
		}
	}
	if want["intercept"] {
		a, err := srcs.at("intercept")
		if err != nil {
			return nil, err
		}
		if err := add(buildIntercept(a)); err != nil {
			return nil, fmt.Errorf("intercept: %w", err)
		}
	}

	if opts.Frequencies {
		tables = append(tables, buildFrequencies(tables))
	}
	return tables, nil
}

// sourceSet reads each extract file at most once per run.
type sourceSet struct {
	sdrtsDir string
	atDir    string
	cache    map[string]*Frame
}

func (s *sourceSet) pair(table string) (sdrts, at *Frame, err error) {
	sdrts, err = s.load(filepath.Join(s.sdrtsDir, sdrtsFiles[table]))
	if err != nil {
		return nil, nil, err
	}
	at, err = s.load(filepath.Join(s.atDir, atFiles[table]))
	if err != nil {
		return nil, nil, err
	}
	return sdrts, at, nil
}

func (s *sourceSet) at(table string) (*Frame, error) {
	return s.load(filepath.Join(s.atDir, atFiles[table]))
}

func (s *sourceSet) load(path string) (*Frame, error) {
	if f, ok := s.cache[path]; ok {
		return f, nil
	}
	f, err := readFrame(path)
	if err != nil {
		return nil, err
	}
	s.cache[path] = f
	return f, nil
}
