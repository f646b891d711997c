package hhts

import (
	"strconv"

	"github.com/paulmach/orb"
)

var locationCols = []string{
	"tripid", "collected_at", "accuracy", "heading", "speed", "lat", "lng",
}

var locationPointColumns = []string{
	"point_id", "trip_id_location", "collected_at", "accuracy",
	"heading", "speed", "latitude", "longitude", "shape",
}

// buildLocation produces the ordered GPS point table and the companion
// trip path table. Points are ordered by trip then collection time
// before either shape is built; the path for a trip is the line through
// its ordered points.
func buildLocation(sdrtsRaw, atRaw *Frame, tr *Transformer) (points, lines *Table, err error) {
	sdrts, err := sdrtsRaw.Select(locationCols...)
	if err != nil {
		return nil, nil, err
	}
	at, err := atRaw.Select(locationCols...)
	if err != nil {
		return nil, nil, err
	}

	df, err := reconcile(sdrts, at, nil, nil)
	if err != nil {
		return nil, nil, err
	}

	tripIdx := df.index["tripid"]
	timeIdx := df.index["collected_at"]
	df.Sort(func(a, b []string) bool {
		an, aok := parseIntString(a[tripIdx])
		bn, bok := parseIntString(b[tripIdx])
		if aok && bok && an != bn {
			return an < bn
		}
		if a[tripIdx] != b[tripIdx] {
			return a[tripIdx] < b[tripIdx]
		}
		return a[timeIdx] < b[timeIdx]
	})

	// Trip paths from the ordered points, one line per trip.
	linesF := NewFrame("trip_id_location", "shape")
	var curTrip string
	var curCoords []orb.Point
	started := false
	flush := func() {
		linesF.AppendRow(curTrip, lineWKT(tr, curCoords))
	}
	for i := 0; i < df.Len(); i++ {
		trip := df.Get(i, "tripid")
		if !started || trip != curTrip {
			if started {
				flush()
			}
			started = true
			curTrip = trip
			curCoords = curCoords[:0]
		}
		lng, errLng := strconv.ParseFloat(df.Get(i, "lng"), 64)
		lat, errLat := strconv.ParseFloat(df.Get(i, "lat"), 64)
		if errLng == nil && errLat == nil {
			curCoords = append(curCoords, orb.Point{lng, lat})
		}
	}
	if started {
		flush()
	}

	df.AddColumn("shape", "")
	for i := 0; i < df.Len(); i++ {
		df.Set(i, "shape", pointWKT(tr, df.Get(i, "lng"), df.Get(i, "lat")))
	}

	sequentialKey(df, "point_id", 0)

	pb := newBatch(df)
	renames := [][2]string{
		{"tripid", "trip_id_location"},
		{"lat", "latitude"},
		{"lng", "longitude"},
	}
	if err := renameAll(pb, renames); err != nil {
		return nil, nil, err
	}

	points, err = finish("location", pb, locationPointColumns)
	if err != nil {
		return nil, nil, err
	}
	lines = &Table{Name: "location_lines", F: linesF, cats: map[string][]string{}}
	return points, lines, nil
}
