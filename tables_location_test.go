package hhts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLocation(t *testing.T) {
	tr := testTransformer(t)

	sdrts := rawFrame(locationCols,
		map[string]string{"tripid": "2", "collected_at": "2017-05-01 10:00:02",
			"lat": "32.71", "lng": "-117.16"},
		map[string]string{"tripid": "1", "collected_at": "2017-05-01 09:00:01",
			"lat": "32.70", "lng": "-117.15"},
		// Same coordinates as the point above; the path drops it.
		map[string]string{"tripid": "1", "collected_at": "2017-05-01 09:00:00",
			"lat": "32.70", "lng": "-117.15"},
	)
	at := rawFrame(locationCols,
		map[string]string{"tripid": "1", "collected_at": "2017-05-01 09:00:02",
			"lat": "32.705", "lng": "-117.155"},
	)

	points, lines, err := buildLocation(sdrts, at, tr)
	require.NoError(t, err)
	assert.Equal(t, "location", points.Name)
	assert.Equal(t, locationPointColumns, points.F.Columns())
	require.Equal(t, 4, points.F.Len())

	// Points sort by trip then collection time before keys are assigned.
	assert.Equal(t, "0", points.F.Get(0, "point_id"))
	assert.Equal(t, "1", points.F.Get(0, "trip_id_location"))
	assert.Equal(t, "2017-05-01 09:00:00", points.F.Get(0, "collected_at"))
	assert.Equal(t, "2017-05-01 09:00:01", points.F.Get(1, "collected_at"))
	assert.Equal(t, "2017-05-01 09:00:02", points.F.Get(2, "collected_at"))
	assert.Equal(t, "2", points.F.Get(3, "trip_id_location"))
	assert.True(t, strings.HasPrefix(points.F.Get(0, "shape"), "POINT"))

	assert.Equal(t, "location_lines", lines.Name)
	require.Equal(t, 2, lines.F.Len())
	assert.Equal(t, "1", lines.F.Get(0, "trip_id_location"))
	// Two distinct coordinates survive the first-occurrence dedup.
	line := lines.F.Get(0, "shape")
	assert.True(t, strings.HasPrefix(line, "LINESTRING"), line)
	assert.Equal(t, 1, strings.Count(line, ","))
	// A single-point trip degrades to a point shape.
	assert.Equal(t, "2", lines.F.Get(1, "trip_id_location"))
	assert.True(t, strings.HasPrefix(lines.F.Get(1, "shape"), "POINT"))
}
