package hhts

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/tidwall/geojson"
	"github.com/tidwall/geojson/geometry"
)

// ParseBoundary parses a GeoJSON study-area feature used to clip the
// GPS trace.
func ParseBoundary(clipFeature string) (geojson.Object, error) {
	feature, err := geojson.Parse(clipFeature, &geojson.ParseOptions{RequireValid: true})
	if err != nil {
		return nil, fmt.Errorf("parse clip feature: %w", err)
	}
	return feature, nil
}

// clipPoints drops rows whose WGS84 coordinate falls outside the
// boundary and returns how many were dropped. Rows with unparseable
// coordinates are kept; the projection stage already handles those.
func clipPoints(f *Frame, lngCol, latCol string, boundary geojson.Object) int {
	total := f.Len()
	inside := 0
	f.Filter(func(row int) bool {
		lng, err := strconv.ParseFloat(f.Get(row, lngCol), 64)
		if err != nil {
			return true
		}
		lat, err := strconv.ParseFloat(f.Get(row, latCol), 64)
		if err != nil {
			return true
		}
		point := geojson.NewPoint(geometry.Point{X: lng, Y: lat})
		if boundary.Contains(point) {
			inside++
			return true
		}
		return false
	})
	slog.Info(fmt.Sprintf("%d of %d points are inside the boundary", inside, total))
	return total - f.Len()
}
