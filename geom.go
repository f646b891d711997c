package hhts

import (
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// pointWKT projects one WGS84 coordinate pair and renders it as WKT.
// Absent or unparseable coordinates yield the empty string, which the
// sink stores as NULL; geometry problems are never fatal.
func pointWKT(tr *Transformer, lonRaw, latRaw string) string {
	if lonRaw == "" || latRaw == "" {
		return ""
	}
	lon, err := strconv.ParseFloat(lonRaw, 64)
	if err != nil {
		return ""
	}
	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return ""
	}
	x, y, ok := tr.Transform(lon, lat)
	if !ok {
		return ""
	}
	return wkt.MarshalString(orb.Point{x, y})
}

// lineWKT renders an ordered WGS84 coordinate sequence as WKT.
// Duplicate points are removed over the whole sequence keeping the
// first occurrence, not just adjacent pairs. Two or more distinct
// points make a LINESTRING, exactly one makes a POINT, zero yields
// the empty string. A point that fails to project drops out; if that
// leaves nothing, the result is empty rather than an error.
func lineWKT(tr *Transformer, coords []orb.Point) string {
	seen := make(map[orb.Point]bool, len(coords))
	var projected []orb.Point
	for _, c := range coords {
		if seen[c] {
			continue
		}
		seen[c] = true
		x, y, ok := tr.Transform(c[0], c[1])
		if !ok {
			continue
		}
		projected = append(projected, orb.Point{x, y})
	}

	switch len(projected) {
	case 0:
		return ""
	case 1:
		return wkt.MarshalString(projected[0])
	default:
		return wkt.MarshalString(orb.LineString(projected))
	}
}
