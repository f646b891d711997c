package hhts

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTransformer(t *testing.T) *Transformer {
	t.Helper()
	tr, err := NewTransformer(2230)
	require.NoError(t, err)
	return tr
}

func TestTransformerUnsupportedSystem(t *testing.T) {
	_, err := NewTransformer(4326)
	require.Error(t, err)
}

func TestTransformerFalseOrigin(t *testing.T) {
	tr := testTransformer(t)

	// The central meridian at the latitude of false origin must land
	// exactly on the declared false easting/northing.
	x, y, ok := tr.Transform(-116.25, 32+10.0/60)
	require.True(t, ok)
	assert.InDelta(t, 6561666.667, x, 0.01)
	assert.InDelta(t, 1640416.667, y, 0.01)
}

func TestTransformerAxisDirections(t *testing.T) {
	tr := testTransformer(t)

	x1, y1, ok := tr.Transform(-117.2, 32.7)
	require.True(t, ok)
	x2, _, ok := tr.Transform(-117.1, 32.7)
	require.True(t, ok)
	_, y3, ok := tr.Transform(-117.2, 32.8)
	require.True(t, ok)

	assert.Greater(t, x2, x1)
	assert.Greater(t, y3, y1)
}

func TestTransformerRejectsBadInput(t *testing.T) {
	tr := testTransformer(t)

	_, _, ok := tr.Transform(-117.2, 91)
	assert.False(t, ok)
	_, _, ok = tr.Transform(181, 32.7)
	assert.False(t, ok)
}

func TestPointWKT(t *testing.T) {
	tr := testTransformer(t)

	assert.Equal(t, "", pointWKT(tr, "", "32.7"))
	assert.Equal(t, "", pointWKT(tr, "-117.2", ""))
	assert.Equal(t, "", pointWKT(tr, "not a number", "32.7"))

	got := pointWKT(tr, "-117.1611", "32.7157")
	assert.True(t, strings.HasPrefix(got, "POINT"), got)
	assert.Equal(t, got, pointWKT(tr, "-117.1611", "32.7157"))
}

func TestLineWKT(t *testing.T) {
	tr := testTransformer(t)

	assert.Equal(t, "", lineWKT(tr, nil))

	single := lineWKT(tr, []orb.Point{{-117.16, 32.71}})
	assert.True(t, strings.HasPrefix(single, "POINT"), single)

	// Duplicates collapse over the whole sequence, not just adjacent
	// pairs, so a path that returns to its start keeps two points.
	a := orb.Point{-117.16, 32.71}
	b := orb.Point{-117.15, 32.72}
	line := lineWKT(tr, []orb.Point{a, b, a})
	assert.True(t, strings.HasPrefix(line, "LINESTRING"), line)
	assert.Equal(t, 1, strings.Count(line, ","))

	collapsed := lineWKT(tr, []orb.Point{a, a, a})
	assert.True(t, strings.HasPrefix(collapsed, "POINT"), collapsed)
}
