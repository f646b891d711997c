package hhts

import (
	"fmt"
	"math"
)

// Transformer projects WGS84 longitude/latitude onto a planar state
// plane system. Input axis order is always (x=lon, y=lat) regardless
// of the target system's declared axis convention.
//
// Construction is the expensive part; build one per target system and
// reuse it for every point in a run.
type Transformer struct {
	srid       int
	n, f, rho0 float64
	e          float64
	a          float64
	lon0       float64
	fe, fn     float64
	toUnit     float64
}

// usFoot is the US survey foot in meters.
const usFoot = 1200.0 / 3937.0

// grs80 ellipsoid.
const (
	grs80A    = 6378137.0
	grs80InvF = 298.257222101
)

// NewTransformer supports EPSG:2230, NAD83 / California zone VI in US
// survey feet, the reference deployment's target system.
func NewTransformer(srid int) (*Transformer, error) {
	if srid != 2230 {
		return nil, fmt.Errorf("unsupported target srid %d", srid)
	}

	// Lambert Conformal Conic 2SP, EPSG:2230 parameters.
	lat1 := dms(33, 53) // standard parallel 1
	lat2 := dms(32, 47) // standard parallel 2
	lat0 := dms(32, 10) // latitude of false origin
	lon0 := -dms(116, 15)
	fe := 6561666.667 // US survey feet
	fn := 1640416.667

	es := 1 - math.Pow(1-1/grs80InvF, 2)
	e := math.Sqrt(es)

	m1 := lccM(lat1, e)
	m2 := lccM(lat2, e)
	t0 := lccT(lat0, e)
	t1 := lccT(lat1, e)
	t2 := lccT(lat2, e)

	n := (math.Log(m1) - math.Log(m2)) / (math.Log(t1) - math.Log(t2))
	f := m1 / (n * math.Pow(t1, n))
	rho0 := grs80A * f * math.Pow(t0, n)

	return &Transformer{
		srid: srid,
		n:    n, f: f, rho0: rho0,
		e: e, a: grs80A,
		lon0: lon0, fe: fe, fn: fn,
		toUnit: 1 / usFoot,
	}, nil
}

func (tr *Transformer) SRID() int { return tr.srid }

// Transform projects one WGS84 coordinate. The second return is false
// when the input cannot be projected (out of range or not finite).
func (tr *Transformer) Transform(lon, lat float64) (x, y float64, ok bool) {
	if math.IsNaN(lon) || math.IsNaN(lat) || math.Abs(lat) > 90 || math.Abs(lon) > 180 {
		return 0, 0, false
	}
	phi := lat * math.Pi / 180
	lam := lon * math.Pi / 180

	t := lccT(phi, tr.e)
	rho := tr.a * tr.f * math.Pow(t, tr.n)
	theta := tr.n * (lam - tr.lon0)

	x = tr.fe + rho*math.Sin(theta)*tr.toUnit
	y = tr.fn + (tr.rho0-rho*math.Cos(theta))*tr.toUnit
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0, 0, false
	}
	return x, y, true
}

func lccM(phi, e float64) float64 {
	s := math.Sin(phi)
	return math.Cos(phi) / math.Sqrt(1-e*e*s*s)
}

func lccT(phi, e float64) float64 {
	s := math.Sin(phi)
	return math.Tan(math.Pi/4-phi/2) / math.Pow((1-e*s)/(1+e*s), e/2)
}

func dms(deg, min float64) float64 {
	return (deg + min/60) * math.Pi / 180
}
