// Package ellipsoid implements component B: the biaxial rotational
// ellipsoid and its derived quantities.
package ellipsoid

import "math"

// Ellipsoid is a biaxial rotational ellipsoid in its canonical form: the
// semi-major axis a and the inverse flattening invF. Derived quantities are
// computed once at construction and cached on the value, matching the
// spec's "derived on demand and cached" invariant without the complexity of
// lazy memoization (an Ellipsoid is an immutable value once built).
type Ellipsoid struct {
	Name string
	a    float64
	invF float64

	b   float64
	f   float64
	e   float64
	e2  float64
	e2p float64 // second eccentricity squared, e'^2
	n   float64 // third flattening, (a-b)/(a+b)
}

// New builds an Ellipsoid from its semi-major axis and inverse flattening.
// Panics are never used: a == 0 or invF == 0 (meaning a perfect sphere,
// f == 0) are both legal; negative values are the caller's bug and are left
// to surface as NaN downstream rather than guarded here, matching the
// teacher's "don't validate internal invariants" posture.
func New(name string, a, invF float64) Ellipsoid {
	f := 0.0
	if invF != 0 {
		f = 1.0 / invF
	}
	return fromAF(name, a, f, invF)
}

// FromSemiMinorAxis builds an Ellipsoid from its two axes.
func FromSemiMinorAxis(name string, a, b float64) Ellipsoid {
	f := (a - b) / a
	invF := 0.0
	if f != 0 {
		invF = 1.0 / f
	}
	return fromAF(name, a, f, invF)
}

// FromEccentricity builds an Ellipsoid from its semi-major axis and first
// eccentricity.
func FromEccentricity(name string, a, e float64) Ellipsoid {
	f := 1 - math.Sqrt(1-e*e)
	invF := 0.0
	if f != 0 {
		invF = 1.0 / f
	}
	return fromAF(name, a, f, invF)
}

func fromAF(name string, a, f, invF float64) Ellipsoid {
	b := a * (1 - f)
	e2 := 2*f - f*f
	e := math.Sqrt(e2)
	e2p := e2 / (1 - e2)
	n := f / (2 - f) // (a-b)/(a+b) simplifies to f/(2-f)
	return Ellipsoid{Name: name, a: a, invF: invF, b: b, f: f, e: e, e2: e2, e2p: e2p, n: n}
}

func (e Ellipsoid) A() float64               { return e.a }
func (e Ellipsoid) InverseFlattening() float64 { return e.invF }
func (e Ellipsoid) B() float64                { return e.b }
func (e Ellipsoid) F() float64                { return e.f }
func (e Ellipsoid) Eccentricity() float64     { return e.e }
func (e Ellipsoid) Eccentricity2() float64    { return e.e2 }
func (e Ellipsoid) SecondEccentricity2() float64 { return e.e2p }
func (e Ellipsoid) ThirdFlattening() float64  { return e.n }

// IsSphere reports whether the ellipsoid is degenerate (f == 0).
func (e Ellipsoid) IsSphere() bool { return e.f == 0 }

// PrimeVerticalRadius returns N(φ), the radius of curvature in the prime
// vertical at geodetic latitude φ (radians).
func (e Ellipsoid) PrimeVerticalRadius(phi float64) float64 {
	sinPhi := math.Sin(phi)
	return e.a / math.Sqrt(1-e.e2*sinPhi*sinPhi)
}

// MeridianRadius returns M(φ), the radius of curvature in the meridian at
// geodetic latitude φ (radians).
func (e Ellipsoid) MeridianRadius(phi float64) float64 {
	sinPhi := math.Sin(phi)
	return e.a * (1 - e.e2) / math.Pow(1-e.e2*sinPhi*sinPhi, 1.5)
}

// ulpTolerance bounds the (a, 1/f) comparison used by Equal; ellipsoid
// parameters in registries are frequently re-derived from slightly
// different source constants (e.g. GRS80 quoted to varying decimal
// places), so equality must tolerate noise in the last few significant
// digits rather than demand bit-identical floats.
const ulpTolerance = 1e-6

// Equal reports structural equality by (a, 1/f) within ulp tolerance, per
// the spec's invariant.
func (e Ellipsoid) Equal(other Ellipsoid) bool {
	return nearlyEqual(e.a, other.a) && nearlyEqual(e.invF, other.invF)
}

func nearlyEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	scale := a
	if scale < 0 {
		scale = -scale
	}
	if scale < 1 {
		scale = 1
	}
	return diff <= ulpTolerance*scale
}

// Well-known ellipsoids, grounded on the teacher's `ellipsoids` table in
// latlon-ellipsoidal-datum.go, extended with GRS80/WGS84/Bessel values
// needed by the French NTF/RGF93 scenarios in spec.md §8.
var (
	WGS84         = New("WGS84", 6378137, 298.257223563)
	GRS80         = New("GRS80", 6378137, 298.257222101)
	Airy1830      = New("Airy1830", 6377563.396, 299.3249646)
	AiryModified  = New("AiryModified", 6377340.189, 299.3249646)
	Bessel1841    = New("Bessel1841", 6377397.155, 299.1528128)
	Clarke1866    = New("Clarke1866", 6378206.4, 294.978698214)
	Clarke1880IGN = New("Clarke1880IGN", 6378249.2, 293.466021294)
	Intl1924      = New("Intl1924", 6378388, 297) // aka Hayford
	WGS72         = New("WGS72", 6378135, 298.26)
)
