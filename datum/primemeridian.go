// Package datum implements components C, D and E: prime meridians,
// geodetic datums (with their transformation registries) and vertical
// datums.
package datum

// PrimeMeridian is a named longitude offset from Greenwich, in radians.
type PrimeMeridian struct {
	Name            string
	LongitudeRadians float64
}

var (
	Greenwich = PrimeMeridian{Name: "Greenwich", LongitudeRadians: 0}
	Paris     = PrimeMeridian{Name: "Paris", LongitudeRadians: 0.04079234433198} // 2.5969213 grad east of Greenwich
)

func (m PrimeMeridian) Equal(other PrimeMeridian) bool {
	return m.Name == other.Name && m.LongitudeRadians == other.LongitudeRadians
}
