package datum

import "github.com/geocts/ctsgo/ellipsoid"

// VerticalDatumType classifies a reference surface for heights.
type VerticalDatumType int

const (
	Ellipsoidal VerticalDatumType = iota
	Geoidal
	Depth
	Barometric
	Orthometric
)

// VerticalDatum is a reference surface for heights. A Geoidal datum
// references a grid of geoid undulations (GeoidGridName) used to convert
// between orthometric height and ellipsoidal height; HorizontalDatum names
// the geodetic datum this vertical datum's geoid grid is indexed against
// (geoid undulation lookups are keyed by geographic position in that
// datum's frame).
type VerticalDatum struct {
	Name              string
	Type              VerticalDatumType
	ReferenceEllipsoid ellipsoid.Ellipsoid
	GeoidGridName     string // empty unless Type == Geoidal
	HorizontalDatum    GeodeticDatum
}

func (v VerticalDatum) Equal(other VerticalDatum) bool { return v.Name == other.Name }

// Well-known vertical datums referenced by the spec's compound-CRS
// scenario (spec.md §8 scenario F).
var (
	GRS80Ellipsoidal = VerticalDatum{
		Name: "GRS80_ELLIPSOIDAL", Type: Ellipsoidal, ReferenceEllipsoid: ellipsoid.GRS80, HorizontalDatum: RGF93,
	}
	IGN69 = VerticalDatum{
		Name: "IGN69", Type: Geoidal, ReferenceEllipsoid: ellipsoid.GRS80,
		GeoidGridName: "RAF09.txt", HorizontalDatum: RGF93,
	}
)
