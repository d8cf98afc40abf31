package crs

// CompoundCRS pairs a horizontal CRS (Geographic2D or Projected; never
// itself 3D or Compound) with a VerticalCRS, per spec.md's "Compound:
// horizontal CRS + vertical CRS; operates on 3D points." Splitting it back
// apart for transformation is the planner's responsibility (package plan),
// not this type's — CompoundCRS here is purely a data holder the planner
// type-switches on.
type CompoundCRS struct {
	Name       string
	Horizontal GeodeticCRS
	Vertical   VerticalCRS
}

func (c CompoundCRS) Kind() Kind { return KindCompound }
