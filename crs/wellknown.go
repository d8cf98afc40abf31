package crs

import (
	"math"

	"github.com/geocts/ctsgo/datum"
	"github.com/geocts/ctsgo/op"
	"github.com/geocts/ctsgo/proj"
	"github.com/geocts/ctsgo/unit"
)

func deg(d float64) float64 { return d * math.Pi / 180 }

// Well-known CRS values exercised by the concrete end-to-end scenarios in
// spec.md §8: WGS84 and RGF93 geographic, Lambert-93 (EPSG:2154) and
// Lambert II étendu (EPSG:27572, on NTF's Paris-meridian realization).
var (
	WGS84Geographic2D = GeographicCRS{
		Name: "WGS84", D: datum.WGS84, AngleUnit: unit.Degree, Extent: datum.World,
	}
	WGS84Geographic3D = GeographicCRS{
		Name: "WGS84", D: datum.WGS84, Dim3D: true, AngleUnit: unit.Degree, HeightUnit: unit.Metre, Extent: datum.World,
	}
	RGF93Geographic2D = GeographicCRS{
		Name: "RGF93", D: datum.RGF93, AngleUnit: unit.Degree, Extent: datum.RGF93.Extent,
	}
	RGF93Geographic3D = GeographicCRS{
		Name: "RGF93", D: datum.RGF93, Dim3D: true, AngleUnit: unit.Degree, HeightUnit: unit.Metre, Extent: datum.RGF93.Extent,
	}
	NTFParisGeographic2D = GeographicCRS{
		Name: "NTF (Paris)", D: datum.NTF_PARIS, AngleUnit: unit.Grad, Extent: datum.NTF.Extent,
	}

	// Lambert93 is EPSG:2154: GRS80/RGF93, 2SP, standard parallels 44N/49N,
	// false origin (46.5N, 3E), FE 700000, FN 6600000.
	Lambert93 = ProjectedCRS{
		Name:       "RGF93 / Lambert-93",
		D:          datum.RGF93,
		LengthUnit: unit.Metre,
		Projection: proj.LambertConformalConic2SP{
			Params: proj.Params{
				Ellipsoid:        datum.RGF93.Ellipsoid,
				CentralMeridian:  deg(3),
				LatitudeOfOrigin: deg(46.5),
				FalseEasting:     700000,
				FalseNorthing:    6600000,
			},
			StandardParallel1: deg(44),
			StandardParallel2: deg(49),
		},
		Extent: op.Rectangle{MinX: 0, MaxX: 1400000, MinY: 6000000, MaxY: 7200000},
	}

	// LambertIIEtendu is EPSG:27572: Clarke 1880 IGN / NTF, Paris meridian,
	// 2SP, standard parallels ~45.9N/47.7N, false origin (46.8N, 0 from
	// Paris), FE 600000, FN 2200000.
	LambertIIEtendu = ProjectedCRS{
		Name:       "NTF (Paris) / Lambert II étendu",
		D:          datum.NTF_PARIS,
		LengthUnit: unit.Metre,
		Projection: proj.LambertConformalConic2SP{
			Params: proj.Params{
				Ellipsoid:        datum.NTF_PARIS.Ellipsoid,
				CentralMeridian:  0,
				LatitudeOfOrigin: deg(46.8),
				FalseEasting:     600000,
				FalseNorthing:    2200000,
			},
			StandardParallel1: deg(45.89891890338579),
			StandardParallel2: deg(47.69601440760837),
		},
		Extent: op.Rectangle{MinX: 0, MaxX: 1200000, MinY: 1500000, MaxY: 2800000},
	}
)
