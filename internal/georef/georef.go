// Package georef computes and applies the affine transform that places
// model geometry in a real-world coordinate reference system.
package georef

import "github.com/tum-gis/ifc-to-citygml3/internal/ifc"

// The fixed anchor used by the forced georeference option: the center of
// Theresienwiese in Munich, ETRS89/UTM zone 32N.
const (
	AnchorEastings  = 689738.0
	AnchorNorthings = 5334100.0
	AnchorHeight    = 521.0
	AnchorSRSName   = "EPSG:25832"
)

// LocalSRSName marks output that carries no real georeference.
const LocalSRSName = "EPSG:0"

// Transform is the composed placement transform: uniform scale, rotation
// about the Z axis, translation into the target CRS, and the manual offsets
// applied last.
type Transform struct {
	Scale      float64
	CosR, SinR float64

	Eastings         float64
	Northings        float64
	OrthogonalHeight float64

	OffsetX, OffsetY, OffsetZ float64

	SRSName string
}

// Identity returns the local-coordinates transform.
func Identity() Transform {
	return Transform{Scale: 1, CosR: 1, SRSName: LocalSRSName}
}

// FromMapConversion builds a transform from the model's embedded
// map-conversion definition.
func FromMapConversion(mc *ifc.MapConversion) Transform {
	t := Identity()
	t.Eastings = mc.Eastings
	t.Northings = mc.Northings
	t.OrthogonalHeight = mc.OrthogonalHeight
	if mc.Scale != 0 {
		t.Scale = mc.Scale
	}
	if mc.XAxisAbscissa != 0 || mc.XAxisOrdinate != 0 {
		t.CosR = mc.XAxisAbscissa
		t.SinR = mc.XAxisOrdinate
	}
	if mc.SRSName != "" {
		t.SRSName = mc.SRSName
	}
	return t
}

// Resolve picks the transform for a model: the embedded map conversion when
// present, overridden by the forced anchor when requested, with the manual
// offsets composed last in either case (and also when no georeference
// exists at all). The anchor overrides only the placement; an embedded
// conversion's scale and rotation survive it.
func Resolve(model *ifc.Model, forceAnchor bool, dx, dy, dz float64) Transform {
	t := Identity()
	if model.MapConversion != nil {
		t = FromMapConversion(model.MapConversion)
	}
	if forceAnchor {
		t.Eastings = AnchorEastings
		t.Northings = AnchorNorthings
		t.OrthogonalHeight = AnchorHeight
		t.SRSName = AnchorSRSName
	}
	t.OffsetX = dx
	t.OffsetY = dy
	t.OffsetZ = dz
	return t
}

// Apply transforms one vertex: scale, rotate, translate, offset.
func (t Transform) Apply(v ifc.Vector3) ifc.Vector3 {
	x := v.X * t.Scale
	y := v.Y * t.Scale
	z := v.Z * t.Scale
	rx := t.CosR*x - t.SinR*y
	ry := t.SinR*x + t.CosR*y
	return ifc.Vector3{
		X: rx + t.Eastings + t.OffsetX,
		Y: ry + t.Northings + t.OffsetY,
		Z: z + t.OrthogonalHeight + t.OffsetZ,
	}
}
