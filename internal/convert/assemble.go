package convert

import (
	"encoding/xml"
	"errors"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/tum-gis/ifc-to-citygml3/internal/citygml"
	"github.com/tum-gis/ifc-to-citygml3/internal/geometry"
	"github.com/tum-gis/ifc-to-citygml3/internal/ifc"
)

func isUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedType)
}

// nameFor selects the XML element for a feature kind.
func nameFor(kind Kind) xml.Name {
	switch kind {
	case KindStorey:
		return citygml.NameStorey
	case KindBuildingRoom:
		return citygml.NameRoom
	case KindBuildingInstallation:
		return citygml.NameInstallation
	case KindBuildingFurniture:
		return citygml.NameFurniture
	case KindDoor:
		return citygml.NameDoor
	case KindWindow:
		return citygml.NameWindow
	case KindLandUse:
		return citygml.NameLandUse
	default:
		return citygml.NameConstructiveElement
	}
}

// attachGeometry emits the feature's geometry property: a lod3Solid for
// closed shells, a lod3MultiSurface otherwise. Every vertex also feeds the
// document extent.
func (c *Converter) attachGeometry(f *citygml.Feature, geom *geometry.Geometry) {
	surfaces := make([]citygml.SurfaceMember, 0, len(geom.Surfaces))
	for _, s := range geom.Surfaces {
		for _, v := range s.Coords {
			c.extent.add(v)
		}
		surfaces = append(surfaces, citygml.SurfaceMember{
			Polygon: citygml.Polygon{
				ID: s.ID,
				Exterior: citygml.PolygonExterior{
					Ring: citygml.LinearRing{PosList: formatPosList(s.Coords)},
				},
			},
		})
	}
	if geom.Solid {
		f.Lod3Solid = &citygml.SolidProperty{
			Solid: citygml.Solid{
				ID:           geom.ID,
				SRSName:      c.tr.SRSName,
				SRSDimension: "3",
				Exterior:     citygml.SolidExterior{Shell: citygml.Shell{Surfaces: surfaces}},
			},
		}
		return
	}
	f.Lod3MultiSurface = &citygml.MultiSurfaceProperty{
		MultiSurface: citygml.MultiSurface{
			ID:           geom.ID,
			SRSName:      c.tr.SRSName,
			SRSDimension: "3",
			Surfaces:     surfaces,
		},
	}
}

func surfaceIDs(geom *geometry.Geometry) []string {
	ids := make([]string, len(geom.Surfaces))
	for i, s := range geom.Surfaces {
		ids[i] = s.ID
	}
	return ids
}

func formatPosList(coords []ifc.Vector3) string {
	var sb strings.Builder
	for i, v := range coords {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatCoord(v.X))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(v.Y))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(v.Z))
	}
	return sb.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// extent accumulates the document envelope over all emitted vertices.
type extent struct {
	bound      orb.Bound
	minZ, maxZ float64
	has        bool
}

func (e *extent) add(v ifc.Vector3) {
	p := orb.Point{v.X, v.Y}
	if !e.has {
		e.bound = orb.Bound{Min: p, Max: p}
		e.minZ, e.maxZ = v.Z, v.Z
		e.has = true
		return
	}
	e.bound = e.bound.Extend(p)
	if v.Z < e.minZ {
		e.minZ = v.Z
	}
	if v.Z > e.maxZ {
		e.maxZ = v.Z
	}
}

func (e *extent) envelope(srsName string) *citygml.BoundedBy {
	if !e.has {
		return nil
	}
	return &citygml.BoundedBy{
		Envelope: citygml.Envelope{
			SRSName:      srsName,
			SRSDimension: "3",
			LowerCorner:  formatCoord(e.bound.Min.X()) + " " + formatCoord(e.bound.Min.Y()) + " " + formatCoord(e.minZ),
			UpperCorner:  formatCoord(e.bound.Max.X()) + " " + formatCoord(e.bound.Max.Y()) + " " + formatCoord(e.maxZ),
		},
	}
}
