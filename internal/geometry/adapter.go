// Package geometry turns triangulated kernel meshes into CityGML geometry
// payloads: a solid for closed shells, a multi-surface otherwise.
package geometry

import (
	"github.com/tum-gis/ifc-to-citygml3/internal/georef"
	"github.com/tum-gis/ifc-to-citygml3/internal/ifc"
)

// Surface is one polygon of the output geometry. Coords is a closed ring
// (first vertex repeated last) in target coordinates. The ID is referenced
// by appearance surface data.
type Surface struct {
	ID     string
	Coords []ifc.Vector3
}

// Geometry is the representation chosen for one feature: a solid shell or
// a plain surface collection, one Surface per mesh face.
type Geometry struct {
	ID       string
	Solid    bool
	Surfaces []Surface
}

// Adapt builds the geometry payload for one mesh. Every vertex passes
// through the georeference transform; reorient additionally rewinds closed
// shells to face outward. Returns nil for a missing or empty mesh.
func Adapt(mesh *ifc.Mesh, tr georef.Transform, reorient bool, newID func() string) *Geometry {
	if mesh == nil || len(mesh.Faces) == 0 {
		return nil
	}

	faces := mesh.Faces
	if reorient && mesh.Closed {
		faces = OrientOutward(mesh.Vertices, faces)
	}

	g := &Geometry{
		ID:       newID(),
		Solid:    mesh.Closed,
		Surfaces: make([]Surface, 0, len(faces)),
	}
	for _, face := range faces {
		ring := make([]ifc.Vector3, 0, 4)
		for _, idx := range face {
			ring = append(ring, tr.Apply(mesh.Vertices[idx]))
		}
		ring = append(ring, ring[0])
		g.Surfaces = append(g.Surfaces, Surface{ID: newID(), Coords: ring})
	}
	return g
}
