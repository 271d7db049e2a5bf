// Package appearance partitions a mesh's faces into material-homogeneous
// groups and builds the per-feature CityGML appearance from them.
package appearance

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tum-gis/ifc-to-citygml3/internal/citygml"
	"github.com/tum-gis/ifc-to-citygml3/internal/ifc"
)

// Theme is the single appearance theme emitted for diffuse colors.
const Theme = "RGB"

// FaceGroup is one material-homogeneous subset of a mesh's faces. Material
// is nil for unstyled faces. The groups returned by GroupFaces partition
// the face set: every face index appears in exactly one group.
type FaceGroup struct {
	Material *ifc.Material
	Faces    []int
}

type materialKey struct {
	r, g, b, transparency float64
	back                  bool
	styled                bool
}

// Colors are compared after rounding so that float noise from the kernel
// does not split one material into many groups.
func keyFor(mat *ifc.Material) materialKey {
	if mat == nil {
		return materialKey{}
	}
	return materialKey{
		r:            round6(mat.R),
		g:            round6(mat.G),
		b:            round6(mat.B),
		transparency: round6(mat.Transparency),
		back:         mat.Back,
		styled:       true,
	}
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// GroupFaces partitions the mesh's faces by material key. Group order
// follows the first face of each group, so repeated runs group
// identically.
func GroupFaces(mesh *ifc.Mesh) []FaceGroup {
	var groups []FaceGroup
	index := make(map[materialKey]int)
	for face := range mesh.Faces {
		var mat *ifc.Material
		if face < len(mesh.FaceMaterials) {
			if id := mesh.FaceMaterials[face]; id >= 0 && id < len(mesh.Materials) {
				mat = &mesh.Materials[id]
			}
		}
		key := keyFor(mat)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, FaceGroup{Material: mat})
		}
		groups[i].Faces = append(groups[i].Faces, face)
	}
	return groups
}

// Build assembles the appearance for one feature: one X3DMaterial surface
// data block per styled face group, each targeting its faces' polygon ids.
// Returns nil when no face carries a material.
func Build(featureID string, groups []FaceGroup, surfaceIDs []string) *citygml.AppearanceProperty {
	app := citygml.Appearance{
		ID:    "APP_" + featureID,
		Theme: Theme,
	}
	for _, group := range groups {
		if group.Material == nil {
			continue
		}
		mat := citygml.X3DMaterial{
			ID:           fmt.Sprintf("MAT_%s_%d", featureID, len(app.SurfaceData)),
			IsFront:      strconv.FormatBool(!group.Material.Back),
			DiffuseColor: formatColor(group.Material.R, group.Material.G, group.Material.B),
		}
		if group.Material.Transparency > 0 {
			mat.Transparency = formatFloat(group.Material.Transparency)
		}
		for _, face := range group.Faces {
			if face >= 0 && face < len(surfaceIDs) {
				mat.Targets = append(mat.Targets, "#"+surfaceIDs[face])
			}
		}
		app.SurfaceData = append(app.SurfaceData, citygml.SurfaceDataProperty{Material: mat})
	}
	if len(app.SurfaceData) == 0 {
		return nil
	}
	return &citygml.AppearanceProperty{Appearance: app}
}

func formatColor(r, g, b float64) string {
	return formatFloat(r) + " " + formatFloat(g) + " " + formatFloat(b)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
