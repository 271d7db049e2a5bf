package geometry

import (
	"math"
	"testing"

	"github.com/tum-gis/ifc-to-citygml3/internal/ifc"
)

// cubeMesh returns a unit cube with all faces wound outward.
func cubeMesh() *ifc.Mesh {
	return &ifc.Mesh{
		Vertices: []ifc.Vector3{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
		},
		Faces: [][3]int{
			{0, 2, 1}, {0, 3, 2}, // bottom
			{4, 5, 6}, {4, 6, 7}, // top
			{0, 1, 5}, {0, 5, 4}, // front
			{2, 3, 7}, {2, 7, 6}, // back
			{0, 4, 7}, {0, 7, 3}, // left
			{1, 2, 6}, {1, 6, 5}, // right
		},
		Closed: true,
	}
}

func allFaces(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// consistent reports whether every shared edge is traversed once in each
// direction, i.e. the winding is coherent across the shell.
func consistent(faces [][3]int) bool {
	type edge struct{ a, b int }
	count := make(map[edge]int)
	for _, f := range faces {
		for k := 0; k < 3; k++ {
			count[edge{f[k], f[(k+1)%3]}]++
		}
	}
	for e, n := range count {
		if n != 1 || count[edge{e.b, e.a}] != 1 {
			return false
		}
	}
	return true
}

func TestOrientOutwardFixesFlippedFace(t *testing.T) {
	mesh := cubeMesh()
	// Flip one face against the rest of the shell.
	mesh.Faces[3][1], mesh.Faces[3][2] = mesh.Faces[3][2], mesh.Faces[3][1]
	original := mesh.Faces[3]

	out := OrientOutward(mesh.Vertices, mesh.Faces)

	if mesh.Faces[3] != original {
		t.Error("input faces were modified")
	}
	if !consistent(out) {
		t.Fatal("output winding is not coherent")
	}
	vol := signedVolume(mesh.Vertices, out, allFaces(len(out)))
	if math.Abs(vol-1.0) > 1e-9 {
		t.Errorf("signed volume = %g, want 1 (outward unit cube)", vol)
	}
}

func TestOrientOutwardFlipsInvertedShell(t *testing.T) {
	mesh := cubeMesh()
	// Invert the whole shell: coherent winding, but facing inward.
	for i := range mesh.Faces {
		mesh.Faces[i][1], mesh.Faces[i][2] = mesh.Faces[i][2], mesh.Faces[i][1]
	}

	out := OrientOutward(mesh.Vertices, mesh.Faces)

	if !consistent(out) {
		t.Fatal("output winding is not coherent")
	}
	vol := signedVolume(mesh.Vertices, out, allFaces(len(out)))
	if math.Abs(vol-1.0) > 1e-9 {
		t.Errorf("signed volume = %g, want 1", vol)
	}
}

func TestOrientOutwardKeepsCorrectShell(t *testing.T) {
	mesh := cubeMesh()
	out := OrientOutward(mesh.Vertices, mesh.Faces)
	for i := range out {
		if out[i] != mesh.Faces[i] {
			t.Fatalf("face %d changed from %v to %v on an already outward shell", i, mesh.Faces[i], out[i])
		}
	}
}
