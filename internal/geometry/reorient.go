package geometry

import "github.com/tum-gis/ifc-to-citygml3/internal/ifc"

// OrientOutward rewinds the faces of a closed shell so that all normals
// point out of the enclosed volume. Orientation is propagated across shared
// edges (two faces sharing an edge must traverse it in opposite
// directions), then the whole shell is flipped if its signed volume is
// negative. Runs in O(faces) per connected component; the input is not
// modified.
func OrientOutward(vertices []ifc.Vector3, faces [][3]int) [][3]int {
	out := make([][3]int, len(faces))
	copy(out, faces)
	if len(out) == 0 {
		return out
	}

	type edge struct{ a, b int }
	adjacency := make(map[edge][]int, len(out)*3)
	for i, f := range out {
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			adjacency[edge{a, b}] = append(adjacency[edge{a, b}], i)
		}
	}

	// hasDirected reports whether face i traverses a->b in that order.
	hasDirected := func(i, a, b int) bool {
		f := out[i]
		for k := 0; k < 3; k++ {
			if f[k] == a && f[(k+1)%3] == b {
				return true
			}
		}
		return false
	}

	visited := make([]bool, len(out))
	for start := range out {
		if visited[start] {
			continue
		}
		component := []int{start}
		visited[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			i := queue[0]
			queue = queue[1:]
			f := out[i]
			for k := 0; k < 3; k++ {
				a, b := f[k], f[(k+1)%3]
				key := edge{a, b}
				if key.a > key.b {
					key.a, key.b = key.b, key.a
				}
				for _, j := range adjacency[key] {
					if j == i || visited[j] {
						continue
					}
					// A consistently wound neighbor traverses the shared
					// edge in the opposite direction.
					if hasDirected(j, a, b) {
						out[j][1], out[j][2] = out[j][2], out[j][1]
					}
					visited[j] = true
					component = append(component, j)
					queue = append(queue, j)
				}
			}
		}
		if signedVolume(vertices, out, component) < 0 {
			for _, i := range component {
				out[i][1], out[i][2] = out[i][2], out[i][1]
			}
		}
	}
	return out
}

// signedVolume sums the tetrahedron volumes spanned by the origin and each
// face; positive for outward-facing windings.
func signedVolume(vertices []ifc.Vector3, faces [][3]int, subset []int) float64 {
	var total float64
	for _, i := range subset {
		v0 := vertices[faces[i][0]]
		v1 := vertices[faces[i][1]]
		v2 := vertices[faces[i][2]]
		total += v0.X*(v1.Y*v2.Z-v1.Z*v2.Y) -
			v0.Y*(v1.X*v2.Z-v1.Z*v2.X) +
			v0.Z*(v1.X*v2.Y-v1.Y*v2.X)
	}
	return total / 6
}
