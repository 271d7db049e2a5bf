// Package ifc holds the read-only view of an extracted IFC model.
//
// The heavy lifting (STEP parsing, BRep triangulation, property set
// resolution) happens in an external extraction kernel. The kernel exports
// one JSON document per model; this package loads it into an immutable
// in-memory arena that the conversion pipeline reads from.
package ifc

// Vector3 represents a 3D vertex or vector.
type Vector3 struct {
	X, Y, Z float64
}

// Material represents one surface style produced by the extraction kernel.
// Transparency is in the range 0..1 where 0 is fully opaque.
type Material struct {
	R, G, B      float64
	Transparency float64
	Back         bool
}

// Mesh is the triangulated shape of one element. FaceMaterials holds one
// index into Materials per face, or -1 when the face carries no style.
// Closed reports whether the kernel found the shell to be watertight, which
// decides solid versus multi-surface representation downstream.
type Mesh struct {
	Vertices      []Vector3
	Faces         [][3]int
	FaceMaterials []int
	Materials     []Material
	Closed        bool
}

// PropertyType enumerates the value types the kernel emits.
type PropertyType int

const (
	TypeString PropertyType = iota
	TypeDouble
	TypeInt
	TypeBool
)

// PropertyValue is one typed property value.
type PropertyValue struct {
	Type PropertyType
	Str  string
	Num  float64
	Int  int64
	Bool bool
}

// Property is a named value inside a property set.
type Property struct {
	Name  string
	Value PropertyValue
}

// PropertySet is a named, ordered group of element properties (an IFC pset).
type PropertySet struct {
	Name       string
	Properties []Property
}

// Element is the read-only view of one IFC entity. Parent is the stable id
// of the spatial parent (project, site, building, storey or space). Host is
// only set on doors and windows and names the element whose opening the
// filling occupies, or 0 when the kernel found no host relation.
type Element struct {
	ID           int
	GUID         string
	Type         string
	Name         string
	Description  string
	Parent       int
	Host         int
	Mesh         *Mesh
	PropertySets []PropertySet
}

// MapConversion carries the model's embedded georeferencing definition
// (IfcMapConversion plus the projected CRS name), when present.
type MapConversion struct {
	Eastings         float64
	Northings        float64
	OrthogonalHeight float64
	Scale            float64
	XAxisAbscissa    float64
	XAxisOrdinate    float64
	SRSName          string
}

// Project holds the model-level metadata.
type Project struct {
	GUID        string
	Name        string
	Description string
}

// Model is the full extracted model. Elements is ordered by stable id and
// never mutated after loading.
type Model struct {
	FileName      string
	Project       Project
	MapConversion *MapConversion
	Elements      []*Element

	byID map[int]*Element
}

// Element returns the element with the given stable id, or nil.
func (m *Model) Element(id int) *Element {
	if m.byID == nil {
		m.index()
	}
	return m.byID[id]
}

func (m *Model) index() {
	m.byID = make(map[int]*Element, len(m.Elements))
	for _, e := range m.Elements {
		m.byID[e.ID] = e
	}
}
