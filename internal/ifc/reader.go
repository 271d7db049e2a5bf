package ifc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// The extraction kernel's JSON export. Vertices and faces are flat arrays
// (x y z per vertex, three vertex indices per face).
type jsonModel struct {
	Project       jsonProject    `json:"project"`
	MapConversion *MapConversion `json:"mapConversion"`
	Elements      []jsonElement  `json:"elements"`
}

type jsonProject struct {
	GUID        string `json:"guid"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type jsonElement struct {
	ID           int        `json:"id"`
	GUID         string     `json:"guid"`
	Type         string     `json:"type"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Parent       int        `json:"parent"`
	Host         int        `json:"host"`
	Mesh         *jsonMesh  `json:"mesh"`
	PropertySets []jsonPSet `json:"propertySets"`
}

type jsonMesh struct {
	Vertices      []float64  `json:"vertices"`
	Faces         []int      `json:"faces"`
	FaceMaterials []int      `json:"faceMaterials"`
	Materials     []Material `json:"materials"`
	Closed        bool       `json:"closed"`
}

type jsonPSet struct {
	Name       string         `json:"name"`
	Properties []jsonProperty `json:"properties"`
}

type jsonProperty struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// ReadModelFile loads an extracted model from the kernel's JSON dump.
func ReadModelFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()

	m, err := ReadModel(f)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}
	m.FileName = filepath.Base(path)
	return m, nil
}

// ReadModel decodes one kernel export. The returned model is fully
// materialized and validated; elements are ordered by stable id.
func ReadModel(r io.Reader) (*Model, error) {
	var jm jsonModel
	dec := json.NewDecoder(r)
	if err := dec.Decode(&jm); err != nil {
		return nil, fmt.Errorf("malformed model: %w", err)
	}

	m := &Model{
		Project:       Project(jm.Project),
		MapConversion: jm.MapConversion,
	}
	seen := make(map[int]bool, len(jm.Elements))
	for _, je := range jm.Elements {
		if je.ID <= 0 {
			return nil, fmt.Errorf("malformed model: element id %d out of range", je.ID)
		}
		if seen[je.ID] {
			return nil, fmt.Errorf("malformed model: duplicate element id %d", je.ID)
		}
		seen[je.ID] = true

		e := &Element{
			ID:          je.ID,
			GUID:        je.GUID,
			Type:        je.Type,
			Name:        je.Name,
			Description: je.Description,
			Parent:      je.Parent,
			Host:        je.Host,
		}
		if je.Mesh != nil {
			mesh, err := decodeMesh(je.Mesh)
			if err != nil {
				return nil, fmt.Errorf("malformed model: element %d: %w", je.ID, err)
			}
			e.Mesh = mesh
		}
		for _, jp := range je.PropertySets {
			ps := PropertySet{Name: jp.Name}
			for _, prop := range jp.Properties {
				v, ok, err := decodeValue(prop.Value)
				if err != nil {
					return nil, fmt.Errorf("malformed model: element %d, pset %q, property %q: %w", je.ID, jp.Name, prop.Name, err)
				}
				if !ok {
					continue
				}
				ps.Properties = append(ps.Properties, Property{Name: prop.Name, Value: v})
			}
			e.PropertySets = append(e.PropertySets, ps)
		}
		m.Elements = append(m.Elements, e)
	}

	sort.Slice(m.Elements, func(i, j int) bool { return m.Elements[i].ID < m.Elements[j].ID })
	m.index()
	return m, nil
}

func decodeMesh(jm *jsonMesh) (*Mesh, error) {
	if len(jm.Vertices)%3 != 0 {
		return nil, fmt.Errorf("vertex array length %d not a multiple of 3", len(jm.Vertices))
	}
	if len(jm.Faces)%3 != 0 {
		return nil, fmt.Errorf("face array length %d not a multiple of 3", len(jm.Faces))
	}
	mesh := &Mesh{
		Vertices:  make([]Vector3, len(jm.Vertices)/3),
		Faces:     make([][3]int, len(jm.Faces)/3),
		Materials: jm.Materials,
		Closed:    jm.Closed,
	}
	for i := range mesh.Vertices {
		mesh.Vertices[i] = Vector3{jm.Vertices[3*i], jm.Vertices[3*i+1], jm.Vertices[3*i+2]}
	}
	for i := range mesh.Faces {
		for k := 0; k < 3; k++ {
			idx := jm.Faces[3*i+k]
			if idx < 0 || idx >= len(mesh.Vertices) {
				return nil, fmt.Errorf("face %d references vertex %d of %d", i, idx, len(mesh.Vertices))
			}
			mesh.Faces[i][k] = idx
		}
	}
	if len(jm.FaceMaterials) > 0 && len(jm.FaceMaterials) != len(mesh.Faces) {
		return nil, fmt.Errorf("got %d face materials for %d faces", len(jm.FaceMaterials), len(mesh.Faces))
	}
	if len(jm.FaceMaterials) > 0 {
		mesh.FaceMaterials = make([]int, len(jm.FaceMaterials))
		for i, id := range jm.FaceMaterials {
			if id >= len(mesh.Materials) {
				return nil, fmt.Errorf("face %d references material %d of %d", i, id, len(mesh.Materials))
			}
			mesh.FaceMaterials[i] = id
		}
	}
	return mesh, nil
}

// decodeValue maps a raw JSON property value onto a typed value. Null
// values are skipped, matching the kernel contract that absent properties
// are simply not exported.
func decodeValue(raw json.RawMessage) (PropertyValue, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return PropertyValue{}, false, nil
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return PropertyValue{}, false, err
	}
	switch val := v.(type) {
	case bool:
		return PropertyValue{Type: TypeBool, Bool: val}, true, nil
	case string:
		return PropertyValue{Type: TypeString, Str: val}, true, nil
	case json.Number:
		if !strings.ContainsAny(val.String(), ".eE") {
			if i, err := val.Int64(); err == nil {
				return PropertyValue{Type: TypeInt, Int: i}, true, nil
			}
		}
		f, err := val.Float64()
		if err != nil {
			return PropertyValue{}, false, err
		}
		return PropertyValue{Type: TypeDouble, Num: f}, true, nil
	default:
		return PropertyValue{}, false, fmt.Errorf("unsupported value %s", trimmed)
	}
}
