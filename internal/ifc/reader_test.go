package ifc

import (
	"strings"
	"testing"
)

const sampleModel = `{
  "project": {"guid": "2O2Fr$t4X7Zf8NOew3FLOH", "name": "Duplex", "description": "Sample project"},
  "mapConversion": {
    "eastings": 500000.0, "northings": 5000000.0, "orthogonalHeight": 10.0,
    "scale": 1.0, "xAxisAbscissa": 1.0, "xAxisOrdinate": 0.0, "srsName": "EPSG:32632"
  },
  "elements": [
    {
      "id": 3, "guid": "G3", "type": "IfcWall", "name": "Wall-01", "parent": 2,
      "mesh": {
        "vertices": [0,0,0, 1,0,0, 0,1,0],
        "faces": [0,1,2],
        "faceMaterials": [0],
        "materials": [{"R": 0.5, "G": 0.5, "B": 0.5, "Transparency": 0, "Back": false}],
        "closed": false
      },
      "propertySets": [
        {"name": "Pset_WallCommon", "properties": [
          {"name": "IsExternal", "value": true},
          {"name": "FireRating", "value": "F30"},
          {"name": "Width", "value": 0.24},
          {"name": "LoadBearing", "value": null},
          {"name": "Reference", "value": 12},
          {"name": "Area", "value": 1e2}
        ]}
      ]
    },
    {"id": 2, "guid": "G2", "type": "IfcBuilding", "name": "Duplex", "parent": 1},
    {"id": 1, "guid": "G1", "type": "IfcSite", "name": "Site", "parent": 0}
  ]
}`

func TestReadModel(t *testing.T) {
	m, err := ReadModel(strings.NewReader(sampleModel))
	if err != nil {
		t.Fatalf("ReadModel() error: %v", err)
	}

	if got, want := m.Project.Name, "Duplex"; got != want {
		t.Errorf("project name = %q, want %q", got, want)
	}
	if m.MapConversion == nil {
		t.Fatal("expected map conversion")
	}
	if got, want := m.MapConversion.SRSName, "EPSG:32632"; got != want {
		t.Errorf("srsName = %q, want %q", got, want)
	}

	if got, want := len(m.Elements), 3; got != want {
		t.Fatalf("got %d elements, want %d", got, want)
	}
	for i, want := range []int{1, 2, 3} {
		if got := m.Elements[i].ID; got != want {
			t.Errorf("element %d has id %d, want %d (elements must be id-ordered)", i, got, want)
		}
	}

	wall := m.Element(3)
	if wall == nil {
		t.Fatal("Element(3) = nil")
	}
	if wall.Mesh == nil {
		t.Fatal("wall has no mesh")
	}
	if got, want := len(wall.Mesh.Vertices), 3; got != want {
		t.Errorf("got %d vertices, want %d", got, want)
	}
	if got, want := len(wall.Mesh.Faces), 1; got != want {
		t.Errorf("got %d faces, want %d", got, want)
	}
	if got, want := wall.Mesh.Vertices[1], (Vector3{X: 1}); got != want {
		t.Errorf("vertex 1 = %v, want %v", got, want)
	}
}

func TestReadModelPropertyTyping(t *testing.T) {
	m, err := ReadModel(strings.NewReader(sampleModel))
	if err != nil {
		t.Fatalf("ReadModel() error: %v", err)
	}
	props := m.Element(3).PropertySets[0].Properties

	// The null-valued property is skipped entirely.
	if got, want := len(props), 5; got != want {
		t.Fatalf("got %d properties, want %d", got, want)
	}
	wantTypes := map[string]PropertyType{
		"IsExternal": TypeBool,
		"FireRating": TypeString,
		"Width":      TypeDouble,
		"Reference":  TypeInt,
		"Area":       TypeDouble, // exponent notation stays a double
	}
	for _, p := range props {
		want, ok := wantTypes[p.Name]
		if !ok {
			t.Errorf("unexpected property %q", p.Name)
			continue
		}
		if p.Value.Type != want {
			t.Errorf("property %q has type %d, want %d", p.Name, p.Value.Type, want)
		}
	}
}

func TestReadModelRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{`},
		{"zero id", `{"elements": [{"id": 0, "type": "IfcWall"}]}`},
		{"duplicate id", `{"elements": [{"id": 1, "type": "IfcWall"}, {"id": 1, "type": "IfcSlab"}]}`},
		{"ragged vertices", `{"elements": [{"id": 1, "type": "IfcWall", "mesh": {"vertices": [0,0], "faces": []}}]}`},
		{"ragged faces", `{"elements": [{"id": 1, "type": "IfcWall", "mesh": {"vertices": [0,0,0], "faces": [0,0]}}]}`},
		{"face index out of range", `{"elements": [{"id": 1, "type": "IfcWall", "mesh": {"vertices": [0,0,0], "faces": [0,0,1]}}]}`},
		{"face material count mismatch", `{"elements": [{"id": 1, "type": "IfcWall", "mesh": {"vertices": [0,0,0], "faces": [0,0,0], "faceMaterials": [0, 0], "materials": [{}]}}]}`},
		{"material index out of range", `{"elements": [{"id": 1, "type": "IfcWall", "mesh": {"vertices": [0,0,0], "faces": [0,0,0], "faceMaterials": [1], "materials": [{}]}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadModel(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "malformed model") {
				t.Errorf("error %q does not mention malformed model", err)
			}
		})
	}
}
