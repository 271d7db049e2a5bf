package convert

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		ifcType string
		want    Kind
	}{
		{"IfcBuilding", KindBuilding},
		{"IfcBuildingStorey", KindStorey},
		{"IfcSpace", KindBuildingRoom},
		{"IfcSite", KindLandUse},
		{"IfcWall", KindBuildingConstructiveElement},
		{"IfcWallStandardCase", KindBuildingConstructiveElement},
		{"IfcRoof", KindBuildingConstructiveElement},
		{"IfcSlab", KindBuildingConstructiveElement},
		{"IfcCurtainWall", KindBuildingConstructiveElement},
		{"IfcBuildingElementProxy", KindBuildingConstructiveElement},
		{"IfcCovering", KindBuildingInstallation},
		{"IfcRailing", KindBuildingInstallation},
		{"IfcFurniture", KindBuildingFurniture},
		{"IfcFurnishingElement", KindBuildingFurniture},
		{"IfcDoor", KindDoor},
		{"IfcWindow", KindWindow},
	}
	for _, tt := range tests {
		got, err := Classify(tt.ifcType)
		if err != nil {
			t.Errorf("Classify(%q) error: %v", tt.ifcType, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.ifcType, got, tt.want)
		}
	}
}

func TestClassifyUnsupported(t *testing.T) {
	for _, ifcType := range []string{"IfcOpeningElement", "IfcAnnotation", "IfcGrid", "IfcFlowTerminal"} {
		_, err := Classify(ifcType)
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("Classify(%q) error = %v, want ErrUnsupportedType", ifcType, err)
		}
	}
}

func TestClassifyUnrecognized(t *testing.T) {
	_, err := Classify("IfcTeleporter")
	if !errors.Is(err, ErrUnrecognizedType) {
		t.Errorf("Classify(IfcTeleporter) error = %v, want ErrUnrecognizedType", err)
	}
	if errors.Is(err, ErrUnsupportedType) {
		t.Error("unrecognized type must not match ErrUnsupportedType")
	}
}

func TestKindString(t *testing.T) {
	if got, want := KindBuildingConstructiveElement.String(), "BuildingConstructiveElement"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := Kind(99).String(), "Kind(99)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
