// Package convert maps an extracted IFC model onto a CityGML 3.0 document:
// classification, geometry and appearance per element, filling resolution,
// property mapping and final assembly.
package convert

import (
	"errors"
	"fmt"
)

// Kind enumerates the CityGML feature kinds a source element can map to.
type Kind int

const (
	KindBuilding Kind = iota
	KindStorey
	KindBuildingRoom
	KindBuildingConstructiveElement
	KindBuildingInstallation
	KindBuildingFurniture
	KindDoor
	KindWindow
	KindLandUse
)

// String returns the CityGML feature name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBuilding:
		return "Building"
	case KindStorey:
		return "Storey"
	case KindBuildingRoom:
		return "BuildingRoom"
	case KindBuildingConstructiveElement:
		return "BuildingConstructiveElement"
	case KindBuildingInstallation:
		return "BuildingInstallation"
	case KindBuildingFurniture:
		return "BuildingFurniture"
	case KindDoor:
		return "Door"
	case KindWindow:
		return "Window"
	case KindLandUse:
		return "LandUse"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Classification errors. An unrecognized type is one the table has never
// heard of; an unsupported type is known IFC vocabulary that deliberately
// has no CityGML counterpart here.
var (
	ErrUnrecognizedType = errors.New("unrecognized IFC type")
	ErrUnsupportedType  = errors.New("unsupported IFC type")
)

// classTable is the static IFC-type to feature-kind mapping.
var classTable = map[string]Kind{
	"IfcBuilding":       KindBuilding,
	"IfcBuildingStorey": KindStorey,
	"IfcSpace":          KindBuildingRoom,
	"IfcSite":           KindLandUse,

	"IfcWall":                 KindBuildingConstructiveElement,
	"IfcWallStandardCase":     KindBuildingConstructiveElement,
	"IfcRoof":                 KindBuildingConstructiveElement,
	"IfcSlab":                 KindBuildingConstructiveElement,
	"IfcColumn":               KindBuildingConstructiveElement,
	"IfcBeam":                 KindBuildingConstructiveElement,
	"IfcMember":               KindBuildingConstructiveElement,
	"IfcPlate":                KindBuildingConstructiveElement,
	"IfcStair":                KindBuildingConstructiveElement,
	"IfcStairFlight":          KindBuildingConstructiveElement,
	"IfcRamp":                 KindBuildingConstructiveElement,
	"IfcRampFlight":           KindBuildingConstructiveElement,
	"IfcFooting":              KindBuildingConstructiveElement,
	"IfcPile":                 KindBuildingConstructiveElement,
	"IfcBuildingElementProxy": KindBuildingConstructiveElement,
	"IfcCurtainWall":          KindBuildingConstructiveElement,

	"IfcCovering": KindBuildingInstallation,
	"IfcRailing":  KindBuildingInstallation,

	"IfcFurniture":              KindBuildingFurniture,
	"IfcSystemFurnitureElement": KindBuildingFurniture,
	"IfcFurnishingElement":      KindBuildingFurniture,

	"IfcDoor":   KindDoor,
	"IfcWindow": KindWindow,
}

// unsupportedTypes are recognized IFC entity types that are never converted
// to a feature. Openings are consumed by the filling resolver; the rest
// have no building-model counterpart in this profile.
var unsupportedTypes = map[string]bool{
	"IfcOpeningElement":         true,
	"IfcAnnotation":             true,
	"IfcGrid":                   true,
	"IfcVirtualElement":         true,
	"IfcBuildingElementPart":    true,
	"IfcDistributionElement":    true,
	"IfcFlowTerminal":           true,
	"IfcFlowSegment":            true,
	"IfcFlowFitting":            true,
	"IfcFlowController":         true,
	"IfcEnergyConversionDevice": true,
}

// Classify maps an IFC type name to its feature kind. The mapping is total
// and order independent: a type yields exactly one kind, or
// ErrUnsupportedType for known-but-skipped vocabulary, or
// ErrUnrecognizedType for anything else.
func Classify(ifcType string) (Kind, error) {
	if kind, ok := classTable[ifcType]; ok {
		return kind, nil
	}
	if unsupportedTypes[ifcType] {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedType, ifcType)
	}
	return 0, fmt.Errorf("%w: %s", ErrUnrecognizedType, ifcType)
}
