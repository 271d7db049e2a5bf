// Package citygml holds the CityGML 3.0 document model and its writer.
//
// The document is built as plain structs with prefixed tag names and
// serialized with encoding/xml; struct field order is document order, which
// the CityGML schemas care about (for instance con:filling must precede
// bldg:class inside a constructive element).
package citygml

import "encoding/xml"

// CityGML 3.0 namespace URIs.
const (
	NSCore  = "http://www.opengis.net/citygml/3.0"
	NSBldg  = "http://www.opengis.net/citygml/building/3.0"
	NSCon   = "http://www.opengis.net/citygml/construction/3.0"
	NSGen   = "http://www.opengis.net/citygml/generics/3.0"
	NSApp   = "http://www.opengis.net/citygml/appearance/3.0"
	NSLuse  = "http://www.opengis.net/citygml/landuse/3.0"
	NSGml   = "http://www.opengis.net/gml/3.2"
	NSXsi   = "http://www.w3.org/2001/XMLSchema-instance"
	NSXlink = "http://www.w3.org/1999/xlink"

	schemaLocation = "http://www.opengis.net/citygml/profiles/base/3.0 http://schemas.opengis.net/citygml/profiles/base/3.0/CityGML.xsd"
)

// Qualified element names for features whose XML name is chosen at build
// time.
var (
	NameConstructiveElement = xml.Name{Local: "bldg:BuildingConstructiveElement"}
	NameInstallation        = xml.Name{Local: "bldg:BuildingInstallation"}
	NameRoom                = xml.Name{Local: "bldg:BuildingRoom"}
	NameFurniture           = xml.Name{Local: "bldg:BuildingFurniture"}
	NameStorey              = xml.Name{Local: "bldg:Storey"}
	NameDoor                = xml.Name{Local: "con:Door"}
	NameWindow              = xml.Name{Local: "con:Window"}
	NameLandUse             = xml.Name{Local: "luse:LandUse"}
)

// CityModel is the document root.
type CityModel struct {
	XMLName        xml.Name `xml:"core:CityModel"`
	XmlnsCore      string   `xml:"xmlns:core,attr"`
	XmlnsBldg      string   `xml:"xmlns:bldg,attr"`
	XmlnsCon       string   `xml:"xmlns:con,attr"`
	XmlnsGen       string   `xml:"xmlns:gen,attr"`
	XmlnsApp       string   `xml:"xmlns:app,attr"`
	XmlnsLuse      string   `xml:"xmlns:luse,attr"`
	XmlnsGml       string   `xml:"xmlns:gml,attr"`
	XmlnsXsi       string   `xml:"xmlns:xsi,attr"`
	XmlnsXlink     string   `xml:"xmlns:xlink,attr"`
	SchemaLocation string   `xml:"xsi:schemaLocation,attr"`

	Description string             `xml:"gml:description,omitempty"`
	Name        string             `xml:"gml:name,omitempty"`
	BoundedBy   *BoundedBy         `xml:"gml:boundedBy,omitempty"`
	Members     []CityObjectMember `xml:"core:cityObjectMember"`
}

// NewCityModel returns an empty document with all namespace declarations in
// place.
func NewCityModel() *CityModel {
	return &CityModel{
		XmlnsCore:      NSCore,
		XmlnsBldg:      NSBldg,
		XmlnsCon:       NSCon,
		XmlnsGen:       NSGen,
		XmlnsApp:       NSApp,
		XmlnsLuse:      NSLuse,
		XmlnsGml:       NSGml,
		XmlnsXsi:       NSXsi,
		XmlnsXlink:     NSXlink,
		SchemaLocation: schemaLocation,
	}
}

// CityObjectMember holds exactly one top-level city object.
type CityObjectMember struct {
	Building *Building `xml:"bldg:Building,omitempty"`
	LandUse  *Feature  `xml:",omitempty"`
}

// BoundedBy wraps the document envelope.
type BoundedBy struct {
	Envelope Envelope `xml:"gml:Envelope"`
}

// Envelope is the 3D extent of all geometry in the document.
type Envelope struct {
	SRSName      string `xml:"srsName,attr"`
	SRSDimension string `xml:"srsDimension,attr"`
	LowerCorner  string `xml:"gml:lowerCorner"`
	UpperCorner  string `xml:"gml:upperCorner"`
}

// Building aggregates its children in the order the CityGML 3.0 building
// schema requires: constructive elements, installations, rooms, furniture,
// subdivisions (storeys) last.
type Building struct {
	XMLName              xml.Name                   `xml:"bldg:Building"`
	ID                   string                     `xml:"gml:id,attr"`
	Description          string                     `xml:"gml:description,omitempty"`
	Name                 string                     `xml:"gml:name,omitempty"`
	ExternalReference    *ExternalReferenceProperty `xml:"core:externalReference,omitempty"`
	GenericAttributes    []GenericAttributeProperty `xml:"core:genericAttribute,omitempty"`
	Class                string                     `xml:"bldg:class,omitempty"`
	ConstructiveElements []FeatureMember            `xml:"bldg:buildingConstructiveElement,omitempty"`
	Installations        []FeatureMember            `xml:"bldg:buildingInstallation,omitempty"`
	Rooms                []FeatureMember            `xml:"bldg:buildingRoom,omitempty"`
	Furniture            []FeatureMember            `xml:"bldg:buildingFurniture,omitempty"`
	Subdivisions         []FeatureMember            `xml:"bldg:buildingSubdivision,omitempty"`
}

// FeatureMember either embeds a feature definition or references an already
// defined one by xlink:href, never both.
type FeatureMember struct {
	Href    string   `xml:"xlink:href,attr,omitempty"`
	Feature *Feature `xml:",omitempty"`
}

// Feature is one mapped city object below the building (or a LandUse at the
// top level). XMLName selects the concrete element; unused fields stay
// empty and are omitted. Field order is the schema-valid document order.
type Feature struct {
	XMLName           xml.Name
	ID                string                     `xml:"gml:id,attr,omitempty"`
	Description       string                     `xml:"gml:description,omitempty"`
	Name              string                     `xml:"gml:name,omitempty"`
	ExternalReference *ExternalReferenceProperty `xml:"core:externalReference,omitempty"`
	Appearance        *AppearanceProperty        `xml:"core:appearance,omitempty"`
	GenericAttributes []GenericAttributeProperty `xml:"core:genericAttribute,omitempty"`
	Lod3Solid         *SolidProperty             `xml:"core:lod3Solid,omitempty"`
	Lod3MultiSurface  *MultiSurfaceProperty      `xml:"core:lod3MultiSurface,omitempty"`
	Fillings          []FillingProperty          `xml:"con:filling,omitempty"`
	Class             string                     `xml:"bldg:class,omitempty"`
	ConClass          string                     `xml:"con:class,omitempty"`
	LandUseClass      string                     `xml:"luse:class,omitempty"`

	// Storey membership links, emitted only on bldg:Storey.
	ElementMembers      []FeatureMember `xml:"bldg:buildingConstructiveElement,omitempty"`
	InstallationMembers []FeatureMember `xml:"bldg:buildingInstallation,omitempty"`
	RoomMembers         []FeatureMember `xml:"bldg:buildingRoom,omitempty"`
	FurnitureMembers    []FeatureMember `xml:"bldg:buildingFurniture,omitempty"`
}

// FillingProperty wraps an embedded con:Door or con:Window.
type FillingProperty struct {
	Filling *Feature `xml:",omitempty"`
}

// ExternalReferenceProperty wraps one external reference.
type ExternalReferenceProperty struct {
	Reference ExternalReference `xml:"core:ExternalReference"`
}

// ExternalReference links a feature back to its source object.
type ExternalReference struct {
	TargetResource    string `xml:"core:targetResource"`
	InformationSystem string `xml:"core:informationSystem,omitempty"`
}

// GenericAttributeProperty holds exactly one generic attribute form.
type GenericAttributeProperty struct {
	Set    *GenericAttributeSet `xml:"gen:GenericAttributeSet,omitempty"`
	String *NamedAttribute      `xml:"gen:StringAttribute,omitempty"`
	Int    *NamedAttribute      `xml:"gen:IntAttribute,omitempty"`
	Double *NamedAttribute      `xml:"gen:DoubleAttribute,omitempty"`
}

// NamedAttribute is a generic attribute name/value pair.
type NamedAttribute struct {
	Name  string `xml:"gen:name"`
	Value string `xml:"gen:value"`
}

// GenericAttributeSet groups the attributes of one source property set.
type GenericAttributeSet struct {
	Name       string                     `xml:"gen:name"`
	Attributes []GenericAttributeProperty `xml:"gen:genericAttribute"`
}

// SolidProperty wraps a gml:Solid.
type SolidProperty struct {
	Solid Solid `xml:"gml:Solid"`
}

// Solid is a volumetric shell geometry.
type Solid struct {
	ID           string        `xml:"gml:id,attr"`
	SRSName      string        `xml:"srsName,attr"`
	SRSDimension string        `xml:"srsDimension,attr"`
	Exterior     SolidExterior `xml:"gml:exterior"`
}

// SolidExterior wraps the exterior shell.
type SolidExterior struct {
	Shell Shell `xml:"gml:Shell"`
}

// Shell is the closed surface collection of a solid.
type Shell struct {
	Surfaces []SurfaceMember `xml:"gml:surfaceMember"`
}

// MultiSurfaceProperty wraps a gml:MultiSurface.
type MultiSurfaceProperty struct {
	MultiSurface MultiSurface `xml:"gml:MultiSurface"`
}

// MultiSurface is a surface-collection geometry.
type MultiSurface struct {
	ID           string          `xml:"gml:id,attr"`
	SRSName      string          `xml:"srsName,attr"`
	SRSDimension string          `xml:"srsDimension,attr"`
	Surfaces     []SurfaceMember `xml:"gml:surfaceMember"`
}

// SurfaceMember wraps one polygon.
type SurfaceMember struct {
	Polygon Polygon `xml:"gml:Polygon"`
}

// Polygon carries one closed ring. The gml:id is the target of appearance
// surface data.
type Polygon struct {
	ID       string          `xml:"gml:id,attr"`
	Exterior PolygonExterior `xml:"gml:exterior"`
}

// PolygonExterior wraps the ring.
type PolygonExterior struct {
	Ring LinearRing `xml:"gml:LinearRing"`
}

// LinearRing holds the closed coordinate list.
type LinearRing struct {
	PosList string `xml:"gml:posList"`
}

// AppearanceProperty wraps one appearance.
type AppearanceProperty struct {
	Appearance Appearance `xml:"app:Appearance"`
}

// Appearance is one themed set of surface data blocks.
type Appearance struct {
	ID          string                `xml:"gml:id,attr"`
	Theme       string                `xml:"app:theme"`
	SurfaceData []SurfaceDataProperty `xml:"app:surfaceData"`
}

// SurfaceDataProperty wraps one material block.
type SurfaceDataProperty struct {
	Material X3DMaterial `xml:"app:X3DMaterial"`
}

// X3DMaterial is one material-homogeneous surface data block; Targets
// reference polygon ids ("#<gml:id>").
type X3DMaterial struct {
	ID           string   `xml:"gml:id,attr"`
	IsFront      string   `xml:"app:isFront"`
	DiffuseColor string   `xml:"app:diffuseColor"`
	Transparency string   `xml:"app:transparency,omitempty"`
	Targets      []string `xml:"app:target"`
}
