package convert

import (
	"github.com/google/uuid"

	"github.com/tum-gis/ifc-to-citygml3/internal/appearance"
	"github.com/tum-gis/ifc-to-citygml3/internal/citygml"
	"github.com/tum-gis/ifc-to-citygml3/internal/geometry"
	"github.com/tum-gis/ifc-to-citygml3/internal/georef"
	"github.com/tum-gis/ifc-to-citygml3/internal/ifc"
)

// Converter runs the conversion pipeline over one extracted model. The
// model is read-only input; all build state lives in the converter and is
// discarded after Run.
type Converter struct {
	model *ifc.Model
	opts  Options
	tr    georef.Transform
	newID func() string
	stats *Stats

	extent extent
}

// New creates a converter for one model and configuration.
func New(model *ifc.Model, opts Options) *Converter {
	newID := opts.NewID
	if newID == nil {
		newID = func() string { return "UUID_" + uuid.NewString() }
	}
	return &Converter{
		model: model,
		opts:  opts,
		tr:    georef.Resolve(model, opts.ForceAnchor, opts.OffsetX, opts.OffsetY, opts.OffsetZ),
		newID: newID,
		stats: newStats(),
	}
}

// Transform returns the georeference transform resolved for this run.
func (c *Converter) Transform() georef.Transform {
	return c.tr
}

// Run converts the whole model into one CityGML document and returns it
// together with the conversion statistics.
func (c *Converter) Run() (*citygml.CityModel, *Stats) {
	doc := citygml.NewCityModel()
	doc.Description = c.model.Project.Description
	doc.Name = c.model.Project.Name

	for _, cat := range ifc.Walk(c.model) {
		b := c.convertBuilding(cat)
		doc.Members = append(doc.Members, citygml.CityObjectMember{Building: b})
	}
	for _, site := range ifc.Sites(c.model) {
		f := c.buildFeature(site, KindLandUse)
		doc.Members = append(doc.Members, citygml.CityObjectMember{LandUse: f})
		c.stats.Sites++
	}

	doc.BoundedBy = c.extent.envelope(c.tr.SRSName)
	return doc, c.stats
}

// featureRecord tracks one emitted feature for filling resolution and
// storey membership links.
type featureRecord struct {
	kind    Kind
	entry   ifc.CatalogueEntry
	feature *citygml.Feature
}

func (c *Converter) convertBuilding(cat ifc.BuildingCatalogue) *citygml.Building {
	b := &citygml.Building{
		ID:          c.newID(),
		Description: cat.Building.Description,
		Name:        cat.Building.Name,
	}
	if !c.opts.SuppressReferences {
		guid := cat.Building.GUID
		if guid == "" {
			guid = c.model.Project.GUID
		}
		b.ExternalReference = c.externalReference(guid)
	}
	if !c.opts.SuppressProperties {
		b.GenericAttributes = mapProperties(cat.Building.PropertySets, c.opts.FlattenAttributes, c.opts.PrefixAttributeNames)
	}
	b.Class = cat.Building.Type

	resolver := newFillingResolver()
	records := make(map[int]*featureRecord)
	var storeys []ifc.CatalogueEntry

	for _, entry := range cat.Entries {
		el := entry.Element
		kind, err := Classify(el.Type)
		if err != nil {
			c.recordSkip(el.Type, err)
			continue
		}
		switch kind {
		case KindDoor, KindWindow:
			resolver.register(entry)
			continue
		case KindStorey:
			storeys = append(storeys, entry)
			continue
		case KindBuilding, KindLandUse:
			// Buildings get their own catalogue; sites are handled at the
			// top level.
			continue
		}

		f := c.buildFeature(el, kind)
		records[el.ID] = &featureRecord{kind: kind, entry: entry, feature: f}
		member := citygml.FeatureMember{Feature: f}
		switch kind {
		case KindBuildingConstructiveElement:
			b.ConstructiveElements = append(b.ConstructiveElements, member)
		case KindBuildingInstallation:
			b.Installations = append(b.Installations, member)
		case KindBuildingRoom:
			b.Rooms = append(b.Rooms, member)
		case KindBuildingFurniture:
			b.Furniture = append(b.Furniture, member)
		}
	}

	// Embed every opening whose host was mapped to a constructive element.
	for _, entry := range resolver.pending {
		el := entry.Element
		host := records[el.Host]
		if el.Host == 0 || host == nil || host.kind != KindBuildingConstructiveElement {
			continue
		}
		if !resolver.markEmbedded(el.ID) {
			continue
		}
		kind, _ := Classify(el.Type)
		df := c.buildFeature(el, kind)
		host.feature.Fillings = append(host.feature.Fillings, citygml.FillingProperty{Filling: df})
		c.stats.EmbeddedFillings++
	}

	// Remaining openings either go into one dummy element per storey or
	// are dropped (and listed when requested).
	dummyByStorey := make(map[int]string)
	if c.opts.DummyFillings {
		for _, group := range resolver.unresolvedByStorey() {
			dummy := &citygml.Feature{XMLName: citygml.NameConstructiveElement, ID: c.newID()}
			if group.Storey != 0 {
				name := "Unnamed Storey"
				if storey := c.model.Element(group.Storey); storey != nil && storey.Name != "" {
					name = storey.Name
				}
				dummy.Name = "Stub Element for unrelated Doors and Windows - Storey: " + name
			} else {
				dummy.Name = "Stub Element for unrelated Doors and Windows - No Storey Assignment"
			}
			for _, entry := range group.Entries {
				if !resolver.markDummied(entry.Element.ID) {
					continue
				}
				kind, _ := Classify(entry.Element.Type)
				df := c.buildFeature(entry.Element, kind)
				dummy.Fillings = append(dummy.Fillings, citygml.FillingProperty{Filling: df})
				c.stats.DummiedFillings++
			}
			dummy.Class = "DummyBuildingConstructiveElement"
			dummyByStorey[group.Storey] = dummy.ID
			b.ConstructiveElements = append(b.ConstructiveElements, citygml.FeatureMember{Feature: dummy})
			c.stats.DummyElements++
		}
	} else {
		for _, entry := range resolver.unresolved() {
			c.stats.DroppedFillings++
			if c.opts.ListUnresolvedFillings {
				c.stats.Unresolved = append(c.stats.Unresolved, UnresolvedFilling{
					ID:     entry.Element.ID,
					GUID:   entry.Element.GUID,
					Type:   entry.Element.Type,
					Name:   entry.Element.Name,
					Storey: entry.Storey,
					Host:   entry.Element.Host,
				})
			}
		}
	}

	// Storeys are emitted last and reference their members by xlink so
	// each feature definition has a single owner.
	if !c.opts.SuppressStoreys {
		for _, entry := range storeys {
			sf := c.buildFeature(entry.Element, KindStorey)
			for _, e := range cat.Entries {
				rec := records[e.Element.ID]
				if rec == nil || e.Storey != entry.Element.ID {
					continue
				}
				member := citygml.FeatureMember{Href: "#" + rec.feature.ID}
				switch rec.kind {
				case KindBuildingConstructiveElement:
					sf.ElementMembers = append(sf.ElementMembers, member)
				case KindBuildingInstallation:
					sf.InstallationMembers = append(sf.InstallationMembers, member)
				case KindBuildingRoom:
					sf.RoomMembers = append(sf.RoomMembers, member)
				case KindBuildingFurniture:
					sf.FurnitureMembers = append(sf.FurnitureMembers, member)
				}
			}
			if dummyID, ok := dummyByStorey[entry.Element.ID]; ok {
				sf.ElementMembers = append(sf.ElementMembers, citygml.FeatureMember{Href: "#" + dummyID})
			}
			b.Subdivisions = append(b.Subdivisions, citygml.FeatureMember{Feature: sf})
		}
	}

	c.stats.Buildings++
	return b
}

// buildFeature composes one mapped feature: metadata, external reference,
// appearance, generic attributes, geometry and the literal source type as
// class label.
func (c *Converter) buildFeature(el *ifc.Element, kind Kind) *citygml.Feature {
	id := c.newID()
	f := &citygml.Feature{
		XMLName:     nameFor(kind),
		ID:          id,
		Description: el.Description,
		Name:        el.Name,
	}
	if !c.opts.SuppressReferences && el.GUID != "" {
		f.ExternalReference = c.externalReference(el.GUID)
	}

	geom := geometry.Adapt(el.Mesh, c.tr, c.opts.ReorientShells, c.newID)
	if geom == nil && kind != KindStorey {
		c.stats.MissingGeometry++
	}
	if geom != nil && !c.opts.SuppressAppearances {
		groups := appearance.GroupFaces(el.Mesh)
		if app := appearance.Build(id, groups, surfaceIDs(geom)); app != nil {
			f.Appearance = app
			c.stats.Appearances += len(app.Appearance.SurfaceData)
		}
	}
	if !c.opts.SuppressProperties {
		f.GenericAttributes = mapProperties(el.PropertySets, c.opts.FlattenAttributes, c.opts.PrefixAttributeNames)
	}
	if geom != nil {
		c.attachGeometry(f, geom)
	}

	switch kind {
	case KindDoor, KindWindow:
		f.ConClass = el.Type
	case KindLandUse:
		f.LandUseClass = el.Type
	default:
		f.Class = el.Type
	}

	c.stats.Features++
	c.stats.ByType[el.Type]++
	return f
}

func (c *Converter) externalReference(guid string) *citygml.ExternalReferenceProperty {
	if guid == "" {
		guid = "UNKNOWN"
	}
	return &citygml.ExternalReferenceProperty{
		Reference: citygml.ExternalReference{
			TargetResource:    guid,
			InformationSystem: c.model.FileName,
		},
	}
}

func (c *Converter) recordSkip(ifcType string, err error) {
	if isUnsupported(err) {
		c.stats.SkippedUnsupported[ifcType]++
		return
	}
	c.stats.SkippedUnrecognized[ifcType]++
}
