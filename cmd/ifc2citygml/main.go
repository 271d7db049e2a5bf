// Command ifc2citygml converts an extracted IFC building model into a
// CityGML 3.0 document.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tum-gis/ifc-to-citygml3/internal/citygml"
	"github.com/tum-gis/ifc-to-citygml3/internal/convert"
	"github.com/tum-gis/ifc-to-citygml3/internal/crs"
	"github.com/tum-gis/ifc-to-citygml3/internal/georef"
	"github.com/tum-gis/ifc-to-citygml3/internal/ifc"
)

const Version = "1.0.0"

func main() {
	var (
		output        = flag.String("output", "", "Output path (default: input path with .gml extension)")
		noReferences  = flag.Bool("no-references", false, "Do not export CityGML external references")
		noProperties  = flag.Bool("no-properties", false, "Do not export property sets/generic attributes")
		noStoreys     = flag.Bool("no-storeys", false, "Do not export CityGML Storey objects")
		noAppearances = flag.Bool("no-appearances", false, "Do not export CityGML appearance elements (colors/materials)")
		flatten       = flag.Bool("flatten-attributes", false, "Output properties as direct generic attributes instead of GenericAttributeSets")
		prefix        = flag.Bool("prefix-pset-names", false, "Prefix property names with their property set name (e.g., [PSET_NAME]property_name)")
		listFillings  = flag.Bool("list-unresolved-fillings", false, "List all doors and windows that could not be assigned to a BuildingConstructiveElement")
		dummyFillings = flag.Bool("dummy-fillings", false, "Put unresolved doors and windows in dummy BuildingConstructiveElements grouped by storey")
		reorient      = flag.Bool("reorient-shells", false, "Ensure that all solid boundary surfaces are oriented outwards (slows down processing!)")
		anchor        = flag.Bool("georef-anchor", false, "Georeference the model to the fixed anchor (Theresienwiese, EPSG:25832)")
		xoffset       = flag.Float64("xoffset", 0.0, "Offset to shift the model in X direction (applied after georeferencing)")
		yoffset       = flag.Float64("yoffset", 0.0, "Offset to shift the model in Y direction (applied after georeferencing)")
		zoffset       = flag.Float64("zoffset", 0.0, "Offset to shift the model in Z direction (applied after georeferencing)")
		debug         = flag.Bool("debug", false, "Enable debug output")
		version       = flag.Bool("version", false, "Print version and exit")
		help          = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *version {
		fmt.Printf("ifc2citygml v%s\n", Version)
		os.Exit(0)
	}
	if *help || flag.NArg() != 1 {
		printUsage()
		if *help {
			os.Exit(0)
		}
		os.Exit(1)
	}

	inputPath := flag.Arg(0)
	outputPath := *output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".gml"
	}

	if *anchor {
		if err := crs.Validate(georef.AnchorSRSName); err != nil {
			fmt.Fprintf(os.Stderr, "Error: anchor CRS: %v\n", err)
			os.Exit(1)
		}
	}

	model, err := ifc.ReadModelFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Processing model: %s (%d elements)\n", inputPath, len(model.Elements))
	if *debug {
		fmt.Printf("Output path: %s\n", outputPath)
		if model.MapConversion != nil {
			fmt.Printf("Embedded georeference found: %s\n", model.MapConversion.SRSName)
		} else {
			fmt.Println("No embedded georeference found. Using local coordinates.")
		}
	}

	conv := convert.New(model, convert.Options{
		SuppressReferences:     *noReferences,
		SuppressProperties:     *noProperties,
		SuppressStoreys:        *noStoreys,
		SuppressAppearances:    *noAppearances,
		FlattenAttributes:      *flatten,
		PrefixAttributeNames:   *prefix,
		ListUnresolvedFillings: *listFillings,
		DummyFillings:          *dummyFillings,
		ReorientShells:         *reorient,
		ForceAnchor:            *anchor,
		OffsetX:                *xoffset,
		OffsetY:                *yoffset,
		OffsetZ:                *zoffset,
	})
	doc, stats := conv.Run()

	if err := citygml.WriteFile(outputPath, doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully wrote %s\n", outputPath)

	tr := conv.Transform()
	if *anchor {
		fmt.Printf("Georeference used (%s, %s): Easting=%.3f, Northing=%.3f, Height=%.3f\n",
			tr.SRSName, crs.Description(tr.SRSName), tr.Eastings, tr.Northings, tr.OrthogonalHeight)
	}
	if tr.OffsetX != 0.0 || tr.OffsetY != 0.0 || tr.OffsetZ != 0.0 {
		fmt.Printf("Offset applied: X=%.3f, Y=%.3f, Z=%.3f\n", tr.OffsetX, tr.OffsetY, tr.OffsetZ)
	}

	printSummary(stats, *debug)
	if *listFillings && len(stats.Unresolved) > 0 {
		printUnresolved(stats.Unresolved, model)
	}
}

// printSummary reports what the conversion produced.
func printSummary(stats *convert.Stats, debug bool) {
	fmt.Println("\n=== Conversion Summary ===")
	fmt.Printf("Buildings: %d\n", stats.Buildings)
	if stats.Sites > 0 {
		fmt.Printf("Land use features: %d\n", stats.Sites)
	}
	fmt.Printf("Features: %d\n", stats.Features)
	if debug {
		for _, line := range countLines(stats.ByType) {
			fmt.Printf("  %s\n", line)
		}
	}
	if stats.MissingGeometry > 0 {
		fmt.Printf("Features without geometry: %d\n", stats.MissingGeometry)
	}
	if stats.Appearances > 0 {
		fmt.Printf("Materials/appearances: %d\n", stats.Appearances)
	}
	total := stats.EmbeddedFillings + stats.DummiedFillings + stats.DroppedFillings
	if total > 0 {
		fmt.Printf("Doors and Windows: %d of %d embedded as con:filling\n", stats.EmbeddedFillings, total)
		if stats.DummiedFillings > 0 {
			fmt.Printf("  %d grouped into %d dummy BuildingConstructiveElements\n", stats.DummiedFillings, stats.DummyElements)
		}
		if stats.DroppedFillings > 0 {
			fmt.Printf("  Warning: %d doors/windows could not be assigned to a BuildingConstructiveElement\n", stats.DroppedFillings)
			fmt.Println("  Use option '-list-unresolved-fillings' to see details, or")
			fmt.Println("  use option '-dummy-fillings' to create empty BuildingConstructiveElements grouped by storey.")
		}
	}
	if len(stats.SkippedUnsupported) > 0 && debug {
		fmt.Println("Skipped (unsupported types):")
		for _, line := range countLines(stats.SkippedUnsupported) {
			fmt.Printf("  %s\n", line)
		}
	}
	if len(stats.SkippedUnrecognized) > 0 {
		fmt.Println("Skipped (unrecognized types):")
		for _, line := range countLines(stats.SkippedUnrecognized) {
			fmt.Printf("  %s\n", line)
		}
	}
	fmt.Println("==========================")
}

// printUnresolved lists the openings that ended up without a host.
func printUnresolved(unresolved []convert.UnresolvedFilling, model *ifc.Model) {
	fmt.Println("\nUnresolved Doors and Windows:")
	fmt.Println(strings.Repeat("-", 78))
	for _, u := range unresolved {
		fmt.Printf("%s | GUID: %s | Name: %s\n", u.Type, orNA(u.GUID), orNA(u.Name))
		if host := model.Element(u.Host); host != nil {
			fmt.Printf("  Connected to: %s | GUID: %s | Name: %s\n", host.Type, orNA(host.GUID), orNA(host.Name))
		}
	}
	fmt.Println(strings.Repeat("-", 78))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func countLines(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %d", k, counts[k]))
	}
	return lines
}

func printUsage() {
	fmt.Printf("ifc2citygml v%s - IFC to CityGML 3.0 Converter\n", Version)
	fmt.Println("Converts an extracted IFC building model into a CityGML 3.0 document")
	fmt.Println("\nUsage:")
	fmt.Printf("  %s [options] <model.json>\n\n", os.Args[0])
	fmt.Println("The input is the extraction kernel's JSON model dump (spatial hierarchy,")
	fmt.Println("triangulated geometry, materials and property sets).")
	fmt.Println("\nOptions:")
	flag.PrintDefaults()
	fmt.Println("\nExample:")
	fmt.Printf("  %s -dummy-fillings -georef-anchor -output building.gml model.json\n", os.Args[0])
}
