// Package crs resolves EPSG coordinate reference systems through GDAL.
//
// It is only imported by the CLI so that the converter library and its
// tests build without cgo.
package crs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lukeroth/gdal"
)

// Code parses an "EPSG:<code>" SRS name.
func Code(name string) (int, error) {
	rest, ok := strings.CutPrefix(name, "EPSG:")
	if !ok {
		return 0, fmt.Errorf("SRS name %q is not an EPSG code", name)
	}
	code, err := strconv.Atoi(rest)
	if err != nil || code <= 0 {
		return 0, fmt.Errorf("SRS name %q is not an EPSG code", name)
	}
	return code, nil
}

// Validate checks an EPSG SRS name against the GDAL CRS registry.
func Validate(name string) error {
	code, err := Code(name)
	if err != nil {
		return err
	}
	sr := gdal.CreateSpatialReference("")
	if err := sr.FromEPSG(code); err != nil {
		return fmt.Errorf("unknown CRS %s: %w", name, err)
	}
	return nil
}

// Description returns the human-readable CRS name for an EPSG SRS name, or
// the input unchanged when it cannot be resolved.
func Description(name string) string {
	code, err := Code(name)
	if err != nil {
		return name
	}
	sr := gdal.CreateSpatialReference("")
	if err := sr.FromEPSG(code); err != nil {
		return name
	}
	if v, ok := sr.AttrValue("PROJCS", 0); ok {
		return v
	}
	if v, ok := sr.AttrValue("GEOGCS", 0); ok {
		return v
	}
	return name
}
