package citygml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Write serializes the document with an XML declaration and two-space
// indentation.
func Write(w io.Writer, doc *CityModel) error {
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize document: %w", err)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// WriteFile writes the document to path, replacing any existing file. The
// document is first written to a temporary file in the destination
// directory and renamed into place, so a failed run never leaves truncated
// output behind.
func WriteFile(path string, doc *CityModel) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	tmpName := tmp.Name()

	if err := Write(tmp, doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
