// Package sensor reads and writes batches of raw sensor packages.
package sensor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// ErrNoPackages is returned when a document holds no packages.
var ErrNoPackages = errors.New("no sensor packages found")

// Package is one row of data received from a tracker.
type Package struct {
	Type string    `yaml:"type" json:"type"`
	Data []float64 `yaml:"data" json:"data"`
}

type document struct {
	Packages []Package `yaml:"packages"`
}

// Samples returns built-in packages printed when no input file is given.
func Samples() []Package {
	return []Package{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

// Decode reads YAML document of form:
//
//	packages:
//	  - type: RUN
//	    data: [15000, 1, 75]
func Decode(r io.Reader) ([]Package, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read packages: %w", err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ErrNoPackages
	}

	var doc document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("cannot parse packages: %w", err)
	}
	if len(doc.Packages) == 0 {
		return nil, ErrNoPackages
	}
	return doc.Packages, nil
}

// LoadFile reads packages from YAML file at given path.
func LoadFile(path string) ([]Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open packages file: %w", err)
	}
	defer f.Close()

	packages, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return packages, nil
}

// Encode writes packages in the format accepted by Decode.
func Encode(w io.Writer, packages []Package) error {
	content, err := yaml.Marshal(document{Packages: packages})
	if err != nil {
		return fmt.Errorf("cannot marshal packages: %w", err)
	}
	_, err = w.Write(content)
	return err
}
