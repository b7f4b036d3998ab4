package lexicon

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads lexicon data from a YAML file.
func LoadFile(path string) (Data, error) {
	var d Data
	raw, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("failed to read lexicon file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return d, fmt.Errorf("failed to parse lexicon file %s: %w", path, err)
	}
	return d, nil
}

// SaveFile writes lexicon data as YAML.
func SaveFile(path string, d Data) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteYAML(f, d); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteYAML encodes lexicon data to w.
func WriteYAML(w io.Writer, d Data) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}
