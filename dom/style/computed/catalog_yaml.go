package computed

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/restyle/restyle"
	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML representation of a catalog.
type catalogFile struct {
	IncludeDefaults bool        `yaml:"include_defaults"`
	Rules           []yamlEntry `yaml:"rules"`
}

type yamlEntry struct {
	Name     string `yaml:"name,omitempty"`
	Group    string `yaml:"group,omitempty"`
	Property string `yaml:"property,omitempty"`
	Category string `yaml:"category"`
	Compare  string `yaml:"compare,omitempty"`
}

// ReadEntries reads catalog entries from YAML. If the document sets
// include_defaults, DefaultEntries are prepended.
func ReadEntries(r io.Reader) ([]Entry, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty catalog", ErrInvalidEntry)
		}
		return nil, fmt.Errorf("cannot read catalog: %w", err)
	}
	var entries []Entry
	if file.IncludeDefaults {
		entries = DefaultEntries()
	}
	for i, y := range file.Rules {
		cat, err := restyle.ParseCategory(y.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: rule #%d: %v", ErrInvalidEntry, i, err)
		}
		entries = append(entries, Entry{
			Name:     y.Name,
			Group:    y.Group,
			Property: y.Property,
			Category: cat,
			Compare:  Comparison(y.Compare),
		})
	}
	return entries, nil
}

// LoadCatalog reads a restyle catalog from YAML.
func LoadCatalog(r io.Reader) (*restyle.Catalog[*Style], error) {
	entries, err := ReadEntries(r)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded restyle catalog with %d entries", len(entries))
	return NewCatalog(entries)
}

// LoadCatalogFile reads a restyle catalog from a YAML file.
func LoadCatalogFile(path string) (*restyle.Catalog[*Style], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadCatalog(f)
}

// WriteEntries writes catalog entries as YAML, in the format read by
// ReadEntries.
func WriteEntries(w io.Writer, entries []Entry) error {
	file := catalogFile{Rules: make([]yamlEntry, len(entries))}
	for i, e := range entries {
		file.Rules[i] = yamlEntry{
			Name:     e.Name,
			Group:    e.Group,
			Property: e.Property,
			Category: e.Category.String(),
			Compare:  string(e.Compare),
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return err
	}
	return enc.Close()
}
