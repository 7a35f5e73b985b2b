package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.json
var defaultCatalogJSON []byte

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	b, err := ParseBundle(defaultCatalogJSON, ".json")
	if err != nil {
		return nil, fmt.Errorf("parsing embedded catalog: %w", err)
	}
	return New(b), nil
}

// ParseBundle decodes catalog data. ext selects the format: ".yaml"/".yml"
// for YAML, anything else for JSON.
func ParseBundle(data []byte, ext string) (Bundle, error) {
	var b Bundle
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &b); err != nil {
			return Bundle{}, fmt.Errorf("parsing yaml catalog: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &b); err != nil {
			return Bundle{}, fmt.Errorf("parsing json catalog: %w", err)
		}
	}
	return b, nil
}

// LoadFile reads one JSON or YAML catalog file.
func LoadFile(path string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bundle{}, err
	}
	b, err := ParseBundle(data, filepath.Ext(path))
	if err != nil {
		return Bundle{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return b, nil
}

// Load reads a catalog from a file, or from every .json/.yaml/.yml file in
// a directory merged in lexical order.
func Load(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	if !info.IsDir() {
		b, err := LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
		return New(b), nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("listing catalog directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json", ".yaml", ".yml":
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no catalog files in %s", path)
	}
	sort.Strings(files)

	var merged Bundle
	for _, f := range files {
		b, err := LoadFile(f)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
		merged = merged.Merge(b)
	}
	return New(merged), nil
}
