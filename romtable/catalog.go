package romtable

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/tidwall/jsonc"
)

// Catalog maps table names to their layouts within a ROM image.
type Catalog map[string]Layout

// Defaults returns the built-in catalog for the 2003 Evo 8 image. Offsets
// are illustrative; real images should ship a config file verified against
// the ROM revision in use.
func Defaults() Catalog {
	return Catalog{
		"octane": {
			Offset:   0x3000,
			Rows:     16,
			Cols:     16,
			RowLabel: "RPM",
			ColLabel: "Load",
		},
		"ignition": {
			Offset:   0x4000,
			Rows:     16,
			Cols:     16,
			RowLabel: "RPM",
			ColLabel: "Load",
		},
	}
}

// Names returns the configured table names in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the layout for the named table. An unconfigured name fails
// with an *UnknownTableError listing the available names.
func (c Catalog) Lookup(name string) (Layout, error) {
	layout, ok := c[name]
	if !ok {
		return Layout{}, &UnknownTableError{Name: name, Available: c.Names()}
	}
	return layout, nil
}

// ParseCatalog parses a catalog document. The input is JSON extended with
// // line comments, /* block comments */, and trailing commas; each key is a
// table name and each value a layout:
//
//	{
//	    "octane": {"offset": 12288, "rows": 16, "cols": 16, "row_label": "RPM", "col_label": "Load"}
//	}
//
// Every layout is validated; a catalog containing an invalid layout is
// rejected as a whole.
func ParseCatalog(data []byte) (Catalog, error) {
	stripped := jsonc.ToJSON(data)

	var catalog Catalog
	if err := json.Unmarshal(stripped, &catalog); err != nil {
		return nil, fmt.Errorf("parsing table catalog: %w", err)
	}

	for name, layout := range catalog {
		if err := layout.Validate(); err != nil {
			return nil, fmt.Errorf("table %q: %w", name, err)
		}
	}

	return catalog, nil
}

// LoadCatalog reads and parses a JSONC catalog file from disk.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return catalog, nil
}
