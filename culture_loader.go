package composite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// cultureFile is the on-disk shape for culture definitions:
//
//	cultures:
//	  de-CH:
//	    decimal_sep: "."
//	    group_sep: "'"
//	    percent_pattern: "{n}%"
type cultureFile struct {
	Cultures map[string]cultureDefinition `yaml:"cultures" json:"cultures"`
}

type cultureDefinition struct {
	DecimalSep     string `yaml:"decimal_sep" json:"decimal_sep"`
	GroupSep       string `yaml:"group_sep" json:"group_sep"`
	GroupSizes     []int  `yaml:"group_sizes" json:"group_sizes"`
	PercentSymbol  string `yaml:"percent_symbol" json:"percent_symbol"`
	PercentPattern string `yaml:"percent_pattern" json:"percent_pattern"`
}

// LoadCultureFile reads culture definitions from a YAML or JSON file,
// selected by extension. Locales are returned in sorted order so repeated
// loads register deterministically.
func LoadCultureFile(path string) ([]Culture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("composite: read %s: %w", path, err)
	}

	file, err := decodeCultureFile(path, data)
	if err != nil {
		return nil, fmt.Errorf("composite: decode %s: %w", path, err)
	}

	locales := make([]string, 0, len(file.Cultures))
	for locale := range file.Cultures {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	cultures := make([]Culture, 0, len(locales))
	for _, locale := range locales {
		def := file.Cultures[locale]
		cultures = append(cultures, Culture{
			Locale:         locale,
			DecimalSep:     def.DecimalSep,
			GroupSep:       def.GroupSep,
			GroupSizes:     append([]int(nil), def.GroupSizes...),
			PercentSymbol:  def.PercentSymbol,
			PercentPattern: def.PercentPattern,
		})
	}

	return cultures, nil
}

func decodeCultureFile(path string, data []byte) (*cultureFile, error) {
	var file cultureFile

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported culture file extension %q", filepath.Ext(path))
	}

	return &file, nil
}
