package names

import (
	"os"
	"strings"

	"sigs.k8s.io/yaml"
)

// DefaultPrefixFile is where the generator looks for package prefix rules.
const DefaultPrefixFile = "generator_config.json"

// Debugger is the interface that wraps the basic Printf method.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// PackagePrefix maps identifiers starting with Prefix into the package at
// Location. Identifiers listed in PreservePrefix keep the prefix.
type PackagePrefix struct {
	Prefix         string   `json:"prefix"`
	Location       string   `json:"location"`
	PreservePrefix []string `json:"preservePrefix,omitempty"`
}

// PackageName is the rule location written as a dotted package prefix.
func (p PackagePrefix) PackageName() string {
	return toPackage(p.Location)
}

// Preserves reports whether the prefix must be kept for one of the given
// names.
func (p PackagePrefix) Preserves(candidates ...string) bool {
	for _, preserved := range p.PreservePrefix {
		for _, candidate := range candidates {
			if preserved == candidate {
				return true
			}
		}
	}

	return false
}

// PrefixTable is an ordered rule list. The first matching rule wins.
type PrefixTable []PackagePrefix

// Match returns the first rule whose prefix starts the identifier.
func (t PrefixTable) Match(identifier string) (PackagePrefix, bool) {
	for _, rule := range t {
		if rule.Prefix != "" && strings.HasPrefix(identifier, rule.Prefix) {
			return rule, true
		}
	}

	return PackagePrefix{}, false
}

type prefixFile struct {
	Packages PrefixTable `json:"packages"`
}

// ParsePrefixTable decodes a rule file. Both JSON and YAML are accepted.
func ParsePrefixTable(data []byte) (PrefixTable, error) {
	var file prefixFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	return file.Packages, nil
}

// LoadPrefixTable reads the rule file at path. A missing or broken file is not
// an error: the generator then runs without prefix rules.
func LoadPrefixTable(path string, debug Debugger) PrefixTable {
	if path == "" {
		return PrefixTable{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if debug != nil && !os.IsNotExist(err) {
			debug.Printf("could not read prefix rules %s: %v", path, err)
		}
		return PrefixTable{}
	}

	table, err := ParsePrefixTable(data)
	if err != nil {
		if debug != nil {
			debug.Printf("ignoring prefix rules %s: %v", path, err)
		}
		return PrefixTable{}
	}

	if debug != nil {
		debug.Printf("Using %d prefix rules from %s", len(table), path)
	}

	return table
}

func toPackage(location string) string {
	return strings.ReplaceAll(location, pathSeparator, packageSeparator)
}
