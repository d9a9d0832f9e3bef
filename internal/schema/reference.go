package schema

import (
	"strings"

	"github.com/go-openapi/spec"
)

// DefinitionsPrefix starts every local definition reference.
const DefinitionsPrefix = "#/definitions/"

// RefSchema builds a reference schema.
func RefSchema(refType string) *spec.Schema {
	return spec.RefSchema(DefinitionsPrefix + refType)
}

// IsRefSchema determines whether a schema is a reference schema.
func IsRefSchema(schema *spec.Schema) bool {
	if schema == nil {
		return false
	}
	return schema.Ref.Ref.GetURL() != nil
}

// RefName returns the last path segment of a reference, e.g. "Pet" for
// "#/definitions/Pet".
func RefName(ref string) string {
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}

// RefNames lists the definition names referenced directly by schemas.
func RefNames(schemas []spec.Schema) []string {
	var out []string
	for i := range schemas {
		if !IsRefSchema(&schemas[i]) {
			continue
		}
		out = append(out, RefName(schemas[i].Ref.String()))
	}
	return out
}
