package schema

import (
	"regexp"
	"strings"

	"github.com/go-openapi/spec"
)

const (
	intersectionSeparator = " & "
	unionSeparator        = " | "
)

// builtinTypes are never imported.
var builtinTypes = map[string]struct{}{
	"any":       {},
	"Array":     {},
	"Blob":      {},
	"boolean":   {},
	"key":       {},
	"null":      {},
	"number":    {},
	"object":    {},
	"string":    {},
	"undefined": {},
}

var identifierPattern = regexp.MustCompile(`[A-Za-z_$][A-Za-z0-9_$]*`)

// RefResolver maps a definition name to the type name used in expressions.
type RefResolver func(definition string) string

// TypeExpression renders the TypeScript type of schema. allOf members are
// joined into an intersection, oneOf and anyOf members into a union.
func TypeExpression(schema *spec.Schema, resolve RefResolver) string {
	if schema == nil {
		return "any"
	}
	if IsRefSchema(schema) {
		return resolve(RefName(schema.Ref.String()))
	}

	switch {
	case len(schema.AllOf) > 0:
		return joinExpressions(schema.AllOf, intersectionSeparator, resolve)
	case len(schema.OneOf) > 0:
		return joinExpressions(schema.OneOf, unionSeparator, resolve)
	case len(schema.AnyOf) > 0:
		return joinExpressions(schema.AnyOf, unionSeparator, resolve)
	}

	switch TypeOf(schema) {
	case ARRAY:
		var items *spec.Schema
		if schema.Items != nil {
			items = schema.Items.Schema
		}
		return "Array<" + TypeExpression(items, resolve) + ">"
	case OBJECT:
		if IsMapSchema(schema) {
			return "{ [key: string]: " + TypeExpression(schema.AdditionalProperties.Schema, resolve) + "; }"
		}
		return "any"
	case STRING:
		if schema.Format == FormatBinary {
			return "Blob"
		}
		return "string"
	case INTEGER, NUMBER:
		return "number"
	case BOOLEAN:
		return "boolean"
	case FILE:
		return "Blob"
	default:
		return "any"
	}
}

func joinExpressions(schemas []spec.Schema, separator string, resolve RefResolver) string {
	seen := make(map[string]struct{}, len(schemas))
	parts := make([]string, 0, len(schemas))
	for i := range schemas {
		expr := TypeExpression(&schemas[i], resolve)
		if _, ok := seen[expr]; ok {
			continue
		}
		seen[expr] = struct{}{}
		parts = append(parts, expr)
	}
	return strings.Join(parts, separator)
}

// TypeNames lists the declared type names an expression refers to, in order
// of first appearance.
func TypeNames(expr string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, name := range identifierPattern.FindAllString(expr, -1) {
		if _, ok := builtinTypes[name]; ok {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
