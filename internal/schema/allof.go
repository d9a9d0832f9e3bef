package schema

import (
	"github.com/go-openapi/spec"
)

// ObjectMembers returns the inline object schemas of an allOf composition.
func ObjectMembers(schema *spec.Schema) []*spec.Schema {
	if schema == nil {
		return nil
	}

	var out []*spec.Schema
	for i := range schema.AllOf {
		if IsObjectSchema(&schema.AllOf[i]) {
			out = append(out, &schema.AllOf[i])
		}
	}
	return out
}

// PropertyDefault finds the explicit default of a property. The schema's own
// properties are checked first, then its inline allOf members in order.
func PropertyDefault(schema *spec.Schema, name string) (interface{}, bool) {
	if schema == nil {
		return nil, false
	}

	if property, ok := schema.Properties[name]; ok && property.Default != nil {
		return property.Default, true
	}

	for _, member := range ObjectMembers(schema) {
		if property, ok := member.Properties[name]; ok && property.Default != nil {
			return property.Default, true
		}
	}

	return nil, false
}

// FlattenedProperties lists the properties of schema and of its inline allOf
// members, ordered by x-order then name. Own properties win over members.
func FlattenedProperties(schema *spec.Schema) spec.OrderSchemaItems {
	if schema == nil {
		return nil
	}

	seen := make(map[string]struct{})
	var out spec.OrderSchemaItems

	collect := func(properties spec.SchemaProperties) {
		for _, item := range properties.ToOrderedSchemaItems() {
			if _, ok := seen[item.Name]; ok {
				continue
			}
			seen[item.Name] = struct{}{}
			out = append(out, item)
		}
	}

	collect(schema.Properties)
	for _, member := range ObjectMembers(schema) {
		collect(member.Properties)
	}

	return out
}

// ExpandAllOf returns a copy of schema whose allOf references are replaced by
// an inline object holding the referenced definition's flattened properties.
// References that keep reports, unknown definitions and cycles stay as they
// are. schema itself is not modified.
func ExpandAllOf(schema *spec.Schema, definitions spec.Definitions, keep func(name string) bool) *spec.Schema {
	return expandAllOf(schema, definitions, keep, make(map[string]struct{}))
}

func expandAllOf(schema *spec.Schema, definitions spec.Definitions, keep func(string) bool, visiting map[string]struct{}) *spec.Schema {
	if schema == nil || len(schema.AllOf) == 0 {
		return schema
	}

	out := *schema
	out.AllOf = make([]spec.Schema, 0, len(schema.AllOf))
	for i := range schema.AllOf {
		member := schema.AllOf[i]
		if !IsRefSchema(&member) {
			out.AllOf = append(out.AllOf, member)
			continue
		}

		name := RefName(member.Ref.String())
		base, ok := definitions[name]
		_, cyclic := visiting[name]
		if !ok || cyclic || (keep != nil && keep(name)) {
			out.AllOf = append(out.AllOf, member)
			continue
		}

		visiting[name] = struct{}{}
		out.AllOf = append(out.AllOf, inlineObject(expandAllOf(&base, definitions, keep, visiting)))
		delete(visiting, name)
	}

	return &out
}

func inlineObject(base *spec.Schema) spec.Schema {
	object := spec.Schema{SchemaProps: spec.SchemaProps{
		Type:       spec.StringOrArray{OBJECT},
		Properties: spec.SchemaProperties{},
	}}
	for _, item := range FlattenedProperties(base) {
		object.Properties[item.Name] = item.Schema
	}

	return object
}
