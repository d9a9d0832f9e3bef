package orchestrator

import (
	"github.com/griffnb/core-tsindex/internal/domain"
	"github.com/griffnb/core-tsindex/internal/extension"
	"github.com/griffnb/core-tsindex/internal/names"
	"github.com/griffnb/core-tsindex/internal/schema"
)

// normalizeDiscriminator replaces reference paths in the mapping by simple
// type names.
func (s *Service) normalizeDiscriminator(m *domain.Model) {
	if m.Discriminator == nil {
		return
	}

	for tag, target := range m.Discriminator.Mapping {
		className := s.modelName(schema.RefName(target)).ClassName()
		m.Discriminator.Mapping[tag] = names.ParseTypeName(className).Name()
	}
}

// resolveExtends normalizes a declared base and, for oneOf compositions
// without a discriminator, records every alternative under the name of its
// first property.
func (s *Service) resolveExtends(m *domain.Model, r *extension.Record) {
	if r.Extends != "" {
		typeName := names.ParseTypeName(s.toModelName(r.Extends))
		r.Extends = typeName.Name()
		r.ExtendsPackage = typeName.Package()
	}

	if m.Discriminator != nil || m.Schema == nil || len(m.Schema.OneOf) == 0 {
		return
	}

	for _, ref := range schema.RefNames(m.Schema.OneOf) {
		typeName := names.ParseTypeName(s.toModelName(ref))
		alternative, ok := s.graph.Lookup(typeName.ModelName())
		if !ok || len(alternative.Vars) == 0 {
			continue
		}
		// Vars follow the loader's property order (x-order, then name), so
		// Vars[0] is not necessarily the first property written in the document.
		r.SetExtendedBy(alternative.Vars[0].BaseName, typeName.Name())
	}
}

// markAlias turns a property-less oneOf or anyOf declaration into an alias of
// the union of its alternatives.
func (s *Service) markAlias(m *domain.Model) {
	if m.Schema == nil || len(m.Vars) > 0 {
		return
	}
	if len(m.Schema.OneOf) == 0 && len(m.Schema.AnyOf) == 0 {
		return
	}

	m.IsAlias = true
	m.DataType = schema.TypeExpression(m.Schema, s.simpleName)
	for _, name := range schema.TypeNames(m.DataType) {
		m.AddImport(name)
	}
}

func (s *Service) simpleName(definition string) string {
	return names.ParseTypeName(s.toModelName(definition)).Name()
}
