package orchestrator

import (
	"strings"

	"github.com/griffnb/core-tsindex/internal/domain"
	"github.com/griffnb/core-tsindex/internal/extension"
	"github.com/griffnb/core-tsindex/internal/schema"
)

// resolveDefaults stores the default literal of the model and of each of its
// properties.
func (s *Service) resolveDefaults(m *domain.Model, r *extension.Record) {
	if m.Schema != nil && m.Schema.Default != nil {
		r.DefaultValue = schema.Literal(m.Schema.Default)
	}

	for _, p := range m.Vars {
		pr := s.store.ForProperty(p)
		if literal, ok := propertyDefault(m, p); ok {
			pr.DefaultValue = literal
		}
	}
}

// propertyDefault picks an explicit default first, then the empty literal of
// a list or map.
func propertyDefault(m *domain.Model, p *domain.Property) (string, bool) {
	if value, ok := schema.PropertyDefault(m.Schema, p.BaseName); ok {
		return schema.PropertyLiteral(value, p.IsByteArray), true
	}
	if p.DefaultValue != "" {
		if p.IsByteArray {
			return schema.EmptyStringLiteral, true
		}
		return p.DefaultValue, true
	}

	switch {
	case p.IsListContainer || strings.EqualFold(p.BaseType, schema.ARRAY):
		return schema.EmptyArrayLiteral, true
	case p.IsMapContainer || strings.EqualFold(p.BaseType, schema.OBJECT):
		return schema.EmptyObjectLiteral, true
	}

	return "", false
}
