package orchestrator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/griffnb/core-tsindex/internal/domain"
	"github.com/griffnb/core-tsindex/internal/extension"
	"github.com/griffnb/core-tsindex/internal/names"
	"github.com/griffnb/core-tsindex/internal/registry"
)

// register adds the declaration of m to the index, resolves the models its
// properties refer to and computes its imports.
func (s *Service) register(m *domain.Model) error {
	r := s.store.ForModel(m)
	typeName := names.ParseTypeName(m.ClassName)

	r.TypeRootLocation = typeName.RootFileLocation()
	r.Description = escapeDescription(m.Description)

	exported := []string{typeName.Name()}
	if !m.IsEnum {
		exported = append(exported, typeName.Name()+InterfaceSuffix)
	}

	entry := registry.NewEntry(r.TypeRootLocation, typeName.PackageLocation(s.base), m, exported...)
	if err := s.index.Add(entry); err != nil {
		return err
	}

	entry, ok := s.index.Get(typeName.Name())
	if !ok {
		return fmt.Errorf("%w: %s", ErrModelNotInIndex, typeName.Name())
	}

	for _, p := range m.Vars {
		if err := s.resolveProperty(entry, p); err != nil {
			return err
		}
	}

	if !m.IsEnum {
		r.Imports = s.imports(m, r)
	}

	return nil
}

func (s *Service) resolveProperty(entry *registry.Entry, p *domain.Property) error {
	pr := s.store.ForProperty(p)
	pr.Description = escapeDescription(p.Description)

	if ref, ok := s.lookup(p.BaseType); ok {
		rr := s.store.ForModel(ref)
		if !ref.IsEnum {
			return nil
		}
		if err := s.registerEnumReference(ref, rr); err != nil {
			return err
		}
		pr.IsEnumReference = true
		if pr.DefaultValue == "" {
			pr.DefaultValue = rr.DefaultValue
		}
		return nil
	}

	if ref, ok := s.lookup(p.ComplexType); ok {
		rr := s.store.ForModel(ref)
		if !ref.IsEnum {
			return nil
		}
		if err := s.registerEnumReference(ref, rr); err != nil {
			return err
		}
		pr.IsEnumReference = true
		return nil
	}

	if p.IsEnum {
		return s.index.Export(entry, inlineExportName(p))
	}

	return nil
}

// registerEnumReference makes sure a referenced enum is declared.
func (s *Service) registerEnumReference(enum *domain.Model, r *extension.Record) error {
	typeName := names.ParseTypeName(enum.ClassName)
	r.TypeRootLocation = typeName.RootFileLocation()
	r.IsEnumType = true

	return s.index.Add(registry.NewEntry(r.TypeRootLocation, typeName.PackageLocation(s.base), enum, typeName.Name()))
}

// imports lists the type names the declaration of m refers to.
func (s *Service) imports(m *domain.Model, r *extension.Record) []string {
	set := map[string]struct{}{ParameterType: {}}
	add := func(name string) {
		if name != "" {
			set[name] = struct{}{}
		}
	}

	for _, p := range m.Vars {
		pr := s.store.ForProperty(p)
		if pr.IsTypeReference && !p.IsEnum {
			add(pr.TypeClassName)
		}
	}

	if r.Extends != "" {
		add(r.Extends)
		add(r.Extends + InterfaceSuffix)
	}
	if r.ParentClassName != "" {
		add(r.ParentClassName)
		add(r.ParentClassName + InterfaceSuffix)
	}
	for _, name := range r.ExtendedByNames() {
		add(names.ParseTypeName(name).Name())
	}
	if m.Discriminator != nil {
		for _, target := range m.Discriminator.Mapping {
			add(target)
		}
	}

	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// escapeDescription escapes a description for use inside a string literal.
func escapeDescription(description string) string {
	if description == "" {
		return ""
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(description); err != nil {
		return description
	}

	out := strings.TrimSuffix(buf.String(), "\n")
	return out[1 : len(out)-1]
}
