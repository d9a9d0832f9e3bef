// Package loader reads Swagger 2.0 documents into the model graph the
// orchestrator resolves.
package loader

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-tsindex/internal/domain"
	"github.com/griffnb/core-tsindex/internal/names"
	"github.com/griffnb/core-tsindex/internal/schema"
	"sigs.k8s.io/yaml"
)

// Load reads a JSON or YAML document from path.
func (s *Service) Load(path string) (*domain.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	s.debug.Printf("Loading definitions from %s", path)

	return s.LoadBytes(data)
}

// LoadBytes decodes a JSON or YAML document.
func (s *Service) LoadBytes(data []byte) (*domain.Graph, error) {
	var doc spec.Swagger
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	return s.Build(&doc), nil
}

// Build creates one model per definition, ordered by definition name.
func (s *Service) Build(doc *spec.Swagger) *domain.Graph {
	graph := domain.NewGraph(s.modelPackage)
	if doc == nil {
		return graph
	}

	definitions := doc.Definitions
	keys := make([]string, 0, len(definitions))
	for name := range definitions {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	children := subtypes(definitions, keys)
	for _, name := range keys {
		def := definitions[name]
		graph.Add(s.buildModel(name, &def, definitions, children[name]))
	}

	s.debug.Printf("Loaded %d definitions", graph.Len())

	return graph
}

func (s *Service) buildModel(name string, def *spec.Schema, definitions spec.Definitions, children []string) *domain.Model {
	modelName := names.NewModelName(s.prefixes, name)

	m := &domain.Model{
		Name:          name,
		ClassName:     modelName.PackageName(),
		ClassFilename: modelName.FileName(),
		Description:   def.Description,
		IsEnum:        schema.IsEnumSchema(def) && !schema.IsObjectSchema(def),
		Schema:        def,
	}
	m.Extensions = copyExtensions(def.Extensions)

	if m.IsEnum {
		m.DataType = schema.TypeExpression(def, s.simpleName)
		m.AllowableValues = enumVars(def.Enum)
	}

	for _, ref := range schema.RefNames(def.AllOf) {
		if base, ok := definitions[ref]; ok && base.Discriminator != "" {
			m.Parent = s.className(ref)
			break
		}
	}

	if def.Discriminator != "" {
		m.Discriminator = &domain.Discriminator{
			PropertyName: def.Discriminator,
			Mapping:      make(map[string]string, len(children)),
		}
		for _, child := range children {
			m.Discriminator.Mapping[child] = schema.DefinitionsPrefix + child
		}
	}

	// Bases without a discriminator are not parents: their properties and
	// defaults are inherited through the flattened schema.
	expanded := schema.ExpandAllOf(def, definitions, func(base string) bool {
		return definitions[base].Discriminator != ""
	})
	m.Schema = expanded

	for _, item := range schema.FlattenedProperties(expanded) {
		property := item.Schema
		m.Vars = append(m.Vars, s.buildProperty(item.Name, &property))
	}

	return m
}

// subtypes maps every definition to the definitions naming it in allOf.
func subtypes(definitions spec.Definitions, keys []string) map[string][]string {
	out := make(map[string][]string)
	for _, name := range keys {
		def := definitions[name]
		for _, ref := range schema.RefNames(def.AllOf) {
			out[ref] = append(out[ref], name)
		}
	}

	return out
}

func (s *Service) className(definition string) string {
	return names.NewModelName(s.prefixes, definition).PackageName()
}

func (s *Service) simpleName(definition string) string {
	return names.ParseTypeName(s.className(definition)).Name()
}

func copyExtensions(ext spec.Extensions) spec.Extensions {
	if len(ext) == 0 {
		return nil
	}

	out := make(spec.Extensions, len(ext))
	for k, v := range ext {
		out[k] = v
	}

	return out
}
