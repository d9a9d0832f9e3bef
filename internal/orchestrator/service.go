// Package orchestrator drives the resolution pass over a model graph: naming,
// inheritance, enum extraction, imports and the ordered export index.
package orchestrator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/griffnb/core-tsindex/internal/domain"
	"github.com/griffnb/core-tsindex/internal/extension"
	"github.com/griffnb/core-tsindex/internal/names"
	"github.com/griffnb/core-tsindex/internal/registry"
)

const (
	// ParameterType is imported by every object declaration.
	ParameterType = "Parameter"
	// InterfaceSuffix names the companion interface of an object declaration.
	InterfaceSuffix = "Interface"
)

var (
	// ErrModelNotInIndex is returned when a registered declaration cannot be
	// found again in the index.
	ErrModelNotInIndex = errors.New("model not found in index")
	// ErrExtractedEnumCollision is returned when an extracted enum would take
	// the place of a plain declaration.
	ErrExtractedEnumCollision = errors.New("an extracted enum type collides with a plain type definition")
	// ErrNilGraph is returned by Process without a graph.
	ErrNilGraph = errors.New("no model graph to process")
)

// Debugger is the interface for debug logging.
type Debugger interface {
	Printf(format string, v ...interface{})
}

type noOpDebugger struct{}

func (noOpDebugger) Printf(string, ...interface{}) {}

// Config holds orchestrator configuration options.
type Config struct {
	// ModelPackage is the base package of every declaration. The graph's
	// package is used when empty.
	ModelPackage string

	// Prefixes maps raw schema identifiers to packages.
	Prefixes names.PrefixTable

	// KeepInlineEnums exports unnamed inline enums from their owning
	// declaration instead of extracting them.
	KeepInlineEnums bool

	Debug Debugger
}

// Result is the outcome of one pass.
type Result struct {
	Graph *domain.Graph
	Index *registry.Index
	Store *extension.Store
}

// Service runs the resolution pass.
type Service struct {
	config *Config

	base  string
	graph *domain.Graph
	store *extension.Store
	index *registry.Index
	enums map[string]*domain.Model
}

// New creates a new orchestrator service with the given configuration.
func New(config *Config) *Service {
	if config == nil {
		config = &Config{}
	}
	if config.Debug == nil {
		config.Debug = noOpDebugger{}
	}
	if config.Prefixes == nil {
		config.Prefixes = names.PrefixTable{}
	}

	return &Service{config: config}
}

// Process resolves every model of graph and returns the sorted index. The
// graph is enriched in place: extracted enums are appended to it and every
// model and property carries its record in its extension bag afterwards.
func (s *Service) Process(graph *domain.Graph) (*Result, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}

	s.base = s.config.ModelPackage
	if s.base == "" {
		s.base = graph.ModelPackage
	}
	s.graph = graph
	s.store = extension.NewStore(s.base)
	s.index = registry.NewIndex()
	s.enums = make(map[string]*domain.Model)

	s.config.Debug.Printf("Orchestrator: Processing %d models", graph.Len())

	// Step 1: Compositions, defaults and inline enums
	s.config.Debug.Printf("Orchestrator: Step 1 - Resolving compositions")
	models := append([]*domain.Model(nil), graph.Models()...)
	for _, m := range models {
		if err := s.processComposition(m); err != nil {
			return nil, fmt.Errorf("failed to process %s: %w", m.Name, err)
		}
	}
	s.config.Debug.Printf("Orchestrator: Extracted %d inline enums", len(s.enums))

	// Step 2: Index registration and imports
	s.config.Debug.Printf("Orchestrator: Step 2 - Registering declarations")
	for _, m := range graph.Models() {
		if err := s.register(m); err != nil {
			return nil, fmt.Errorf("failed to register %s: %w", m.Name, err)
		}
	}

	// Step 3: Emission order
	s.config.Debug.Printf("Orchestrator: Step 3 - Sorting %d index entries", s.index.Len())
	if err := s.index.Sort(s.dependencies); err != nil {
		return nil, fmt.Errorf("failed to sort index: %w", err)
	}

	s.store.Export()

	return &Result{
		Graph: graph,
		Index: s.index,
		Store: s.store,
	}, nil
}

func (s *Service) processComposition(m *domain.Model) error {
	r := s.store.ForModel(m)

	s.normalizeDiscriminator(m)
	s.resolveExtends(m, r)
	s.resolveDefaults(m, r)
	if err := s.extractInlineEnums(m); err != nil {
		return err
	}
	s.markAlias(m)

	return nil
}

// dependencies are the names an entry must follow: its parent and the base
// it extends.
func (s *Service) dependencies(entry *registry.Entry) []string {
	r := s.store.ForModel(entry.Model)
	return []string{r.ParentClassName, r.Extends}
}

func (s *Service) modelName(raw string) names.ModelName {
	return names.NewModelName(s.config.Prefixes, raw)
}

// toModelName maps a raw identifier to its dotted class name.
func (s *Service) toModelName(raw string) string {
	return s.modelName(raw).PackageName()
}

// lookup finds a model by class name, with or without the base package.
func (s *Service) lookup(name string) (*domain.Model, bool) {
	if name == "" {
		return nil, false
	}
	if m, ok := s.graph.Lookup(name); ok {
		return m, true
	}
	if s.base != "" && strings.HasPrefix(name, s.base+".") {
		return s.graph.Lookup(strings.TrimPrefix(name, s.base+"."))
	}

	return nil, false
}
