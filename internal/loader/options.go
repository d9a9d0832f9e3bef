package loader

import (
	"github.com/griffnb/core-tsindex/internal/names"
)

// NewService creates a new loader service with optional configuration
func NewService(options ...Option) *Service {
	s := &Service{
		prefixes: names.PrefixTable{},
		naming:   names.CamelCase,
		debug:    &noOpDebugger{},
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// WithModelPackage sets the base package of the graph
func WithModelPackage(pkg string) Option {
	return func(s *Service) {
		s.modelPackage = pkg
	}
}

// WithPrefixTable sets the rules mapping definition names to packages
func WithPrefixTable(table names.PrefixTable) Option {
	return func(s *Service) {
		if table != nil {
			s.prefixes = table
		}
	}
}

// WithPropertyNaming sets how property names are rendered
func WithPropertyNaming(naming names.PropertyNaming) Option {
	return func(s *Service) {
		if naming != "" {
			s.naming = naming
		}
	}
}

// WithDebugger sets the debugger for logging
func WithDebugger(debugger Debugger) Option {
	return func(s *Service) {
		if debugger != nil {
			s.debug = debugger
		}
	}
}
