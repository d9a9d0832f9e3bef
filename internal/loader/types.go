package loader

import (
	"github.com/griffnb/core-tsindex/internal/names"
)

// Service turns a Swagger 2.0 document into the model graph.
type Service struct {
	modelPackage string
	prefixes     names.PrefixTable
	naming       names.PropertyNaming
	debug        Debugger
}

// Debugger interface for logging
type Debugger interface {
	Printf(format string, v ...interface{})
}

// Option is a functional option for configuring Service
type Option func(*Service)

// noOpDebugger is a no-op debugger
type noOpDebugger struct{}

func (n *noOpDebugger) Printf(format string, v ...interface{}) {}
