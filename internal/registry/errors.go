package registry

import (
	"fmt"
	"strings"
)

// CollisionError reports an exported name registered at two package
// locations.
type CollisionError struct {
	Name     string
	Existing string
	Location string
}

// Error returns the error string.
func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s and %s collide for name %s", e.Existing, e.Location, e.Name)
}

// CycleError reports an inheritance cycle. Path starts and ends at the same
// exported name.
type CycleError struct {
	Path []string
}

// Error returns the error string.
func (e *CycleError) Error() string {
	return "inheritance cycle detected: " + strings.Join(e.Path, " -> ")
}
