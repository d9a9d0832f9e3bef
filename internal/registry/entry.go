package registry

import (
	"strings"

	"github.com/griffnb/core-tsindex/internal/domain"
)

// Entry is one declaration of the aggregating module: where it lives and the
// names it exports.
type Entry struct {
	FileLocation    string
	PackageLocation string
	Model           *domain.Model

	exported []string
}

// NewEntry creates an entry exporting names in the given order.
func NewEntry(fileLocation, packageLocation string, model *domain.Model, names ...string) *Entry {
	e := &Entry{
		FileLocation:    fileLocation,
		PackageLocation: packageLocation,
		Model:           model,
	}
	for _, name := range names {
		e.AddExportedName(name)
	}

	return e
}

// AddExportedName appends name unless it is already exported.
func (e *Entry) AddExportedName(name string) *Entry {
	for _, existing := range e.exported {
		if existing == name {
			return e
		}
	}
	e.exported = append(e.exported, name)

	return e
}

// ExportedNames returns the exported names in order.
func (e *Entry) ExportedNames() []string {
	return append([]string(nil), e.exported...)
}

// ExportedNameList returns the exported names as written in an export clause.
func (e *Entry) ExportedNameList() string {
	return strings.Join(e.exported, ", ")
}
