package extension

import (
	"github.com/go-openapi/spec"
	"github.com/griffnb/core-tsindex/internal/domain"
	"github.com/griffnb/core-tsindex/internal/names"
)

// Owner is anything carrying a vendor extension bag.
type Owner interface {
	VendorExtensions() spec.Extensions
	AddExtension(key string, value interface{})
}

// indexName is the simple name of the aggregating module file.
const indexName = "index"

// Store holds one Record per owner, keyed by owner identity.
type Store struct {
	modelPackage string
	records      map[Owner]*Record
}

// NewStore creates a store resolving package paths against modelPackage.
func NewStore(modelPackage string) *Store {
	return &Store{
		modelPackage: modelPackage,
		records:      make(map[Owner]*Record),
	}
}

// ModelPackage returns the base package of the store.
func (s *Store) ModelPackage() string {
	return s.modelPackage
}

// Determine returns the record of owner, creating it from the owner's
// extension bag on first use.
func (s *Store) Determine(owner Owner) *Record {
	if r, ok := s.records[owner]; ok {
		return r
	}

	r := decodeRecord(owner.VendorExtensions())
	s.records[owner] = r

	return r
}

// Get returns the record of owner without creating one.
func (s *Store) Get(owner Owner) (*Record, bool) {
	r, ok := s.records[owner]
	return r, ok
}

// ForModel returns the record of m with its naming resolved. Naming is only
// computed once; later calls return the record unchanged.
func (s *Store) ForModel(m *domain.Model) *Record {
	r := s.Determine(m)
	if r.TypeInfoInitialized {
		return r
	}

	typeName := names.ParseTypeName(m.ClassName)
	r.TypeInfoInitialized = true
	r.TypePackageName = typeName.PackagePath(s.modelPackage)
	r.TypeClassName = typeName.Name()
	r.RelativeIndexLocation = indexLocation(typeName)

	if m.Parent != "" {
		parent := names.ParseTypeName(m.Parent)
		r.ParentPackageName = parent.PackagePath(s.modelPackage)
		r.ParentClassName = parent.Name()
	}

	return r
}

// ForProperty returns the record of p with the naming of its referenced type
// resolved. Map containers resolve the type of their values.
func (s *Store) ForProperty(p *domain.Property) *Record {
	r := s.Determine(p)
	if r.TypeInfoInitialized {
		return r
	}

	actual := p
	if p.IsMapContainer && p.Items != nil {
		actual = p.Items
	}

	if !actual.IsEnum && actual.ComplexType != "" {
		typeName := names.ParseTypeName(actual.ComplexType)
		r.TypePackageName = typeName.PackagePath(s.modelPackage)
		r.TypeClassName = typeName.Name()
		r.RelativeIndexLocation = indexLocation(typeName)
		r.IsTypeReference = true
	}
	r.TypeInfoInitialized = true

	return r
}

// Export writes every record into its owner's extension bag.
func (s *Store) Export() {
	for owner, r := range s.records {
		owner.AddExtension(ExtensionName, r)
	}
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// indexLocation is the import path of the aggregating module as seen from the
// package of typeName.
func indexLocation(typeName names.TypeName) string {
	return names.NewTypeName("", indexName).RelativeFileLocation(typeName.Package())
}
