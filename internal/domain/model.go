package domain

import "github.com/go-openapi/spec"

// Model is one schema declaration of the host graph.
type Model struct {
	spec.VendorExtensible

	// Name is the raw schema identifier.
	Name string
	// ClassName is the dotted qualified class name, e.g. "operation.PdfPassword".
	ClassName string
	// ClassFilename is the file the declaration is emitted to.
	ClassFilename string
	// Parent is the class name of the declared parent, if any.
	Parent string

	Description string
	DataType    string

	IsEnum  bool
	IsAlias bool

	Discriminator *Discriminator
	Vars          []*Property

	// Imports lists type names an alias declaration refers to.
	Imports []string

	// AllowableValues holds the members of an enum declaration.
	AllowableValues []EnumVar

	Schema *spec.Schema
}

// VendorExtensions returns the generic extension bag.
func (m *Model) VendorExtensions() spec.Extensions {
	return m.Extensions
}

// AddImport records a referenced type name once.
func (m *Model) AddImport(name string) {
	for _, existing := range m.Imports {
		if existing == name {
			return
		}
	}
	m.Imports = append(m.Imports, name)
}

// Var returns the property with the given schema name.
func (m *Model) Var(baseName string) (*Property, bool) {
	for _, property := range m.Vars {
		if property.BaseName == baseName {
			return property, true
		}
	}

	return nil, false
}

// Discriminator selects a concrete subtype by the value of PropertyName.
type Discriminator struct {
	PropertyName string `json:"propertyName"`
	// Mapping maps tag values to schema references or type names.
	Mapping map[string]string `json:"mapping,omitempty"`
}

// Property is one field of a Model.
type Property struct {
	spec.VendorExtensible

	// Name is the rendered property name, BaseName the one from the schema.
	Name     string
	BaseName string

	BaseType         string
	ComplexType      string
	DataType         string
	DatatypeWithEnum string
	EnumName         string
	DefaultValue     string
	Description      string

	IsEnum          bool
	IsListContainer bool
	IsMapContainer  bool
	IsByteArray     bool
	IsPrimitiveType bool

	// Items is the element of a list or the value of a map container.
	Items *Property

	AllowableValues []EnumVar
}

// VendorExtensions returns the generic extension bag.
func (p *Property) VendorExtensions() spec.Extensions {
	return p.Extensions
}

// EnumVar is one member of an enumeration: its symbol and literal.
type EnumVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
