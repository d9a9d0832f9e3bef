package loader

import (
	"strings"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-tsindex/internal/domain"
	"github.com/griffnb/core-tsindex/internal/names"
	"github.com/griffnb/core-tsindex/internal/schema"
	"github.com/iancoleman/strcase"
)

func (s *Service) buildProperty(name string, ps *spec.Schema) *domain.Property {
	p := &domain.Property{
		Name:         s.naming.Apply(name),
		BaseName:     name,
		Description:  ps.Description,
		DefaultValue: schema.Literal(ps.Default),
	}
	p.Extensions = copyExtensions(ps.Extensions)

	switch {
	case schema.IsRefSchema(ps):
		className := s.className(schema.RefName(ps.Ref.String()))
		p.BaseType = className
		p.ComplexType = className
		p.DataType = names.ParseTypeName(className).Name()
	case schema.TypeOf(ps) == schema.ARRAY:
		items := &spec.Schema{}
		if ps.Items != nil && ps.Items.Schema != nil {
			items = ps.Items.Schema
		}
		p.IsListContainer = true
		p.BaseType = schema.ARRAY
		p.Items = s.buildProperty(name, items)
		p.ComplexType = p.Items.ComplexType
		p.DataType = "Array<" + p.Items.DataType + ">"
		if p.Items.IsEnum {
			p.IsEnum = true
			p.AllowableValues = p.Items.AllowableValues
		}
	case schema.IsMapSchema(ps):
		p.IsMapContainer = true
		p.BaseType = schema.OBJECT
		p.Items = s.buildProperty(name, ps.AdditionalProperties.Schema)
		p.DataType = "{ [key: string]: " + p.Items.DataType + "; }"
	default:
		p.BaseType = schema.TypeOf(ps)
		if p.BaseType == "" && schema.IsObjectSchema(ps) {
			p.BaseType = schema.OBJECT
		}
		p.DataType = schema.TypeExpression(ps, s.simpleName)
		p.IsPrimitiveType = schema.IsPrimitiveType(p.BaseType)
		p.IsByteArray = p.BaseType == schema.STRING && ps.Format == schema.FormatByte
		if schema.IsEnumSchema(ps) {
			p.IsEnum = true
			p.AllowableValues = enumVars(ps.Enum)
		}
	}
	p.DatatypeWithEnum = p.DataType

	return p
}

// enumVars names every enum value and renders its literal.
func enumVars(values []interface{}) []domain.EnumVar {
	out := make([]domain.EnumVar, 0, len(values))
	for _, value := range values {
		if str, ok := value.(string); ok {
			out = append(out, domain.EnumVar{
				Name:  enumVarName(str),
				Value: "'" + strings.ReplaceAll(str, "'", `\'`) + "'",
			})
			continue
		}

		literal := schema.Literal(value)
		out = append(out, domain.EnumVar{
			Name:  numberVarName(literal),
			Value: literal,
		})
	}

	return out
}

func enumVarName(value string) string {
	name := strcase.ToCamel(value)
	switch {
	case name == "":
		return "Empty"
	case name[0] >= '0' && name[0] <= '9':
		return "_" + name
	default:
		return name
	}
}

func numberVarName(literal string) string {
	name := strings.ReplaceAll(literal, "-", "MINUS_")
	name = strings.ReplaceAll(name, ".", "_DOT_")
	return "NUMBER_" + name
}
