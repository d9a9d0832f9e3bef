package orchestrator

import (
	"fmt"

	"github.com/griffnb/core-tsindex/internal/domain"
	"github.com/griffnb/core-tsindex/internal/extension"
	"github.com/griffnb/core-tsindex/internal/names"
)

const enumSuffix = "enum"

// extractInlineEnums promotes the inline enums of m to declarations of their
// own. A property with an explicit enum name is always extracted.
func (s *Service) extractInlineEnums(m *domain.Model) error {
	for _, p := range m.Vars {
		pr := s.store.ForProperty(p)

		enumName := pr.EnumName
		if enumName == "" {
			if !p.IsEnum || s.config.KeepInlineEnums {
				continue
			}
			enumName = inlineEnumName(m, p)
		}

		if err := s.extractEnum(p, pr, enumName); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) extractEnum(p *domain.Property, pr *extension.Record, enumName string) error {
	typeName := names.ParseTypeName(s.toModelName(enumName))
	location := typeName.PackageLocation(s.base)

	enum, ok := s.enums[location]
	if !ok {
		existing, found := s.lookup(typeName.ModelName())
		switch {
		case found && !s.store.Determine(existing).IsExtractedEnum:
			return fmt.Errorf("%w: %s", ErrExtractedEnumCollision, location)
		case found:
			enum = existing
		default:
			enum = s.newEnumModel(typeName, location, enumName, p)
			s.graph.Add(enum)
		}
		s.enums[location] = enum
		s.config.Debug.Printf("Extracted enum %s", location)
	}

	pr.IsExtractedEnum = true
	pr.EnumName = typeName.Name()
	pr.TypeClassName = typeName.Name()
	pr.TypePackageName = typeName.PackagePath(s.base)
	pr.RelativeIndexLocation = names.NewTypeName("", "index").RelativeFileLocation(typeName.Package())
	pr.IsTypeReference = true

	p.IsEnum = false
	p.IsPrimitiveType = false
	p.ComplexType = location
	if p.IsListContainer {
		p.DatatypeWithEnum = "Array<" + typeName.Name() + ">"
	} else {
		p.DatatypeWithEnum = typeName.Name()
	}

	return nil
}

func (s *Service) newEnumModel(typeName names.TypeName, location, raw string, p *domain.Property) *domain.Model {
	definition := extension.NewEnumerationDefinition(location)
	for _, member := range p.AllowableValues {
		definition.Put(member.Name, member.Value)
	}

	enum := &domain.Model{
		Name:            raw,
		ClassName:       typeName.ModelName(),
		ClassFilename:   typeName.RootFileLocation(),
		Description:     p.Description,
		DataType:        p.BaseType,
		IsEnum:          true,
		AllowableValues: append([]domain.EnumVar(nil), p.AllowableValues...),
	}
	if p.IsListContainer && p.Items != nil {
		enum.DataType = p.Items.BaseType
	}

	r := s.store.Determine(enum)
	r.IsExtractedEnum = true
	r.EnumName = typeName.Name()
	r.EnumDefinition = definition

	return enum
}

// inlineEnumName derives the raw identifier of an unnamed inline enum from
// its owner and property, e.g. "Pet_status_enum".
func inlineEnumName(m *domain.Model, p *domain.Property) string {
	return m.Name + "_" + p.BaseName + "_" + enumSuffix
}

// inlineExportName is the name an inline enum is exported under when it is
// kept inside its owner.
func inlineExportName(p *domain.Property) string {
	if p.EnumName != "" {
		return p.EnumName
	}
	return names.ClassName(p.BaseName) + "Enum"
}
