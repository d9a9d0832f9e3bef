package names

import (
	"errors"
	"fmt"

	"github.com/iancoleman/strcase"
)

// PropertyNaming selects how schema property names are rendered.
type PropertyNaming string

// Supported property naming conventions.
const (
	OriginalNaming PropertyNaming = "original"
	CamelCase      PropertyNaming = "camelCase"
	PascalCase     PropertyNaming = "PascalCase"
	SnakeCase      PropertyNaming = "snake_case"
)

// ErrInvalidPropertyNaming is returned for an unknown naming convention.
var ErrInvalidPropertyNaming = errors.New("invalid property naming")

// ParsePropertyNaming validates a naming convention option. An empty value
// selects CamelCase.
func ParsePropertyNaming(value string) (PropertyNaming, error) {
	switch naming := PropertyNaming(value); naming {
	case "":
		return CamelCase, nil
	case OriginalNaming, CamelCase, PascalCase, SnakeCase:
		return naming, nil
	default:
		return "", fmt.Errorf("%w: %q, expected one of %s, %s, %s, %s",
			ErrInvalidPropertyNaming, value, OriginalNaming, CamelCase, PascalCase, SnakeCase)
	}
}

// Apply renders a property name in this convention.
func (n PropertyNaming) Apply(name string) string {
	switch n {
	case OriginalNaming:
		return name
	case PascalCase:
		return strcase.ToCamel(name)
	case SnakeCase:
		return strcase.ToSnake(name)
	default:
		return strcase.ToLowerCamel(name)
	}
}
