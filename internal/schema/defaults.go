package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	// EmptyArrayLiteral initializes list properties without a default.
	EmptyArrayLiteral = "[]"
	// EmptyObjectLiteral initializes map properties without a default.
	EmptyObjectLiteral = "{}"
	// EmptyStringLiteral replaces every default of a byte array property.
	EmptyStringLiteral = `""`
)

// Literal renders a default value as a TypeScript literal. Strings are
// quoted, everything else is written as JSON.
func Literal(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strconv.Quote(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

// PropertyLiteral renders the default of a property. Byte array properties
// always start out empty.
func PropertyLiteral(value interface{}, byteArray bool) string {
	if byteArray {
		return EmptyStringLiteral
	}
	return Literal(value)
}
