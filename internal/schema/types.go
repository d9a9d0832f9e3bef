// Package schema holds helpers over go-openapi schemas used when resolving
// declarations.
package schema

import (
	"github.com/go-openapi/spec"
)

const (
	// ARRAY represent a array value.
	ARRAY = "array"
	// OBJECT represent a object value.
	OBJECT = "object"
	// BOOLEAN represent a boolean value.
	BOOLEAN = "boolean"
	// INTEGER represent a integer value.
	INTEGER = "integer"
	// NUMBER represent a number value.
	NUMBER = "number"
	// STRING represent a string value.
	STRING = "string"
	// FILE represent a file upload.
	FILE = "file"
)

const (
	// FormatByte is a base64 encoded string.
	FormatByte = "byte"
	// FormatBinary is a raw octet string.
	FormatBinary = "binary"
)

// IsPrimitiveType determines whether the type name is a primitive type.
func IsPrimitiveType(typeName string) bool {
	switch typeName {
	case STRING, NUMBER, INTEGER, BOOLEAN, FILE:
		return true
	}
	return false
}

// TypeOf returns the first declared type of the schema.
func TypeOf(schema *spec.Schema) string {
	if schema == nil || len(schema.Type) == 0 {
		return ""
	}
	return schema.Type[0]
}

// IsObjectSchema reports an inline object schema.
func IsObjectSchema(schema *spec.Schema) bool {
	if schema == nil || IsRefSchema(schema) {
		return false
	}
	if schema.Type.Contains(OBJECT) {
		return true
	}
	return len(schema.Type) == 0 && len(schema.Properties) > 0
}

// IsMapSchema reports an object schema whose values are typed by
// additionalProperties.
func IsMapSchema(schema *spec.Schema) bool {
	return schema != nil &&
		schema.Type.Contains(OBJECT) &&
		len(schema.Properties) == 0 &&
		schema.AdditionalProperties != nil &&
		schema.AdditionalProperties.Schema != nil
}

// IsEnumSchema reports a schema restricted to literal values.
func IsEnumSchema(schema *spec.Schema) bool {
	return schema != nil && len(schema.Enum) > 0 && !IsRefSchema(schema)
}
