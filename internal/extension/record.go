// Package extension keeps the typed code generation metadata of every model
// and property.
package extension

import (
	"sort"
	"strings"

	"github.com/go-openapi/spec"
)

// ExtensionName is the vendor extension holding a Record in an owner's bag.
const ExtensionName = "x-ts-codegen"

const (
	keyExtends               = "extends"
	keyExtendsPackage        = "extendsPackage"
	keyExtendedBy            = "extendedBy"
	keyTypeInfoInitialized   = "typeInfoInitialized"
	keyTypePackageName       = "typePackageName"
	keyTypeClassName         = "typeClassName"
	keyTypeRootLocation      = "typeRootLocation"
	keyParentPackageName     = "parentPackageName"
	keyParentClassName       = "parentClassName"
	keyEnumName              = "enumName"
	keyEnumDefinition        = "enumDefinition"
	keyIsEnumReference       = "isEnumReference"
	keyIsExtractedEnum       = "isExtractedEnum"
	keyIsEnumType            = "isEnumType"
	keyIsTypeReference       = "isTypeReference"
	keyDefaultValue          = "defaultValue"
	keyImports               = "imports"
	keyRelativeIndexLocation = "relativeIndexLocation"
	keyDescription           = "description"
)

// Record is the resolved metadata of one model or property.
type Record struct {
	Extends        string            `json:"extends,omitempty"`
	ExtendsPackage string            `json:"extendsPackage,omitempty"`
	ExtendedBy     map[string]string `json:"extendedBy,omitempty"`

	TypeInfoInitialized bool   `json:"typeInfoInitialized"`
	TypePackageName     string `json:"typePackageName,omitempty"`
	TypeClassName       string `json:"typeClassName,omitempty"`
	TypeRootLocation    string `json:"typeRootLocation,omitempty"`
	ParentPackageName   string `json:"parentPackageName,omitempty"`
	ParentClassName     string `json:"parentClassName,omitempty"`

	EnumName        string                 `json:"enumName,omitempty"`
	EnumDefinition  *EnumerationDefinition `json:"enumDefinition,omitempty"`
	IsEnumReference bool                   `json:"isEnumReference,omitempty"`
	IsExtractedEnum bool                   `json:"isExtractedEnum,omitempty"`
	IsEnumType      bool                   `json:"isEnumType,omitempty"`
	IsTypeReference bool                   `json:"isTypeReference,omitempty"`

	DefaultValue          string   `json:"defaultValue,omitempty"`
	Imports               []string `json:"imports,omitempty"`
	RelativeIndexLocation string   `json:"relativeIndexLocation,omitempty"`
	Description           string   `json:"description,omitempty"`
}

// SetExtendedBy records that the class value extends this declaration under
// the given key. A repeated key keeps the last value.
func (r *Record) SetExtendedBy(key, value string) {
	if r.ExtendedBy == nil {
		r.ExtendedBy = make(map[string]string)
	}
	r.ExtendedBy[key] = value
}

// ExtendedByNames returns the extending class names ordered by key.
func (r *Record) ExtendedByNames() []string {
	keys := make([]string, 0, len(r.ExtendedBy))
	for key := range r.ExtendedBy {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, r.ExtendedBy[key])
	}

	return out
}

func (r *Record) clone() *Record {
	c := *r
	if r.ExtendedBy != nil {
		c.ExtendedBy = make(map[string]string, len(r.ExtendedBy))
		for k, v := range r.ExtendedBy {
			c.ExtendedBy[k] = v
		}
	}
	if r.Imports != nil {
		c.Imports = append([]string(nil), r.Imports...)
	}
	if r.EnumDefinition != nil {
		c.EnumDefinition = r.EnumDefinition.clone()
	}

	return &c
}

// decodeRecord reads a record from the namespaced entry of an extension bag.
// Values of an unexpected type are treated as absent.
func decodeRecord(bag spec.Extensions) *Record {
	raw, ok := lookup(bag, ExtensionName)
	if !ok {
		return &Record{}
	}

	switch v := raw.(type) {
	case *Record:
		return v.clone()
	case Record:
		return v.clone()
	case map[string]interface{}:
		return decodeValues(v)
	default:
		return &Record{}
	}
}

func decodeValues(values map[string]interface{}) *Record {
	ext := make(spec.Extensions, len(values))
	for k, v := range values {
		ext.Add(k, v)
	}

	r := &Record{}
	r.Extends, _ = ext.GetString(keyExtends)
	r.ExtendsPackage, _ = ext.GetString(keyExtendsPackage)
	r.ExtendedBy = stringMap(ext[strings.ToLower(keyExtendedBy)])
	r.TypeInfoInitialized, _ = ext.GetBool(keyTypeInfoInitialized)
	r.TypePackageName, _ = ext.GetString(keyTypePackageName)
	r.TypeClassName, _ = ext.GetString(keyTypeClassName)
	r.TypeRootLocation, _ = ext.GetString(keyTypeRootLocation)
	r.ParentPackageName, _ = ext.GetString(keyParentPackageName)
	r.ParentClassName, _ = ext.GetString(keyParentClassName)
	r.EnumName, _ = ext.GetString(keyEnumName)
	r.EnumDefinition = decodeEnumeration(ext[strings.ToLower(keyEnumDefinition)])
	r.IsEnumReference, _ = ext.GetBool(keyIsEnumReference)
	r.IsExtractedEnum, _ = ext.GetBool(keyIsExtractedEnum)
	r.IsEnumType, _ = ext.GetBool(keyIsEnumType)
	r.IsTypeReference, _ = ext.GetBool(keyIsTypeReference)
	r.DefaultValue, _ = ext.GetString(keyDefaultValue)
	r.Imports = stringSlice(ext, keyImports)
	r.RelativeIndexLocation, _ = ext.GetString(keyRelativeIndexLocation)
	r.Description, _ = ext.GetString(keyDescription)

	return r
}

func lookup(bag spec.Extensions, key string) (interface{}, bool) {
	if v, ok := bag[key]; ok {
		return v, true
	}
	for k, v := range bag {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}

	return nil, false
}

func stringSlice(ext spec.Extensions, key string) []string {
	if values, ok := ext.GetStringSlice(key); ok {
		return values
	}
	if values, ok := ext[strings.ToLower(key)].([]string); ok {
		return append([]string(nil), values...)
	}

	return nil
}

// stringMap keeps only the string valued entries.
func stringMap(raw interface{}) map[string]string {
	var out map[string]string
	switch values := raw.(type) {
	case map[string]string:
		out = make(map[string]string, len(values))
		for k, v := range values {
			out[k] = v
		}
	case map[string]interface{}:
		for k, v := range values {
			str, ok := v.(string)
			if !ok {
				continue
			}
			if out == nil {
				out = make(map[string]string, len(values))
			}
			out[k] = str
		}
	}

	return out
}
