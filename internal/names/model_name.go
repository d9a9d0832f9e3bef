package names

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const segmentSeparator = "_"

// ModelName is the identity of a declaration derived from a raw schema
// identifier: its class name and, when a prefix rule matched, the package and
// file location it is emitted to.
type ModelName struct {
	className   string
	packageName string
	fileName    string
}

// NewModelName resolves raw against the prefix table.
func NewModelName(table PrefixTable, raw string) ModelName {
	residual := raw

	var m ModelName
	if rule, ok := table.Match(raw); ok {
		stripped := strings.TrimPrefix(raw, rule.Prefix)
		if !rule.Preserves(raw, stripped) {
			residual = stripped
		}
		m.fileName = rule.Location
		m.packageName = rule.PackageName()
	}

	m.className = ClassName(residual)

	return m
}

// ClassName capitalizes every underscore separated segment and joins them.
func ClassName(raw string) string {
	var b strings.Builder
	for _, segment := range strings.Split(raw, segmentSeparator) {
		b.WriteString(capitalize(segment))
	}

	return b.String()
}

// ClassName returns the bare class name.
func (m ModelName) ClassName() string {
	return m.className
}

// PackageName is the dotted package of the matched rule followed by the class
// name, or the bare class name without a rule.
func (m ModelName) PackageName() string {
	return m.packageName + m.className
}

// FileName is the location of the matched rule followed by the class name, or
// the bare class name without a rule.
func (m ModelName) FileName() string {
	return m.fileName + m.className
}

func capitalize(segment string) string {
	if segment == "" {
		return ""
	}

	_, size := utf8.DecodeRuneInString(segment)

	return cases.Upper(language.Und).String(segment[:size]) + segment[size:]
}
