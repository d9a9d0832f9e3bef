// Package names derives TypeScript package paths, file locations and class
// names from raw schema identifiers.
package names

import (
	"path"
	"strings"
)

const (
	packageSeparator = "."
	pathSeparator    = "/"
)

// TypeName is a qualified name split into a dotted package path and a simple
// name. The simple name never contains a package separator.
type TypeName struct {
	pack string
	name string
}

// ParseTypeName splits a dotted identifier. The last segment becomes the
// simple name and everything before it the package path.
func ParseTypeName(qualified string) TypeName {
	idx := strings.LastIndex(qualified, packageSeparator)
	if idx < 0 {
		return TypeName{name: qualified}
	}

	return TypeName{
		pack: qualified[:idx],
		name: qualified[idx+1:],
	}
}

// NewTypeName builds a TypeName from an explicit package path and name.
func NewTypeName(pack, name string) TypeName {
	return TypeName{pack: pack, name: name}
}

// Package returns the dotted package path, possibly empty.
func (t TypeName) Package() string {
	return t.pack
}

// Name returns the simple name.
func (t TypeName) Name() string {
	return t.name
}

// ModelName returns the qualified name without a base package.
func (t TypeName) ModelName() string {
	return t.PackageLocation("")
}

// PackagePath joins base and the own package path with a dot when both are
// set, otherwise it returns whichever one is not empty.
func (t TypeName) PackagePath(base string) string {
	switch {
	case base == "":
		return t.pack
	case t.pack == "":
		return base
	default:
		return base + packageSeparator + t.pack
	}
}

// PackageLocation is PackagePath(base) followed by the simple name.
func (t TypeName) PackageLocation(base string) string {
	pkg := t.PackagePath(base)
	if pkg == "" {
		return t.name
	}

	return pkg + packageSeparator + t.name
}

// RootFileLocation is the declaration's file location relative to the output
// root, e.g. "./operation/PdfPassword".
func (t TypeName) RootFileLocation() string {
	if t.pack == "" {
		return "./" + t.name
	}

	return "./" + toPath(t.pack) + pathSeparator + t.name
}

// RelativeFilePath returns the directory of the own package as seen from the
// base package. It is "." when both are equal. Nothing touches the filesystem.
func (t TypeName) RelativeFilePath(base string) string {
	if t.pack == base {
		return "."
	}

	rel := relativize(splitPath(base), splitPath(t.pack))
	if rel == "" {
		return "."
	}
	if strings.HasPrefix(rel, "..") {
		return rel
	}

	return "./" + rel
}

// RelativeFileLocation is RelativeFilePath(base) followed by the simple name.
func (t TypeName) RelativeFileLocation(base string) string {
	return t.RelativeFilePath(base) + pathSeparator + t.name
}

// String returns the dotted qualified name.
func (t TypeName) String() string {
	return t.ModelName()
}

func toPath(pack string) string {
	return strings.ReplaceAll(pack, packageSeparator, pathSeparator)
}

func splitPath(pack string) []string {
	if pack == "" {
		return nil
	}

	return strings.Split(pack, packageSeparator)
}

// relativize walks up from base to the common ancestor and then down to
// target.
func relativize(base, target []string) string {
	common := 0
	for common < len(base) && common < len(target) && base[common] == target[common] {
		common++
	}

	segments := make([]string, 0, len(base)-common+len(target)-common)
	for range base[common:] {
		segments = append(segments, "..")
	}
	segments = append(segments, target[common:]...)

	return path.Join(segments...)
}
