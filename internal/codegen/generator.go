package codegen

import (
	"strings"

	"github.com/dcw/beanmaker/internal/schema"
)

// Generator is the interface that target-language class generators implement
type Generator interface {
	// Generate renders the complete source text for the field table
	Generate(fields *schema.FieldTable) string

	// Language returns the name of the target language (e.g., "java")
	Language() string

	// FileExtension returns the file extension for generated files (e.g., ".java")
	FileExtension() string
}

// Options controls what a generator emits
type Options struct {
	// TargetTypeName is the possibly dotted, fully qualified name of the type
	TargetTypeName string

	// EmitAccessors generates a getter per field
	EmitAccessors bool

	// EmitMutators generates a setter per field and makes members mutable
	EmitMutators bool

	// EmitDocumentation generates documentation comments
	EmitDocumentation bool

	// Author is the identity written into the type documentation
	Author string
}

// TypeName returns the bare type name, the part after the last dot
func (o Options) TypeName() string {
	_, name := SplitTypeName(o.TargetTypeName)
	return name
}

// Namespace returns the enclosing namespace, or "" when the name has no dot
func (o Options) Namespace() string {
	ns, _ := SplitTypeName(o.TargetTypeName)
	return ns
}

// SplitTypeName splits a fully qualified name at its last dot
func SplitTypeName(fqName string) (namespace, name string) {
	i := strings.LastIndex(fqName, ".")
	if i < 0 {
		return "", fqName
	}
	return fqName[:i], fqName[i+1:]
}
