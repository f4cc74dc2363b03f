// Package java renders a field table as a Jackson-annotated Java class.
//
// The output is an immutable data carrier by default: every member is final
// and bound through a @JsonProperty-annotated constructor. Getters, setters
// and Javadoc are optional. Rendering is a pure function of the field table
// and options.
package java

import (
	"fmt"

	"github.com/dcw/beanmaker/internal/codegen"
	"github.com/dcw/beanmaker/internal/codegen/writer"
	"github.com/dcw/beanmaker/internal/schema"
)

const (
	indent = "    "

	// parameterSeparator follows every constructor parameter and is trimmed
	// from the last one.
	parameterSeparator = ","
)

var imports = []string{
	"com.fasterxml.jackson.annotation.JsonInclude",
	"com.fasterxml.jackson.annotation.JsonProperty",
}

var _ codegen.Generator = (*Generator)(nil)

// Generator generates a Java class from a field table
type Generator struct {
	opts codegen.Options
}

// NewGenerator creates a new Java class generator
func NewGenerator(opts codegen.Options) *Generator {
	return &Generator{opts: opts}
}

// Emit renders fields with opts in a single call
func Emit(fields *schema.FieldTable, opts codegen.Options) string {
	return NewGenerator(opts).Generate(fields)
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "java"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".java"
}

// Generate renders the complete class source text
func (g *Generator) Generate(fields *schema.FieldTable) string {
	w := writer.NewWriter(indent)
	specs := fields.Fields()
	className := g.opts.TypeName()

	g.writePackage(w)
	g.writeImports(w)
	g.writeClassDeclaration(w, className)

	w.Indent()
	g.writeFields(w, specs)
	g.writeConstructor(w, className, specs)
	if g.opts.EmitAccessors {
		g.writeGetters(w, specs)
	}
	if g.opts.EmitMutators {
		g.writeSetters(w, specs)
	}
	w.Dedent()

	g.closeClassDeclaration(w)

	return w.String()
}

func (g *Generator) writePackage(w *writer.Writer) {
	ns := g.opts.Namespace()
	if ns == "" {
		return
	}
	w.WriteLinef("package %s;", ns)
	w.Newline()
}

func (g *Generator) writeImports(w *writer.Writer) {
	for _, imp := range imports {
		w.WriteLinef("import %s;", imp)
	}
	w.Newline()
}

func (g *Generator) writeClassDeclaration(w *writer.Writer, className string) {
	if g.opts.EmitDocumentation {
		w.WriteDocComment(
			fmt.Sprintf("Description of %s JavaBean.", className),
			"",
			fmt.Sprintf("@author %s", g.opts.Author),
		)
	}
	w.WriteLine("@JsonInclude(JsonInclude.Include.ALWAYS)")
	w.WriteLinef("public class %s {", className)
	w.Newline()
}

func (g *Generator) writeFields(w *writer.Writer, specs []schema.FieldSpec) {
	modifier := "final "
	if g.opts.EmitMutators {
		modifier = ""
	}
	for _, f := range specs {
		w.WriteLinef(`@JsonProperty("%s")`, f.DeclaredName)
		w.WriteLinef("private %s%s %s;", modifier, f.TypeName, f.EffectiveIdentifier())
	}
	w.Newline()
}

func (g *Generator) writeConstructor(w *writer.Writer, className string, specs []schema.FieldSpec) {
	if g.opts.EmitDocumentation {
		doc := []string{"Constructor.", ""}
		for _, f := range specs {
			doc = append(doc, fmt.Sprintf("@param %s The <code>%s</code> property.", f.EffectiveIdentifier(), f.DeclaredName))
		}
		w.WriteDocComment(doc...)
	}

	w.WriteLinef("public %s(", className)
	w.Indent()
	for _, f := range specs {
		w.WriteLinef(`@JsonProperty("%s")`, f.DeclaredName)
		w.WriteLinef("final %s %s%s", f.TypeName, f.EffectiveIdentifier(), parameterSeparator)
	}
	w.TrimTrailingSeparator(parameterSeparator)
	w.Dedent()

	w.WriteBlock(") {", "}", func() {
		for _, f := range specs {
			ident := f.EffectiveIdentifier()
			w.WriteLinef("this.%s = %s;", ident, ident)
		}
	})
	w.Newline()
}

func (g *Generator) writeGetters(w *writer.Writer, specs []schema.FieldSpec) {
	for _, f := range specs {
		ident := f.EffectiveIdentifier()
		if g.opts.EmitDocumentation {
			w.WriteDocComment(fmt.Sprintf("Returns the <code>%s</code> property value from the {@link #%s} field.", f.DeclaredName, ident))
		}
		opener := fmt.Sprintf("public %s %s() {", f.TypeName, AccessorName(f.TypeName, ident))
		w.WriteBlock(opener, "}", func() {
			w.WriteLinef("return %s;", ident)
		})
		w.Newline()
	}
}

func (g *Generator) writeSetters(w *writer.Writer, specs []schema.FieldSpec) {
	for _, f := range specs {
		ident := f.EffectiveIdentifier()
		if g.opts.EmitDocumentation {
			w.WriteDocComment(
				fmt.Sprintf("Sets the <code>%s</code> property value to <code>%s</code>.", f.DeclaredName, ident),
				"",
				fmt.Sprintf("@param %s The new value for the <code>%s</code> property.", ident, f.DeclaredName),
			)
		}
		opener := fmt.Sprintf("public void %s(final %s %s) {", MutatorName(ident), f.TypeName, ident)
		w.WriteBlock(opener, "}", func() {
			w.WriteLinef("this.%s = %s;", ident, ident)
		})
		w.Newline()
	}
}

func (g *Generator) closeClassDeclaration(w *writer.Writer) {
	w.TrimTrailingBlankLine()
	w.WriteLine("}")
}
