package writer

import (
	"bytes"
	"fmt"
	"strings"
)

// Writer provides utilities for generating formatted code with proper indentation
type Writer struct {
	buf          bytes.Buffer
	indentLevel  int
	indentString string
	linePrefix   string
	needsIndent  bool
}

// NewWriter creates a new code writer with specified indentation string
func NewWriter(indentString string) *Writer {
	return &Writer{
		indentString: indentString,
		needsIndent:  true,
	}
}

// Indent increases the indentation level
func (w *Writer) Indent() {
	w.indentLevel++
	w.updatePrefix()
}

// Dedent decreases the indentation level
func (w *Writer) Dedent() {
	if w.indentLevel > 0 {
		w.indentLevel--
		w.updatePrefix()
	}
}

// Write writes a string without adding a newline
func (w *Writer) Write(s string) {
	if w.needsIndent && s != "" {
		w.buf.WriteString(w.linePrefix)
		w.needsIndent = false
	}
	w.buf.WriteString(s)
}

// Writef writes a formatted string without adding a newline
func (w *Writer) Writef(format string, args ...any) {
	w.Write(fmt.Sprintf(format, args...))
}

// WriteLine writes a string and adds a newline
func (w *Writer) WriteLine(s string) {
	w.Write(s)
	w.Newline()
}

// WriteLinef writes a formatted string and adds a newline
func (w *Writer) WriteLinef(format string, args ...any) {
	w.Writef(format, args...)
	w.Newline()
}

// Newline adds a newline character. After a complete line this yields an
// empty separator line.
func (w *Writer) Newline() {
	w.buf.WriteByte('\n')
	w.needsIndent = true
}

// EndsWithBlankLine reports whether the last line written is empty
func (w *Writer) EndsWithBlankLine() bool {
	return bytes.HasSuffix(w.buf.Bytes(), []byte("\n\n"))
}

// TrimTrailingBlankLine removes one trailing empty line, if present
func (w *Writer) TrimTrailingBlankLine() bool {
	if !w.EndsWithBlankLine() {
		return false
	}
	w.buf.Truncate(w.buf.Len() - 1)
	w.needsIndent = true
	return true
}

// TrimTrailingSeparator removes sep from the end of the last complete line,
// keeping its newline. It reports whether anything was removed.
func (w *Writer) TrimTrailingSeparator(sep string) bool {
	suffix := sep + "\n"
	if sep == "" || !bytes.HasSuffix(w.buf.Bytes(), []byte(suffix)) {
		return false
	}
	w.buf.Truncate(w.buf.Len() - len(suffix))
	w.buf.WriteByte('\n')
	w.needsIndent = true
	return true
}

// String returns the generated code as a string
func (w *Writer) String() string {
	return w.buf.String()
}

// updatePrefix updates the line prefix based on current indentation
func (w *Writer) updatePrefix() {
	w.linePrefix = strings.Repeat(w.indentString, w.indentLevel)
}

// WriteBlock writes content inside a block with proper indentation
// Example: WriteBlock("public int getId() {", "}", func() { w.WriteLine("return id;") })
func (w *Writer) WriteBlock(opener, closer string, content func()) {
	w.WriteLine(opener)
	w.Indent()
	content()
	w.Dedent()
	w.WriteLine(closer)
}

// WriteDocComment writes a /** ... */ documentation block at the current
// indentation. Empty lines become a bare " *".
func (w *Writer) WriteDocComment(lines ...string) {
	if len(lines) == 0 {
		return
	}
	w.WriteLine("/**")
	for _, line := range lines {
		if line == "" {
			w.WriteLine(" *")
			continue
		}
		w.WriteLinef(" * %s", line)
	}
	w.WriteLine(" */")
}
