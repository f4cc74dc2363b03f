package schema

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// StdinPath is the fields-file path that selects standard input
const StdinPath = "-"

// commentMarker starts a comment that runs to the end of the line
const commentMarker = "#"

// initialLineBuffer is the scanner's starting buffer; lines may grow past it
const initialLineBuffer = 64 * 1024

// Load builds a field table from schema lines. Lines with fewer than two
// tokens after comment stripping are skipped; Load never fails.
func Load(lines []string) *FieldTable {
	table := NewFieldTable()
	for _, line := range lines {
		if field, ok := ParseLine(line); ok {
			table.Put(field)
		}
	}
	return table
}

// ParseLine parses a single `name type [identifier] [# comment]` line.
// It reports false when the line does not declare a field.
func ParseLine(line string) (FieldSpec, bool) {
	line, _, _ = strings.Cut(line, commentMarker)

	tokens := strings.Fields(line)
	switch {
	case len(tokens) < 2:
		return FieldSpec{}, false
	case len(tokens) == 2:
		return FieldSpec{DeclaredName: tokens[0], TypeName: tokens[1]}, true
	default:
		// Tokens past the third are ignored
		return FieldSpec{
			DeclaredName:        tokens[0],
			TypeName:            tokens[1],
			PreferredIdentifier: tokens[2],
		}, true
	}
}

// Parse reads schema lines from r and loads them into a field table
func Parse(r io.Reader) (*FieldTable, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fields: %w", err)
	}

	return Load(lines), nil
}

// LoadFile loads a field table from the file at path, or from stdin when
// path is StdinPath.
func LoadFile(path string) (*FieldTable, error) {
	if path == "" {
		return nil, ErrFieldsFileRequired
	}

	if path == StdinPath {
		return Parse(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fields file %s: %w", path, err)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
