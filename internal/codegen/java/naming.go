package java

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// booleanType is the field type that switches getters to the "is" prefix
const booleanType = "boolean"

// upperFirst converts a lowerCamel identifier to UpperCamel by upper-casing
// its first character only.
func upperFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return ""
	}
	if r == utf8.RuneError && size == 1 {
		// Not valid UTF-8; leave the bytes as they are
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// AccessorName returns the getter name for a member of the given type
func AccessorName(typeName, ident string) string {
	if !strings.EqualFold(typeName, booleanType) {
		return "get" + upperFirst(ident)
	}
	if strings.HasPrefix(ident, "is") {
		return ident
	}
	return "is" + upperFirst(ident)
}

// MutatorName returns the setter name for a member
func MutatorName(ident string) string {
	return "set" + upperFirst(ident)
}
