package schema

import "sort"

// FieldSpec is one field declaration from a fields file
type FieldSpec struct {
	// DeclaredName is the serialized (JSON) property name and the table key
	DeclaredName string `json:"declaredName"`

	// TypeName is the field's type, passed through verbatim
	TypeName string `json:"typeName"`

	// PreferredIdentifier, when non-empty, replaces DeclaredName as the member name
	PreferredIdentifier string `json:"preferredIdentifier,omitempty"`
}

// EffectiveIdentifier returns the in-code member name for the field
func (f FieldSpec) EffectiveIdentifier() string {
	if f.PreferredIdentifier != "" {
		return f.PreferredIdentifier
	}
	return f.DeclaredName
}

// FieldTable maps declared names to field specs. Iteration is always in
// ascending order of declared name, regardless of insertion order.
type FieldTable struct {
	fields map[string]FieldSpec
}

// NewFieldTable creates an empty field table
func NewFieldTable() *FieldTable {
	return &FieldTable{fields: make(map[string]FieldSpec)}
}

// Put stores a field, replacing any earlier field with the same declared name
func (t *FieldTable) Put(f FieldSpec) {
	if t.fields == nil {
		t.fields = make(map[string]FieldSpec)
	}
	t.fields[f.DeclaredName] = f
}

// Get returns the field stored under name
func (t *FieldTable) Get(name string) (FieldSpec, bool) {
	f, ok := t.fields[name]
	return f, ok
}

// Len returns the number of unique fields
func (t *FieldTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.fields)
}

// Names returns the declared names in ascending order
func (t *FieldTable) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.fields))
	for name := range t.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fields returns the fields in ascending order of declared name
func (t *FieldTable) Fields() []FieldSpec {
	names := t.Names()
	fields := make([]FieldSpec, 0, len(names))
	for _, name := range names {
		fields = append(fields, t.fields[name])
	}
	return fields
}
