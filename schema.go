package aas

import "fmt"

// Kind identifies one concrete entity kind registered with a Schema. Kinds
// are dense and start at zero, so kind-indexed tables are plain slices.
type Kind int32

// FieldShape distinguishes how a field owns nested instances.
type FieldShape uint8

const (
	// ShapeObject is a required single nested instance.
	ShapeObject FieldShape = iota
	// ShapeOptional is a single nested instance that may be absent.
	ShapeOptional
	// ShapeList is an ordered sequence of nested instances.
	ShapeList
)

// Field describes one owned, instance-valued field of a kind. Primitive
// fields are not described; they take no part in traversal.
type Field struct {
	// Name is the schema name of the field, used for path segments.
	Name string
	// Shape selects which accessor is consulted.
	Shape FieldShape
	// One returns the nested instance for ShapeObject and ShapeOptional
	// fields. It returns nil when an optional field is absent.
	One func(Instance) Instance
	// Many returns the elements of a ShapeList field in list order.
	Many func(Instance) []Instance
}

// Invariant is a named boolean predicate over an instance's own fields.
type Invariant struct {
	// Description is the human-readable predicate text reported on failure.
	Description string
	// Holds reports whether the instance satisfies the predicate.
	Holds func(Instance) bool
}

// KindSpec declares one concrete kind: its name, its owned fields in
// declaration order, and its invariants in declaration order.
type KindSpec struct {
	Name       string
	Fields     []Field
	Invariants []Invariant
}

// Schema is the registry of all concrete kinds of one object model. Kinds
// are registered at model-layer initialization; after registration a Schema
// is read-only and safe for concurrent use.
type Schema struct {
	kinds  []KindSpec
	byName map[string]Kind
}

// NewSchema returns an empty registry.
func NewSchema() *Schema {
	return &Schema{byName: make(map[string]Kind)}
}

// MustRegister registers a kind and returns its tag. It panics on a duplicate
// or empty name; registration is init-time model-layer code, not input
// handling.
func (s *Schema) MustRegister(spec KindSpec) Kind {
	if spec.Name == "" {
		panic("aas: register kind with empty name")
	}
	if _, exists := s.byName[spec.Name]; exists {
		panic(fmt.Sprintf("aas: kind %q registered twice", spec.Name))
	}
	kind := Kind(len(s.kinds))
	s.kinds = append(s.kinds, spec)
	s.byName[spec.Name] = kind
	return kind
}

// Count returns the number of registered kinds.
func (s *Schema) Count() int {
	return len(s.kinds)
}

// Name returns the registered name of a kind, or an empty string for an
// unknown tag.
func (s *Schema) Name(kind Kind) string {
	if int(kind) < 0 || int(kind) >= len(s.kinds) {
		return ""
	}
	return s.kinds[kind].Name
}

// KindByName looks a kind up by its registered name.
func (s *Schema) KindByName(name string) (Kind, bool) {
	kind, ok := s.byName[name]
	return kind, ok
}

// Fields returns the owned fields of a kind in declaration order. The
// returned slice is shared and must not be modified.
func (s *Schema) Fields(kind Kind) []Field {
	if int(kind) < 0 || int(kind) >= len(s.kinds) {
		return nil
	}
	return s.kinds[kind].Fields
}

// Invariants returns the invariants of a kind in declaration order. The
// returned slice is shared and must not be modified.
func (s *Schema) Invariants(kind Kind) []Invariant {
	if int(kind) < 0 || int(kind) >= len(s.kinds) {
		return nil
	}
	return s.kinds[kind].Invariants
}
