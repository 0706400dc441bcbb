// Package dispatch provides kind-indexed handler tables for applying
// external operations to instances without branching on concrete kinds.
//
// All four operation shapes — visit, visit with context, transform, and
// transform with context — share the same table mechanism: one handler slot
// per registered kind, a slice index by the instance's kind tag, and an
// indirect call. Handlers are registered at startup; a table is safe for
// concurrent dispatch once registration is finished.
package dispatch

import "github.com/jacoelho/aas"

// table is the shared per-kind handler registry underlying every dispatch
// shape.
type table[H any] struct {
	handlers []H
	present  []bool
}

func newTable[H any](schema *aas.Schema) table[H] {
	return table[H]{
		handlers: make([]H, schema.Count()),
		present:  make([]bool, schema.Count()),
	}
}

func (t *table[H]) set(kind aas.Kind, handler H) {
	t.handlers[kind] = handler
	t.present[kind] = true
}

func (t *table[H]) get(kind aas.Kind) (H, bool) {
	if int(kind) < 0 || int(kind) >= len(t.handlers) || !t.present[kind] {
		var zero H
		return zero, false
	}
	return t.handlers[kind], true
}

// Visitor dispatches instances to per-kind handlers with no context and no
// result. Kinds without a handler are a no-op.
type Visitor struct {
	table[func(aas.Instance)]
}

// NewVisitor builds an empty visitor sized for the schema's kinds.
func NewVisitor(schema *aas.Schema) *Visitor {
	return &Visitor{table: newTable[func(aas.Instance)](schema)}
}

// On registers the handler for one kind and returns the visitor for
// chaining.
func (v *Visitor) On(kind aas.Kind, handler func(aas.Instance)) *Visitor {
	v.set(kind, handler)
	return v
}

// Visit invokes the handler registered for the instance's kind.
func (v *Visitor) Visit(instance aas.Instance) {
	if handler, ok := v.get(instance.Kind()); ok {
		handler(instance)
	}
}

// ContextVisitor dispatches instances to per-kind handlers threading a
// context value. Kinds without a handler are a no-op.
type ContextVisitor[C any] struct {
	table[func(aas.Instance, C)]
}

// NewContextVisitor builds an empty context visitor sized for the schema's
// kinds.
func NewContextVisitor[C any](schema *aas.Schema) *ContextVisitor[C] {
	return &ContextVisitor[C]{table: newTable[func(aas.Instance, C)](schema)}
}

// On registers the handler for one kind and returns the visitor for
// chaining.
func (v *ContextVisitor[C]) On(kind aas.Kind, handler func(aas.Instance, C)) *ContextVisitor[C] {
	v.set(kind, handler)
	return v
}

// Visit invokes the handler registered for the instance's kind.
func (v *ContextVisitor[C]) Visit(instance aas.Instance, context C) {
	if handler, ok := v.get(instance.Kind()); ok {
		handler(instance, context)
	}
}

// Transformer dispatches instances to per-kind handlers producing a result.
// Kinds without a handler produce the default result.
type Transformer[T any] struct {
	table[func(aas.Instance) T]
	fallback func(aas.Instance) T
}

// NewTransformer builds an empty transformer sized for the schema's kinds.
// The fallback produces the result for kinds without a registered handler; a
// nil fallback means the zero value.
func NewTransformer[T any](schema *aas.Schema, fallback func(aas.Instance) T) *Transformer[T] {
	return &Transformer[T]{
		table:    newTable[func(aas.Instance) T](schema),
		fallback: fallback,
	}
}

// On registers the handler for one kind and returns the transformer for
// chaining.
func (t *Transformer[T]) On(kind aas.Kind, handler func(aas.Instance) T) *Transformer[T] {
	t.set(kind, handler)
	return t
}

// Transform invokes the handler registered for the instance's kind.
func (t *Transformer[T]) Transform(instance aas.Instance) T {
	if handler, ok := t.get(instance.Kind()); ok {
		return handler(instance)
	}
	if t.fallback != nil {
		return t.fallback(instance)
	}
	var zero T
	return zero
}

// ContextTransformer dispatches instances to per-kind handlers producing a
// result and threading a context value. Kinds without a handler produce the
// default result.
type ContextTransformer[C, T any] struct {
	table[func(aas.Instance, C) T]
	fallback func(aas.Instance, C) T
}

// NewContextTransformer builds an empty context transformer sized for the
// schema's kinds. The fallback produces the result for kinds without a
// registered handler; a nil fallback means the zero value.
func NewContextTransformer[C, T any](schema *aas.Schema, fallback func(aas.Instance, C) T) *ContextTransformer[C, T] {
	return &ContextTransformer[C, T]{
		table:    newTable[func(aas.Instance, C) T](schema),
		fallback: fallback,
	}
}

// On registers the handler for one kind and returns the transformer for
// chaining.
func (t *ContextTransformer[C, T]) On(kind aas.Kind, handler func(aas.Instance, C) T) *ContextTransformer[C, T] {
	t.set(kind, handler)
	return t
}

// Transform invokes the handler registered for the instance's kind.
func (t *ContextTransformer[C, T]) Transform(instance aas.Instance, context C) T {
	if handler, ok := t.get(instance.Kind()); ok {
		return handler(instance, context)
	}
	if t.fallback != nil {
		return t.fallback(instance, context)
	}
	var zero T
	return zero
}
