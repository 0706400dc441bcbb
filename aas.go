// Package aas provides the generic core of a typed in-memory object model for
// the Asset Administration Shell information model: a kind registry describing
// the owned fields and invariants of every concrete entity kind, a descend
// engine yielding child and descendant instances as lazy sequences, and a
// verification engine yielding invariant violations with exact path
// provenance.
//
// The closed set of concrete kinds is supplied by a model layer (generated or
// hand-written, see package aas3) that registers each kind with a Schema. The
// engines operate on the Instance contract only and never inspect concrete
// types.
package aas

import (
	"iter"

	"github.com/jacoelho/aas/reporting"
)

// Instance is one node of an object graph, of a fixed concrete kind.
type Instance interface {
	Kind() Kind
}

// Describable reports an instance's owned children.
type Describable interface {
	// DescendOnce yields the immediate children in field-declaration order.
	DescendOnce() iter.Seq[Instance]
	// Descend yields all descendants, pre-order depth-first.
	Descend() iter.Seq[Instance]
}

// Visitor dispatches to per-kind handling for an instance.
type Visitor interface {
	Visit(instance Instance)
}

// ContextVisitor is a Visitor threading an opaque context value through to
// the per-kind handler.
type ContextVisitor[C any] interface {
	Visit(instance Instance, context C)
}

// Transformer dispatches to per-kind handling and produces a result.
type Transformer[T any] interface {
	Transform(instance Instance) T
}

// ContextTransformer is a Transformer threading an opaque context value
// through to the per-kind handler.
type ContextTransformer[C, T any] interface {
	Transform(instance Instance, context C) T
}

// Visitable accepts an external visitor for double dispatch.
type Visitable interface {
	Accept(visitor Visitor)
}

// Verifier yields invariant violations for an instance and everything it
// owns. A valid instance yields an empty sequence.
type Verifier interface {
	Verify(instance Instance) iter.Seq[*reporting.Error]
}
