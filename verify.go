package aas

import (
	"iter"

	"github.com/jacoelho/aas/reporting"
)

// Verify yields every invariant violation reachable from an instance. For
// each frame the instance's own invariants are evaluated first, in
// declaration order, then owned children are verified in field-declaration
// order. Errors escaping a child are located by prepending the path segment
// that led to the child, so a fully propagated error carries its path
// root-to-leaf.
//
// Verification never fails and never stops early on its own: a valid graph
// yields an empty sequence, and a caller wanting fail-fast behavior simply
// stops consuming. The sequence is lazy and restartable.
func (s *Schema) Verify(instance Instance) iter.Seq[*reporting.Error] {
	return func(yield func(*reporting.Error) bool) {
		s.verify(instance, yield)
	}
}

// VerifyErr collects all violations into a reporting.List. It returns nil
// when the graph is valid.
func (s *Schema) VerifyErr(instance Instance) error {
	var list reporting.List
	for err := range s.Verify(instance) {
		list = append(list, err)
	}
	if len(list) == 0 {
		return nil
	}
	return list
}

// verify reports false when the consumer stopped the sequence.
func (s *Schema) verify(instance Instance, yield func(*reporting.Error) bool) bool {
	kind := instance.Kind()

	for _, invariant := range s.Invariants(kind) {
		if invariant.Holds(instance) {
			continue
		}
		if !yield(reporting.NewError("Invariant violated: " + invariant.Description)) {
			return false
		}
	}

	for _, field := range s.Fields(kind) {
		switch field.Shape {
		case ShapeObject, ShapeOptional:
			child := field.One(instance)
			if child == nil {
				continue
			}
			name := reporting.NameSegment{Name: field.Name}
			ok := s.verify(child, func(err *reporting.Error) bool {
				err.PrependSegment(name)
				return yield(err)
			})
			if !ok {
				return false
			}
		case ShapeList:
			name := reporting.NameSegment{Name: field.Name}
			for i, child := range field.Many(instance) {
				index := reporting.IndexSegment{Index: i}
				ok := s.verify(child, func(err *reporting.Error) bool {
					err.PrependSegment(index)
					err.PrependSegment(name)
					return yield(err)
				})
				if !ok {
					return false
				}
			}
		}
	}
	return true
}
