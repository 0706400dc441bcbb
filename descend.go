package aas

import "iter"

// DescendOnce yields the immediate children of an instance in
// field-declaration order: the single instance of a required field, the
// instance of a present optional field, and the elements of a list field in
// list order. The sequence is lazy and restartable; each call produces an
// independent sequence.
func (s *Schema) DescendOnce(instance Instance) iter.Seq[Instance] {
	return func(yield func(Instance) bool) {
		for _, field := range s.Fields(instance.Kind()) {
			switch field.Shape {
			case ShapeObject, ShapeOptional:
				if child := field.One(instance); child != nil {
					if !yield(child) {
						return
					}
				}
			case ShapeList:
				for _, child := range field.Many(instance) {
					if !yield(child) {
						return
					}
				}
			}
		}
	}
}

// Descend yields every descendant of an instance: each child in
// field-declaration order, immediately followed by that child's own
// descendants, before the next sibling. The walk uses an explicit work stack
// so depth is not bounded by the goroutine stack. Ownership graphs must be
// trees; cyclic ownership does not terminate.
func (s *Schema) Descend(instance Instance) iter.Seq[Instance] {
	return func(yield func(Instance) bool) {
		stack := s.pushChildren(nil, instance)
		for len(stack) > 0 {
			next := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(next) {
				return
			}
			stack = s.pushChildren(stack, next)
		}
	}
}

// pushChildren pushes the children of an instance in reverse declaration
// order, so popping visits them first-to-last.
func (s *Schema) pushChildren(stack []Instance, instance Instance) []Instance {
	mark := len(stack)
	for child := range s.DescendOnce(instance) {
		stack = append(stack, child)
	}
	for i, j := mark, len(stack)-1; i < j; i, j = i+1, j-1 {
		stack[i], stack[j] = stack[j], stack[i]
	}
	return stack
}

// Walk calls fn for every descendant of an instance in Descend order and
// stops at the first error, which it returns.
func (s *Schema) Walk(instance Instance, fn func(Instance) error) error {
	for descendant := range s.Descend(instance) {
		if err := fn(descendant); err != nil {
			return err
		}
	}
	return nil
}
