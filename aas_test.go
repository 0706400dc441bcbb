package aas_test

import (
	"github.com/jacoelho/aas"
)

// The test model: a widget owns an optional child, an ordered list of parts,
// and a label constrained to be non-empty; a crate owns exactly one widget
// and has no invariants of its own.

type widget struct {
	label string
	child *widget
	parts []*widget
}

func (w *widget) Kind() aas.Kind { return kindWidget }

type crate struct {
	content *widget
}

func (c *crate) Kind() aas.Kind { return kindCrate }

var (
	testSchema = aas.NewSchema()

	kindWidget = testSchema.MustRegister(aas.KindSpec{
		Name: "Widget",
		Fields: []aas.Field{
			{
				Name:  "child",
				Shape: aas.ShapeOptional,
				One: func(i aas.Instance) aas.Instance {
					if w := i.(*widget); w.child != nil {
						return w.child
					}
					return nil
				},
			},
			{
				Name:  "parts",
				Shape: aas.ShapeList,
				Many: func(i aas.Instance) []aas.Instance {
					w := i.(*widget)
					parts := make([]aas.Instance, len(w.parts))
					for j, part := range w.parts {
						parts[j] = part
					}
					return parts
				},
			},
		},
		Invariants: []aas.Invariant{
			{
				Description: "label must not be empty",
				Holds: func(i aas.Instance) bool {
					return i.(*widget).label != ""
				},
			},
		},
	})

	kindCrate = testSchema.MustRegister(aas.KindSpec{
		Name: "Crate",
		Fields: []aas.Field{
			{
				Name:  "content",
				Shape: aas.ShapeObject,
				One: func(i aas.Instance) aas.Instance {
					return i.(*crate).content
				},
			},
		},
	})
)
