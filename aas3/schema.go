package aas3

import (
	"iter"
	"regexp"
	"unicode/utf8"

	"github.com/jacoelho/aas"
	"github.com/jacoelho/aas/reporting"
)

// Schema registers every kind of the subset. Registration happens in this
// var block, before any engine or dispatcher can observe the schema.
var Schema = aas.NewSchema()

// Verify yields every constraint violation reachable from an instance of
// this model.
func Verify(instance aas.Instance) iter.Seq[*reporting.Error] {
	return Schema.Verify(instance)
}

// VerifyErr collects all violations into a single error, nil when valid.
func VerifyErr(instance aas.Instance) error {
	return Schema.VerifyErr(instance)
}

// Descend yields all descendants of an instance, pre-order depth-first.
func Descend(instance aas.Instance) iter.Seq[aas.Instance] {
	return Schema.Descend(instance)
}

// DescendOnce yields the immediate children of an instance.
func DescendOnce(instance aas.Instance) iter.Seq[aas.Instance] {
	return Schema.DescendOnce(instance)
}

// Identifiers are bounded per the metamodel's string length constraints.
// Lengths count characters, not bytes.
const (
	maxIdentifierLength = 2000
	maxTextLength       = 1023
)

// idShortRe captures constraint AASd-002: letters, digits and underscore,
// starting with a letter.
var idShortRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

func validIDShort(idShort string) bool {
	return idShort == "" || idShortRe.MatchString(idShort)
}

func validIdentifier(id string) bool {
	return id != "" && utf8.RuneCountInString(id) <= maxIdentifierLength
}

func instances[T aas.Instance](items []T) []aas.Instance {
	out := make([]aas.Instance, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func optional[T any, P interface {
	*T
	aas.Instance
}](child P) aas.Instance {
	if child == nil {
		return nil
	}
	return child
}

var (
	KindKey = Schema.MustRegister(aas.KindSpec{
		Name: "Key",
		Invariants: []aas.Invariant{
			{
				Description: "the value of a key must not be empty",
				Holds: func(i aas.Instance) bool {
					return i.(*Key).Value != ""
				},
			},
			{
				Description: "the value of a key must not exceed 2000 characters",
				Holds: func(i aas.Instance) bool {
					return utf8.RuneCountInString(i.(*Key).Value) <= maxIdentifierLength
				},
			},
		},
	})

	KindReference = Schema.MustRegister(aas.KindSpec{
		Name: "Reference",
		Fields: []aas.Field{
			{
				Name:  "referredSemanticId",
				Shape: aas.ShapeOptional,
				One: func(i aas.Instance) aas.Instance {
					return optional(i.(*Reference).ReferredSemanticID)
				},
			},
			{
				Name:  "keys",
				Shape: aas.ShapeList,
				Many: func(i aas.Instance) []aas.Instance {
					return instances(i.(*Reference).Keys)
				},
			},
		},
		Invariants: []aas.Invariant{
			{
				Description: "a reference must have at least one key",
				Holds: func(i aas.Instance) bool {
					return len(i.(*Reference).Keys) > 0
				},
			},
			{
				Description: "Constraint AASd-121: the type of the first key must be a globally identifiable",
				Holds: func(i aas.Instance) bool {
					r := i.(*Reference)
					return len(r.Keys) == 0 || GloballyIdentifiables[r.Keys[0].Type]
				},
			},
			{
				Description: "Constraint AASd-122: the type of the first key of an external reference must be a generic globally identifiable",
				Holds: func(i aas.Instance) bool {
					r := i.(*Reference)
					if r.Type != ExternalReference || len(r.Keys) == 0 {
						return true
					}
					return GenericGloballyIdentifiables[r.Keys[0].Type]
				},
			},
			{
				Description: "Constraint AASd-123: the type of the first key of a model reference must be an AAS identifiable",
				Holds: func(i aas.Instance) bool {
					r := i.(*Reference)
					if r.Type != ModelReference || len(r.Keys) == 0 {
						return true
					}
					return AASIdentifiables[r.Keys[0].Type]
				},
			},
			{
				Description: "Constraint AASd-125: the type of each key following the first key of a model reference must be a fragment key",
				Holds: func(i aas.Instance) bool {
					r := i.(*Reference)
					if r.Type != ModelReference || len(r.Keys) < 2 {
						return true
					}
					for _, key := range r.Keys[1:] {
						if !FragmentKeys[key.Type] {
							return false
						}
					}
					return true
				},
			},
		},
	})

	KindLangStringTextType = Schema.MustRegister(aas.KindSpec{
		Name: "LangStringTextType",
		Invariants: []aas.Invariant{
			{
				Description: "the language of a language string must not be empty",
				Holds: func(i aas.Instance) bool {
					return i.(*LangStringTextType).Language != ""
				},
			},
			{
				Description: "the text of a language string must not be empty and must not exceed 1023 characters",
				Holds: func(i aas.Instance) bool {
					text := i.(*LangStringTextType).Text
					return text != "" && utf8.RuneCountInString(text) <= maxTextLength
				},
			},
		},
	})

	KindAdministrativeInformation = Schema.MustRegister(aas.KindSpec{
		Name: "AdministrativeInformation",
		Invariants: []aas.Invariant{
			{
				Description: "Constraint AASd-005: a revision requires a version",
				Holds: func(i aas.Instance) bool {
					a := i.(*AdministrativeInformation)
					return a.Revision == "" || a.Version != ""
				},
			},
		},
	})

	KindProperty = Schema.MustRegister(aas.KindSpec{
		Name: "Property",
		Fields: []aas.Field{
			{
				Name:  "semanticId",
				Shape: aas.ShapeOptional,
				One: func(i aas.Instance) aas.Instance {
					return optional(i.(*Property).SemanticID)
				},
			},
		},
		Invariants: []aas.Invariant{
			{
				Description: "Constraint AASd-002: an idShort shall only feature letters, digits and underscores, beginning with a letter",
				Holds: func(i aas.Instance) bool {
					return validIDShort(i.(*Property).IDShort)
				},
			},
		},
	})

	KindSubmodelElementCollection = Schema.MustRegister(aas.KindSpec{
		Name: "SubmodelElementCollection",
		Fields: []aas.Field{
			{
				Name:  "semanticId",
				Shape: aas.ShapeOptional,
				One: func(i aas.Instance) aas.Instance {
					return optional(i.(*SubmodelElementCollection).SemanticID)
				},
			},
			{
				Name:  "value",
				Shape: aas.ShapeList,
				Many: func(i aas.Instance) []aas.Instance {
					return instances(i.(*SubmodelElementCollection).Value)
				},
			},
		},
		Invariants: []aas.Invariant{
			{
				Description: "Constraint AASd-002: an idShort shall only feature letters, digits and underscores, beginning with a letter",
				Holds: func(i aas.Instance) bool {
					return validIDShort(i.(*SubmodelElementCollection).IDShort)
				},
			},
		},
	})

	KindSubmodel = Schema.MustRegister(aas.KindSpec{
		Name: "Submodel",
		Fields: []aas.Field{
			{
				Name:  "administration",
				Shape: aas.ShapeOptional,
				One: func(i aas.Instance) aas.Instance {
					return optional(i.(*Submodel).Administration)
				},
			},
			{
				Name:  "semanticId",
				Shape: aas.ShapeOptional,
				One: func(i aas.Instance) aas.Instance {
					return optional(i.(*Submodel).SemanticID)
				},
			},
			{
				Name:  "description",
				Shape: aas.ShapeList,
				Many: func(i aas.Instance) []aas.Instance {
					return instances(i.(*Submodel).Description)
				},
			},
			{
				Name:  "submodelElements",
				Shape: aas.ShapeList,
				Many: func(i aas.Instance) []aas.Instance {
					return instances(i.(*Submodel).SubmodelElements)
				},
			},
		},
		Invariants: []aas.Invariant{
			{
				Description: "the id of an identifiable must not be empty and must not exceed 2000 characters",
				Holds: func(i aas.Instance) bool {
					return validIdentifier(i.(*Submodel).ID)
				},
			},
			{
				Description: "Constraint AASd-002: an idShort shall only feature letters, digits and underscores, beginning with a letter",
				Holds: func(i aas.Instance) bool {
					return validIDShort(i.(*Submodel).IDShort)
				},
			},
		},
	})

	KindAssetInformation = Schema.MustRegister(aas.KindSpec{
		Name: "AssetInformation",
	})

	KindAssetAdministrationShell = Schema.MustRegister(aas.KindSpec{
		Name: "AssetAdministrationShell",
		Fields: []aas.Field{
			{
				Name:  "administration",
				Shape: aas.ShapeOptional,
				One: func(i aas.Instance) aas.Instance {
					return optional(i.(*AssetAdministrationShell).Administration)
				},
			},
			{
				Name:  "description",
				Shape: aas.ShapeList,
				Many: func(i aas.Instance) []aas.Instance {
					return instances(i.(*AssetAdministrationShell).Description)
				},
			},
			{
				Name:  "assetInformation",
				Shape: aas.ShapeObject,
				One: func(i aas.Instance) aas.Instance {
					return optional(i.(*AssetAdministrationShell).AssetInformation)
				},
			},
			{
				Name:  "submodels",
				Shape: aas.ShapeList,
				Many: func(i aas.Instance) []aas.Instance {
					return instances(i.(*AssetAdministrationShell).Submodels)
				},
			},
		},
		Invariants: []aas.Invariant{
			{
				Description: "the id of an identifiable must not be empty and must not exceed 2000 characters",
				Holds: func(i aas.Instance) bool {
					return validIdentifier(i.(*AssetAdministrationShell).ID)
				},
			},
			{
				Description: "Constraint AASd-002: an idShort shall only feature letters, digits and underscores, beginning with a letter",
				Holds: func(i aas.Instance) bool {
					return validIDShort(i.(*AssetAdministrationShell).IDShort)
				},
			},
		},
	})

	KindConceptDescription = Schema.MustRegister(aas.KindSpec{
		Name: "ConceptDescription",
		Fields: []aas.Field{
			{
				Name:  "description",
				Shape: aas.ShapeList,
				Many: func(i aas.Instance) []aas.Instance {
					return instances(i.(*ConceptDescription).Description)
				},
			},
		},
		Invariants: []aas.Invariant{
			{
				Description: "the id of an identifiable must not be empty and must not exceed 2000 characters",
				Holds: func(i aas.Instance) bool {
					return validIdentifier(i.(*ConceptDescription).ID)
				},
			},
			{
				Description: "Constraint AASd-002: an idShort shall only feature letters, digits and underscores, beginning with a letter",
				Holds: func(i aas.Instance) bool {
					return validIDShort(i.(*ConceptDescription).IDShort)
				},
			},
		},
	})

	KindEnvironment = Schema.MustRegister(aas.KindSpec{
		Name: "Environment",
		Fields: []aas.Field{
			{
				Name:  "assetAdministrationShells",
				Shape: aas.ShapeList,
				Many: func(i aas.Instance) []aas.Instance {
					return instances(i.(*Environment).AssetAdministrationShells)
				},
			},
			{
				Name:  "submodels",
				Shape: aas.ShapeList,
				Many: func(i aas.Instance) []aas.Instance {
					return instances(i.(*Environment).Submodels)
				},
			},
			{
				Name:  "conceptDescriptions",
				Shape: aas.ShapeList,
				Many: func(i aas.Instance) []aas.Instance {
					return instances(i.(*Environment).ConceptDescriptions)
				},
			},
		},
	})
)
