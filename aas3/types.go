// Package aas3 materializes a compact subset of the Asset Administration
// Shell v3 metamodel on top of the generic core: concrete entity kinds with
// their owned fields and constraints registered in a package schema, plus
// package-level verification and traversal entry points.
//
// The full metamodel has hundreds of kinds; this subset covers the
// identifiables, references, and submodel elements needed by instance
// documents, and every kind follows the same registration pattern.
package aas3

import (
	"iter"

	"github.com/jacoelho/aas"
)

// SubmodelElement is the union of kinds usable inside a submodel.
type SubmodelElement interface {
	aas.Instance
	submodelElement()
}

// Key is one step of a reference chain.
type Key struct {
	Type  KeyTypes
	Value string
}

// Reference is an ordered chain of keys addressing a model element or an
// external entity.
type Reference struct {
	Type               ReferenceTypes
	ReferredSemanticID *Reference
	Keys               []*Key
}

// LangStringTextType is a text value in a specific language.
type LangStringTextType struct {
	Language string
	Text     string
}

// AdministrativeInformation carries versioning metadata of an identifiable.
type AdministrativeInformation struct {
	Version  string
	Revision string
}

// Property is a submodel element with a typed scalar value.
type Property struct {
	IDShort    string
	SemanticID *Reference
	ValueType  DataTypeDefXSD
	Value      string
}

func (*Property) submodelElement() {}

// SubmodelElementCollection groups submodel elements under one element.
type SubmodelElementCollection struct {
	IDShort    string
	SemanticID *Reference
	Value      []SubmodelElement
}

func (*SubmodelElementCollection) submodelElement() {}

// Submodel is an identifiable container of submodel elements.
type Submodel struct {
	ID               string
	IDShort          string
	Administration   *AdministrativeInformation
	SemanticID       *Reference
	Description      []*LangStringTextType
	SubmodelElements []SubmodelElement
}

// AssetInformation identifies the asset an administration shell represents.
type AssetInformation struct {
	AssetKind     AssetKind
	GlobalAssetID string
}

// AssetAdministrationShell is the identifiable entry point to an asset's
// submodels.
type AssetAdministrationShell struct {
	ID               string
	IDShort          string
	Administration   *AdministrativeInformation
	Description      []*LangStringTextType
	AssetInformation *AssetInformation
	Submodels        []*Reference
}

// ConceptDescription is an identifiable semantic definition.
type ConceptDescription struct {
	ID          string
	IDShort     string
	Description []*LangStringTextType
}

// Environment is the root container of an instance document.
type Environment struct {
	AssetAdministrationShells []*AssetAdministrationShell
	Submodels                 []*Submodel
	ConceptDescriptions       []*ConceptDescription
}

// Kind, Describable and Visitable implementations. One block per kind,
// delegating traversal to the package schema.

func (k *Key) Kind() aas.Kind                      { return KindKey }
func (k *Key) DescendOnce() iter.Seq[aas.Instance] { return Schema.DescendOnce(k) }
func (k *Key) Descend() iter.Seq[aas.Instance]     { return Schema.Descend(k) }
func (k *Key) Accept(v aas.Visitor)                { v.Visit(k) }

func (r *Reference) Kind() aas.Kind                      { return KindReference }
func (r *Reference) DescendOnce() iter.Seq[aas.Instance] { return Schema.DescendOnce(r) }
func (r *Reference) Descend() iter.Seq[aas.Instance]     { return Schema.Descend(r) }
func (r *Reference) Accept(v aas.Visitor)                { v.Visit(r) }

func (l *LangStringTextType) Kind() aas.Kind                      { return KindLangStringTextType }
func (l *LangStringTextType) DescendOnce() iter.Seq[aas.Instance] { return Schema.DescendOnce(l) }
func (l *LangStringTextType) Descend() iter.Seq[aas.Instance]     { return Schema.Descend(l) }
func (l *LangStringTextType) Accept(v aas.Visitor)                { v.Visit(l) }

func (a *AdministrativeInformation) Kind() aas.Kind { return KindAdministrativeInformation }
func (a *AdministrativeInformation) DescendOnce() iter.Seq[aas.Instance] {
	return Schema.DescendOnce(a)
}
func (a *AdministrativeInformation) Descend() iter.Seq[aas.Instance] { return Schema.Descend(a) }
func (a *AdministrativeInformation) Accept(v aas.Visitor)            { v.Visit(a) }

func (p *Property) Kind() aas.Kind                      { return KindProperty }
func (p *Property) DescendOnce() iter.Seq[aas.Instance] { return Schema.DescendOnce(p) }
func (p *Property) Descend() iter.Seq[aas.Instance]     { return Schema.Descend(p) }
func (p *Property) Accept(v aas.Visitor)                { v.Visit(p) }

func (c *SubmodelElementCollection) Kind() aas.Kind { return KindSubmodelElementCollection }
func (c *SubmodelElementCollection) DescendOnce() iter.Seq[aas.Instance] {
	return Schema.DescendOnce(c)
}
func (c *SubmodelElementCollection) Descend() iter.Seq[aas.Instance] { return Schema.Descend(c) }
func (c *SubmodelElementCollection) Accept(v aas.Visitor)            { v.Visit(c) }

func (s *Submodel) Kind() aas.Kind                      { return KindSubmodel }
func (s *Submodel) DescendOnce() iter.Seq[aas.Instance] { return Schema.DescendOnce(s) }
func (s *Submodel) Descend() iter.Seq[aas.Instance]     { return Schema.Descend(s) }
func (s *Submodel) Accept(v aas.Visitor)                { v.Visit(s) }

func (a *AssetInformation) Kind() aas.Kind                      { return KindAssetInformation }
func (a *AssetInformation) DescendOnce() iter.Seq[aas.Instance] { return Schema.DescendOnce(a) }
func (a *AssetInformation) Descend() iter.Seq[aas.Instance]     { return Schema.Descend(a) }
func (a *AssetInformation) Accept(v aas.Visitor)                { v.Visit(a) }

func (s *AssetAdministrationShell) Kind() aas.Kind { return KindAssetAdministrationShell }
func (s *AssetAdministrationShell) DescendOnce() iter.Seq[aas.Instance] {
	return Schema.DescendOnce(s)
}
func (s *AssetAdministrationShell) Descend() iter.Seq[aas.Instance] { return Schema.Descend(s) }
func (s *AssetAdministrationShell) Accept(v aas.Visitor)            { v.Visit(s) }

func (c *ConceptDescription) Kind() aas.Kind                      { return KindConceptDescription }
func (c *ConceptDescription) DescendOnce() iter.Seq[aas.Instance] { return Schema.DescendOnce(c) }
func (c *ConceptDescription) Descend() iter.Seq[aas.Instance]     { return Schema.Descend(c) }
func (c *ConceptDescription) Accept(v aas.Visitor)                { v.Visit(c) }

func (e *Environment) Kind() aas.Kind                      { return KindEnvironment }
func (e *Environment) DescendOnce() iter.Seq[aas.Instance] { return Schema.DescendOnce(e) }
func (e *Environment) Descend() iter.Seq[aas.Instance]     { return Schema.Descend(e) }
func (e *Environment) Accept(v aas.Visitor)                { v.Visit(e) }
