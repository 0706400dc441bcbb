// Package document loads YAML instance documents into aas3 object graphs.
//
// Loading performs only construction-time checks: unknown model types,
// missing required fields and malformed enumeration literals are returned as
// ordinary errors. Semantic constraints are the verification engine's job;
// a document can load successfully and still fail verification.
package document

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jacoelho/aas/aas3"
)

// Load decodes a YAML environment document.
func Load(r io.Reader) (*aas3.Environment, error) {
	var doc environmentDoc
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc.build()
}

// LoadFile decodes a YAML environment document from a file path.
func LoadFile(path string) (*aas3.Environment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", path, err)
	}
	defer f.Close()

	environment, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load document %s: %w", path, err)
	}
	return environment, nil
}

type environmentDoc struct {
	AssetAdministrationShells []shellDoc    `yaml:"assetAdministrationShells"`
	Submodels                 []submodelDoc `yaml:"submodels"`
	ConceptDescriptions       []conceptDoc  `yaml:"conceptDescriptions"`
}

type shellDoc struct {
	ID               string         `yaml:"id"`
	IDShort          string         `yaml:"idShort"`
	Administration   *adminDoc      `yaml:"administration"`
	Description      []langDoc      `yaml:"description"`
	AssetInformation *assetInfoDoc  `yaml:"assetInformation"`
	Submodels        []referenceDoc `yaml:"submodels"`
}

type submodelDoc struct {
	ID               string        `yaml:"id"`
	IDShort          string        `yaml:"idShort"`
	Administration   *adminDoc     `yaml:"administration"`
	SemanticID       *referenceDoc `yaml:"semanticId"`
	Description      []langDoc     `yaml:"description"`
	SubmodelElements []elementDoc  `yaml:"submodelElements"`
}

type conceptDoc struct {
	ID          string    `yaml:"id"`
	IDShort     string    `yaml:"idShort"`
	Description []langDoc `yaml:"description"`
}

type elementDoc struct {
	ModelType  string        `yaml:"modelType"`
	IDShort    string        `yaml:"idShort"`
	SemanticID *referenceDoc `yaml:"semanticId"`
	ValueType  string        `yaml:"valueType"`
	Value      yaml.Node     `yaml:"value"`
}

type referenceDoc struct {
	Type               string        `yaml:"type"`
	ReferredSemanticID *referenceDoc `yaml:"referredSemanticId"`
	Keys               []keyDoc      `yaml:"keys"`
}

type keyDoc struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

type adminDoc struct {
	Version  string `yaml:"version"`
	Revision string `yaml:"revision"`
}

type langDoc struct {
	Language string `yaml:"language"`
	Text     string `yaml:"text"`
}

type assetInfoDoc struct {
	AssetKind     string `yaml:"assetKind"`
	GlobalAssetID string `yaml:"globalAssetId"`
}

func (d *environmentDoc) build() (*aas3.Environment, error) {
	environment := &aas3.Environment{}

	for i, shell := range d.AssetAdministrationShells {
		built, err := shell.build()
		if err != nil {
			return nil, fmt.Errorf("assetAdministrationShells[%d]: %w", i, err)
		}
		environment.AssetAdministrationShells = append(environment.AssetAdministrationShells, built)
	}
	for i, submodel := range d.Submodels {
		built, err := submodel.build()
		if err != nil {
			return nil, fmt.Errorf("submodels[%d]: %w", i, err)
		}
		environment.Submodels = append(environment.Submodels, built)
	}
	for _, concept := range d.ConceptDescriptions {
		environment.ConceptDescriptions = append(environment.ConceptDescriptions, &aas3.ConceptDescription{
			ID:          concept.ID,
			IDShort:     concept.IDShort,
			Description: buildLangStrings(concept.Description),
		})
	}
	return environment, nil
}

func (d *shellDoc) build() (*aas3.AssetAdministrationShell, error) {
	if d.AssetInformation == nil {
		return nil, fmt.Errorf("assetInformation is required")
	}
	assetKind, err := aas3.ParseAssetKind(d.AssetInformation.AssetKind)
	if err != nil {
		return nil, fmt.Errorf("assetInformation: %w", err)
	}

	shell := &aas3.AssetAdministrationShell{
		ID:             d.ID,
		IDShort:        d.IDShort,
		Administration: buildAdministration(d.Administration),
		Description:    buildLangStrings(d.Description),
		AssetInformation: &aas3.AssetInformation{
			AssetKind:     assetKind,
			GlobalAssetID: d.AssetInformation.GlobalAssetID,
		},
	}
	for i, reference := range d.Submodels {
		built, err := reference.build()
		if err != nil {
			return nil, fmt.Errorf("submodels[%d]: %w", i, err)
		}
		shell.Submodels = append(shell.Submodels, built)
	}
	return shell, nil
}

func (d *submodelDoc) build() (*aas3.Submodel, error) {
	submodel := &aas3.Submodel{
		ID:             d.ID,
		IDShort:        d.IDShort,
		Administration: buildAdministration(d.Administration),
		Description:    buildLangStrings(d.Description),
	}
	if d.SemanticID != nil {
		built, err := d.SemanticID.build()
		if err != nil {
			return nil, fmt.Errorf("semanticId: %w", err)
		}
		submodel.SemanticID = built
	}
	for i, element := range d.SubmodelElements {
		built, err := element.build()
		if err != nil {
			return nil, fmt.Errorf("submodelElements[%d]: %w", i, err)
		}
		submodel.SubmodelElements = append(submodel.SubmodelElements, built)
	}
	return submodel, nil
}

func (d *elementDoc) build() (aas3.SubmodelElement, error) {
	semanticID, err := buildOptionalReference(d.SemanticID)
	if err != nil {
		return nil, fmt.Errorf("semanticId: %w", err)
	}

	switch d.ModelType {
	case "Property":
		if d.ValueType == "" {
			return nil, fmt.Errorf("property %q: valueType is required", d.IDShort)
		}
		valueType, err := aas3.ParseDataTypeDefXSD(d.ValueType)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", d.IDShort, err)
		}
		var value string
		if !d.Value.IsZero() {
			if err := d.Value.Decode(&value); err != nil {
				return nil, fmt.Errorf("property %q: decode value: %w", d.IDShort, err)
			}
		}
		return &aas3.Property{
			IDShort:    d.IDShort,
			SemanticID: semanticID,
			ValueType:  valueType,
			Value:      value,
		}, nil

	case "SubmodelElementCollection":
		collection := &aas3.SubmodelElementCollection{
			IDShort:    d.IDShort,
			SemanticID: semanticID,
		}
		if !d.Value.IsZero() {
			var nested []elementDoc
			if err := d.Value.Decode(&nested); err != nil {
				return nil, fmt.Errorf("collection %q: decode value: %w", d.IDShort, err)
			}
			for i, element := range nested {
				built, err := element.build()
				if err != nil {
					return nil, fmt.Errorf("collection %q: value[%d]: %w", d.IDShort, i, err)
				}
				collection.Value = append(collection.Value, built)
			}
		}
		return collection, nil

	case "":
		return nil, fmt.Errorf("modelType is required")
	default:
		return nil, fmt.Errorf("unknown model type %q", d.ModelType)
	}
}

func (d *referenceDoc) build() (*aas3.Reference, error) {
	referenceType, err := aas3.ParseReferenceTypes(d.Type)
	if err != nil {
		return nil, err
	}

	reference := &aas3.Reference{Type: referenceType}
	if d.ReferredSemanticID != nil {
		built, err := d.ReferredSemanticID.build()
		if err != nil {
			return nil, fmt.Errorf("referredSemanticId: %w", err)
		}
		reference.ReferredSemanticID = built
	}
	for i, key := range d.Keys {
		keyType, err := aas3.ParseKeyTypes(key.Type)
		if err != nil {
			return nil, fmt.Errorf("keys[%d]: %w", i, err)
		}
		reference.Keys = append(reference.Keys, &aas3.Key{Type: keyType, Value: key.Value})
	}
	return reference, nil
}

func buildOptionalReference(d *referenceDoc) (*aas3.Reference, error) {
	if d == nil {
		return nil, nil
	}
	return d.build()
}

func buildAdministration(d *adminDoc) *aas3.AdministrativeInformation {
	if d == nil {
		return nil
	}
	return &aas3.AdministrativeInformation{Version: d.Version, Revision: d.Revision}
}

func buildLangStrings(docs []langDoc) []*aas3.LangStringTextType {
	if len(docs) == 0 {
		return nil
	}
	strings := make([]*aas3.LangStringTextType, len(docs))
	for i, doc := range docs {
		strings[i] = &aas3.LangStringTextType{Language: doc.Language, Text: doc.Text}
	}
	return strings
}
