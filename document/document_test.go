package document_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/aas/aas3"
	"github.com/jacoelho/aas/document"
	"github.com/jacoelho/aas/internal/xiter"
	"github.com/jacoelho/aas/reporting"
)

const validDocument = `
assetAdministrationShells:
  - id: https://example.com/aas/motor
    idShort: Motor
    assetInformation:
      assetKind: Instance
      globalAssetId: https://example.com/assets/motor-1
    submodels:
      - type: ModelReference
        keys:
          - type: Submodel
            value: https://example.com/sm/nameplate
submodels:
  - id: https://example.com/sm/nameplate
    idShort: Nameplate
    administration:
      version: "1"
      revision: "2"
    description:
      - language: en
        text: Nameplate of the motor
    submodelElements:
      - modelType: Property
        idShort: ManufacturerName
        valueType: xs:string
        value: ACME
        semanticId:
          type: ExternalReference
          keys:
            - type: GlobalReference
              value: 0173-1#02-AAO677#002
      - modelType: SubmodelElementCollection
        idShort: Address
        value:
          - modelType: Property
            idShort: City
            valueType: xs:string
            value: Porto
conceptDescriptions:
  - id: https://example.com/cd/manufacturer
    idShort: ManufacturerName
`

func TestLoadValidDocument(t *testing.T) {
	environment, err := document.Load(strings.NewReader(validDocument))
	require.NoError(t, err)

	require.Len(t, environment.AssetAdministrationShells, 1)
	require.Len(t, environment.Submodels, 1)
	require.Len(t, environment.ConceptDescriptions, 1)

	shell := environment.AssetAdministrationShells[0]
	assert.Equal(t, "Motor", shell.IDShort)
	require.NotNil(t, shell.AssetInformation)
	assert.Equal(t, aas3.AssetKindInstance, shell.AssetInformation.AssetKind)

	submodel := environment.Submodels[0]
	require.Len(t, submodel.SubmodelElements, 2)

	property, ok := submodel.SubmodelElements[0].(*aas3.Property)
	require.True(t, ok)
	assert.Equal(t, "ACME", property.Value)
	require.NotNil(t, property.SemanticID)

	collection, ok := submodel.SubmodelElements[1].(*aas3.SubmodelElementCollection)
	require.True(t, ok)
	require.Len(t, collection.Value, 1)

	assert.NoError(t, aas3.VerifyErr(environment))
}

func TestLoadedDocumentVerifiesWithPath(t *testing.T) {
	broken := strings.Replace(validDocument, "idShort: City", "idShort: 1City", 1)

	environment, err := document.Load(strings.NewReader(broken))
	require.NoError(t, err, "a bad idShort is a verification concern, not a load error")

	errs := xiter.Collect(aas3.Verify(environment))
	require.Len(t, errs, 1)
	assert.Equal(t,
		"submodels[0].submodelElements[1].value[0]",
		reporting.JSONPath(errs[0].PathSegments()))
}

func TestLoadUnknownModelType(t *testing.T) {
	doc := `
submodels:
  - id: https://example.com/sm/x
    submodelElements:
      - modelType: Blob
        idShort: Data
`
	_, err := document.Load(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown model type "Blob"`)
	assert.Contains(t, err.Error(), "submodels[0]")
}

func TestLoadMissingModelType(t *testing.T) {
	doc := `
submodels:
  - id: https://example.com/sm/x
    submodelElements:
      - idShort: Data
`
	_, err := document.Load(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "modelType is required")
}

func TestLoadMissingAssetInformation(t *testing.T) {
	doc := `
assetAdministrationShells:
  - id: https://example.com/aas/x
`
	_, err := document.Load(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assetInformation is required")
}

func TestLoadMissingValueType(t *testing.T) {
	doc := `
submodels:
  - id: https://example.com/sm/x
    submodelElements:
      - modelType: Property
        idShort: P
`
	_, err := document.Load(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valueType is required")
}

func TestLoadUnknownField(t *testing.T) {
	doc := `
bogusTopLevel: true
`
	_, err := document.Load(strings.NewReader(doc))
	require.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := document.LoadFile("testdata/does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open document")
}

func TestLoadFile(t *testing.T) {
	environment, err := document.LoadFile("testdata/nameplate.yaml")
	require.NoError(t, err)
	assert.NoError(t, aas3.VerifyErr(environment))
}
