package aas3_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/aas"
	"github.com/jacoelho/aas/aas3"
	"github.com/jacoelho/aas/dispatch"
	"github.com/jacoelho/aas/internal/xiter"
	"github.com/jacoelho/aas/reporting"
)

func validEnvironment() *aas3.Environment {
	return &aas3.Environment{
		AssetAdministrationShells: []*aas3.AssetAdministrationShell{
			{
				ID:      "https://example.com/aas/motor",
				IDShort: "Motor",
				AssetInformation: &aas3.AssetInformation{
					AssetKind:     aas3.AssetKindInstance,
					GlobalAssetID: "https://example.com/assets/motor-1",
				},
				Submodels: []*aas3.Reference{
					{
						Type: aas3.ModelReference,
						Keys: []*aas3.Key{
							{Type: aas3.KeySubmodel, Value: "https://example.com/sm/nameplate"},
						},
					},
				},
			},
		},
		Submodels: []*aas3.Submodel{
			{
				ID:      "https://example.com/sm/nameplate",
				IDShort: "Nameplate",
				Administration: &aas3.AdministrativeInformation{
					Version: "1", Revision: "2",
				},
				Description: []*aas3.LangStringTextType{
					{Language: "en", Text: "Nameplate of the motor"},
				},
				SubmodelElements: []aas3.SubmodelElement{
					&aas3.Property{
						IDShort:   "ManufacturerName",
						ValueType: aas3.XSString,
						Value:     "ACME",
						SemanticID: &aas3.Reference{
							Type: aas3.ExternalReference,
							Keys: []*aas3.Key{
								{Type: aas3.KeyGlobalReference, Value: "0173-1#02-AAO677#002"},
							},
						},
					},
					&aas3.SubmodelElementCollection{
						IDShort: "Address",
						Value: []aas3.SubmodelElement{
							&aas3.Property{IDShort: "City", ValueType: aas3.XSString, Value: "Porto"},
						},
					},
				},
			},
		},
		ConceptDescriptions: []*aas3.ConceptDescription{
			{ID: "https://example.com/cd/manufacturer", IDShort: "ManufacturerName"},
		},
	}
}

func TestVerifyValidEnvironment(t *testing.T) {
	assert.Empty(t, xiter.Collect(aas3.Verify(validEnvironment())))
	assert.NoError(t, aas3.VerifyErr(validEnvironment()))
}

func TestVerifyLocatesDeepViolation(t *testing.T) {
	env := validEnvironment()
	collection := env.Submodels[0].SubmodelElements[1].(*aas3.SubmodelElementCollection)
	collection.Value[0].(*aas3.Property).IDShort = "0badName"

	errs := xiter.Collect(aas3.Verify(env))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Cause(), "AASd-002")
	assert.Equal(t,
		"submodels[0].submodelElements[1].value[0]",
		reporting.JSONPath(errs[0].PathSegments()))
}

func TestVerifyEmptyKeyValue(t *testing.T) {
	env := validEnvironment()
	property := env.Submodels[0].SubmodelElements[0].(*aas3.Property)
	property.SemanticID.Keys[0].Value = ""

	errs := xiter.Collect(aas3.Verify(env))
	require.Len(t, errs, 1)
	assert.Equal(t, "Invariant violated: the value of a key must not be empty", errs[0].Cause())
	assert.Equal(t,
		"submodels[0].submodelElements[0].semanticId.keys[0]",
		reporting.JSONPath(errs[0].PathSegments()))
}

func TestVerifyLengthBoundsCountCharacters(t *testing.T) {
	// Two-byte runes: 2000 characters is within the identifier bound even
	// though the byte length is twice that.
	atLimit := &aas3.ConceptDescription{ID: strings.Repeat("ä", 2000)}
	assert.Empty(t, xiter.Collect(aas3.Verify(atLimit)))

	overLimit := &aas3.ConceptDescription{ID: strings.Repeat("ä", 2001)}
	errs := xiter.Collect(aas3.Verify(overLimit))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Cause(), "must not exceed 2000 characters")

	text := &aas3.LangStringTextType{Language: "de", Text: strings.Repeat("ü", 1023)}
	assert.Empty(t, xiter.Collect(aas3.Verify(text)))

	longText := &aas3.LangStringTextType{Language: "de", Text: strings.Repeat("ü", 1024)}
	errs = xiter.Collect(aas3.Verify(longText))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Cause(), "must not exceed 1023 characters")
}

func TestVerifyReferenceConstraints(t *testing.T) {
	tests := []struct {
		name      string
		reference *aas3.Reference
		wantCause string
	}{
		{
			name:      "empty keys",
			reference: &aas3.Reference{Type: aas3.ExternalReference},
			wantCause: "a reference must have at least one key",
		},
		{
			name: "first key not globally identifiable",
			reference: &aas3.Reference{
				Type: aas3.ModelReference,
				Keys: []*aas3.Key{{Type: aas3.KeyProperty, Value: "x"}},
			},
			wantCause: "AASd-121",
		},
		{
			name: "external reference with aas identifiable first key",
			reference: &aas3.Reference{
				Type: aas3.ExternalReference,
				Keys: []*aas3.Key{{Type: aas3.KeySubmodel, Value: "x"}},
			},
			wantCause: "AASd-122",
		},
		{
			name: "model reference with generic first key",
			reference: &aas3.Reference{
				Type: aas3.ModelReference,
				Keys: []*aas3.Key{{Type: aas3.KeyGlobalReference, Value: "x"}},
			},
			wantCause: "AASd-123",
		},
		{
			name: "model reference with non fragment second key",
			reference: &aas3.Reference{
				Type: aas3.ModelReference,
				Keys: []*aas3.Key{
					{Type: aas3.KeySubmodel, Value: "x"},
					{Type: aas3.KeySubmodel, Value: "y"},
				},
			},
			wantCause: "AASd-125",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var causes []string
			for err := range aas3.Verify(tt.reference) {
				causes = append(causes, err.Cause())
			}
			require.NotEmpty(t, causes)
			found := false
			for _, cause := range causes {
				if strings.Contains(cause, tt.wantCause) {
					found = true
				}
			}
			assert.True(t, found, "causes %v do not mention %q", causes, tt.wantCause)
		})
	}
}

func TestVerifyValidModelReferenceChain(t *testing.T) {
	reference := &aas3.Reference{
		Type: aas3.ModelReference,
		Keys: []*aas3.Key{
			{Type: aas3.KeySubmodel, Value: "https://example.com/sm/nameplate"},
			{Type: aas3.KeyProperty, Value: "ManufacturerName"},
		},
	}
	assert.Empty(t, xiter.Collect(aas3.Verify(reference)))
}

func TestVerifyAdministrativeInformation(t *testing.T) {
	bad := &aas3.AdministrativeInformation{Revision: "3"}
	errs := xiter.Collect(aas3.Verify(bad))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Cause(), "AASd-005")

	good := &aas3.AdministrativeInformation{Version: "1", Revision: "3"}
	assert.Empty(t, xiter.Collect(aas3.Verify(good)))
}

func TestDescendEnvironment(t *testing.T) {
	env := validEnvironment()

	// Shell, its asset information, its submodel reference and key; the
	// submodel with administration, description, two elements, the
	// property's semantic reference chain, the nested collection member;
	// the concept description.
	descendants := xiter.Collect(aas3.Descend(env))
	assert.Len(t, descendants, 13)

	first := descendants[0]
	assert.Equal(t, aas3.KindAssetAdministrationShell, first.Kind())
}

func TestDescendOnceEnvironment(t *testing.T) {
	env := validEnvironment()

	children := xiter.Collect(aas3.DescendOnce(env))
	require.Len(t, children, 3)
	assert.Equal(t, aas3.KindAssetAdministrationShell, children[0].Kind())
	assert.Equal(t, aas3.KindSubmodel, children[1].Kind())
	assert.Equal(t, aas3.KindConceptDescription, children[2].Kind())
}

func TestDescribableContract(t *testing.T) {
	env := validEnvironment()
	var describable aas.Describable = env

	assert.Equal(t,
		xiter.Count(aas3.Descend(env)),
		xiter.Count(describable.Descend()))
	assert.Equal(t,
		xiter.Count(aas3.DescendOnce(env)),
		xiter.Count(describable.DescendOnce()))
}

func TestAcceptDispatchesConcreteKind(t *testing.T) {
	var kinds []string
	visitor := dispatch.NewVisitor(aas3.Schema).
		On(aas3.KindProperty, func(aas.Instance) { kinds = append(kinds, "property") }).
		On(aas3.KindKey, func(aas.Instance) { kinds = append(kinds, "key") })

	var property aas.Visitable = &aas3.Property{IDShort: "P"}
	property.Accept(visitor)

	var key aas.Visitable = &aas3.Key{Type: aas3.KeyGlobalReference, Value: "x"}
	key.Accept(visitor)

	assert.Equal(t, []string{"property", "key"}, kinds)
}

func TestCountPropertiesWithTransformer(t *testing.T) {
	counter := dispatch.NewTransformer(aas3.Schema, func(aas.Instance) int { return 0 }).
		On(aas3.KindProperty, func(aas.Instance) int { return 1 })

	total := 0
	for instance := range aas3.Descend(validEnvironment()) {
		total += counter.Transform(instance)
	}
	assert.Equal(t, 2, total)
}

func TestEnumRoundTrips(t *testing.T) {
	kt, err := aas3.ParseKeyTypes("GlobalReference")
	require.NoError(t, err)
	assert.Equal(t, aas3.KeyGlobalReference, kt)
	assert.Equal(t, "GlobalReference", kt.String())

	_, err = aas3.ParseKeyTypes("Bogus")
	assert.Error(t, err)

	rt, err := aas3.ParseReferenceTypes("ModelReference")
	require.NoError(t, err)
	assert.Equal(t, aas3.ModelReference, rt)

	dt, err := aas3.ParseDataTypeDefXSD("xs:int")
	require.NoError(t, err)
	assert.Equal(t, aas3.XSInt, dt)

	ak, err := aas3.ParseAssetKind("Instance")
	require.NoError(t, err)
	assert.Equal(t, aas3.AssetKindInstance, ak)
}
