package aas3

import "fmt"

// ReferenceTypes denotes whether a reference points at a model element or an
// external entity.
type ReferenceTypes uint8

const (
	ExternalReference ReferenceTypes = iota
	ModelReference
)

func (t ReferenceTypes) String() string {
	switch t {
	case ExternalReference:
		return "ExternalReference"
	case ModelReference:
		return "ModelReference"
	default:
		return fmt.Sprintf("ReferenceTypes(%d)", uint8(t))
	}
}

// ParseReferenceTypes maps the schema literal to the enum value.
func ParseReferenceTypes(s string) (ReferenceTypes, error) {
	switch s {
	case "ExternalReference":
		return ExternalReference, nil
	case "ModelReference":
		return ModelReference, nil
	default:
		return 0, fmt.Errorf("unknown reference type %q", s)
	}
}

// KeyTypes enumerates what a reference key may point at.
type KeyTypes uint8

const (
	KeyGlobalReference KeyTypes = iota
	KeyFragmentReference
	KeyAssetAdministrationShell
	KeyConceptDescription
	KeyIdentifiable
	KeySubmodel
	KeySubmodelElement
	KeySubmodelElementCollection
	KeySubmodelElementList
	KeyProperty
	KeyRange
	KeyBlob
	KeyFile
)

var keyTypeNames = map[KeyTypes]string{
	KeyGlobalReference:           "GlobalReference",
	KeyFragmentReference:         "FragmentReference",
	KeyAssetAdministrationShell:  "AssetAdministrationShell",
	KeyConceptDescription:        "ConceptDescription",
	KeyIdentifiable:              "Identifiable",
	KeySubmodel:                  "Submodel",
	KeySubmodelElement:           "SubmodelElement",
	KeySubmodelElementCollection: "SubmodelElementCollection",
	KeySubmodelElementList:       "SubmodelElementList",
	KeyProperty:                  "Property",
	KeyRange:                     "Range",
	KeyBlob:                      "Blob",
	KeyFile:                      "File",
}

func (t KeyTypes) String() string {
	if name, ok := keyTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("KeyTypes(%d)", uint8(t))
}

// ParseKeyTypes maps the schema literal to the enum value.
func ParseKeyTypes(s string) (KeyTypes, error) {
	for key, name := range keyTypeNames {
		if name == s {
			return key, nil
		}
	}
	return 0, fmt.Errorf("unknown key type %q", s)
}

// DataTypeDefXSD is the value type of a property, a subset of the XSD atomic
// types the model uses.
type DataTypeDefXSD uint8

const (
	XSString DataTypeDefXSD = iota
	XSBoolean
	XSInt
	XSDouble
	XSAnyURI
)

var dataTypeNames = map[DataTypeDefXSD]string{
	XSString:  "xs:string",
	XSBoolean: "xs:boolean",
	XSInt:     "xs:int",
	XSDouble:  "xs:double",
	XSAnyURI:  "xs:anyURI",
}

func (t DataTypeDefXSD) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DataTypeDefXSD(%d)", uint8(t))
}

// ParseDataTypeDefXSD maps the schema literal to the enum value.
func ParseDataTypeDefXSD(s string) (DataTypeDefXSD, error) {
	for key, name := range dataTypeNames {
		if name == s {
			return key, nil
		}
	}
	return 0, fmt.Errorf("unknown value type %q", s)
}

// AssetKind distinguishes asset types from asset instances.
type AssetKind uint8

const (
	AssetKindType AssetKind = iota
	AssetKindInstance
	AssetKindNotApplicable
)

func (k AssetKind) String() string {
	switch k {
	case AssetKindType:
		return "Type"
	case AssetKindInstance:
		return "Instance"
	case AssetKindNotApplicable:
		return "NotApplicable"
	default:
		return fmt.Sprintf("AssetKind(%d)", uint8(k))
	}
}

// ParseAssetKind maps the schema literal to the enum value.
func ParseAssetKind(s string) (AssetKind, error) {
	switch s {
	case "Type":
		return AssetKindType, nil
	case "Instance":
		return AssetKindInstance, nil
	case "NotApplicable":
		return AssetKindNotApplicable, nil
	default:
		return 0, fmt.Errorf("unknown asset kind %q", s)
	}
}
