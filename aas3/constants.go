package aas3

// Key-type sets referenced by the reference constraints. Membership tests
// use maps so the constraint predicates stay O(1).

// GenericGloballyIdentifiables are key types usable as the first key of an
// external reference.
var GenericGloballyIdentifiables = map[KeyTypes]bool{
	KeyGlobalReference: true,
}

// AASIdentifiables are key types usable as the first key of a model
// reference.
var AASIdentifiables = map[KeyTypes]bool{
	KeyAssetAdministrationShell: true,
	KeyConceptDescription:       true,
	KeyIdentifiable:             true,
	KeySubmodel:                 true,
}

// GloballyIdentifiables are key types usable as the first key of any
// reference.
var GloballyIdentifiables = unionKeyTypes(GenericGloballyIdentifiables, AASIdentifiables)

// FragmentKeys are key types allowed after the first key of a model
// reference.
var FragmentKeys = map[KeyTypes]bool{
	KeyFragmentReference:         true,
	KeySubmodelElement:           true,
	KeySubmodelElementCollection: true,
	KeySubmodelElementList:       true,
	KeyProperty:                  true,
	KeyRange:                     true,
	KeyBlob:                      true,
	KeyFile:                      true,
}

func unionKeyTypes(sets ...map[KeyTypes]bool) map[KeyTypes]bool {
	union := make(map[KeyTypes]bool)
	for _, set := range sets {
		for key := range set {
			union[key] = true
		}
	}
	return union
}
