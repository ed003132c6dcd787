package schema

// Classify returns the category of typeName. Unknown names, including the
// empty string, are CategoryUnclassified. Matching is case sensitive.
func Classify(typeName string) Category {
	if c, ok := registry[typeName]; ok {
		return c
	}

	return CategoryUnclassified
}

// IsStixDomainObject reports whether typeName is a STIX domain object.
func IsStixDomainObject(typeName string) bool {
	return Classify(typeName) == CategoryDomainObject
}

// IsStixCoreRelationship reports whether typeName is a STIX core relationship.
func IsStixCoreRelationship(typeName string) bool {
	return Classify(typeName) == CategoryCoreRelationship
}

// IsStixSightingRelationship reports whether typeName is the STIX sighting relationship.
func IsStixSightingRelationship(typeName string) bool {
	return Classify(typeName) == CategorySightingRelationship
}

// IsStixCyberObservable reports whether typeName is a STIX cyber observable.
func IsStixCyberObservable(typeName string) bool {
	return Classify(typeName) == CategoryCyberObservable
}
