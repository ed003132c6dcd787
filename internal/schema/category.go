// Package schema classifies entity type names into the abstract STIX categories
// used by entity settings.
package schema

// Category is the abstract grouping a type name belongs to.
type Category int

const (
	// CategoryUnclassified is used for any type name outside the known STIX hierarchies.
	CategoryUnclassified Category = iota
	// CategoryDomainObject groups STIX domain objects and containers.
	CategoryDomainObject
	// CategoryCoreRelationship groups STIX core relationships.
	CategoryCoreRelationship
	// CategorySightingRelationship is the STIX sighting relationship.
	CategorySightingRelationship
	// CategoryCyberObservable groups STIX cyber observables.
	CategoryCyberObservable
)

const (
	// AbstractStixDomainObject is the abstract domain object type name.
	AbstractStixDomainObject = "Stix-Domain-Object"
	// AbstractStixCoreRelationship is the abstract core relationship type name.
	AbstractStixCoreRelationship = "stix-core-relationship"
	// AbstractStixCyberObservable is the abstract cyber observable type name.
	AbstractStixCyberObservable = "Stix-Cyber-Observable"
	// StixSightingRelationship is both the abstract and the only concrete sighting type name.
	StixSightingRelationship = "stix-sighting-relationship"
)

var categoryNames = map[Category]string{
	CategoryUnclassified:         "unclassified",
	CategoryDomainObject:         "domain_object",
	CategoryCoreRelationship:     "core_relationship",
	CategorySightingRelationship: "sighting_relationship",
	CategoryCyberObservable:      "cyber_observable",
}

// String returns the snake case name of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}

	return categoryNames[CategoryUnclassified]
}

// AbstractType returns the abstract type name of the category, or an empty
// string for CategoryUnclassified.
func (c Category) AbstractType() string {
	switch c {
	case CategoryDomainObject:
		return AbstractStixDomainObject
	case CategoryCoreRelationship:
		return AbstractStixCoreRelationship
	case CategorySightingRelationship:
		return StixSightingRelationship
	case CategoryCyberObservable:
		return AbstractStixCyberObservable
	case CategoryUnclassified:
		return ""
	}

	return ""
}
