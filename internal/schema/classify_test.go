package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		typeName string
		expected Category
	}{
		{name: "abstract domain object", typeName: AbstractStixDomainObject, expected: CategoryDomainObject},
		{name: "note container", typeName: "Note", expected: CategoryDomainObject},
		{name: "malware", typeName: "Malware", expected: CategoryDomainObject},
		{name: "case task", typeName: EntityTypeCaseTask, expected: CategoryDomainObject},
		{name: "abstract core relationship", typeName: AbstractStixCoreRelationship, expected: CategoryCoreRelationship},
		{name: "uses relationship", typeName: "uses", expected: CategoryCoreRelationship},
		{name: "related-to relationship", typeName: RelationRelatedTo, expected: CategoryCoreRelationship},
		{name: "sighting", typeName: StixSightingRelationship, expected: CategorySightingRelationship},
		{name: "abstract observable", typeName: AbstractStixCyberObservable, expected: CategoryCyberObservable},
		{name: "ipv4 observable", typeName: "IPv4-Addr", expected: CategoryCyberObservable},
		{name: "unknown type", typeName: "Unknown-Thing", expected: CategoryUnclassified},
		{name: "empty type", typeName: "", expected: CategoryUnclassified},
		{name: "case mismatch", typeName: "malware", expected: CategoryUnclassified},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.typeName))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for range 10 {
		assert.Equal(t, CategoryCyberObservable, Classify("Domain-Name"))
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsStixDomainObject("Report"))
	assert.False(t, IsStixDomainObject("uses"))

	assert.True(t, IsStixCoreRelationship("targets"))
	assert.False(t, IsStixCoreRelationship(StixSightingRelationship))

	assert.True(t, IsStixSightingRelationship(StixSightingRelationship))
	assert.False(t, IsStixSightingRelationship("Url"))

	assert.True(t, IsStixCyberObservable("Url"))
	assert.False(t, IsStixCyberObservable("Note"))
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "domain_object", CategoryDomainObject.String())
	assert.Equal(t, "core_relationship", CategoryCoreRelationship.String())
	assert.Equal(t, "sighting_relationship", CategorySightingRelationship.String())
	assert.Equal(t, "cyber_observable", CategoryCyberObservable.String())
	assert.Equal(t, "unclassified", CategoryUnclassified.String())
	assert.Equal(t, "unclassified", Category(42).String())
}

func TestCategory_AbstractType(t *testing.T) {
	assert.Equal(t, AbstractStixDomainObject, CategoryDomainObject.AbstractType())
	assert.Equal(t, AbstractStixCoreRelationship, CategoryCoreRelationship.AbstractType())
	assert.Equal(t, StixSightingRelationship, CategorySightingRelationship.AbstractType())
	assert.Equal(t, AbstractStixCyberObservable, CategoryCyberObservable.AbstractType())
	assert.Empty(t, CategoryUnclassified.AbstractType())
}
