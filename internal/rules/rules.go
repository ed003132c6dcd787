// Package rules holds the static definitions of the inference rules.
// Definitions are data only. Nothing here runs a rule.
package rules

import (
	"errors"
	"slices"

	"github.com/stixsettings/stixsettings/internal/schema"
)

// ErrRuleNotFound is returned by Get for an unknown rule id.
var ErrRuleNotFound = errors.New("rule not found")

// Filter selects the entities a rule reacts to.
type Filter struct {
	Types []string `json:"types"`
}

// Attribute names an attribute a rule watches for changes.
type Attribute struct {
	Name string `json:"name"`
}

// Scope pairs a live filter with the attributes it watches.
type Scope struct {
	Filters    Filter      `json:"filters"`
	Attributes []Attribute `json:"attributes"`
}

// Definition describes one inference rule.
type Definition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Scan        Filter  `json:"scan"` // used on rescan
	Scopes      []Scope `json:"scopes"`
}

// RelatedToRelated is the related-to propagation test rule.
func RelatedToRelated() Definition {
	filter := Filter{Types: []string{schema.RelationRelatedTo}}

	return Definition{
		ID:          "related_related",
		Name:        "Related testing",
		Description: "Test related rule",
		Scan:        Filter{Types: []string{schema.RelationRelatedTo}},
		Scopes: []Scope{{
			Filters: filter,
			Attributes: []Attribute{
				{Name: "start_time"},
				{Name: "stop_time"},
				{Name: "confidence"},
				{Name: "object_marking_refs"},
			},
		}},
	}
}

// All returns every known definition ordered by id. Each call builds new values.
func All() []Definition {
	return []Definition{RelatedToRelated()}
}

// Get returns the definition with the given id.
func Get(id string) (Definition, error) {
	for _, d := range All() {
		if d.ID == id {
			return d, nil
		}
	}

	return Definition{}, ErrRuleNotFound
}

// Scans reports whether a rescan of the rule visits entities of entityType.
func (d Definition) Scans(entityType string) bool {
	return slices.Contains(d.Scan.Types, entityType)
}
