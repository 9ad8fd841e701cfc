// Package category defines the closed set of fatigue categories and the
// classification labels the external classifier assigns to them.
package category

import "strings"

// Category is a short machine-friendly key a client uses to request a subset
// of the catalog.
type Category int

const (
	Cognitive Category = iota + 1
	Physical
	Emotional
	General
	FatigueNotPeptides
	Irrelevant
)

// All returns every category in canonical order. Summary aggregation relies
// on this order for first-match-wins counting.
func All() []Category {
	return []Category{
		Cognitive,
		Physical,
		Emotional,
		General,
		FatigueNotPeptides,
		Irrelevant,
	}
}

// Key returns the client-facing identifier, e.g. "fatigue-not-peptides".
func (c Category) Key() string {
	switch c {
	case Cognitive:
		return "cognitive"
	case Physical:
		return "physical"
	case Emotional:
		return "emotional"
	case General:
		return "general"
	case FatigueNotPeptides:
		return "fatigue-not-peptides"
	case Irrelevant:
		return "irrelevant"
	default:
		return ""
	}
}

// Label returns the full classification string stored on catalog records.
func (c Category) Label() string {
	switch c {
	case Cognitive:
		return "cognitive fatigue related to peptides"
	case Physical:
		return "physical fatigue related to peptides"
	case Emotional:
		return "emotional fatigue related to peptides"
	case General:
		return "general peptide discussion, no fatigue mentioned"
	case FatigueNotPeptides:
		return "fatigue mentioned, but not related to peptides"
	case Irrelevant:
		return "irrelevant or other topic"
	default:
		return ""
	}
}

func (c Category) String() string {
	return c.Key()
}

// Resolve maps a case-insensitive key to its category. Unknown keys return
// false; that is a normal outcome, not an error.
func Resolve(key string) (Category, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, c := range All() {
		if c.Key() == key {
			return c, true
		}
	}
	return 0, false
}

// FromLabel returns the category whose label equals label exactly.
func FromLabel(label string) (Category, bool) {
	for _, c := range All() {
		if c.Label() == label {
			return c, true
		}
	}
	return 0, false
}

// Keys lists every category key in canonical order.
func Keys() []string {
	keys := make([]string, 0, len(All()))
	for _, c := range All() {
		keys = append(keys, c.Key())
	}
	return keys
}
