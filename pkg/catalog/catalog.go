// Package catalog holds the static, pre-classified comment collection and the
// filter and count operations the query service runs over it.
package catalog

import (
	"errors"

	"github.com/dtnitsch/fatigue-explorer/models"
	"github.com/dtnitsch/fatigue-explorer/pkg/category"
)

// ErrNotLoaded is returned when an operation needs a catalog that was never built.
var ErrNotLoaded = errors.New("comment catalog is not loaded")

// Catalog is an immutable, ordered collection of classified comments. It is
// safe for concurrent use because nothing mutates it after New returns.
type Catalog struct {
	comments []models.Comment
	source   string
}

// New builds a catalog from records in iteration order. The slice is copied.
func New(comments []models.Comment, source string) *Catalog {
	cp := make([]models.Comment, len(comments))
	copy(cp, comments)
	return &Catalog{comments: cp, source: source}
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.comments)
}

// Source describes where the catalog was loaded from.
func (c *Catalog) Source() string {
	return c.source
}

// Comments returns a copy of every record in catalog order.
func (c *Catalog) Comments() []models.Comment {
	cp := make([]models.Comment, len(c.comments))
	copy(cp, c.comments)
	return cp
}

// Filter returns the records whose classification equals label exactly, in
// catalog order. The result is never nil.
func (c *Catalog) Filter(label string) []models.Comment {
	return c.FilterWithMinConfidence(label, 0)
}

// FilterWithMinConfidence is Filter with an extra confidence >= min predicate.
func (c *Catalog) FilterWithMinConfidence(label string, min float64) []models.Comment {
	matches := []models.Comment{}
	for _, comment := range c.comments {
		if comment.Classification != label {
			continue
		}
		if comment.Confidence < min {
			continue
		}
		matches = append(matches, comment)
	}
	return matches
}

// Summarize counts records per category key. Every key is present, zero
// when nothing matches. A record counts toward the first category, in
// canonical order, whose label it carries. Records with unknown labels are
// not counted; see Unclassified.
func (c *Catalog) Summarize() models.Summary {
	summary := make(models.Summary, len(category.All()))
	for _, cat := range category.All() {
		summary[cat.Key()] = 0
	}

	for _, comment := range c.comments {
		for _, cat := range category.All() {
			if comment.Classification == cat.Label() {
				summary[cat.Key()]++
				break
			}
		}
	}

	return summary
}

// Unclassified returns the number of records whose label matches no category.
func (c *Catalog) Unclassified() int {
	n := 0
	for _, comment := range c.comments {
		if _, ok := category.FromLabel(comment.Classification); !ok {
			n++
		}
	}
	return n
}

// UnknownLabels returns each unrecognised label and how often it occurs.
func (c *Catalog) UnknownLabels() map[string]int {
	labels := make(map[string]int)
	for _, comment := range c.comments {
		if _, ok := category.FromLabel(comment.Classification); !ok {
			labels[comment.Classification]++
		}
	}
	return labels
}
