// Package manifest builds the YAML report written by 'report'.
package manifest

// SummaryManifest is a lightweight overview of a catalog: how many records
// each category holds and which words dominate it.
type SummaryManifest struct {
	GeneratedAt       string            `yaml:"generated_at"`
	Source            string            `yaml:"source"`
	TotalComments     int               `yaml:"total_comments"`
	Unclassified      int               `yaml:"unclassified"`
	MinConfidence     float64           `yaml:"min_confidence"`
	AggregateKeywords []string          `yaml:"aggregate_keywords"`
	Categories        []CategorySummary `yaml:"categories"`
}

// CategorySummary holds the count, confidence and top keywords for one
// category.
type CategorySummary struct {
	Key           string   `yaml:"key"`
	Label         string   `yaml:"label"`
	Count         int      `yaml:"count"`
	AvgConfidence float64  `yaml:"avg_confidence"`
	TopKeywords   []string `yaml:"top_keywords"`
}
