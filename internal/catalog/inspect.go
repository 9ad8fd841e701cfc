package catalog

import (
	"math"
	"sort"

	"github.com/dtnitsch/fatigue-explorer/pkg/catalog"
	"github.com/dtnitsch/fatigue-explorer/pkg/category"
	"github.com/dtnitsch/fatigue-explorer/pkg/detector"
)

// InspectReport describes a loaded catalog.
type InspectReport struct {
	Source        string          `yaml:"source" json:"source"`
	Total         int             `yaml:"total" json:"total"`
	Categories    []CategoryCount `yaml:"categories" json:"categories"`
	Unclassified  int             `yaml:"unclassified" json:"unclassified"`
	UnknownLabels map[string]int  `yaml:"unknown_labels,omitempty" json:"unknown_labels,omitempty"`
	Confidence    ConfidenceStats `yaml:"confidence" json:"confidence"`
	Languages     map[string]int  `yaml:"languages,omitempty" json:"languages,omitempty"`
	LastImport    *ImportSummary  `yaml:"last_import,omitempty" json:"last_import,omitempty"`
}

type CategoryCount struct {
	Key   string `yaml:"key" json:"key"`
	Count int    `yaml:"count" json:"count"`
}

type ConfidenceStats struct {
	Min    float64 `yaml:"min" json:"min"`
	Max    float64 `yaml:"max" json:"max"`
	Mean   float64 `yaml:"mean" json:"mean"`
	Median float64 `yaml:"median" json:"median"`
}

type ImportSummary struct {
	ImportedAt           string  `yaml:"imported_at" json:"imported_at"`
	Source               string  `yaml:"source" json:"source"`
	ContentHash          string  `yaml:"content_hash" json:"content_hash"`
	SkippedDuplicates    int     `yaml:"skipped_duplicates" json:"skipped_duplicates"`
	SkippedLowConfidence int     `yaml:"skipped_low_confidence" json:"skipped_low_confidence"`
	MinConfidence        float64 `yaml:"min_confidence" json:"min_confidence"`
}

// Inspect summarises cat. Language detection runs only when det is non-nil.
func Inspect(cat *catalog.Catalog, det *detector.Detector) InspectReport {
	report := InspectReport{
		Source:       cat.Source(),
		Total:        cat.Len(),
		Unclassified: cat.Unclassified(),
	}

	summary := cat.Summarize()
	for _, c := range category.All() {
		report.Categories = append(report.Categories, CategoryCount{Key: c.Key(), Count: summary[c.Key()]})
	}

	if report.Unclassified > 0 {
		report.UnknownLabels = cat.UnknownLabels()
	}

	comments := cat.Comments()
	confidences := make([]float64, 0, len(comments))
	texts := make([]string, 0, len(comments))
	for _, c := range comments {
		confidences = append(confidences, c.Confidence)
		texts = append(texts, c.Text)
	}
	report.Confidence = confidenceStats(confidences)

	if det != nil {
		report.Languages = det.Distribution(texts)
	}

	return report
}

func confidenceStats(values []float64) ConfidenceStats {
	if len(values) == 0 {
		return ConfidenceStats{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return ConfidenceStats{
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   round3(sum / float64(n)),
		Median: round3(median),
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
