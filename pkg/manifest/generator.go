package manifest

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dtnitsch/fatigue-explorer/pkg/analytics"
	"github.com/dtnitsch/fatigue-explorer/pkg/catalog"
	"github.com/dtnitsch/fatigue-explorer/pkg/category"
	"github.com/dtnitsch/fatigue-explorer/pkg/mapreduce"
	"github.com/dtnitsch/fatigue-explorer/pkg/storage"
	"gopkg.in/yaml.v3"
)

// ErrManifestExists is returned by Write when the target exists and
// overwrite was not requested.
var ErrManifestExists = errors.New("manifest already exists")

// DefaultTopN is the number of keywords listed per category.
const DefaultTopN = 25

// Build summarises cat. Records below minConfidence are left out of the
// category counts and keywords.
func Build(cat *catalog.Catalog, topN int, minConfidence float64) SummaryManifest {
	if topN <= 0 {
		topN = DefaultTopN
	}
	a := &analytics.Analytics{}

	m := SummaryManifest{
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		Source:        cat.Source(),
		TotalComments: cat.Len(),
		Unclassified:  cat.Unclassified(),
		MinConfidence: minConfidence,
	}

	var intermediate []map[string]int
	for _, c := range category.All() {
		comments := cat.FilterWithMinConfidence(c.Label(), minConfidence)
		counts := mapreduce.CountWords(comments, a)
		intermediate = append(intermediate, counts)

		summary := CategorySummary{
			Key:         c.Key(),
			Label:       c.Label(),
			Count:       len(comments),
			TopKeywords: mapreduce.TopKeywords(counts, topN),
		}
		if len(comments) > 0 {
			total := 0.0
			for _, comment := range comments {
				total += comment.Confidence
			}
			summary.AvgConfidence = math.Round(total/float64(len(comments))*1000) / 1000
		}

		m.Categories = append(m.Categories, summary)
	}

	m.AggregateKeywords = mapreduce.TopKeywords(mapreduce.Reduce(intermediate), topN)
	return m
}

// Write marshals m as YAML to path and returns the path. An existing file is
// only replaced when overwrite is set.
func Write(m SummaryManifest, path string, overwrite bool, s *storage.Storage) (string, error) {
	if path == "" {
		path = fmt.Sprintf("reports/summary-%s.yaml", time.Now().Format("2006-01-02"))
	}
	if !overwrite && s.HasFile(path) {
		return "", fmt.Errorf("%w: %s (use --force to replace it)", ErrManifestExists, path)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("error marshalling manifest: %w", err)
	}

	if err := s.SaveFile(path, data); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}

	return path, nil
}
