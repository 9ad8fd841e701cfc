package mapreduce

import (
	"github.com/dtnitsch/fatigue-explorer/models"
	"github.com/dtnitsch/fatigue-explorer/pkg/analytics"
)

// Map generates a word frequency map for a single comment's body.
func Map(comment models.Comment, a *analytics.Analytics) map[string]int {
	return a.WordFrequency(comment.Text)
}

// Reduce aggregates a slice of word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}

// CountWords maps every comment and reduces the results into one frequency
// map for the whole set.
func CountWords(comments []models.Comment, a *analytics.Analytics) map[string]int {
	intermediate := make([]map[string]int, 0, len(comments))
	for _, c := range comments {
		intermediate = append(intermediate, Map(c, a))
	}
	return Reduce(intermediate)
}
