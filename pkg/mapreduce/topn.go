package mapreduce

import (
	"fmt"
	"sort"

	"github.com/dtnitsch/fatigue-explorer/models"
)

type kv struct {
	Key   string
	Value int
}

// sorted orders counts by frequency, most frequent first, breaking ties
// alphabetically so output is stable across runs.
func sorted(wordCounts map[string]int) []kv {
	ss := make([]kv, 0, len(wordCounts))
	for k, v := range wordCounts {
		ss = append(ss, kv{k, v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	return ss
}

func clamp(n, size int) int {
	if n <= 0 || n > size {
		return size
	}
	return n
}

// WordEntries converts aggregated counts into word-cloud entries.
// A limit of zero or less returns every word.
func WordEntries(wordCounts map[string]int, limit int) []models.WordEntry {
	ss := sorted(wordCounts)
	limit = clamp(limit, len(ss))

	entries := make([]models.WordEntry, limit)
	for i := 0; i < limit; i++ {
		entries[i] = models.WordEntry{Text: ss[i].Key, Value: ss[i].Value}
	}
	return entries
}

// TopKeywords returns the top N keywords from aggregated word counts as formatted strings.
// Each string is formatted as "word:count" (e.g., "fog:42").
func TopKeywords(wordCounts map[string]int, n int) []string {
	ss := sorted(wordCounts)
	limit := clamp(n, len(ss))

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}

	return keywords
}
