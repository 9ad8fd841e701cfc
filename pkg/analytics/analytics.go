// Package analytics turns comment text into word frequencies for word-cloud
// rendering.
package analytics

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinWordLength is the shortest token kept by WordFrequency.
const MinWordLength = 3

type Analytics struct{}

// Tokenize lower-cases text and splits it into contiguous runs of letters
// and digits. Everything else separates tokens.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// isNumeric reports whether a token parses entirely as a number, e.g. "500"
// or "1e5". Words ParseFloat also accepts, such as "inf" or "nan", do not
// start with a digit and stay words.
func isNumeric(token string) bool {
	if token == "" {
		return false
	}
	allDigits := true
	for _, r := range token {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return true
	}
	if token[0] < '0' || token[0] > '9' {
		return false
	}
	_, err := strconv.ParseFloat(token, 64)
	return err == nil
}

// keep reports whether a token belongs in the frequency map.
func keep(token string) bool {
	if utf8.RuneCountInString(token) < MinWordLength {
		return false
	}
	if _, stop := commonWords[token]; stop {
		return false
	}
	return !isNumeric(token)
}

// WordFrequency counts tokens of at least MinWordLength characters, skipping
// stop words and purely numeric tokens. No stemming is applied.
func (a *Analytics) WordFrequency(text string) map[string]int {
	frequencies := make(map[string]int)

	for _, word := range Tokenize(text) {
		if !keep(word) {
			continue
		}
		frequencies[word]++
	}

	return frequencies
}
