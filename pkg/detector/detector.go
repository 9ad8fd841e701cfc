// Package detector guesses the language of comment text so that
// 'catalog inspect' can show how much of a catalog is not English.
package detector

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Undetermined is the code reported when a text is too short or ambiguous.
const Undetermined = "und"

// MinWords is the fewest words a text needs before detection is attempted.
const MinWords = 3

// Languages the detector chooses between. Scraped comments are mostly
// English with a tail of European languages.
var Languages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Dutch,
}

type Detector struct {
	lingua lingua.LanguageDetector
}

// New builds a detector over Languages.
func New() *Detector {
	return &Detector{
		lingua: lingua.NewLanguageDetectorBuilder().
			FromLanguages(Languages...).
			Build(),
	}
}

// Detect returns the ISO 639-1 code of text's language, or Undetermined.
func (d *Detector) Detect(text string) string {
	if len(strings.Fields(text)) < MinWords {
		return Undetermined
	}
	lang, ok := d.lingua.DetectLanguageOf(text)
	if !ok {
		return Undetermined
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}

// Distribution counts texts per detected language code.
func (d *Detector) Distribution(texts []string) map[string]int {
	dist := make(map[string]int)
	for _, t := range texts {
		dist[d.Detect(t)]++
	}
	return dist
}
