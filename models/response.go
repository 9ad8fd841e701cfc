package models

// WordEntry is one word-cloud item: a token and its frequency.
type WordEntry struct {
	Text  string `json:"text" yaml:"text"`
	Value int    `json:"value" yaml:"value"`
}

// CategoryResponse is the body returned for a category query.
type CategoryResponse struct {
	Comments []Comment   `json:"comments" yaml:"comments"`
	Words    []WordEntry `json:"words" yaml:"words"`
}

// EmptyCategoryResponse is returned for unknown categories. Both slices are
// non-nil so they encode as [] rather than null.
func EmptyCategoryResponse() CategoryResponse {
	return CategoryResponse{
		Comments: []Comment{},
		Words:    []WordEntry{},
	}
}

// Summary maps every category key to the number of catalog records carrying
// that category's label.
type Summary map[string]int

// ErrorResponse is the structured error body.
type ErrorResponse struct {
	Error string `json:"error" yaml:"error"`
}
