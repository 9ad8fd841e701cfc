package models

import "encoding/json"

// Comment is a single classified comment record from the catalog.
// JSON keys follow the file emitted by the classification pipeline.
type Comment struct {
	CommentID      string  `json:"comment_id,omitempty" yaml:"comment_id,omitempty"`
	PostID         string  `json:"post_id,omitempty" yaml:"post_id,omitempty"`
	Subreddit      string  `json:"subreddit,omitempty" yaml:"subreddit,omitempty"`
	PostTitle      string  `json:"post_title" yaml:"post_title"`
	Text           string  `json:"comment_text_cleaned" yaml:"text"`
	Classification string  `json:"fatigue_classification" yaml:"fatigue_classification"`
	Confidence     float64 `json:"classification_confidence" yaml:"confidence"`
}

// commentWire accepts both the pipeline's long keys and the short
// "text"/"confidence" keys.
type commentWire struct {
	CommentID      json.RawMessage `json:"comment_id"`
	PostID         json.RawMessage `json:"post_id"`
	Subreddit      string          `json:"subreddit"`
	PostTitle      string          `json:"post_title"`
	TextCleaned    *string         `json:"comment_text_cleaned"`
	Text           *string         `json:"text"`
	Classification string          `json:"fatigue_classification"`
	Confidence     *float64        `json:"classification_confidence"`
	ShortConf      *float64        `json:"confidence"`
}

// UnmarshalJSON decodes a record, tolerating numeric ids and the short field
// names used by older exports.
func (c *Comment) UnmarshalJSON(data []byte) error {
	var w commentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*c = Comment{
		CommentID:      rawID(w.CommentID),
		PostID:         rawID(w.PostID),
		Subreddit:      w.Subreddit,
		PostTitle:      w.PostTitle,
		Classification: w.Classification,
	}

	switch {
	case w.TextCleaned != nil:
		c.Text = *w.TextCleaned
	case w.Text != nil:
		c.Text = *w.Text
	}

	switch {
	case w.Confidence != nil:
		c.Confidence = *w.Confidence
	case w.ShortConf != nil:
		c.Confidence = *w.ShortConf
	}

	return nil
}

// rawID renders a JSON string or number id as a plain string.
func rawID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
