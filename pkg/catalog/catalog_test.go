package catalog

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/fatigue-explorer/models"
	"github.com/dtnitsch/fatigue-explorer/pkg/category"
)

func label(c category.Category) string {
	return c.Label()
}

func testCatalog() *Catalog {
	return New([]models.Comment{
		{CommentID: "1", Text: "I feel tired and foggy today", Classification: label(category.Cognitive), Confidence: 0.9},
		{CommentID: "2", Text: "legs ache after dosing", Classification: label(category.Physical), Confidence: 0.65},
		{CommentID: "3", Text: "brain fog again", Classification: label(category.Cognitive), Confidence: 0.72},
		{CommentID: "4", Text: "where to buy", Classification: label(category.General), Confidence: 0.99},
		{CommentID: "5", Text: "???", Classification: "Cognitive Fatigue Related To Peptides", Confidence: 0.5},
		{CommentID: "6", Text: "", Classification: "", Confidence: 0.1},
	}, "test")
}

func TestSingleRecordScenario(t *testing.T) {
	record := models.Comment{Text: "I feel tired and foggy today", Classification: label(category.Cognitive), Confidence: 0.9}
	cat := New([]models.Comment{record}, "scenario")

	if got := cat.Filter(label(category.Cognitive)); !reflect.DeepEqual(got, []models.Comment{record}) {
		t.Errorf("Filter(cognitive) = %+v, want the single record", got)
	}
	if got := cat.Filter(label(category.Physical)); len(got) != 0 {
		t.Errorf("Filter(physical) = %+v, want empty", got)
	}

	want := models.Summary{
		"cognitive": 1, "physical": 0, "emotional": 0,
		"general": 0, "fatigue-not-peptides": 0, "irrelevant": 0,
	}
	if got := cat.Summarize(); !reflect.DeepEqual(got, want) {
		t.Errorf("Summarize() = %v, want %v", got, want)
	}
}

func TestFilter(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name    string
		label   string
		min     float64
		wantIDs []string
	}{
		{"keeps catalog order", label(category.Cognitive), 0, []string{"1", "3"}},
		{"label match is case-sensitive", "cognitive fatigue related to peptides", 0, []string{"1", "3"}},
		{"threshold removes low confidence", label(category.Cognitive), 0.8, []string{"1"}},
		{"threshold is inclusive", label(category.Physical), 0.65, []string{"2"}},
		{"no match", label(category.Emotional), 0, []string{}},
		{"unknown label", "not a label", 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cat.FilterWithMinConfidence(tt.label, tt.min)
			if got == nil {
				t.Fatal("result is nil, want non-nil slice")
			}
			ids := []string{}
			for _, c := range got {
				ids = append(ids, c.CommentID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("ids = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

func TestFilterResultsAreSubsets(t *testing.T) {
	cat := testCatalog()
	for _, c := range category.All() {
		all := cat.Filter(c.Label())
		cut := cat.FilterWithMinConfidence(c.Label(), 0.7)
		if len(cut) > len(all) {
			t.Errorf("%s: thresholded result larger than unthresholded", c)
		}
		for _, rec := range all {
			if rec.Classification != c.Label() {
				t.Errorf("%s: record %q has label %q", c, rec.CommentID, rec.Classification)
			}
		}
	}
}

func TestSummarize(t *testing.T) {
	cat := testCatalog()
	got := cat.Summarize()

	want := models.Summary{
		"cognitive": 2, "physical": 1, "emotional": 0,
		"general": 1, "fatigue-not-peptides": 0, "irrelevant": 0,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summarize() = %v, want %v", got, want)
	}

	total := 0
	for _, n := range got {
		total += n
	}
	if total+cat.Unclassified() != cat.Len() {
		t.Errorf("summary total %d + unclassified %d != len %d", total, cat.Unclassified(), cat.Len())
	}
}

func TestSummarizeEmptyCatalog(t *testing.T) {
	got := New(nil, "empty").Summarize()
	if len(got) != len(category.All()) {
		t.Fatalf("Summarize() has %d keys, want %d", len(got), len(category.All()))
	}
	for k, v := range got {
		if v != 0 {
			t.Errorf("Summarize()[%q] = %d, want 0", k, v)
		}
	}
}

func TestUnknownLabels(t *testing.T) {
	cat := testCatalog()
	if got := cat.Unclassified(); got != 2 {
		t.Errorf("Unclassified() = %d, want 2", got)
	}
	want := map[string]int{"Cognitive Fatigue Related To Peptides": 1, "": 1}
	if got := cat.UnknownLabels(); !reflect.DeepEqual(got, want) {
		t.Errorf("UnknownLabels() = %v, want %v", got, want)
	}
}

func TestNewCopiesInput(t *testing.T) {
	in := []models.Comment{{CommentID: "a", Classification: label(category.Irrelevant)}}
	cat := New(in, "copy")
	in[0].CommentID = "mutated"

	if got := cat.Comments()[0].CommentID; got != "a" {
		t.Errorf("catalog saw caller mutation: %q", got)
	}

	out := cat.Comments()
	out[0].CommentID = "mutated"
	if got := cat.Comments()[0].CommentID; got != "a" {
		t.Errorf("catalog saw mutation through Comments(): %q", got)
	}
}
