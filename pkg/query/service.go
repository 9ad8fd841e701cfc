// Package query dispatches catalog requests to a filter or aggregate and
// returns the status and body the caller should send.
package query

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dtnitsch/fatigue-explorer/models"
	"github.com/dtnitsch/fatigue-explorer/pkg/analytics"
	"github.com/dtnitsch/fatigue-explorer/pkg/catalog"
	"github.com/dtnitsch/fatigue-explorer/pkg/category"
	"github.com/dtnitsch/fatigue-explorer/pkg/mapreduce"
)

// ModeSummary is the only supported mode value.
const ModeSummary = "summary"

// ErrMissingParameter is the message for a request with neither a category
// nor a mode.
const ErrMissingParameter = `A "category" or "mode=summary" parameter is required.`

// Options tune category queries.
type Options struct {
	// MaxWords caps the word list. Zero means unlimited.
	MaxWords int
	// MinConfidence is the default confidence cut. A request's
	// min_confidence replaces it.
	MinConfidence float64
}

// Service answers requests against one catalog. It holds no per-request
// state and is safe for concurrent use.
type Service struct {
	catalog   *catalog.Catalog
	analytics *analytics.Analytics
	opts      Options
}

func NewService(cat *catalog.Catalog, opts Options) *Service {
	return &Service{
		catalog:   cat,
		analytics: &analytics.Analytics{},
		opts:      opts,
	}
}

// Catalog returns the catalog the service reads.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Handle dispatches req. Summary mode takes precedence over a category.
// Unknown categories yield an empty 200 result. min_confidence is only
// read for category queries.
func (s *Service) Handle(req models.Request) models.Response {
	if s == nil || s.catalog == nil {
		return models.NewErrorResponse(http.StatusInternalServerError, catalog.ErrNotLoaded.Error())
	}

	mode := strings.ToLower(strings.TrimSpace(req.Mode))

	switch {
	case mode == ModeSummary:
		return s.handleSummary()
	case req.Category != "":
		// A present but blank category is unknown, not missing.
		minConfidence, ok := s.minConfidence(req.MinConfidence)
		if !ok {
			return models.NewErrorResponse(http.StatusBadRequest,
				fmt.Sprintf(`Invalid "min_confidence" %q: expected a number between 0 and 1.`, req.MinConfidence))
		}
		return s.handleCategory(req.Category, minConfidence)
	case mode != "":
		return models.NewErrorResponse(http.StatusBadRequest,
			fmt.Sprintf("Unsupported mode %q. %s", req.Mode, ErrMissingParameter))
	default:
		return models.NewErrorResponse(http.StatusBadRequest, ErrMissingParameter)
	}
}

func (s *Service) handleSummary() models.Response {
	return models.Response{
		Status: http.StatusOK,
		Body:   s.catalog.Summarize(),
	}
}

func (s *Service) handleCategory(key string, minConfidence float64) models.Response {
	c, ok := category.Resolve(key)
	if !ok {
		return models.Response{
			Status: http.StatusOK,
			Body:   models.EmptyCategoryResponse(),
		}
	}

	comments := s.catalog.FilterWithMinConfidence(c.Label(), minConfidence)
	counts := mapreduce.CountWords(comments, s.analytics)

	return models.Response{
		Status: http.StatusOK,
		Body: models.CategoryResponse{
			Comments: comments,
			Words:    mapreduce.WordEntries(counts, s.opts.MaxWords),
		},
	}
}

// minConfidence parses the request threshold, falling back to the service
// default when raw is empty. NaN and values outside [0,1] are rejected.
func (s *Service) minConfidence(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.opts.MinConfidence, true
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !(v >= 0 && v <= 1) {
		return 0, false
	}
	return v, true
}
