package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dtnitsch/fatigue-explorer/models"
	"github.com/dtnitsch/fatigue-explorer/pkg/catalog"
	"github.com/dtnitsch/fatigue-explorer/pkg/category"
	"github.com/dtnitsch/fatigue-explorer/pkg/query"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cat := catalog.New([]models.Comment{{
		Text:           "I feel tired and foggy today",
		Classification: category.Cognitive.Label(),
		Confidence:     0.9,
	}}, "test")
	srv := httptest.NewServer(New("", query.NewService(cat, query.Options{}), quietLogger()).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body of %s: %v", url, err)
	}
	return resp, body
}

func TestCommentsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantKey    string
	}{
		{"category", PathComments + "?category=cognitive", http.StatusOK, "comments"},
		{"netlify alias", PathNetlify + "?category=cognitive", http.StatusOK, "words"},
		{"summary", PathComments + "?mode=summary", http.StatusOK, "fatigue-not-peptides"},
		{"unknown category", PathComments + "?category=foo", http.StatusOK, "comments"},
		{"missing parameters", PathComments, http.StatusBadRequest, "error"},
		{"bad threshold", PathComments + "?category=cognitive&min_confidence=2", http.StatusBadRequest, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, srv.URL+tt.path)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
			if _, ok := body[tt.wantKey]; !ok {
				t.Errorf("body %v missing key %q", body, tt.wantKey)
			}
		})
	}
}

func TestUnknownCategoryEncodesArrays(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + PathComments + "?category=foo")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(raw); got != "{\"comments\":[],\"words\":[]}\n" {
		t.Errorf("body = %s", got)
	}
}

func TestSummaryBody(t *testing.T) {
	srv := newTestServer(t)
	_, body := get(t, srv.URL+PathComments+"?mode=summary")

	want := map[string]float64{
		"cognitive": 1, "physical": 0, "emotional": 0,
		"general": 0, "fatigue-not-peptides": 0, "irrelevant": 0,
	}
	if len(body) != len(want) {
		t.Errorf("summary has %d keys, want %d", len(body), len(want))
	}
	for k, v := range want {
		if body[k] != v {
			t.Errorf("summary[%q] = %v, want %v", k, body[k], v)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+PathComments+"?category=cognitive", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+PathComments, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, body := get(t, srv.URL+PathHealth)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if body["status"] != "healthy" || body["comments"] != float64(1) {
		t.Errorf("body = %v", body)
	}
}

func TestNilCatalog(t *testing.T) {
	h := New("", query.NewService(nil, query.Options{}), quietLogger()).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, PathComments+"?mode=summary", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("comments status = %d, want 500", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, PathHealth, nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("health status = %d, want 503", rec.Code)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	h := recoveryMiddleware(quietLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	var body models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Error == "" {
		t.Errorf("body = %q, err = %v", rec.Body.String(), err)
	}
}

func TestRunShutsDownOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := l.Addr().String()
	_ = l.Close()

	s := New(addr, query.NewService(catalog.New(nil, "empty"), query.Options{}), quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// Wait for the listener.
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := http.Get("http://" + addr + PathHealth)
		if err == nil {
			resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server never came up: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
