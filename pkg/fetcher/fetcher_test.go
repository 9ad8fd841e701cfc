package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/comments.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewFetcher(5 * time.Second)

	body, err := f.GetBytes(context.Background(), srv.URL+"/comments.json")
	if err != nil {
		t.Fatalf("GetBytes() error = %v", err)
	}
	if string(body) != "[]" {
		t.Errorf("GetBytes() = %q, want []", body)
	}

	if _, err := f.GetBytes(context.Background(), srv.URL+"/missing"); err == nil {
		t.Error("GetBytes() expected error for 404")
	}
}

func TestGetBytesCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFetcherWithClient(srv.Client())
	if _, err := f.GetBytes(ctx, srv.URL); err == nil {
		t.Error("GetBytes() expected error for cancelled context")
	}
}
