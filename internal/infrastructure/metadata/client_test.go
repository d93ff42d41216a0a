package metadata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rankio/rankio-api/internal/core/domain"
	"github.com/rankio/rankio-api/internal/core/translate"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"}, zerolog.Nop())
}

func TestClient_FetchMovie_Localized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "test-key" {
			t.Fatalf("api key not forwarded")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 603,
			"title": "Matrix",
			"original_title": "The Matrix",
			"language": "es",
			"image": "/poster.jpg",
			"backdrop": "/backdrop.jpg"
		}`))
	})

	movie, err := c.FetchMovie(context.Background(), "603")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if movie.ID != "603" || movie.Title != "Matrix" {
		t.Fatalf("unexpected movie: %+v", movie)
	}
	if movie.Backdrop != "/backdrop.jpg" {
		t.Fatalf("backdrop not carried: %+v", movie)
	}
}

func TestClient_FetchMovie_ReferenceLanguageUsesOriginalTitle(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"id": "603",
			"title": "dubbed title",
			"original_title": "The Matrix",
			"language": "en",
			"image": "/poster.jpg"
		}`))
	})

	movie, err := c.FetchMovie(context.Background(), "603")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if movie.Title != "The Matrix" {
		t.Fatalf("expected original title, got %q", movie.Title)
	}
}

func TestClient_FetchMovie_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.FetchMovie(context.Background(), "999999")
	if !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestClient_FetchMovie_MissingRequiredFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 603, "language": "en"}`))
	})

	_, err := c.FetchMovie(context.Background(), "603")
	if !errors.Is(err, translate.ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestClient_FetchMovie_ProviderError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.FetchMovie(context.Background(), "603")
	if err == nil {
		t.Fatal("expected error on 500")
	}
	if errors.Is(err, domain.ErrMovieNotFound) || errors.Is(err, translate.ErrMalformedPayload) {
		t.Fatalf("transient failure must stay distinguishable: %v", err)
	}
}
