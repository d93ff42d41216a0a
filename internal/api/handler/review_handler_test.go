package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rankio/rankio-api/internal/core/domain"
	"github.com/rankio/rankio-api/internal/core/ports"
)

type stubReviewService struct {
	createFn func(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error)
	updateFn func(ctx context.Context, in ports.UpdateReviewInput) (*domain.Review, error)
	getFn    func(ctx context.Context, id string) (*domain.Review, error)
	listFn   func(ctx context.Context, handle string) ([]*domain.Review, error)
}

func (s *stubReviewService) Create(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
	return s.createFn(ctx, in)
}

func (s *stubReviewService) Update(ctx context.Context, in ports.UpdateReviewInput) (*domain.Review, error) {
	return s.updateFn(ctx, in)
}

func (s *stubReviewService) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	return s.getFn(ctx, id)
}

func (s *stubReviewService) ListByAuthor(ctx context.Context, handle string) ([]*domain.Review, error) {
	return s.listFn(ctx, handle)
}

func sampleReview() *domain.Review {
	return &domain.Review{
		ID:     "rev-1",
		Author: "alice",
		Movie: domain.Movie{
			ID:       "603",
			Title:    "The Matrix",
			Image:    "/poster.jpg",
			Backdrop: "/backdrop.jpg",
		},
		Rating:    6.5,
		Body:      "whoa",
		Favorite:  true,
		CreatedAt: 1700000000000,
	}
}

func TestReviewHandler_Create_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubReviewService{
		createFn: func(_ context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
			if in.ActorUID != "uid-1" || in.MovieID != "603" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return sampleReview(), nil
		},
	}
	h := NewReviewHandler(stub)

	body := `{"movie_id":"603","rating":6.5,"review":"whoa","favorite":true}`
	c, rec := newTestContext(e, http.MethodPost, "/v1/reviews", body)
	c.Set("uid", "uid-1")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["author"] != "alice" {
		t.Fatalf("unexpected author: %v", resp["author"])
	}
	movie, ok := resp["movie"].(map[string]any)
	if !ok || movie["backdrop"] != "/backdrop.jpg" {
		t.Fatalf("expected embedded movie snapshot, got %v", resp["movie"])
	}
}

func TestReviewHandler_Create_RatingOutOfRange(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewReviewHandler(&stubReviewService{})

	c, _ := newTestContext(e, http.MethodPost, "/v1/reviews", `{"movie_id":"603","rating":8}`)
	c.Set("uid", "uid-1")

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestReviewHandler_Create_NoProfile(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubReviewService{
		createFn: func(context.Context, ports.CreateReviewInput) (*domain.Review, error) {
			return nil, domain.ErrProfileNotFound
		},
	}
	h := NewReviewHandler(stub)

	c, rec := newTestContext(e, http.MethodPost, "/v1/reviews", `{"movie_id":"603","rating":5}`)
	c.Set("uid", "uid-unknown")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestReviewHandler_Update_NotAuthor(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubReviewService{
		updateFn: func(context.Context, ports.UpdateReviewInput) (*domain.Review, error) {
			return nil, domain.ErrNotReviewAuthor
		},
	}
	h := NewReviewHandler(stub)

	c, rec := newTestContext(e, http.MethodPut, "/", `{"rating":3,"review":"meh"}`)
	c.Set("uid", "uid-2")
	c.SetParamNames("id")
	c.SetParamValues("rev-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestReviewHandler_Get_NotFound(t *testing.T) {
	e := echo.New()

	stub := &stubReviewService{
		getFn: func(context.Context, string) (*domain.Review, error) {
			return nil, domain.ErrReviewNotFound
		},
	}
	h := NewReviewHandler(stub)

	c, rec := newTestContext(e, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestReviewHandler_ListByAuthor(t *testing.T) {
	e := echo.New()

	stub := &stubReviewService{
		listFn: func(_ context.Context, handle string) ([]*domain.Review, error) {
			if handle != "alice" {
				t.Fatalf("unexpected handle: %s", handle)
			}
			return []*domain.Review{sampleReview()}, nil
		},
	}
	h := NewReviewHandler(stub)

	c, rec := newTestContext(e, http.MethodGet, "/", "")
	c.SetParamNames("handle")
	c.SetParamValues("alice")

	if err := h.ListByAuthor(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "rev-1" {
		t.Fatalf("unexpected list payload: %v", resp)
	}
}
