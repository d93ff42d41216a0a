package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rankio/rankio-api/internal/core/domain"
	"github.com/rankio/rankio-api/internal/core/ports"
)

// ReviewHandler handles HTTP requests for review operations.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// --- Request / Response types ---

type createReviewRequest struct {
	MovieID  string  `json:"movie_id" validate:"required"`
	Rating   float64 `json:"rating" validate:"required,gt=0,lte=7"`
	Review   string  `json:"review" validate:"max=5000"`
	Favorite bool    `json:"favorite"`
}

type updateReviewRequest struct {
	Rating   float64 `json:"rating" validate:"required,gt=0,lte=7"`
	Review   string  `json:"review" validate:"max=5000"`
	Favorite bool    `json:"favorite"`
}

type movieResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	Backdrop string `json:"backdrop,omitempty"`
}

type reviewResponse struct {
	ID        string        `json:"id"`
	Author    string        `json:"author"`
	Movie     movieResponse `json:"movie"`
	Rating    float64       `json:"rating"`
	Review    string        `json:"review"`
	Favorite  bool          `json:"favorite"`
	CreatedAt int64         `json:"created_at"`
	LastEdit  int64         `json:"last_edit,omitempty"`
}

func toReviewResponse(r *domain.Review) reviewResponse {
	return reviewResponse{
		ID:     r.ID,
		Author: r.Author.String(),
		Movie: movieResponse{
			ID:       r.Movie.ID,
			Title:    r.Movie.Title,
			Image:    r.Movie.Image,
			Backdrop: r.Movie.Backdrop,
		},
		Rating:    r.Rating,
		Review:    r.Body,
		Favorite:  r.Favorite,
		CreatedAt: r.CreatedAt,
		LastEdit:  r.LastEdit,
	}
}

// Create handles POST /v1/reviews.
//
// @Summary      Publish a review as the acting identity
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Review details"
// @Success      201   {object}  reviewResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	review, err := h.service.Create(c.Request().Context(), ports.CreateReviewInput{
		ActorUID: identity.UID,
		MovieID:  req.MovieID,
		Rating:   req.Rating,
		Body:     req.Review,
		Favorite: req.Favorite,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "movie not found"})
		}
		if errors.Is(err, domain.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "acting identity has no profile"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, toReviewResponse(review))
}

// Update handles PUT /v1/reviews/:id.
//
// @Summary      Edit the acting identity's own review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Review id"
// @Param        body  body      updateReviewRequest  true  "Updated review"
// @Success      200   {object}  reviewResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/reviews/{id} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	review, err := h.service.Update(c.Request().Context(), ports.UpdateReviewInput{
		ID:       c.Param("id"),
		ActorUID: identity.UID,
		Rating:   req.Rating,
		Body:     req.Review,
		Favorite: req.Favorite,
	})
	if err != nil {
		if errors.Is(err, domain.ErrReviewNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "review not found"})
		}
		if errors.Is(err, domain.ErrNotReviewAuthor) {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "not the review author"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toReviewResponse(review))
}

// Get handles GET /v1/reviews/:id.
//
// @Summary      Fetch a review by id
// @Tags         reviews
// @Produce      json
// @Param        id  path      string  true  "Review id"
// @Success      200  {object}  reviewResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/reviews/{id} [get]
func (h *ReviewHandler) Get(c echo.Context) error {
	review, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrReviewNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "review not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toReviewResponse(review))
}

// ListByAuthor handles GET /v1/users/:handle/reviews.
//
// @Summary      List a user's reviews, newest first
// @Tags         reviews
// @Produce      json
// @Param        handle  path      string  true  "Author handle"
// @Success      200     {array}   reviewResponse
// @Failure      404     {object}  map[string]string
// @Router       /v1/users/{handle}/reviews [get]
func (h *ReviewHandler) ListByAuthor(c echo.Context) error {
	reviews, err := h.service.ListByAuthor(c.Request().Context(), c.Param("handle"))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
		}
		return err
	}

	resp := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, toReviewResponse(r))
	}
	return c.JSON(http.StatusOK, resp)
}
