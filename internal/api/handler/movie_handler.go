package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rankio/rankio-api/internal/core/domain"
	"github.com/rankio/rankio-api/internal/core/ports"
	"github.com/rankio/rankio-api/internal/core/translate"
)

// MovieHandler serves normalized movie snapshots.
type MovieHandler struct {
	service ports.MovieService
}

func NewMovieHandler(service ports.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

// Get handles GET /v1/movies/:id.
//
// @Summary      Fetch a movie snapshot from the metadata provider
// @Tags         movies
// @Produce      json
// @Param        id  path      string  true  "External movie id"
// @Success      200  {object}  movieResponse
// @Failure      404  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /v1/movies/{id} [get]
func (h *MovieHandler) Get(c echo.Context) error {
	movie, err := h.service.GetMovie(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "movie not found"})
		}
		if errors.Is(err, translate.ErrMalformedPayload) {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": "provider returned malformed metadata"})
		}
		return err
	}

	return c.JSON(http.StatusOK, movieResponse{
		ID:       movie.ID,
		Title:    movie.Title,
		Image:    movie.Image,
		Backdrop: movie.Backdrop,
	})
}
