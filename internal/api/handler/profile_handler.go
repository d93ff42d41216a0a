package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rankio/rankio-api/internal/core/domain"
	"github.com/rankio/rankio-api/internal/core/ports"
	"github.com/rankio/rankio-api/internal/core/service"
)

// ProfileHandler handles HTTP requests for handle availability and profile
// operations.
type ProfileHandler struct {
	profiles     ports.ProfileService
	availability ports.AvailabilityService
}

func NewProfileHandler(profiles ports.ProfileService, availability ports.AvailabilityService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, availability: availability}
}

// --- Request / Response types ---

type createProfileRequest struct {
	Handle string `json:"handle" validate:"required,min=3,max=25"`
}

type preferencesResponse struct {
	RatingSystem string   `json:"rating_system"`
	TierNames    []string `json:"tier_names"`
}

type profileResponse struct {
	UID         string              `json:"uid"`
	Handle      string              `json:"handle"`
	DisplayName string              `json:"display_name"`
	PhotoURL    string              `json:"photo_url"`
	Bio         string              `json:"bio"`
	Preferences preferencesResponse `json:"preferences"`
}

type availabilityResponse struct {
	Handle string `json:"handle"`
	Status string `json:"status"`
}

func toProfileResponse(u *domain.User) profileResponse {
	return profileResponse{
		UID:         u.UID,
		Handle:      u.Handle.String(),
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		Bio:         u.Bio,
		Preferences: preferencesResponse{
			RatingSystem: string(u.Preferences.RatingSystem),
			TierNames:    u.Preferences.TierNames[:],
		},
	}
}

// Availability handles GET /v1/handles/:handle/availability.
//
// @Summary      Check whether a handle can still be claimed
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        handle  path      string  true  "Candidate handle"
// @Success      200     {object}  availabilityResponse
// @Failure      401     {object}  map[string]string
// @Failure      503     {object}  map[string]string
// @Router       /v1/handles/{handle}/availability [get]
func (h *ProfileHandler) Availability(c echo.Context) error {
	result, err := h.availability.Check(c.Request().Context(), c.Param("handle"))
	if err != nil {
		// Indeterminate is not "available": the client must not commit.
		if errors.Is(err, service.ErrAvailabilityUnknown) {
			return c.JSON(http.StatusServiceUnavailable, availabilityResponse{
				Handle: result.Candidate,
				Status: string(ports.HandleUnknown),
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, availabilityResponse{
		Handle: result.Candidate,
		Status: string(result.Status),
	})
}

// Create handles POST /v1/profiles — the reservation commit.
//
// @Summary      Claim a handle and create the acting identity's profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProfileRequest  true  "Chosen handle"
// @Success      201   {object}  profileResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/profiles [post]
func (h *ProfileHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.profiles.CreateProfile(c.Request().Context(), ports.CreateProfileInput{
		Identity: identity,
		Handle:   req.Handle,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrHandleInvalid):
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "handle format invalid"})
		case errors.Is(err, domain.ErrHandleTaken):
			// Lost the commit race: the client should re-run the
			// availability check and pick another handle.
			return c.JSON(http.StatusConflict, map[string]string{"error": "handle already taken"})
		case errors.Is(err, domain.ErrProfileExists):
			return c.JSON(http.StatusConflict, map[string]string{"error": "profile already exists"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, toProfileResponse(user))
}

// Get handles GET /v1/profiles/:handle.
//
// @Summary      Fetch a public profile by handle
// @Tags         profiles
// @Produce      json
// @Param        handle  path      string  true  "Profile handle"
// @Success      200     {object}  profileResponse
// @Failure      404     {object}  map[string]string
// @Router       /v1/profiles/{handle} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := h.profiles.GetByHandle(c.Request().Context(), c.Param("handle"))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(user))
}
