package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rankio/rankio-api/internal/core/domain"
)

// ctxIdentity extracts the identity assertion injected by the Auth
// middleware and performs a fast-fail check before any service call: a uid
// must be present (its presence proves the middleware ran), while display
// name and photo may legitimately be empty.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing identity claims")
	}

	name, _ := c.Get("display_name").(string)
	photo, _ := c.Get("photo_url").(string)

	return domain.Identity{UID: uid, DisplayName: name, PhotoURL: photo}, nil
}
