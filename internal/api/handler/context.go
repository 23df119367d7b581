package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/adoptme/pet-adoption-api/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// fast-fails before any service call: a non-empty subject proves the
// middleware ran, and the role gates admin-only operations downstream.
func ctxClaims(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", domain.Unauthorized("missing authentication claims")
	}

	role, _ = c.Get("role").(string)
	return userID, role, nil
}
