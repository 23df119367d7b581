package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/adoptme/pet-adoption-api/internal/core/domain"
	"github.com/adoptme/pet-adoption-api/internal/core/ports"
)

// SessionHandler handles login and current-user lookups.
type SessionHandler struct {
	sessions ports.SessionService
	users    ports.UserService
}

func NewSessionHandler(sessions ports.SessionService, users ports.UserService) *SessionHandler {
	return &SessionHandler{sessions: sessions, users: users}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginPayload struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login handles POST /api/sessions/login.
//
// @Summary      Login
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  successEnvelope
// @Failure      400   {object}  errorEnvelope
// @Failure      401   {object}  errorEnvelope
// @Router       /api/sessions/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.InvalidRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ValidationError(err.Error())
	}

	token, user, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return respondOK(c, "Login successful", loginPayload{Token: token, User: user})
}

// Current handles GET /api/sessions/current. Requires the Auth middleware,
// which injects the token subject into the request context.
func (h *SessionHandler) Current(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.Unauthorized("session user no longer exists")
	}

	return respondOK(c, "Session fetched successfully", user)
}
