package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/adoptme/pet-adoption-api/internal/core/domain"
	"github.com/adoptme/pet-adoption-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName"  validate:"required,min=2,max=50"`
	Email     string `json:"email"     validate:"required,email,min=5,max=50"`
	Password  string `json:"password"  validate:"required,min=6,max=100"`
	Role      string `json:"role"      validate:"omitempty,oneof=user admin"`
}

// updateUserRequest is the patchable subset of a user. The pets collection
// is not patchable here: only the adoption workflow mutates it.
type updateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=2,max=50"`
	LastName  *string `json:"lastName"  validate:"omitempty,min=2,max=50"`
	Email     *string `json:"email"     validate:"omitempty,email,min=5,max=50"`
	Password  *string `json:"password"  validate:"omitempty,min=6,max=100"`
	Role      *string `json:"role"      validate:"omitempty,oneof=user admin"`
}

func (r updateUserRequest) toPatch() ports.UserPatch {
	return ports.UserPatch{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Role:      r.Role,
	}
}

// Create handles POST /api/users.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  successEnvelope
// @Failure      400   {object}  errorEnvelope
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return domain.InvalidRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ValidationError(err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}

	return respondCreated(c, fmt.Sprintf("User %s %s created successfully", user.FirstName, user.LastName), user)
}

// List handles GET /api/users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return respondOK(c, "Users fetched successfully", users)
}

// GetByID handles GET /api/users/:id.
func (h *UserHandler) GetByID(c echo.Context) error {
	id := c.Param("id")

	user, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ResourceNotFound("User", id, map[string]string{"id": id})
	}

	return respondOK(c, "User fetched successfully", user)
}

// GetByEmail handles GET /api/users/email/:email.
func (h *UserHandler) GetByEmail(c echo.Context) error {
	email := c.Param("email")

	user, err := h.service.GetByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ResourceNotFound("User", email)
	}

	return respondOK(c, fmt.Sprintf("User %s fetched successfully", user.Email), user)
}

// Update handles PUT /api/users/:id.
func (h *UserHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return domain.InvalidRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ValidationError(err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ResourceNotFound("User", id)
	}

	return respondOK(c, fmt.Sprintf("User %s %s updated successfully", user.FirstName, user.LastName), user)
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	user, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ResourceNotFound("User", id, map[string]string{
			"message": fmt.Sprintf("User not found with id: %s", id),
		})
	}

	return respondOK(c, fmt.Sprintf("User %s %s deleted successfully", user.FirstName, user.LastName), user)
}
