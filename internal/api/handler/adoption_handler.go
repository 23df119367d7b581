package handler

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adoptme/pet-adoption-api/internal/api/metrics"
	"github.com/adoptme/pet-adoption-api/internal/core/domain"
	"github.com/adoptme/pet-adoption-api/internal/core/ports"
)

// AdoptionHandler handles HTTP requests for the adoption workflow.
type AdoptionHandler struct {
	service ports.AdoptionService
}

func NewAdoptionHandler(service ports.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{service: service}
}

type createAdoptionRequest struct {
	PetID        string     `json:"petId"  validate:"required"`
	UserID       string     `json:"userId" validate:"required"`
	Status       string     `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	AdoptionDate *time.Time `json:"adoptionDate"`
}

type updateAdoptionRequest struct {
	Status       *string    `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	AdoptionDate *time.Time `json:"adoptionDate"`
}

func (r updateAdoptionRequest) toPatch() ports.AdoptionPatch {
	patch := ports.AdoptionPatch{AdoptionDate: r.AdoptionDate}
	if r.Status != nil {
		s := domain.AdoptionStatus(*r.Status)
		patch.Status = &s
	}
	return patch
}

// Create handles POST /api/adoptions.
//
// @Summary      Adopt a pet
// @Tags         adoptions
// @Accept       json
// @Produce      json
// @Param        body  body      createAdoptionRequest  true  "Adoption request"
// @Success      201   {object}  successEnvelope
// @Failure      400   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /api/adoptions [post]
func (h *AdoptionHandler) Create(c echo.Context) error {
	var req createAdoptionRequest
	if err := c.Bind(&req); err != nil {
		return domain.InvalidRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ValidationError(err.Error())
	}

	input := ports.CreateAdoptionInput{
		PetID:  req.PetID,
		UserID: req.UserID,
		Status: domain.AdoptionStatus(req.Status),
	}
	if req.AdoptionDate != nil {
		input.AdoptionDate = *req.AdoptionDate
	}

	adoption, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		metrics.AdoptionFailuresTotal.WithLabelValues(failureReason(err)).Inc()
		return err
	}

	metrics.AdoptionsCreatedTotal.Inc()
	return respondCreated(c, "Adoption created successfully", adoption)
}

// List handles GET /api/adoptions.
func (h *AdoptionHandler) List(c echo.Context) error {
	adoptions, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if adoptions == nil {
		adoptions = []*domain.Adoption{}
	}
	return respondOK(c, "Adoptions fetched successfully", adoptions)
}

// GetByID handles GET /api/adoptions/:id.
func (h *AdoptionHandler) GetByID(c echo.Context) error {
	id := c.Param("id")

	adoption, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if adoption == nil {
		return domain.ResourceNotFound("Adoption", id, map[string]string{"id": id})
	}

	return respondOK(c, "Adoption fetched successfully", adoption)
}

// ListByUser handles GET /api/adoptions/user/:userId.
func (h *AdoptionHandler) ListByUser(c echo.Context) error {
	userID := c.Param("userId")

	adoptions, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if adoptions == nil {
		adoptions = []*domain.Adoption{}
	}
	return respondOK(c, "Adoptions fetched successfully", adoptions)
}

// Update handles PUT /api/adoptions/:id.
func (h *AdoptionHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var req updateAdoptionRequest
	if err := c.Bind(&req); err != nil {
		return domain.InvalidRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ValidationError(err.Error())
	}

	adoption, err := h.service.Update(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return err
	}
	if adoption == nil {
		return domain.ResourceNotFound("Adoption", id)
	}

	return respondOK(c, "Adoption updated successfully", adoption)
}

// Delete handles DELETE /api/adoptions/:id. Reverses the pet and user side
// effects before removing the record.
func (h *AdoptionHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	snapshot, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if snapshot == nil {
		return domain.ResourceNotFound("Adoption", id)
	}

	metrics.AdoptionsReversedTotal.Inc()
	return respondOK(c, "Adoption deleted successfully", snapshot)
}

// failureReason labels the adoption failure counter with the taxonomy code.
func failureReason(err error) string {
	var appErr *domain.Error
	if errors.As(err, &appErr) {
		return string(appErr.Code)
	}
	return string(domain.CodeInternalServerError)
}
