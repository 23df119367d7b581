package handler

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adoptme/pet-adoption-api/internal/core/domain"
	"github.com/adoptme/pet-adoption-api/internal/core/ports"
)

// PetHandler handles HTTP requests for pet operations. It extracts and
// validates request shape, delegates to the service, and turns a nil result
// from a well-formed lookup into RESOURCE_NOT_FOUND.
type PetHandler struct {
	service ports.PetService
}

func NewPetHandler(service ports.PetService) *PetHandler {
	return &PetHandler{service: service}
}

type createPetRequest struct {
	Name        string    `json:"name"        validate:"required,min=3,max=20"`
	BirthDate   time.Time `json:"birthDate"   validate:"required"`
	Breed       string    `json:"breed"       validate:"required,min=3,max=15"`
	Gender      string    `json:"gender"      validate:"required,oneof=male female"`
	Size        string    `json:"size"        validate:"required,oneof=small medium large"`
	Description string    `json:"description" validate:"required,min=10,max=500"`
}

// updatePetRequest is the patchable subset of a pet. isAdopted is not
// patchable here: only the adoption workflow mutates it.
type updatePetRequest struct {
	Name        *string    `json:"name"        validate:"omitempty,min=3,max=20"`
	BirthDate   *time.Time `json:"birthDate"`
	Breed       *string    `json:"breed"       validate:"omitempty,min=3,max=15"`
	Gender      *string    `json:"gender"      validate:"omitempty,oneof=male female"`
	Size        *string    `json:"size"        validate:"omitempty,oneof=small medium large"`
	Description *string    `json:"description" validate:"omitempty,min=10,max=500"`
}

func (r updatePetRequest) toPatch() ports.PetPatch {
	patch := ports.PetPatch{
		Name:        r.Name,
		BirthDate:   r.BirthDate,
		Breed:       r.Breed,
		Description: r.Description,
	}
	if r.Gender != nil {
		g := domain.PetGender(*r.Gender)
		patch.Gender = &g
	}
	if r.Size != nil {
		s := domain.PetSize(*r.Size)
		patch.Size = &s
	}
	return patch
}

// Create handles POST /api/pets.
//
// @Summary      Register a new pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Param        body  body      createPetRequest  true  "Pet details"
// @Success      201   {object}  successEnvelope
// @Failure      400   {object}  errorEnvelope
// @Router       /api/pets [post]
func (h *PetHandler) Create(c echo.Context) error {
	var req createPetRequest
	if err := c.Bind(&req); err != nil {
		return domain.InvalidRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ValidationError(err.Error())
	}

	pet, err := h.service.Create(c.Request().Context(), ports.CreatePetInput{
		Name:        req.Name,
		BirthDate:   req.BirthDate,
		Breed:       req.Breed,
		Gender:      domain.PetGender(req.Gender),
		Size:        domain.PetSize(req.Size),
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return respondCreated(c, fmt.Sprintf("Pet %s created successfully", pet.Name), pet)
}

// List handles GET /api/pets.
func (h *PetHandler) List(c echo.Context) error {
	pets, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if pets == nil {
		pets = []*domain.Pet{}
	}
	return respondOK(c, "Pets fetched successfully", pets)
}

// GetByID handles GET /api/pets/:id.
//
// @Summary      Get a pet by id
// @Tags         pets
// @Produce      json
// @Param        id   path      string  true  "Pet id"
// @Success      200  {object}  successEnvelope
// @Failure      400  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /api/pets/{id} [get]
func (h *PetHandler) GetByID(c echo.Context) error {
	id := c.Param("id")

	pet, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if pet == nil {
		return domain.ResourceNotFound("Pet", id, map[string]string{"id": id})
	}

	return respondOK(c, fmt.Sprintf("Pet %s fetched successfully", pet.Name), pet)
}

// GetByName handles GET /api/pets/name/:name.
func (h *PetHandler) GetByName(c echo.Context) error {
	name := c.Param("name")

	pet, err := h.service.GetByName(c.Request().Context(), name)
	if err != nil {
		return err
	}
	if pet == nil {
		return domain.ResourceNotFound("Pet", name)
	}

	return respondOK(c, fmt.Sprintf("Pet %s fetched successfully", pet.Name), pet)
}

// Update handles PUT /api/pets/:id.
func (h *PetHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var req updatePetRequest
	if err := c.Bind(&req); err != nil {
		return domain.InvalidRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ValidationError(err.Error())
	}

	pet, err := h.service.Update(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return err
	}
	if pet == nil {
		return domain.ResourceNotFound("Pet", id)
	}

	return respondOK(c, fmt.Sprintf("Pet %s updated successfully", pet.Name), pet)
}

// Delete handles DELETE /api/pets/:id.
func (h *PetHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	pet, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if pet == nil {
		return domain.ResourceNotFound("Pet", id)
	}

	return respondOK(c, fmt.Sprintf("Pet %s deleted successfully", pet.Name), pet)
}
