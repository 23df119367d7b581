package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/adoptme/pet-adoption-api/internal/api/metrics"
	"github.com/adoptme/pet-adoption-api/internal/core/domain"
	"github.com/adoptme/pet-adoption-api/internal/core/ports"
	"github.com/adoptme/pet-adoption-api/pkg/mocks"
)

const maxMockCount = 500

// MockHandler serves generated demo data. The mocking endpoints return
// records without persisting them; GenerateData seeds the database through
// the regular services so every invariant still applies.
type MockHandler struct {
	gen   *mocks.Generator
	pets  ports.PetService
	users ports.UserService
}

func NewMockHandler(gen *mocks.Generator, pets ports.PetService, users ports.UserService) *MockHandler {
	return &MockHandler{gen: gen, pets: pets, users: users}
}

// MockingPets handles GET /api/mocks/mockingpets?count=.
func (h *MockHandler) MockingPets(c echo.Context) error {
	count := queryCount(c, 10)
	pets := h.gen.Pets(count)
	metrics.MockRecordsGeneratedTotal.WithLabelValues("pet").Add(float64(count))
	return respondOK(c, fmt.Sprintf("Generated %d mock pets", count), pets)
}

// MockingUsers handles GET /api/mocks/mockingusers?count=.
func (h *MockHandler) MockingUsers(c echo.Context) error {
	count := queryCount(c, 50)
	users := h.gen.Users(count)
	metrics.MockRecordsGeneratedTotal.WithLabelValues("user").Add(float64(count))
	return respondOK(c, fmt.Sprintf("Generated %d mock users", count), users)
}

type generateDataRequest struct {
	Pets  int `json:"pets"  validate:"gte=0,lte=500"`
	Users int `json:"users" validate:"gte=0,lte=500"`
}

type generateDataPayload struct {
	PetsCreated  int `json:"petsCreated"`
	UsersCreated int `json:"usersCreated"`
}

// GenerateData handles POST /api/mocks/generateData. Records are inserted
// through the services, so name and email uniqueness still hold; the rare
// generated duplicate is skipped rather than failing the batch.
func (h *MockHandler) GenerateData(c echo.Context) error {
	var req generateDataRequest
	if err := c.Bind(&req); err != nil {
		return domain.InvalidRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ValidationError(err.Error())
	}

	ctx := c.Request().Context()
	payload := generateDataPayload{}

	for _, pet := range h.gen.Pets(req.Pets) {
		_, err := h.pets.Create(ctx, ports.CreatePetInput{
			Name:        pet.Name,
			BirthDate:   pet.BirthDate,
			Breed:       pet.Breed,
			Gender:      pet.Gender,
			Size:        pet.Size,
			Description: pet.Description,
		})
		if err != nil {
			if isResourceExists(err) {
				continue
			}
			return err
		}
		payload.PetsCreated++
	}

	for _, user := range h.gen.Users(req.Users) {
		_, err := h.users.Create(ctx, ports.CreateUserInput{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Password:  h.gen.Password(),
			Role:      user.Role,
		})
		if err != nil {
			if isResourceExists(err) {
				continue
			}
			return err
		}
		payload.UsersCreated++
	}

	metrics.MockRecordsGeneratedTotal.WithLabelValues("pet").Add(float64(payload.PetsCreated))
	metrics.MockRecordsGeneratedTotal.WithLabelValues("user").Add(float64(payload.UsersCreated))

	return respondCreated(c, fmt.Sprintf("Generated %d pets and %d users", payload.PetsCreated, payload.UsersCreated), payload)
}

func isResourceExists(err error) bool {
	appErr, ok := err.(*domain.Error)
	return ok && appErr.Code == domain.CodeResourceExists
}

func queryCount(c echo.Context, def int) int {
	raw := c.QueryParam("count")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	if n > maxMockCount {
		return maxMockCount
	}
	return n
}
