package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/adoptme/pet-adoption-api/internal/core/domain"
	"github.com/adoptme/pet-adoption-api/pkg/mocks"
)

func TestMockHandler_MockingPets_DefaultCount(t *testing.T) {
	h := NewMockHandler(mocks.NewGenerator(1), &stubPetService{}, &stubUserService{})
	c, rec := newTestContext(http.MethodGet, "/api/mocks/mockingpets", "")

	if err := h.MockingPets(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "Generated 10 mock pets" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
	raw, _ := json.Marshal(env.Payload)
	var pets []json.RawMessage
	if err := json.Unmarshal(raw, &pets); err != nil {
		t.Fatalf("payload is not an array: %v", err)
	}
	if len(pets) != 10 {
		t.Fatalf("expected 10 pets, got %d", len(pets))
	}
}

func TestMockHandler_MockingPets_CountCapped(t *testing.T) {
	h := NewMockHandler(mocks.NewGenerator(1), &stubPetService{}, &stubUserService{})
	c, rec := newTestContext(http.MethodGet, "/api/mocks/mockingpets?count=9999", "")

	if err := h.MockingPets(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "Generated 500 mock pets" {
		t.Fatalf("count not capped: %q", env.Message)
	}
}

func TestMockHandler_MockingUsers_InvalidCountFallsBack(t *testing.T) {
	h := NewMockHandler(mocks.NewGenerator(1), &stubPetService{}, &stubUserService{})
	c, rec := newTestContext(http.MethodGet, "/api/mocks/mockingusers?count=abc", "")

	if err := h.MockingUsers(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "Generated 50 mock users" {
		t.Fatalf("expected default count, got %q", env.Message)
	}
}

func TestMockHandler_GenerateData_PersistsThroughServices(t *testing.T) {
	pets := &stubPetService{pet: &domain.Pet{ID: "pet-1", Name: "Rex"}}
	users := &stubUserService{user: &domain.User{ID: "user-1"}}
	h := NewMockHandler(mocks.NewGenerator(1), pets, users)
	c, rec := newTestContext(http.MethodPost, "/api/mocks/generateData", `{"pets": 3, "users": 2}`)

	if err := h.GenerateData(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if pets.calls != 3 || users.calls != 2 {
		t.Fatalf("expected 3 pet and 2 user creates, got %d and %d", pets.calls, users.calls)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "Generated 3 pets and 2 users" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestMockHandler_GenerateData_SkipsDuplicates(t *testing.T) {
	pets := &stubPetService{err: domain.ResourceExists("Pet")}
	users := &stubUserService{user: &domain.User{ID: "user-1"}}
	h := NewMockHandler(mocks.NewGenerator(1), pets, users)
	c, rec := newTestContext(http.MethodPost, "/api/mocks/generateData", `{"pets": 3, "users": 1}`)

	if err := h.GenerateData(c); err != nil {
		t.Fatalf("duplicates must be skipped, not fail the batch: %v", err)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "Generated 0 pets and 1 users" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestMockHandler_GenerateData_RejectsOversizedBatch(t *testing.T) {
	h := NewMockHandler(mocks.NewGenerator(1), &stubPetService{}, &stubUserService{})
	c, _ := newTestContext(http.MethodPost, "/api/mocks/generateData", `{"pets": 10000}`)

	err := h.GenerateData(c)
	requireDomainError(t, err, domain.CodeValidationError)
}
