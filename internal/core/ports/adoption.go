package ports

import (
	"context"
	"time"

	"github.com/adoptme/pet-adoption-api/internal/core/domain"
)

// CreateAdoptionInput carries the parameters of an adoption request.
// Status defaults to pending and AdoptionDate to the current time when left
// at their zero values.
type CreateAdoptionInput struct {
	PetID        string
	UserID       string
	Status       domain.AdoptionStatus
	AdoptionDate time.Time
}

// AdoptionPatch is the partial update accepted by the adoption endpoint.
// Pet and user references are immutable after creation.
type AdoptionPatch struct {
	Status       *domain.AdoptionStatus
	AdoptionDate *time.Time
}

// IsEmpty reports whether the patch carries no fields.
func (p AdoptionPatch) IsEmpty() bool {
	return p.Status == nil && p.AdoptionDate == nil
}

// AdoptionSnapshot is the shallow view of a deleted adoption returned to the
// caller after the workflow has reversed the pet and user side effects.
type AdoptionSnapshot struct {
	ID           string                `json:"id"`
	PetID        string                `json:"petId"`
	UserID       string                `json:"userId"`
	AdoptionDate time.Time             `json:"adoptionDate"`
	Status       domain.AdoptionStatus `json:"status"`
}

// AdoptionRepository defines persistence operations for adoption records.
// Lookups return (nil, nil) when no document matches.
type AdoptionRepository interface {
	Create(ctx context.Context, adoption *domain.Adoption) (*domain.Adoption, error)
	FindByID(ctx context.Context, id string) (*domain.Adoption, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.Adoption, error)
	FindAll(ctx context.Context) ([]*domain.Adoption, error)
	Update(ctx context.Context, id string, patch AdoptionPatch) (*domain.Adoption, error)
	Delete(ctx context.Context, id string) error
}

// AdoptionService defines the adoption workflow: the one multi-entity
// operation in the system. Create and Delete must appear atomic to callers.
type AdoptionService interface {
	Create(ctx context.Context, input CreateAdoptionInput) (*domain.Adoption, error)
	GetByID(ctx context.Context, id string) (*domain.Adoption, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Adoption, error)
	List(ctx context.Context) ([]*domain.Adoption, error)
	Update(ctx context.Context, id string, patch AdoptionPatch) (*domain.Adoption, error)
	Delete(ctx context.Context, id string) (*AdoptionSnapshot, error)
}
