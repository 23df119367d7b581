package ports

import (
	"context"
	"time"

	"github.com/adoptme/pet-adoption-api/internal/core/domain"
)

// CreatePetInput carries all data needed to register a new pet.
type CreatePetInput struct {
	Name        string
	BirthDate   time.Time
	Breed       string
	Gender      domain.PetGender
	Size        domain.PetSize
	Description string
}

// PetPatch is the partial update accepted by the generic pet endpoint.
// IsAdopted is deliberately absent: the adopted flag is owned by the
// adoption workflow and flows through PetRepository.SetAdopted only.
type PetPatch struct {
	Name        *string
	BirthDate   *time.Time
	Breed       *string
	Gender      *domain.PetGender
	Size        *domain.PetSize
	Description *string
}

// IsEmpty reports whether the patch carries no fields.
func (p PetPatch) IsEmpty() bool {
	return p.Name == nil && p.BirthDate == nil && p.Breed == nil &&
		p.Gender == nil && p.Size == nil && p.Description == nil
}

// PetRepository defines persistence operations for pets.
// Lookups return (nil, nil) when no document matches; a malformed id is
// treated the same as an absent one.
type PetRepository interface {
	Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	FindByID(ctx context.Context, id string) (*domain.Pet, error)
	FindByName(ctx context.Context, name string) (*domain.Pet, error)
	FindAll(ctx context.Context) ([]*domain.Pet, error)
	// Update applies the patch and returns the updated document, or (nil, nil)
	// when the target does not exist.
	Update(ctx context.Context, id string, patch PetPatch) (*domain.Pet, error)
	// SetAdopted flips the adopted flag. Reserved for the adoption workflow.
	SetAdopted(ctx context.Context, id string, adopted bool) error
	// Delete removes the pet and returns the removed document, or (nil, nil)
	// when the target does not exist.
	Delete(ctx context.Context, id string) (*domain.Pet, error)
}

// PetService defines use-case operations for pets. Getters return (nil, nil)
// for a well-formed key that matches nothing; the transport layer turns that
// into RESOURCE_NOT_FOUND.
type PetService interface {
	Create(ctx context.Context, input CreatePetInput) (*domain.Pet, error)
	GetByID(ctx context.Context, id string) (*domain.Pet, error)
	GetByName(ctx context.Context, name string) (*domain.Pet, error)
	List(ctx context.Context) ([]*domain.Pet, error)
	Update(ctx context.Context, id string, patch PetPatch) (*domain.Pet, error)
	Delete(ctx context.Context, id string) (*domain.Pet, error)
}
