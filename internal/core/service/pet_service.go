package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/adoptme/pet-adoption-api/internal/core/domain"
	"github.com/adoptme/pet-adoption-api/internal/core/ports"
)

// PetService enforces pet business rules above the raw store: unique names,
// and the rule that an adopted pet cannot be deleted directly.
type PetService struct {
	repo ports.PetRepository
	log  zerolog.Logger
}

func NewPetService(repo ports.PetRepository, log zerolog.Logger) *PetService {
	return &PetService{repo: repo, log: log}
}

// Create registers a new pet. The name is a natural key: a second pet with
// the same name fails with RESOURCE_EXISTS. The unique index on the name
// field is the backstop for the check-then-act race here.
func (s *PetService) Create(ctx context.Context, input ports.CreatePetInput) (*domain.Pet, error) {
	existing, err := s.repo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ResourceExists("Pet", map[string]string{"name": input.Name})
	}

	pet := &domain.Pet{
		Name:        input.Name,
		BirthDate:   input.BirthDate,
		Breed:       input.Breed,
		Gender:      input.Gender,
		Size:        input.Size,
		Description: input.Description,
		IsAdopted:   false,
	}

	created, err := s.repo.Create(ctx, pet)
	if err != nil {
		s.log.Error().Err(err).Str("name", input.Name).Msg("failed to create pet")
		return nil, err
	}

	s.log.Info().Str("pet_id", created.ID).Str("name", created.Name).Msg("pet created")
	return created, nil
}

func (s *PetService) GetByID(ctx context.Context, id string) (*domain.Pet, error) {
	if id == "" {
		return nil, domain.InvalidRequest("Pet ID is required")
	}
	return s.repo.FindByID(ctx, id)
}

func (s *PetService) GetByName(ctx context.Context, name string) (*domain.Pet, error) {
	if name == "" {
		return nil, domain.InvalidRequest("Pet name is required")
	}
	return s.repo.FindByName(ctx, name)
}

func (s *PetService) List(ctx context.Context) ([]*domain.Pet, error) {
	return s.repo.FindAll(ctx)
}

// Update applies a partial update. A patch that renames the pet to a name
// already held by another pet fails with RESOURCE_EXISTS. Returns (nil, nil)
// when the target does not exist.
func (s *PetService) Update(ctx context.Context, id string, patch ports.PetPatch) (*domain.Pet, error) {
	if id == "" {
		return nil, domain.InvalidRequest("Pet ID is required")
	}
	if patch.IsEmpty() {
		return nil, domain.InvalidRequest("No update data provided")
	}

	if patch.Name != nil {
		other, err := s.repo.FindByName(ctx, *patch.Name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ResourceExists("Pet", map[string]string{"name": *patch.Name})
		}
	}

	return s.repo.Update(ctx, id, patch)
}

// Delete removes a pet. Adopted pets are refused: the adoption must be
// reversed first. Returns (nil, nil) when the target does not exist.
func (s *PetService) Delete(ctx context.Context, id string) (*domain.Pet, error) {
	if id == "" {
		return nil, domain.InvalidRequest("Pet ID is required")
	}

	pet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, nil
	}
	if pet.IsAdopted {
		return nil, domain.InvalidRequest("cannot delete adopted pet", map[string]string{"pet_id": id})
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted != nil {
		s.log.Info().Str("pet_id", id).Msg("pet deleted")
	}
	return deleted, nil
}
