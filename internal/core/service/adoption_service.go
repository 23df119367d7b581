package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/adoptme/pet-adoption-api/internal/core/domain"
	"github.com/adoptme/pet-adoption-api/internal/core/ports"
)

// PetReservation abstracts the short-lived adoption fence (Redis). Reserve
// returns false when another adoption of the same pet is already in flight.
// The fence narrows the check-then-act window between reading pet.IsAdopted
// and flipping it; it is not a source of truth and outages degrade to a
// logged warning.
type PetReservation interface {
	Reserve(ctx context.Context, petID string) (bool, error)
	Release(ctx context.Context, petID string) error
}

type adoptionService struct {
	adoptions   ports.AdoptionRepository
	pets        ports.PetRepository
	users       ports.UserRepository
	reservation PetReservation
	log         zerolog.Logger
}

// NewAdoptionService returns the adoption workflow implementation.
// reservation may be nil, in which case no fencing is applied.
func NewAdoptionService(
	adoptions ports.AdoptionRepository,
	pets ports.PetRepository,
	users ports.UserRepository,
	reservation PetReservation,
	log zerolog.Logger,
) ports.AdoptionService {
	return &adoptionService{
		adoptions:   adoptions,
		pets:        pets,
		users:       users,
		reservation: reservation,
		log:         log,
	}
}

// Create runs the adoption workflow: validate both entities, create the
// adoption record, flip the pet's adopted flag, append the pet to the user's
// collection. Each forward step after record creation has a compensating
// write that is replayed on failure, so a mid-sequence fault never leaves an
// adoption record behind with half-applied side effects.
func (s *adoptionService) Create(ctx context.Context, input ports.CreateAdoptionInput) (*domain.Adoption, error) {
	if input.PetID == "" || input.UserID == "" {
		return nil, domain.InvalidRequest("Pet ID and User ID are required")
	}

	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ResourceNotFound("User", input.UserID)
	}

	pet, err := s.pets.FindByID(ctx, input.PetID)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, domain.ResourceNotFound("Pet", input.PetID)
	}
	if pet.IsAdopted {
		return nil, domain.InvalidRequest("Pet is already adopted")
	}

	if s.reservation != nil {
		ok, resErr := s.reservation.Reserve(ctx, input.PetID)
		if resErr != nil {
			s.log.Warn().Err(resErr).Str("pet_id", input.PetID).Msg("reservation check failed, proceeding anyway")
		} else if !ok {
			return nil, domain.InvalidRequest("Pet adoption already in progress", map[string]string{"pet_id": input.PetID})
		} else {
			defer func() {
				if relErr := s.reservation.Release(ctx, input.PetID); relErr != nil {
					s.log.Warn().Err(relErr).Str("pet_id", input.PetID).Msg("failed to release pet reservation")
				}
			}()
		}
	}

	status := input.Status
	if status == "" {
		status = domain.AdoptionPending
	}
	date := input.AdoptionDate
	if date.IsZero() {
		date = time.Now().UTC()
	}

	adoption, err := s.adoptions.Create(ctx, &domain.Adoption{
		PetID:        input.PetID,
		UserID:       input.UserID,
		AdoptionDate: date,
		Status:       status,
	})
	if err != nil {
		return nil, domain.Internal("Failed to complete adoption process", err)
	}

	if err := s.pets.SetAdopted(ctx, input.PetID, true); err != nil {
		s.compensate(ctx, adoption.ID, input.PetID, false)
		return nil, domain.Internal("Failed to complete adoption process", err)
	}

	if err := s.users.AddPet(ctx, input.UserID, input.PetID); err != nil {
		s.compensate(ctx, adoption.ID, input.PetID, true)
		return nil, domain.Internal("Failed to complete adoption process", err)
	}

	s.log.Info().
		Str("adoption_id", adoption.ID).
		Str("pet_id", input.PetID).
		Str("user_id", input.UserID).
		Str("status", string(adoption.Status)).
		Msg("adoption created")

	return adoption, nil
}

// compensate undoes already-applied forward steps of Create. revertFlag is
// true once the pet's adopted flag was flipped. Compensation failures are
// logged, not surfaced: the caller already sees the original fault.
func (s *adoptionService) compensate(ctx context.Context, adoptionID, petID string, revertFlag bool) {
	if revertFlag {
		if err := s.pets.SetAdopted(ctx, petID, false); err != nil {
			s.log.Error().Err(err).Str("pet_id", petID).Msg("compensation failed: pet flag not reverted")
		}
	}
	if err := s.adoptions.Delete(ctx, adoptionID); err != nil {
		s.log.Error().Err(err).Str("adoption_id", adoptionID).Msg("compensation failed: adoption record not removed")
	}
}

func (s *adoptionService) GetByID(ctx context.Context, id string) (*domain.Adoption, error) {
	if id == "" {
		return nil, domain.InvalidRequest("Adoption ID is required")
	}
	return s.adoptions.FindByID(ctx, id)
}

func (s *adoptionService) ListByUser(ctx context.Context, userID string) ([]*domain.Adoption, error) {
	if userID == "" {
		return nil, domain.InvalidRequest("User ID is required")
	}
	return s.adoptions.FindByUserID(ctx, userID)
}

func (s *adoptionService) List(ctx context.Context) ([]*domain.Adoption, error) {
	return s.adoptions.FindAll(ctx)
}

// Update applies a status or date edit to the record itself. It does not
// re-validate pet or user consistency. Returns (nil, nil) when the target
// does not exist.
func (s *adoptionService) Update(ctx context.Context, id string, patch ports.AdoptionPatch) (*domain.Adoption, error) {
	if id == "" {
		return nil, domain.InvalidRequest("Adoption ID is required")
	}
	if patch.IsEmpty() {
		return nil, domain.InvalidRequest("No update data provided")
	}

	existing, err := s.adoptions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	return s.adoptions.Update(ctx, id, patch)
}

// Delete reverses an adoption: the pet's flag is cleared and the pet removed
// from the user's collection before the record itself is deleted, then a
// shallow snapshot of the removed record is returned. Returns (nil, nil)
// when the target does not exist.
func (s *adoptionService) Delete(ctx context.Context, id string) (*ports.AdoptionSnapshot, error) {
	if id == "" {
		return nil, domain.InvalidRequest("Adoption ID is required")
	}

	existing, err := s.adoptions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if err := s.pets.SetAdopted(ctx, existing.PetID, false); err != nil {
		return nil, domain.Internal("Failed to reverse adoption", err)
	}

	if err := s.users.RemovePet(ctx, existing.UserID, existing.PetID); err != nil {
		return nil, domain.Internal("Failed to reverse adoption", err)
	}

	if err := s.adoptions.Delete(ctx, id); err != nil {
		return nil, domain.Internal("Failed to reverse adoption", err)
	}

	s.log.Info().
		Str("adoption_id", id).
		Str("pet_id", existing.PetID).
		Str("user_id", existing.UserID).
		Msg("adoption reversed")

	return &ports.AdoptionSnapshot{
		ID:           existing.ID,
		PetID:        existing.PetID,
		UserID:       existing.UserID,
		AdoptionDate: existing.AdoptionDate,
		Status:       existing.Status,
	}, nil
}
