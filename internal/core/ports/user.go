package ports

import (
	"context"

	"github.com/adoptme/pet-adoption-api/internal/core/domain"
)

// CreateUserInput carries all data needed to register a new user.
// Password is the raw secret; the service hashes it before persistence.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// UserPatch is the partial update accepted by the generic user endpoint.
// The pets collection is deliberately absent: it is owned by the adoption
// workflow and flows through AddPet/RemovePet only. Password, when set, is
// the raw secret and is hashed by the service.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	Role      *string
}

// IsEmpty reports whether the patch carries no fields.
func (p UserPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.Password == nil && p.Role == nil
}

// UserRepository defines persistence operations for users.
// Lookups return (nil, nil) when no document matches; a malformed id is
// treated the same as an absent one.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	// Update applies the patch (Password already hashed by the caller) and
	// returns the updated document, or (nil, nil) when the target is absent.
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	// AddPet appends petID to the user's pets collection.
	// RemovePet removes it. Both are reserved for the adoption workflow.
	AddPet(ctx context.Context, userID, petID string) error
	RemovePet(ctx context.Context, userID, petID string) error
	// Delete removes the user and returns the removed document, or (nil, nil)
	// when the target does not exist.
	Delete(ctx context.Context, id string) (*domain.User, error)
}

// UserService defines use-case operations for users. Getters return
// (nil, nil) for a well-formed key that matches nothing.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
