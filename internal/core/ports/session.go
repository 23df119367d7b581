package ports

import (
	"context"

	"github.com/adoptme/pet-adoption-api/internal/core/domain"
)

// SessionService authenticates users and issues bearer tokens.
type SessionService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
