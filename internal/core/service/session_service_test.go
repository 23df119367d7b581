package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/adoptme/pet-adoption-api/internal/core/domain"
)

const testSecret = "test-secret"

func seedLoginUser(t *testing.T, repo *stubUserRepo, email, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing seed password: %v", err)
	}
	return repo.seed(domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	})
}

func TestSessionService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedLoginUser(t, repo, "ana@example.com", "coder123")
	svc := NewSessionService(repo, testSecret, time.Hour)

	token, user, err := svc.Login(context.Background(), "ana@example.com", "coder123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil || user.ID != seeded.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != seeded.ID {
		t.Fatalf("expected sub %q, got %v", seeded.ID, claims["sub"])
	}
	if claims["role"] != domain.RoleUser {
		t.Fatalf("expected role claim, got %v", claims["role"])
	}
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedLoginUser(t, repo, "ana@example.com", "coder123")
	svc := NewSessionService(repo, testSecret, time.Hour)

	_, _, err := svc.Login(context.Background(), "ana@example.com", "wrong")
	assertCode(t, err, domain.CodeUnauthorized)
}

func TestSessionService_Login_UnknownEmail(t *testing.T) {
	svc := NewSessionService(newStubUserRepo(), testSecret, time.Hour)

	// Must be indistinguishable from a wrong password.
	_, _, err := svc.Login(context.Background(), "nobody@example.com", "coder123")
	assertCode(t, err, domain.CodeUnauthorized)
}

func TestSessionService_Login_MissingCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewSessionService(repo, testSecret, time.Hour)

	_, _, err := svc.Login(context.Background(), "", "coder123")
	assertCode(t, err, domain.CodeInvalidRequest)

	_, _, err = svc.Login(context.Background(), "ana@example.com", "")
	assertCode(t, err, domain.CodeInvalidRequest)

	if repo.calls != 0 {
		t.Fatalf("store must not be reached, got %d calls", repo.calls)
	}
}
