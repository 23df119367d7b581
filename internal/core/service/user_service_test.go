package service

import (
	"context"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/adoptme/pet-adoption-api/internal/core/domain"
	"github.com/adoptme/pet-adoption-api/internal/core/ports"
)

type stubUserRepo struct {
	byID   map[string]*domain.User
	nextID int

	calls     int
	addPetErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) seed(user domain.User) *domain.User {
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	if user.Pets == nil {
		user.Pets = []string{}
	}
	clone := user
	r.byID[user.ID] = &clone
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.calls++
	return r.seed(*user), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.calls++
	user, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.calls++
	for _, user := range r.byID {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	r.calls++
	var users []*domain.User
	for _, user := range r.byID {
		clone := *user
		users = append(users, &clone)
	}
	return users, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	r.calls++
	user, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		user.PasswordHash = *patch.Password
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	clone := *user
	return &clone, nil
}

func (r *stubUserRepo) AddPet(_ context.Context, userID, petID string) error {
	r.calls++
	if r.addPetErr != nil {
		return r.addPetErr
	}
	user, ok := r.byID[userID]
	if !ok {
		return fmt.Errorf("user %s not found", userID)
	}
	user.Pets = append(user.Pets, petID)
	return nil
}

func (r *stubUserRepo) RemovePet(_ context.Context, userID, petID string) error {
	r.calls++
	user, ok := r.byID[userID]
	if !ok {
		return fmt.Errorf("user %s not found", userID)
	}
	kept := user.Pets[:0]
	for _, id := range user.Pets {
		if id != petID {
			kept = append(kept, id)
		}
	}
	user.Pets = kept
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (*domain.User, error) {
	r.calls++
	user, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	delete(r.byID, id)
	return user, nil
}

func userInput(email string) ports.CreateUserInput {
	return ports.CreateUserInput{
		FirstName: "Ana",
		LastName:  "Torres",
		Email:     email,
		Password:  "secret-password",
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	user, err := svc.Create(context.Background(), userInput("ana@example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.byID[user.ID]
	if stored.PasswordHash == "secret-password" {
		t.Fatal("raw password must never reach the store")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret-password")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.Pets == nil || len(user.Pets) != 0 {
		t.Fatalf("expected empty pets collection, got %v", user.Pets)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	if _, err := svc.Create(context.Background(), userInput("dup@example.com")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), userInput("dup@example.com"))
	assertCode(t, err, domain.CodeResourceExists)
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

func TestUserService_GetByID_EmptyID(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	_, err := svc.GetByID(context.Background(), "")
	assertCode(t, err, domain.CodeInvalidRequest)

	if repo.calls != 0 {
		t.Fatalf("store must not be reached, got %d calls", repo.calls)
	}
}

func TestUserService_GetByEmail_Absent(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), discardLogger)

	user, err := svc.GetByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("absence must not be an error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil, got %+v", user)
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestUserService_Update_EmptyPatch(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	_, err := svc.Update(context.Background(), "user-1", ports.UserPatch{})
	assertCode(t, err, domain.CodeInvalidRequest)

	if repo.calls != 0 {
		t.Fatalf("store must not be reached, got %d calls", repo.calls)
	}
}

func TestUserService_Update_EmailConflict(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(domain.User{Email: "taken@example.com"})
	target := repo.seed(domain.User{Email: "mine@example.com"})
	svc := NewUserService(repo, discardLogger)

	email := "taken@example.com"
	_, err := svc.Update(context.Background(), target.ID, ports.UserPatch{Email: &email})
	assertCode(t, err, domain.CodeResourceExists)
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	target := repo.seed(domain.User{Email: "ana@example.com", PasswordHash: "old-hash"})
	svc := NewUserService(repo, discardLogger)

	password := "new-password"
	if _, err := svc.Update(context.Background(), target.ID, ports.UserPatch{Password: &password}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.byID[target.ID]
	if stored.PasswordHash == "new-password" || stored.PasswordHash == "old-hash" {
		t.Fatalf("password not rehashed: %q", stored.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-password")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestUserService_Update_Absent(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), discardLogger)

	first := "Ghost"
	user, err := svc.Update(context.Background(), "nonexistent-id", ports.UserPatch{FirstName: &first})
	if err != nil {
		t.Fatalf("absence must not be an error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil, got %+v", user)
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	target := repo.seed(domain.User{Email: "gone@example.com"})
	svc := NewUserService(repo, discardLogger)

	deleted, err := svc.Delete(context.Background(), target.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted == nil || deleted.ID != target.ID {
		t.Fatalf("expected removed user back, got %+v", deleted)
	}

	again, err := svc.Delete(context.Background(), target.ID)
	if err != nil {
		t.Fatalf("absence must not be an error: %v", err)
	}
	if again != nil {
		t.Fatalf("expected nil on second delete, got %+v", again)
	}
}
