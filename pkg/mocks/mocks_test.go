package mocks

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/adoptme/pet-adoption-api/internal/core/domain"
)

func TestGenerator_Pets_UniqueNames(t *testing.T) {
	g := NewGenerator(1)

	pets := g.Pets(200)
	if len(pets) != 200 {
		t.Fatalf("expected 200 pets, got %d", len(pets))
	}

	seen := make(map[string]struct{}, len(pets))
	for _, pet := range pets {
		if _, dup := seen[pet.Name]; dup {
			t.Fatalf("duplicate pet name %q", pet.Name)
		}
		seen[pet.Name] = struct{}{}
	}
}

func TestGenerator_Pet_Shape(t *testing.T) {
	g := NewGenerator(1)
	pet := g.Pet()

	if _, err := primitive.ObjectIDFromHex(pet.ID); err != nil {
		t.Fatalf("id is not valid ObjectID hex: %q", pet.ID)
	}
	if n := len(pet.Name); n < 3 || n > 20 {
		t.Fatalf("name length out of bounds: %q", pet.Name)
	}
	if n := len(pet.Description); n < 10 || n > 500 {
		t.Fatalf("description length out of bounds: %q", pet.Description)
	}
	if pet.Gender != domain.GenderMale && pet.Gender != domain.GenderFemale {
		t.Fatalf("unexpected gender: %q", pet.Gender)
	}
	if pet.IsAdopted {
		t.Fatal("generated pets must start unadopted")
	}
	if pet.BirthDate.IsZero() {
		t.Fatal("expected birth date")
	}
}

func TestGenerator_User_PasswordVerifies(t *testing.T) {
	g := NewGenerator(1)
	user := g.User()

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(g.Password())); err != nil {
		t.Fatalf("generated hash does not verify: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role, got %q", user.Role)
	}
	if user.Pets == nil || len(user.Pets) != 0 {
		t.Fatalf("expected empty pets collection, got %v", user.Pets)
	}
}

func TestGenerator_Users_SharedHash(t *testing.T) {
	g := NewGenerator(1)

	users := g.Users(3)
	for _, user := range users[1:] {
		if user.PasswordHash != users[0].PasswordHash {
			t.Fatal("generated users must share one hash")
		}
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(42).Pet()
	b := NewGenerator(42).Pet()

	// Ids are fresh ObjectIDs, everything else follows the seed.
	if a.Name != b.Name || a.Breed != b.Breed || a.Gender != b.Gender || a.Size != b.Size {
		t.Fatalf("same seed produced different pets: %+v vs %+v", a, b)
	}
}
