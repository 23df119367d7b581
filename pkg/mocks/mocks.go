// Package mocks generates realistic pet and user records for seeding and
// demo endpoints. Generated records carry fresh ObjectID hex ids so payloads
// look exactly like persisted ones.
package mocks

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/adoptme/pet-adoption-api/internal/core/domain"
)

var petNames = []string{"Buddy", "Max", "Charlie", "Cooper", "Milo", "Rocky", "Bear", "Leo", "Duke", "Teddy"}

var petBreeds = []string{"Labrador", "Beagle", "Poodle", "Boxer", "Bulldog", "Chihuahua", "Husky", "Terrier", "Collie", "Pug"}

var firstNames = []string{"Ana", "Bruno", "Carla", "Diego", "Elena", "Felipe", "Gloria", "Hector", "Irene", "Javier"}

var lastNames = []string{"Garcia", "Lopez", "Martinez", "Perez", "Ramirez", "Sanchez", "Torres", "Vargas", "Flores", "Castro"}

var descriptionWords = []string{
	"playful", "gentle", "curious", "energetic", "loyal", "calm",
	"friendly", "affectionate", "smart", "house-trained",
}

// mockPassword is the raw password shared by all generated users.
const mockPassword = "coder123"

// Generator produces mock pets and users. Safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand

	hashOnce     sync.Once
	passwordHash string

	usedNames map[string]struct{}
}

// NewGenerator returns a Generator seeded from the clock when seed is zero.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:       rand.New(rand.NewSource(seed)),
		usedNames: make(map[string]struct{}),
	}
}

// Pet returns one mock pet with a name that is unique for this Generator.
func (g *Generator) Pet() domain.Pet {
	g.mu.Lock()
	defer g.mu.Unlock()

	return domain.Pet{
		ID:          primitive.NewObjectID().Hex(),
		Name:        g.uniqueName(),
		BirthDate:   g.pastDate(5 * 365),
		Breed:       petBreeds[g.rng.Intn(len(petBreeds))],
		Gender:      g.gender(),
		Size:        g.size(),
		Description: g.description(),
		IsAdopted:   false,
	}
}

// Pets returns count mock pets.
func (g *Generator) Pets(count int) []domain.Pet {
	pets := make([]domain.Pet, 0, count)
	for i := 0; i < count; i++ {
		pets = append(pets, g.Pet())
	}
	return pets
}

// User returns one mock user. All generated users share one bcrypt hash
// (computing a hash per record would dominate generation time).
func (g *Generator) User() domain.User {
	g.mu.Lock()
	first := firstNames[g.rng.Intn(len(firstNames))]
	last := lastNames[g.rng.Intn(len(lastNames))]
	suffix := g.rng.Intn(100000)
	g.mu.Unlock()

	return domain.User{
		ID:           primitive.NewObjectID().Hex(),
		FirstName:    first,
		LastName:     last,
		Email:        fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), suffix),
		PasswordHash: g.hash(),
		Role:         domain.RoleUser,
		Pets:         []string{},
	}
}

// Users returns count mock users.
func (g *Generator) Users(count int) []domain.User {
	users := make([]domain.User, 0, count)
	for i := 0; i < count; i++ {
		users = append(users, g.User())
	}
	return users
}

// Password returns the raw password every generated user was created with.
func (g *Generator) Password() string {
	return mockPassword
}

func (g *Generator) uniqueName() string {
	for {
		base := petNames[g.rng.Intn(len(petNames))]
		name := fmt.Sprintf("%s-%04d", base, g.rng.Intn(10000))
		if _, taken := g.usedNames[name]; !taken {
			g.usedNames[name] = struct{}{}
			return name
		}
	}
}

func (g *Generator) gender() domain.PetGender {
	if g.rng.Intn(2) == 0 {
		return domain.GenderMale
	}
	return domain.GenderFemale
}

func (g *Generator) size() domain.PetSize {
	switch g.rng.Intn(3) {
	case 0:
		return domain.SizeSmall
	case 1:
		return domain.SizeMedium
	default:
		return domain.SizeLarge
	}
}

func (g *Generator) description() string {
	words := make([]string, 4)
	for i := range words {
		words[i] = descriptionWords[g.rng.Intn(len(descriptionWords))]
	}
	return fmt.Sprintf("A %s and %s companion, %s and %s.", words[0], words[1], words[2], words[3])
}

func (g *Generator) pastDate(maxDays int) time.Time {
	days := g.rng.Intn(maxDays) + 1
	return time.Now().UTC().AddDate(0, 0, -days).Truncate(24 * time.Hour)
}

func (g *Generator) hash() string {
	g.hashOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte(mockPassword), bcrypt.MinCost)
		if err != nil {
			panic(fmt.Sprintf("mocks: bcrypt hash: %v", err))
		}
		g.passwordHash = string(h)
	})
	return g.passwordHash
}
