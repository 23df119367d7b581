package domain

import "time"

// PetGender enumerates the accepted gender values.
type PetGender string

const (
	GenderMale   PetGender = "male"
	GenderFemale PetGender = "female"
)

// PetSize enumerates the accepted size values.
type PetSize string

const (
	SizeSmall  PetSize = "small"
	SizeMedium PetSize = "medium"
	SizeLarge  PetSize = "large"
)

// Pet is an animal available for adoption. Name is unique across all pets.
// IsAdopted is flipped exclusively by the adoption workflow: a pet with
// IsAdopted=true cannot be deleted until its adoption is reversed.
type Pet struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	BirthDate   time.Time `json:"birthDate"`
	Breed       string    `json:"breed"`
	Gender      PetGender `json:"gender"`
	Size        PetSize   `json:"size"`
	Description string    `json:"description"`
	IsAdopted   bool      `json:"isAdopted"`
}
