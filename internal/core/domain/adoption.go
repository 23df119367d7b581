package domain

import "time"

// AdoptionStatus is the review state of an adoption request.
type AdoptionStatus string

const (
	AdoptionPending  AdoptionStatus = "pending"
	AdoptionApproved AdoptionStatus = "approved"
	AdoptionRejected AdoptionStatus = "rejected"
)

// Adoption joins one pet to one user. It holds references only; the pet and
// user records are owned by their own stores. A pet has at most one active
// adoption at a time.
type Adoption struct {
	ID           string         `json:"id"`
	PetID        string         `json:"petId"`
	UserID       string         `json:"userId"`
	AdoptionDate time.Time      `json:"adoptionDate"`
	Status       AdoptionStatus `json:"status"`
}
