package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an adopter account. Email is unique. Pets holds the IDs of adopted
// pets in adoption order and is mutated only by the adoption workflow.
type User struct {
	ID           string   `json:"id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         string   `json:"role"`
	Pets         []string `json:"pets"`
}
