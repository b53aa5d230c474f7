package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
	RoleKitchen Role = "kitchen"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCashier || r == RoleKitchen
}

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateUserRequest payload of creation.
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	Username string `json:"username" example:"caja1"`
	Email    string `json:"email"    example:"caja1@local"`
	Password string `json:"password" example:"s3cret"`
	Role     string `json:"role"     example:"cashier"`
}
