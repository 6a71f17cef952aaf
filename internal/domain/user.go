package domain

import (
	"context"
	"time"
)

// User represents a registered couple account. Each user owns at most one
// wedding site.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	PasswordSalt string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is typically set by the repository on create.
func NewUser(email, passwordHash, passwordSalt string, createdAt, updatedAt time.Time) *User {
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		PasswordSalt: passwordSalt,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// PasswordHasher handles salt generation, hashing, and verification.
// The same scheme is used for account passwords and guest site passwords.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues bearer tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// AuthService defines registration and login for couple accounts.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (token string, user *User, err error)
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
}
