package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// Customer represents a customer account in the store.
type Customer struct {
	// ID is the unique identifier for the customer.
	ID uint64 `gorm:"primaryKey"`
	// Active indicates whether the account can log in.
	Active bool
	// Email is the unique email address used for login.
	Email string `gorm:"unique;size:255;not null"`
	// Username is the display username.
	Username string `gorm:"size:100"`
	// Password is the Argon2id hashed password.
	Password string `gorm:"size:255"`
	// IsAdmin marks the administrator account created at installation.
	IsAdmin bool
	// CreatedAt is the timestamp when the customer was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the customer was last updated (managed by GORM).
	UpdatedAt time.Time
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// It uses the default Argon2id parameters for secure password hashing.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the customer's stored
// hashed password using constant-time comparison.
func (c *Customer) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, c.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
