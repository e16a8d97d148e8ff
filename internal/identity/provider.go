// Package identity wraps the external identity provider. User records,
// password hashing and ID-token issuance all live in Firebase
// Authentication; this package only orchestrates it.
package identity

import (
	"context"
	"errors"
	"time"
)

var (
	ErrEmailExists  = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
	ErrTokenExpired = errors.New("identity token expired")
	ErrTokenInvalid = errors.New("identity token invalid")
)

// User is the subset of the provider's user record this application reads.
type User struct {
	UID           string
	Email         string
	DisplayName   string
	EmailVerified bool
	CreatedAt     time.Time
	LastSignInAt  time.Time
}

type Provider interface {
	// CreateUser registers a new email/password user and returns its record.
	CreateUser(ctx context.Context, email, password, displayName string) (*User, error)
	// VerifyIDToken validates a provider-issued ID token and returns the
	// identity it asserts. The uid is the only trusted field.
	VerifyIDToken(ctx context.Context, idToken string) (*User, error)
	GetUser(ctx context.Context, uid string) (*User, error)
	// PasswordResetLink generates a provider-hosted reset link that lands on
	// continueURL once completed.
	PasswordResetLink(ctx context.Context, email, continueURL string) (string, error)
}
