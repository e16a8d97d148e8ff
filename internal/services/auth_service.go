package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ricemart/notes-api/internal/config"
	"github.com/ricemart/notes-api/internal/identity"
	"github.com/ricemart/notes-api/internal/mail"
	"github.com/ricemart/notes-api/internal/token"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrIDTokenExpired     = errors.New("firebase token has expired, please sign in again")
	ErrIDTokenInvalid     = errors.New("invalid firebase token")
	ErrResetNotConfigured = errors.New("password reset continue URL is not configured")
	ErrMailDelivery       = errors.New("failed to send password reset email")
)

// Mailer is the email-delivery collaborator for the password-reset flow.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// AuthService exchanges identity-provider credentials for application
// session tokens and drives the password-reset flow.
type AuthService struct {
	provider identity.Provider
	issuer   *token.Issuer
	mailer   Mailer
	cfg      *config.Config
}

func NewAuthService(provider identity.Provider, issuer *token.Issuer, mailer Mailer, cfg *config.Config) *AuthService {
	return &AuthService{
		provider: provider,
		issuer:   issuer,
		mailer:   mailer,
		cfg:      cfg,
	}
}

// SignUp registers the user at the identity provider and issues a session
// token for the new uid.
func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (string, error) {
	user, err := s.provider.CreateUser(ctx, email, password, username)
	if err != nil {
		if errors.Is(err, identity.ErrEmailExists) {
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("signup: %w", err)
	}

	slog.Info("user registered", "uid", user.UID)
	return s.issuer.Issue(user.UID)
}

// SignInWithIDToken verifies a Firebase ID token (email/password or Google
// sign-in both land here) and issues a session token for the verified uid.
func (s *AuthService) SignInWithIDToken(ctx context.Context, idToken string) (string, error) {
	user, err := s.provider.VerifyIDToken(ctx, idToken)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrTokenExpired):
			return "", ErrIDTokenExpired
		case errors.Is(err, identity.ErrTokenInvalid):
			return "", ErrIDTokenInvalid
		}
		return "", fmt.Errorf("token sign-in: %w", err)
	}

	return s.issuer.Issue(user.UID)
}

// Profile reads the canonical user record from the identity provider.
func (s *AuthService) Profile(ctx context.Context, uid string) (*identity.User, error) {
	return s.provider.GetUser(ctx, uid)
}

// ForgotPassword asks the identity provider for a reset link and relays it
// by email. An unknown email is NOT an error: the caller must respond
// success-shaped either way so account existence is never confirmed.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if s.cfg.FrontendURL == "" {
		return ErrResetNotConfigured
	}

	continueURL := s.cfg.FrontendURL + "/login?resetSuccess=true"
	link, err := s.provider.PasswordResetLink(ctx, email, continueURL)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			slog.Info("password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("forgot password: %w", err)
	}

	html, err := mail.RenderResetEmail(s.cfg.AppName, email, link)
	if err != nil {
		return fmt.Errorf("render reset email: %w", err)
	}

	subject := "Reset Your Password for " + s.cfg.AppName
	if err := s.mailer.Send(ctx, email, subject, html); err != nil {
		slog.Error("reset email delivery failed", "error", err)
		return ErrMailDelivery
	}

	slog.Info("password reset email sent")
	return nil
}
