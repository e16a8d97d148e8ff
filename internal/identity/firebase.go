package identity

import (
	"context"
	"fmt"
	"time"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/ricemart/notes-api/internal/config"
	"google.golang.org/api/option"
)

// FirebaseProvider implements Provider on top of the Firebase Admin SDK.
type FirebaseProvider struct {
	client *fbauth.Client
}

// NewFirebaseProvider initializes the Admin SDK. Credentials come from an
// inline JSON blob, a service-account file path, or Application Default
// Credentials, in that order.
func NewFirebaseProvider(ctx context.Context, cfg *config.Config) (*FirebaseProvider, error) {
	var opts []option.ClientOption
	switch {
	case cfg.FirebaseCredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.FirebaseCredentialsJSON)))
	case cfg.FirebaseCredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app init: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}

	return &FirebaseProvider{client: client}, nil
}

func (p *FirebaseProvider) CreateUser(ctx context.Context, email, password, displayName string) (*User, error) {
	params := (&fbauth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	rec, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return fromUserRecord(rec), nil
}

func (p *FirebaseProvider) VerifyIDToken(ctx context.Context, idToken string) (*User, error) {
	tok, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		if fbauth.IsIDTokenExpired(err) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	u := &User{UID: tok.UID}
	if email, ok := tok.Claims["email"].(string); ok {
		u.Email = email
	}
	if name, ok := tok.Claims["name"].(string); ok {
		u.DisplayName = name
	}
	return u, nil
}

func (p *FirebaseProvider) GetUser(ctx context.Context, uid string) (*User, error) {
	rec, err := p.client.GetUser(ctx, uid)
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return fromUserRecord(rec), nil
}

func (p *FirebaseProvider) PasswordResetLink(ctx context.Context, email, continueURL string) (string, error) {
	settings := &fbauth.ActionCodeSettings{
		URL:             continueURL,
		HandleCodeInApp: false,
	}

	link, err := p.client.PasswordResetLinkWithSettings(ctx, email, settings)
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("generate reset link: %w", err)
	}
	return link, nil
}

func fromUserRecord(rec *fbauth.UserRecord) *User {
	u := &User{
		UID:           rec.UID,
		Email:         rec.Email,
		DisplayName:   rec.DisplayName,
		EmailVerified: rec.EmailVerified,
	}
	if rec.UserMetadata != nil {
		u.CreatedAt = time.UnixMilli(rec.UserMetadata.CreationTimestamp).UTC()
		u.LastSignInAt = time.UnixMilli(rec.UserMetadata.LastLogInTimestamp).UTC()
	}
	return u
}
