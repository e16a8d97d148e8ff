package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ricemart/notes-api/internal/config"
	"github.com/ricemart/notes-api/internal/identity"
	"github.com/ricemart/notes-api/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	createUser func(email, password, displayName string) (*identity.User, error)
	verify     func(idToken string) (*identity.User, error)
	getUser    func(uid string) (*identity.User, error)
	resetLink  func(email, continueURL string) (string, error)
}

func (s *stubProvider) CreateUser(_ context.Context, email, password, displayName string) (*identity.User, error) {
	return s.createUser(email, password, displayName)
}

func (s *stubProvider) VerifyIDToken(_ context.Context, idToken string) (*identity.User, error) {
	return s.verify(idToken)
}

func (s *stubProvider) GetUser(_ context.Context, uid string) (*identity.User, error) {
	return s.getUser(uid)
}

func (s *stubProvider) PasswordResetLink(_ context.Context, email, continueURL string) (string, error) {
	return s.resetLink(email, continueURL)
}

type stubMailer struct {
	to      string
	subject string
	html    string
	calls   int
	err     error
}

func (m *stubMailer) Send(_ context.Context, to, subject, html string) error {
	m.calls++
	m.to, m.subject, m.html = to, subject, html
	return m.err
}

func newAuthService(provider identity.Provider, mailer Mailer, cfg *config.Config) (*AuthService, *token.Issuer) {
	issuer := token.NewIssuer("auth-test-secret", time.Hour)
	return NewAuthService(provider, issuer, mailer, cfg), issuer
}

func testConfig() *config.Config {
	return &config.Config{
		AppName:     "Samplereact",
		FrontendURL: "http://localhost:3000",
	}
}

func TestSignUpIssuesTokenForProviderUID(t *testing.T) {
	provider := &stubProvider{
		createUser: func(email, password, displayName string) (*identity.User, error) {
			assert.Equal(t, "alice@example.com", email)
			assert.Equal(t, "hunter22", password)
			assert.Equal(t, "alice", displayName)
			return &identity.User{UID: "fb-uid-alice", Email: email}, nil
		},
	}
	svc, issuer := newAuthService(provider, &stubMailer{}, testConfig())

	raw, err := svc.SignUp(context.Background(), "alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	claims, err := issuer.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "fb-uid-alice", claims.User.UID)
}

func TestSignUpEmailTaken(t *testing.T) {
	provider := &stubProvider{
		createUser: func(_, _, _ string) (*identity.User, error) {
			return nil, identity.ErrEmailExists
		},
	}
	svc, _ := newAuthService(provider, &stubMailer{}, testConfig())

	_, err := svc.SignUp(context.Background(), "alice", "alice@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignInWithIDTokenMapsProviderErrors(t *testing.T) {
	cases := []struct {
		name        string
		providerErr error
		want        error
	}{
		{"expired", identity.ErrTokenExpired, ErrIDTokenExpired},
		{"invalid", identity.ErrTokenInvalid, ErrIDTokenInvalid},
		{"wrapped invalid", errors.Join(identity.ErrTokenInvalid, errors.New("bad signature")), ErrIDTokenInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &stubProvider{
				verify: func(string) (*identity.User, error) { return nil, tc.providerErr },
			}
			svc, _ := newAuthService(provider, &stubMailer{}, testConfig())

			_, err := svc.SignInWithIDToken(context.Background(), "some-id-token")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSignInWithIDTokenIssuesToken(t *testing.T) {
	provider := &stubProvider{
		verify: func(idToken string) (*identity.User, error) {
			assert.Equal(t, "google-id-token", idToken)
			return &identity.User{UID: "fb-uid-google"}, nil
		},
	}
	svc, issuer := newAuthService(provider, &stubMailer{}, testConfig())

	raw, err := svc.SignInWithIDToken(context.Background(), "google-id-token")
	require.NoError(t, err)

	claims, err := issuer.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "fb-uid-google", claims.User.UID)
}

func TestForgotPasswordSendsResetLink(t *testing.T) {
	var gotContinueURL string
	provider := &stubProvider{
		resetLink: func(email, continueURL string) (string, error) {
			gotContinueURL = continueURL
			return "https://firebase.example.com/reset?oobCode=abc123", nil
		},
	}
	mailer := &stubMailer{}
	svc, _ := newAuthService(provider, mailer, testConfig())

	require.NoError(t, svc.ForgotPassword(context.Background(), "alice@example.com"))

	assert.Equal(t, "http://localhost:3000/login?resetSuccess=true", gotContinueURL)
	assert.Equal(t, 1, mailer.calls)
	assert.Equal(t, "alice@example.com", mailer.to)
	assert.Contains(t, mailer.subject, "Samplereact")
	assert.Contains(t, mailer.html, "https://firebase.example.com/reset?oobCode=abc123")
}

func TestForgotPasswordUnknownEmailLooksLikeSuccess(t *testing.T) {
	provider := &stubProvider{
		resetLink: func(_, _ string) (string, error) {
			return "", identity.ErrUserNotFound
		},
	}
	mailer := &stubMailer{}
	svc, _ := newAuthService(provider, mailer, testConfig())

	// Unknown email must not be distinguishable from a known one.
	require.NoError(t, svc.ForgotPassword(context.Background(), "nobody@example.com"))
	assert.Equal(t, 0, mailer.calls)
}

func TestForgotPasswordWithoutContinueURL(t *testing.T) {
	cfg := testConfig()
	cfg.FrontendURL = ""
	svc, _ := newAuthService(&stubProvider{}, &stubMailer{}, cfg)

	err := svc.ForgotPassword(context.Background(), "alice@example.com")
	assert.ErrorIs(t, err, ErrResetNotConfigured)
}

func TestForgotPasswordMailFailure(t *testing.T) {
	provider := &stubProvider{
		resetLink: func(_, _ string) (string, error) {
			return "https://firebase.example.com/reset?oobCode=abc123", nil
		},
	}
	svc, _ := newAuthService(provider, &stubMailer{err: errors.New("smtp down")}, testConfig())

	err := svc.ForgotPassword(context.Background(), "alice@example.com")
	assert.ErrorIs(t, err, ErrMailDelivery)
}

func TestProfilePassesThroughNotFound(t *testing.T) {
	provider := &stubProvider{
		getUser: func(uid string) (*identity.User, error) {
			return nil, identity.ErrUserNotFound
		},
	}
	svc, _ := newAuthService(provider, &stubMailer{}, testConfig())

	_, err := svc.Profile(context.Background(), "gone-uid")
	assert.ErrorIs(t, err, identity.ErrUserNotFound)
}
