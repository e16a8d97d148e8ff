// Package token mints and validates the application's own session tokens.
// A session token is stateless: the signature and expiry are the only
// checks, there is no server-side session record or revocation list.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionUser is the payload the session token carries. Only the uid, as
// issued by the identity provider, is embedded.
type SessionUser struct {
	UID string `json:"uid"`
}

type SessionClaims struct {
	User SessionUser `json:"user"`
	jwt.RegisteredClaims
}

// Issuer signs and parses session tokens with an HMAC secret.
type Issuer struct {
	secret []byte
	expiry time.Duration
}

func NewIssuer(secret string, expiry time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), expiry: expiry}
}

// Issue signs a session token for an already-verified uid. The uid must
// never come from an unverified client claim.
func (i *Issuer) Issue(uid string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		User: SessionUser{UID: uid},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse validates signature and expiry and returns the embedded claims.
// An expired token surfaces as jwt.ErrTokenExpired so callers can
// distinguish it from a forged or garbled one.
func (i *Issuer) Parse(raw string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}
