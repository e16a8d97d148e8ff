package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ricemart/notes-api/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gateSecret = "gate-test-secret"

func newGateApp(issuer *token.Issuer) *fiber.App {
	app := fiber.New()
	app.Get("/secure", Protected(issuer), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"uid": UserUID(c)})
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, authHeader string) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestMissingHeader(t *testing.T) {
	app := newGateApp(token.NewIssuer(gateSecret, time.Hour))

	status, body := doGet(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "No token, authorization denied", body["msg"])
}

func TestMalformedHeader(t *testing.T) {
	issuer := token.NewIssuer(gateSecret, time.Hour)
	app := newGateApp(issuer)
	raw, err := issuer.Issue("uid-1")
	require.NoError(t, err)

	// No scheme, wrong scheme, too many parts.
	for _, header := range []string{
		raw,
		"Basic " + raw,
		"Bearer " + raw + " extra",
	} {
		status, body := doGet(t, app, header)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Contains(t, body["msg"], "Token format is invalid")
	}
}

func TestExpiredToken(t *testing.T) {
	app := newGateApp(token.NewIssuer(gateSecret, time.Hour))

	// Same secret, already-past expiry: must always read as expired, never
	// as invalid.
	raw, err := token.NewIssuer(gateSecret, -time.Minute).Issue("uid-1")
	require.NoError(t, err)

	status, body := doGet(t, app, "Bearer "+raw)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Token has expired", body["msg"])
}

func TestForgedToken(t *testing.T) {
	app := newGateApp(token.NewIssuer(gateSecret, time.Hour))

	raw, err := token.NewIssuer("some-other-secret", time.Hour).Issue("uid-1")
	require.NoError(t, err)

	status, body := doGet(t, app, "Bearer "+raw)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Token is invalid", body["msg"])
}

func TestValidTokenMissingUID(t *testing.T) {
	app := newGateApp(token.NewIssuer(gateSecret, time.Hour))

	// Properly signed and unexpired, but the payload lacks user.uid.
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	raw, err := tok.SignedString([]byte(gateSecret))
	require.NoError(t, err)

	status, body := doGet(t, app, "Bearer "+raw)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Token payload is invalid, authorization denied", body["msg"])
}

func TestValidTokenPassesThrough(t *testing.T) {
	issuer := token.NewIssuer(gateSecret, time.Hour)
	app := newGateApp(issuer)

	raw, err := issuer.Issue("firebase-uid-9")
	require.NoError(t, err)

	status, body := doGet(t, app, "Bearer "+raw)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "firebase-uid-9", body["uid"])
}
