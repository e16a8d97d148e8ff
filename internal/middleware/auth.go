package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ricemart/notes-api/internal/dto"
	"github.com/ricemart/notes-api/internal/token"
)

const uidKey = "uid"

// Protected gates a route on a valid session token. Each failure mode gets
// its own 401 message so clients can tell an expired session (re-login)
// from a rejected one.
func Protected(issuer *token.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Msg: "No token, authorization denied",
			})
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Msg: `Token format is invalid (must be "Bearer <token>"), authorization denied`,
			})
		}

		claims, err := issuer.Parse(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Msg: "Token has expired",
				})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Msg: "Token is invalid",
			})
		}

		// The payload shape is checked here at the boundary, never deeper in
		// the call stack.
		if claims.User.UID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Msg: "Token payload is invalid, authorization denied",
			})
		}

		c.Locals(uidKey, claims.User.UID)
		return c.Next()
	}
}

// UserUID returns the authenticated uid attached by Protected, or "" on an
// unprotected route.
func UserUID(c *fiber.Ctx) string {
	if uid, ok := c.Locals(uidKey).(string); ok {
		return uid
	}
	return ""
}
