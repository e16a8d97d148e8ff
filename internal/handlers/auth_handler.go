package handlers

import (
	"errors"
	"log/slog"
	netmail "net/mail"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ricemart/notes-api/internal/dto"
	"github.com/ricemart/notes-api/internal/identity"
	"github.com/ricemart/notes-api/internal/middleware"
	"github.com/ricemart/notes-api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Invalid request body"})
	}

	if req.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Please provide username"})
	}
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Please provide email"})
	}
	if _, err := netmail.ParseAddress(req.Email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Email format is invalid"})
	}
	if req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Please provide password"})
	}
	if len(req.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Password must be at least 6 characters"})
	}

	tok, err := h.authService.SignUp(c.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Email already registered."})
		}
		slog.Error("signup failed", "action", "signup", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Msg: "Server error during user registration"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.TokenResponse{Token: tok})
}

// TokenSignIn exchanges a Firebase ID token for a session token. The
// /auth/google and /auth/token-signin routes both resolve here: Google and
// email/password sign-ins produce the same kind of ID token.
func (h *AuthHandler) TokenSignIn(c *fiber.Ctx) error {
	var req dto.IDTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Invalid request body"})
	}

	if req.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Firebase ID token is required"})
	}

	tok, err := h.authService.SignInWithIDToken(c.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrIDTokenExpired):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Msg: "Firebase token has expired. Please sign in again."})
		case errors.Is(err, services.ErrIDTokenInvalid):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Msg: "Invalid Firebase token"})
		}
		slog.Error("token sign-in failed", "action", "token_signin", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Msg: "Server error during sign-in processing"})
	}

	return c.JSON(dto.TokenResponse{Token: tok})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Invalid request body"})
	}

	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Please provide an email address"})
	}
	if _, err := netmail.ParseAddress(req.Email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Invalid email format."})
	}

	if err := h.authService.ForgotPassword(c.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, services.ErrResetNotConfigured):
			slog.Error("password reset misconfigured", "action", "forgot_password", "error", err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Msg: "Server configuration error occurred."})
		case errors.Is(err, services.ErrMailDelivery):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Msg: "Failed to send password reset email. Please try again later or contact support."})
		}
		slog.Error("password reset failed", "action", "forgot_password", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Msg: "Could not generate password reset link."})
	}

	return c.JSON(dto.MessageResponse{
		Msg: "Password reset link sent. Please check your email (including spam folder) for instructions.",
	})
}

// Profile returns the caller's user record as held by the identity
// provider. The uid comes from the session token, never from the request.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	uid := middleware.UserUID(c)

	user, err := h.authService.Profile(c.Context(), uid)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "User associated with token not found."})
		}
		slog.Error("profile lookup failed", "action", "profile", "uid", uid, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Msg: "Server error retrieving user data"})
	}

	return c.JSON(dto.ProfileResponse{
		Msg: "Successfully accessed protected route!",
		User: dto.ProfileUser{
			UID:            user.UID,
			Email:          user.Email,
			Username:       user.DisplayName,
			EmailVerified:  user.EmailVerified,
			CreationTime:   user.CreatedAt.Format(time.RFC3339),
			LastSignInTime: user.LastSignInAt.Format(time.RFC3339),
		},
	})
}
