package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/ricemart/notes-api/internal/handlers"
	"github.com/ricemart/notes-api/internal/middleware"
	"github.com/ricemart/notes-api/internal/token"
)

func Setup(
	app *fiber.App,
	issuer *token.Issuer,
	authHandler *handlers.AuthHandler,
	notesHandler *handlers.NotesHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limit: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/google", authHandler.TokenSignIn)
	auth.Post("/token-signin", authHandler.TokenSignIn)
	auth.Post("/forgot-password", authHandler.ForgotPassword)

	// Protected routes: the gate runs before any handler or store access.
	api.Get("/protected", middleware.Protected(issuer), authHandler.Profile)

	notes := api.Group("/notes", middleware.Protected(issuer))
	notes.Post("/", notesHandler.Create)
	notes.Get("/", notesHandler.List)
	notes.Put("/:id", notesHandler.Update)
	notes.Delete("/:id", notesHandler.Delete)
}
