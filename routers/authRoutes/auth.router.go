package authRoutes

import (
	authController "coursehub-backend/controllers/auth"
	"coursehub-backend/middleware"
	authValidator "coursehub-backend/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes registers the public auth endpoints
func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/register", authValidator.Register(), authController.Register)
	api.Post("/login", authController.Login)
	api.Post("/google-login", authController.GoogleLogin)
	api.Get("/me", middleware.JWTMiddleware, authController.Me)
}
