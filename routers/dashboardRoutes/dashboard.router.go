package dashboardRoutes

import (
	dashboardController "coursehub-backend/controllers/dashboard"
	"coursehub-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes registers the admin dashboard endpoints
func SetupDashboardRoutes(app *fiber.App) {
	dashGroup := app.Group("/api/dashboard", middleware.JWTMiddleware, middleware.AdminOnly)

	dashGroup.Get("/stats", dashboardController.GetDashboardStats)
	dashGroup.Get("/activities", dashboardController.GetRecentActivities)
}
