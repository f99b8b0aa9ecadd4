package instructorRoutes

import (
	instructorController "coursehub-backend/controllers/instructor"
	"coursehub-backend/middleware"
	instructorValidator "coursehub-backend/validators/instructor"

	"github.com/gofiber/fiber/v2"
)

// SetupInstructorRoutes registers instructor management endpoints.
// Everything is admin-only except the marketing site's public listing.
func SetupInstructorRoutes(app *fiber.App) {
	group := app.Group("/api/instructors")

	group.Get("/public", instructorController.GetPublicInstructors)

	group.Get("/", middleware.JWTMiddleware, middleware.AdminOnly, instructorController.GetInstructors)
	group.Post("/", middleware.JWTMiddleware, middleware.AdminOnly, instructorValidator.UpsertInstructor(), instructorController.AddInstructor)
	group.Get("/:id", middleware.JWTMiddleware, middleware.AdminOnly, instructorValidator.InstructorID(), instructorController.GetInstructor)
	group.Get("/:id/courses", middleware.JWTMiddleware, middleware.AdminOnly, instructorValidator.InstructorID(), instructorController.GetInstructorCourses)
	group.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, instructorValidator.InstructorID(), instructorValidator.UpsertInstructor(), instructorController.UpdateInstructor)
	group.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, instructorValidator.InstructorID(), instructorController.DeleteInstructor)
}
