package courseRoutes

import (
	courseController "coursehub-backend/controllers/course"
	"coursehub-backend/middleware"
	courseValidator "coursehub-backend/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers the admin-only course management endpoints
func SetupCourseRoutes(app *fiber.App) {
	group := app.Group("/api/courses", middleware.JWTMiddleware, middleware.AdminOnly)

	group.Post("/", courseValidator.UpsertCourse(), courseController.AddCourse)
	group.Get("/", courseController.GetCourses)
	group.Put("/:id", courseValidator.CourseID(), courseValidator.UpsertCourse(), courseController.UpdateCourse)
	group.Delete("/:id", courseValidator.CourseID(), courseController.DeleteCourse)
}
