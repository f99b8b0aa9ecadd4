package studentRoutes

import (
	studentController "coursehub-backend/controllers/student"
	"coursehub-backend/middleware"
	studentValidator "coursehub-backend/validators/student"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentRoutes registers the admin-only student management endpoints
func SetupStudentRoutes(app *fiber.App) {
	group := app.Group("/api/students", middleware.JWTMiddleware, middleware.AdminOnly)

	group.Post("/", studentValidator.UpsertStudent(), studentController.AddStudent)
	group.Get("/", studentController.GetStudents)
	group.Get("/:id", studentValidator.StudentID(), studentController.GetStudentByID)
	group.Put("/:id", studentValidator.StudentID(), studentValidator.UpsertStudent(), studentController.UpdateStudent)
	group.Delete("/:id", studentValidator.StudentID(), studentController.DeleteStudent)
}
