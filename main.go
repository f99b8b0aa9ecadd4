package main

import (
	"coursehub-backend/config"
	"coursehub-backend/database"
	authRoutes "coursehub-backend/routers/authRoutes"
	courseRoutes "coursehub-backend/routers/courseRoutes"
	dashboardRoutes "coursehub-backend/routers/dashboardRoutes"
	instructorRoutes "coursehub-backend/routers/instructorRoutes"
	studentRoutes "coursehub-backend/routers/studentRoutes"
	"coursehub-backend/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Uploaded thumbnails, documents and videos are served statically
	app.Static("/uploads", config.AppConfig.UploadDir)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Backend is running")
	})

	authRoutes.SetupAuthRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)
	instructorRoutes.SetupInstructorRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	courseRoutes.SetupCourseRoutes(app)

	// Nightly enrolled-count drift audit
	utils.StartEnrollmentAudit()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
