package courseController

import (
	"coursehub-backend/database"
	"coursehub-backend/models"
	"coursehub-backend/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

type CourseRequest struct {
	Title         string
	Description   string
	Price         float64
	CategoryID    *uint
	Status        string
	InstructorID  uint
	EnrolledCount int
}

// checkRelations verifies the instructor and optional category exist
func checkRelations(c *fiber.Ctx, reqData *CourseRequest) error {
	db := database.Database.Db

	var instructor models.User
	if err := db.Where("id = ?", reqData.InstructorID).First(&instructor).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Instructor not found"})
	}

	if reqData.CategoryID != nil {
		var category models.Category
		if err := db.Where("id = ?", *reqData.CategoryID).First(&category).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Category not found"})
		}
	}
	return nil
}

// AddCourse creates a course with optional thumbnail and content uploads.
// Files are classified by extension into thumbnails/documents/videos.
func AddCourse(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedCourse").(*CourseRequest)
	if reqData == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if resp := checkRelations(c, reqData); resp != nil {
		return resp
	}

	thumbnailURL := ""
	if file, err := c.FormFile("thumbnailUrl"); err == nil && file != nil {
		path, err := utils.SaveUploadedFile(file)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		thumbnailURL = path
	}

	contentURL := ""
	if file, err := c.FormFile("contentUrl"); err == nil && file != nil {
		path, err := utils.SaveUploadedFile(file)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		contentURL = path
	}

	course := models.Course{
		Title:         reqData.Title,
		Description:   reqData.Description,
		Price:         reqData.Price,
		CategoryID:    reqData.CategoryID,
		Status:        reqData.Status,
		InstructorID:  reqData.InstructorID,
		EnrolledCount: reqData.EnrolledCount,
		ThumbnailURL:  thumbnailURL,
		ContentURL:    contentURL,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error adding course: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

// GetCourses lists all courses with instructor and category resolved
func GetCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.
		Preload("Instructor").Preload("Category").
		Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch courses"})
	}
	return c.JSON(courses)
}

// UpdateCourse updates a course; replaced uploads have their old files
// removed from disk
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, _ := c.Locals("validatedCourse").(*CourseRequest)
	if reqData == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	if resp := checkRelations(c, reqData); resp != nil {
		return resp
	}

	if file, err := c.FormFile("thumbnailUrl"); err == nil && file != nil {
		path, err := utils.SaveUploadedFile(file)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		utils.RemoveFile(course.ThumbnailURL)
		course.ThumbnailURL = path
	}

	if file, err := c.FormFile("contentUrl"); err == nil && file != nil {
		path, err := utils.SaveUploadedFile(file)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		utils.RemoveFile(course.ContentURL)
		course.ContentURL = path
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Price = reqData.Price
	course.CategoryID = reqData.CategoryID
	course.Status = reqData.Status
	course.InstructorID = reqData.InstructorID
	course.EnrolledCount = reqData.EnrolledCount

	if err := db.Save(&course).Error; err != nil {
		log.Printf("Error updating course: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(course)
}

// DeleteCourse removes the stored files then the row
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	utils.RemoveFile(course.ThumbnailURL)
	utils.RemoveFile(course.ContentURL)

	if err := db.Delete(&course).Error; err != nil {
		log.Printf("Error deleting course: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Course deleted successfully"})
}
