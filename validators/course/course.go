package courseValidator

import (
	courseController "coursehub-backend/controllers/course"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CourseID validates the :id path parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID"})
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}

// UpsertCourse validates the multipart course form for add and update.
// The thumbnailUrl/contentUrl files are handled by the controller.
func UpsertCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.CourseRequest)

		reqData.Title = strings.TrimSpace(c.FormValue("title"))
		reqData.Description = strings.TrimSpace(c.FormValue("description"))
		reqData.Status = c.FormValue("status", "Draft")

		errors := make(map[string]string)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}

		if priceStr := c.FormValue("price"); priceStr != "" {
			price, err := strconv.ParseFloat(priceStr, 64)
			if err != nil || price < 0 {
				errors["price"] = "Price must be a non-negative number!"
			} else {
				reqData.Price = price
			}
		}

		instructorStr := c.FormValue("instructorId")
		instructorID, err := strconv.Atoi(instructorStr)
		if instructorStr == "" || err != nil || instructorID <= 0 {
			errors["instructorId"] = "Instructor ID is required!"
		} else {
			reqData.InstructorID = uint(instructorID)
		}

		if categoryStr := c.FormValue("categoryId"); categoryStr != "" {
			categoryID, err := strconv.Atoi(categoryStr)
			if err != nil || categoryID <= 0 {
				errors["categoryId"] = "Invalid category ID!"
			} else {
				id := uint(categoryID)
				reqData.CategoryID = &id
			}
		}

		if countStr := c.FormValue("enrolledCount"); countStr != "" {
			count, err := strconv.Atoi(countStr)
			if err != nil || count < 0 {
				errors["enrolledCount"] = "Enrolled count must be a non-negative integer!"
			} else {
				reqData.EnrolledCount = count
			}
		}

		if len(errors) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Validation failed",
				"errors": errors,
			})
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
