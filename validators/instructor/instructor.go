package instructorValidator

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// InstructorID validates the :id path parameter
func InstructorID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid instructor ID"})
		}
		c.Locals("instructorID", id)
		return c.Next()
	}
}

// UpsertInstructor validates the multipart form for add and update.
// The profileImage file itself is handled by the controller.
func UpsertInstructor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name      string
			Email     string
			Status    string
			Contact   string
			Rating    float64
			CourseIDs []uint
		})

		reqData.Name = strings.TrimSpace(c.FormValue("name"))
		reqData.Email = strings.TrimSpace(c.FormValue("email"))
		reqData.Status = c.FormValue("status", "Active")
		reqData.Contact = strings.TrimSpace(c.FormValue("contact"))

		if reqData.Name == "" || reqData.Email == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Name and Email are required"})
		}
		if len(reqData.Name) < 2 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Name must be at least 2 characters long"})
		}
		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Please provide a valid email address"})
		}

		if ratingStr := c.FormValue("rating"); ratingStr != "" {
			rating, err := strconv.ParseFloat(ratingStr, 64)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Rating must be a number"})
			}
			reqData.Rating = rating
		}

		// courseIds arrives as repeated form values or one comma-separated value
		if form, err := c.MultipartForm(); err == nil && form != nil {
			for _, raw := range form.Value["courseIds"] {
				for _, part := range strings.Split(raw, ",") {
					part = strings.TrimSpace(part)
					if part == "" {
						continue
					}
					id, err := strconv.Atoi(part)
					if err != nil || id <= 0 {
						return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid course ID in courseIds"})
					}
					reqData.CourseIDs = append(reqData.CourseIDs, uint(id))
				}
			}
		}

		c.Locals("validatedInstructor", reqData)
		return c.Next()
	}
}
