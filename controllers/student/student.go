package studentController

import (
	"coursehub-backend/database"
	"coursehub-backend/models"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type studentResponse struct {
	models.User
	EnrolledCourses string `json:"enrolledCourses"`
}

func formatStudent(s models.User) studentResponse {
	titles := make([]string, 0, len(s.Enrollments))
	for _, e := range s.Enrollments {
		if e.Course != nil {
			titles = append(titles, e.Course.Title)
		}
	}
	return studentResponse{User: s, EnrolledCourses: strings.Join(titles, ", ")}
}

func loadStudent(id uint) (models.User, error) {
	var student models.User
	err := database.Database.Db.Preload("Enrollments.Course").First(&student, id).Error
	return student, err
}

// AddStudent creates a student account, optionally with an initial enrollment
func AddStudent(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedStudent").(*struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Contact string `json:"contact"`
		Status  string `json:"status"`
		Course  *uint  `json:"course"`
		Courses []uint `json:"courses"`
	})
	if reqData == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already exists"})
	}

	status := reqData.Status
	if status == "" {
		status = "Active"
	}

	student := models.User{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Contact: reqData.Contact,
		Role:    models.RoleStudent,
		Status:  status,
	}

	if err := db.Create(&student).Error; err != nil {
		log.Printf("Error adding student: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add student"})
	}

	// Either a single course or a courses list may carry initial enrollments
	courseIDs := reqData.Courses
	if reqData.Course != nil {
		courseIDs = append([]uint{*reqData.Course}, courseIDs...)
	}
	for _, courseID := range courseIDs {
		enrollment := models.Enrollment{UserID: student.ID, CourseID: courseID}
		if err := db.Create(&enrollment).Error; err != nil {
			log.Printf("Error enrolling student %d in course %d: %v", student.ID, courseID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add student"})
		}
	}

	created, err := loadStudent(student.ID)
	if err != nil {
		log.Printf("Error reloading student %d: %v", student.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add student"})
	}

	return c.Status(fiber.StatusCreated).JSON(formatStudent(created))
}

// GetStudents lists all students with their enrolled course titles
func GetStudents(c *fiber.Ctx) error {
	var students []models.User
	if err := database.Database.Db.Where("role = ?", models.RoleStudent).
		Preload("Enrollments.Course").Order("created_at desc").
		Find(&students).Error; err != nil {
		log.Printf("Error fetching students: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	data := make([]studentResponse, len(students))
	for i, s := range students {
		data[i] = formatStudent(s)
	}
	return c.JSON(data)
}

// GetStudentByID returns a single student
func GetStudentByID(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(int)

	student, err := loadStudent(uint(studentID))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	return c.JSON(formatStudent(student))
}

// UpdateStudent updates profile fields; when a courses list is given the
// enrollment set is replaced wholesale
func UpdateStudent(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(int)

	reqData, _ := c.Locals("validatedStudent").(*struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Contact string `json:"contact"`
		Status  string `json:"status"`
		Course  *uint  `json:"course"`
		Courses []uint `json:"courses"`
	})
	if reqData == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := database.Database.Db

	var student models.User
	if err := db.First(&student, studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	var other models.User
	if err := db.Where("email = ? AND id <> ?", reqData.Email, student.ID).First(&other).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already exists for another user"})
	}

	status := reqData.Status
	if status == "" {
		status = "Active"
	}

	student.Name = reqData.Name
	student.Email = reqData.Email
	student.Contact = reqData.Contact
	student.Status = status

	if err := db.Save(&student).Error; err != nil {
		log.Printf("Error updating student: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update student"})
	}

	if reqData.Courses != nil {
		if err := db.Where("user_id = ?", student.ID).Delete(&models.Enrollment{}).Error; err != nil {
			log.Printf("Error clearing enrollments for student %d: %v", student.ID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update student"})
		}
		for _, courseID := range reqData.Courses {
			enrollment := models.Enrollment{UserID: student.ID, CourseID: courseID}
			if err := db.Create(&enrollment).Error; err != nil {
				log.Printf("Error enrolling student %d in course %d: %v", student.ID, courseID, err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update student"})
			}
		}
	}

	updated, err := loadStudent(student.ID)
	if err != nil {
		log.Printf("Error reloading student %d: %v", student.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(formatStudent(updated))
}

// DeleteStudent hard-deletes a student and their enrollments
func DeleteStudent(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(int)
	db := database.Database.Db

	var student models.User
	if err := db.First(&student, studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	if err := db.Where("user_id = ?", student.ID).Delete(&models.Enrollment{}).Error; err != nil {
		log.Printf("Error deleting enrollments for student %d: %v", student.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	if err := db.Delete(&student).Error; err != nil {
		log.Printf("Error deleting student: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete student"})
	}

	return c.JSON(fiber.Map{"message": "Student deleted"})
}
