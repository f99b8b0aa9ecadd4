package instructorController

import (
	"coursehub-backend/config"
	"coursehub-backend/database"
	"coursehub-backend/models"
	"coursehub-backend/utils"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type instructorSummary struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	TotalCourses int       `json:"totalCourses"`
	Rating       float64   `json:"rating"`
	Status       string    `json:"status"`
	ProfileImage string    `json:"profileImage"`
	Contact      string    `json:"contact"`
	CreatedAt    time.Time `json:"createdAt"`
}

func summarize(inst models.User) instructorSummary {
	return instructorSummary{
		ID:           inst.ID,
		Name:         inst.Name,
		Email:        inst.Email,
		TotalCourses: len(inst.Courses),
		Rating:       inst.Rating,
		Status:       inst.Status,
		ProfileImage: inst.ProfileImage,
		Contact:      inst.Contact,
		CreatedAt:    inst.CreatedAt,
	}
}

// GetInstructors lists instructors for the back office, with optional
// status and free-text filters
func GetInstructors(c *fiber.Ctx) error {
	db := database.Database.Db.Where("role = ?", models.RoleInstructor)

	if status := c.Query("status"); status != "" && status != "All" {
		db = db.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		db = db.Where(
			"(LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(contact) LIKE ?)",
			pattern, pattern, pattern,
		)
	}

	var instructors []models.User
	if err := db.Preload("Courses").Order("created_at desc").Find(&instructors).Error; err != nil {
		log.Printf("Error fetching instructors: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch instructors"})
	}

	data := make([]instructorSummary, len(instructors))
	for i, inst := range instructors {
		data[i] = summarize(inst)
	}
	return c.JSON(data)
}

// GetPublicInstructors feeds the marketing site's "meet our instructors"
// section. Unauthenticated; active instructors only.
func GetPublicInstructors(c *fiber.Ctx) error {
	var instructors []models.User
	if err := database.Database.Db.
		Where("role = ? AND status = ?", models.RoleInstructor, "Active").
		Preload("Courses").Order("created_at desc").Find(&instructors).Error; err != nil {
		log.Printf("Error fetching public instructors: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch instructors"})
	}

	type publicInstructor struct {
		ID           uint    `json:"id"`
		Name         string  `json:"name"`
		Rating       float64 `json:"rating"`
		ProfileImage string  `json:"profileImage"`
		TotalCourses int     `json:"totalCourses"`
	}

	data := make([]publicInstructor, len(instructors))
	for i, inst := range instructors {
		data[i] = publicInstructor{
			ID:           inst.ID,
			Name:         inst.Name,
			Rating:       inst.Rating,
			ProfileImage: inst.ProfileImage,
			TotalCourses: len(inst.Courses),
		}
	}
	return c.JSON(data)
}

// AddInstructor creates an instructor account with a generated password and
// mails the credentials. Email delivery is awaited inline; when it fails the
// account is still created and the plaintext password is returned so the
// admin can hand it over manually.
func AddInstructor(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedInstructor").(*struct {
		Name      string
		Email     string
		Status    string
		Contact   string
		Rating    float64
		CourseIDs []uint
	})
	if reqData == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Email already exists. Please use a different email address.",
		})
	}

	profileImage := ""
	if file, err := c.FormFile("profileImage"); err == nil && file != nil {
		path, err := utils.SaveProfileImage(file)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		profileImage = path
	}

	tempPassword := utils.GenerateTempPassword()
	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to add instructor. Please try again."})
	}

	password := string(hashed)
	instructor := models.User{
		Name:         reqData.Name,
		Email:        strings.ToLower(reqData.Email),
		Password:     &password,
		Role:         models.RoleInstructor,
		Status:       reqData.Status,
		Contact:      reqData.Contact,
		Rating:       clampRating(reqData.Rating),
		ProfileImage: profileImage,
	}

	if err := db.Create(&instructor).Error; err != nil {
		log.Printf("Error adding instructor: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to add instructor. Please try again."})
	}

	totalCourses := 0
	if len(reqData.CourseIDs) > 0 {
		if err := db.Model(&models.Course{}).Where("id IN ?", reqData.CourseIDs).
			Update("instructor_id", instructor.ID).Error; err != nil {
			log.Printf("Error assigning courses to instructor %d: %v", instructor.ID, err)
		} else {
			totalCourses = len(reqData.CourseIDs)
		}
	}

	if err := utils.SendInstructorWelcomeEmail(instructor.Email, instructor.Name, tempPassword); err != nil {
		log.Printf("Error sending welcome email to %s: %v", instructor.Email, err)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Instructor added successfully, but email could not be sent. Please provide login credentials manually.",
			"instructor": fiber.Map{
				"id":                instructor.ID,
				"name":              instructor.Name,
				"email":             instructor.Email,
				"status":            instructor.Status,
				"totalCourses":      totalCourses,
				"emailSent":         false,
				"temporaryPassword": tempPassword,
				"emailError":        err.Error(),
			},
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Instructor added successfully! Welcome email with login credentials sent to %s", instructor.Email),
		"instructor": fiber.Map{
			"id":           instructor.ID,
			"name":         instructor.Name,
			"email":        instructor.Email,
			"status":       instructor.Status,
			"totalCourses": totalCourses,
			"emailSent":    true,
		},
	})
}

// UpdateInstructor updates profile fields and optionally replaces the
// profile image or reassigns courses
func UpdateInstructor(c *fiber.Ctx) error {
	instructorID := c.Locals("instructorID").(int)

	reqData, _ := c.Locals("validatedInstructor").(*struct {
		Name      string
		Email     string
		Status    string
		Contact   string
		Rating    float64
		CourseIDs []uint
	})
	if reqData == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	db := database.Database.Db

	var instructor models.User
	if err := db.Where("id = ? AND role = ?", instructorID, models.RoleInstructor).
		First(&instructor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Instructor not found"})
	}

	email := strings.ToLower(reqData.Email)
	var other models.User
	if err := db.Where("email = ? AND id <> ?", email, instructor.ID).First(&other).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email already exists for another user"})
	}

	instructor.Name = reqData.Name
	instructor.Email = email
	instructor.Status = reqData.Status
	instructor.Contact = reqData.Contact
	instructor.Rating = clampRating(reqData.Rating)

	if file, err := c.FormFile("profileImage"); err == nil && file != nil {
		path, err := utils.SaveProfileImage(file)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		utils.RemoveFile(instructor.ProfileImage)
		instructor.ProfileImage = path
	}

	if err := db.Save(&instructor).Error; err != nil {
		log.Printf("Error updating instructor: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update instructor"})
	}

	if len(reqData.CourseIDs) > 0 {
		if err := db.Model(&models.Course{}).Where("id IN ?", reqData.CourseIDs).
			Update("instructor_id", instructor.ID).Error; err != nil {
			log.Printf("Error reassigning courses to instructor %d: %v", instructor.ID, err)
		}
	}

	var totalCourses int64
	db.Model(&models.Course{}).Where("instructor_id = ?", instructor.ID).Count(&totalCourses)

	return c.JSON(fiber.Map{
		"message": "Instructor updated successfully",
		"instructor": fiber.Map{
			"id":           instructor.ID,
			"name":         instructor.Name,
			"email":        instructor.Email,
			"status":       instructor.Status,
			"contact":      instructor.Contact,
			"rating":       instructor.Rating,
			"totalCourses": totalCourses,
			"profileImage": instructor.ProfileImage,
		},
	})
}

// DeleteInstructor hard-deletes an instructor. Blocked while they still own
// courses so no course is left without a resolvable instructor.
func DeleteInstructor(c *fiber.Ctx) error {
	instructorID := c.Locals("instructorID").(int)
	db := database.Database.Db

	var instructor models.User
	if err := db.Preload("Courses").Where("id = ? AND role = ?", instructorID, models.RoleInstructor).
		First(&instructor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Instructor not found"})
	}

	if len(instructor.Courses) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf(
				"Cannot delete instructor. They are assigned to %d course(s). Please reassign their courses first.",
				len(instructor.Courses),
			),
		})
	}

	if err := db.Delete(&instructor).Error; err != nil {
		log.Printf("Error deleting instructor: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete instructor"})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Instructor %q deleted successfully", instructor.Name),
		"deletedInstructor": fiber.Map{
			"id":    instructor.ID,
			"name":  instructor.Name,
			"email": instructor.Email,
		},
	})
}

// GetInstructor returns one instructor with per-course student counts
func GetInstructor(c *fiber.Ctx) error {
	instructorID := c.Locals("instructorID").(int)
	db := database.Database.Db

	var instructor models.User
	if err := db.Preload("Courses").First(&instructor, instructorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Instructor not found"})
	}

	if instructor.Role != models.RoleInstructor {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User is not an instructor"})
	}

	type courseInfo struct {
		ID           uint   `json:"id"`
		Title        string `json:"title"`
		Description  string `json:"description"`
		StudentCount int64  `json:"studentCount"`
	}

	courses := make([]courseInfo, len(instructor.Courses))
	var totalStudents int64
	for i, course := range instructor.Courses {
		var count int64
		db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&count)
		totalStudents += count
		courses[i] = courseInfo{
			ID:           course.ID,
			Title:        course.Title,
			Description:  course.Description,
			StudentCount: count,
		}
	}

	return c.JSON(fiber.Map{
		"id":            instructor.ID,
		"name":          instructor.Name,
		"email":         instructor.Email,
		"totalCourses":  len(instructor.Courses),
		"totalStudents": totalStudents,
		"rating":        instructor.Rating,
		"status":        instructor.Status,
		"contact":       instructor.Contact,
		"profileImage":  instructor.ProfileImage,
		"courses":       courses,
		"createdAt":     instructor.CreatedAt,
	})
}

// GetInstructorCourses lists every course the instructor owns
func GetInstructorCourses(c *fiber.Ctx) error {
	instructorID := c.Locals("instructorID").(int)
	db := database.Database.Db

	if err := db.Where("id = ?", instructorID).First(&models.User{}).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Instructor not found"})
	}

	var courses []models.Course
	if err := db.Where("instructor_id = ?", instructorID).Find(&courses).Error; err != nil {
		log.Printf("Error fetching instructor courses: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch instructor courses"})
	}

	return c.JSON(courses)
}

func clampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}
