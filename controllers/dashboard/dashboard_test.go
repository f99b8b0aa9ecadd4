package dashboardController_test

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"coursehub-backend/config"
	dashboardController "coursehub-backend/controllers/dashboard"
	"coursehub-backend/database"
	"coursehub-backend/middleware"
	"coursehub-backend/models"
	dashboardRoutes "coursehub-backend/routers/dashboardRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) {
	config.LoadConfig()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}
}

func newApp() *fiber.App {
	app := fiber.New()
	dashboardRoutes.SetupDashboardRoutes(app)
	return app
}

func adminToken(t *testing.T) string {
	token, err := middleware.GenerateJWT(1, models.RoleAdmin)
	assert.NoError(t, err)
	return token
}

func day(t *testing.T, s string) time.Time {
	ts, err := time.Parse("2006-01-02", s)
	assert.NoError(t, err)
	return ts
}

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }

func TestTotalRevenueCoalescesNulls(t *testing.T) {
	rows := []dashboardController.RevenueRow{
		{Price: ptrFloat(10), EnrolledCount: ptrInt(3)},
		{Price: nil, EnrolledCount: ptrInt(5)},
		{Price: ptrFloat(20), EnrolledCount: nil},
	}
	assert.Equal(t, 30.0, dashboardController.TotalRevenue(rows))
}

func TestTotalRevenueEmpty(t *testing.T) {
	assert.Equal(t, 0.0, dashboardController.TotalRevenue(nil))
	assert.Equal(t, 0.0, dashboardController.TotalRevenue([]dashboardController.RevenueRow{}))
}

func TestGetDashboardStats(t *testing.T) {
	setupTest(t)
	db := database.Database.Db

	instructor := models.User{Name: "Dana", Email: "dana@example.com", Role: models.RoleInstructor}
	assert.NoError(t, db.Create(&instructor).Error)

	for _, u := range []models.User{
		{Name: "Alice", Email: "alice@example.com", Role: models.RoleStudent},
		{Name: "Bob", Email: "bob@example.com", Role: models.RoleStudent},
		{Name: "Carol", Email: "carol@example.com", Role: models.RoleStudent},
	} {
		assert.NoError(t, db.Create(&u).Error)
	}

	courses := []models.Course{
		{Title: "Go Basics", Description: "intro", Price: 50, EnrolledCount: 10, InstructorID: instructor.ID},
		{Title: "SQL", Description: "intro", Price: 30, EnrolledCount: 0, InstructorID: instructor.ID},
	}
	for i := range courses {
		assert.NoError(t, db.Create(&courses[i]).Error)
	}

	var bob models.User
	assert.NoError(t, db.Where("email = ?", "bob@example.com").First(&bob).Error)
	assert.NoError(t, db.Create(&models.Enrollment{UserID: bob.ID, CourseID: courses[0].ID}).Error)

	app := newApp()
	req := httptest.NewRequest("GET", "/api/dashboard/stats", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]float64
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3.0, body["totalStudents"])
	assert.Equal(t, 1.0, body["totalInstructors"])
	assert.Equal(t, 2.0, body["totalCourses"])
	assert.Equal(t, 500.0, body["totalRevenue"])
}

func TestCollectRecentActivities(t *testing.T) {
	setupTest(t)
	db := database.Database.Db

	instructor := models.User{
		Name: "Dana", Email: "dana@example.com", Role: models.RoleInstructor,
		CreatedAt: day(t, "2024-04-20"),
	}
	assert.NoError(t, db.Create(&instructor).Error)

	students := []models.User{
		{Name: "Alice", Email: "alice@example.com", Role: models.RoleStudent, CreatedAt: day(t, "2024-05-01")},
		{Name: "Carol", Email: "carol@example.com", Role: models.RoleStudent, CreatedAt: day(t, "2024-05-02")},
		{Name: "Bob", Email: "bob@example.com", Role: models.RoleStudent, CreatedAt: day(t, "2024-05-03")},
	}
	for i := range students {
		assert.NoError(t, db.Create(&students[i]).Error)
	}

	courses := []models.Course{
		{Title: "SQL", Description: "intro", InstructorID: instructor.ID, CreatedAt: day(t, "2024-05-01")},
		{Title: "Go Basics", Description: "intro", InstructorID: instructor.ID, CreatedAt: day(t, "2024-05-02")},
	}
	for i := range courses {
		assert.NoError(t, db.Create(&courses[i]).Error)
	}

	var bob models.User
	assert.NoError(t, db.Where("email = ?", "bob@example.com").First(&bob).Error)
	var goBasics models.Course
	assert.NoError(t, db.Where("title = ?", "Go Basics").First(&goBasics).Error)
	assert.NoError(t, db.Create(&models.Enrollment{
		UserID: bob.ID, CourseID: goBasics.ID, CreatedAt: day(t, "2024-05-04"),
	}).Error)

	activities, err := dashboardController.CollectRecentActivities(db)
	assert.NoError(t, err)
	assert.Len(t, activities, 5)

	for i := 1; i < len(activities); i++ {
		assert.GreaterOrEqual(t, activities[i-1].Date, activities[i].Date)
	}

	assert.Equal(t, "Latest Enrollment", activities[0].Activity)
	assert.Equal(t, "Bob enrolled in 'Go Basics'", activities[0].Details)
	assert.Equal(t, "2024-05-04", activities[0].Date)

	assert.Equal(t, "New Student Registration", activities[1].Activity)
	assert.Equal(t, "Bob registered", activities[1].Details)

	// 2024-05-02 holds both a registration and a course; registrations come
	// first within a day.
	assert.Equal(t, "Carol registered", activities[2].Details)
	assert.Equal(t, "Dana published 'Go Basics'", activities[3].Details)
	assert.Equal(t, "Dana published 'SQL'", activities[4].Details)
}

func TestGetRecentActivitiesEmptyDatabase(t *testing.T) {
	setupTest(t)

	app := newApp()
	req := httptest.NewRequest("GET", "/api/dashboard/activities", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var activities []dashboardController.Activity
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&activities))
	assert.Empty(t, activities)
}

func TestDashboardRequiresAdmin(t *testing.T) {
	setupTest(t)
	app := newApp()

	req := httptest.NewRequest("GET", "/api/dashboard/stats", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	studentToken, err := middleware.GenerateJWT(2, models.RoleStudent)
	assert.NoError(t, err)

	req = httptest.NewRequest("GET", "/api/dashboard/stats", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
