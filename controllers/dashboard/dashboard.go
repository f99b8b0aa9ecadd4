package dashboardController

import (
	"coursehub-backend/database"
	"coursehub-backend/models"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// RevenueRow is one course's contribution to total revenue. Legacy rows can
// hold NULL price or enrolled_count, which scan as nil.
type RevenueRow struct {
	Price         *float64
	EnrolledCount *int
}

// TotalRevenue sums price*enrolledCount across all courses, coalescing NULL
// price or count to zero. The raw float sum is returned unrounded; this is a
// point-in-time snapshot, not a ledger.
func TotalRevenue(rows []RevenueRow) float64 {
	total := 0.0
	for _, row := range rows {
		price := 0.0
		if row.Price != nil {
			price = *row.Price
		}
		count := 0
		if row.EnrolledCount != nil {
			count = *row.EnrolledCount
		}
		total += price * float64(count)
	}
	return total
}

// Activity is one entry of the admin dashboard's recent-activity feed.
type Activity struct {
	Activity string `json:"activity"`
	Details  string `json:"details"`
	Date     string `json:"date"` // calendar day, YYYY-MM-DD
}

const activityDay = "2006-01-02"

// CollectRecentActivities merges the newest registrations, courses and
// enrollment into one feed, newest day first.
//
// Each sub-query is an independent "recent N" (2 students, 2 courses,
// 1 enrollment); only the combined list is sorted. Dates carry day
// granularity and same-day entries keep concatenation order.
func CollectRecentActivities(db *gorm.DB) ([]Activity, error) {
	activities := make([]Activity, 0, 5)

	var students []models.User
	if err := db.Where("role = ?", models.RoleStudent).
		Order("created_at desc").Limit(2).Find(&students).Error; err != nil {
		return nil, err
	}
	for _, s := range students {
		activities = append(activities, Activity{
			Activity: "New Student Registration",
			Details:  s.Name + " registered",
			Date:     now.New(s.CreatedAt).BeginningOfDay().Format(activityDay),
		})
	}

	var courses []models.Course
	if err := db.Preload("Instructor").
		Order("created_at desc").Limit(2).Find(&courses).Error; err != nil {
		return nil, err
	}
	for _, course := range courses {
		instructorName := ""
		if course.Instructor != nil {
			instructorName = course.Instructor.Name
		}
		activities = append(activities, Activity{
			Activity: "Recently Published Course",
			Details:  fmt.Sprintf("%s published '%s'", instructorName, course.Title),
			Date:     now.New(course.CreatedAt).BeginningOfDay().Format(activityDay),
		})
	}

	var enrollment models.Enrollment
	err := db.Preload("User").Preload("Course").
		Order("created_at desc").First(&enrollment).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil {
		userName, courseTitle := "", ""
		if enrollment.User != nil {
			userName = enrollment.User.Name
		}
		if enrollment.Course != nil {
			courseTitle = enrollment.Course.Title
		}
		activities = append(activities, Activity{
			Activity: "Latest Enrollment",
			Details:  fmt.Sprintf("%s enrolled in '%s'", userName, courseTitle),
			Date:     now.New(enrollment.CreatedAt).BeginningOfDay().Format(activityDay),
		})
	}

	// YYYY-MM-DD compares lexicographically; stable sort keeps the
	// students/courses/enrollment order within a day.
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Date > activities[j].Date
	})

	return activities, nil
}

// GetDashboardStats composes the role counts with the revenue rollup.
//
// The four reads are separate queries, not one snapshot; under concurrent
// writes the numbers can reflect slightly different points in time.
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalStudents, totalInstructors, totalCourses int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleStudent).
		Count(&totalStudents).Error; err != nil {
		return statsError(c, err)
	}
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleInstructor).
		Count(&totalInstructors).Error; err != nil {
		return statsError(c, err)
	}
	if err := db.Model(&models.Course{}).Count(&totalCourses).Error; err != nil {
		return statsError(c, err)
	}

	var rows []RevenueRow
	if err := db.Model(&models.Course{}).
		Select("price, enrolled_count").Scan(&rows).Error; err != nil {
		return statsError(c, err)
	}

	return c.JSON(fiber.Map{
		"totalStudents":    totalStudents,
		"totalInstructors": totalInstructors,
		"totalCourses":     totalCourses,
		"totalRevenue":     TotalRevenue(rows),
	})
}

func statsError(c *fiber.Ctx, err error) error {
	log.Printf("Error fetching dashboard stats: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to fetch dashboard stats",
	})
}

// GetRecentActivities returns the merged activity feed, at most 5 entries
func GetRecentActivities(c *fiber.Ctx) error {
	activities, err := CollectRecentActivities(database.Database.Db)
	if err != nil {
		log.Printf("Error fetching recent activities: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch recent activities",
		})
	}
	return c.JSON(activities)
}
