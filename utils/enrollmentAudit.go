package utils

import (
	"coursehub-backend/database"
	"coursehub-backend/models"
	"log"

	"github.com/robfig/cron/v3"
)

// StartEnrollmentAudit schedules the nightly enrolled-count audit and returns
// the running scheduler.
//
// Course.EnrolledCount is maintained by hand and the revenue rollup trusts
// it, so drift against the real enrollment rows silently skews revenue. The
// audit makes the drift visible in the logs without changing any data.
func StartEnrollmentAudit() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("0 3 * * *", AuditEnrolledCounts); err != nil {
		log.Printf("[ENROLLMENT-AUDIT] failed to schedule: %v", err)
		return c
	}
	c.Start()
	return c
}

// AuditEnrolledCounts logs every course whose stored enrolledCount differs
// from the number of enrollment rows referencing it
func AuditEnrolledCounts() {
	db := database.Database.Db

	var courses []models.Course
	if err := db.Find(&courses).Error; err != nil {
		log.Printf("[ENROLLMENT-AUDIT] error fetching courses: %v", err)
		return
	}

	drifted := 0
	for _, course := range courses {
		var actual int64
		if err := db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&actual).Error; err != nil {
			log.Printf("[ENROLLMENT-AUDIT] error counting enrollments for course %d: %v", course.ID, err)
			continue
		}
		if int(actual) != course.EnrolledCount {
			drifted++
			log.Printf("[ENROLLMENT-AUDIT] course %d (%q): enrolledCount=%d but %d enrollment rows",
				course.ID, course.Title, course.EnrolledCount, actual)
		}
	}

	log.Printf("[ENROLLMENT-AUDIT] checked %d courses, %d drifted", len(courses), drifted)
}
