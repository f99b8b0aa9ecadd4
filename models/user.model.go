package models

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of account roles. Historical data stored the same
// role in several casings ("STUDENT", "Student", "student"), so every
// boundary runs raw strings through ParseRole before comparing anything.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// ParseRole canonicalizes a raw role string.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student":
		return RoleStudent, nil
	case "instructor":
		return RoleInstructor, nil
	case "admin":
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// User is an account of any role. Students own enrollments, instructors own
// courses, admins own the back office.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     *string   `json:"-"` // null for students and Google accounts
	Role         Role      `gorm:"type:varchar(20);default:'student';index" json:"role"`
	Status       string    `gorm:"default:'Active'" json:"status"`
	Contact      string    `json:"contact"`
	Rating       float64   `gorm:"default:0" json:"rating"` // 0-5, instructors only
	ProfileImage string    `json:"profileImage"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Courses     []Course     `gorm:"foreignKey:InstructorID" json:"courses,omitempty"`
	Enrollments []Enrollment `gorm:"foreignKey:UserID" json:"enrollments,omitempty"`
}
