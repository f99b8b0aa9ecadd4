package models

import "time"

// Enrollment links a student to a course. Pure join row, no progress state.
type Enrollment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	CourseID  uint      `gorm:"index;not null" json:"courseId"`
	CreatedAt time.Time `json:"createdAt"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}
