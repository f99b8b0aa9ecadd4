package models

import "time"

// Category groups courses for the catalog filters.
type Category struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// Course is a sellable course owned by an instructor.
//
// EnrolledCount is a manually maintained counter, not derived from the
// enrollment rows; the revenue rollup trusts it as-is. The nightly audit in
// utils logs any drift against the true row count.
type Course struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         float64   `gorm:"default:0" json:"price"`
	CategoryID    *uint     `json:"categoryId"`
	Status        string    `gorm:"default:'Draft'" json:"status"` // Active, Pending, Draft, Archived
	InstructorID  uint      `gorm:"index" json:"instructorId"`
	EnrolledCount int       `gorm:"default:0" json:"enrolledCount"`
	ThumbnailURL  string    `json:"thumbnailUrl"`
	ContentURL    string    `json:"contentUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Instructor *User     `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
