package models

import (
	"time"

	"gorm.io/gorm"
)

// TimesheetEntry is one calendar day of one user's logged hours. Rows are
// materialized lazily when a week is first viewed, then mutated in place by
// the employee (raw fields) and the admin (Admin* fields).
type TimesheetEntry struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID    int       `gorm:"not null;uniqueIndex:idx_entries_user_date" json:"userId"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_entries_user_date" json:"date"`
	FirstName string    `json:"firstName"`

	Client      string  `json:"clients"`
	Project     string  `json:"project"`
	ProjectType string  `json:"projectType"`
	Hours       float64 `json:"hours"`
	Comments    string  `json:"comments"`

	// Admin-mirror fields: written equal to the employee values at
	// save/submit time, independently overridable during admin review.
	AdminTime        float64 `json:"adminTime"`
	AdminComments    string  `json:"adminComments"`
	AdminProject     string  `json:"adminProject"`
	AdminClient      string  `json:"adminClient"`
	AdminProjectType string  `json:"adminProjectType"`

	Submitted int `gorm:"not null;default:0" json:"submitted"`
	Saved     int `gorm:"not null;default:0" json:"saved"`
}
