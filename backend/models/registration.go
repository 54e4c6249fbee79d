package models

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

var RegistrationStatuses = []string{StatusPending, StatusConfirmed, StatusCancelled}

var ExperienceLevels = []string{"beginner", "intermediate", "advanced", "professional"}

// Registration is an applicant's request to join a course. Rows are never deleted;
// only Status changes after creation.
type Registration struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	FirstName        string    `gorm:"not null" json:"firstName"`
	LastName         string    `gorm:"not null" json:"lastName"`
	Email            string    `gorm:"not null;index" json:"email"`
	Phone            string    `json:"phone"`
	Country          string    `json:"country"`
	CourseID         string    `gorm:"index" json:"courseId"`
	ExperienceLevel  string    `json:"experienceLevel"`
	Goals            string    `gorm:"type:text" json:"goals"`
	Newsletter       bool      `gorm:"not null;default:false" json:"newsletter"`
	AgreeTerms       bool      `gorm:"not null;default:false" json:"agreeTerms"`
	Status           string    `gorm:"size:16;not null;default:pending;index" json:"status"`
	RegistrationDate time.Time `gorm:"not null;index" json:"registrationDate"`
}
