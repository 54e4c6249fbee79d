package models

import "time"

// Course levels accepted by the admin form and the API.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelSpecialized  = "Specialized"
	LevelProfessional = "Professional"
)

var CourseLevels = []string{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelSpecialized, LevelProfessional}

// Course is a catalog entry. ID is a slug chosen at creation and never changes.
type Course struct {
	ID          string    `gorm:"primaryKey;size:160" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Level       string    `gorm:"size:32;not null;default:Beginner" json:"level"`
	Duration    string    `json:"duration"`
	Price       string    `gorm:"size:32" json:"price"`
	Enrolled    int       `gorm:"not null;default:0" json:"enrolled"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	DetailsURL  string    `json:"detailsUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
