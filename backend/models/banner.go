package models

import "time"

type Banner struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Subtitle     *string   `json:"subtitle"`
	ImageURL     string    `gorm:"not null" json:"imageUrl"`
	LinkURL      *string   `json:"linkUrl"`
	LinkText     *string   `json:"linkText"`
	IsActive     bool      `gorm:"not null;index" json:"isActive"`
	DisplayOrder int       `gorm:"not null;default:0" json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
