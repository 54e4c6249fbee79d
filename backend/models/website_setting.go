package models

import "time"

const (
	SettingText    = "text"
	SettingNumber  = "number"
	SettingBoolean = "boolean"
	SettingJSON    = "json"
	SettingURL     = "url"
	SettingColor   = "color"
)

var SettingTypes = []string{SettingText, SettingNumber, SettingBoolean, SettingJSON, SettingURL, SettingColor}

// WebsiteSetting is a typed key/value pair. Key and Type are fixed once created.
type WebsiteSetting struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Key         string    `gorm:"uniqueIndex;size:100;not null" json:"key"`
	Value       string    `gorm:"type:text;not null" json:"value"`
	Type        string    `gorm:"size:16;not null;default:text" json:"type"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
