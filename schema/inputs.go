package schema

import "academy/backend/models"

type CourseInput struct {
	ID          string `json:"id" validate:"omitempty,max=160"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Level       string `json:"level" validate:"required,oneof=Beginner Intermediate Advanced Specialized Professional"`
	Duration    string `json:"duration" validate:"required,max=100"`
	Price       string `json:"price" validate:"required,decimal"`
	Enrolled    int    `json:"enrolled" validate:"gte=0"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
	DetailsURL  string `json:"detailsUrl" validate:"omitempty,url"`
}

func CourseInputFrom(c models.Course) CourseInput {
	return CourseInput{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Level:       c.Level,
		Duration:    c.Duration,
		Price:       c.Price,
		Enrolled:    c.Enrolled,
		ImageURL:    c.ImageURL,
		DetailsURL:  c.DetailsURL,
	}
}

// Apply copies every field except ID, which is immutable after creation.
func (in CourseInput) Apply(c *models.Course) {
	c.Title = in.Title
	c.Description = in.Description
	c.Level = in.Level
	c.Duration = in.Duration
	c.Price = in.Price
	c.Enrolled = in.Enrolled
	c.ImageURL = in.ImageURL
	c.DetailsURL = in.DetailsURL
}

// NewCourseInput returns the blank course form.
func NewCourseInput() CourseInput {
	return CourseInput{Level: models.LevelBeginner}
}

type BannerInput struct {
	Title        string  `json:"title" validate:"required,max=200"`
	Subtitle     *string `json:"subtitle"`
	ImageURL     string  `json:"imageUrl" validate:"required"`
	LinkURL      *string `json:"linkUrl" validate:"omitempty,url"`
	LinkText     *string `json:"linkText" validate:"omitempty,max=60"`
	IsActive     bool    `json:"isActive"`
	DisplayOrder int     `json:"displayOrder" validate:"gte=0"`
}

// NewBannerInput returns the blank banner form: active, first in order.
func NewBannerInput() BannerInput {
	return BannerInput{IsActive: true}
}

func BannerInputFrom(b models.Banner) BannerInput {
	return BannerInput{
		Title:        b.Title,
		Subtitle:     b.Subtitle,
		ImageURL:     b.ImageURL,
		LinkURL:      b.LinkURL,
		LinkText:     b.LinkText,
		IsActive:     b.IsActive,
		DisplayOrder: b.DisplayOrder,
	}
}

// Normalize turns blank optional strings into nil so they are stored as NULL.
func (in *BannerInput) Normalize() {
	in.Subtitle = nilIfBlank(in.Subtitle)
	in.LinkURL = nilIfBlank(in.LinkURL)
	in.LinkText = nilIfBlank(in.LinkText)
}

func (in BannerInput) Apply(b *models.Banner) {
	b.Title = in.Title
	b.Subtitle = in.Subtitle
	b.ImageURL = in.ImageURL
	b.LinkURL = in.LinkURL
	b.LinkText = in.LinkText
	b.IsActive = in.IsActive
	b.DisplayOrder = in.DisplayOrder
}

type SettingInput struct {
	Key         string  `json:"key" validate:"required,max=100"`
	Value       string  `json:"value" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=text number boolean json url color"`
	Description *string `json:"description"`
}

func NewSettingInput() SettingInput {
	return SettingInput{Type: models.SettingText}
}

func SettingInputFrom(s models.WebsiteSetting) SettingInput {
	return SettingInput{Key: s.Key, Value: s.Value, Type: s.Type, Description: s.Description}
}

// SettingValueInput is the only body accepted when editing an existing setting.
type SettingValueInput struct {
	Value string `json:"value" validate:"required"`
}

type RegistrationInput struct {
	FirstName       string `json:"firstName" validate:"required,max=100"`
	LastName        string `json:"lastName" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"omitempty,max=32"`
	Country         string `json:"country" validate:"required"`
	CourseID        string `json:"courseId" validate:"required"`
	ExperienceLevel string `json:"experienceLevel" validate:"required,oneof=beginner intermediate advanced professional"`
	Goals           string `json:"goals" validate:"max=2000"`
	Newsletter      bool   `json:"newsletter"`
	AgreeTerms      bool   `json:"agreeTerms"`
}

// TermsMessage is reported against agreeTerms whenever a registration arrives without consent.
const TermsMessage = "You must agree to the Terms of Service to continue."

type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type ContactInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"omitempty,oneof=course-inquiry enrollment technical-support partnership other"`
	Message string `json:"message" validate:"required,max=5000"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func nilIfBlank(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
