package panels

import (
	"academy/backend/models"
	"academy/client/api"
	"academy/client/cache"
	"academy/client/forms"
	"academy/schema"
	"context"
	"errors"
)

// NewRegistrationForm is the public course registration form. It refuses to
// submit, without any request, until the terms are accepted.
func NewRegistrationForm(d Deps) *forms.Form[schema.RegistrationInput] {
	res := registrationsResource(d)
	return forms.New("registration", schema.RegistrationInput{}, forms.Submitter[schema.RegistrationInput](res), d.notifier(),
		forms.WithCheck(func(v schema.RegistrationInput) map[string]string {
			if !v.AgreeTerms {
				return map[string]string{"agreeTerms": schema.TermsMessage}
			}
			return nil
		}),
		forms.WithSuccessMessage[schema.RegistrationInput]("Registration submitted! We will contact you shortly."))
}

// OpenRegistration opens form with the chosen course preselected.
func OpenRegistration(form *forms.Form[schema.RegistrationInput], courseID string) {
	form.OpenCreate()
	form.Update(func(v *schema.RegistrationInput) { v.CourseID = courseID })
}

var errContactUpdate = errors.New("contact messages cannot be edited")

type contactSubmitter struct {
	api *api.Client
}

func (s contactSubmitter) Create(ctx context.Context, in schema.ContactInput) error {
	return s.api.SendContact(ctx, in)
}

func (s contactSubmitter) Update(context.Context, string, schema.ContactInput) error {
	return errContactUpdate
}

func NewContactForm(d Deps) *forms.Form[schema.ContactInput] {
	return forms.New("message", schema.ContactInput{}, forms.Submitter[schema.ContactInput](contactSubmitter{api: d.API}), d.notifier(),
		forms.WithSuccessMessage[schema.ContactInput]("Thank you! Your message has been sent."))
}

// Carousel shows active banners in the order the server returned them. It
// renders nothing while loading, after an error, or with no active banner.
type Carousel struct {
	mount
	deps Deps
}

func NewCarousel(d Deps) *Carousel {
	return &Carousel{deps: d}
}

func (c *Carousel) Key() cache.Key {
	return cache.NewKey(ResourceBanners, api.BannerQuery(true))
}

func (c *Carousel) Open() {
	if c.sub != nil {
		return
	}
	c.sub = c.deps.Cache.Subscribe(c.Key(), func(ctx context.Context, _ cache.Key) (interface{}, error) {
		return c.deps.API.Banners(ctx, true)
	}, c.changed)
}

func (c *Carousel) Slides() []models.Banner {
	state := c.state()
	if !state.Ready() {
		return nil
	}
	banners, _ := cache.As[[]models.Banner](state)
	var slides []models.Banner
	for _, b := range banners {
		if b.IsActive {
			slides = append(slides, b)
		}
	}
	return slides
}

func (c *Carousel) Visible() bool {
	return len(c.Slides()) > 0
}

// Catalog is the read-only course list of the public page.
type Catalog struct {
	mount
	Resource *Resource[models.Course, schema.CourseInput]
}

func NewCatalog(d Deps) *Catalog {
	return &Catalog{Resource: NewResource[models.Course, schema.CourseInput](d, "course", ResourceCourses, "/api/courses")}
}

func (c *Catalog) Open() {
	if c.sub == nil {
		c.sub = c.Resource.Subscribe(c.changed)
	}
}

func (c *Catalog) Courses() []models.Course {
	courses, _ := cache.As[[]models.Course](c.state())
	return courses
}

// Err is the load failure shown in place of the course cards.
func (c *Catalog) Err() error {
	return c.state().Err
}
