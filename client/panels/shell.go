package panels

import (
	"academy/backend/models"
	"academy/client/session"
	"context"
	"fmt"
)

type Section string

const (
	SectionDashboard     Section = "dashboard"
	SectionCourses       Section = "courses"
	SectionRegistrations Section = "registrations"
	SectionBanners       Section = "banners"
	SectionSettings      Section = "settings"
)

// Sections is the sidebar order.
var Sections = []Section{SectionDashboard, SectionCourses, SectionRegistrations, SectionBanners, SectionSettings}

// Panel is a section body. Open starts following its data, Close stops.
type Panel interface {
	Open()
	Close()
}

// Shell is the session-gated admin container: a sidebar of sections with one
// panel displayed at a time.
type Shell struct {
	guard  *session.Guard
	admin  models.AdminUser
	active Section
	panels map[Section]Panel

	Dashboard     *Dashboard
	Courses       *CoursesPanel
	Registrations *RegistrationsPanel
	Banners       *BannersPanel
	Settings      *SettingsPanel
}

func NewShell(d Deps, guard *session.Guard, pageSize int) *Shell {
	s := &Shell{
		guard:         guard,
		Dashboard:     NewDashboard(d),
		Courses:       NewCoursesPanel(d, pageSize),
		Registrations: NewRegistrationsPanel(d, pageSize),
		Banners:       NewBannersPanel(d, pageSize),
		Settings:      NewSettingsPanel(d, pageSize),
	}
	s.panels = map[Section]Panel{
		SectionDashboard:     s.Dashboard,
		SectionCourses:       s.Courses,
		SectionRegistrations: s.Registrations,
		SectionBanners:       s.Banners,
		SectionSettings:      s.Settings,
	}
	return s
}

// Enter checks the session before anything is shown. Without one the guard
// has already redirected and nothing is opened.
func (s *Shell) Enter(ctx context.Context) bool {
	admin, ok := s.guard.Enter(ctx)
	if !ok {
		return false
	}
	s.admin = admin
	if err := s.Select(SectionDashboard); err != nil {
		return false
	}
	return true
}

func (s *Shell) Admin() models.AdminUser { return s.admin }

func (s *Shell) Active() Section { return s.active }

// Select closes the displayed panel and opens sec.
func (s *Shell) Select(sec Section) error {
	next, ok := s.panels[sec]
	if !ok {
		return fmt.Errorf("unknown section %q", sec)
	}
	if s.active == sec {
		return nil
	}
	if current, ok := s.panels[s.active]; ok {
		current.Close()
	}
	s.active = sec
	next.Open()
	return nil
}

func (s *Shell) Logout(ctx context.Context) error {
	if current, ok := s.panels[s.active]; ok {
		current.Close()
	}
	s.active = ""
	s.admin = models.AdminUser{}
	return s.guard.Logout(ctx)
}
