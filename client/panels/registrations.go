package panels

import (
	"academy/backend/models"
	"academy/client/cache"
	"academy/client/export"
	"academy/client/notify"
	"academy/client/pagination"
	"academy/schema"
	"context"
	"errors"
	"fmt"
	"io"
)

type RegistrationsPanel struct {
	mount
	deps     Deps
	Resource *Resource[models.Registration, schema.RegistrationInput]
	Courses  *Resource[models.Course, schema.CourseInput]
	Pager    *pagination.Pager
}

func NewRegistrationsPanel(d Deps, pageSize int) *RegistrationsPanel {
	return &RegistrationsPanel{
		deps:     d,
		Resource: registrationsResource(d),
		Courses:  NewResource[models.Course, schema.CourseInput](d, "course", ResourceCourses, "/api/courses", ResourceDashboard),
		Pager:    pagination.New(pageSize),
	}
}

func registrationsResource(d Deps) *Resource[models.Registration, schema.RegistrationInput] {
	return NewResource[models.Registration, schema.RegistrationInput](d, "registration", ResourceRegistrations, "/api/registrations", ResourceDashboard)
}

func (p *RegistrationsPanel) Open() {
	if p.sub == nil {
		p.sub = p.Resource.Subscribe(p.changed)
	}
}

func (p *RegistrationsPanel) Table() Table[models.Registration] {
	return tableFrom[models.Registration](p.state(), p.Pager, "No registrations yet.")
}

// NextStatus is the toggle target: pending becomes confirmed, anything else
// goes back to pending.
func NextStatus(current string) string {
	if current == models.StatusPending {
		return models.StatusConfirmed
	}
	return models.StatusPending
}

func (p *RegistrationsPanel) ToggleStatus(ctx context.Context, r models.Registration) error {
	return p.SetStatus(ctx, r.ID, NextStatus(r.Status))
}

func (p *RegistrationsPanel) SetStatus(ctx context.Context, id uint, status string) error {
	if _, err := p.deps.API.UpdateRegistrationStatus(ctx, id, status); err != nil {
		notify.Errorf(p.deps.notifier(), "Error", "Failed to update registration")
		return fmt.Errorf("update registration %d: %w", id, err)
	}
	p.Resource.Invalidate()
	notify.Successf(p.deps.notifier(), "Success", "Registration marked as %s", status)
	return nil
}

// Export writes the registrations already loaded by the open panel as a
// workbook, without any request. With nothing to export it only notifies and
// reports false.
func (p *RegistrationsPanel) Export(w io.Writer) (bool, error) {
	regs, titles, err := p.exportData()
	if err != nil {
		return false, err
	}
	if len(regs) == 0 {
		notify.Infof(p.deps.notifier(), "Export", "No registrations to export")
		return false, nil
	}
	if err := export.WriteRegistrations(w, regs, titles); err != nil {
		notify.Errorf(p.deps.notifier(), "Error", "Failed to export registrations")
		return false, err
	}
	notify.Successf(p.deps.notifier(), "Export", "Exported %d registrations", len(regs))
	return true, nil
}

// ExportFile is Export into a file at path, created only when there is
// something to write.
func (p *RegistrationsPanel) ExportFile(path string) (bool, error) {
	regs, titles, err := p.exportData()
	if err != nil {
		return false, err
	}
	f, err := export.Registrations(regs, titles)
	if errors.Is(err, export.ErrNoRows) {
		notify.Infof(p.deps.notifier(), "Export", "No registrations to export")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		notify.Errorf(p.deps.notifier(), "Error", "Failed to export registrations")
		return false, fmt.Errorf("save %s: %w", path, err)
	}
	notify.Successf(p.deps.notifier(), "Export", "Exported %d registrations to %s", len(regs), path)
	return true, nil
}

// exportData reads the displayed list. Course titles are used when the
// catalog is already cached; otherwise the course id is written.
func (p *RegistrationsPanel) exportData() ([]models.Registration, map[string]string, error) {
	state := p.state()
	if state.Err != nil {
		return nil, nil, fmt.Errorf("registrations not loaded: %w", state.Err)
	}
	regs, _ := cache.As[[]models.Registration](state)

	titles := map[string]string{}
	courses, _ := cache.As[[]models.Course](p.deps.Cache.Peek(p.Courses.Key()))
	for _, c := range courses {
		titles[c.ID] = c.Title
	}
	return regs, titles, nil
}
