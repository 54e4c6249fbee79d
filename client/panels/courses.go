package panels

import (
	"academy/backend/models"
	"academy/client/forms"
	"academy/client/pagination"
	"academy/schema"
	"academy/slug"
	"context"
	"strings"
)

type CoursesPanel struct {
	mount
	Resource *Resource[models.Course, schema.CourseInput]
	Form     *forms.Form[schema.CourseInput]
	Pager    *pagination.Pager
}

func NewCoursesPanel(d Deps, pageSize int) *CoursesPanel {
	res := NewResource[models.Course, schema.CourseInput](d, "course", ResourceCourses, "/api/courses", ResourceDashboard)
	form := forms.New("course", schema.NewCourseInput(), forms.Submitter[schema.CourseInput](res), d.notifier(),
		forms.WithPrepare(func(v *schema.CourseInput, creating bool) {
			v.ID = strings.TrimSpace(v.ID)
			if creating && v.ID == "" {
				v.ID = slug.CourseID(v.Title, d.now())
			}
		}))
	return &CoursesPanel{Resource: res, Form: form, Pager: pagination.New(pageSize)}
}

func (p *CoursesPanel) Open() {
	if p.sub == nil {
		p.sub = p.Resource.Subscribe(p.changed)
	}
}

func (p *CoursesPanel) Table() Table[models.Course] {
	return tableFrom[models.Course](p.state(), p.Pager, "No courses found. Add your first course.")
}

func (p *CoursesPanel) Edit(c models.Course) {
	p.Form.OpenEdit(c.ID, schema.CourseInputFrom(c))
}

func (p *CoursesPanel) Delete(ctx context.Context, c models.Course) (bool, error) {
	return p.Resource.Delete(ctx, c.ID, c.Title)
}
