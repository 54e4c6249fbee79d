package main

import (
	"academy/backend/models"
	"academy/client/panels"
	"academy/schema"
	"fmt"

	"github.com/urfave/cli/v2"
)

func courseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "id", Usage: "slug id, generated from the title when empty"},
		&cli.StringFlag{Name: "title"},
		&cli.StringFlag{Name: "description"},
		&cli.StringFlag{Name: "level", Usage: "Beginner, Intermediate, Advanced, Specialized or Professional"},
		&cli.StringFlag{Name: "duration"},
		&cli.StringFlag{Name: "price"},
		&cli.IntFlag{Name: "enrolled"},
		&cli.StringFlag{Name: "image-url"},
		&cli.StringFlag{Name: "details-url"},
	}
}

// applyCourseFlags overrides only the flags given on the command line.
func applyCourseFlags(cc *cli.Context, in *schema.CourseInput) {
	strs := map[string]*string{
		"id":          &in.ID,
		"title":       &in.Title,
		"description": &in.Description,
		"level":       &in.Level,
		"duration":    &in.Duration,
		"price":       &in.Price,
		"image-url":   &in.ImageURL,
		"details-url": &in.DetailsURL,
	}
	for name, dst := range strs {
		if cc.IsSet(name) {
			*dst = cc.String(name)
		}
	}
	if cc.IsSet("enrolled") {
		in.Enrolled = cc.Int("enrolled")
	}
}

func coursesCommand(c *ctl) *cli.Command {
	return &cli.Command{
		Name:  "courses",
		Usage: "list and manage the course catalog",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "show every course",
				Action: c.listCourses,
			},
			{
				Name:   "create",
				Usage:  "add a course",
				Flags:  courseFlags(),
				Action: c.createCourse,
			},
			{
				Name:      "update",
				Usage:     "change fields of a course",
				ArgsUsage: "<id>",
				Flags:     courseFlags()[1:],
				Action:    c.updateCourse,
			},
			{
				Name:      "delete",
				Usage:     "remove a course",
				ArgsUsage: "<id>",
				Action:    c.deleteCourse,
			},
		},
	}
}

func (c *ctl) listCourses(cc *cli.Context) error {
	courses, err := c.deps.API.Courses(cc.Context)
	if err != nil {
		return fmt.Errorf("list courses: %w", err)
	}
	rows := make([][]string, 0, len(courses))
	for _, course := range courses {
		rows = append(rows, []string{course.ID, course.Title, course.Level, course.Duration, course.Price, itoa(course.Enrolled)})
	}
	renderTable(c.out, "Courses", []string{"ID", "Title", "Level", "Duration", "Price", "Enrolled"}, rows)
	return nil
}

func (c *ctl) createCourse(cc *cli.Context) error {
	if err := c.admin(cc); err != nil {
		return err
	}
	p := panels.NewCoursesPanel(c.deps, 0)
	p.Form.OpenCreate()
	p.Form.Update(func(in *schema.CourseInput) { applyCourseFlags(cc, in) })
	return p.Form.Submit(cc.Context)
}

func (c *ctl) updateCourse(cc *cli.Context) error {
	course, err := c.course(cc)
	if err != nil {
		return err
	}
	p := panels.NewCoursesPanel(c.deps, 0)
	p.Edit(course)
	p.Form.Update(func(in *schema.CourseInput) { applyCourseFlags(cc, in) })
	return p.Form.Submit(cc.Context)
}

func (c *ctl) deleteCourse(cc *cli.Context) error {
	course, err := c.course(cc)
	if err != nil {
		return err
	}
	_, err = panels.NewCoursesPanel(c.deps, 0).Delete(cc.Context, course)
	return err
}

// course signs in and loads the course named by the first argument.
func (c *ctl) course(cc *cli.Context) (models.Course, error) {
	id := cc.Args().First()
	if id == "" {
		return models.Course{}, cli.Exit("missing course id", 2)
	}
	if err := c.admin(cc); err != nil {
		return models.Course{}, err
	}
	course, err := c.deps.API.Course(cc.Context, id)
	if err != nil {
		return models.Course{}, fmt.Errorf("load course %s: %w", id, err)
	}
	return course, nil
}
