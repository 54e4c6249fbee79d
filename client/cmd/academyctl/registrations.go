package main

import (
	"academy/backend/models"
	"academy/client/export"
	"academy/client/panels"
	"academy/schema"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

func registrationsCommand(c *ctl) *cli.Command {
	return &cli.Command{
		Name:  "registrations",
		Usage: "review course registrations",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "show registrations, newest first",
				Action: c.listRegistrations,
			},
			{
				Name:      "status",
				Usage:     "set the status of a registration (pending, confirmed or cancelled)",
				ArgsUsage: "<id> <status>",
				Action:    c.setRegistrationStatus,
			},
			{
				Name:  "export",
				Usage: "write all registrations to an Excel workbook",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "file name, registrations-<date>.xlsx by default"},
				},
				Action: c.exportRegistrations,
			},
		},
	}
}

func (c *ctl) listRegistrations(cc *cli.Context) error {
	if err := c.admin(cc); err != nil {
		return err
	}
	regs, err := c.deps.API.Registrations(cc.Context)
	if err != nil {
		return fmt.Errorf("list registrations: %w", err)
	}
	rows := make([][]string, 0, len(regs))
	for _, r := range regs {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.FirstName + " " + r.LastName,
			r.Email,
			r.CourseID,
			r.ExperienceLevel,
			r.Status,
			r.RegistrationDate.Format(time.DateOnly),
		})
	}
	renderTable(c.out, "Registrations", []string{"ID", "Name", "Email", "Course", "Experience", "Status", "Date"}, rows)
	return nil
}

func (c *ctl) setRegistrationStatus(cc *cli.Context) error {
	if cc.Args().Len() != 2 {
		return cli.Exit("usage: registrations status <id> <status>", 2)
	}
	id, err := strconv.ParseUint(cc.Args().Get(0), 10, 64)
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid registration id %q", cc.Args().Get(0)), 2)
	}
	if err := c.admin(cc); err != nil {
		return err
	}
	return panels.NewRegistrationsPanel(c.deps, 0).SetStatus(cc.Context, uint(id), cc.Args().Get(1))
}

func (c *ctl) exportRegistrations(cc *cli.Context) error {
	if err := c.admin(cc); err != nil {
		return err
	}
	path := cc.String("out")
	if path == "" {
		path = export.FileName(c.now())
	}
	p := panels.NewRegistrationsPanel(c.deps, 0)
	if _, err := p.Courses.List(cc.Context); err != nil {
		c.deps.Log.Warn().Err(err).Msg("load course titles for export")
	}
	p.Open()
	defer p.Close()
	c.deps.Cache.Wait()
	_, err := p.ExportFile(path)
	return err
}

func statsCommand(c *ctl) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "show dashboard figures for a date range",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "start", Usage: "first day, YYYY-MM-DD (default three months ago)"},
			&cli.StringFlag{Name: "end", Usage: "last day, YYYY-MM-DD (default today)"},
		},
		Action: c.showStats,
	}
}

func (c *ctl) showStats(cc *cli.Context) error {
	rng := panels.DefaultRange(c.now())
	if cc.IsSet("start") {
		rng.Start = cc.String("start")
	}
	if cc.IsSet("end") {
		rng.End = cc.String("end")
	}
	if err := rng.Validate(); err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if err := c.admin(cc); err != nil {
		return err
	}

	stats, err := c.deps.API.DashboardStats(cc.Context, rng.Start, rng.End)
	if err != nil {
		return fmt.Errorf("load dashboard stats: %w", err)
	}
	renderTable(c.out, fmt.Sprintf("Dashboard %s to %s", rng.Start, rng.End), []string{"Metric", "Value"}, [][]string{
		{"Total registrations", itoa(stats.TotalRegistrations)},
		{"This month", itoa(stats.ThisMonthRegistrations)},
		{"Active courses", itoa(stats.ActiveCourses)},
		{"Revenue", fmt.Sprintf("%.2f", stats.Revenue)},
		{"Completion rate", itoa(stats.CompletionRate) + "%"},
	})

	trend := make([]string, len(stats.RegistrationTrends))
	for i, n := range stats.RegistrationTrends {
		trend[i] = itoa(n)
	}
	fmt.Fprintf(c.out, "Monthly registrations: %s\n", strings.Join(trend, " "))

	rows := make([][]string, 0, len(stats.CoursePopularity))
	for _, p := range stats.CoursePopularity {
		rows = append(rows, []string{p.Course, itoa(p.Count)})
	}
	renderTable(c.out, "Course popularity", []string{"Course", "Registrations"}, rows)
	return nil
}

func registerCommand(c *ctl) *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "submit the public registration form for a course",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "course", Required: true},
			&cli.StringFlag{Name: "first-name"},
			&cli.StringFlag{Name: "last-name"},
			&cli.StringFlag{Name: "email"},
			&cli.StringFlag{Name: "phone"},
			&cli.StringFlag{Name: "country"},
			&cli.StringFlag{Name: "experience", Value: models.ExperienceLevels[0], Usage: "beginner, intermediate, advanced or professional"},
			&cli.StringFlag{Name: "goals"},
			&cli.BoolFlag{Name: "newsletter"},
			&cli.BoolFlag{Name: "agree-terms", Usage: "accept the terms and conditions"},
		},
		Action: c.register,
	}
}

func (c *ctl) register(cc *cli.Context) error {
	form := panels.NewRegistrationForm(c.deps)
	panels.OpenRegistration(form, cc.String("course"))
	form.Update(func(in *schema.RegistrationInput) {
		in.FirstName = cc.String("first-name")
		in.LastName = cc.String("last-name")
		in.Email = cc.String("email")
		in.Phone = cc.String("phone")
		in.Country = cc.String("country")
		in.ExperienceLevel = cc.String("experience")
		in.Goals = cc.String("goals")
		in.Newsletter = cc.Bool("newsletter")
		in.AgreeTerms = cc.Bool("agree-terms")
	})
	return form.Submit(cc.Context)
}

func contactCommand(c *ctl) *cli.Command {
	return &cli.Command{
		Name:  "contact",
		Usage: "send a message through the contact form",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name"},
			&cli.StringFlag{Name: "email"},
			&cli.StringFlag{Name: "subject", Usage: "course-inquiry, enrollment, technical-support, partnership or other"},
			&cli.StringFlag{Name: "message"},
		},
		Action: c.contact,
	}
}

func (c *ctl) contact(cc *cli.Context) error {
	form := panels.NewContactForm(c.deps)
	form.OpenCreate()
	form.SetValues(schema.ContactInput{
		Name:    cc.String("name"),
		Email:   cc.String("email"),
		Subject: cc.String("subject"),
		Message: cc.String("message"),
	})
	return form.Submit(cc.Context)
}
