package main

import (
	"academy/backend/utils"
	"academy/client/api"
	"academy/client/cache"
	"academy/client/notify"
	"academy/client/panels"
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

// ctl is the state shared by every command of one invocation.
type ctl struct {
	in   *bufio.Reader
	out  io.Writer
	deps panels.Deps
	now  func() time.Time
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	c := &ctl{in: bufio.NewReader(stdin), out: stdout, now: time.Now}

	return &cli.App{
		Name:      "academyctl",
		Usage:     "manage courses, registrations and site content of the academy",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		// main reports errors and picks the exit code
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Value:   "http://localhost:8080",
				Usage:   "base URL of the academy API",
				EnvVars: []string{"ACADEMY_SERVER"},
			},
			&cli.StringFlag{
				Name:    "username",
				Aliases: []string{"u"},
				Usage:   "admin username",
				EnvVars: []string{"ACADEMY_USERNAME"},
			},
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Usage:   "admin password",
				EnvVars: []string{"ACADEMY_PASSWORD"},
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "do not ask before deleting",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: c.setup,
		Commands: []*cli.Command{
			coursesCommand(c),
			bannersCommand(c),
			settingsCommand(c),
			registrationsCommand(c),
			statsCommand(c),
			registerCommand(c),
			contactCommand(c),
		},
	}
}

func (c *ctl) setup(cc *cli.Context) error {
	logger := utils.InitLogger(utils.LoggerConfig{
		Level:  cc.String("log-level"),
		Output: cc.App.ErrWriter,
	})

	client, err := api.New(cc.String("server"), api.WithLogger(logger))
	if err != nil {
		return err
	}

	assumeYes := cc.Bool("yes")
	c.deps = panels.Deps{
		API:      client,
		Cache:    cache.New(cache.WithLogger(logger)),
		Notifier: notify.NewConsole(c.out),
		Confirmer: panels.ConfirmFunc(func(prompt string) bool {
			return assumeYes || c.confirm(prompt)
		}),
		Log: logger,
		Now: c.now,
	}
	return nil
}

// confirm asks on the terminal; only an explicit yes approves.
func (c *ctl) confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N] ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// admin signs in with the global credentials before a back office command.
func (c *ctl) admin(cc *cli.Context) error {
	username, password := cc.String("username"), cc.String("password")
	if username == "" || password == "" {
		return cli.Exit("admin commands need --username and --password (or ACADEMY_USERNAME and ACADEMY_PASSWORD)", 2)
	}
	if _, err := c.deps.API.Login(cc.Context, username, password); err != nil {
		return fmt.Errorf("sign in as %s: %w", username, err)
	}
	return nil
}
