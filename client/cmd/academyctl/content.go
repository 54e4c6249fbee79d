package main

import (
	"academy/backend/models"
	"academy/client/panels"
	"academy/schema"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"
)

func bannersCommand(c *ctl) *cli.Command {
	return &cli.Command{
		Name:  "banners",
		Usage: "manage the home page carousel",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "show banners in display order",
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "active", Usage: "only banners shown on the site"}},
				Action: c.listBanners,
			},
			{
				Name:  "create",
				Usage: "add a banner",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title"},
					&cli.StringFlag{Name: "subtitle"},
					&cli.StringFlag{Name: "image-url"},
					&cli.StringFlag{Name: "link-url"},
					&cli.StringFlag{Name: "link-text"},
					&cli.BoolFlag{Name: "inactive", Usage: "store the banner hidden"},
					&cli.IntFlag{Name: "order"},
				},
				Action: c.createBanner,
			},
			{
				Name:      "delete",
				Usage:     "remove a banner",
				ArgsUsage: "<id>",
				Action:    c.deleteBanner,
			},
		},
	}
}

func (c *ctl) listBanners(cc *cli.Context) error {
	banners, err := c.deps.API.Banners(cc.Context, cc.Bool("active"))
	if err != nil {
		return fmt.Errorf("list banners: %w", err)
	}
	rows := make([][]string, 0, len(banners))
	for _, b := range banners {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(b.ID), 10),
			itoa(b.DisplayOrder),
			b.Title,
			b.ImageURL,
			optional(b.LinkURL),
			yesNo(b.IsActive),
		})
	}
	renderTable(c.out, "Banners", []string{"ID", "Order", "Title", "Image", "Link", "Active"}, rows)
	return nil
}

func (c *ctl) createBanner(cc *cli.Context) error {
	if err := c.admin(cc); err != nil {
		return err
	}
	p := panels.NewBannersPanel(c.deps, 0)
	p.Form.OpenCreate()
	p.Form.Update(func(in *schema.BannerInput) {
		in.Title = cc.String("title")
		in.ImageURL = cc.String("image-url")
		in.IsActive = !cc.Bool("inactive")
		in.DisplayOrder = cc.Int("order")
		for name, dst := range map[string]**string{
			"subtitle":  &in.Subtitle,
			"link-url":  &in.LinkURL,
			"link-text": &in.LinkText,
		} {
			if cc.IsSet(name) {
				v := cc.String(name)
				*dst = &v
			}
		}
	})
	return p.Form.Submit(cc.Context)
}

func (c *ctl) deleteBanner(cc *cli.Context) error {
	id, err := strconv.ParseUint(cc.Args().First(), 10, 64)
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid banner id %q", cc.Args().First()), 2)
	}
	if err := c.admin(cc); err != nil {
		return err
	}
	banners, err := c.deps.API.Banners(cc.Context, false)
	if err != nil {
		return fmt.Errorf("list banners: %w", err)
	}
	for _, b := range banners {
		if uint64(b.ID) == id {
			_, err := panels.NewBannersPanel(c.deps, 0).Delete(cc.Context, b)
			return err
		}
	}
	return cli.Exit(fmt.Sprintf("banner %d not found", id), 1)
}

func settingsCommand(c *ctl) *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "read and change website settings",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "show every setting",
				Action: c.listSettings,
			},
			{
				Name:      "set",
				Usage:     "change a setting, creating it when the key is new",
				ArgsUsage: "<key> <value>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Value: models.SettingText, Usage: "type of a new setting: text, number, boolean, json, url or color"},
					&cli.StringFlag{Name: "description"},
				},
				Action: c.setSetting,
			},
		},
	}
}

func (c *ctl) listSettings(cc *cli.Context) error {
	settings, err := c.deps.API.Settings(cc.Context)
	if err != nil {
		return fmt.Errorf("list settings: %w", err)
	}
	rows := make([][]string, 0, len(settings))
	for _, s := range settings {
		rows = append(rows, []string{s.Key, s.Value, s.Type, optional(s.Description)})
	}
	renderTable(c.out, "Website settings", []string{"Key", "Value", "Type", "Description"}, rows)
	return nil
}

func (c *ctl) setSetting(cc *cli.Context) error {
	if cc.Args().Len() != 2 {
		return cli.Exit("usage: settings set <key> <value>", 2)
	}
	key, value := cc.Args().Get(0), cc.Args().Get(1)
	if err := c.admin(cc); err != nil {
		return err
	}
	settings, err := c.deps.API.Settings(cc.Context)
	if err != nil {
		return fmt.Errorf("list settings: %w", err)
	}

	p := panels.NewSettingsPanel(c.deps, 0)
	for _, s := range settings {
		if s.Key == key {
			p.Edit(s)
			p.Form.Update(func(in *schema.SettingInput) { in.Value = value })
			return p.Form.Submit(cc.Context)
		}
	}

	p.Form.OpenCreate()
	p.Form.Update(func(in *schema.SettingInput) {
		in.Key = key
		in.Value = value
		in.Type = cc.String("type")
		if cc.IsSet("description") {
			d := cc.String("description")
			in.Description = &d
		}
	})
	return p.Form.Submit(cc.Context)
}
