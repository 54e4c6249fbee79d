package controllers

import (
	"academy/backend/config"
	"academy/backend/models"
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"
)

// SiteTitleKey names the setting used as the landing page title.
const SiteTitleKey = "site_title"

const defaultSiteTitle = "Academy"

// raw HTML inside descriptions is escaped since WithUnsafe is not set
var markdown = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

var landingTemplate = template.Must(template.New("landing").Funcs(template.FuncMap{
	"markdown": func(md string) template.HTML {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(md), &buf); err != nil {
			return template.HTML(template.HTMLEscapeString(md))
		}
		return template.HTML(buf.String())
	},
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
{{if .Banners}}<section id="carousel">
{{range $b := .Banners}}<figure class="slide">
<img src="{{.ImageURL}}" alt="{{.Title}}">
<figcaption><h2>{{.Title}}</h2>{{with .Subtitle}}<p>{{.}}</p>{{end}}{{with .LinkURL}}<a href="{{.}}">{{with $b.LinkText}}{{.}}{{else}}Learn more{{end}}</a>{{end}}</figcaption>
</figure>
{{end}}</section>
{{end}}<section id="courses">
{{range .Courses}}<article class="course" id="course-{{.ID}}">
<h3>{{.Title}}</h3>
<p class="meta">{{.Level}} · {{.Duration}} · ${{.Price}}</p>
<div class="description">{{markdown .Description}}</div>
{{if .DetailsURL}}<a href="{{.DetailsURL}}">Details</a>{{end}}
</article>
{{else}}<p>No courses are open for registration yet.</p>
{{end}}</section>
</body>
</html>
`))

type landingPage struct {
	Title   string
	Banners []models.Banner
	Courses []models.Course
}

type PublicController struct {
	DB  *gorm.DB
	Cfg *config.Config
	Log zerolog.Logger
}

func NewPublicController(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *PublicController {
	return &PublicController{DB: db, Cfg: cfg, Log: log}
}

// Landing renders the public page. Banner and setting failures only hide their
// part of the page; a course failure is a server error.
func (pc *PublicController) Landing(c *fiber.Ctx) error {
	page := landingPage{Title: defaultSiteTitle}

	var title models.WebsiteSetting
	if err := pc.DB.Where("key = ?", SiteTitleKey).First(&title).Error; err == nil && title.Value != "" {
		page.Title = title.Value
	}

	if err := pc.DB.Where("is_active = ?", true).Order("display_order ASC, id ASC").Find(&page.Banners).Error; err != nil {
		pc.Log.Warn().Err(err).Msg("landing banners")
		page.Banners = nil
	}

	if err := pc.DB.Order("created_at ASC, id ASC").Find(&page.Courses).Error; err != nil {
		pc.Log.Error().Err(err).Msg("landing courses")
		return fiber.NewError(fiber.StatusInternalServerError, "Could not load courses")
	}

	var buf bytes.Buffer
	if err := landingTemplate.Execute(&buf, page); err != nil {
		pc.Log.Error().Err(err).Msg("render landing")
		return fiber.NewError(fiber.StatusInternalServerError, "Could not render page")
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
