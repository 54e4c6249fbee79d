package api

import (
	"academy/backend/models"
	"academy/schema"
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) Courses(ctx context.Context) ([]models.Course, error) {
	return Get[[]models.Course](ctx, c, "/api/courses", nil)
}

func (c *Client) Course(ctx context.Context, id string) (models.Course, error) {
	return Get[models.Course](ctx, c, "/api/courses/"+url.PathEscape(id), nil)
}

func (c *Client) CreateCourse(ctx context.Context, in schema.CourseInput) (models.Course, error) {
	return Post[models.Course](ctx, c, "/api/courses", in)
}

func (c *Client) UpdateCourse(ctx context.Context, id string, in schema.CourseInput) (models.Course, error) {
	return Patch[models.Course](ctx, c, "/api/courses/"+url.PathEscape(id), in)
}

func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	return Delete(ctx, c, "/api/courses/"+url.PathEscape(id))
}

func (c *Client) Registrations(ctx context.Context) ([]models.Registration, error) {
	return Get[[]models.Registration](ctx, c, "/api/registrations", nil)
}

func (c *Client) CreateRegistration(ctx context.Context, in schema.RegistrationInput) (models.Registration, error) {
	return Post[models.Registration](ctx, c, "/api/registrations", in)
}

func (c *Client) UpdateRegistrationStatus(ctx context.Context, id uint, status string) (models.Registration, error) {
	path := "/api/registrations/" + strconv.FormatUint(uint64(id), 10) + "/status"
	return Patch[models.Registration](ctx, c, path, schema.StatusInput{Status: status})
}

// Banners lists banners; activeOnly asks the server to drop inactive ones.
func (c *Client) Banners(ctx context.Context, activeOnly bool) ([]models.Banner, error) {
	return Get[[]models.Banner](ctx, c, "/api/banners", BannerQuery(activeOnly))
}

// BannerQuery is the query string sent by Banners.
func BannerQuery(activeOnly bool) url.Values {
	if !activeOnly {
		return nil
	}
	return url.Values{"active": {"true"}}
}

func (c *Client) CreateBanner(ctx context.Context, in schema.BannerInput) (models.Banner, error) {
	return Post[models.Banner](ctx, c, "/api/banners", in)
}

func (c *Client) UpdateBanner(ctx context.Context, id uint, in schema.BannerInput) (models.Banner, error) {
	return Patch[models.Banner](ctx, c, "/api/banners/"+strconv.FormatUint(uint64(id), 10), in)
}

func (c *Client) DeleteBanner(ctx context.Context, id uint) error {
	return Delete(ctx, c, "/api/banners/"+strconv.FormatUint(uint64(id), 10))
}

func (c *Client) Settings(ctx context.Context) ([]models.WebsiteSetting, error) {
	return Get[[]models.WebsiteSetting](ctx, c, "/api/website-settings", nil)
}

func (c *Client) CreateSetting(ctx context.Context, in schema.SettingInput) (models.WebsiteSetting, error) {
	return Post[models.WebsiteSetting](ctx, c, "/api/website-settings", in)
}

// UpdateSetting changes only the value; key and type are fixed server-side.
func (c *Client) UpdateSetting(ctx context.Context, key, value string) (models.WebsiteSetting, error) {
	return Patch[models.WebsiteSetting](ctx, c, "/api/website-settings/"+url.PathEscape(key), schema.SettingValueInput{Value: value})
}

func (c *Client) SendContact(ctx context.Context, in schema.ContactInput) error {
	return c.Do(ctx, http.MethodPost, "/api/contact", nil, in, nil)
}

// DashboardStats fetches aggregates; empty dates are omitted from the query.
func (c *Client) DashboardStats(ctx context.Context, startDate, endDate string) (models.DashboardStats, error) {
	return Get[models.DashboardStats](ctx, c, "/api/dashboard/stats", StatsQuery(startDate, endDate))
}

// StatsQuery is the query string sent by DashboardStats.
func StatsQuery(startDate, endDate string) url.Values {
	q := url.Values{}
	if startDate != "" {
		q.Set("startDate", startDate)
	}
	if endDate != "" {
		q.Set("endDate", endDate)
	}
	return q
}

func (c *Client) Login(ctx context.Context, username, password string) (models.AdminUser, error) {
	return Post[models.AdminUser](ctx, c, "/api/admin/login", schema.LoginInput{Username: username, Password: password})
}

func (c *Client) Logout(ctx context.Context) error {
	return c.Do(ctx, http.MethodPost, "/api/admin/logout", nil, nil, nil)
}

func (c *Client) Me(ctx context.Context) (models.AdminUser, error) {
	return Get[models.AdminUser](ctx, c, "/api/admin/me", nil)
}
