// Package panels composes the api client, cache, forms and pager into the
// admin management panels and the public page widgets.
package panels

import (
	"academy/client/api"
	"academy/client/cache"
	"academy/client/notify"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Cache resource names. Invalidating one refetches every key under it.
const (
	ResourceCourses       = "courses"
	ResourceRegistrations = "registrations"
	ResourceBanners       = "banners"
	ResourceSettings      = "settings"
	ResourceDashboard     = "dashboard"
)

type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Deps is shared by every panel.
type Deps struct {
	API       *api.Client
	Cache     *cache.Cache
	Notifier  notify.Notifier
	Confirmer Confirmer
	Log       zerolog.Logger
	Now       func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

func (d Deps) notifier() notify.Notifier {
	if d.Notifier == nil {
		return notify.Discard
	}
	return d.Notifier
}

// Resource is the CRUD-and-invalidate contract for one REST collection. T is
// the entity and In the body sent on create and update.
type Resource[T any, In any] struct {
	deps Deps
	// Entity is used in notifications, e.g. "banner".
	Entity string
	// Name is the cache resource the list is stored under.
	Name string
	// Path is the collection endpoint, e.g. "/api/banners".
	Path string
	// Dependents are invalidated along with Name after a mutation.
	Dependents []string
}

func NewResource[T any, In any](d Deps, entity, name, path string, dependents ...string) *Resource[T, In] {
	return &Resource[T, In]{deps: d, Entity: entity, Name: name, Path: path, Dependents: dependents}
}

func (r *Resource[T, In]) Key() cache.Key {
	return cache.NewKey(r.Name, nil)
}

func (r *Resource[T, In]) fetch(ctx context.Context, key cache.Key) (interface{}, error) {
	query, err := url.ParseQuery(key.Params)
	if err != nil {
		return nil, err
	}
	return api.Get[[]T](ctx, r.deps.API, r.Path, query)
}

// List returns the cached collection, fetching it when missing or stale.
func (r *Resource[T, In]) List(ctx context.Context) ([]T, error) {
	data, err := r.deps.Cache.Get(ctx, r.Key(), r.fetch)
	if err != nil {
		return nil, err
	}
	items, _ := data.([]T)
	return items, nil
}

// Subscribe watches the collection; onChange runs after every committed fetch.
func (r *Resource[T, In]) Subscribe(onChange func(cache.State)) *cache.Subscription {
	return r.deps.Cache.Subscribe(r.Key(), r.fetch, onChange)
}

func (r *Resource[T, In]) Create(ctx context.Context, in In) error {
	if _, err := api.Post[T](ctx, r.deps.API, r.Path, in); err != nil {
		return err
	}
	r.Invalidate()
	return nil
}

func (r *Resource[T, In]) Update(ctx context.Context, id string, in In) error {
	if _, err := api.Patch[T](ctx, r.deps.API, r.itemPath(id), in); err != nil {
		return err
	}
	r.Invalidate()
	return nil
}

// Delete asks the confirmer first and sends nothing unless it approves.
// The returned bool reports whether the entity was deleted.
func (r *Resource[T, In]) Delete(ctx context.Context, id, label string) (bool, error) {
	if r.deps.Confirmer == nil || !r.deps.Confirmer.Confirm(fmt.Sprintf("Delete %s %q?", r.Entity, label)) {
		return false, nil
	}
	if err := api.Delete(ctx, r.deps.API, r.itemPath(id)); err != nil {
		notify.Errorf(r.deps.notifier(), "Error", "Failed to delete %s", r.Entity)
		return false, fmt.Errorf("delete %s %s: %w", r.Entity, id, err)
	}
	r.Invalidate()
	notify.Successf(r.deps.notifier(), "Success", "%s deleted successfully", capitalize(r.Entity))
	return true, nil
}

// Invalidate marks the collection and its dependents stale.
func (r *Resource[T, In]) Invalidate() {
	r.deps.Cache.Invalidate(append([]string{r.Name}, r.Dependents...)...)
}

func (r *Resource[T, In]) itemPath(id string) string {
	return r.Path + "/" + url.PathEscape(id)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
