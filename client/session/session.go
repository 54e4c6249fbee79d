// Package session holds the signed-in admin and guards the admin shell.
package session

import (
	"academy/backend/models"
	"academy/client/cache"
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// LandingPath is where unauthenticated visitors and logged out admins go.
const LandingPath = "/"

type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// API is the part of the api client the guard needs.
type API interface {
	Me(ctx context.Context) (models.AdminUser, error)
	Login(ctx context.Context, username, password string) (models.AdminUser, error)
	Logout(ctx context.Context) error
}

// Store holds the current admin identity.
type Store struct {
	mu    sync.RWMutex
	admin *models.AdminUser
}

func (s *Store) Set(admin models.AdminUser) {
	s.mu.Lock()
	s.admin = &admin
	s.mu.Unlock()
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.admin = nil
	s.mu.Unlock()
}

// Current returns the signed-in admin, or false when nobody is signed in.
func (s *Store) Current() (models.AdminUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.admin == nil {
		return models.AdminUser{}, false
	}
	return *s.admin, true
}

type Guard struct {
	api   API
	store *Store
	cache *cache.Cache
	nav   Navigator
	log   zerolog.Logger
}

func NewGuard(api API, store *Store, c *cache.Cache, nav Navigator, log zerolog.Logger) *Guard {
	return &Guard{api: api, store: store, cache: c, nav: nav, log: log}
}

func (g *Guard) Store() *Store { return g.store }

// Enter asks the server who is signed in. Without a valid session it
// redirects to the landing page and returns false.
func (g *Guard) Enter(ctx context.Context) (models.AdminUser, bool) {
	admin, err := g.api.Me(ctx)
	if err != nil {
		g.log.Debug().Err(err).Msg("no admin session")
		g.store.Clear()
		g.nav.Navigate(LandingPath)
		return models.AdminUser{}, false
	}
	g.store.Set(admin)
	return admin, true
}

func (g *Guard) Login(ctx context.Context, username, password string) (models.AdminUser, error) {
	admin, err := g.api.Login(ctx, username, password)
	if err != nil {
		return models.AdminUser{}, fmt.Errorf("login: %w", err)
	}
	g.store.Set(admin)
	return admin, nil
}

// Logout ends the server session, forgets every cached resource and returns
// to the landing page. Local state is cleared even when the server call fails.
func (g *Guard) Logout(ctx context.Context) error {
	err := g.api.Logout(ctx)
	if err != nil {
		g.log.Warn().Err(err).Msg("logout request failed")
	}
	g.store.Clear()
	if g.cache != nil {
		g.cache.Clear()
	}
	g.nav.Navigate(LandingPath)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
