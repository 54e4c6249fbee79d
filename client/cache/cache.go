// Package cache keeps the last fetched value per (resource, params) key and
// refetches keys that are invalidated after a mutation.
//
// For any key only the most recently issued fetch may commit its result.
// Responses from superseded fetches are dropped on arrival, whatever order
// they complete in.
package cache

import (
	"context"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

type Key struct {
	Resource string
	Params   string
}

// NewKey builds a key; params are encoded in sorted order so equal sets match.
func NewKey(resource string, params url.Values) Key {
	return Key{Resource: resource, Params: params.Encode()}
}

func (k Key) String() string {
	if k.Params == "" {
		return k.Resource
	}
	return k.Resource + "?" + k.Params
}

type Fetcher func(ctx context.Context, key Key) (interface{}, error)

// State is a snapshot of one entry. Data keeps the last successful result even
// when a later fetch failed.
type State struct {
	Data      interface{}
	Err       error
	Loading   bool
	Stale     bool
	FetchedAt time.Time
}

// Ready reports whether the last fetch succeeded.
func (s State) Ready() bool {
	return !s.FetchedAt.IsZero() && s.Err == nil
}

// As returns the entry data as T.
func As[T any](s State) (T, bool) {
	v, ok := s.Data.(T)
	return v, ok
}

type entry struct {
	state    State
	fetch    Fetcher
	issued   uint64
	watchers map[*Subscription]struct{}
}

func (e *entry) fresh() bool {
	return e.state.Ready() && !e.state.Stale
}

type Cache struct {
	mu      sync.Mutex
	entries map[Key]*entry
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	log     zerolog.Logger
	now     func() time.Time
}

type Option func(*Cache)

func WithLogger(log zerolog.Logger) Option {
	return func(c *Cache) { c.log = log }
}

func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[Key]*entry),
		log:     zerolog.Nop(),
		now:     time.Now,
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) entryLocked(key Key, fetch Fetcher) *entry {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{watchers: make(map[*Subscription]struct{})}
		c.entries[key] = e
	}
	if fetch != nil {
		e.fetch = fetch
	}
	return e
}

// Get returns the cached value when it is fresh and otherwise fetches it
// synchronously. The fetched result is returned even if a newer fetch for the
// same key was issued meanwhile, but only the newest one is stored.
func (c *Cache) Get(ctx context.Context, key Key, fetch Fetcher) (interface{}, error) {
	c.mu.Lock()
	e := c.entryLocked(key, fetch)
	if e.fresh() {
		data := e.state.Data
		c.mu.Unlock()
		return data, nil
	}
	seq := c.beginLocked(e)
	c.mu.Unlock()

	data, err := fetch(ctx, key)
	c.commit(key, e, seq, data, err)
	return data, err
}

// Load is Get with a typed fetcher.
func Load[T any](ctx context.Context, c *Cache, key Key, fetch func(context.Context, Key) (T, error)) (T, error) {
	data, err := c.Get(ctx, key, func(ctx context.Context, key Key) (interface{}, error) {
		return fetch(ctx, key)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	v, _ := data.(T)
	return v, nil
}

func (c *Cache) Peek(key Key) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		return e.state
	}
	return State{}
}

func (c *Cache) beginLocked(e *entry) uint64 {
	e.issued++
	e.state.Loading = true
	return e.issued
}

// refreshLocked starts a background fetch for e.
func (c *Cache) refreshLocked(key Key, e *entry) {
	if e.fetch == nil {
		return
	}
	seq := c.beginLocked(e)
	fetch, ctx := e.fetch, c.ctx

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		data, err := fetch(ctx, key)
		c.commit(key, e, seq, data, err)
	}()
}

func (c *Cache) commit(key Key, e *entry, seq uint64, data interface{}, err error) {
	c.mu.Lock()
	if c.entries[key] != e {
		c.mu.Unlock()
		c.log.Debug().Str("key", key.String()).Msg("dropping response for cleared entry")
		return
	}
	if seq != e.issued {
		c.mu.Unlock()
		c.log.Debug().Str("key", key.String()).Uint64("seq", seq).Uint64("latest", e.issued).Msg("dropping superseded response")
		return
	}

	e.state.Loading = false
	e.state.Stale = false
	if err != nil {
		e.state.Err = err
	} else {
		e.state.Data = data
		e.state.Err = nil
		e.state.FetchedAt = c.now()
	}
	state := e.state
	subs := make([]*Subscription, 0, len(e.watchers))
	for s := range e.watchers {
		subs = append(subs, s)
	}
	c.mu.Unlock()

	for _, s := range subs {
		s.deliver(key, state)
	}
}

// Invalidate marks every entry of the given resources stale. Entries watched
// by a subscription are refetched in the background; the rest refetch on
// their next Get.
func (c *Cache) Invalidate(resources ...string) {
	set := make(map[string]struct{}, len(resources))
	for _, r := range resources {
		set[r] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if _, ok := set[key.Resource]; !ok {
			continue
		}
		e.state.Stale = true
		if len(e.watchers) > 0 {
			c.refreshLocked(key, e)
			continue
		}
		// a Get issued before the mutation must not store its result as fresh
		e.issued++
		e.state.Loading = false
	}
}

// Clear drops every entry and abandons in-flight fetches. Existing
// subscriptions stop receiving updates.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancel()
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.entries = make(map[Key]*entry)
}

// Wait blocks until background fetches started so far have finished.
func (c *Cache) Wait() {
	c.wg.Wait()
}

// Subscription follows one key at a time and is told about every committed
// result for it.
type Subscription struct {
	cache    *Cache
	key      Key
	fetch    Fetcher
	onChange func(State)
	closed   atomic.Bool
}

// Subscribe watches key and fetches it in the background unless a fresh value
// or a fetch is already there. onChange may be nil.
func (c *Cache) Subscribe(key Key, fetch Fetcher, onChange func(State)) *Subscription {
	s := &Subscription{cache: c, key: key, fetch: fetch, onChange: onChange}
	c.mu.Lock()
	c.watchLocked(s)
	c.mu.Unlock()
	return s
}

func (c *Cache) watchLocked(s *Subscription) {
	e := c.entryLocked(s.key, s.fetch)
	e.watchers[s] = struct{}{}
	if !e.fresh() && !e.state.Loading {
		c.refreshLocked(s.key, e)
	}
}

// SetKey moves the subscription to key. Results that arrive later for the old
// key are not delivered.
func (s *Subscription) SetKey(key Key) {
	c := s.cache
	c.mu.Lock()
	if s.closed.Load() || key == s.key {
		c.mu.Unlock()
		return
	}
	if e, ok := c.entries[s.key]; ok {
		delete(e.watchers, s)
	}
	s.key = key
	c.watchLocked(s)
	state := c.entries[key].state
	c.mu.Unlock()

	if state.Ready() {
		s.deliver(key, state)
	}
}

func (s *Subscription) Key() Key {
	s.cache.mu.Lock()
	defer s.cache.mu.Unlock()
	return s.key
}

// State reports the entry for the current key.
func (s *Subscription) State() State {
	c := s.cache
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[s.key]; ok {
		return e.state
	}
	return State{}
}

// Refresh refetches the current key in the background.
func (s *Subscription) Refresh() {
	c := s.cache
	c.mu.Lock()
	defer c.mu.Unlock()
	if s.closed.Load() {
		return
	}
	c.refreshLocked(s.key, c.entryLocked(s.key, s.fetch))
}

// Close stops delivery. Responses arriving afterwards are ignored.
func (s *Subscription) Close() {
	if s.closed.Swap(true) {
		return
	}
	c := s.cache
	c.mu.Lock()
	if e, ok := c.entries[s.key]; ok {
		delete(e.watchers, s)
	}
	c.mu.Unlock()
}

func (s *Subscription) deliver(key Key, state State) {
	if s.closed.Load() || s.onChange == nil {
		return
	}
	s.cache.mu.Lock()
	current := s.key
	s.cache.mu.Unlock()
	if current != key {
		return
	}
	s.onChange(state)
}
