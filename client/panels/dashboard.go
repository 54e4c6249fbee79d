package panels

import (
	"academy/backend/models"
	"academy/client/api"
	"academy/client/cache"
	"context"
	"fmt"
	"net/url"
	"time"
)

type DateRange struct {
	Start string
	End   string
}

// DefaultRange runs from three calendar months before now through now.
func DefaultRange(now time.Time) DateRange {
	return DateRange{
		Start: now.AddDate(0, -3, 0).Format(time.DateOnly),
		End:   now.Format(time.DateOnly),
	}
}

func (r DateRange) Validate() error {
	start, err := time.Parse(time.DateOnly, r.Start)
	if err != nil {
		return fmt.Errorf("invalid start date %q", r.Start)
	}
	end, err := time.Parse(time.DateOnly, r.End)
	if err != nil {
		return fmt.Errorf("invalid end date %q", r.End)
	}
	if start.After(end) {
		return fmt.Errorf("start date %s is after end date %s", r.Start, r.End)
	}
	return nil
}

func (r DateRange) key() cache.Key {
	return cache.NewKey(ResourceDashboard, api.StatsQuery(r.Start, r.End))
}

// Dashboard follows the stats for one date range. Changing the range re-keys
// the subscription, so a pending response for the previous range is never
// shown.
type Dashboard struct {
	mount
	deps Deps
	rng  DateRange
}

func NewDashboard(d Deps) *Dashboard {
	return &Dashboard{deps: d, rng: DefaultRange(d.now())}
}

func (d *Dashboard) fetch(ctx context.Context, key cache.Key) (interface{}, error) {
	q, err := url.ParseQuery(key.Params)
	if err != nil {
		return nil, err
	}
	return d.deps.API.DashboardStats(ctx, q.Get("startDate"), q.Get("endDate"))
}

func (d *Dashboard) Open() {
	if d.sub == nil {
		d.sub = d.deps.Cache.Subscribe(d.rng.key(), d.fetch, d.changed)
	}
}

func (d *Dashboard) Range() DateRange { return d.rng }

func (d *Dashboard) SetRange(r DateRange) error {
	if err := r.Validate(); err != nil {
		return err
	}
	d.rng = r
	if d.sub != nil {
		d.sub.SetKey(r.key())
	}
	return nil
}

// Stats returns the figures for the current range once they are loaded.
func (d *Dashboard) Stats() (models.DashboardStats, bool) {
	state := d.state()
	stats, ok := cache.As[models.DashboardStats](state)
	return stats, ok && state.Err == nil
}

func (d *Dashboard) Err() error {
	return d.state().Err
}

func (d *Dashboard) Loading() bool {
	return d.state().Loading
}
