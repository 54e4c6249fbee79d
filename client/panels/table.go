package panels

import (
	"academy/client/cache"
	"academy/client/pagination"
)

// Table is one rendered page of a management list.
type Table[T any] struct {
	pagination.View[T]
	Loading bool
	// Error is shown in place of the rows when the list could not be loaded.
	Error string
}

func tableFrom[T any](state cache.State, pager *pagination.Pager, placeholder string) Table[T] {
	items, _ := cache.As[[]T](state)
	t := Table[T]{
		View:    pagination.Paginate(pager, items, placeholder),
		Loading: state.Loading,
	}
	if state.Err != nil {
		t.Error = "Could not load data: " + state.Err.Error()
	}
	return t
}

// mount holds the subscription of a panel while it is displayed.
type mount struct {
	sub      *cache.Subscription
	OnChange func()
}

func (m *mount) changed(cache.State) {
	if m.OnChange != nil {
		m.OnChange()
	}
}

func (m *mount) state() cache.State {
	if m.sub == nil {
		return cache.State{}
	}
	return m.sub.State()
}

// Close stops following the list. Responses still in flight are ignored.
func (m *mount) Close() {
	if m.sub != nil {
		m.sub.Close()
		m.sub = nil
	}
}
