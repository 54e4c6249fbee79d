// Package pagination windows a fully loaded collection into pages.
package pagination

// DefaultPageSize is used when a non-positive size is configured.
const DefaultPageSize = 5

// Pager tracks the current page of a collection of Total items. Pages are
// numbered from 1.
type Pager struct {
	size  int
	page  int
	total int
}

func New(pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{size: pageSize, page: 1}
}

func (p *Pager) PageSize() int { return p.size }
func (p *Pager) Page() int     { return p.page }
func (p *Pager) Total() int    { return p.total }

// TotalPages is ceil(total / pageSize); zero for an empty collection.
func (p *Pager) TotalPages() int {
	return (p.total + p.size - 1) / p.size
}

// SetTotal records a new collection size and pulls the current page back
// inside the valid range.
func (p *Pager) SetTotal(n int) {
	if n < 0 {
		n = 0
	}
	p.total = n
	p.clamp()
}

func (p *Pager) clamp() {
	if last := p.TotalPages(); p.page > last {
		p.page = last
	}
	if p.page < 1 {
		p.page = 1
	}
}

func (p *Pager) GoTo(page int) {
	p.page = page
	p.clamp()
}

func (p *Pager) Next() {
	if !p.NextDisabled() {
		p.page++
	}
}

func (p *Pager) Prev() {
	if !p.PrevDisabled() {
		p.page--
	}
}

func (p *Pager) PrevDisabled() bool { return p.page == 1 }

func (p *Pager) NextDisabled() bool { return p.page >= p.TotalPages() }

// ShowControls reports whether the collection spans more than one page.
func (p *Pager) ShowControls() bool { return p.total > p.size }

// Bounds is the half-open index range of the current page.
func (p *Pager) Bounds() (start, end int) {
	start = (p.page - 1) * p.size
	end = start + p.size
	if end > p.total {
		end = p.total
	}
	if start > end {
		start = end
	}
	return start, end
}

// View is what a table renders for one page.
type View[T any] struct {
	Rows         []T
	Empty        bool
	Placeholder  string
	Page         int
	TotalPages   int
	PrevDisabled bool
	NextDisabled bool
	ShowControls bool
}

// Paginate syncs p with items and returns the current page. An empty
// collection yields a view with only the placeholder.
func Paginate[T any](p *Pager, items []T, placeholder string) View[T] {
	p.SetTotal(len(items))
	start, end := p.Bounds()
	return View[T]{
		Rows:         items[start:end],
		Empty:        len(items) == 0,
		Placeholder:  placeholder,
		Page:         p.Page(),
		TotalPages:   p.TotalPages(),
		PrevDisabled: p.PrevDisabled(),
		NextDisabled: p.NextDisabled(),
		ShowControls: p.ShowControls(),
	}
}
