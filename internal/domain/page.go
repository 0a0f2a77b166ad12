package domain

// Page is the pagination value object returned for every catalog read,
// whether the primary store or the search index answered the request.
// It wraps an already-materialized slice, so iterating Items twice yields
// the same documents in the same order.
type Page struct {
	Items       []SearchDocument `json:"items"`
	CurrentPage int              `json:"current_page"`
	PerPage     int              `json:"per_page"`
	Total       int              `json:"total"`
}

// NewPage constructs a result page. Items is never nil so callers and JSON
// encoders see an empty list rather than null.
func NewPage(items []SearchDocument, currentPage, perPage, total int) *Page {
	if items == nil {
		items = []SearchDocument{}
	}
	return &Page{
		Items:       items,
		CurrentPage: currentPage,
		PerPage:     perPage,
		Total:       total,
	}
}

// LastPage returns ceil(Total/PerPage), never less than 1. PerPage >= 1 is
// a caller contract; a zero PerPage is a programming error upstream.
func (p *Page) LastPage() int {
	last := p.Total / p.PerPage
	if p.Total%p.PerPage > 0 {
		last++
	}
	if last < 1 {
		last = 1
	}
	return last
}

// Count returns the number of items on this page.
func (p *Page) Count() int {
	return len(p.Items)
}
