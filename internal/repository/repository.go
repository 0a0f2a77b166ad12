package repository

import (
	"context"

	"github.com/webshop/catalog-search/internal/domain"
)

// ItemFilter narrows a catalog item listing. Filters carries the same
// filter map the search path consumes, so both backends honor one contract.
type ItemFilter struct {
	Filters domain.Filters
	Page    int
	PerPage int
}

// ItemRepository provides read access to catalog items in the primary
// store. It is the source of truth the reindex operation re-projects from.
type ItemRepository interface {
	// GetByID returns a single item, or apperrors.ErrNotFound.
	GetByID(ctx context.Context, id int) (*domain.CatalogItem, error)

	// List returns one page of items matching the filter plus the total
	// match count.
	List(ctx context.Context, filter ItemFilter) ([]domain.CatalogItem, int, error)
}
