// Package provider exposes catalog reads behind one pagination contract so
// callers cannot tell whether the primary store or the search index
// answered a request.
package provider

import (
	"context"
	"fmt"

	"github.com/webshop/catalog-search/internal/domain"
	"github.com/webshop/catalog-search/internal/repository"
	"github.com/webshop/catalog-search/internal/service"
)

// ItemProvider produces one page of catalog documents for a query.
type ItemProvider interface {
	Provide(ctx context.Context, q *domain.SearchQuery) (*domain.Page, error)
}

// SearchProvider answers queries from the search index.
type SearchProvider struct {
	svc *service.CatalogSearchService
}

// NewSearchProvider creates an index-backed provider.
func NewSearchProvider(svc *service.CatalogSearchService) *SearchProvider {
	return &SearchProvider{svc: svc}
}

// Provide executes the query against the search index.
func (p *SearchProvider) Provide(ctx context.Context, q *domain.SearchQuery) (*domain.Page, error) {
	return p.svc.Search(ctx, q)
}

// DatabaseProvider answers queries from the primary store, projecting rows
// into the same document shape the index returns.
type DatabaseProvider struct {
	items repository.ItemRepository
}

// NewDatabaseProvider creates a primary-store-backed provider.
func NewDatabaseProvider(items repository.ItemRepository) *DatabaseProvider {
	return &DatabaseProvider{items: items}
}

// Provide lists matching items from the primary store and returns them as
// projected documents under the shared pagination contract.
func (p *DatabaseProvider) Provide(ctx context.Context, q *domain.SearchQuery) (*domain.Page, error) {
	page := q.Page
	if page <= 0 {
		page = 1
	}
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = service.DefaultPerPage
	}
	if perPage > service.MaxPerPage {
		perPage = service.MaxPerPage
	}

	items, total, err := p.items.List(ctx, repository.ItemFilter{
		Filters: q.Filters,
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return nil, fmt.Errorf("database provider: %w", err)
	}

	docs := make([]domain.SearchDocument, 0, len(items))
	for i := range items {
		docs = append(docs, domain.ProjectItem(&items[i]))
	}

	return domain.NewPage(docs, page, perPage, total), nil
}
