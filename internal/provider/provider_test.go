package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webshop/catalog-search/internal/domain"
	"github.com/webshop/catalog-search/internal/engine/memory"
	"github.com/webshop/catalog-search/internal/repository"
	"github.com/webshop/catalog-search/internal/service"
)

type fakeRepo struct {
	items      []domain.CatalogItem
	lastFilter repository.ItemFilter
	err        error
}

func (r *fakeRepo) GetByID(_ context.Context, id int) (*domain.CatalogItem, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			return &r.items[i], nil
		}
	}
	return nil, fmt.Errorf("item %d not found", id)
}

func (r *fakeRepo) List(_ context.Context, filter repository.ItemFilter) ([]domain.CatalogItem, int, error) {
	r.lastFilter = filter
	if r.err != nil {
		return nil, 0, r.err
	}

	total := len(r.items)
	from := (filter.Page - 1) * filter.PerPage
	if from > total {
		from = total
	}
	end := from + filter.PerPage
	if end > total {
		end = total
	}
	return r.items[from:end], total, nil
}

func TestDatabaseProvider_ProjectsRows(t *testing.T) {
	repo := &fakeRepo{items: []domain.CatalogItem{
		{ID: 1, Title: "Widget", Price: 9.99, ArtNum: "W-1", CategoryID: 3},
	}}
	p := NewDatabaseProvider(repo)

	page, err := p.Provide(context.Background(), &domain.SearchQuery{Page: 1, PerPage: 10})
	require.NoError(t, err)

	require.Equal(t, 1, page.Total)
	assert.Equal(t, "Widget", page.Items[0].Title)
	assert.Equal(t, "/api/categories/3", page.Items[0].Category)
}

func TestDatabaseProvider_AppliesPaginationDefaults(t *testing.T) {
	repo := &fakeRepo{}
	p := NewDatabaseProvider(repo)

	page, err := p.Provide(context.Background(), &domain.SearchQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.lastFilter.Page)
	assert.Equal(t, service.DefaultPerPage, repo.lastFilter.PerPage)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, service.DefaultPerPage, page.PerPage)
}

func TestDatabaseProvider_CapsPerPage(t *testing.T) {
	repo := &fakeRepo{}
	p := NewDatabaseProvider(repo)

	_, err := p.Provide(context.Background(), &domain.SearchQuery{Page: 1, PerPage: 5000})
	require.NoError(t, err)

	assert.Equal(t, service.MaxPerPage, repo.lastFilter.PerPage)
}

func TestDatabaseProvider_PassesFiltersThrough(t *testing.T) {
	repo := &fakeRepo{}
	p := NewDatabaseProvider(repo)

	filters := domain.Filters{"search": "widget", "artNum": "W-1"}
	_, err := p.Provide(context.Background(), &domain.SearchQuery{Filters: filters, Page: 1, PerPage: 10})
	require.NoError(t, err)

	assert.Equal(t, filters, repo.lastFilter.Filters)
}

func TestDatabaseProvider_WrapsListError(t *testing.T) {
	sentinel := errors.New("connection refused")
	p := NewDatabaseProvider(&fakeRepo{err: sentinel})

	_, err := p.Provide(context.Background(), &domain.SearchQuery{Page: 1, PerPage: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
}

// Both providers must expose identical pagination behavior so the backing
// store can be swapped by configuration alone.
func TestProviders_SharePaginationContract(t *testing.T) {
	items := make([]domain.CatalogItem, 0, 25)
	for i := 1; i <= 25; i++ {
		items = append(items, domain.CatalogItem{ID: i, Title: fmt.Sprintf("Item %d", i)})
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewCatalogSearchService(memory.New(), nil, log)
	for i := range items {
		require.NoError(t, svc.IndexItem(context.Background(), &items[i]))
	}

	providers := map[string]ItemProvider{
		"search":   NewSearchProvider(svc),
		"database": NewDatabaseProvider(&fakeRepo{items: items}),
	}

	for name, p := range providers {
		t.Run(name, func(t *testing.T) {
			page, err := p.Provide(context.Background(), &domain.SearchQuery{Page: 3, PerPage: 10})
			require.NoError(t, err)

			assert.Equal(t, 25, page.Total)
			assert.Equal(t, 3, page.CurrentPage)
			assert.Equal(t, 3, page.LastPage())
			require.Len(t, page.Items, 5)
			assert.Equal(t, 21, page.Items[0].ID)
		})
	}
}
