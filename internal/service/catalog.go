package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/webshop/catalog-search/internal/apperrors"
	"github.com/webshop/catalog-search/internal/domain"
	"github.com/webshop/catalog-search/internal/engine"
	"github.com/webshop/catalog-search/internal/repository"
)

// Default and maximum page sizes for search requests.
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// reindexBatchSize is the number of items fetched from the primary store
// and bulk-indexed per reindex iteration.
const reindexBatchSize = 100

// CatalogSearchService keeps the search index consistent with the catalog's
// primary store and serves paginated queries against the index.
//
// Index writes are synchronous and best-effort: a failure surfaces to the
// caller but never rolls back the already-committed primary-store write.
// The Reindex operation is the recovery mechanism when the stores drift.
type CatalogSearchService struct {
	engine engine.SearchEngine
	items  repository.ItemRepository
	logger *slog.Logger
}

// NewCatalogSearchService creates a new catalog search service. The item
// repository may be nil when no primary store is wired (Reindex then
// returns an error).
func NewCatalogSearchService(eng engine.SearchEngine, items repository.ItemRepository, logger *slog.Logger) *CatalogSearchService {
	return &CatalogSearchService{
		engine: eng,
		items:  items,
		logger: logger,
	}
}

// IndexItem projects a catalog item into its search document and upserts it
// under the item's identifier. Repeating the call with the same item state
// stores the same document; the write is a full replace.
func (s *CatalogSearchService) IndexItem(ctx context.Context, item *domain.CatalogItem) error {
	if item.ID <= 0 {
		return apperrors.InvalidInput("index item: id is required")
	}
	if item.Title == "" {
		return apperrors.InvalidInput("index item: title is required")
	}

	doc := domain.ProjectItem(item)
	if err := s.engine.Index(ctx, &doc); err != nil {
		return apperrors.SearchUnavailable(fmt.Errorf("index item %d: %w", item.ID, err))
	}

	s.logger.InfoContext(ctx, "item indexed",
		slog.Int("item_id", item.ID),
		slog.String("title", item.Title),
	)

	return nil
}

// RemoveItem deletes the item's document from the index. Removing an id
// that was never indexed, or was already removed, succeeds.
func (s *CatalogSearchService) RemoveItem(ctx context.Context, id int) error {
	if id <= 0 {
		return apperrors.InvalidInput("remove item: id is required")
	}

	if err := s.engine.Delete(ctx, id); err != nil {
		return apperrors.SearchUnavailable(fmt.Errorf("remove item %d: %w", id, err))
	}

	s.logger.InfoContext(ctx, "item removed from index",
		slog.Int("item_id", id),
	)

	return nil
}

// Search executes the filter map against the index and returns one result
// page. Page defaults to 1 and per-page to DefaultPerPage; the engine
// itself applies the offset unguarded.
func (s *CatalogSearchService) Search(ctx context.Context, q *domain.SearchQuery) (*domain.Page, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PerPage <= 0 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
	if q.Filters == nil {
		q.Filters = domain.Filters{}
	}

	page, err := s.engine.Search(ctx, q)
	if err != nil {
		return nil, apperrors.SearchUnavailable(fmt.Errorf("search: %w", err))
	}

	s.logger.DebugContext(ctx, "search executed",
		slog.String("search", q.Filters.SearchTerm()),
		slog.Int("page", q.Page),
		slog.Int("total", page.Total),
	)

	return page, nil
}

// Reindex ensures the index exists with its mapping, then re-projects every
// catalog item from the primary store into the index in batches. It is
// idempotent and is the designated repair for drift between the two stores.
func (s *CatalogSearchService) Reindex(ctx context.Context) error {
	if s.items == nil {
		return fmt.Errorf("reindex: no item repository configured")
	}

	if err := s.engine.EnsureIndex(ctx); err != nil {
		return apperrors.SearchUnavailable(fmt.Errorf("reindex: ensure index: %w", err))
	}

	indexed := 0
	for page := 1; ; page++ {
		items, total, err := s.items.List(ctx, repository.ItemFilter{
			Page:    page,
			PerPage: reindexBatchSize,
		})
		if err != nil {
			return fmt.Errorf("reindex: list items page %d: %w", page, err)
		}
		if len(items) == 0 {
			break
		}

		docs := make([]domain.SearchDocument, 0, len(items))
		for i := range items {
			docs = append(docs, domain.ProjectItem(&items[i]))
		}

		if err := s.engine.BulkIndex(ctx, docs); err != nil {
			return apperrors.SearchUnavailable(fmt.Errorf("reindex: bulk index page %d: %w", page, err))
		}

		indexed += len(docs)
		if indexed >= total {
			break
		}
	}

	s.logger.InfoContext(ctx, "reindex completed",
		slog.Int("indexed", indexed),
	)

	return nil
}
