package engine

import (
	"context"

	"github.com/webshop/catalog-search/internal/domain"
)

// SearchEngine defines the interface for indexing and searching catalog
// documents. Implementations may use Elasticsearch, in-memory storage, or
// other backends; all of them key documents by the catalog item identifier.
type SearchEngine interface {
	// Index upserts a single document under its item identifier.
	// The write is a full replace, never a merge, so repeating it with
	// the same document is idempotent.
	Index(ctx context.Context, doc *domain.SearchDocument) error

	// Delete removes a document by item identifier. Deleting a document
	// that does not exist is a no-op, not an error; the two stores may
	// already disagree.
	Delete(ctx context.Context, id int) error

	// Search executes the filter map against the index and returns one
	// result page. Backend failures propagate; no partial result is
	// fabricated.
	Search(ctx context.Context, q *domain.SearchQuery) (*domain.Page, error)

	// BulkIndex upserts multiple documents. Used by the reindex path.
	BulkIndex(ctx context.Context, docs []domain.SearchDocument) error

	// EnsureIndex creates the backing index with its field mapping if it
	// does not already exist. Safe to call repeatedly.
	EnsureIndex(ctx context.Context) error
}
