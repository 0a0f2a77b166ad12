package memory

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/webshop/catalog-search/internal/domain"
)

// Engine is an in-memory implementation of the SearchEngine interface.
// It applies the same filter semantics as the Elasticsearch engine with
// simple string matching, and returns results in insertion order so that
// pagination is deterministic. Thread-safe via sync.RWMutex.
type Engine struct {
	mu    sync.RWMutex
	docs  map[int]domain.SearchDocument
	order []int
}

// New creates a new in-memory search engine.
func New() *Engine {
	return &Engine{
		docs: make(map[int]domain.SearchDocument),
	}
}

// Index adds or updates a single document. Re-indexing an existing id
// overwrites the document in place and keeps its position.
func (e *Engine) Index(_ context.Context, doc *domain.SearchDocument) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.put(*doc)
	return nil
}

// Delete removes a document by id. Deleting a missing id is a no-op.
func (e *Engine) Delete(_ context.Context, id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.docs[id]; !ok {
		return nil
	}
	delete(e.docs, id)
	for i, existing := range e.order {
		if existing == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	return nil
}

// Search executes the filter map against the in-memory index.
func (e *Engine) Search(_ context.Context, q *domain.SearchQuery) (*domain.Page, error) {
	from := (q.Page - 1) * q.PerPage
	if from < 0 {
		return nil, fmt.Errorf("memory search: negative offset %d", from)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	matched := make([]domain.SearchDocument, 0)
	for _, id := range e.order {
		doc := e.docs[id]
		if matches(&doc, q.Filters) {
			matched = append(matched, doc)
		}
	}

	total := len(matched)
	if from > total {
		from = total
	}
	end := from + q.PerPage
	if end > total {
		end = total
	}

	return domain.NewPage(matched[from:end], q.Page, q.PerPage, total), nil
}

// BulkIndex adds or updates multiple documents.
func (e *Engine) BulkIndex(_ context.Context, docs []domain.SearchDocument) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range docs {
		e.put(docs[i])
	}
	return nil
}

// EnsureIndex is a no-op for the in-memory engine.
func (e *Engine) EnsureIndex(_ context.Context) error {
	return nil
}

// Ping always succeeds for the in-memory engine.
func (e *Engine) Ping(_ context.Context) error {
	return nil
}

func (e *Engine) put(doc domain.SearchDocument) {
	if _, ok := e.docs[doc.ID]; !ok {
		e.order = append(e.order, doc.ID)
	}
	e.docs[doc.ID] = doc
}

// searchableFields returns the field values covered by the free-text term,
// matching the multi_match field list of the Elasticsearch engine.
func searchableFields(doc *domain.SearchDocument) []string {
	return []string{
		doc.Title,
		doc.Description,
		doc.Features,
		doc.Image,
		doc.ArtNum,
		doc.Category,
	}
}

// matches checks whether a document satisfies the given filters: the
// free-text term must match at least one searchable field, and every exact
// filter must match its field's literal value.
func matches(doc *domain.SearchDocument, filters domain.Filters) bool {
	if term := filters.SearchTerm(); term != "" {
		termLower := strings.ToLower(term)
		found := false
		for _, field := range searchableFields(doc) {
			if strings.Contains(strings.ToLower(field), termLower) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for _, field := range domain.ExactFilterFields() {
		value := filters.Exact(field)
		if value == "" {
			continue
		}
		if fieldValue(doc, field) != value {
			return false
		}
	}

	return true
}

// fieldValue renders a document field as the literal token an exact filter
// compares against. Price and quantity are stringified, not range-matched.
func fieldValue(doc *domain.SearchDocument, field string) string {
	switch field {
	case domain.FilterTitle:
		return doc.Title
	case domain.FilterArtNum:
		return doc.ArtNum
	case domain.FilterPrice:
		return strconv.FormatFloat(doc.Price, 'f', -1, 64)
	case domain.FilterQuantity:
		return strconv.Itoa(doc.Quantity)
	case domain.FilterFeatures:
		return doc.Features
	default:
		return ""
	}
}
