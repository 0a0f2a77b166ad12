package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CatalogItem is the canonical sellable item held by the primary store.
// It is mutated only through the catalog's write path; the search index
// holds a denormalized copy keyed by the same identifier.
type CatalogItem struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	ArtNum      string  `json:"artNum"`
	Features    string  `json:"features"`
	CategoryID  int     `json:"category_id"`
}

// SearchDocument is the flattened projection of a CatalogItem stored in the
// search index. The category relation is collapsed to a path-style reference
// string; the document ID equals the owning item's ID and is the join key
// between the two stores.
type SearchDocument struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	ArtNum      string  `json:"artNum"`
	Features    string  `json:"features"`
	Category    string  `json:"category"`
}

// CategoryRef returns the flattened reference string for a category ID.
func CategoryRef(categoryID int) string {
	return fmt.Sprintf("/api/categories/%d", categoryID)
}

// ProjectItem builds the search document for a catalog item by direct field
// projection plus category-reference flattening. Projection is a full
// snapshot: re-projecting the same item state yields the same document.
func ProjectItem(item *CatalogItem) SearchDocument {
	return SearchDocument{
		ID:          item.ID,
		Title:       item.Title,
		Price:       item.Price,
		Quantity:    item.Quantity,
		Description: item.Description,
		Image:       item.Image,
		ArtNum:      item.ArtNum,
		Features:    item.Features,
		Category:    CategoryRef(item.CategoryID),
	}
}

// DocumentID returns the index document key for the item.
func (i *CatalogItem) DocumentID() string {
	return strconv.Itoa(i.ID)
}

// Filter keys accepted from the read path.
const (
	FilterSearch   = "search"
	FilterTitle    = "title"
	FilterArtNum   = "artNum"
	FilterPrice    = "price"
	FilterQuantity = "quantity"
	FilterFeatures = "features"
)

// ExactFilterFields lists the fields allowed as exact-match filters, in the
// order they are applied. Category is indexed but excluded from the read
// path's exact filters.
func ExactFilterFields() []string {
	return []string{FilterTitle, FilterArtNum, FilterPrice, FilterQuantity, FilterFeatures}
}

// Filters is the raw filter map consumed from the read path. At most one
// free-text key (search) plus zero or more exact filter keys; unknown keys
// are ignored, never errors.
type Filters map[string]string

// SearchTerm returns the trimmed free-text term, or "" if absent.
func (f Filters) SearchTerm() string {
	return strings.TrimSpace(f[FilterSearch])
}

// Exact returns the value for an allow-listed exact filter field, or ""
// when absent or blank.
func (f Filters) Exact(field string) string {
	return strings.TrimSpace(f[field])
}

// IsEmpty reports whether the filters carry neither a search term nor any
// exact filter value. An empty filter set degenerates to match-everything.
func (f Filters) IsEmpty() bool {
	if f.SearchTerm() != "" {
		return false
	}
	for _, field := range ExactFilterFields() {
		if f.Exact(field) != "" {
			return false
		}
	}
	return true
}

// SearchQuery holds all parameters for a search request.
type SearchQuery struct {
	Filters Filters `json:"filters"`
	Page    int     `json:"page"`
	PerPage int     `json:"per_page"`
}
