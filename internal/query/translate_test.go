package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webshop/catalog-search/internal/domain"
)

func TestTranslate_EmptyFiltersMatchAll(t *testing.T) {
	tests := []struct {
		name    string
		filters domain.Filters
	}{
		{"nil", nil},
		{"empty", domain.Filters{}},
		{"blank search", domain.Filters{"search": "   "}},
		{"unknown keys only", domain.Filters{"color": "red", "size": "L"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Translate(tt.filters)
			assert.Equal(t, map[string]any{"match_all": map[string]any{}}, q)
		})
	}
}

func TestTranslate_FreeTextShouldClause(t *testing.T) {
	q := Translate(domain.Filters{"search": "red shoes"})

	boolQuery, ok := q["bool"].(map[string]any)
	require.True(t, ok, "expected a bool query")

	assert.Equal(t, 1, boolQuery["minimum_should_match"])
	assert.NotContains(t, boolQuery, "must")

	should, ok := boolQuery["should"].([]any)
	require.True(t, ok)
	require.Len(t, should, 1)

	multiMatch := should[0].(map[string]any)["multi_match"].(map[string]any)
	assert.Equal(t, "red shoes", multiMatch["query"])
	assert.Equal(t, "best_fields", multiMatch["type"])
	assert.Equal(t, []string{"title^3", "description", "features", "image", "artNum", "category"}, multiMatch["fields"])
}

func TestTranslate_ExactFiltersMustClauses(t *testing.T) {
	q := Translate(domain.Filters{"title": "Widget", "price": "9.99"})

	boolQuery := q["bool"].(map[string]any)
	assert.NotContains(t, boolQuery, "should")
	assert.NotContains(t, boolQuery, "minimum_should_match")

	must, ok := boolQuery["must"].([]any)
	require.True(t, ok)
	require.Len(t, must, 2)

	// Clauses follow the allow-list order: title before price.
	assert.Equal(t, map[string]any{"match": map[string]any{"title": "Widget"}}, must[0])
	assert.Equal(t, map[string]any{"match": map[string]any{"price": "9.99"}}, must[1])
}

func TestTranslate_SearchAndFilterCombine(t *testing.T) {
	q := Translate(domain.Filters{"search": "x", "title": "y"})

	boolQuery := q["bool"].(map[string]any)

	should, ok := boolQuery["should"].([]any)
	require.True(t, ok)
	assert.Len(t, should, 1)
	assert.Equal(t, 1, boolQuery["minimum_should_match"])

	must, ok := boolQuery["must"].([]any)
	require.True(t, ok)
	require.Len(t, must, 1)
	assert.Equal(t, map[string]any{"match": map[string]any{"title": "y"}}, must[0])
}

func TestTranslate_CategoryNotAnExactFilter(t *testing.T) {
	// Category is indexed and searchable via free text, but excluded from
	// the read path's exact filters.
	q := Translate(domain.Filters{"category": "/api/categories/3"})
	assert.Equal(t, map[string]any{"match_all": map[string]any{}}, q)
}

func TestTranslate_ValuesNotValidated(t *testing.T) {
	// Price is matched as a literal token; a non-numeric value passes
	// through untouched rather than failing translation.
	q := Translate(domain.Filters{"price": "cheap"})

	must := q["bool"].(map[string]any)["must"].([]any)
	require.Len(t, must, 1)
	assert.Equal(t, map[string]any{"match": map[string]any{"price": "cheap"}}, must[0])
}
