// Package query translates the read path's filter map into the structured
// boolean query understood by the search backend.
package query

import (
	"github.com/webshop/catalog-search/internal/domain"
)

// searchFields are the fields covered by the free-text clause. Title is
// boosted so a title hit outranks the same term elsewhere; best_fields
// scores a hit by its single best-matching field.
var searchFields = []string{
	"title^3",
	"description",
	"features",
	"image",
	"artNum",
	"category",
}

// Translate converts a filter map into a boolean query body.
//
// The free-text `search` key becomes a should clause (multi_match,
// best_fields) with minimum_should_match = 1. Each allow-listed exact
// filter becomes a must match clause; multiple filters AND together, and
// must and should combine conjunctively. With no clauses at all the query
// degenerates to match_all. Filter values are passed through untyped:
// a price filter matches the literal token, not a numeric range.
func Translate(filters domain.Filters) map[string]any {
	var should []any
	if term := filters.SearchTerm(); term != "" {
		should = append(should, map[string]any{
			"multi_match": map[string]any{
				"query":  term,
				"fields": searchFields,
				"type":   "best_fields",
			},
		})
	}

	var must []any
	for _, field := range domain.ExactFilterFields() {
		if value := filters.Exact(field); value != "" {
			must = append(must, map[string]any{
				"match": map[string]any{
					field: value,
				},
			})
		}
	}

	if len(should) == 0 && len(must) == 0 {
		return map[string]any{"match_all": map[string]any{}}
	}

	boolQuery := map[string]any{}
	if len(should) > 0 {
		boolQuery["should"] = should
		boolQuery["minimum_should_match"] = 1
	}
	if len(must) > 0 {
		boolQuery["must"] = must
	}

	return map[string]any{"bool": boolQuery}
}
