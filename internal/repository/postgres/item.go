package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/webshop/catalog-search/internal/apperrors"
	"github.com/webshop/catalog-search/internal/database"
	"github.com/webshop/catalog-search/internal/domain"
	"github.com/webshop/catalog-search/internal/repository"
)

// ItemRepository implements repository.ItemRepository using PostgreSQL.
type ItemRepository struct {
	pool database.DBTX
}

// NewItemRepository creates a new PostgreSQL-backed catalog item repository.
func NewItemRepository(pool database.DBTX) *ItemRepository {
	return &ItemRepository{pool: pool}
}

// GetByID retrieves a catalog item by its ID.
func (r *ItemRepository) GetByID(ctx context.Context, id int) (*domain.CatalogItem, error) {
	query := `
		SELECT id, title, price, quantity, description, image, art_num, features, category_id
		FROM catalog_items
		WHERE id = $1`

	var item domain.CatalogItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Title,
		&item.Price,
		&item.Quantity,
		&item.Description,
		&item.Image,
		&item.ArtNum,
		&item.Features,
		&item.CategoryID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("catalog item", strconv.Itoa(id))
		}
		return nil, fmt.Errorf("select catalog item: %w", err)
	}

	return &item, nil
}

// List returns catalog items matching the given filter with the total
// count. The filter map is interpreted with the same semantics as the
// search index: a free-text term matches substrings of the text columns,
// exact filters compare the literal value. Numeric columns are compared as
// text so a price filter matches the literal token, not a numeric range.
func (r *ItemRepository) List(ctx context.Context, filter repository.ItemFilter) ([]domain.CatalogItem, int, error) {
	var (
		conditions []string
		args       []any
		argIndex   = 1
	)

	if term := filter.Filters.SearchTerm(); term != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR features ILIKE $%d OR image ILIKE $%d OR art_num ILIKE $%d)",
			argIndex, argIndex, argIndex, argIndex, argIndex,
		))
		args = append(args, "%"+term+"%")
		argIndex++
	}

	for _, field := range domain.ExactFilterFields() {
		value := filter.Filters.Exact(field)
		if value == "" {
			continue
		}
		conditions = append(conditions, fmt.Sprintf("%s = $%d", columnFor(field), argIndex))
		args = append(args, value)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// count(*) OVER() returns the total match count in a single query.
	query := fmt.Sprintf(`
		SELECT id, title, price, quantity, description, image, art_num, features, category_id,
			   count(*) OVER() AS total_count
		FROM catalog_items
		%s
		ORDER BY id
		LIMIT $%d OFFSET $%d`,
		whereClause, argIndex, argIndex+1,
	)

	limit := filter.PerPage
	if limit <= 0 {
		limit = 10
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list catalog items: %w", err)
	}
	defer rows.Close()

	var (
		items []domain.CatalogItem
		total int
	)
	for rows.Next() {
		var item domain.CatalogItem
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Price,
			&item.Quantity,
			&item.Description,
			&item.Image,
			&item.ArtNum,
			&item.Features,
			&item.CategoryID,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan catalog item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate catalog items: %w", err)
	}

	return items, total, nil
}

// columnFor maps a filter field to its table column. Numeric columns are
// cast to text to keep the exact-token filter semantics.
func columnFor(field string) string {
	switch field {
	case domain.FilterTitle:
		return "title"
	case domain.FilterArtNum:
		return "art_num"
	case domain.FilterPrice:
		return "price::text"
	case domain.FilterQuantity:
		return "quantity::text"
	case domain.FilterFeatures:
		return "features"
	default:
		return field
	}
}
