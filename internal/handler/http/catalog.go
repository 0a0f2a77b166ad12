package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/webshop/catalog-search/internal/domain"
	"github.com/webshop/catalog-search/internal/httputil"
	"github.com/webshop/catalog-search/internal/provider"
	"github.com/webshop/catalog-search/internal/service"
	"github.com/webshop/catalog-search/internal/validator"
)

// CatalogHandler handles HTTP requests for catalog search endpoints.
type CatalogHandler struct {
	provider provider.ItemProvider
	service  *service.CatalogSearchService
	logger   *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler. Reads go through
// the provider so the backing store stays interchangeable; writes go
// straight to the indexing service.
func NewCatalogHandler(p provider.ItemProvider, svc *service.CatalogSearchService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		provider: p,
		service:  svc,
		logger:   logger,
	}
}

// IndexItemRequest is the JSON request body for indexing a catalog item.
type IndexItemRequest struct {
	ID          int     `json:"id" validate:"required,gt=0"`
	Title       string  `json:"title" validate:"required,min=1"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	ArtNum      string  `json:"artNum"`
	Features    string  `json:"features"`
	CategoryID  int     `json:"category_id"`
}

// searchResponse is the JSON shape of a result page, with the derived last
// page included.
type searchResponse struct {
	Items       []domain.SearchDocument `json:"items"`
	CurrentPage int                     `json:"current_page"`
	PerPage     int                     `json:"per_page"`
	Total       int                     `json:"total"`
	LastPage    int                     `json:"last_page"`
}

func newSearchResponse(page *domain.Page) searchResponse {
	return searchResponse{
		Items:       page.Items,
		CurrentPage: page.CurrentPage,
		PerPage:     page.PerPage,
		Total:       page.Total,
		LastPage:    page.LastPage(),
	}
}

// Search handles GET /api/v1/catalog/search
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	filters := domain.Filters{}
	if v := r.URL.Query().Get(domain.FilterSearch); v != "" {
		filters[domain.FilterSearch] = v
	}
	for _, field := range domain.ExactFilterFields() {
		if v := r.URL.Query().Get(field); v != "" {
			filters[field] = v
		}
	}

	q := &domain.SearchQuery{
		Filters: filters,
		Page:    1,
		PerPage: service.DefaultPerPage,
	}

	if v := r.URL.Query().Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: "page must be a positive integer"},
			})
			return
		}
		q.Page = page
	}
	if v := r.URL.Query().Get("per_page"); v != "" {
		if perPage, err := strconv.Atoi(v); err == nil && perPage > 0 && perPage <= service.MaxPerPage {
			q.PerPage = perPage
		}
	}

	page, err := h.provider.Provide(r.Context(), q)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: newSearchResponse(page)})
}

// IndexItem handles POST /api/v1/catalog/index
func (h *CatalogHandler) IndexItem(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req IndexItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	item := &domain.CatalogItem{
		ID:          req.ID,
		Title:       req.Title,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
		Image:       req.Image,
		ArtNum:      req.ArtNum,
		Features:    req.Features,
		CategoryID:  req.CategoryID,
	}

	if err := h.service.IndexItem(r.Context(), item); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]any{"id": req.ID, "status": "indexed"}})
}

// RemoveItem handles DELETE /api/v1/catalog/{id}
func (h *CatalogHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: "id must be a positive integer"},
		})
		return
	}

	if err := h.service.RemoveItem(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]any{"id": id, "status": "removed"}})
}

// Reindex handles POST /api/v1/catalog/reindex
func (h *CatalogHandler) Reindex(w http.ResponseWriter, r *http.Request) {
	go func() {
		ctx := context.Background()
		if err := h.service.Reindex(ctx); err != nil {
			h.logger.ErrorContext(ctx, "background reindex failed", "error", err)
		}
	}()

	httputil.WriteJSON(w, http.StatusAccepted, httputil.Response{Data: map[string]string{"status": "reindex started"}})
}
