package handler

import (
	"context"

	"shopfront/internal/features/catalog/domain"
	catalogstore "shopfront/internal/features/catalog/store"

	"github.com/gofiber/fiber/v2"
)

// Reloader triggers a catalog refresh. Implemented by the catalog loader.
type Reloader interface {
	Reload(ctx context.Context)
}

// CatalogHandler is the thin consumer over the catalog store.
type CatalogHandler struct {
	catalog  *catalogstore.CatalogStore
	reloader Reloader
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *catalogstore.CatalogStore, reloader Reloader) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, reloader: reloader}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// productListResponse is what the browsing page renders: the derived visible
// list plus the state it was derived from.
type productListResponse struct {
	Products     []domain.Product `json:"products"`
	Status       domain.Status    `json:"status"`
	ErrorMessage string           `json:"error_message,omitempty"`
	SearchText   string           `json:"search_text"`
	Category     string           `json:"category"`
	Sort         domain.SortKey   `json:"sort"`
}

type searchRequest struct {
	Text string `json:"text"`
}

type categoryRequest struct {
	Category string `json:"category"`
}

type sortRequest struct {
	Key string `json:"key"`
}

// GetProducts returns the memoized visible product list with the active
// filters and load status.
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	snap := h.catalog.Snapshot()
	return c.JSON(productListResponse{
		Products:     h.catalog.VisibleProducts(),
		Status:       snap.Status,
		ErrorMessage: snap.ErrorMessage,
		SearchText:   snap.SearchText,
		Category:     snap.Category,
		Sort:         snap.Sort,
	})
}

// GetCategories returns the derived category set.
func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": h.catalog.Snapshot().Categories})
}

// SetSearch applies a settled search query. Debouncing keystrokes is the
// caller's responsibility.
func (h *CatalogHandler) SetSearch(c *fiber.Ctx) error {
	var req searchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	h.catalog.SetSearchText(req.Text)
	return h.GetProducts(c)
}

// SetCategory applies a category filter.
func (h *CatalogHandler) SetCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	h.catalog.SetCategory(req.Category)
	return h.GetProducts(c)
}

// SetSort applies a sort key. Unknown keys are rejected here at the edge;
// the store itself would ignore them either way.
func (h *CatalogHandler) SetSort(c *fiber.Ctx) error {
	var req sortRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	key := domain.SortKey(req.Key)
	if !key.Valid() {
		return badRequest(c, "unknown sort key: "+req.Key)
	}

	h.catalog.SetSortKey(key)
	return h.GetProducts(c)
}

// Reload forces a catalog refresh. The fetch is asynchronous and outlives
// the request, so the reply is 202 and the consumer observes the outcome
// through the store.
func (h *CatalogHandler) Reload(c *fiber.Ctx) error {
	h.reloader.Reload(context.Background())
	return c.SendStatus(fiber.StatusAccepted)
}

func badRequest(c *fiber.Ctx, message string) error {
	rayID, _ := c.Locals("requestid").(string)
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Message: message,
		RayID:   rayID,
	})
}
