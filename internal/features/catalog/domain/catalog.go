package domain

// Status is the catalog load status.
type Status string

const (
	// StatusIdle means the catalog is not fetching.
	StatusIdle Status = "idle"
	// StatusLoading means a fetch is in flight.
	StatusLoading Status = "loading"
	// StatusError means the last fetch failed.
	StatusError Status = "error"
)

// SortKey selects the ordering of the visible product list.
type SortKey string

const (
	// SortByName orders by title, locale-aware. The default.
	SortByName SortKey = "name"
	// SortByPriceAsc orders by ascending price.
	SortByPriceAsc SortKey = "price-asc"
	// SortByPriceDesc orders by descending price.
	SortByPriceDesc SortKey = "price-desc"
	// SortByRating orders by descending rating.
	SortByRating SortKey = "rating"
)

// Valid reports whether the key is one of the supported orderings.
func (k SortKey) Valid() bool {
	switch k {
	case SortByName, SortByPriceAsc, SortByPriceDesc, SortByRating:
		return true
	}
	return false
}

// CategoryAll is the sentinel category value meaning "no category filter".
const CategoryAll = "all"

// CatalogState is an immutable catalog snapshot. Products is the source of
// truth as fetched; the visible list is always derived from it, never stored
// here.
type CatalogState struct {
	// Products is the raw collection, replaced wholesale on load, never
	// mutated in place.
	Products []Product `json:"products"`
	// SearchText is the settled free-text query ("" = no search).
	SearchText string `json:"search_text"`
	// Category is the active category filter ("" = no filter).
	Category string `json:"category"`
	// Sort is the active sort key.
	Sort SortKey `json:"sort"`
	// Status is the load status.
	Status Status `json:"status"`
	// ErrorMessage holds the last fetch failure, "" when none.
	ErrorMessage string `json:"error_message,omitempty"`
	// Categories is the distinct category set, derived from Products.
	Categories []string `json:"categories"`
}

// Initial returns the catalog state before any load.
func Initial() CatalogState {
	return CatalogState{
		Products:   []Product{},
		Sort:       SortByName,
		Status:     StatusIdle,
		Categories: []string{},
	}
}

// Loading marks a fetch as started and clears any previous error.
func (s CatalogState) Loading() CatalogState {
	s.Status = StatusLoading
	s.ErrorMessage = ""
	return s
}

// Loaded replaces the product collection wholesale, re-derives the category
// set and resets the status. The active search/category/sort fields are left
// untouched so a filter set during the load is never lost.
func (s CatalogState) Loaded(products []Product) CatalogState {
	s.Products = products
	s.Categories = DeriveCategories(products)
	s.Status = StatusIdle
	s.ErrorMessage = ""
	return s
}

// Failed records an upstream fetch failure. Products and filters are
// untouched, so the consumer keeps rendering the last good list.
func (s CatalogState) Failed(message string) CatalogState {
	s.Status = StatusError
	s.ErrorMessage = message
	return s
}

// WithSearchText returns the state with the settled search text applied.
func (s CatalogState) WithSearchText(text string) CatalogState {
	s.SearchText = text
	return s
}

// WithCategory returns the state with the category filter applied.
func (s CatalogState) WithCategory(category string) CatalogState {
	s.Category = category
	return s
}

// WithSort returns the state with the sort key applied. Invalid keys are
// ignored, keeping the previous ordering.
func (s CatalogState) WithSort(key SortKey) CatalogState {
	if !key.Valid() {
		return s
	}
	s.Sort = key
	return s
}
