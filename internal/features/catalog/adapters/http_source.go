package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shopfront/internal/core/httpclient"
	"shopfront/internal/features/catalog/domain"
)

// HTTPProductSource fetches the product collection from a JSON endpoint
// shaped like the dummyjson products API: {"products": [...]}.
type HTTPProductSource struct {
	client *http.Client
	url    string
}

// NewHTTPProductSource creates a source for the given endpoint.
func NewHTTPProductSource(url string, timeout time.Duration) *HTTPProductSource {
	return &HTTPProductSource{
		client: httpclient.NewClient(timeout),
		url:    url,
	}
}

// FetchProducts downloads and decodes the product collection.
func (a *HTTPProductSource) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product API returned status: %d", resp.StatusCode)
	}

	var payload wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	products := make([]domain.Product, 0, len(payload.Products))
	for _, wp := range payload.Products {
		products = append(products, wp.toDomain())
	}
	return products, nil
}

// wireResponse is the raw payload shape.
type wireResponse struct {
	Products []wireProduct `json:"products"`
}

// wireProduct mirrors the upstream record. String fields use looseString so
// a malformed record (null or non-string where a string belongs) degrades to
// "" instead of failing the whole collection.
type wireProduct struct {
	ID                 int         `json:"id"`
	Title              looseString `json:"title"`
	Description        looseString `json:"description"`
	Brand              looseString `json:"brand"`
	Category           looseString `json:"category"`
	Price              float64     `json:"price"`
	DiscountPercentage float64     `json:"discountPercentage"`
	Rating             float64     `json:"rating"`
	Stock              int         `json:"stock"`
	Thumbnail          looseString `json:"thumbnail"`
	Images             []string    `json:"images"`
}

func (w wireProduct) toDomain() domain.Product {
	return domain.Product{
		ID:                 w.ID,
		Title:              string(w.Title),
		Description:        string(w.Description),
		Brand:              string(w.Brand),
		Category:           string(w.Category),
		Price:              w.Price,
		DiscountPercentage: w.DiscountPercentage,
		Rating:             w.Rating,
		Stock:              w.Stock,
		Thumbnail:          string(w.Thumbnail),
		Images:             w.Images,
	}
}

// looseString decodes JSON strings normally and collapses null or any
// non-string value to "".
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		*s = ""
		return nil
	}
	*s = looseString(str)
	return nil
}
