package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{
	"products": [
		{"id": 1, "title": "Red Shoe", "description": "A shoe", "brand": "Acme",
		 "category": "shoes", "price": 50, "discountPercentage": 5.5,
		 "rating": 4, "stock": 12, "thumbnail": "shoe.jpg",
		 "images": ["a.jpg", "b.jpg"]},
		{"id": 2, "title": "Blue Hat", "category": "hats", "price": 10, "rating": 5}
	]
}`

func TestHTTPProductSource_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(samplePayload))
	}))
	defer ts.Close()

	source := NewHTTPProductSource(ts.URL, 2*time.Second)

	products, err := source.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Red Shoe", products[0].Title)
	assert.Equal(t, 5.5, products[0].DiscountPercentage)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, products[0].Images)

	// Missing fields decode to zero values.
	assert.Empty(t, products[1].Brand)
	assert.Equal(t, "hats", products[1].Category)
}

func TestHTTPProductSource_MalformedStringFieldsDegrade(t *testing.T) {
	payload := `{"products": [{"id": 7, "title": null, "brand": 42, "category": "misc", "price": 1}]}`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer ts.Close()

	source := NewHTTPProductSource(ts.URL, 2*time.Second)

	products, err := source.FetchProducts(context.Background())
	require.NoError(t, err, "a malformed record must not abort the collection")
	require.Len(t, products, 1)

	assert.Empty(t, products[0].Title)
	assert.Empty(t, products[0].Brand)
	assert.Equal(t, "misc", products[0].Category)
}

func TestHTTPProductSource_Non200(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	source := NewHTTPProductSource(ts.URL, 2*time.Second)

	_, err := source.FetchProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPProductSource_InvalidJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer ts.Close()

	source := NewHTTPProductSource(ts.URL, 2*time.Second)

	_, err := source.FetchProducts(context.Background())
	assert.Error(t, err)
}

func TestHTTPProductSource_ContextCancellation(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer ts.Close()
	defer close(release)

	source := NewHTTPProductSource(ts.URL, 10*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.FetchProducts(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
