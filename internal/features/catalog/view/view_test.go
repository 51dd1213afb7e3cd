package view

import (
	"testing"

	"shopfront/internal/features/catalog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedState(products []domain.Product) domain.CatalogState {
	return domain.Initial().Loaded(products)
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Red Shoe", Category: "shoes", Price: 50, Rating: 4},
		{ID: 2, Title: "Blue Hat", Category: "hats", Price: 10, Rating: 5},
	}
}

func TestVisibleProducts_SearchScenario(t *testing.T) {
	e := NewEngine()
	s := loadedState(sampleProducts()).WithSearchText("shoe")

	got := e.VisibleProducts(s)

	require.Len(t, got, 1)
	assert.Equal(t, "Red Shoe", got[0].Title)
}

func TestVisibleProducts_PriceAscScenario(t *testing.T) {
	e := NewEngine()
	s := loadedState(sampleProducts()).WithSort(domain.SortByPriceAsc)

	got := e.VisibleProducts(s)

	require.Len(t, got, 2)
	assert.Equal(t, 10.0, got[0].Price)
	assert.Equal(t, 50.0, got[1].Price)
}

func TestVisibleProducts_CachedWhileInputsUnchanged(t *testing.T) {
	e := NewEngine()
	s := loadedState(sampleProducts()).WithSearchText("shoe")

	first := e.VisibleProducts(s)
	second := e.VisibleProducts(s)

	require.Len(t, first, 1)
	assert.Same(t, &first[0], &second[0], "a cache hit returns the identical slice")
}

func TestVisibleProducts_UnrelatedStateChangeKeepsCache(t *testing.T) {
	e := NewEngine()
	s := loadedState(sampleProducts())

	first := e.VisibleProducts(s)

	// A status flip (e.g. a reload starting) does not touch any of the four
	// memo inputs.
	second := e.VisibleProducts(s.Loading())

	require.NotEmpty(t, first)
	assert.Same(t, &first[0], &second[0])
}

func TestVisibleProducts_SearchChangeInvalidates(t *testing.T) {
	e := NewEngine()
	s := loadedState(sampleProducts())

	all := e.VisibleProducts(s)
	require.Len(t, all, 2)

	filtered := e.VisibleProducts(s.WithSearchText("hat"))
	require.Len(t, filtered, 1)
	assert.Equal(t, "Blue Hat", filtered[0].Title)
}

func TestVisibleProducts_CategoryChangeInvalidates(t *testing.T) {
	e := NewEngine()
	s := loadedState(sampleProducts())

	e.VisibleProducts(s)
	got := e.VisibleProducts(s.WithCategory("shoes"))

	require.Len(t, got, 1)
	assert.Equal(t, "Red Shoe", got[0].Title)
}

func TestVisibleProducts_SortChangeInvalidates(t *testing.T) {
	e := NewEngine()
	s := loadedState(sampleProducts())

	byName := e.VisibleProducts(s)
	require.Equal(t, "Blue Hat", byName[0].Title)

	byRating := e.VisibleProducts(s.WithSort(domain.SortByRating))
	assert.Equal(t, "Blue Hat", byRating[0].Title)

	byPriceDesc := e.VisibleProducts(s.WithSort(domain.SortByPriceDesc))
	assert.Equal(t, "Red Shoe", byPriceDesc[0].Title)
}

func TestVisibleProducts_ProductReplacementInvalidates(t *testing.T) {
	e := NewEngine()
	s := loadedState(sampleProducts())

	first := e.VisibleProducts(s)
	require.Len(t, first, 2)

	reloaded := s.Loaded([]domain.Product{{ID: 3, Title: "Green Sock", Category: "socks"}})
	second := e.VisibleProducts(reloaded)

	require.Len(t, second, 1)
	assert.Equal(t, "Green Sock", second[0].Title)
}

func TestVisibleProducts_EmptyCatalog(t *testing.T) {
	e := NewEngine()

	got := e.VisibleProducts(domain.Initial())

	assert.Empty(t, got)

	// Still a cache hit on the second read.
	again := e.VisibleProducts(domain.Initial())
	assert.Empty(t, again)
}
