package domain

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
)

// Product is a catalog entry as supplied by the product source.
type Product struct {
	// ID is the unique product identifier.
	ID int `json:"id"`
	// Title is the display name of the product.
	Title string `json:"title"`
	// Description is the long-form product description.
	Description string `json:"description"`
	// Brand is the manufacturer or label.
	Brand string `json:"brand"`
	// Category groups the product for filtering.
	Category string `json:"category"`
	// Price is the unit price.
	Price float64 `json:"price"`
	// DiscountPercentage is the active discount in [0,100].
	DiscountPercentage float64 `json:"discount_percentage"`
	// Rating is the aggregate customer rating.
	Rating float64 `json:"rating"`
	// Stock is the number of units available.
	Stock int `json:"stock"`
	// Thumbnail is the primary image reference.
	Thumbnail string `json:"thumbnail"`
	// Images are additional image references, in display order.
	Images []string `json:"images"`
}

// Matches reports whether the product matches a lowercased search needle.
// The match is a case-insensitive substring test over title, description,
// category and brand; any field matching is enough. Empty fields simply
// never match, so a malformed record degrades instead of aborting the pass.
func (p Product) Matches(needle string) bool {
	for _, field := range []string{p.Title, p.Description, p.Category, p.Brand} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Filter applies the search text and category filter, in that order, and
// returns the surviving products in their original order.
//
// The category filter is exact and case-sensitive; "" and the "all" sentinel
// disable it.
func Filter(products []Product, searchText, category string) []Product {
	out := make([]Product, 0, len(products))

	needle := strings.ToLower(searchText)
	for _, p := range products {
		if needle != "" && !p.Matches(needle) {
			continue
		}
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		out = append(out, p)
	}

	return out
}

// Sort returns a sorted copy of products. Ties keep their relative order.
// Unknown keys fall back to the name ordering, which is locale-aware via the
// supplied collator.
func Sort(products []Product, key SortKey, coll *collate.Collator) []Product {
	out := make([]Product, len(products))
	copy(out, products)

	var less func(a, b Product) bool
	switch key {
	case SortByPriceAsc:
		less = func(a, b Product) bool { return a.Price < b.Price }
	case SortByPriceDesc:
		less = func(a, b Product) bool { return a.Price > b.Price }
	case SortByRating:
		less = func(a, b Product) bool { return a.Rating > b.Rating }
	default:
		less = func(a, b Product) bool { return coll.CompareString(a.Title, b.Title) < 0 }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// DeriveCategories returns the distinct category values, sorted for
// deterministic output. It is recomputed whenever the product collection is
// replaced, never edited by hand.
func DeriveCategories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}
