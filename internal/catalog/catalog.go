// Package catalog exposes the read-only product catalog behind an injectable
// service interface.
package catalog

import "context"

type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type Category struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

type Service interface {
	// Products returns the catalog, filtered to one category when category
	// is non-empty. An unknown category yields an empty slice, not an error.
	Products(ctx context.Context, category string) ([]Product, error)
	Categories(ctx context.Context) ([]Category, error)
}

// Static serves a fixed catalog from memory.
type Static struct {
	products   []Product
	categories []Category
}

func NewStatic(products []Product, categories []Category) *Static {
	return &Static{products: products, categories: categories}
}

func (s *Static) Products(_ context.Context, category string) ([]Product, error) {
	if category == "" {
		out := make([]Product, len(s.products))
		copy(out, s.products)
		return out, nil
	}
	out := make([]Product, 0, len(s.products))
	for _, product := range s.products {
		if product.Category == category {
			out = append(out, product)
		}
	}
	return out, nil
}

func (s *Static) Categories(_ context.Context) ([]Category, error) {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}
