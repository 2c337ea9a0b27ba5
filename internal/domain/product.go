package domain

import "errors"

// ErrNotFound is returned by repositories when a lookup misses.
var ErrNotFound = errors.New("not found")

// Product is a single catalog entry. The catalog is loaded once at startup
// and never mutated, so products are always passed around by value.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Category string   `json:"category"`
	Image    string   `json:"image"`
	IsNew    bool     `json:"is_new,omitempty"`
	Details  []string `json:"details,omitempty"`
}

// Collection is a featured drop shown on the home and lookbook pages.
type Collection struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Post is a journal article. Dates are display strings, not timestamps.
type Post struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Excerpt  string `json:"excerpt"`
	Image    string `json:"image"`
}

// CatalogFilter narrows a catalog listing. An empty or "All" category means
// no filter. Order of the underlying catalog is always preserved.
type CatalogFilter struct {
	Category string
}

// CatalogRepo is the read-only surface the rest of the app sees. The backing
// store is an in-process slice; there is no persistence layer by design.
type CatalogRepo interface {
	List(f CatalogFilter) []Product
	FindByID(id string) (*Product, error)
	Categories() []string
	Collections() []Collection
	Posts() []Post
}
