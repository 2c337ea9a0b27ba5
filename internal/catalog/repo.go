package catalog

import (
	"strings"

	"github.com/phenrril/atelier/internal/domain"
)

// AllCategory is the pseudo-category meaning "no filter" on the shop chips.
const AllCategory = "All"

// Repo serves the static catalog. It satisfies domain.CatalogRepo and is safe
// for concurrent use because nothing mutates it after construction.
type Repo struct {
	products    []domain.Product
	collections []domain.Collection
	posts       []domain.Post
}

func NewRepo() *Repo {
	return &Repo{products: products, collections: collections, posts: posts}
}

// List returns products in catalog order. Category matching is exact;
// empty or "All" disables the filter.
func (r *Repo) List(f domain.CatalogFilter) []domain.Product {
	cat := strings.TrimSpace(f.Category)
	if cat == "" || cat == AllCategory {
		out := make([]domain.Product, len(r.products))
		copy(out, r.products)
		return out
	}
	out := []domain.Product{}
	for _, p := range r.products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

func (r *Repo) FindByID(id string) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Categories returns the shop chip list: "All" followed by each category in
// first-seen catalog order.
func (r *Repo) Categories() []string {
	seen := map[string]struct{}{}
	out := []string{AllCategory}
	for _, p := range r.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func (r *Repo) Collections() []domain.Collection {
	out := make([]domain.Collection, len(r.collections))
	copy(out, r.collections)
	return out
}

func (r *Repo) Posts() []domain.Post {
	out := make([]domain.Post, len(r.posts))
	copy(out, r.posts)
	return out
}
