package catalog

import (
	"fmt"
	"strings"

	"github.com/phenrril/atelier/internal/domain"
)

// Search filters products by case-insensitive substring match on name or
// category, preserving input order. A blank query yields no results rather
// than the whole catalog: the search modal shows nothing until the visitor
// types.
func Search(products []domain.Product, query string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []domain.Product{}
	}
	out := []domain.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// ResultsLabel renders the counter under the search input.
func ResultsLabel(n int) string {
	if n == 1 {
		return "1 RESULT FOUND"
	}
	return fmt.Sprintf("%d RESULTS FOUND", n)
}
