package usecase

import (
	"errors"

	"github.com/phenrril/atelier/internal/catalog"
	"github.com/phenrril/atelier/internal/domain"
)

type CatalogUC struct {
	Catalog domain.CatalogRepo
}

func (uc *CatalogUC) List(f domain.CatalogFilter) []domain.Product {
	return uc.Catalog.List(f)
}

func (uc *CatalogUC) Get(id string) (*domain.Product, error) {
	if id == "" {
		return nil, errors.New("empty product id")
	}
	return uc.Catalog.FindByID(id)
}

func (uc *CatalogUC) Categories() []string {
	return uc.Catalog.Categories()
}

// Search runs the archive filter over the whole catalog in display order.
func (uc *CatalogUC) Search(query string) []domain.Product {
	return catalog.Search(uc.Catalog.List(domain.CatalogFilter{}), query)
}

func (uc *CatalogUC) Collections() []domain.Collection {
	return uc.Catalog.Collections()
}

func (uc *CatalogUC) Posts() []domain.Post {
	return uc.Catalog.Posts()
}
