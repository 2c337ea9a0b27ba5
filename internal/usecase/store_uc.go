package usecase

import (
	"errors"

	"github.com/phenrril/atelier/internal/domain"
	"github.com/phenrril/atelier/internal/session"
)

var ErrBadSize = errors.New("size not in run")

// StoreUC carries the user intents that touch both the catalog and a
// visitor's session.
type StoreUC struct {
	Catalog domain.CatalogRepo
}

// AddToCart resolves the product and appends a cart row. The size must come
// from the fixed run; the product id must exist in the catalog. The session
// handles the overlay side effects (cart opens, detail closes).
func (uc *StoreUC) AddToCart(s *session.Session, productID, size string) (domain.CartEntry, error) {
	if !domain.ValidSize(size) {
		return domain.CartEntry{}, ErrBadSize
	}
	p, err := uc.Catalog.FindByID(productID)
	if err != nil {
		return domain.CartEntry{}, err
	}
	return s.AddEntry(*p, size), nil
}

// SelectProduct opens the detail overlay for a catalog product.
func (uc *StoreUC) SelectProduct(s *session.Session, productID string) error {
	p, err := uc.Catalog.FindByID(productID)
	if err != nil {
		return err
	}
	s.Select(*p)
	return nil
}

// Checkout is a stub: it refuses an empty cart and otherwise "succeeds"
// without charging anything or clearing the rows, mirroring the demo-mode
// confirmation of the reference storefront.
func (uc *StoreUC) Checkout(s *session.Session) bool {
	return s.Count() > 0
}
