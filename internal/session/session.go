package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/phenrril/atelier/internal/domain"
)

// Session owns one visitor's transient state: the cart rows, the overlay
// flags and the active view. Nothing here is persisted; a session dies with
// the process. All methods are safe for concurrent use, though in practice
// a visitor's requests arrive one at a time.
type Session struct {
	ID string

	mu         sync.Mutex
	entries    []domain.CartEntry
	view       domain.View
	cartOpen   bool
	searchOpen bool
	selected   *domain.Product
}

func New() *Session {
	return &Session{ID: uuid.NewString(), view: domain.ViewHome}
}

// AddEntry appends a new cart row for the given product and size. The row
// always gets a fresh entry id: rows for the same product and size are never
// merged, so quantity is represented by repeated rows. The existing-row
// lookup mirrors the reference storefront, where both branches append.
// Adding is the one cart operation with overlay side effects: it closes the
// product detail and opens the cart drawer.
func (s *Session) AddEntry(p domain.Product, size string) domain.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.Product.ID == p.ID && e.Size == size {
			break
		}
	}
	entry := domain.CartEntry{Product: p, EntryID: uuid.NewString(), Size: size}
	s.entries = append(s.entries, entry)
	s.cartOpen = true
	s.selected = nil
	return entry
}

// RemoveEntry deletes the row with the given entry id. Unknown ids are a
// silent no-op; there is no error path for cart mutations.
func (s *Session) RemoveEntry(entryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(entryID)
}

func (s *Session) removeLocked(entryID string) {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.EntryID != entryID {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}

// AdjustEntry is the +/- stepper on a cart row. The cart has no quantity
// field, so a negative delta deletes the row outright (regardless of
// magnitude) and a non-negative delta appends a copy of the row under a
// fresh entry id. Unknown ids are a no-op.
func (s *Session) AdjustEntry(entryID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if delta < 0 {
		s.removeLocked(entryID)
		return
	}
	for _, e := range s.entries {
		if e.EntryID == entryID {
			clone := e
			clone.EntryID = uuid.NewString()
			s.entries = append(s.entries, clone)
			return
		}
	}
}

// Entries returns a copy of the cart rows in insertion order.
func (s *Session) Entries() []domain.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Count is the row count shown on the cart badge. It counts rows, not any
// notion of quantity.
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Subtotal sums the price of every row. No tax, no rounding policy.
func (s *Session) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum float64
	for _, e := range s.entries {
		sum += e.Price
	}
	return sum
}

// Navigate switches the active view. Unrecognized input lands on HOME; there
// are no guards and switching never touches the cart or the overlays.
func (s *Session) Navigate(raw string) domain.View {
	v := domain.ParseView(raw)
	s.mu.Lock()
	s.view = v
	s.mu.Unlock()
	return v
}

func (s *Session) ActiveView() domain.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Select opens the product detail overlay. Other overlays are left alone:
// cart, search and detail are independent and may all be open at once.
func (s *Session) Select(p domain.Product) {
	s.mu.Lock()
	s.selected = &p
	s.mu.Unlock()
}

func (s *Session) ClearSelection() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

// Selected returns a copy of the product in the detail overlay, or nil.
func (s *Session) Selected() *domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	p := *s.selected
	return &p
}

func (s *Session) OpenCart() {
	s.mu.Lock()
	s.cartOpen = true
	s.mu.Unlock()
}

func (s *Session) CloseCart() {
	s.mu.Lock()
	s.cartOpen = false
	s.mu.Unlock()
}

func (s *Session) OpenSearch() {
	s.mu.Lock()
	s.searchOpen = true
	s.mu.Unlock()
}

func (s *Session) CloseSearch() {
	s.mu.Lock()
	s.searchOpen = false
	s.mu.Unlock()
}

func (s *Session) IsCartOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartOpen
}

func (s *Session) IsSearchOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchOpen
}
