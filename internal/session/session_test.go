package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/atelier/internal/domain"
)

func productA() domain.Product {
	return domain.Product{ID: "h1", Name: "Heavyweight Acid Wash Zip", Price: 185, Category: "Hoodies"}
}

func productB() domain.Product {
	return domain.Product{ID: "d1", Name: "Vintage Wash Denim", Price: 250, Category: "Denim"}
}

func TestNewSessionDefaults(t *testing.T) {
	s := New()
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, domain.ViewHome, s.ActiveView())
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, 0.0, s.Subtotal())
	assert.False(t, s.IsCartOpen())
	assert.False(t, s.IsSearchOpen())
	assert.Nil(t, s.Selected())
}

func TestAddEntryAppendsRowAndOpensCart(t *testing.T) {
	s := New()
	s.Select(productA())

	entry := s.AddEntry(productA(), "M")

	assert.NotEmpty(t, entry.EntryID)
	assert.Equal(t, "M", entry.Size)
	assert.Equal(t, 1, s.Count())
	assert.True(t, s.IsCartOpen())
	assert.Nil(t, s.Selected(), "adding to cart must close the product detail")
}

func TestAddDuplicateRowsNeverMerge(t *testing.T) {
	s := New()
	first := s.AddEntry(productA(), "M")
	second := s.AddEntry(productA(), "M")

	// Same product, same size: still two distinct rows.
	require.Equal(t, 2, s.Count())
	assert.NotEqual(t, first.EntryID, second.EntryID)
	assert.Equal(t, 370.0, s.Subtotal())
}

func TestCountEqualsNumberOfAdds(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s.AddEntry(productA(), "L")
	}
	assert.Equal(t, 5, s.Count())
}

func TestRemoveEntry(t *testing.T) {
	s := New()
	e1 := s.AddEntry(productA(), "M")
	e2 := s.AddEntry(productB(), "S")

	s.RemoveEntry(e1.EntryID)

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, e2.EntryID, entries[0].EntryID)
	assert.Equal(t, 250.0, s.Subtotal())
}

func TestRemoveUnknownEntryIsNoop(t *testing.T) {
	s := New()
	s.AddEntry(productA(), "M")

	s.RemoveEntry("no-such-entry")

	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 185.0, s.Subtotal())
}

func TestAdjustEntryDecrementDeletesRow(t *testing.T) {
	s := New()
	e1 := s.AddEntry(productA(), "M")
	e2 := s.AddEntry(productA(), "M")

	s.AdjustEntry(e1.EntryID, -1)

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, e2.EntryID, entries[0].EntryID)
}

func TestAdjustEntryLargeNegativeDeltaStillDeletesOneRow(t *testing.T) {
	s := New()
	e := s.AddEntry(productA(), "M")
	s.AddEntry(productA(), "M")

	s.AdjustEntry(e.EntryID, -99)

	assert.Equal(t, 1, s.Count())
}

func TestAdjustEntryIncrementClonesRow(t *testing.T) {
	s := New()
	e := s.AddEntry(productA(), "XL")

	s.AdjustEntry(e.EntryID, 1)

	entries := s.Entries()
	require.Len(t, entries, 2)
	clone := entries[1]
	assert.NotEqual(t, e.EntryID, clone.EntryID, "clone gets a fresh entry id")
	assert.Equal(t, e.Product, clone.Product)
	assert.Equal(t, e.Size, clone.Size)
}

func TestAdjustEntryZeroDeltaAlsoClones(t *testing.T) {
	// delta >= 0 is the clone branch, including zero.
	s := New()
	e := s.AddEntry(productA(), "M")

	s.AdjustEntry(e.EntryID, 0)

	assert.Equal(t, 2, s.Count())
}

func TestAdjustUnknownEntryIsNoop(t *testing.T) {
	s := New()
	s.AddEntry(productA(), "M")

	s.AdjustEntry("missing", 1)
	s.AdjustEntry("missing", -1)

	assert.Equal(t, 1, s.Count())
}

func TestSubtotalEmptyCart(t *testing.T) {
	assert.Equal(t, 0.0, New().Subtotal())
}

func TestNavigate(t *testing.T) {
	s := New()
	for _, v := range []domain.View{
		domain.ViewHome, domain.ViewShop, domain.ViewLookbook,
		domain.ViewJournal, domain.ViewAbout, domain.ViewContact,
	} {
		got := s.Navigate(string(v))
		assert.Equal(t, v, got)
		assert.Equal(t, v, s.ActiveView())
	}
}

func TestNavigateUnknownFallsBackToHome(t *testing.T) {
	s := New()
	s.Navigate(string(domain.ViewShop))
	s.Navigate("CHECKOUT")
	assert.Equal(t, domain.ViewHome, s.ActiveView())
}

func TestNavigateDoesNotTouchCartOrOverlays(t *testing.T) {
	s := New()
	s.AddEntry(productA(), "M")
	s.OpenSearch()

	s.Navigate(string(domain.ViewJournal))

	assert.Equal(t, 1, s.Count())
	assert.True(t, s.IsCartOpen())
	assert.True(t, s.IsSearchOpen())
}

func TestOverlaysAreIndependent(t *testing.T) {
	s := New()
	s.OpenCart()
	s.OpenSearch()
	s.Select(productB())

	// No mutual exclusion: all three can be open at once.
	assert.True(t, s.IsCartOpen())
	assert.True(t, s.IsSearchOpen())
	require.NotNil(t, s.Selected())
	assert.Equal(t, "d1", s.Selected().ID)

	s.CloseCart()
	assert.False(t, s.IsCartOpen())
	assert.True(t, s.IsSearchOpen())

	s.ClearSelection()
	assert.Nil(t, s.Selected())
}

func TestSelectedReturnsCopy(t *testing.T) {
	s := New()
	s.Select(productA())
	p := s.Selected()
	p.Name = "mutated"
	assert.Equal(t, "Heavyweight Acid Wash Zip", s.Selected().Name)
}

func TestStoreCreateAndGet(t *testing.T) {
	st := NewStore()
	s := st.Create()

	got, ok := st.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = st.Get("unknown")
	assert.False(t, ok)
	assert.Equal(t, 1, st.Len())
}
