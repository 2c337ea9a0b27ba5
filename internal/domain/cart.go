package domain

// CartEntry is one row in a visitor's cart. Quantity is represented by
// repeated rows, not a count field: adding the same product twice yields two
// rows with distinct EntryIDs. EntryID is the only key; (ProductID, Size) is
// deliberately not unique.
type CartEntry struct {
	Product
	EntryID string `json:"entry_id"`
	Size    string `json:"size"`
}

// Sizes is the fixed size run offered on every product.
var Sizes = []string{"XS", "S", "M", "L", "XL"}

func ValidSize(s string) bool {
	for _, v := range Sizes {
		if v == s {
			return true
		}
	}
	return false
}
