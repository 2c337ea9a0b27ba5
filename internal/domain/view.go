package domain

// View identifies one of the six top-level pages. There is no history stack
// and no URL sync; the active view lives in the visitor's session.
type View string

const (
	ViewHome     View = "HOME"
	ViewShop     View = "SHOP"
	ViewLookbook View = "LOOKBOOK"
	ViewJournal  View = "JOURNAL"
	ViewAbout    View = "ABOUT"
	ViewContact  View = "CONTACT"
)

var views = map[View]struct{}{
	ViewHome: {}, ViewShop: {}, ViewLookbook: {},
	ViewJournal: {}, ViewAbout: {}, ViewContact: {},
}

// ParseView maps raw input to a view, falling back to HOME for anything
// unrecognized. Navigation is total: there is no invalid-view error path.
func ParseView(s string) View {
	v := View(s)
	if _, ok := views[v]; ok {
		return v
	}
	return ViewHome
}
