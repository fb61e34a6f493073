package catalog

// Category is one row of the reference category table. Identity is ID;
// the table is immutable between explicit refreshes.
type Category struct {
	ID   string
	Name string
}

// Gallery is a display bucket of products. It belongs primarily to
// CategoryID but is also reachable through any id in RelatedCategoryIDs,
// which stands in for a many-to-many link table.
type Gallery struct {
	CategoryID         string
	DisplayKey         string
	RelatedCategoryIDs []string
}

type Tables struct {
	Categories []Category
	Galleries  []Gallery
}
