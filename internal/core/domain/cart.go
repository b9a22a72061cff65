package domain

// A CartItem is one line of the shopping cart. ID is a client-generated
// line identifier, ProductID references the catalog entity.
type CartItem struct {
	ID        string
	ProductID string
	Name      string
	Brand     string
	Price     float64
	Image     string
	Quantity  int
}

// A FavoriteItem is a saved product reference on the favorites list.
type FavoriteItem struct {
	ProductID string
	Name      string
	Brand     string
	Price     float64
	Image     string
}
