package entities

// MenuItem is a product on the restaurant's menu.
//
// Category is a free-form label, not an enum: the catalog groups items by
// exact string equality, so "Entradas" and "entradas" are different groups.
type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// MenuCategory is one group of the catalog listing. Groups keep the order in
// which their category was first seen; items keep insertion order.
type MenuCategory struct {
	Category string     `json:"category"`
	Items    []MenuItem `json:"items"`
}
