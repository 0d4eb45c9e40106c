package request

// MenuItemRequest is the payload for creating or replacing a menu item.
// A zero price is legal (e.g. courtesy items), so Price only binds min=0.
type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"min=0"`
	Description string  `json:"description"`
}
