package entities

// Customer is a registered client of the restaurant.
//
// Name and Doc (DNI/RUC) are required at creation time. The check belongs to
// the creating collaborator (the HTTP payload binding), not the store.
// CreatedAt is an RFC3339 string set once at creation.
type Customer struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Doc       string `json:"doc"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
}
