package request

// ManualItemRequest adds a free-form line to the working receipt.
// Fractional quantities are allowed (half portions), zero is not.
type ManualItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"min=0"`
}

// SelectMenuItemRequest adds a line from the catalog. The staged pending
// quantity for the item is consumed; see the pending-quantity endpoint.
// No binding constraint: any unknown id (including the zero value) gets the
// store's silent no-op, same as every other miss.
type SelectMenuItemRequest struct {
	MenuItemID int `json:"menu_item_id"`
}

// PendingQuantityRequest moves a menu item's staged quantity by delta
// (positive or negative; the counter never goes below zero). A zero delta is
// a harmless no-op that just reports the current counter.
type PendingQuantityRequest struct {
	Delta float64 `json:"delta"`
}

// ReceiptMetadataRequest patches receipt metadata. Only present fields are
// applied; line items are never touched. RemoveCustomer detaches the
// customer association (customer_id and remove_customer are exclusive).
type ReceiptMetadataRequest struct {
	Type           *string `json:"type"`
	PaymentMethod  *string `json:"payment_method"`
	Cashier        *string `json:"cashier"`
	DeliveryPerson *string `json:"delivery_person"`
	CustomerID     *int    `json:"customer_id"`
	RemoveCustomer bool    `json:"remove_customer"`
}
