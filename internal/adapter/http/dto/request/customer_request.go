package request

// CustomerRequest is the payload for registering or replacing a customer.
//
// Name and doc are required here, at the creating collaborator, because the
// store itself does not re-validate them.
type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Doc     string `json:"doc" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}
