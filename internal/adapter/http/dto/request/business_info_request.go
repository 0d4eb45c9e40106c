package request

// BusinessInfoRequest replaces the whole business configuration record.
// No field is constrained; an empty string simply prints as blank.
type BusinessInfoRequest struct {
	Name    string `json:"name"`
	RUC     string `json:"ruc"`
	Address string `json:"address"`
	City    string `json:"city"`
}
