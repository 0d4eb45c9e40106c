package entities

// BusinessInfo is the singleton business configuration record printed on the
// receipt header. Updates replace the whole record; there is no partial-field
// update path.
type BusinessInfo struct {
	Name    string `json:"name"`
	RUC     string `json:"ruc"`
	Address string `json:"address"`
	City    string `json:"city"`
}
