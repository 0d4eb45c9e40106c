package response

import "resto_pos/internal/domain/entities"

type BusinessInfoResponse struct {
	Name    string `json:"name"`
	RUC     string `json:"ruc"`
	Address string `json:"address"`
	City    string `json:"city"`
}

func FromBusinessInfo(info entities.BusinessInfo) BusinessInfoResponse {
	return BusinessInfoResponse{
		Name:    info.Name,
		RUC:     info.RUC,
		Address: info.Address,
		City:    info.City,
	}
}
