package response

import "resto_pos/internal/domain/entities"

type MenuItemResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type MenuCategoryResponse struct {
	Category string             `json:"category"`
	Items    []MenuItemResponse `json:"items"`
}

func FromMenuItem(item entities.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		Price:       item.Price,
		Description: item.Description,
	}
}

func FromMenuItems(items []entities.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromMenuItem(it))
	}
	return out
}

func FromMenuCategories(groups []entities.MenuCategory) []MenuCategoryResponse {
	out := make([]MenuCategoryResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, MenuCategoryResponse{
			Category: g.Category,
			Items:    FromMenuItems(g.Items),
		})
	}
	return out
}
