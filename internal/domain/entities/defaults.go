package entities

// Seed data adopted when a storage slot is empty on first start. Taken from
// the reference deployment (GRUPO ORGANICO PERU, Ayacucho).

// DefaultMenuItems returns the seeded menu. Callers own the returned slice.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{ID: 1, Name: "Ensalada fresca", Category: "Entradas", Price: 3.00, Description: "Lechuga, pollo, crutones, parmesano"},
		{ID: 2, Name: "Tequeños", Category: "Entradas", Price: 3.00, Description: "6 unidades con salsas"},
		{ID: 3, Name: "Causa Limeña", Category: "Entradas", Price: 3.00, Description: "Papa amarilla, pollo, palta"},
		{ID: 4, Name: "Ceviche de Pescado", Category: "Entradas", Price: 3.00, Description: "Aguadito"},
		{ID: 5, Name: "Lomo Saltado", Category: "Platos de Fondo", Price: 8.00, Description: "Con papas fritas y arroz"},
		{ID: 6, Name: "Arroz con Pollo", Category: "Platos de Fondo", Price: 8.00, Description: "Con ensalada y papa a la huancaína"},
		{ID: 7, Name: "Ají de Gallina", Category: "Platos de Fondo", Price: 8.00, Description: "Con arroz, papa y aceituna"},
		{ID: 8, Name: "Seco de Res", Category: "Platos de Fondo", Price: 8.00, Description: "Con frijoles y yuca"},
		{ID: 9, Name: "Tallarín Saltado", Category: "Platos de Fondo", Price: 8.00, Description: "Carne o pollo"},
		{ID: 10, Name: "Chicha Morada", Category: "Bebidas", Price: 8.00, Description: "Jarra 1 litro"},
		{ID: 11, Name: "Inca Kola", Category: "Bebidas", Price: 5.00, Description: "500ml"},
		{ID: 12, Name: "Limonada", Category: "Bebidas", Price: 7.00, Description: "Natural"},
		{ID: 13, Name: "Descartables", Category: "Otros", Price: 1.00, Description: "Utensilios descartables"},
	}
}

// DefaultBusinessInfo returns the seeded business record.
func DefaultBusinessInfo() BusinessInfo {
	return BusinessInfo{
		Name:    "GRUPO ORGANICO PERU S.A.C - SAN MARTIN",
		RUC:     "20123456789",
		Address: "GRUPO URBANO MIRAMAR PERU 2-4-IC",
		City:    "AYACUCHO 2849",
	}
}
