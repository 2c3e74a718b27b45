package catalog

// Product mirrors one PRODUITS row. There is no identifier beyond the
// display name; the discount column the sheet carries is unused.
type Product struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price"`
	Stock         float64 `json:"stock"`
}

// Categories the boutique files new arrivals under.
var Categories = []string{"Robe", "Ensemble", "Sac", "Chaussure", "Accessoire"}

// LowStockThreshold marks products about to run out.
const LowStockThreshold = 3
