package catalog

type AddProductRequest struct {
	Name          string  `json:"name" validate:"required,max=120"`
	Category      string  `json:"category" validate:"required,max=60"`
	PurchasePrice float64 `json:"purchase_price" validate:"gte=0"`
	SalePrice     float64 `json:"sale_price" validate:"gte=0"`
	Stock         int     `json:"stock" validate:"gte=1"`
}
