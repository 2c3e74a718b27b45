package sales

type RecordSaleRequest struct {
	Customer string `json:"customer" validate:"required,max=120"`
	Product  string `json:"product" validate:"required,max=120"`
	// UnitPrice overrides the catalog sale price when the operator grants a
	// discount; nil means charge the catalog price.
	UnitPrice     *float64 `json:"unit_price,omitempty" validate:"omitempty,gte=0"`
	Quantity      int      `json:"quantity" validate:"required,gte=1,lte=20"`
	PaymentMethod string   `json:"payment_method" validate:"required,max=40"`
}

// Quote is a price preview, nothing is written.
type Quote struct {
	UnitPrice     float64 `json:"unit_price"`
	UnitCost      float64 `json:"unit_cost"`
	Quantity      int     `json:"quantity"`
	Total         float64 `json:"total"`
	Margin        float64 `json:"margin"`
	TotalDisplay  string  `json:"total_display"`
	MarginDisplay string  `json:"margin_display"`
}

// SaleResult is the confirmation payload: the stored row plus the margin and
// the WhatsApp receipt for the customer.
type SaleResult struct {
	Sale          Sale   `json:"sale"`
	Margin        float64 `json:"margin"`
	TotalDisplay  string `json:"total_display"`
	MarginDisplay string `json:"margin_display"`
	ReceiptText   string `json:"receipt_text"`
	ReceiptLink   string `json:"receipt_link"`
}
