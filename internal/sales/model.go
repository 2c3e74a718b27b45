package sales

// Sale mirrors one VENTES row. The customer is free text, not a foreign key;
// the total is denormalised at write time and never re-validated.
type Sale struct {
	Date          string  `json:"date"`
	Customer      string  `json:"customer"`
	Product       string  `json:"product"`
	UnitPrice     float64 `json:"unit_price"`
	Quantity      int     `json:"quantity"`
	Total         float64 `json:"total"`
	PaymentMethod string  `json:"payment_method"`
}

// PaymentMethods offered at the register.
var PaymentMethods = []string{"Espèces 💵", "Flooz 📱", "TMoney 🟡", "Virement 🏦"}

// Quantity bounds for one line.
const (
	MinQuantity = 1
	MaxQuantity = 20
)
