package expenses

// Expense mirrors one DEPENSES row.
type Expense struct {
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// Categories the boutique books outgoing money under.
var Categories = []string{"Marchandise", "Loyer", "Factures", "Transport", "Perso", "Épargne"}
