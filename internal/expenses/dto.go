package expenses

type RecordExpenseRequest struct {
	// Date in DD/MM/YYYY; defaults to today when empty.
	Date        string  `json:"date" validate:"omitempty,max=10"`
	Category    string  `json:"category" validate:"required,max=60"`
	Amount      float64 `json:"amount" validate:"gt=0"`
	Description string  `json:"description" validate:"max=240"`
}
