package ledger

import "time"

// Event is one signed monetary movement: sales positive, expenses negative.
type Event struct {
	Date   time.Time
	Table  string
	Amount float64
}

// Skipped records a row (or a whole worksheet) excluded from aggregation,
// instead of dropping it silently. Row is the spreadsheet row number, header
// included; Row 0 means the entire worksheet was unreadable.
type Skipped struct {
	Table  string `json:"table"`
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Point is one element of the cumulative balance series.
type Point struct {
	Date    string  `json:"date"`
	Amount  float64 `json:"amount"`
	Balance float64 `json:"balance"`
}

// Series is the aggregated cash-flow result. Balance is the last cumulative
// value, zero when no event survived parsing.
type Series struct {
	Points         []Point   `json:"points"`
	Balance        float64   `json:"balance"`
	BalanceDisplay string    `json:"balance_display"`
	Skipped        []Skipped `json:"skipped"`
}
