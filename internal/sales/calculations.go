package sales

// Totals computes the line total and the margin for a single-line sale.
// Both are plain scalar products; rounding happens only at display time.
func Totals(unitPrice, unitCost float64, quantity int) (total, margin float64) {
	q := float64(quantity)
	total = unitPrice * q
	margin = (unitPrice - unitCost) * q
	return
}
