package sales

import (
	"context"
	"fmt"
	"strconv"

	"github.com/paruise-shop/paruise/internal/sheetdb"
)

const worksheet = "VENTES"

type Repository interface {
	Append(ctx context.Context, s Sale) error
}

type repository struct {
	store sheetdb.Store
}

func NewRepository(store sheetdb.Store) Repository {
	return &repository{store: store}
}

// Append writes one VENTES row: date, customer, product, unit price,
// quantity, total, payment method. Every confirmation appends; there is no
// deduplication, so submitting twice records the sale twice.
func (r *repository) Append(ctx context.Context, s Sale) error {
	row := []string{
		s.Date,
		s.Customer,
		s.Product,
		strconv.FormatFloat(s.UnitPrice, 'f', -1, 64),
		strconv.Itoa(s.Quantity),
		strconv.FormatFloat(s.Total, 'f', -1, 64),
		s.PaymentMethod,
	}
	if err := r.store.AppendRow(ctx, worksheet, row); err != nil {
		return fmt.Errorf("append sale: %w", err)
	}
	return nil
}
