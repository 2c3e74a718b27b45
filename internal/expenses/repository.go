package expenses

import (
	"context"
	"fmt"
	"strconv"

	"github.com/paruise-shop/paruise/internal/sheetdb"
)

const worksheet = "DEPENSES"

type Repository interface {
	Append(ctx context.Context, e Expense) error
}

type repository struct {
	store sheetdb.Store
}

func NewRepository(store sheetdb.Store) Repository {
	return &repository{store: store}
}

// Append writes one DEPENSES row: date, category, amount, description.
func (r *repository) Append(ctx context.Context, e Expense) error {
	row := []string{
		e.Date,
		e.Category,
		strconv.FormatFloat(e.Amount, 'f', -1, 64),
		e.Description,
	}
	if err := r.store.AppendRow(ctx, worksheet, row); err != nil {
		return fmt.Errorf("append expense: %w", err)
	}
	return nil
}
