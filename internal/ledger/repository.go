package ledger

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/paruise-shop/paruise/internal/money"
	"github.com/paruise-shop/paruise/internal/shared"
	"github.com/paruise-shop/paruise/internal/sheetdb"
)

const (
	worksheetSales    = "VENTES"
	worksheetExpenses = "DEPENSES"

	headerSaleTotal     = "Total"
	headerExpenseAmount = "Montant"

	// Positional fallbacks when the header cell was renamed: the total is
	// the sixth VENTES column, the amount the third DEPENSES column. Dates
	// are always the first column of either sheet.
	colSaleTotal     = 5
	colExpenseAmount = 2
)

// Repository turns the two ledgers into one stream of signed events.
type Repository interface {
	Events(ctx context.Context) ([]Event, []Skipped)
}

type repository struct {
	store sheetdb.Store
}

func NewRepository(store sheetdb.Store) Repository {
	return &repository{store: store}
}

// Events loads both worksheets concurrently and maps their rows. Sales come
// first in the merged stream, so same-day ties resolve sales before expenses
// after the stable sort. An unreadable worksheet contributes nothing and is
// reported as a whole-table skip; aggregation itself never fails.
func (r *repository) Events(ctx context.Context) ([]Event, []Skipped) {
	var salesTbl, expensesTbl sheetdb.Table
	var salesErr, expensesErr error

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		salesTbl, salesErr = r.store.ReadTable(ctx, worksheetSales)
		return nil
	})
	g.Go(func() error {
		expensesTbl, expensesErr = r.store.ReadTable(ctx, worksheetExpenses)
		return nil
	})
	_ = g.Wait()

	events := make([]Event, 0, salesTbl.Len()+expensesTbl.Len())
	skipped := make([]Skipped, 0)

	if salesErr != nil {
		skipped = append(skipped, Skipped{Table: worksheetSales, Reason: shared.ErrNoData.Error()})
	} else {
		events, skipped = mapRows(salesTbl, headerSaleTotal, colSaleTotal, +1, events, skipped)
	}
	if expensesErr != nil {
		skipped = append(skipped, Skipped{Table: worksheetExpenses, Reason: shared.ErrNoData.Error()})
	} else {
		events, skipped = mapRows(expensesTbl, headerExpenseAmount, colExpenseAmount, -1, events, skipped)
	}
	return events, skipped
}

// mapRows converts one table into signed events. A row with an unparseable
// date is excluded and reported; a malformed amount stays in, worth zero.
func mapRows(tbl sheetdb.Table, amountHeader string, amountCol int, sign float64, events []Event, skipped []Skipped) ([]Event, []Skipped) {
	if col, ok := tbl.ColumnIndex(amountHeader); ok {
		amountCol = col
	}
	for i := 0; i < tbl.Len(); i++ {
		dateCell := tbl.CellAt(i, 0)
		date, err := shared.ParseDate(dateCell)
		if err != nil {
			skipped = append(skipped, Skipped{
				Table:  tbl.Name,
				Row:    i + 2,
				Reason: fmt.Sprintf("unparseable date %q", dateCell),
			})
			continue
		}
		events = append(events, Event{
			Date:   date,
			Table:  tbl.Name,
			Amount: sign * money.ParseOrZero(tbl.CellAt(i, amountCol)),
		})
	}
	return events, skipped
}
