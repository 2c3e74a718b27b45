package customers

import (
	"context"
	"fmt"

	"github.com/paruise-shop/paruise/internal/money"
	"github.com/paruise-shop/paruise/internal/shared"
	"github.com/paruise-shop/paruise/internal/sheetdb"
)

const (
	worksheet      = "CLIENTS"
	worksheetSales = "VENTES"

	headerName         = "Nom_Client"
	headerPhone        = "Telephone"
	headerNeighborhood = "Quartier"
	headerSource       = "Source"

	headerSaleTotal = "Total"
	// VENTES positional layout: date, customer, product, price, qty, total, payment.
	colSaleCustomer = 1
	colSaleTotal    = 5
)

type Spending struct {
	Customer string
	Total    float64
}

type Repository interface {
	List(ctx context.Context) ([]Customer, error)
	GetByName(ctx context.Context, name string) (*Customer, error)
	Append(ctx context.Context, c Customer) error
	Spending(ctx context.Context) ([]Spending, error)
}

type repository struct {
	store sheetdb.Store
}

func NewRepository(store sheetdb.Store) Repository {
	return &repository{store: store}
}

func (r *repository) List(ctx context.Context) ([]Customer, error) {
	tbl, err := r.store.ReadTable(ctx, worksheet)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	customers := make([]Customer, 0, tbl.Len())
	for i := 0; i < tbl.Len(); i++ {
		name := tbl.Cell(i, headerName)
		if name == "" {
			continue
		}
		customers = append(customers, Customer{
			Name:         name,
			Phone:        tbl.Cell(i, headerPhone),
			Neighborhood: tbl.Cell(i, headerNeighborhood),
			Source:       tbl.Cell(i, headerSource),
		})
	}
	return customers, nil
}

// GetByName returns the first customer whose name matches exactly. Duplicate
// names are allowed in the sheet; first match wins.
func (r *repository) GetByName(ctx context.Context, name string) (*Customer, error) {
	customers, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].Name == name {
			return &customers[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

// Append writes one CLIENTS row. The trailing cell matches the sheet's
// unused fifth column.
func (r *repository) Append(ctx context.Context, c Customer) error {
	row := []string{c.Name, c.Phone, c.Neighborhood, c.Source, ""}
	if err := r.store.AppendRow(ctx, worksheet, row); err != nil {
		return fmt.Errorf("append customer: %w", err)
	}
	return nil
}

// Spending reads the sales ledger as (customer, total) pairs. The customer is
// always the second column; the total prefers the Total header and falls back
// to the sixth column. Malformed totals count as zero.
func (r *repository) Spending(ctx context.Context) ([]Spending, error) {
	tbl, err := r.store.ReadTable(ctx, worksheetSales)
	if err != nil {
		return nil, fmt.Errorf("read sales for spending: %w", err)
	}
	totalCol, ok := tbl.ColumnIndex(headerSaleTotal)
	if !ok {
		totalCol = colSaleTotal
	}
	entries := make([]Spending, 0, tbl.Len())
	for i := 0; i < tbl.Len(); i++ {
		name := tbl.CellAt(i, colSaleCustomer)
		if name == "" {
			continue
		}
		entries = append(entries, Spending{
			Customer: name,
			Total:    money.ParseOrZero(tbl.CellAt(i, totalCol)),
		})
	}
	return entries, nil
}
