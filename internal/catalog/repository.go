package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/paruise-shop/paruise/internal/money"
	"github.com/paruise-shop/paruise/internal/shared"
	"github.com/paruise-shop/paruise/internal/sheetdb"
)

const (
	worksheet = "PRODUITS"

	headerName     = "Nom_Article"
	headerCategory = "Categorie"
	headerPurchase = "Prix_Achat"
	headerSale     = "Prix_Vente"
	headerStock    = "Stock_Actuel"
)

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByName(ctx context.Context, name string) (*Product, error)
	Append(ctx context.Context, p Product) error
}

type repository struct {
	store sheetdb.Store
}

func NewRepository(store sheetdb.Store) Repository {
	return &repository{store: store}
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	tbl, err := r.store.ReadTable(ctx, worksheet)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	products := make([]Product, 0, tbl.Len())
	for i := 0; i < tbl.Len(); i++ {
		name := tbl.Cell(i, headerName)
		if name == "" {
			continue
		}
		products = append(products, Product{
			Name:          name,
			Category:      tbl.Cell(i, headerCategory),
			PurchasePrice: money.ParseOrZero(tbl.Cell(i, headerPurchase)),
			SalePrice:     money.ParseOrZero(tbl.Cell(i, headerSale)),
			Stock:         money.ParseOrZero(tbl.Cell(i, headerStock)),
		})
	}
	return products, nil
}

// GetByName returns the first product whose name matches exactly. Names are
// the only key the sheet has; duplicates resolve to the first row.
func (r *repository) GetByName(ctx context.Context, name string) (*Product, error) {
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Name == name {
			return &products[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

// Append writes one PRODUITS row. The fifth cell is the unused discount
// column, kept blank so the sheet layout stays intact.
func (r *repository) Append(ctx context.Context, p Product) error {
	row := []string{
		p.Name,
		p.Category,
		formatNumber(p.PurchasePrice),
		formatNumber(p.SalePrice),
		"",
		formatNumber(p.Stock),
	}
	if err := r.store.AppendRow(ctx, worksheet, row); err != nil {
		return fmt.Errorf("append product: %w", err)
	}
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
