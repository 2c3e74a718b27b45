package catalog

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paruise-shop/paruise/internal/sheetdb"
)

type fakeStore struct {
	tables    map[string]sheetdb.Table
	appended  map[string][][]string
	readErr   error
	appendErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tables:   make(map[string]sheetdb.Table),
		appended: make(map[string][][]string),
	}
}

func (f *fakeStore) ReadTable(ctx context.Context, name string) (sheetdb.Table, error) {
	if f.readErr != nil {
		return sheetdb.Table{}, f.readErr
	}
	return f.tables[name], nil
}

func (f *fakeStore) AppendRow(ctx context.Context, name string, cells []string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended[name] = append(f.appended[name], cells)
	return nil
}

func productsTable() sheetdb.Table {
	return sheetdb.Table{
		Name:    worksheet,
		Headers: []string{headerName, headerCategory, headerPurchase, headerSale, "Remise", headerStock},
		Rows: [][]string{
			{"Robe Soie", "Robe", "8 000 FCFA", "15 000", "", "4"},
			{"Sac Perle", "Sac", "5000", "12000", "", "2"},
			{"Ensemble Wax", "Ensemble", "7000", "14 500,50", "", "pas un nombre"},
			{"", "Robe", "1", "2", "", "9"},
		},
	}
}

func newTestService(store *fakeStore) *Service {
	return NewService(NewRepository(store), slog.Default())
}

func TestListParsesCurrencyAndStockCells(t *testing.T) {
	store := newFakeStore()
	store.tables[worksheet] = productsTable()
	svc := newTestService(store)

	products := svc.List(context.Background())
	require.Len(t, products, 3, "blank-name row must be skipped")

	assert.Equal(t, "Robe Soie", products[0].Name)
	assert.Equal(t, 8000.0, products[0].PurchasePrice)
	assert.Equal(t, 15000.0, products[0].SalePrice)
	assert.Equal(t, 4.0, products[0].Stock)

	assert.Equal(t, 14500.50, products[2].SalePrice)
	assert.Equal(t, 0.0, products[2].Stock, "malformed stock coerces to zero")
}

func TestListDegradesToEmptyOnReadFailure(t *testing.T) {
	store := newFakeStore()
	store.readErr = errors.New("worksheet PRODUITS missing")
	svc := newTestService(store)

	products := svc.List(context.Background())
	assert.Empty(t, products)
}

func TestAddAppendsRowWithBlankDiscountColumn(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.Add(context.Background(), AddProductRequest{
		Name:          "Chaussure Dorée",
		Category:      "Chaussure",
		PurchasePrice: 9000,
		SalePrice:     18000,
		Stock:         6,
	})
	require.NoError(t, err)

	rows := store.appended[worksheet]
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Chaussure Dorée", "Chaussure", "9000", "18000", "", "6"}, rows[0])
}

func TestAddSurfacesAppendFailure(t *testing.T) {
	store := newFakeStore()
	store.appendErr = errors.New("quota exceeded")
	svc := newTestService(store)

	_, err := svc.Add(context.Background(), AddProductRequest{Name: "X", Category: "Sac", Stock: 1})
	require.Error(t, err)
}

func TestLowStockFiltersBelowThreshold(t *testing.T) {
	store := newFakeStore()
	store.tables[worksheet] = productsTable()
	svc := newTestService(store)

	low := svc.LowStock(context.Background())
	require.Len(t, low, 2)
	assert.Equal(t, "Sac Perle", low[0].Name)
	assert.Equal(t, "Ensemble Wax", low[1].Name)
}

func TestGetByNameFirstMatchWins(t *testing.T) {
	store := newFakeStore()
	tbl := productsTable()
	tbl.Rows = append(tbl.Rows, []string{"Sac Perle", "Sac", "1000", "2000", "", "9"})
	store.tables[worksheet] = tbl
	repo := NewRepository(store)

	p, err := repo.GetByName(context.Background(), "Sac Perle")
	require.NoError(t, err)
	assert.Equal(t, 5000.0, p.PurchasePrice, "first row with the name wins")
}
