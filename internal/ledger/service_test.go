package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paruise-shop/paruise/internal/sheetdb"
)

type fakeStore struct {
	tables  map[string]sheetdb.Table
	readErr map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tables:  make(map[string]sheetdb.Table),
		readErr: make(map[string]error),
	}
}

func (f *fakeStore) ReadTable(ctx context.Context, name string) (sheetdb.Table, error) {
	if err := f.readErr[name]; err != nil {
		return sheetdb.Table{}, err
	}
	return f.tables[name], nil
}

func (f *fakeStore) AppendRow(ctx context.Context, name string, cells []string) error {
	return errors.New("read-only store")
}

func salesTable(rows [][]string) sheetdb.Table {
	return sheetdb.Table{
		Name:    worksheetSales,
		Headers: []string{"Date", "Client", "Article", "Prix", "Quantite", "Total", "Paiement"},
		Rows:    rows,
	}
}

func expensesTable(rows [][]string) sheetdb.Table {
	return sheetdb.Table{
		Name:    worksheetExpenses,
		Headers: []string{"Date", "Motif", "Montant", "Détail"},
		Rows:    rows,
	}
}

func newTestService(store *fakeStore) *Service {
	return NewService(NewRepository(store))
}

func TestSeriesCumulativeBalance(t *testing.T) {
	store := newFakeStore()
	store.tables[worksheetSales] = salesTable([][]string{
		{"01/01/2024", "Awa", "Robe", "10000", "1", "10000", "Espèces 💵"},
	})
	store.tables[worksheetExpenses] = expensesTable([][]string{
		{"02/01/2024", "Transport", "3000", "Taxi"},
	})

	series := newTestService(store).Series(context.Background())
	require.Len(t, series.Points, 2)
	assert.Equal(t, Point{Date: "01/01/2024", Amount: 10000, Balance: 10000}, series.Points[0])
	assert.Equal(t, Point{Date: "02/01/2024", Amount: -3000, Balance: 7000}, series.Points[1])
	assert.Equal(t, 7000.0, series.Balance)
	assert.Empty(t, series.Skipped)
}

func TestSeriesSortsAcrossSources(t *testing.T) {
	store := newFakeStore()
	store.tables[worksheetSales] = salesTable([][]string{
		{"10/01/2024", "Awa", "Robe", "5000", "1", "5000", "Espèces 💵"},
		{"02/01/2024", "Ama", "Sac", "8000", "1", "8000", "Flooz 📱"},
	})
	store.tables[worksheetExpenses] = expensesTable([][]string{
		{"05/01/2024", "Loyer", "4000", ""},
	})

	series := newTestService(store).Series(context.Background())
	require.Len(t, series.Points, 3)
	assert.Equal(t, []float64{8000, 4000, 9000}, []float64{
		series.Points[0].Balance, series.Points[1].Balance, series.Points[2].Balance,
	})
	assert.Equal(t, "02/01/2024", series.Points[0].Date)
	assert.Equal(t, "05/01/2024", series.Points[1].Date)
	assert.Equal(t, "10/01/2024", series.Points[2].Date)
}

func TestSeriesSameDayKeepsSalesFirst(t *testing.T) {
	store := newFakeStore()
	store.tables[worksheetSales] = salesTable([][]string{
		{"03/01/2024", "Awa", "Robe", "10000", "1", "10000", "Espèces 💵"},
	})
	store.tables[worksheetExpenses] = expensesTable([][]string{
		{"03/01/2024", "Marchandise", "6000", ""},
	})

	series := newTestService(store).Series(context.Background())
	require.Len(t, series.Points, 2)
	assert.Equal(t, 10000.0, series.Points[0].Amount, "sales precede expenses on ties")
	assert.Equal(t, 4000.0, series.Balance)
}

func TestSeriesExcludesUnparseableDatesExplicitly(t *testing.T) {
	store := newFakeStore()
	store.tables[worksheetSales] = salesTable([][]string{
		{"01/01/2024", "Awa", "Robe", "10000", "1", "10000", "Espèces 💵"},
		{"pas une date", "Ama", "Sac", "8000", "1", "8000", "Flooz 📱"},
		{"2024-01-05", "Efua", "Robe", "5000", "1", "5000", "Espèces 💵"},
	})
	store.tables[worksheetExpenses] = expensesTable(nil)

	series := newTestService(store).Series(context.Background())
	assert.Len(t, series.Points, 1, "bad-date rows drop out of the series")
	require.Len(t, series.Skipped, 2)
	assert.Equal(t, worksheetSales, series.Skipped[0].Table)
	assert.Equal(t, 3, series.Skipped[0].Row, "sheet row number, header included")
	assert.Contains(t, series.Skipped[0].Reason, "pas une date")
	assert.Equal(t, 4, series.Skipped[1].Row)
}

func TestSeriesMalformedAmountCountsAsZero(t *testing.T) {
	store := newFakeStore()
	store.tables[worksheetSales] = salesTable([][]string{
		{"01/01/2024", "Awa", "Robe", "10000", "1", "n/a", "Espèces 💵"},
	})
	store.tables[worksheetExpenses] = expensesTable(nil)

	series := newTestService(store).Series(context.Background())
	require.Len(t, series.Points, 1)
	assert.Equal(t, 0.0, series.Points[0].Amount)
	assert.Empty(t, series.Skipped, "amount failures do not drop the row")
}

func TestSeriesAmountFallsBackToPosition(t *testing.T) {
	store := newFakeStore()
	tbl := salesTable([][]string{
		{"01/01/2024", "Awa", "Robe", "10000", "1", "10000", "Espèces 💵"},
	})
	tbl.Headers[5] = "Somme" // renamed header: exact lookup fails, position wins
	store.tables[worksheetSales] = tbl
	store.tables[worksheetExpenses] = expensesTable(nil)

	series := newTestService(store).Series(context.Background())
	require.Len(t, series.Points, 1)
	assert.Equal(t, 10000.0, series.Points[0].Amount)
}

func TestSeriesUnreadableWorksheetIsWholeTableSkip(t *testing.T) {
	store := newFakeStore()
	store.readErr[worksheetSales] = errors.New("worksheet missing")
	store.tables[worksheetExpenses] = expensesTable([][]string{
		{"02/01/2024", "Loyer", "3000", ""},
	})

	series := newTestService(store).Series(context.Background())
	require.Len(t, series.Points, 1)
	assert.Equal(t, -3000.0, series.Balance)
	require.Len(t, series.Skipped, 1)
	assert.Equal(t, worksheetSales, series.Skipped[0].Table)
	assert.Equal(t, 0, series.Skipped[0].Row)
}

func TestSeriesEmptyLedger(t *testing.T) {
	series := newTestService(newFakeStore()).Series(context.Background())
	assert.Empty(t, series.Points)
	assert.Equal(t, 0.0, series.Balance)
}
