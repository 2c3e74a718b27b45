package expenses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paruise-shop/paruise/internal/sheetdb"
)

type fakeStore struct {
	appended  map[string][][]string
	appendErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{appended: make(map[string][][]string)}
}

func (f *fakeStore) ReadTable(ctx context.Context, name string) (sheetdb.Table, error) {
	return sheetdb.Table{}, nil
}

func (f *fakeStore) AppendRow(ctx context.Context, name string, cells []string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended[name] = append(f.appended[name], cells)
	return nil
}

func TestRecordAppendsRow(t *testing.T) {
	store := newFakeStore()
	svc := NewService(NewRepository(store))

	e, err := svc.Record(context.Background(), RecordExpenseRequest{
		Date:        "05/02/2024",
		Category:    "Loyer",
		Amount:      45000,
		Description: "Loyer février",
	})
	require.NoError(t, err)
	assert.Equal(t, "05/02/2024", e.Date)

	rows := store.appended[worksheet]
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"05/02/2024", "Loyer", "45000", "Loyer février"}, rows[0])
}

func TestRecordDefaultsToToday(t *testing.T) {
	store := newFakeStore()
	svc := NewService(NewRepository(store))
	svc.now = func() time.Time { return time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC) }

	e, err := svc.Record(context.Background(), RecordExpenseRequest{
		Category: "Transport",
		Amount:   1500,
	})
	require.NoError(t, err)
	assert.Equal(t, "09/03/2024", e.Date)
}

func TestRecordRejectsMalformedDate(t *testing.T) {
	store := newFakeStore()
	svc := NewService(NewRepository(store))

	_, err := svc.Record(context.Background(), RecordExpenseRequest{
		Date:     "2024-02-05",
		Category: "Factures",
		Amount:   100,
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Empty(t, store.appended[worksheet], "nothing written on invalid input")
}

func TestRecordSurfacesAppendFailure(t *testing.T) {
	store := newFakeStore()
	store.appendErr = errors.New("network down")
	svc := NewService(NewRepository(store))

	_, err := svc.Record(context.Background(), RecordExpenseRequest{
		Category: "Perso",
		Amount:   2000,
	})
	require.Error(t, err)
}
