package observability

import (
	"context"

	"github.com/paruise-shop/paruise/internal/sheetdb"
)

type instrumentedStore struct {
	inner   sheetdb.Store
	metrics *Metrics
}

// WrapStore decorates a Store so every read and append is counted. A nil
// receiver returns the inner store untouched.
func (m *Metrics) WrapStore(inner sheetdb.Store) sheetdb.Store {
	if m == nil {
		return inner
	}
	return &instrumentedStore{inner: inner, metrics: m}
}

func (s *instrumentedStore) ReadTable(ctx context.Context, name string) (sheetdb.Table, error) {
	tbl, err := s.inner.ReadTable(ctx, name)
	s.metrics.ObserveSheetOp("read", name, err)
	return tbl, err
}

func (s *instrumentedStore) AppendRow(ctx context.Context, name string, cells []string) error {
	err := s.inner.AppendRow(ctx, name, cells)
	s.metrics.ObserveSheetOp("append", name, err)
	return err
}
