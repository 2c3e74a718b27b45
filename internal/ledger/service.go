package ledger

import (
	"context"
	"sort"

	"github.com/paruise-shop/paruise/internal/money"
	"github.com/paruise-shop/paruise/internal/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Series merges sales and expenses into one dated stream, stable-sorts it by
// calendar day, and folds a running balance over it. The final point's
// balance is the current cash position.
func (s *Service) Series(ctx context.Context) Series {
	events, skipped := s.repo.Events(ctx)

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	points := make([]Point, 0, len(events))
	balance := 0.0
	for _, e := range events {
		balance += e.Amount
		points = append(points, Point{
			Date:    shared.FormatDate(e.Date),
			Amount:  e.Amount,
			Balance: balance,
		})
	}

	return Series{
		Points:         points,
		Balance:        balance,
		BalanceDisplay: money.Format(balance),
		Skipped:        skipped,
	}
}
