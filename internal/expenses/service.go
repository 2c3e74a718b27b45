package expenses

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paruise-shop/paruise/internal/shared"
)

// ErrInvalidDate rejects a date that is not DD/MM/YYYY.
var ErrInvalidDate = errors.New("invalid expense date")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Record appends one expense row. An omitted date means today; a malformed
// date is rejected before anything is written.
func (s *Service) Record(ctx context.Context, req RecordExpenseRequest) (*Expense, error) {
	date := req.Date
	if date == "" {
		date = shared.FormatDate(s.now())
	} else if _, err := shared.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	e := Expense{
		Date:        date,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if err := s.repo.Append(ctx, e); err != nil {
		return nil, fmt.Errorf("record expense: %w", err)
	}
	return &e, nil
}
