package customers

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/paruise-shop/paruise/internal/whatsapp"
)

// PodiumSize caps the top-spender ranking.
const PodiumSize = 3

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the customer book, empty when the worksheet is unreadable.
func (s *Service) List(ctx context.Context) []Customer {
	customers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("customers read failed, serving empty", slog.Any("error", err))
		return []Customer{}
	}
	return customers
}

func (s *Service) Register(ctx context.Context, req RegisterCustomerRequest) (*Customer, error) {
	c := Customer{
		Name:         req.Name,
		Phone:        req.Phone,
		Neighborhood: req.Neighborhood,
		Source:       req.Source,
	}
	if err := s.repo.Append(ctx, c); err != nil {
		return nil, fmt.Errorf("register customer: %w", err)
	}
	return &c, nil
}

// TopSpenders groups sale totals by customer name and returns the podium,
// highest spend first. Ties keep their grouping order.
func (s *Service) TopSpenders(ctx context.Context) []TopCustomer {
	entries, err := s.repo.Spending(ctx)
	if err != nil {
		s.logger.Warn("spending read failed, serving empty podium", slog.Any("error", err))
		return []TopCustomer{}
	}

	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, e := range entries {
		if _, seen := totals[e.Customer]; !seen {
			order = append(order, e.Customer)
		}
		totals[e.Customer] += e.Total
	}

	podium := make([]TopCustomer, 0, len(order))
	for _, name := range order {
		podium = append(podium, TopCustomer{Name: name, TotalSpent: totals[name]})
	}
	sort.SliceStable(podium, func(i, j int) bool {
		return podium[i].TotalSpent > podium[j].TotalSpent
	})
	if len(podium) > PodiumSize {
		podium = podium[:PodiumSize]
	}
	return podium
}

// CampaignResult carries a rendered campaign message with its deep link.
type CampaignResult struct {
	Customer string `json:"customer"`
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Link     string `json:"link"`
}

// Campaign renders a personal message for an existing customer and builds
// the WhatsApp link addressed to their number. A customer without a phone
// still gets a message, on a generic compose link.
func (s *Service) Campaign(ctx context.Context, req CampaignMessageRequest) (*CampaignResult, error) {
	customer, err := s.repo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("lookup customer %q: %w", req.Name, err)
	}
	text, err := CampaignText(req.Kind, FirstName(customer.Name))
	if err != nil {
		return nil, err
	}
	return &CampaignResult{
		Customer: customer.Name,
		Kind:     req.Kind,
		Message:  text,
		Link:     whatsapp.Link(customer.Phone, text),
	}, nil
}
