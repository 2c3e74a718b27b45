package sales

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/paruise-shop/paruise/internal/catalog"
	"github.com/paruise-shop/paruise/internal/customers"
	"github.com/paruise-shop/paruise/internal/money"
	"github.com/paruise-shop/paruise/internal/shared"
	"github.com/paruise-shop/paruise/internal/whatsapp"
)

type Service struct {
	repo         Repository
	catalogRepo  catalog.Repository
	customerRepo customers.Repository
	shopName     string
	logger       *slog.Logger

	now         func() time.Time
	pickVariant func() int
}

func NewService(repo Repository, catalogRepo catalog.Repository, customerRepo customers.Repository, shopName string, logger *slog.Logger) *Service {
	return &Service{
		repo:         repo,
		catalogRepo:  catalogRepo,
		customerRepo: customerRepo,
		shopName:     shopName,
		logger:       logger,
		now:          time.Now,
		pickVariant:  func() int { return rand.IntN(ReceiptVariants) },
	}
}

// Quote previews the money for a sale line without writing anything.
func (s *Service) Quote(unitPrice, unitCost float64, quantity int) Quote {
	total, margin := Totals(unitPrice, unitCost, quantity)
	return Quote{
		UnitPrice:     unitPrice,
		UnitCost:      unitCost,
		Quantity:      quantity,
		Total:         total,
		Margin:        margin,
		TotalDisplay:  money.Format(total),
		MarginDisplay: money.Format(margin),
	}
}

// Record confirms a sale: resolves the product, computes total and margin,
// appends the ledger row, and builds the WhatsApp receipt. The unit price
// defaults to the catalog price unless the operator overrode it. Appending is
// not idempotent; a second confirmation records a second sale.
func (s *Service) Record(ctx context.Context, req RecordSaleRequest) (*SaleResult, error) {
	product, err := s.catalogRepo.GetByName(ctx, req.Product)
	if err != nil {
		return nil, fmt.Errorf("resolve product %q: %w", req.Product, err)
	}

	unitPrice := product.SalePrice
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}
	total, margin := Totals(unitPrice, product.PurchasePrice, req.Quantity)

	sale := Sale{
		Date:          shared.FormatDate(s.now()),
		Customer:      req.Customer,
		Product:       product.Name,
		UnitPrice:     unitPrice,
		Quantity:      req.Quantity,
		Total:         total,
		PaymentMethod: req.PaymentMethod,
	}
	if err := s.repo.Append(ctx, sale); err != nil {
		return nil, fmt.Errorf("record sale: %w", err)
	}

	// The receipt is best effort: an unknown customer still gets a message,
	// on a compose link without a recipient.
	phone := ""
	if customer, err := s.customerRepo.GetByName(ctx, req.Customer); err == nil {
		phone = customer.Phone
	}

	totalDisplay := money.Format(total)
	text := ReceiptText(s.pickVariant(), s.shopName, customers.FirstName(req.Customer), product.Name, totalDisplay)

	s.logger.Info("sale recorded",
		slog.String("customer", sale.Customer),
		slog.String("product", sale.Product),
		slog.Int("quantity", sale.Quantity),
		slog.Float64("total", sale.Total))

	return &SaleResult{
		Sale:          sale,
		Margin:        margin,
		TotalDisplay:  totalDisplay,
		MarginDisplay: money.Format(margin),
		ReceiptText:   text,
		ReceiptLink:   whatsapp.Link(phone, text),
	}, nil
}
