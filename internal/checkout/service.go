package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/deepaksuresh242006-wq/snekers-store/internal/marketplace"
	pkgerrors "github.com/deepaksuresh242006-wq/snekers-store/pkg/errors"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/logger"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type cartStore interface {
	Cart() []marketplace.CartItem
	ClearCart(ctx context.Context)
}

// Service exposes the checkout flow: a priced summary for the details step and
// the simulated place-order transition.
type Service interface {
	Summary(ctx context.Context) (*OrderSummary, error)
	PlaceOrder(ctx context.Context) (*OrderConfirmation, error)
}

// Params bundles the dependencies for NewService.
type Params struct {
	Store           cartStore
	Logger          *logger.Logger
	Metrics         *metrics.StoreMetrics
	ProcessingDelay time.Duration
	ShippingFee     decimal.Decimal
}

type service struct {
	store           cartStore
	logg            *logger.Logger
	metrics         *metrics.StoreMetrics
	processingDelay time.Duration
	shippingFee     decimal.Decimal
}

func NewService(params Params) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("cart store is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if params.ShippingFee.IsNegative() {
		return nil, fmt.Errorf("shipping fee cannot be negative")
	}
	return &service{
		store:           params.Store,
		logg:            params.Logger,
		metrics:         params.Metrics,
		processingDelay: params.ProcessingDelay,
		shippingFee:     params.ShippingFee,
	}, nil
}

// OrderLine is one cart row priced out for the summary.
type OrderLine struct {
	Item      marketplace.CartItem
	LineTotal decimal.Decimal
}

// OrderSummary is the priced view of the cart shown before the order is placed.
type OrderSummary struct {
	Lines     []OrderLine
	ItemCount int
	Subtotal  decimal.Decimal
	Shipping  decimal.Decimal
	Total     decimal.Decimal
}

// OrderConfirmation reports a completed order.
type OrderConfirmation struct {
	OrderID  string
	Total    decimal.Decimal
	PlacedAt time.Time
}

func (s *service) Summary(ctx context.Context) (*OrderSummary, error) {
	cart := s.store.Cart()
	if len(cart) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	return s.price(cart), nil
}

// PlaceOrder simulates payment processing with a fixed delay, then clears the
// cart. The delay is not cancelable; the simulated processor always succeeds.
func (s *service) PlaceOrder(ctx context.Context) (*OrderConfirmation, error) {
	cart := s.store.Cart()
	if len(cart) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	summary := s.price(cart)

	if s.processingDelay > 0 {
		time.Sleep(s.processingDelay)
	}

	s.store.ClearCart(ctx)
	s.metrics.IncOrderPlaced()

	confirmation := &OrderConfirmation{
		OrderID:  "o-" + uuid.NewString(),
		Total:    summary.Total,
		PlacedAt: time.Now(),
	}
	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"order_id": confirmation.OrderID,
		"total":    summary.Total.StringFixed(2),
	}), "order placed")
	return confirmation, nil
}

func (s *service) price(cart []marketplace.CartItem) *OrderSummary {
	summary := &OrderSummary{
		Lines:    make([]OrderLine, 0, len(cart)),
		Subtotal: decimal.Zero,
		Shipping: s.shippingFee,
	}
	for _, item := range cart {
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		summary.Lines = append(summary.Lines, OrderLine{Item: item, LineTotal: lineTotal})
		summary.Subtotal = summary.Subtotal.Add(lineTotal)
		summary.ItemCount += item.Quantity
	}
	summary.Total = summary.Subtotal.Add(summary.Shipping)
	return summary
}
