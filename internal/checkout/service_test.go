package checkout

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/deepaksuresh242006-wq/snekers-store/internal/marketplace"
	pkgerrors "github.com/deepaksuresh242006-wq/snekers-store/pkg/errors"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/logger"
	"github.com/shopspring/decimal"
)

type stubCartStore struct {
	items   []marketplace.CartItem
	cleared int
}

func (s *stubCartStore) Cart() []marketplace.CartItem {
	out := make([]marketplace.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *stubCartStore) ClearCart(context.Context) {
	s.cleared++
	s.items = nil
}

func testService(t *testing.T, store *stubCartStore, delay time.Duration) Service {
	t.Helper()
	svc, err := NewService(Params{
		Store:           store,
		Logger:          logger.New(logger.Options{ServiceName: "test", Output: &bytes.Buffer{}}),
		ProcessingDelay: delay,
		ShippingFee:     decimal.NewFromInt(7),
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func cartFixture() []marketplace.CartItem {
	return []marketplace.CartItem{
		{
			Product:  marketplace.Product{ID: "p1", Title: "Air Jordan 1", Price: decimal.NewFromInt(180)},
			Quantity: 1,
		},
		{
			Product:  marketplace.Product{ID: "p2", Title: "Yeezy Boost 350", Price: decimal.NewFromInt(320)},
			Quantity: 2,
		},
	}
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test", Output: &bytes.Buffer{}})

	if _, err := NewService(Params{Logger: logg}); err == nil {
		t.Fatalf("expected error without a cart store")
	}
	if _, err := NewService(Params{Store: &stubCartStore{}}); err == nil {
		t.Fatalf("expected error without a logger")
	}
	if _, err := NewService(Params{
		Store:       &stubCartStore{},
		Logger:      logg,
		ShippingFee: decimal.NewFromInt(-1),
	}); err == nil {
		t.Fatalf("expected error for negative shipping fee")
	}
}

func TestSummaryPricesCartWithFlatShipping(t *testing.T) {
	store := &stubCartStore{items: cartFixture()}
	svc := testService(t, store, 0)

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if summary.ItemCount != 3 {
		t.Fatalf("expected 3 items, got %d", summary.ItemCount)
	}
	if !summary.Subtotal.Equal(decimal.NewFromInt(820)) {
		t.Fatalf("expected subtotal 820, got %s", summary.Subtotal)
	}
	if !summary.Shipping.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("expected shipping 7, got %s", summary.Shipping)
	}
	if summary.Total.StringFixed(2) != "827.00" {
		t.Fatalf("expected total 827.00, got %s", summary.Total.StringFixed(2))
	}
	if len(summary.Lines) != 2 || !summary.Lines[1].LineTotal.Equal(decimal.NewFromInt(640)) {
		t.Fatalf("unexpected line totals %+v", summary.Lines)
	}
}

func TestSummaryRejectsEmptyCart(t *testing.T) {
	svc := testService(t, &stubCartStore{}, 0)

	_, err := svc.Summary(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaceOrderClearsCartAfterDelay(t *testing.T) {
	store := &stubCartStore{items: cartFixture()}
	svc := testService(t, store, 30*time.Millisecond)

	started := time.Now()
	confirmation, err := svc.PlaceOrder(context.Background())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	if elapsed := time.Since(started); elapsed < 30*time.Millisecond {
		t.Fatalf("order must wait out the processing delay, took %s", elapsed)
	}
	if confirmation.OrderID == "" {
		t.Fatalf("expected a generated order id")
	}
	if confirmation.Total.StringFixed(2) != "827.00" {
		t.Fatalf("expected total 827.00, got %s", confirmation.Total.StringFixed(2))
	}
	if store.cleared != 1 {
		t.Fatalf("cart must be cleared exactly once, got %d", store.cleared)
	}
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	store := &stubCartStore{}
	svc := testService(t, store, 0)

	if _, err := svc.PlaceOrder(context.Background()); err == nil {
		t.Fatalf("expected error for empty cart")
	}
	if store.cleared != 0 {
		t.Fatalf("empty cart must not trigger a clear")
	}
}
