package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/deepaksuresh242006-wq/snekers-store/internal/auth"
	checkoutsvc "github.com/deepaksuresh242006-wq/snekers-store/internal/checkout"
	"github.com/deepaksuresh242006-wq/snekers-store/internal/marketplace"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/config"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/logger"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/metrics"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/types"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	cfg := &config.Config{
		App: config.AppConfig{Env: "dev", Port: "0"},
		Session: config.SessionConfig{
			Secret:            "test-secret",
			Issuer:            "snekers-store",
			ExpirationMinutes: 30,
		},
	}

	seed, err := marketplace.DefaultSeed()
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	registry := prometheus.NewRegistry()
	store, err := marketplace.New(marketplace.Config{UndoWindow: time.Minute}, seed, logg, metrics.NewStoreMetrics(registry))
	if err != nil {
		t.Fatalf("build store: %v", err)
	}
	t.Cleanup(store.Close)

	collab, err := auth.NewService(cfg.Session, store, logg)
	if err != nil {
		t.Fatalf("build auth: %v", err)
	}
	store.BindSessionEnder(collab)

	checkoutService, err := checkoutsvc.NewService(checkoutsvc.Params{
		Store:           store,
		Logger:          logg,
		ProcessingDelay: time.Millisecond,
		ShippingFee:     decimal.NewFromInt(7),
	})
	if err != nil {
		t.Fatalf("build checkout: %v", err)
	}

	return NewRouter(cfg, logg, store, collab, checkoutService, registry)
}

func doJSON(t *testing.T, router http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func dataOf(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	var envelope types.SuccessEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
	}
	raw, err := json.Marshal(envelope.Data)
	if err != nil {
		t.Fatalf("re-marshal data: %v", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func loginToken(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", `{"email":"`+email+`","password":"`+password+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	var session struct {
		Token string `json:"token"`
	}
	dataOf(t, rec, &session)
	return session.Token
}

func TestHealthEndpoints(t *testing.T) {
	router := testRouter(t)
	if rec := doJSON(t, router, http.MethodGet, "/health/live", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected live 200, got %d", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodGet, "/metrics", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected metrics 200, got %d", rec.Code)
	}
}

func TestAdminVerificationRevealsListings(t *testing.T) {
	router := testRouter(t)

	countListings := func(sellerID string) int {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/catalog", "", "")
		var products []struct {
			SellerID string `json:"sellerId"`
		}
		dataOf(t, rec, &products)
		count := 0
		for _, p := range products {
			if p.SellerID == sellerID {
				count++
			}
		}
		return count
	}

	if got := countListings("s2"); got != 0 {
		t.Fatalf("pending seller listings must be hidden, got %d", got)
	}

	adminToken := loginToken(t, router, "admin@deepxk.com", "admin")
	rec := doJSON(t, router, http.MethodPost, "/api/admin/v1/sellers/s2/verify", adminToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("verify failed: %d %s", rec.Code, rec.Body.String())
	}

	if got := countListings("s2"); got == 0 {
		t.Fatalf("verified seller listings must appear")
	}
}

func TestRoleGuardsOnSellerRoutes(t *testing.T) {
	router := testRouter(t)

	if rec := doJSON(t, router, http.MethodGet, "/api/v1/seller/products", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	adminToken := loginToken(t, router, "admin@deepxk.com", "admin")
	if rec := doJSON(t, router, http.MethodGet, "/api/v1/seller/products", adminToken, ""); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-seller, got %d", rec.Code)
	}

	sellerToken := loginToken(t, router, "mike@soles.com", "password123")
	rec := doJSON(t, router, http.MethodGet, "/api/v1/seller/products", sellerToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for seller, got %d %s", rec.Code, rec.Body.String())
	}
	var products []struct {
		SellerID string `json:"sellerId"`
	}
	dataOf(t, rec, &products)
	for _, p := range products {
		if p.SellerID != "s1" {
			t.Fatalf("seller listing endpoint leaked foreign products: %+v", p)
		}
	}
}

func TestCheckoutFlowClearsCart(t *testing.T) {
	router := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart", "", `{"productId":"p1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("cart add failed: %d %s", rec.Code, rec.Body.String())
	}
	doJSON(t, router, http.MethodPost, "/api/v1/cart", "", `{"productId":"p4"}`)
	doJSON(t, router, http.MethodPost, "/api/v1/cart", "", `{"productId":"p4"}`)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/checkout/summary", "", "")
	var summary struct {
		Subtotal string `json:"subtotal"`
		Total    string `json:"total"`
	}
	dataOf(t, rec, &summary)
	if summary.Subtotal != "580.00" || summary.Total != "587.00" {
		t.Fatalf("unexpected pricing %+v", summary)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/checkout", "", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("place order failed: %d %s", rec.Code, rec.Body.String())
	}
	var confirmation struct {
		OrderID string `json:"orderId"`
		Total   string `json:"total"`
	}
	dataOf(t, rec, &confirmation)
	if confirmation.OrderID == "" || confirmation.Total != "587.00" {
		t.Fatalf("unexpected confirmation %+v", confirmation)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/cart", "", "")
	var cart struct {
		Items []any `json:"items"`
	}
	dataOf(t, rec, &cart)
	if len(cart.Items) != 0 {
		t.Fatalf("checkout must clear the cart, got %d rows", len(cart.Items))
	}
}

func TestRegisterThenAccessSellerDashboard(t *testing.T) {
	router := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "",
		`{"name":"New Kid","email":"new@kicks.com","password":"longenough","businessName":"Fresh Laces"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	var session struct {
		Token string `json:"token"`
		User  struct {
			Seller *struct {
				IsVerified bool `json:"isVerified"`
			} `json:"seller"`
		} `json:"user"`
	}
	dataOf(t, rec, &session)
	if session.User.Seller == nil || session.User.Seller.IsVerified {
		t.Fatalf("new sellers must start unverified: %+v", session.User)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/seller/products", session.Token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("fresh seller dashboard must be reachable, got %d %s", rec.Code, rec.Body.String())
	}
}
