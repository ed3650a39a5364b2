package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/deepaksuresh242006-wq/snekers-store/api/controllers"
	"github.com/deepaksuresh242006-wq/snekers-store/api/middleware"
	"github.com/deepaksuresh242006-wq/snekers-store/internal/auth"
	checkoutsvc "github.com/deepaksuresh242006-wq/snekers-store/internal/checkout"
	"github.com/deepaksuresh242006-wq/snekers-store/internal/marketplace"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/config"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/enums"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store *marketplace.Store,
	authCollaborator auth.Collaborator,
	checkoutService checkoutsvc.Service,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(authCollaborator, logg))
		r.Post("/guest", controllers.AuthGuest(authCollaborator, logg))
		r.Post("/register", controllers.AuthRegister(authCollaborator, logg))
		r.With(middleware.Auth(authCollaborator, logg)).Post("/logout", controllers.AuthLogout(store, logg))
		r.With(middleware.Auth(authCollaborator, logg)).Get("/me", controllers.AuthMe(store, logg))
	})

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/", controllers.CatalogBrowse(store, logg))
		r.Get("/products/{productId}", controllers.CatalogProductDetail(store, logg))
		r.Get("/sellers/{sellerId}", controllers.CatalogSellerProfile(store, logg))
	})

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", controllers.CartView(store, logg))
		r.Post("/", controllers.CartAdd(store, logg))
		r.Post("/undo", controllers.CartUndo(store, logg))
		r.Delete("/", controllers.CartClear(store, logg))
		r.Delete("/{productId}", controllers.CartRemove(store, logg))
	})

	r.Route("/api/v1/checkout", func(r chi.Router) {
		r.Get("/summary", controllers.CheckoutSummary(checkoutService, logg))
		r.Post("/", controllers.CheckoutPlace(checkoutService, logg))
	})

	r.Route("/api/v1/seller", func(r chi.Router) {
		r.Use(middleware.Auth(authCollaborator, logg))
		r.Use(middleware.RequireRole(string(enums.RoleSeller), logg))
		r.Get("/products", controllers.SellerProducts(store, logg))
		r.Post("/products", controllers.SellerAddProduct(store, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(authCollaborator, logg))
		r.Use(middleware.RequireRole(string(enums.RoleAdmin), logg))
		r.Get("/sellers", controllers.AdminSellers(store, logg))
		r.Post("/sellers/{sellerId}/verify", controllers.AdminVerifySeller(store, logg))
	})

	return r
}
