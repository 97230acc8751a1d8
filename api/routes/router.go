package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NonattoDev/ecommercesoftline-backend/api/controllers"
	"github.com/NonattoDev/ecommercesoftline-backend/api/middleware"
	"github.com/NonattoDev/ecommercesoftline-backend/internal/analytics"
	"github.com/NonattoDev/ecommercesoftline-backend/internal/cart"
	"github.com/NonattoDev/ecommercesoftline-backend/internal/orders"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/config"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/db"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/logger"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/metrics"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/redis"
)

// NewRouter assembles the storefront API surface.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	cartService cart.Service,
	orderService orders.Service,
	analyticsService analytics.Service,
	catalog controllers.ProductCatalog,
	shipping controllers.ShippingSettings,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", controllers.ProductList(catalog, logg))
		r.Get("/products/{code}", controllers.ProductGet(catalog, logg))
		r.Get("/company/shipping", controllers.CompanyShipping(shipping, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(cartService, logg))
				r.Post("/", controllers.CartAdd(cartService, catalog, logg))
				r.Delete("/", controllers.CartClear(cartService, logg))
				r.Put("/items/{code}", controllers.CartUpdateItem(cartService, logg))
				r.Delete("/items/{code}", controllers.CartRemoveItem(cartService, logg))
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Post("/card", controllers.CheckoutCard(orderService, cartService, logg))
				r.Post("/proposal", controllers.CheckoutProposal(orderService, cartService, logg))
			})
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(
			middleware.Auth(cfg.JWT, logg),
			middleware.RequireAdmin(logg),
		)
		r.Get("/analytics/salespeople", controllers.AnalyticsSalespeople(analyticsService, logg))
	})

	return r
}
