package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nvelasco/cartify-backend/api/controllers"
	"github.com/nvelasco/cartify-backend/api/middleware"
	"github.com/nvelasco/cartify-backend/internal/cart"
	"github.com/nvelasco/cartify-backend/pkg/config"
	"github.com/nvelasco/cartify-backend/pkg/db"
	"github.com/nvelasco/cartify-backend/pkg/logger"
	"github.com/nvelasco/cartify-backend/pkg/metrics"
	"github.com/nvelasco/cartify-backend/pkg/redis"
)

// NewRouter wires the full HTTP surface: health probes, prometheus
// metrics and the versioned cart API.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	idemStore redis.IdempotencyStore,
	cartService cart.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	httpMetrics := metrics.NewHTTPMetrics(registry)

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	extraOrigins := []string{}
	if cfg != nil {
		extraOrigins = cfg.App.CORSOrigins
	}
	r.Use(middleware.CORS(extraOrigins))

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, logg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/carts", func(r chi.Router) {
		r.Use(middleware.Idempotency(idemStore, logg))

		r.Post("/", controllers.CartCreate(cartService, logg))
		r.Get("/", controllers.CartList(cartService, logg))

		r.Route("/{cartID:[0-9]+}", func(r chi.Router) {
			r.Get("/", controllers.CartShow(cartService, logg))
			r.Delete("/", controllers.CartDelete(cartService, logg))

			r.Post("/items", controllers.CartItemAdd(cartService, logg))
			r.Route("/items/{itemID:[0-9]+}", func(r chi.Router) {
				r.Put("/", controllers.CartItemUpdate(cartService, logg))
				r.Delete("/", controllers.CartItemDelete(cartService, logg))
			})
		})
	})

	return r
}
