package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rentora/rentora-backend/api/controllers"
	"github.com/rentora/rentora-backend/api/middleware"
	"github.com/rentora/rentora-backend/internal/auth"
	"github.com/rentora/rentora-backend/internal/contracts"
	"github.com/rentora/rentora-backend/internal/images"
	"github.com/rentora/rentora-backend/internal/properties"
	"github.com/rentora/rentora-backend/internal/publications"
	"github.com/rentora/rentora-backend/internal/users"
	"github.com/rentora/rentora-backend/pkg/config"
	"github.com/rentora/rentora-backend/pkg/logger"
	"github.com/rentora/rentora-backend/pkg/metrics"
	pkgredis "github.com/rentora/rentora-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface needs.
type RouterParams struct {
	Config       *config.Config
	Logger       *logger.Logger
	DBPinger     controllers.Pinger
	Redis        *pkgredis.Client
	HTTPMetrics  *metrics.HTTPMetrics
	Registry     *prometheus.Registry
	AuthService  auth.Service
	RegisterSvc  auth.RegisterService
	Users        users.Service
	Properties   properties.Service
	Images       images.Service
	Publications publications.Service
	Contracts    contracts.Service
}

// NewRouter assembles the middleware chain and the legacy route table.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.HTTPMetrics),
	)

	requireAuth := middleware.Auth(cfg.JWT, logg)
	requireAdmin := middleware.RequireAdmin(logg)
	optionalAuth := middleware.OptionalAuth(cfg.JWT, logg)

	var guard func(http.Handler) http.Handler
	if cfg.FeatureFlags.IdempotencyGuard && p.Redis != nil {
		guard = middleware.Idempotency(p.Redis, logg)
	} else {
		guard = passthrough
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DBPinger, redisPinger(p.Redis)))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Post("/login", controllers.AuthLogin(p.AuthService, logg))
	r.With(guard).Post("/register", controllers.Register(p.RegisterSvc, logg))

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/users", controllers.UsersList(p.Users, logg))
		r.Get("/property", controllers.PropertiesList(p.Properties, logg))
		r.Get("/image", controllers.ImagesList(p.Images, logg))
		r.Get("/contract", controllers.ContractsList(p.Contracts, logg))

		r.Group(func(r chi.Router) {
			r.Use(requireAdmin, guard)

			r.Post("/users", controllers.UsersCreate(p.Users, logg))
			r.Put("/user-update", controllers.UsersUpdate(p.Users, logg))
			r.Put("/user-delete", controllers.UsersDeactivate(p.Users, logg))

			r.Post("/property", controllers.PropertiesCreate(p.Properties, logg))
			r.Put("/property", controllers.PropertiesUpdate(p.Properties, logg))
			r.Delete("/property", controllers.PropertiesDeactivate(p.Properties, logg))

			r.Post("/image", controllers.ImagesCreate(p.Images, logg))
			r.Put("/image", controllers.ImagesDelete(p.Images, logg))

			r.Post("/publications", controllers.PublicationsCreate(p.Publications, logg))
			r.Put("/publications", controllers.PublicationsDeactivate(p.Publications, logg))

			r.Post("/contract", controllers.ContractsCreate(p.Contracts, logg))
		})
	})

	r.With(optionalAuth).Get("/publications", controllers.PublicationsList(p.Publications, logg))

	return r
}

func passthrough(next http.Handler) http.Handler { return next }

// redisPinger keeps a typed nil from masquerading as a live pinger.
func redisPinger(client *pkgredis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}
