// Package rest wires the HTTP surface: the public pathway page, the admin edit
// page and the JSON API.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/observability"
	"github.com/nathan-pham/gradcap-mvp/internal/interfaces/http/rest/handlers"
	"github.com/nathan-pham/gradcap-mvp/internal/interfaces/http/rest/middleware"

	_ "github.com/nathan-pham/gradcap-mvp/docs"
)

// Options configures cross-cutting behaviour of the router.
type Options struct {
	AllowedOrigins []string
	JWT            middleware.JWTConfig
	MetricsPath    string
}

// Router creates and configures the HTTP router
type Router struct {
	site      *handlers.SiteHandler
	admin     *handlers.AdminHandler
	nodes     *handlers.NodeHandler
	health    *handlers.HealthHandler
	collector *observability.Collector
	options   Options
	logger    *zap.Logger
}

// NewRouter creates a new router instance. A nil collector disables metrics.
func NewRouter(
	site *handlers.SiteHandler,
	admin *handlers.AdminHandler,
	nodes *handlers.NodeHandler,
	health *handlers.HealthHandler,
	collector *observability.Collector,
	options Options,
	logger *zap.Logger,
) *Router {
	return &Router{
		site:      site,
		admin:     admin,
		nodes:     nodes,
		health:    health,
		collector: collector,
		options:   options,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.collector != nil {
		router.Use(observability.MetricsMiddleware(rt.collector))
		router.Method(http.MethodGet, rt.options.MetricsPath, rt.collector.Handler())
	}

	authenticate := middleware.Authenticate(rt.options.JWT, rt.logger)

	router.Get("/health", rt.health.Health)
	router.Get("/ready", rt.health.Ready)

	router.Get("/", rt.site.Pathway)

	router.Route("/admin", func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/", rt.admin.Page)
		r.Post("/select/{nodeID}", rt.admin.Select)
		r.Post("/save", rt.admin.Save)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   rt.options.AllowedOrigins,
			AllowedMethods:   []string{"GET", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))

		r.Get("/nodes", rt.nodes.ListNodes)
		r.With(authenticate).Put("/nodes/{nodeID}", rt.nodes.UpdateNode)
		r.Get("/icons", rt.nodes.ListIcons)
		r.Get("/swagger.json", rt.swaggerDoc)
	})

	return router
}

func (rt *Router) swaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		rt.logger.Error("Failed to read API document", zap.Error(err))
		http.Error(w, "document unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(doc))
}
