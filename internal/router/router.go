package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-boarding/docs"
	mem "pet-boarding/internal/adapters/storage/memory"
	"pet-boarding/internal/domain/boarding"
	"pet-boarding/internal/domain/registry"
	"pet-boarding/internal/middleware"
	"pet-boarding/internal/platform/logger"
	"pet-boarding/internal/platform/metrics"
	"pet-boarding/internal/ports/auth"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si no viene, arma un servicio vacío sobre el store en memoria.
	Service *boarding.Service

	Logger  logger.Logger
	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New("pet_boarding")
	}
	svc := opts.Service
	if svc == nil {
		svc = boarding.NewService(registry.New(), mem.NewStore(), log)
		svc.OnChange = m.SetEntities
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Instrument(m, log))
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := svc.Ping(ctx); err != nil {
			log.Warn("health check failed", map[string]any{"err": err.Error()})
			http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	boarding.RegisterRoutes(r, svc)

	return r
}
