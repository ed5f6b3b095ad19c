package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"pet-boarding/internal/platform/logger"
)

type RequestObserver interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

// Instrument mide cada request por patrón de ruta de chi
// y deja una línea de access log en debug.
func Instrument(obs RequestObserver, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil {
				if p := rc.RoutePattern(); p != "" {
					route = p
				}
			}
			d := time.Since(start)

			if obs != nil {
				obs.ObserveRequest(r.Method, route, status, d)
			}
			if log != nil {
				log.Debug("request", map[string]any{
					"request_id": GetRequestID(r.Context()),
					"method":     r.Method,
					"route":      route,
					"status":     status,
					"duration":   d.String(),
				})
			}
		})
	}
}
