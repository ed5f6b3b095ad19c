package middleware

import (
	"context"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestIDHeader se devuelve en cada respuesta.
const RequestIDHeader = "X-Request-Id"

// RequestID se monta después de chi/middleware.RequestID y expone el id
// generado en la respuesta.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := GetRequestID(r.Context()); id != "" {
			w.Header().Set(RequestIDHeader, id)
		}
		next.ServeHTTP(w, r)
	})
}

func GetRequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
