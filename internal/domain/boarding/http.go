package boarding

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-boarding/internal/domain/registry"
	"pet-boarding/internal/middleware"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// decode no acepta campos desconocidos.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeError traduce errores de dominio a HTTP:
// validación 400, no encontrado 404, almacenamiento 502.
func (h *handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *registry.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Msg, Reason: string(ve.Reason), Field: ve.Field})
	case errors.Is(err, registry.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrUpstream):
		h.svc.log.Error("storage failure", map[string]any{
			"request_id": middleware.GetRequestID(r.Context()),
			"path":       r.URL.Path,
			"err":        err.Error(),
		})
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "storage unavailable"})
	default:
		h.svc.log.Error("unexpected error", map[string]any{
			"request_id": middleware.GetRequestID(r.Context()),
			"path":       r.URL.Path,
			"err":        err.Error(),
		})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
