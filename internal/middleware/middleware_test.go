package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-boarding/internal/platform/logger"
	"pet-boarding/internal/ports/auth"
)

type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if token == "good" {
		return auth.Claims{UserID: "op-1", Role: "operator"}, nil
	}
	return auth.Claims{}, auth.ErrInvalidToken
}

func claimsEcho(w http.ResponseWriter, r *http.Request) {
	c, ok := GetClaims(r.Context())
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	_, _ = w.Write([]byte(c.UserID))
}

func TestAuthContext_DevHeader(t *testing.T) {
	h := AuthContext(nil)(http.HandlerFunc(claimsEcho))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DebugUserHeader, " u-9 ")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "u-9", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthContext_Verifier(t *testing.T) {
	h := AuthContext(stubVerifier{})(http.HandlerFunc(claimsEcho))

	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"valid bearer", "Bearer good", "op-1"},
		{"case insensitive scheme", "bearer good", "op-1"},
		{"bad token", "Bearer nope", ""},
		{"no scheme", "good", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", tc.header)
			// con verifier el header de debug se ignora
			req.Header.Set(DebugUserHeader, "intruder")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Body.String())
		})
	}
}

func TestRequireClaims(t *testing.T) {
	h := RequireClaims(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "unauthorized")

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(WithClaims(req.Context(), auth.Claims{UserID: "op"}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Out: &buf})

	h := chimw.RequestID(RequestID(Recover(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(errors.New("boom"))
	}))))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "boom")
}

type observed struct {
	method, route string
	status        int
}

type fakeObserver struct{ got []observed }

func (f *fakeObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	f.got = append(f.got, observed{method, route, status})
}

func TestInstrument_UsesRoutePattern(t *testing.T) {
	obs := &fakeObserver{}
	r := chi.NewRouter()
	r.Use(Instrument(obs, logger.Nop()))
	r.Get("/bookings/{bookingID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/bookings/b-1", "/bookings/b-2", "/ok"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, obs.got, 3)
	assert.Equal(t, observed{"GET", "/bookings/{bookingID}", http.StatusTeapot}, obs.got[0])
	assert.Equal(t, obs.got[0], obs.got[1])
	assert.Equal(t, observed{"GET", "/ok", http.StatusOK}, obs.got[2])
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "", bearerToken("   "))
	assert.Equal(t, "abc", bearerToken("Bearer  abc "))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.False(t, strings.Contains(bearerToken("Bearer x"), " "))
}
