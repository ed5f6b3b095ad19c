package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New("pet-boarding")

	m.ObserveRequest(http.MethodGet, "/bookings/{id}", 200, 30*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/bookings/{id}", 200, 10*time.Millisecond)
	m.ObserveScan(2)
	m.ObserveScan(0)
	m.SetEntities(3, 5, 7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/bookings/{id}", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.reminderScans))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.remindersSent))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.entities.WithLabelValues("bookings")))
}

func TestHandler_ExposesNamespace(t *testing.T) {
	m := New("pet-boarding")
	m.ObserveScan(1)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	res, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	assert.True(t, strings.Contains(string(body), "pet_boarding_reminder_scans_total 1"))
}
