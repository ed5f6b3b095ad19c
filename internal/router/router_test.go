package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-boarding/internal/router"
)

const operator = "op-1"

func TestHTTP_EndToEnd_BookingLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// 1) Sin operador no se puede mutar
	{
		st, _ := doReq(t, ts.URL, "POST", "/animals", "", map[string]any{"name": "Rex", "size_class": "medium"})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without operator, got %d", st)
		}
	}

	// 2) Alta de animal: la tarifa sale del tamaño
	animal := decodeMap(t, mustStatus(t, http.StatusCreated, "create animal")(
		doReq(t, ts.URL, "POST", "/animals", operator, map[string]any{
			"name": "Rex", "size_class": "Medium", "owner_name": "Ana",
		})))
	animalID, _ := animal["id"].(string)
	if animalID == "" || animal["base_rate"] != float64(2000) || animal["size_class"] != "medium" {
		t.Fatalf("unexpected animal: %v", animal)
	}

	// 3) Reserva de 10 días con 2 feriados
	booking := decodeMap(t, mustStatus(t, http.StatusCreated, "create booking")(
		doReq(t, ts.URL, "POST", "/bookings", operator, map[string]any{
			"animal_id":         animalID,
			"check_in":          "2024-03-01",
			"check_out":         "2024-03-10",
			"holiday_days":      2,
			"holiday_price_add": 500,
		})))
	bookingID, _ := booking["id"].(string)
	if booking["status"] != "upcoming" || booking["total_days"] != float64(10) || booking["base_price_per_day"] != float64(2000) {
		t.Fatalf("unexpected booking: %v", booking)
	}

	// 4) Gasto y recibo
	mustStatus(t, http.StatusCreated, "create expense")(
		doReq(t, ts.URL, "POST", "/bookings/"+bookingID+"/expenses", operator, map[string]any{"name": "vet", "amount": 1500}))

	receipt := decodeMap(t, mustStatus(t, http.StatusOK, "receipt")(
		doReq(t, ts.URL, "GET", "/bookings/"+bookingID+"/receipt", "", nil)))
	if receipt["subtotal"] != float64(21000) || receipt["expenses_total"] != float64(1500) || receipt["total"] != float64(19500) {
		t.Fatalf("unexpected receipt: %v", receipt)
	}

	// 5) Recordatorio de check-in el día anterior
	{
		_, body := doReq(t, ts.URL, "GET", "/reminders?at=2024-02-29", "", nil)
		var list []map[string]any
		if err := json.Unmarshal(body, &list); err != nil {
			t.Fatalf("reminders: %v body=%s", err, body)
		}
		if len(list) != 1 || list[0]["kind"] != "check-in" || list[0]["animal_name"] != "Rex" {
			t.Fatalf("unexpected reminders: %s", body)
		}
	}

	// 6) Calendario de marzo
	{
		_, body := doReq(t, ts.URL, "GET", "/calendar?month=2024-03", "", nil)
		var grid []struct {
			Date      string           `json:"date"`
			Occupants []map[string]any `json:"occupants"`
		}
		if err := json.Unmarshal(body, &grid); err != nil {
			t.Fatalf("calendar: %v", err)
		}
		if len(grid) != 31 || len(grid[0].Occupants) != 1 || len(grid[10].Occupants) != 0 {
			t.Fatalf("unexpected grid: %s", body)
		}
		if grid[9].Date != "2024-03-10" || grid[9].Occupants[0]["animal_name"] != "Rex" {
			t.Fatalf("check-out day must be occupied: %+v", grid[9])
		}
	}

	occ := decodeMap(t, mustStatus(t, http.StatusOK, "occupancy")(
		doReq(t, ts.URL, "GET", "/occupancy?from=2024-03-05&to=2024-03-20", "", nil)))
	if occ["animal_days"] != float64(6) {
		t.Fatalf("unexpected occupancy: %v", occ)
	}

	// 7) Completar y ver el resumen del mes
	mustStatus(t, http.StatusOK, "complete booking")(
		doReq(t, ts.URL, "PATCH", "/bookings/"+bookingID, operator, map[string]any{"status": "completed"}))

	summary := decodeMap(t, mustStatus(t, http.StatusOK, "summary")(
		doReq(t, ts.URL, "GET", "/reports/summary?period=month&ref=2024-03-15", "", nil)))
	if summary["from"] != "2024-03-01" || summary["to"] != "2024-03-31" || summary["completed_count"] != float64(1) {
		t.Fatalf("unexpected summary: %v", summary)
	}

	stats := decodeMap(t, mustStatus(t, http.StatusOK, "stats")(
		doReq(t, ts.URL, "GET", "/animals/"+animalID+"/stats", "", nil)))
	if stats["completed_bookings"] != float64(1) || stats["total_days"] != float64(10) || stats["revenue"] != float64(19500) {
		t.Fatalf("unexpected stats: %v", stats)
	}

	// 8) Borrar el animal arrastra reserva y gasto
	cascade := decodeMap(t, mustStatus(t, http.StatusOK, "delete animal")(
		doReq(t, ts.URL, "DELETE", "/animals/"+animalID, operator, nil)))
	if ids, _ := cascade["booking_ids"].([]any); len(ids) != 1 || ids[0] != bookingID {
		t.Fatalf("unexpected cascade: %v", cascade)
	}
	if ids, _ := cascade["expense_ids"].([]any); len(ids) != 1 {
		t.Fatalf("unexpected cascade: %v", cascade)
	}

	if st, _ := doReq(t, ts.URL, "GET", "/bookings/"+bookingID, "", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 after cascade, got %d", st)
	}
}

func TestHTTP_ValidationErrors(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	animal := decodeMap(t, mustStatus(t, http.StatusCreated, "create animal")(
		doReq(t, ts.URL, "POST", "/animals", operator, map[string]any{"name": "Bimba", "size_class": "small"})))
	animalID := animal["id"].(string)

	cases := []struct {
		name   string
		body   map[string]any
		reason string
	}{
		{"inverted range", map[string]any{"animal_id": animalID, "check_in": "2024-03-10", "check_out": "2024-03-01"}, "invalid_date_range"},
		{"unknown animal", map[string]any{"animal_id": "ghost", "check_in": "2024-03-01", "check_out": "2024-03-02"}, "unknown_animal"},
		{"too many holidays", map[string]any{"animal_id": animalID, "check_in": "2024-03-01", "check_out": "2024-03-02", "holiday_days": 3}, "holiday_days_out_of_range"},
		{"zero custom price", map[string]any{"animal_id": animalID, "check_in": "2024-03-01", "check_out": "2024-03-02", "custom_price_per_day": 0}, "invalid_price"},
		{"missing date", map[string]any{"animal_id": animalID, "check_in": "2024-03-01"}, "missing_date"},
		{"stay too long", map[string]any{"animal_id": animalID, "check_in": "2000-01-01", "check_out": "2400-01-01"}, "stay_too_long"},
		{"price too high", map[string]any{"animal_id": animalID, "check_in": "2024-03-01", "check_out": "2024-03-02", "custom_price_per_day": 100000001}, "price_too_high"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, body := doReq(t, ts.URL, "POST", "/bookings", operator, tc.body)
			if st != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%s", st, body)
			}
			if got := decodeMap(t, body)["reason"]; got != tc.reason {
				t.Fatalf("expected reason %s, got %v", tc.reason, got)
			}
		})
	}

	if st, _ := doReq(t, ts.URL, "POST", "/bookings", operator, map[string]any{"animal_id": animalID, "extra": true}); st != http.StatusBadRequest {
		t.Fatalf("unknown fields must be rejected, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/bookings?status=lost", "", nil); st != http.StatusBadRequest {
		t.Fatalf("bad status filter must be 400, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/calendar?month=2024-13", "", nil); st != http.StatusBadRequest {
		t.Fatalf("bad month must be 400, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/reports/summary?period=decade", "", nil); st != http.StatusBadRequest {
		t.Fatalf("bad period must be 400, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/animals/ghost", "", nil); st != http.StatusNotFound {
		t.Fatalf("unknown animal must be 404, got %d", st)
	}
}

func TestHTTP_MutationsRequireOperator(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	for _, rt := range []struct{ method, path string }{
		{"POST", "/animals"},
		{"PATCH", "/animals/a-1"},
		{"DELETE", "/bookings/b-1"},
		{"POST", "/bookings/b-1/expenses"},
		{"PATCH", "/expenses/e-1"},
		{"DELETE", "/expenses/e-1"},
		{"POST", "/reload"},
	} {
		if st, _ := doReq(t, ts.URL, rt.method, rt.path, "", map[string]any{}); st != http.StatusUnauthorized {
			t.Fatalf("%s %s without operator: expected 401, got %d", rt.method, rt.path, st)
		}
	}
}

func TestHTTP_PatchClearsCustomPrice(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	animal := decodeMap(t, mustStatus(t, http.StatusCreated, "create animal")(
		doReq(t, ts.URL, "POST", "/animals", operator, map[string]any{"name": "Toby", "size_class": "large"})))
	booking := decodeMap(t, mustStatus(t, http.StatusCreated, "create booking")(
		doReq(t, ts.URL, "POST", "/bookings", operator, map[string]any{
			"animal_id": animal["id"], "check_in": "2024-05-01", "check_out": "2024-05-01", "custom_price_per_day": 2500,
		})))
	id := booking["id"].(string)

	// ausente: no se toca
	got := decodeMap(t, mustStatus(t, http.StatusOK, "patch notes")(
		doReq(t, ts.URL, "PATCH", "/bookings/"+id, operator, map[string]any{"notes": "come poco"})))
	if got["custom_price_per_day"] != float64(2500) || got["notes"] != "come poco" {
		t.Fatalf("absent field must be kept: %v", got)
	}

	// null: se limpia
	got = decodeMap(t, mustStatus(t, http.StatusOK, "patch null")(
		doReq(t, ts.URL, "PATCH", "/bookings/"+id, operator, map[string]any{"custom_price_per_day": nil})))
	if got["custom_price_per_day"] != nil {
		t.Fatalf("null must clear custom price: %v", got)
	}

	receipt := decodeMap(t, mustStatus(t, http.StatusOK, "receipt")(
		doReq(t, ts.URL, "GET", "/bookings/"+id+"/receipt", "", nil)))
	if receipt["total"] != float64(3000) || receipt["custom_price"] != false {
		t.Fatalf("large base rate expected after clearing: %v", receipt)
	}
}

func TestHTTP_Infra(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	if st, body := doReq(t, ts.URL, "GET", "/health", "", nil); st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("health: %d %s", st, body)
	}

	res, err := http.Get(ts.URL + "/animals")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.Header.Get("X-Request-Id") == "" {
		t.Fatal("missing X-Request-Id header")
	}

	st, body := doReq(t, ts.URL, "GET", "/metrics", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `pet_boarding_http_requests_total{method="GET",route="/animals/",status="200"}`) {
		t.Fatalf("metrics missing request counter: %s", body)
	}

	if st, _ := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil); st != http.StatusOK {
		t.Fatalf("swagger doc: %d", st)
	}
}

func mustStatus(t *testing.T, want int, what string) func(int, []byte) []byte {
	t.Helper()
	return func(st int, body []byte) []byte {
		t.Helper()
		if st != want {
			t.Fatalf("expected %d %s, got %d body=%s", want, what, st, string(body))
		}
		return body
	}
}

func decodeMap(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("decode: %v body=%s", err, string(body))
	}
	return m
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
