package boarding

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-boarding/internal/domain/days"
	"pet-boarding/internal/domain/reports"
)

// maxRangeDays acota los rangos de /calendar.
const maxRangeDays = 366

// calendar godoc
// @Summary Calendario de ocupación
// @Description Una entrada por día con los animales presentes (sin canceladas). Usar month=YYYY-MM o from/to; sin parámetros devuelve el mes actual.
// @Tags views
// @Produce json
// @Param month query string false "Mes YYYY-MM"
// @Param from query string false "Desde YYYY-MM-DD"
// @Param to query string false "Hasta YYYY-MM-DD (inclusive)"
// @Success 200 {array} dayResponse
// @Failure 400 {object} errorResponse
// @Router /calendar [get]
func (h *handlers) calendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	month := strings.TrimSpace(q.Get("month"))
	fromS, toS := strings.TrimSpace(q.Get("from")), strings.TrimSpace(q.Get("to"))

	switch {
	case fromS != "" || toS != "":
		from, err1 := days.Parse(fromS)
		to, err2 := days.Parse(toS)
		if err1 != nil || err2 != nil {
			badRequest(w, "from and to must be YYYY-MM-DD")
			return
		}
		if days.Count(from, to) > maxRangeDays {
			badRequest(w, "range too long")
			return
		}
		writeJSON(w, http.StatusOK, toDayResponses(h.svc.Range(from, to)))
	case month != "":
		anchor, err := days.Parse(month + "-01")
		if err != nil {
			badRequest(w, "month must be YYYY-MM")
			return
		}
		writeJSON(w, http.StatusOK, toDayResponses(h.svc.Month(anchor)))
	default:
		writeJSON(w, http.StatusOK, toDayResponses(h.svc.Month(h.svc.Today())))
	}
}

type occupancyResponse struct {
	From       days.Date `json:"from" swaggertype:"string"`
	To         days.Date `json:"to" swaggertype:"string"`
	AnimalDays int       `json:"animal_days"`
}

// occupancy godoc
// @Summary Ocupación de un rango
// @Description Suma de días-animal de reservas no canceladas dentro de [from, to].
// @Tags views
// @Produce json
// @Param from query string true "Desde YYYY-MM-DD"
// @Param to query string true "Hasta YYYY-MM-DD (inclusive)"
// @Success 200 {object} occupancyResponse
// @Failure 400 {object} errorResponse
// @Router /occupancy [get]
func (h *handlers) occupancy(w http.ResponseWriter, r *http.Request) {
	from, err1 := days.Parse(strings.TrimSpace(r.URL.Query().Get("from")))
	to, err2 := days.Parse(strings.TrimSpace(r.URL.Query().Get("to")))
	if err1 != nil || err2 != nil {
		badRequest(w, "from and to must be YYYY-MM-DD")
		return
	}
	writeJSON(w, http.StatusOK, occupancyResponse{From: from, To: to, AnimalDays: h.svc.Occupancy(from, to)})
}

// reminders godoc
// @Summary Recordatorios pendientes
// @Description Check-ins (upcoming) y check-outs (active) del día siguiente a la referencia.
// @Tags views
// @Produce json
// @Param at query string false "Referencia RFC3339 o YYYY-MM-DD; por defecto ahora"
// @Success 200 {array} reminderResponse
// @Failure 400 {object} errorResponse
// @Router /reminders [get]
func (h *handlers) reminders(w http.ResponseWriter, r *http.Request) {
	at := h.svc.now()
	if v := strings.TrimSpace(r.URL.Query().Get("at")); v != "" {
		t, err := parseInstant(v)
		if err != nil {
			badRequest(w, "at must be RFC3339 or YYYY-MM-DD")
			return
		}
		at = t
	}
	writeJSON(w, http.StatusOK, toReminderResponses(h.svc.Reminders(at)))
}

// summary godoc
// @Summary Resumen financiero
// @Description Ingresos completados y potenciales, gastos y top 5 de animales del período. Usar from/to o period=week|month|year con ref opcional.
// @Tags reports
// @Produce json
// @Param from query string false "Desde YYYY-MM-DD"
// @Param to query string false "Hasta YYYY-MM-DD (inclusive)"
// @Param period query string false "week | month | year"
// @Param ref query string false "Fecha de referencia del período; por defecto hoy"
// @Success 200 {object} summaryResponse
// @Failure 400 {object} errorResponse
// @Router /reports/summary [get]
func (h *handlers) summary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fromS, toS := strings.TrimSpace(q.Get("from")), strings.TrimSpace(q.Get("to"))

	if fromS != "" || toS != "" {
		from, err1 := days.Parse(fromS)
		to, err2 := days.Parse(toS)
		if err1 != nil || err2 != nil {
			badRequest(w, "from and to must be YYYY-MM-DD")
			return
		}
		writeJSON(w, http.StatusOK, toSummaryResponse(h.svc.Summary(from, to)))
		return
	}

	kind := reports.PeriodMonth
	if v := strings.TrimSpace(q.Get("period")); v != "" {
		kind = reports.PeriodKind(v)
	}
	ref := h.svc.Today()
	if v := strings.TrimSpace(q.Get("ref")); v != "" {
		d, err := days.Parse(v)
		if err != nil {
			badRequest(w, "ref must be YYYY-MM-DD")
			return
		}
		ref = d
	}

	s, err := h.svc.SummaryForPeriod(kind, ref)
	if errors.Is(err, reports.ErrInvalidPeriod) {
		badRequest(w, "period must be week, month or year")
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryResponse(s))
}

type reloadResponse struct {
	Animals  int `json:"animals"`
	Bookings int `json:"bookings"`
	Expenses int `json:"expenses"`
}

// reload godoc
// @Summary Recargar desde el almacenamiento
// @Description Reemplaza el estado en memoria con el contenido del store. Si falla, el estado anterior queda intacto.
// @Tags admin
// @Produce json
// @Success 200 {object} reloadResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /reload [post]
func (h *handlers) reload(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reload(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	a, b, e := h.svc.Registry().Counts()
	h.svc.log.Info("reload requested", map[string]any{"operator": operator(r)})
	writeJSON(w, http.StatusOK, reloadResponse{Animals: a, Bookings: b, Expenses: e})
}

func parseInstant(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	d, err := days.Parse(v)
	if err != nil {
		return time.Time{}, err
	}
	// mediodía local: el día de referencia es d
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.Local), nil
}
