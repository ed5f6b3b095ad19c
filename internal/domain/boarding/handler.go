package boarding

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-boarding/internal/domain/bookings"
	"pet-boarding/internal/middleware"
)

type handlers struct {
	svc *Service
}

// RegisterRoutes monta la API. Las lecturas son públicas; toda mutación
// exige un operador autenticado (Bearer o X-Debug-User-ID en dev).
func RegisterRoutes(r chi.Router, svc *Service) {
	h := &handlers{svc: svc}

	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", h.listAnimals)
		ar.With(middleware.RequireClaims).Post("/", h.createAnimal)

		ar.Route("/{animalID}", func(one chi.Router) {
			one.Get("/", h.getAnimal)
			one.With(middleware.RequireClaims).Patch("/", h.updateAnimal)
			one.With(middleware.RequireClaims).Delete("/", h.deleteAnimal)
			one.Get("/stats", h.animalStats)
			one.Get("/bookings", h.animalBookings)
		})
	})

	r.Route("/bookings", func(br chi.Router) {
		br.Get("/", h.listBookings)
		br.With(middleware.RequireClaims).Post("/", h.createBooking)

		br.Route("/{bookingID}", func(one chi.Router) {
			one.Get("/", h.getBooking)
			one.With(middleware.RequireClaims).Patch("/", h.updateBooking)
			one.With(middleware.RequireClaims).Delete("/", h.deleteBooking)
			one.Get("/receipt", h.receipt)
			one.Get("/expenses", h.listExpenses)
			one.With(middleware.RequireClaims).Post("/expenses", h.createExpense)
		})
	})

	r.With(middleware.RequireClaims).Patch("/expenses/{expenseID}", h.updateExpense)
	r.With(middleware.RequireClaims).Delete("/expenses/{expenseID}", h.deleteExpense)

	r.Get("/calendar", h.calendar)
	r.Get("/occupancy", h.occupancy)
	r.Get("/reminders", h.reminders)
	r.Get("/reports/summary", h.summary)
	r.With(middleware.RequireClaims).Post("/reload", h.reload)
}

// operator: para los logs de auditoría.
func operator(r *http.Request) string {
	c, _ := middleware.GetClaims(r.Context())
	return c.UserID
}

// ---- animales ----

// listAnimals godoc
// @Summary Listar animales
// @Description Devuelve todos los animales ordenados por nombre.
// @Tags animals
// @Produce json
// @Success 200 {array} animalResponse
// @Router /animals [get]
func (h *handlers) listAnimals(w http.ResponseWriter, r *http.Request) {
	items := h.svc.Animals()
	out := make([]animalResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAnimalResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}

// createAnimal godoc
// @Summary Registrar animal
// @Description Da de alta un animal. size_class define la tarifa base: small 1500, medium 2000, large 3000.
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createAnimalRequest true "Datos del animal"
// @Success 201 {object} animalResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /animals [post]
func (h *handlers) createAnimal(w http.ResponseWriter, r *http.Request) {
	var req createAnimalRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid json")
		return
	}

	a, err := h.svc.CreateAnimal(r.Context(), CreateAnimalInput{
		Name:       req.Name,
		SizeClass:  req.SizeClass,
		Breed:      req.Breed,
		Comment:    req.Comment,
		OwnerName:  req.OwnerName,
		OwnerPhone: req.OwnerPhone,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.svc.log.Info("animal created", map[string]any{"animal_id": a.ID, "operator": operator(r)})
	writeJSON(w, http.StatusCreated, toAnimalResponse(a))
}

// getAnimal godoc
// @Summary Perfil de un animal
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 404 {object} errorResponse
// @Router /animals/{animalID} [get]
func (h *handlers) getAnimal(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Animal(chi.URLParam(r, "animalID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnimalResponse(a))
}

// updateAnimal godoc
// @Summary Actualizar animal
// @Description PATCH parcial: los campos ausentes no se tocan. Cambiar size_class no altera las reservas existentes.
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body updateAnimalRequest true "Campos a modificar"
// @Success 200 {object} animalResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /animals/{animalID} [patch]
func (h *handlers) updateAnimal(w http.ResponseWriter, r *http.Request) {
	var req updateAnimalRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid json")
		return
	}

	a, err := h.svc.UpdateAnimal(r.Context(), chi.URLParam(r, "animalID"), req.patch())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnimalResponse(a))
}

// deleteAnimal godoc
// @Summary Borrar animal
// @Description Borra el animal junto con todas sus reservas y los gastos de esas reservas.
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} cascadeResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /animals/{animalID} [delete]
func (h *handlers) deleteAnimal(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.DeleteAnimal(r.Context(), chi.URLParam(r, "animalID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCascadeResponse(c))
}

// animalStats godoc
// @Summary Historial de un animal
// @Description Reservas completadas, días totales e ingreso acumulado.
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} animalStatsResponse
// @Failure 404 {object} errorResponse
// @Router /animals/{animalID}/stats [get]
func (h *handlers) animalStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.AnimalStats(chi.URLParam(r, "animalID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponse(st))
}

// animalBookings godoc
// @Summary Reservas de un animal
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {array} bookingResponse
// @Failure 404 {object} errorResponse
// @Router /animals/{animalID}/bookings [get]
func (h *handlers) animalBookings(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.BookingsForAnimal(chi.URLParam(r, "animalID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponses(list))
}

// ---- reservas ----

// listBookings godoc
// @Summary Listar reservas
// @Description Más recientes primero (check_in descendente).
// @Tags bookings
// @Produce json
// @Param status query string false "upcoming | active | completed | cancelled"
// @Param animal_id query string false "Filtrar por animal"
// @Success 200 {array} bookingResponse
// @Failure 400 {object} errorResponse
// @Router /bookings [get]
func (h *handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	f := bookings.Filter{AnimalID: strings.TrimSpace(r.URL.Query().Get("animal_id"))}
	if v := strings.TrimSpace(r.URL.Query().Get("status")); v != "" {
		st := bookings.Status(strings.ToLower(v))
		if !st.Valid() {
			badRequest(w, "status must be upcoming, active, completed or cancelled")
			return
		}
		f.Status = &st
	}
	writeJSON(w, http.StatusOK, toBookingResponses(h.svc.Bookings(f)))
}

// createBooking godoc
// @Summary Crear reserva
// @Description La tarifa base se copia del tamaño del animal al momento de crear. Fechas YYYY-MM-DD, rango inclusive.
// @Tags bookings
// @Accept json
// @Produce json
// @Param payload body createBookingRequest true "Datos de la reserva"
// @Success 201 {object} bookingResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /bookings [post]
func (h *handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid json (dates must be YYYY-MM-DD, amounts integers)")
		return
	}

	b, err := h.svc.CreateBooking(r.Context(), CreateBookingInput{
		AnimalID:          req.AnimalID,
		CheckIn:           req.CheckIn,
		CheckOut:          req.CheckOut,
		Status:            req.Status,
		CustomPricePerDay: req.CustomPricePerDay,
		HolidayDays:       req.HolidayDays,
		HolidayPriceAdd:   req.HolidayPriceAdd,
		Notes:             req.Notes,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.svc.log.Info("booking created", map[string]any{"booking_id": b.ID, "animal_id": b.AnimalID, "operator": operator(r)})
	writeJSON(w, http.StatusCreated, toBookingResponse(b))
}

// getBooking godoc
// @Summary Detalle de reserva
// @Tags bookings
// @Produce json
// @Param bookingID path string true "ID de la reserva"
// @Success 200 {object} bookingResponse
// @Failure 404 {object} errorResponse
// @Router /bookings/{bookingID} [get]
func (h *handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Booking(chi.URLParam(r, "bookingID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(b))
}

// updateBooking godoc
// @Summary Actualizar reserva
// @Description PATCH parcial. custom_price_per_day: null limpia el precio especial; ausente no lo toca. El estado solo cambia si se envía.
// @Tags bookings
// @Accept json
// @Produce json
// @Param bookingID path string true "ID de la reserva"
// @Param payload body updateBookingRequest true "Campos a modificar"
// @Success 200 {object} bookingResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /bookings/{bookingID} [patch]
func (h *handlers) updateBooking(w http.ResponseWriter, r *http.Request) {
	var req updateBookingRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid json (dates must be YYYY-MM-DD, amounts integers)")
		return
	}

	b, err := h.svc.UpdateBooking(r.Context(), chi.URLParam(r, "bookingID"), req.patch())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(b))
}

// deleteBooking godoc
// @Summary Borrar reserva
// @Description Borra la reserva y sus gastos.
// @Tags bookings
// @Produce json
// @Param bookingID path string true "ID de la reserva"
// @Success 200 {object} cascadeResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /bookings/{bookingID} [delete]
func (h *handlers) deleteBooking(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.DeleteBooking(r.Context(), chi.URLParam(r, "bookingID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCascadeResponse(c))
}

// receipt godoc
// @Summary Recibo de una reserva
// @Description Desglose: días normales, días feriados con recargo, gastos descontados y total neto (puede ser negativo).
// @Tags bookings
// @Produce json
// @Param bookingID path string true "ID de la reserva"
// @Success 200 {object} receiptResponse
// @Failure 404 {object} errorResponse
// @Router /bookings/{bookingID}/receipt [get]
func (h *handlers) receipt(w http.ResponseWriter, r *http.Request) {
	rc, err := h.svc.Receipt(chi.URLParam(r, "bookingID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReceiptResponse(rc))
}

// ---- gastos ----

// listExpenses godoc
// @Summary Gastos de una reserva
// @Tags expenses
// @Produce json
// @Param bookingID path string true "ID de la reserva"
// @Success 200 {array} expenseResponse
// @Failure 404 {object} errorResponse
// @Router /bookings/{bookingID}/expenses [get]
func (h *handlers) listExpenses(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Expenses(chi.URLParam(r, "bookingID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]expenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// createExpense godoc
// @Summary Agregar gasto
// @Description Gasto incidental de la estadía (veterinario, comida, ...). Se descuenta del total.
// @Tags expenses
// @Accept json
// @Produce json
// @Param bookingID path string true "ID de la reserva"
// @Param payload body createExpenseRequest true "Gasto"
// @Success 201 {object} expenseResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /bookings/{bookingID}/expenses [post]
func (h *handlers) createExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid json (amount must be an integer)")
		return
	}

	e, err := h.svc.CreateExpense(r.Context(), CreateExpenseInput{
		BookingID: chi.URLParam(r, "bookingID"),
		Name:      req.Name,
		Amount:    req.Amount,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExpenseResponse(e))
}

// updateExpense godoc
// @Summary Actualizar gasto
// @Tags expenses
// @Accept json
// @Produce json
// @Param expenseID path string true "ID del gasto"
// @Param payload body updateExpenseRequest true "Campos a modificar"
// @Success 200 {object} expenseResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /expenses/{expenseID} [patch]
func (h *handlers) updateExpense(w http.ResponseWriter, r *http.Request) {
	var req updateExpenseRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid json")
		return
	}

	e, err := h.svc.UpdateExpense(r.Context(), chi.URLParam(r, "expenseID"), bookings.ExpensePatch{
		Name:   req.Name,
		Amount: req.Amount,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toExpenseResponse(e))
}

// deleteExpense godoc
// @Summary Borrar gasto
// @Tags expenses
// @Param expenseID path string true "ID del gasto"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /expenses/{expenseID} [delete]
func (h *handlers) deleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteExpense(r.Context(), chi.URLParam(r, "expenseID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
