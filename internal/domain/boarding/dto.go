package boarding

import (
	"bytes"
	"encoding/json"
	"time"

	"pet-boarding/internal/domain/animals"
	"pet-boarding/internal/domain/bookings"
	"pet-boarding/internal/domain/calendar"
	"pet-boarding/internal/domain/days"
	"pet-boarding/internal/domain/money"
	"pet-boarding/internal/domain/pricing"
	"pet-boarding/internal/domain/registry"
	"pet-boarding/internal/domain/reminders"
	"pet-boarding/internal/domain/reports"
)

// ---- animales ----

type createAnimalRequest struct {
	Name       string            `json:"name"`
	SizeClass  animals.SizeClass `json:"size_class"`
	Breed      string            `json:"breed"`
	Comment    string            `json:"comment"`
	OwnerName  string            `json:"owner_name"`
	OwnerPhone string            `json:"owner_phone"`
}

type updateAnimalRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name       *string            `json:"name"`
	SizeClass  *animals.SizeClass `json:"size_class"`
	Breed      *string            `json:"breed"`
	Comment    *string            `json:"comment"`
	OwnerName  *string            `json:"owner_name"`
	OwnerPhone *string            `json:"owner_phone"`
}

func (r updateAnimalRequest) patch() animals.Patch {
	return animals.Patch{
		Name:       r.Name,
		SizeClass:  r.SizeClass,
		Breed:      r.Breed,
		Comment:    r.Comment,
		OwnerName:  r.OwnerName,
		OwnerPhone: r.OwnerPhone,
	}
}

type animalResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	SizeClass  animals.SizeClass `json:"size_class"`
	BaseRate   money.Money       `json:"base_rate"`
	Breed      string            `json:"breed"`
	Comment    string            `json:"comment"`
	OwnerName  string            `json:"owner_name"`
	OwnerPhone string            `json:"owner_phone"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func toAnimalResponse(a animals.Animal) animalResponse {
	rate, _ := animals.BaseRate(a.SizeClass)
	return animalResponse{
		ID:         a.ID,
		Name:       a.Name,
		SizeClass:  a.SizeClass,
		BaseRate:   rate,
		Breed:      a.Breed,
		Comment:    a.Comment,
		OwnerName:  a.OwnerName,
		OwnerPhone: a.OwnerPhone,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

type animalStatsResponse struct {
	AnimalID          string      `json:"animal_id"`
	CompletedBookings int         `json:"completed_bookings"`
	TotalDays         int         `json:"total_days"`
	Revenue           money.Money `json:"revenue"`
}

func toStatsResponse(st registry.AnimalStats) animalStatsResponse {
	return animalStatsResponse{
		AnimalID:          st.AnimalID,
		CompletedBookings: st.CompletedBookings,
		TotalDays:         st.TotalDays,
		Revenue:           st.Revenue,
	}
}

// ---- reservas ----

type createBookingRequest struct {
	AnimalID          string          `json:"animal_id"`
	CheckIn           days.Date       `json:"check_in" swaggertype:"string" example:"2024-03-01"`
	CheckOut          days.Date       `json:"check_out" swaggertype:"string" example:"2024-03-10"`
	Status            bookings.Status `json:"status"`
	CustomPricePerDay *money.Money    `json:"custom_price_per_day"`
	HolidayDays       int             `json:"holiday_days"`
	HolidayPriceAdd   money.Money     `json:"holiday_price_add"`
	Notes             string          `json:"notes"`
}

// nullableMoney distingue campo ausente de null explícito.
// encoding/json llama a UnmarshalJSON también con null.
type nullableMoney struct {
	bookings.NullableMoney
}

func (n *nullableMoney) UnmarshalJSON(b []byte) error {
	n.Present = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v money.Money
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

type updateBookingRequest struct {
	AnimalID          *string          `json:"animal_id"`
	CheckIn           *days.Date       `json:"check_in" swaggertype:"string"`
	CheckOut          *days.Date       `json:"check_out" swaggertype:"string"`
	Status            *bookings.Status `json:"status"`
	CustomPricePerDay nullableMoney    `json:"custom_price_per_day" swaggertype:"integer"`
	HolidayDays       *int             `json:"holiday_days"`
	HolidayPriceAdd   *money.Money     `json:"holiday_price_add"`
	Notes             *string          `json:"notes"`
}

func (r updateBookingRequest) patch() bookings.Patch {
	return bookings.Patch{
		AnimalID:          r.AnimalID,
		CheckIn:           r.CheckIn,
		CheckOut:          r.CheckOut,
		Status:            r.Status,
		CustomPricePerDay: r.CustomPricePerDay.NullableMoney,
		HolidayDays:       r.HolidayDays,
		HolidayPriceAdd:   r.HolidayPriceAdd,
		Notes:             r.Notes,
	}
}

type bookingResponse struct {
	ID                string          `json:"id"`
	AnimalID          string          `json:"animal_id"`
	CheckIn           days.Date       `json:"check_in" swaggertype:"string"`
	CheckOut          days.Date       `json:"check_out" swaggertype:"string"`
	Status            bookings.Status `json:"status"`
	TotalDays         int             `json:"total_days"`
	BasePricePerDay   money.Money     `json:"base_price_per_day"`
	CustomPricePerDay *money.Money    `json:"custom_price_per_day"`
	HolidayDays       int             `json:"holiday_days"`
	HolidayPriceAdd   money.Money     `json:"holiday_price_add"`
	Notes             string          `json:"notes"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func toBookingResponse(b bookings.Booking) bookingResponse {
	return bookingResponse{
		ID:                b.ID,
		AnimalID:          b.AnimalID,
		CheckIn:           b.CheckIn,
		CheckOut:          b.CheckOut,
		Status:            b.Status,
		TotalDays:         b.TotalDays(),
		BasePricePerDay:   b.BasePricePerDay,
		CustomPricePerDay: b.CustomPricePerDay,
		HolidayDays:       b.HolidayDays,
		HolidayPriceAdd:   b.HolidayPriceAdd,
		Notes:             b.Notes,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func toBookingResponses(list []bookings.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBookingResponse(b))
	}
	return out
}

type cascadeResponse struct {
	AnimalID   string   `json:"animal_id,omitempty"`
	BookingIDs []string `json:"booking_ids"`
	ExpenseIDs []string `json:"expense_ids"`
}

func toCascadeResponse(c registry.Cascade) cascadeResponse {
	return cascadeResponse{AnimalID: c.AnimalID, BookingIDs: c.BookingIDs, ExpenseIDs: c.ExpenseIDs}
}

type expenseLineResponse struct {
	ExpenseID string      `json:"expense_id"`
	Name      string      `json:"name"`
	Amount    money.Money `json:"amount"`
}

type receiptResponse struct {
	BookingID     string                `json:"booking_id"`
	PricePerDay   money.Money           `json:"price_per_day"`
	CustomPrice   bool                  `json:"custom_price"`
	TotalDays     int                   `json:"total_days"`
	RegularDays   int                   `json:"regular_days"`
	RegularTotal  money.Money           `json:"regular_total"`
	HolidayDays   int                   `json:"holiday_days"`
	HolidayRate   money.Money           `json:"holiday_rate"`
	HolidayTotal  money.Money           `json:"holiday_total"`
	Subtotal      money.Money           `json:"subtotal"`
	Expenses      []expenseLineResponse `json:"expenses"`
	ExpensesTotal money.Money           `json:"expenses_total"`
	Total         money.Money           `json:"total"`
	TotalText     string                `json:"total_text" example:"21 000"`
}

func toReceiptResponse(r pricing.Receipt) receiptResponse {
	lines := make([]expenseLineResponse, 0, len(r.Expenses))
	for _, l := range r.Expenses {
		lines = append(lines, expenseLineResponse{ExpenseID: l.ExpenseID, Name: l.Name, Amount: l.Amount})
	}
	return receiptResponse{
		BookingID:     r.BookingID,
		PricePerDay:   r.PricePerDay,
		CustomPrice:   r.CustomPrice,
		TotalDays:     r.TotalDays,
		RegularDays:   r.RegularDays,
		RegularTotal:  r.RegularTotal,
		HolidayDays:   r.HolidayDays,
		HolidayRate:   r.HolidayRate,
		HolidayTotal:  r.HolidayTotal,
		Subtotal:      r.Subtotal,
		Expenses:      lines,
		ExpensesTotal: r.ExpensesTotal,
		Total:         r.Total,
		TotalText:     r.Total.String(),
	}
}

// ---- gastos ----

type createExpenseRequest struct {
	Name   string      `json:"name"`
	Amount money.Money `json:"amount"`
}

type updateExpenseRequest struct {
	Name   *string      `json:"name"`
	Amount *money.Money `json:"amount"`
}

type expenseResponse struct {
	ID        string      `json:"id"`
	BookingID string      `json:"booking_id"`
	Name      string      `json:"name"`
	Amount    money.Money `json:"amount"`
	CreatedAt time.Time   `json:"created_at"`
}

func toExpenseResponse(e bookings.Expense) expenseResponse {
	return expenseResponse{ID: e.ID, BookingID: e.BookingID, Name: e.Name, Amount: e.Amount, CreatedAt: e.CreatedAt}
}

// ---- vistas ----

type occupantResponse struct {
	BookingID  string          `json:"booking_id"`
	AnimalID   string          `json:"animal_id"`
	AnimalName string          `json:"animal_name"`
	Status     bookings.Status `json:"status"`
	ColorIndex int             `json:"color_index"`
	Color      string          `json:"color"`
}

type dayResponse struct {
	Date      days.Date          `json:"date" swaggertype:"string"`
	Occupants []occupantResponse `json:"occupants"`
}

func toDayResponses(grid []calendar.Day) []dayResponse {
	out := make([]dayResponse, 0, len(grid))
	for _, d := range grid {
		occ := make([]occupantResponse, 0, len(d.Occupants))
		for _, o := range d.Occupants {
			occ = append(occ, occupantResponse{
				BookingID:  o.Booking.ID,
				AnimalID:   o.Booking.AnimalID,
				AnimalName: o.AnimalName,
				Status:     o.Booking.Status,
				ColorIndex: o.ColorIndex,
				Color:      o.Color,
			})
		}
		out = append(out, dayResponse{Date: d.Date, Occupants: occ})
	}
	return out
}

type reminderResponse struct {
	Kind       reminders.Kind `json:"kind"`
	BookingID  string         `json:"booking_id"`
	AnimalID   string         `json:"animal_id"`
	AnimalName string         `json:"animal_name"`
	Date       days.Date      `json:"date" swaggertype:"string"`
	Text       string         `json:"text"`
}

func toReminderResponses(list []reminders.Reminder) []reminderResponse {
	out := make([]reminderResponse, 0, len(list))
	for _, r := range list {
		out = append(out, reminderResponse{
			Kind:       r.Kind,
			BookingID:  r.BookingID,
			AnimalID:   r.AnimalID,
			AnimalName: r.AnimalName,
			Date:       r.Date,
			Text:       r.Text(),
		})
	}
	return out
}

type animalRevenueResponse struct {
	AnimalID   string      `json:"animal_id"`
	AnimalName string      `json:"animal_name"`
	Revenue    money.Money `json:"revenue"`
	Bookings   int         `json:"bookings"`
}

type summaryResponse struct {
	From             days.Date               `json:"from" swaggertype:"string"`
	To               days.Date               `json:"to" swaggertype:"string"`
	CompletedRevenue money.Money             `json:"completed_revenue"`
	PotentialRevenue money.Money             `json:"potential_revenue"`
	TotalExpenses    money.Money             `json:"total_expenses"`
	BookingsCount    int                     `json:"bookings_count"`
	CompletedCount   int                     `json:"completed_count"`
	PotentialCount   int                     `json:"potential_count"`
	TopAnimals       []animalRevenueResponse `json:"top_animals"`
}

func toSummaryResponse(s reports.Summary) summaryResponse {
	top := make([]animalRevenueResponse, 0, len(s.TopAnimals))
	for _, r := range s.TopAnimals {
		top = append(top, animalRevenueResponse{AnimalID: r.AnimalID, AnimalName: r.AnimalName, Revenue: r.Revenue, Bookings: r.Bookings})
	}
	return summaryResponse{
		From:             s.From,
		To:               s.To,
		CompletedRevenue: s.CompletedRevenue,
		PotentialRevenue: s.PotentialRevenue,
		TotalExpenses:    s.TotalExpenses,
		BookingsCount:    s.BookingsCount,
		CompletedCount:   s.CompletedCount,
		PotentialCount:   s.PotentialCount,
		TopAnimals:       top,
	}
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
	Field  string `json:"field,omitempty"`
}
