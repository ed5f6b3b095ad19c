package registry

import (
	"strings"

	"pet-boarding/internal/domain/animals"
	"pet-boarding/internal/domain/bookings"
	"pet-boarding/internal/domain/money"
)

// Las funciones validate* no miran referencias; eso lo hace el Registry con el lock tomado.

func normalizeAnimal(a animals.Animal) animals.Animal {
	a.ID = strings.TrimSpace(a.ID)
	a.Name = strings.TrimSpace(a.Name)
	a.SizeClass = animals.SizeClass(strings.ToLower(strings.TrimSpace(string(a.SizeClass))))
	a.Breed = strings.TrimSpace(a.Breed)
	a.Comment = strings.TrimSpace(a.Comment)
	a.OwnerName = strings.TrimSpace(a.OwnerName)
	a.OwnerPhone = strings.TrimSpace(a.OwnerPhone)
	return a
}

func validateAnimal(a animals.Animal) error {
	if a.ID == "" {
		return invalid(ReasonMissingID, "id", "animal id required")
	}
	if a.Name == "" {
		return invalid(ReasonMissingName, "name", "animal name required")
	}
	if !a.SizeClass.Valid() {
		return invalid(ReasonInvalidSizeClass, "size_class", "must be small, medium or large")
	}
	return nil
}

func normalizeBooking(b bookings.Booking) bookings.Booking {
	b = b.Clone()
	b.ID = strings.TrimSpace(b.ID)
	b.AnimalID = strings.TrimSpace(b.AnimalID)
	b.Notes = strings.TrimSpace(b.Notes)
	return b
}

// Topes de una reserva: con ellos TotalPrice no desborda int64.
const (
	MaxStayDays    = 3660
	MaxPricePerDay = money.Money(100_000_000)
)

func validateBooking(b bookings.Booking) error {
	if b.ID == "" {
		return invalid(ReasonMissingID, "id", "booking id required")
	}
	if b.CheckIn.IsZero() {
		return invalid(ReasonMissingDate, "check_in", "check-in date required")
	}
	if b.CheckOut.IsZero() {
		return invalid(ReasonMissingDate, "check_out", "check-out date required")
	}
	if b.CheckOut.Before(b.CheckIn) {
		return invalid(ReasonInvalidDateRange, "check_out", "check-out must not precede check-in")
	}
	if b.TotalDays() > MaxStayDays {
		return invalid(ReasonStayTooLong, "check_out", "stay too long")
	}
	if !b.Status.Valid() {
		return invalid(ReasonInvalidStatus, "status", "must be upcoming, active, completed or cancelled")
	}
	if b.BasePricePerDay <= 0 {
		return invalid(ReasonInvalidPrice, "base_price_per_day", "must be positive")
	}
	if b.CustomPricePerDay != nil && *b.CustomPricePerDay <= 0 {
		return invalid(ReasonInvalidPrice, "custom_price_per_day", "must be positive or null")
	}
	if b.HolidayDays < 0 || b.HolidayDays > b.TotalDays() {
		return invalid(ReasonHolidayDaysRange, "holiday_days", "must be between 0 and the stay length")
	}
	if b.HolidayPriceAdd < 0 {
		return invalid(ReasonNegativeSurcharge, "holiday_price_add", "must not be negative")
	}
	if b.BasePricePerDay > MaxPricePerDay ||
		(b.CustomPricePerDay != nil && *b.CustomPricePerDay > MaxPricePerDay) ||
		b.HolidayPriceAdd > MaxPricePerDay {
		return invalid(ReasonPriceTooHigh, "price_per_day", "price per day too high")
	}
	return nil
}

func normalizeExpense(e bookings.Expense) bookings.Expense {
	e.ID = strings.TrimSpace(e.ID)
	e.BookingID = strings.TrimSpace(e.BookingID)
	e.Name = strings.TrimSpace(e.Name)
	return e
}

func validateExpense(e bookings.Expense) error {
	if e.ID == "" {
		return invalid(ReasonMissingID, "id", "expense id required")
	}
	if e.Name == "" {
		return invalid(ReasonMissingName, "name", "expense name required")
	}
	if e.Amount < 0 {
		return invalid(ReasonNegativeAmount, "amount", "must not be negative")
	}
	return nil
}
