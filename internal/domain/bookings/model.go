package bookings

import (
	"time"

	"pet-boarding/internal/domain/days"
	"pet-boarding/internal/domain/money"
)

// Status lo fija el operador; nunca se deriva de las fechas.
// @Enum upcoming, active, completed, cancelled
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusUpcoming, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Booking es una estadía reservada para un animal, rango de días cerrado.
type Booking struct {
	ID       string
	AnimalID string

	CheckIn  days.Date
	CheckOut days.Date
	Status   Status

	// Snapshot de la tarifa del animal al crear la reserva.
	BasePricePerDay   money.Money
	CustomPricePerDay *money.Money

	HolidayDays     int
	HolidayPriceAdd money.Money

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalDays cuenta días inclusive: el día de entrada y el de salida se cobran.
func (b Booking) TotalDays() int {
	return days.Count(b.CheckIn, b.CheckOut)
}

// PricePerDay aplica el override si existe.
func (b Booking) PricePerDay() money.Money {
	if b.CustomPricePerDay != nil {
		return *b.CustomPricePerDay
	}
	return b.BasePricePerDay
}

func (b Booking) Occupies(d days.Date) bool {
	return b.Status != StatusCancelled && days.InRange(d, b.CheckIn, b.CheckOut)
}

// Clone copia también el puntero del precio custom.
func (b Booking) Clone() Booking {
	if b.CustomPricePerDay != nil {
		v := *b.CustomPricePerDay
		b.CustomPricePerDay = &v
	}
	return b
}

// NullableMoney distingue "no enviado" de "enviado null" en un PATCH.
type NullableMoney struct {
	Present bool
	Value   *money.Money
}

type Patch struct {
	AnimalID          *string
	CheckIn           *days.Date
	CheckOut          *days.Date
	Status            *Status
	CustomPricePerDay NullableMoney
	HolidayDays       *int
	HolidayPriceAdd   *money.Money
	Notes             *string
}

func (p Patch) Apply(b Booking) Booking {
	b = b.Clone()
	if p.AnimalID != nil {
		b.AnimalID = *p.AnimalID
	}
	if p.CheckIn != nil {
		b.CheckIn = *p.CheckIn
	}
	if p.CheckOut != nil {
		b.CheckOut = *p.CheckOut
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.CustomPricePerDay.Present {
		if p.CustomPricePerDay.Value == nil {
			b.CustomPricePerDay = nil
		} else {
			v := *p.CustomPricePerDay.Value
			b.CustomPricePerDay = &v
		}
	}
	if p.HolidayDays != nil {
		b.HolidayDays = *p.HolidayDays
	}
	if p.HolidayPriceAdd != nil {
		b.HolidayPriceAdd = *p.HolidayPriceAdd
	}
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
	return b
}

// Expense es un costo incidental de la estadía; se descuenta del total.
type Expense struct {
	ID        string
	BookingID string

	Name   string
	Amount money.Money

	CreatedAt time.Time
}

type ExpensePatch struct {
	Name   *string
	Amount *money.Money
}

func (p ExpensePatch) Apply(e Expense) Expense {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	return e
}

// Filter para listados; Status nil = todos.
type Filter struct {
	Status   *Status
	AnimalID string
}
