package pricing

import (
	"pet-boarding/internal/domain/bookings"
	"pet-boarding/internal/domain/money"
)

// ExpenseLine es una línea descontada en el recibo.
type ExpenseLine struct {
	ExpenseID string
	Name      string
	Amount    money.Money
}

// Receipt desglosa el total de una reserva línea por línea.
type Receipt struct {
	BookingID string

	PricePerDay money.Money
	CustomPrice bool

	TotalDays    int
	RegularDays  int
	RegularTotal money.Money

	HolidayDays  int
	HolidayRate  money.Money // precio diario + recargo
	HolidayTotal money.Money

	Subtotal      money.Money // estadía sin gastos
	Expenses      []ExpenseLine
	ExpensesTotal money.Money

	Total money.Money
}

// Breakdown calcula el recibo completo. Es una función pura.
// related son los gastos de la reserva; el llamador hace el join.
//
// Se asume que la reserva ya pasó la validación del registro
// (HolidayDays dentro de [0, TotalDays]); acá no se corrige nada.
func Breakdown(b bookings.Booking, related []bookings.Expense) Receipt {
	price := b.PricePerDay()
	total := b.TotalDays()
	regular := total - b.HolidayDays

	r := Receipt{
		BookingID:   b.ID,
		PricePerDay: price,
		CustomPrice: b.CustomPricePerDay != nil,
		TotalDays:   total,
		RegularDays: regular,
		HolidayDays: b.HolidayDays,
		HolidayRate: price + b.HolidayPriceAdd,
	}
	r.RegularTotal = price.Mul(regular)
	r.HolidayTotal = r.HolidayRate.Mul(b.HolidayDays)
	r.Subtotal = r.RegularTotal + r.HolidayTotal

	r.Expenses = make([]ExpenseLine, 0, len(related))
	for _, e := range related {
		r.Expenses = append(r.Expenses, ExpenseLine{ExpenseID: e.ID, Name: e.Name, Amount: e.Amount})
		r.ExpensesTotal += e.Amount
	}

	// Puede quedar negativo (estadía a pérdida); no se recorta a cero.
	r.Total = r.Subtotal - r.ExpensesTotal
	return r
}

func ComputeTotal(b bookings.Booking, related []bookings.Expense) money.Money {
	return Breakdown(b, related).Total
}

// SumExpenses suma montos sin mirar a qué reserva pertenecen.
func SumExpenses(items []bookings.Expense) money.Money {
	var total money.Money
	for _, e := range items {
		total += e.Amount
	}
	return total
}
