package reports

import (
	"errors"
	"sort"
	"strings"

	"pet-boarding/internal/domain/animals"
	"pet-boarding/internal/domain/bookings"
	"pet-boarding/internal/domain/days"
	"pet-boarding/internal/domain/money"
	"pet-boarding/internal/domain/pricing"
)

const TopN = 5

var ErrInvalidPeriod = errors.New("invalid period")

// AnimalRevenue es una fila del ranking.
type AnimalRevenue struct {
	AnimalID   string
	AnimalName string
	Revenue    money.Money
	Bookings   int // reservas completadas en el rango
}

type Summary struct {
	From days.Date
	To   days.Date

	CompletedRevenue money.Money
	PotentialRevenue money.Money // upcoming + active
	TotalExpenses    money.Money // solo gastos de reservas completadas

	BookingsCount  int
	CompletedCount int
	PotentialCount int

	TopAnimals []AnimalRevenue
}

// Summarize agrega sobre las reservas con check-in en [from, to].
// Las canceladas entran en BookingsCount y en nada más.
func Summarize(list []bookings.Booking, expenses []bookings.Expense, pets []animals.Animal, from, to days.Date) Summary {
	byBooking := map[string][]bookings.Expense{}
	for _, e := range expenses {
		byBooking[e.BookingID] = append(byBooking[e.BookingID], e)
	}

	rank := make(map[string]*AnimalRevenue, len(pets))
	for _, a := range pets {
		rank[a.ID] = &AnimalRevenue{AnimalID: a.ID, AnimalName: a.Name}
	}

	s := Summary{From: from, To: to}
	for _, b := range list {
		if !days.InRange(b.CheckIn, from, to) {
			continue
		}
		s.BookingsCount++

		related := byBooking[b.ID]
		switch b.Status {
		case bookings.StatusCompleted:
			total := pricing.ComputeTotal(b, related)
			s.CompletedCount++
			s.CompletedRevenue += total
			s.TotalExpenses += pricing.SumExpenses(related)
			if row, ok := rank[b.AnimalID]; ok {
				row.Revenue += total
				row.Bookings++
			}
		case bookings.StatusUpcoming, bookings.StatusActive:
			s.PotentialCount++
			s.PotentialRevenue += pricing.ComputeTotal(b, related)
		}
	}

	s.TopAnimals = top(rank, TopN)
	return s
}

func top(rank map[string]*AnimalRevenue, n int) []AnimalRevenue {
	rows := make([]AnimalRevenue, 0, len(rank))
	for _, r := range rank {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Revenue != rows[j].Revenue {
			return rows[i].Revenue > rows[j].Revenue
		}
		return rows[i].AnimalID < rows[j].AnimalID
	})
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// PeriodKind
// @Enum week, month, year
type PeriodKind string

const (
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
	PeriodYear  PeriodKind = "year"
)

// Period devuelve el rango cerrado del preset que contiene ref.
// La semana arranca el lunes.
func Period(kind PeriodKind, ref days.Date) (days.Date, days.Date, error) {
	switch PeriodKind(strings.ToLower(strings.TrimSpace(string(kind)))) {
	case PeriodWeek:
		from, to := days.WeekBounds(ref)
		return from, to, nil
	case PeriodMonth:
		from, to := days.MonthBounds(ref)
		return from, to, nil
	case PeriodYear:
		from, to := days.YearBounds(ref)
		return from, to, nil
	default:
		return days.Date{}, days.Date{}, ErrInvalidPeriod
	}
}
