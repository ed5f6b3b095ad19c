package calendar

import (
	"sort"

	"pet-boarding/internal/domain/animals"
	"pet-boarding/internal/domain/bookings"
	"pet-boarding/internal/domain/days"
)

// Palette: un color por animal, rotando.
var Palette = []string{
	"#4c9aff", "#9d5fff", "#ff5fa2", "#00d4aa", "#ffb84d",
	"#ff5757", "#5fedff", "#a8ff5f", "#ff9d5f", "#d45fff",
}

// Occupant es una reserva vista en una celda del calendario.
type Occupant struct {
	Booking    bookings.Booking
	AnimalName string
	ColorIndex int
	Color      string
}

type Day struct {
	Date      days.Date
	Occupants []Occupant
}

// OccupancyForDay devuelve las reservas no canceladas que cubren day.
// El orden es canónico (check-in, id), no depende del orden de entrada.
func OccupancyForDay(day days.Date, list []bookings.Booking) []bookings.Booking {
	out := make([]bookings.Booking, 0)
	for _, b := range list {
		if b.Occupies(day) {
			out = append(out, b)
		}
	}
	sortCanonical(out)
	return out
}

// ColorIndex asigna a cada animal su posición en el orden por nombre, módulo la paleta.
func ColorIndex(list []animals.Animal) map[string]int {
	sorted := append([]animals.Animal(nil), list...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].ID < sorted[j].ID
	})
	idx := make(map[string]int, len(sorted))
	for i, a := range sorted {
		idx[a.ID] = i % len(Palette)
	}
	return idx
}

// MonthGrid devuelve exactamente los días del mes de anchor.
func MonthGrid(anchor days.Date, list []bookings.Booking, pets []animals.Animal) []Day {
	first, last := days.MonthBounds(anchor)
	return RangeGrid(first, last, list, pets)
}

// RangeGrid funciona para cualquier rango cerrado; from > to da una grilla vacía.
func RangeGrid(from, to days.Date, list []bookings.Booking, pets []animals.Animal) []Day {
	colors := ColorIndex(pets)
	names := make(map[string]string, len(pets))
	for _, a := range pets {
		names[a.ID] = a.Name
	}

	// solo las candidatas del rango; el resto nunca aparece
	candidates := make([]bookings.Booking, 0)
	for _, b := range list {
		if b.Status == bookings.StatusCancelled {
			continue
		}
		if b.CheckOut.Before(from) || b.CheckIn.After(to) {
			continue
		}
		candidates = append(candidates, b)
	}
	sortCanonical(candidates)

	grid := make([]Day, 0, days.Count(from, to))
	for _, d := range days.Each(from, to) {
		cell := Day{Date: d, Occupants: []Occupant{}}
		for _, b := range candidates {
			if !b.Occupies(d) {
				continue
			}
			ci := colors[b.AnimalID] // animal desconocido: color 0
			cell.Occupants = append(cell.Occupants, Occupant{
				Booking:    b,
				AnimalName: names[b.AnimalID],
				ColorIndex: ci,
				Color:      Palette[ci],
			})
		}
		grid = append(grid, cell)
	}
	return grid
}

func sortCanonical(list []bookings.Booking) {
	sort.Slice(list, func(i, j int) bool {
		if c := list[i].CheckIn.Compare(list[j].CheckIn); c != 0 {
			return c < 0
		}
		return list[i].ID < list[j].ID
	})
}
