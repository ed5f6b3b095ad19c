package reminders

import (
	"fmt"
	"sort"
	"time"

	"pet-boarding/internal/domain/animals"
	"pet-boarding/internal/domain/bookings"
	"pet-boarding/internal/domain/days"
)

// Kind
// @Enum check-in, check-out
type Kind string

const (
	KindCheckIn  Kind = "check-in"
	KindCheckOut Kind = "check-out"
)

// Reminder avisa de un movimiento previsto para mañana.
type Reminder struct {
	Kind       Kind
	BookingID  string
	AnimalID   string
	AnimalName string
	Date       days.Date
}

// Key identifica un aviso para no entregarlo dos veces.
func (r Reminder) Key() string {
	return string(r.Kind) + "|" + r.BookingID + "|" + r.Date.String()
}

// Text es el mensaje que se manda al operador.
func (r Reminder) Text() string {
	name := r.AnimalName
	if name == "" {
		name = r.AnimalID
	}
	switch r.Kind {
	case KindCheckIn:
		return fmt.Sprintf("Mañana llega %s (%s)", name, r.Date)
	default:
		return fmt.Sprintf("Mañana se retira %s (%s)", name, r.Date)
	}
}

// Pending calcula los avisos de mañana respecto de ref. No guarda estado:
// llamarla dos veces con la misma entrada da lo mismo.
// El estado de la reserva nunca se cambia acá.
func Pending(list []bookings.Booking, pets []animals.Animal, ref time.Time) []Reminder {
	tomorrow := days.Of(ref).AddDays(1)

	names := make(map[string]string, len(pets))
	for _, a := range pets {
		names[a.ID] = a.Name
	}

	out := make([]Reminder, 0)
	for _, b := range list {
		if b.CheckIn.Equal(tomorrow) && b.Status == bookings.StatusUpcoming {
			out = append(out, Reminder{Kind: KindCheckIn, BookingID: b.ID, AnimalID: b.AnimalID, AnimalName: names[b.AnimalID], Date: tomorrow})
		}
		if b.CheckOut.Equal(tomorrow) && b.Status == bookings.StatusActive {
			out = append(out, Reminder{Kind: KindCheckOut, BookingID: b.ID, AnimalID: b.AnimalID, AnimalName: names[b.AnimalID], Date: tomorrow})
		}
	}

	// check-in antes que check-out, después por id
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind == KindCheckIn
		}
		return out[i].BookingID < out[j].BookingID
	})
	return out
}
