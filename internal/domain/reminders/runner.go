package reminders

import (
	"context"
	"strconv"
	"sync"
	"time"

	"pet-boarding/internal/domain/animals"
	"pet-boarding/internal/domain/bookings"
	"pet-boarding/internal/domain/days"
	"pet-boarding/internal/platform/logger"
)

const DefaultInterval = 60 * time.Second

// Notifier entrega un aviso al operador (log, Telegram, ...).
type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

// Source da la foto actual de reservas y animales.
type Source interface {
	Bookings(f bookings.Filter) []bookings.Booking
	Animals() []animals.Animal
}

// Runner corre Pending cada Interval y entrega cada aviso una sola vez por notifier.
type Runner struct {
	src       Source
	notifiers []Notifier
	log       logger.Logger
	interval  time.Duration
	now       func() time.Time

	// OnScan se llama tras cada pasada con los avisos entregados (métricas).
	OnScan func(delivered int)

	mu        sync.Mutex
	delivered map[string]days.Date
}

func NewRunner(src Source, log logger.Logger, interval time.Duration, notifiers ...Notifier) *Runner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Runner{
		src:       src,
		notifiers: notifiers,
		log:       log,
		interval:  interval,
		now:       time.Now,
		delivered: map[string]days.Date{},
	}
}

// Run bloquea hasta que ctx se cancela. Hace una pasada inmediata al arrancar.
func (r *Runner) Run(ctx context.Context) {
	r.log.Info("reminder runner started", map[string]any{"interval": r.interval.String()})
	r.Scan(ctx)

	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			r.log.Info("reminder runner stopped", nil)
			return
		case <-t.C:
			r.Scan(ctx)
		}
	}
}

// Scan hace una pasada y devuelve los avisos nuevos que se entregaron.
func (r *Runner) Scan(ctx context.Context) []Reminder {
	ref := r.now()
	pending := Pending(r.src.Bookings(bookings.Filter{}), r.src.Animals(), ref)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.prune(days.Of(ref))

	sent := make([]Reminder, 0, len(pending))
	for _, rem := range pending {
		if r.deliver(ctx, rem) {
			sent = append(sent, rem)
		}
	}

	if r.OnScan != nil {
		r.OnScan(len(sent))
	}
	return sent
}

// deliverKey: lo entregado se registra por notifier.
func deliverKey(notifier int, rem Reminder) string {
	return strconv.Itoa(notifier) + "|" + rem.Key()
}

// deliver manda rem a los notifiers que todavía no lo aceptaron.
// Devuelve true si al menos uno lo aceptó en esta pasada.
func (r *Runner) deliver(ctx context.Context, rem Reminder) bool {
	ok := false
	for i, n := range r.notifiers {
		key := deliverKey(i, rem)
		if _, done := r.delivered[key]; done {
			continue
		}
		if err := n.Notify(ctx, rem); err != nil {
			r.log.Warn("reminder delivery failed", map[string]any{
				"kind":       string(rem.Kind),
				"booking_id": rem.BookingID,
				"notifier":   i,
				"err":        err.Error(),
			})
			continue // se reintenta en la próxima pasada
		}
		r.delivered[key] = rem.Date
		ok = true
	}
	return ok
}

// prune olvida avisos de fechas que ya pasaron.
func (r *Runner) prune(today days.Date) {
	for k, d := range r.delivered {
		if d.Before(today) {
			delete(r.delivered, k)
		}
	}
}

// LogNotifier escribe el aviso en el log. Siempre está activo.
type LogNotifier struct {
	Log logger.Logger
}

func (n LogNotifier) Notify(_ context.Context, r Reminder) error {
	n.Log.Info(r.Text(), map[string]any{
		"kind":       string(r.Kind),
		"booking_id": r.BookingID,
		"animal_id":  r.AnimalID,
		"date":       r.Date.String(),
	})
	return nil
}
