package boarding

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-boarding/internal/domain/animals"
	"pet-boarding/internal/domain/bookings"
	"pet-boarding/internal/domain/calendar"
	"pet-boarding/internal/domain/days"
	"pet-boarding/internal/domain/money"
	"pet-boarding/internal/domain/pricing"
	"pet-boarding/internal/domain/registry"
	"pet-boarding/internal/domain/reminders"
	"pet-boarding/internal/domain/reports"
	"pet-boarding/internal/platform/logger"
	"pet-boarding/internal/ports/storage"
)

// Service coordina validación, persistencia y estado en memoria.
// Orden para toda mutación: validar en el registro, escribir en el store,
// recién entonces aplicar al registro.
type Service struct {
	reg   *registry.Registry
	store storage.Store
	log   logger.Logger
	now   func() time.Time
	newID func() string

	// OnChange se llama después de cada mutación aplicada.
	OnChange func(animalsN, bookingsN, expensesN int)
}

func NewService(reg *registry.Registry, store storage.Store, log logger.Logger) *Service {
	return &Service{
		reg:   reg,
		store: store,
		log:   log.With(map[string]any{"component": "boarding"}),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *Service) Registry() *registry.Registry { return s.reg }

// Reload reemplaza el estado en memoria con lo que hay en el store.
func (s *Service) Reload(ctx context.Context) error {
	as, err := s.store.Animals().List(ctx)
	if err != nil {
		return upstream("list animals", err)
	}
	bs, err := s.store.Bookings().List(ctx)
	if err != nil {
		return upstream("list bookings", err)
	}
	es, err := s.store.Expenses().List(ctx)
	if err != nil {
		return upstream("list expenses", err)
	}

	if err := s.reg.Load(registry.Snapshot{Animals: as, Bookings: bs, Expenses: es}); err != nil {
		return err
	}
	s.changed()
	s.log.Info("registry loaded", map[string]any{
		"animals":  len(as),
		"bookings": len(bs),
		"expenses": len(es),
	})
	return nil
}

func (s *Service) Ping(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return upstream("ping", err)
	}
	return nil
}

// ---- animales ----

type CreateAnimalInput struct {
	Name       string
	SizeClass  animals.SizeClass
	Breed      string
	Comment    string
	OwnerName  string
	OwnerPhone string
}

func (s *Service) CreateAnimal(ctx context.Context, in CreateAnimalInput) (animals.Animal, error) {
	now := s.now()
	a, err := s.reg.PrepareAnimal(animals.Animal{
		ID:         s.newID(),
		Name:       in.Name,
		SizeClass:  in.SizeClass,
		Breed:      in.Breed,
		Comment:    in.Comment,
		OwnerName:  in.OwnerName,
		OwnerPhone: in.OwnerPhone,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return animals.Animal{}, err
	}

	saved, err := s.store.Animals().Insert(ctx, a)
	if err != nil {
		return animals.Animal{}, upstream("insert animal", err)
	}
	if saved, err = s.reg.InsertAnimal(saved); err != nil {
		return animals.Animal{}, err
	}
	s.changed()
	return saved, nil
}

func (s *Service) UpdateAnimal(ctx context.Context, id string, p animals.Patch) (animals.Animal, error) {
	p = cleanAnimalPatch(p)
	next, err := s.reg.MergeAnimal(id, p)
	if err != nil {
		return animals.Animal{}, err
	}

	now := s.now()
	if err := s.store.Animals().Update(ctx, id, p, now); err != nil {
		return animals.Animal{}, upstream("update animal", err)
	}
	next.UpdatedAt = now
	if err := s.reg.ReplaceAnimal(next); err != nil {
		return animals.Animal{}, err
	}
	return next, nil
}

// DeleteAnimal borra en el store en orden gastos, reservas, animal.
func (s *Service) DeleteAnimal(ctx context.Context, id string) (registry.Cascade, error) {
	c, err := s.reg.CascadeForAnimal(id)
	if err != nil {
		return registry.Cascade{}, err
	}
	if err := s.deleteInStore(ctx, c); err != nil {
		return registry.Cascade{}, err
	}
	if err := s.store.Animals().Delete(ctx, id); err != nil {
		return registry.Cascade{}, upstream("delete animal", err)
	}

	if c, err = s.reg.DeleteAnimal(id); err != nil {
		return registry.Cascade{}, err
	}
	s.changed()
	s.log.Info("animal deleted", map[string]any{
		"animal_id": id,
		"bookings":  len(c.BookingIDs),
		"expenses":  len(c.ExpenseIDs),
	})
	return c, nil
}

func (s *Service) Animals() []animals.Animal { return s.reg.Animals() }

func (s *Service) Animal(id string) (animals.Animal, error) { return s.reg.AnimalByID(id) }

func (s *Service) AnimalStats(id string) (registry.AnimalStats, error) {
	return s.reg.AnimalStats(id)
}

func (s *Service) BookingsForAnimal(id string) ([]bookings.Booking, error) {
	if _, err := s.reg.AnimalByID(id); err != nil {
		return nil, err
	}
	return s.reg.BookingsForAnimal(id), nil
}

// ---- reservas ----

type CreateBookingInput struct {
	AnimalID          string
	CheckIn           days.Date
	CheckOut          days.Date
	Status            bookings.Status
	CustomPricePerDay *money.Money
	HolidayDays       int
	HolidayPriceAdd   money.Money
	Notes             string
}

// CreateBooking copia la tarifa del tamaño del animal en este momento.
func (s *Service) CreateBooking(ctx context.Context, in CreateBookingInput) (bookings.Booking, error) {
	b := bookings.Booking{
		ID:                s.newID(),
		AnimalID:          strings.TrimSpace(in.AnimalID),
		CheckIn:           in.CheckIn,
		CheckOut:          in.CheckOut,
		Status:            in.Status,
		CustomPricePerDay: in.CustomPricePerDay,
		HolidayDays:       in.HolidayDays,
		HolidayPriceAdd:   in.HolidayPriceAdd,
		Notes:             in.Notes,
	}
	if b.Status == "" {
		b.Status = bookings.StatusUpcoming
	}
	// animal desconocido: PrepareBooking devuelve unknown_animal
	if a, err := s.reg.AnimalByID(b.AnimalID); err == nil {
		// sin tarifa para el tamaño, base queda en 0 y se rechaza con invalid_price
		if rate, ok := animals.BaseRate(a.SizeClass); ok {
			b.BasePricePerDay = rate
		}
	}
	now := s.now()
	b.CreatedAt, b.UpdatedAt = now, now

	b, err := s.reg.PrepareBooking(b)
	if err != nil {
		return bookings.Booking{}, err
	}

	saved, err := s.store.Bookings().Insert(ctx, b)
	if err != nil {
		return bookings.Booking{}, upstream("insert booking", err)
	}
	if saved, err = s.reg.InsertBooking(saved); err != nil {
		return bookings.Booking{}, err
	}
	s.changed()
	return saved, nil
}

func (s *Service) UpdateBooking(ctx context.Context, id string, p bookings.Patch) (bookings.Booking, error) {
	p = cleanBookingPatch(p)
	next, err := s.reg.MergeBooking(id, p)
	if err != nil {
		return bookings.Booking{}, err
	}

	now := s.now()
	if err := s.store.Bookings().Update(ctx, id, p, now); err != nil {
		return bookings.Booking{}, upstream("update booking", err)
	}
	next.UpdatedAt = now
	if err := s.reg.ReplaceBooking(next); err != nil {
		return bookings.Booking{}, err
	}
	return next, nil
}

func (s *Service) DeleteBooking(ctx context.Context, id string) (registry.Cascade, error) {
	c, err := s.reg.CascadeForBooking(id)
	if err != nil {
		return registry.Cascade{}, err
	}
	if err := s.deleteInStore(ctx, c); err != nil {
		return registry.Cascade{}, err
	}
	if c, err = s.reg.DeleteBooking(id); err != nil {
		return registry.Cascade{}, err
	}
	s.changed()
	return c, nil
}

func (s *Service) Bookings(f bookings.Filter) []bookings.Booking { return s.reg.Bookings(f) }

func (s *Service) Booking(id string) (bookings.Booking, error) { return s.reg.BookingByID(id) }

// Receipt desglosa el total de una reserva con sus gastos.
func (s *Service) Receipt(id string) (pricing.Receipt, error) {
	b, err := s.reg.BookingByID(id)
	if err != nil {
		return pricing.Receipt{}, err
	}
	return pricing.Breakdown(b, s.reg.ExpensesForBooking(id)), nil
}

// ---- gastos ----

type CreateExpenseInput struct {
	BookingID string
	Name      string
	Amount    money.Money
}

func (s *Service) CreateExpense(ctx context.Context, in CreateExpenseInput) (bookings.Expense, error) {
	e, err := s.reg.PrepareExpense(bookings.Expense{
		ID:        s.newID(),
		BookingID: in.BookingID,
		Name:      in.Name,
		Amount:    in.Amount,
		CreatedAt: s.now(),
	})
	if err != nil {
		return bookings.Expense{}, err
	}

	saved, err := s.store.Expenses().Insert(ctx, e)
	if err != nil {
		return bookings.Expense{}, upstream("insert expense", err)
	}
	if saved, err = s.reg.InsertExpense(saved); err != nil {
		return bookings.Expense{}, err
	}
	s.changed()
	return saved, nil
}

func (s *Service) UpdateExpense(ctx context.Context, id string, p bookings.ExpensePatch) (bookings.Expense, error) {
	if p.Name != nil {
		v := strings.TrimSpace(*p.Name)
		p.Name = &v
	}
	next, err := s.reg.MergeExpense(id, p)
	if err != nil {
		return bookings.Expense{}, err
	}
	if err := s.store.Expenses().Update(ctx, id, p); err != nil {
		return bookings.Expense{}, upstream("update expense", err)
	}
	if err := s.reg.ReplaceExpense(next); err != nil {
		return bookings.Expense{}, err
	}
	return next, nil
}

func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	if _, err := s.reg.ExpenseByID(id); err != nil {
		return err
	}
	if err := s.store.Expenses().Delete(ctx, id); err != nil {
		return upstream("delete expense", err)
	}
	if err := s.reg.DeleteExpense(id); err != nil {
		return err
	}
	s.changed()
	return nil
}

func (s *Service) Expenses(bookingID string) ([]bookings.Expense, error) {
	if _, err := s.reg.BookingByID(bookingID); err != nil {
		return nil, err
	}
	return s.reg.ExpensesForBooking(bookingID), nil
}

// ---- vistas ----

func (s *Service) Month(anchor days.Date) []calendar.Day {
	snap := s.reg.Snapshot()
	return calendar.MonthGrid(anchor, snap.Bookings, snap.Animals)
}

func (s *Service) Range(from, to days.Date) []calendar.Day {
	snap := s.reg.Snapshot()
	return calendar.RangeGrid(from, to, snap.Bookings, snap.Animals)
}

// Occupancy cuenta días-animal ocupados en [from, to].
func (s *Service) Occupancy(from, to days.Date) int { return s.reg.Occupancy(from, to) }

func (s *Service) Reminders(at time.Time) []reminders.Reminder {
	snap := s.reg.Snapshot()
	return reminders.Pending(snap.Bookings, snap.Animals, at)
}

func (s *Service) Summary(from, to days.Date) reports.Summary {
	snap := s.reg.Snapshot()
	return reports.Summarize(snap.Bookings, snap.Expenses, snap.Animals, from, to)
}

func (s *Service) SummaryForPeriod(kind reports.PeriodKind, ref days.Date) (reports.Summary, error) {
	from, to, err := reports.Period(kind, ref)
	if err != nil {
		return reports.Summary{}, err
	}
	return s.Summary(from, to), nil
}

func (s *Service) Today() days.Date { return days.Of(s.now()) }

// ---- helpers ----

func (s *Service) deleteInStore(ctx context.Context, c registry.Cascade) error {
	for _, eid := range c.ExpenseIDs {
		if err := s.store.Expenses().Delete(ctx, eid); err != nil {
			return upstream("delete expense", err)
		}
	}
	for _, bid := range c.BookingIDs {
		if err := s.store.Bookings().Delete(ctx, bid); err != nil {
			return upstream("delete booking", err)
		}
	}
	return nil
}

func (s *Service) changed() {
	if s.OnChange == nil {
		return
	}
	s.OnChange(s.reg.Counts())
}

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}

func cleanAnimalPatch(p animals.Patch) animals.Patch {
	p.Name = trimmed(p.Name)
	p.Breed = trimmed(p.Breed)
	p.Comment = trimmed(p.Comment)
	p.OwnerName = trimmed(p.OwnerName)
	p.OwnerPhone = trimmed(p.OwnerPhone)
	if p.SizeClass != nil {
		v := animals.SizeClass(strings.ToLower(strings.TrimSpace(string(*p.SizeClass))))
		p.SizeClass = &v
	}
	return p
}

func cleanBookingPatch(p bookings.Patch) bookings.Patch {
	p.AnimalID = trimmed(p.AnimalID)
	p.Notes = trimmed(p.Notes)
	return p
}
