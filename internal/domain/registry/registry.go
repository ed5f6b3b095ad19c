package registry

import (
	"sort"
	"sync"

	"pet-boarding/internal/domain/animals"
	"pet-boarding/internal/domain/bookings"
	"pet-boarding/internal/domain/days"
	"pet-boarding/internal/domain/money"
	"pet-boarding/internal/domain/pricing"
)

// Snapshot es una copia profunda de las tres colecciones.
type Snapshot struct {
	Animals  []animals.Animal
	Bookings []bookings.Booking
	Expenses []bookings.Expense
}

// Cascade lista lo que se borra (o se borraría) junto con la entidad pedida.
// El orden de borrado seguro es Expenses, Bookings, Animal.
type Cascade struct {
	AnimalID   string
	BookingIDs []string
	ExpenseIDs []string
}

type set map[string]struct{}

// Registry guarda el estado autoritativo en memoria.
// Toda mutación se valida completa antes de tocar los mapas.
type Registry struct {
	mu sync.RWMutex

	animals  map[string]animals.Animal
	bookings map[string]bookings.Booking
	expenses map[string]bookings.Expense

	// índices inversos
	bookingsByAnimal  map[string]set
	expensesByBooking map[string]set
}

func New() *Registry {
	r := &Registry{}
	r.reset()
	return r
}

func (r *Registry) reset() {
	r.animals = map[string]animals.Animal{}
	r.bookings = map[string]bookings.Booking{}
	r.expenses = map[string]bookings.Expense{}
	r.bookingsByAnimal = map[string]set{}
	r.expensesByBooking = map[string]set{}
}

// Load reemplaza todo el estado. Si un solo elemento es inválido no cambia nada.
func (r *Registry) Load(s Snapshot) error {
	next := New()
	for _, a := range s.Animals {
		a = normalizeAnimal(a)
		if err := validateAnimal(a); err != nil {
			return err
		}
		if _, dup := next.animals[a.ID]; dup {
			return invalid(ReasonDuplicateID, "id", "animal "+a.ID+" repeated")
		}
		next.putAnimal(a)
	}
	for _, b := range s.Bookings {
		b = normalizeBooking(b)
		if err := validateBooking(b); err != nil {
			return err
		}
		if _, dup := next.bookings[b.ID]; dup {
			return invalid(ReasonDuplicateID, "id", "booking "+b.ID+" repeated")
		}
		if _, ok := next.animals[b.AnimalID]; !ok {
			return invalid(ReasonUnknownAnimal, "animal_id", "booking "+b.ID+" references "+b.AnimalID)
		}
		next.putBooking(b)
	}
	for _, e := range s.Expenses {
		e = normalizeExpense(e)
		if err := validateExpense(e); err != nil {
			return err
		}
		if _, dup := next.expenses[e.ID]; dup {
			return invalid(ReasonDuplicateID, "id", "expense "+e.ID+" repeated")
		}
		if _, ok := next.bookings[e.BookingID]; !ok {
			return invalid(ReasonUnknownBooking, "booking_id", "expense "+e.ID+" references "+e.BookingID)
		}
		next.putExpense(e)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.animals = next.animals
	r.bookings = next.bookings
	r.expenses = next.expenses
	r.bookingsByAnimal = next.bookingsByAnimal
	r.expensesByBooking = next.expensesByBooking
	return nil
}

func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Snapshot{
		Animals:  r.sortedAnimals(),
		Bookings: r.sortedBookings(bookings.Filter{}),
		Expenses: r.allExpenses(),
	}
}

// Counts devuelve el tamaño de cada colección.
func (r *Registry) Counts() (animalsN, bookingsN, expensesN int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.animals), len(r.bookings), len(r.expenses)
}

// ---- animales ----

// PrepareAnimal normaliza y valida un alta sin guardarla.
func (r *Registry) PrepareAnimal(a animals.Animal) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.prepareAnimal(a)
}

func (r *Registry) prepareAnimal(a animals.Animal) (animals.Animal, error) {
	a = normalizeAnimal(a)
	if err := validateAnimal(a); err != nil {
		return animals.Animal{}, err
	}
	if _, dup := r.animals[a.ID]; dup {
		return animals.Animal{}, invalid(ReasonDuplicateID, "id", "animal "+a.ID+" already exists")
	}
	return a, nil
}

func (r *Registry) InsertAnimal(a animals.Animal) (animals.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, err := r.prepareAnimal(a)
	if err != nil {
		return animals.Animal{}, err
	}
	r.putAnimal(a)
	return a, nil
}

// MergeAnimal aplica el patch sobre una copia y la valida.
func (r *Registry) MergeAnimal(id string, p animals.Patch) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mergeAnimal(id, p)
}

func (r *Registry) mergeAnimal(id string, p animals.Patch) (animals.Animal, error) {
	cur, ok := r.animals[id]
	if !ok {
		return animals.Animal{}, notFound("animal", id)
	}
	next := normalizeAnimal(p.Apply(cur))
	next.ID = cur.ID
	if err := validateAnimal(next); err != nil {
		return animals.Animal{}, err
	}
	return next, nil
}

// UpdateAnimal no toca las reservas existentes: su tarifa base es un snapshot.
func (r *Registry) UpdateAnimal(id string, p animals.Patch) (animals.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next, err := r.mergeAnimal(id, p)
	if err != nil {
		return animals.Animal{}, err
	}
	r.animals[id] = next
	return next, nil
}

// ReplaceAnimal guarda la versión ya validada (la que devolvió el store).
func (r *Registry) ReplaceAnimal(a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.animals[a.ID]; !ok {
		return notFound("animal", a.ID)
	}
	a = normalizeAnimal(a)
	if err := validateAnimal(a); err != nil {
		return err
	}
	r.animals[a.ID] = a
	return nil
}

func (r *Registry) CascadeForAnimal(id string) (Cascade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cascadeForAnimal(id)
}

func (r *Registry) cascadeForAnimal(id string) (Cascade, error) {
	if _, ok := r.animals[id]; !ok {
		return Cascade{}, notFound("animal", id)
	}
	c := Cascade{AnimalID: id, BookingIDs: []string{}, ExpenseIDs: []string{}}
	for bid := range r.bookingsByAnimal[id] {
		c.BookingIDs = append(c.BookingIDs, bid)
		for eid := range r.expensesByBooking[bid] {
			c.ExpenseIDs = append(c.ExpenseIDs, eid)
		}
	}
	sort.Strings(c.BookingIDs)
	sort.Strings(c.ExpenseIDs)
	return c, nil
}

// DeleteAnimal borra el animal, sus reservas y los gastos de esas reservas.
func (r *Registry) DeleteAnimal(id string) (Cascade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, err := r.cascadeForAnimal(id)
	if err != nil {
		return Cascade{}, err
	}
	for _, bid := range c.BookingIDs {
		r.dropBooking(bid)
	}
	delete(r.animals, id)
	delete(r.bookingsByAnimal, id)
	return c, nil
}

func (r *Registry) AnimalByID(id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.animals[id]
	if !ok {
		return animals.Animal{}, notFound("animal", id)
	}
	return a, nil
}

// Animals ordenados por nombre y luego id.
func (r *Registry) Animals() []animals.Animal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedAnimals()
}

// ---- reservas ----

func (r *Registry) PrepareBooking(b bookings.Booking) (bookings.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.prepareBooking(b)
}

func (r *Registry) prepareBooking(b bookings.Booking) (bookings.Booking, error) {
	b = normalizeBooking(b)
	// la referencia primero: sin animal tampoco hay tarifa base
	if _, ok := r.animals[b.AnimalID]; !ok {
		return bookings.Booking{}, invalid(ReasonUnknownAnimal, "animal_id", "animal "+b.AnimalID+" does not exist")
	}
	if err := validateBooking(b); err != nil {
		return bookings.Booking{}, err
	}
	if _, dup := r.bookings[b.ID]; dup {
		return bookings.Booking{}, invalid(ReasonDuplicateID, "id", "booking "+b.ID+" already exists")
	}
	return b, nil
}

func (r *Registry) InsertBooking(b bookings.Booking) (bookings.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, err := r.prepareBooking(b)
	if err != nil {
		return bookings.Booking{}, err
	}
	r.putBooking(b)
	return b.Clone(), nil
}

func (r *Registry) MergeBooking(id string, p bookings.Patch) (bookings.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mergeBooking(id, p)
}

func (r *Registry) mergeBooking(id string, p bookings.Patch) (bookings.Booking, error) {
	cur, ok := r.bookings[id]
	if !ok {
		return bookings.Booking{}, notFound("booking", id)
	}
	next := normalizeBooking(p.Apply(cur))
	next.ID = cur.ID
	if err := validateBooking(next); err != nil {
		return bookings.Booking{}, err
	}
	if _, ok := r.animals[next.AnimalID]; !ok {
		return bookings.Booking{}, invalid(ReasonUnknownAnimal, "animal_id", "animal "+next.AnimalID+" does not exist")
	}
	return next, nil
}

// UpdateBooking puede reasignar la reserva a otro animal; la tarifa base no cambia.
func (r *Registry) UpdateBooking(id string, p bookings.Patch) (bookings.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next, err := r.mergeBooking(id, p)
	if err != nil {
		return bookings.Booking{}, err
	}
	r.replaceBooking(next)
	return next.Clone(), nil
}

func (r *Registry) ReplaceBooking(b bookings.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; !ok {
		return notFound("booking", b.ID)
	}
	b = normalizeBooking(b)
	if err := validateBooking(b); err != nil {
		return err
	}
	if _, ok := r.animals[b.AnimalID]; !ok {
		return invalid(ReasonUnknownAnimal, "animal_id", "animal "+b.AnimalID+" does not exist")
	}
	r.replaceBooking(b)
	return nil
}

func (r *Registry) CascadeForBooking(id string) (Cascade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cascadeForBooking(id)
}

func (r *Registry) cascadeForBooking(id string) (Cascade, error) {
	if _, ok := r.bookings[id]; !ok {
		return Cascade{}, notFound("booking", id)
	}
	c := Cascade{BookingIDs: []string{id}, ExpenseIDs: []string{}}
	for eid := range r.expensesByBooking[id] {
		c.ExpenseIDs = append(c.ExpenseIDs, eid)
	}
	sort.Strings(c.ExpenseIDs)
	return c, nil
}

func (r *Registry) DeleteBooking(id string) (Cascade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, err := r.cascadeForBooking(id)
	if err != nil {
		return Cascade{}, err
	}
	r.dropBooking(id)
	return c, nil
}

func (r *Registry) BookingByID(id string) (bookings.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bookings[id]
	if !ok {
		return bookings.Booking{}, notFound("booking", id)
	}
	return b.Clone(), nil
}

// Bookings ordenadas por check-in descendente (más recientes primero), luego id.
func (r *Registry) Bookings(f bookings.Filter) []bookings.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedBookings(f)
}

// BookingsForAnimal devuelve vacío (no error) si el animal no tiene reservas o no existe.
func (r *Registry) BookingsForAnimal(animalID string) []bookings.Booking {
	return r.Bookings(bookings.Filter{AnimalID: animalID})
}

// ---- gastos ----

func (r *Registry) PrepareExpense(e bookings.Expense) (bookings.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.prepareExpense(e)
}

func (r *Registry) prepareExpense(e bookings.Expense) (bookings.Expense, error) {
	e = normalizeExpense(e)
	if err := validateExpense(e); err != nil {
		return bookings.Expense{}, err
	}
	if _, dup := r.expenses[e.ID]; dup {
		return bookings.Expense{}, invalid(ReasonDuplicateID, "id", "expense "+e.ID+" already exists")
	}
	if _, ok := r.bookings[e.BookingID]; !ok {
		return bookings.Expense{}, invalid(ReasonUnknownBooking, "booking_id", "booking "+e.BookingID+" does not exist")
	}
	return e, nil
}

func (r *Registry) InsertExpense(e bookings.Expense) (bookings.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, err := r.prepareExpense(e)
	if err != nil {
		return bookings.Expense{}, err
	}
	r.putExpense(e)
	return e, nil
}

func (r *Registry) MergeExpense(id string, p bookings.ExpensePatch) (bookings.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mergeExpense(id, p)
}

func (r *Registry) mergeExpense(id string, p bookings.ExpensePatch) (bookings.Expense, error) {
	cur, ok := r.expenses[id]
	if !ok {
		return bookings.Expense{}, notFound("expense", id)
	}
	next := normalizeExpense(p.Apply(cur))
	if err := validateExpense(next); err != nil {
		return bookings.Expense{}, err
	}
	return next, nil
}

func (r *Registry) UpdateExpense(id string, p bookings.ExpensePatch) (bookings.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next, err := r.mergeExpense(id, p)
	if err != nil {
		return bookings.Expense{}, err
	}
	r.expenses[id] = next
	return next, nil
}

func (r *Registry) ReplaceExpense(e bookings.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.expenses[e.ID]
	if !ok {
		return notFound("expense", e.ID)
	}
	e = normalizeExpense(e)
	e.BookingID = cur.BookingID
	if err := validateExpense(e); err != nil {
		return err
	}
	r.expenses[e.ID] = e
	return nil
}

func (r *Registry) DeleteExpense(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.expenses[id]
	if !ok {
		return notFound("expense", id)
	}
	delete(r.expenses, id)
	delete(r.expensesByBooking[e.BookingID], id)
	return nil
}

func (r *Registry) ExpenseByID(id string) (bookings.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.expenses[id]
	if !ok {
		return bookings.Expense{}, notFound("expense", id)
	}
	return e, nil
}

// ExpensesForBooking en orden de alta. Nunca devuelve nil.
func (r *Registry) ExpensesForBooking(bookingID string) []bookings.Expense {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedExpenses(r.expensesByBooking[bookingID])
}

// ---- agregados ----

// AnimalStats resume la historia de un animal: solo cuentan reservas completadas.
type AnimalStats struct {
	AnimalID          string
	CompletedBookings int
	TotalDays         int
	Revenue           money.Money
}

func (r *Registry) AnimalStats(id string) (AnimalStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.animals[id]; !ok {
		return AnimalStats{}, notFound("animal", id)
	}
	st := AnimalStats{AnimalID: id}
	for bid := range r.bookingsByAnimal[id] {
		b := r.bookings[bid]
		if b.Status != bookings.StatusCompleted {
			continue
		}
		st.CompletedBookings++
		st.TotalDays += b.TotalDays()
		st.Revenue += pricing.ComputeTotal(b, r.sortedExpenses(r.expensesByBooking[bid]))
	}
	return st, nil
}

// Occupancy cuenta días-reserva no cancelados dentro de [from, to].
func (r *Registry) Occupancy(from, to days.Date) int {
	if to.Before(from) {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, b := range r.bookings {
		if b.Status == bookings.StatusCancelled {
			continue
		}
		lo, hi := b.CheckIn, b.CheckOut
		if lo.Before(from) {
			lo = from
		}
		if hi.After(to) {
			hi = to
		}
		if !hi.Before(lo) {
			n += days.Count(lo, hi)
		}
	}
	return n
}

// ---- helpers (lock tomado por el llamador) ----

func (r *Registry) putAnimal(a animals.Animal) {
	r.animals[a.ID] = a
	if r.bookingsByAnimal[a.ID] == nil {
		r.bookingsByAnimal[a.ID] = set{}
	}
}

func (r *Registry) putBooking(b bookings.Booking) {
	r.bookings[b.ID] = b
	if r.bookingsByAnimal[b.AnimalID] == nil {
		r.bookingsByAnimal[b.AnimalID] = set{}
	}
	r.bookingsByAnimal[b.AnimalID][b.ID] = struct{}{}
	if r.expensesByBooking[b.ID] == nil {
		r.expensesByBooking[b.ID] = set{}
	}
}

func (r *Registry) replaceBooking(b bookings.Booking) {
	if prev, ok := r.bookings[b.ID]; ok && prev.AnimalID != b.AnimalID {
		delete(r.bookingsByAnimal[prev.AnimalID], b.ID)
	}
	r.putBooking(b)
}

func (r *Registry) putExpense(e bookings.Expense) {
	r.expenses[e.ID] = e
	if r.expensesByBooking[e.BookingID] == nil {
		r.expensesByBooking[e.BookingID] = set{}
	}
	r.expensesByBooking[e.BookingID][e.ID] = struct{}{}
}

func (r *Registry) dropBooking(id string) {
	b, ok := r.bookings[id]
	if !ok {
		return
	}
	for eid := range r.expensesByBooking[id] {
		delete(r.expenses, eid)
	}
	delete(r.expensesByBooking, id)
	delete(r.bookingsByAnimal[b.AnimalID], id)
	delete(r.bookings, id)
}

func (r *Registry) sortedAnimals() []animals.Animal {
	out := make([]animals.Animal, 0, len(r.animals))
	for _, a := range r.animals {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *Registry) sortedBookings(f bookings.Filter) []bookings.Booking {
	out := make([]bookings.Booking, 0)
	collect := func(b bookings.Booking) {
		if f.Status != nil && b.Status != *f.Status {
			return
		}
		out = append(out, b.Clone())
	}
	if f.AnimalID != "" {
		for bid := range r.bookingsByAnimal[f.AnimalID] {
			collect(r.bookings[bid])
		}
	} else {
		for _, b := range r.bookings {
			collect(b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].CheckIn.Compare(out[j].CheckIn); c != 0 {
			return c > 0
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *Registry) allExpenses() []bookings.Expense {
	out := make([]bookings.Expense, 0, len(r.expenses))
	for _, e := range r.expenses {
		out = append(out, e)
	}
	sortExpenses(out)
	return out
}

func (r *Registry) sortedExpenses(ids set) []bookings.Expense {
	out := make([]bookings.Expense, 0, len(ids))
	for eid := range ids {
		out = append(out, r.expenses[eid])
	}
	sortExpenses(out)
	return out
}

func sortExpenses(out []bookings.Expense) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
}
