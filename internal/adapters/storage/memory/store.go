package memory

import (
	"context"
	"errors"

	"pet-boarding/internal/ports/storage"
)

var (
	ErrNotFound = storage.ErrNotFound
	ErrExists   = errors.New("already exists")
)

// Store en memoria para dev y tests; se pierde al reiniciar.
type Store struct {
	animals  *animalRepo
	bookings *bookingRepo
	expenses *expenseRepo
}

func NewStore() *Store {
	return &Store{
		animals:  newAnimalRepo(),
		bookings: newBookingRepo(),
		expenses: newExpenseRepo(),
	}
}

func (s *Store) Animals() storage.Animals   { return s.animals }
func (s *Store) Bookings() storage.Bookings { return s.bookings }
func (s *Store) Expenses() storage.Expenses { return s.expenses }

func (s *Store) Ping(context.Context) error { return nil }
