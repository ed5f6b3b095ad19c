package storage

import (
	"context"
	"errors"
	"time"

	"pet-boarding/internal/domain/animals"
	"pet-boarding/internal/domain/bookings"
)

var ErrNotFound = errors.New("not found")

// Animals: colección de animales en el almacenamiento persistente.
type Animals interface {
	List(ctx context.Context) ([]animals.Animal, error)
	Insert(ctx context.Context, a animals.Animal) (animals.Animal, error)
	Update(ctx context.Context, id string, p animals.Patch, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type Bookings interface {
	List(ctx context.Context) ([]bookings.Booking, error)
	Insert(ctx context.Context, b bookings.Booking) (bookings.Booking, error)
	Update(ctx context.Context, id string, p bookings.Patch, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type Expenses interface {
	List(ctx context.Context) ([]bookings.Expense, error)
	Insert(ctx context.Context, e bookings.Expense) (bookings.Expense, error)
	Update(ctx context.Context, id string, p bookings.ExpensePatch) error
	Delete(ctx context.Context, id string) error
}

// Store agrupa las tres colecciones. Los borrados no cascadean:
// el llamador borra gastos, reservas y animal en ese orden.
type Store interface {
	Animals() Animals
	Bookings() Bookings
	Expenses() Expenses
	Ping(ctx context.Context) error
}
