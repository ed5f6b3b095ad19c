package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-boarding/internal/domain/bookings"
)

type bookingRepo struct {
	mu   sync.RWMutex
	byID map[string]bookings.Booking
}

func newBookingRepo() *bookingRepo {
	return &bookingRepo{
		byID: make(map[string]bookings.Booking),
	}
}

func (r *bookingRepo) List(ctx context.Context) ([]bookings.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]bookings.Booking, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b.Clone())
	}
	// igual que la consulta SQL: check_in desc
	sort.Slice(out, func(i, j int) bool {
		return out[i].CheckIn.After(out[j].CheckIn)
	})
	return out, nil
}

func (r *bookingRepo) Insert(ctx context.Context, b bookings.Booking) (bookings.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(b.ID) == "" {
		return bookings.Booking{}, errors.New("booking id required")
	}
	if _, exists := r.byID[b.ID]; exists {
		return bookings.Booking{}, ErrExists
	}
	r.byID[b.ID] = b.Clone()
	return b, nil
}

func (r *bookingRepo) Update(ctx context.Context, id string, p bookings.Patch, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	next := p.Apply(cur)
	next.UpdatedAt = at
	r.byID[id] = next
	return nil
}

func (r *bookingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
