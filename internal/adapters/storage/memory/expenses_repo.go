package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-boarding/internal/domain/bookings"
)

type expenseRepo struct {
	mu   sync.RWMutex
	byID map[string]bookings.Expense
}

func newExpenseRepo() *expenseRepo {
	return &expenseRepo{
		byID: make(map[string]bookings.Expense),
	}
}

func (r *expenseRepo) List(ctx context.Context) ([]bookings.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]bookings.Expense, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *expenseRepo) Insert(ctx context.Context, e bookings.Expense) (bookings.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return bookings.Expense{}, errors.New("expense id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return bookings.Expense{}, ErrExists
	}
	r.byID[e.ID] = e
	return e, nil
}

func (r *expenseRepo) Update(ctx context.Context, id string, p bookings.ExpensePatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	r.byID[id] = p.Apply(cur)
	return nil
}

func (r *expenseRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
