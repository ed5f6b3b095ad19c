package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-boarding/internal/domain/animals"
)

type animalRepo struct {
	mu   sync.RWMutex
	byID map[string]animals.Animal
}

func newAnimalRepo() *animalRepo {
	return &animalRepo{
		byID: make(map[string]animals.Animal),
	}
}

func (r *animalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *animalRepo) Insert(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return animals.Animal{}, errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return animals.Animal{}, ErrExists
	}
	r.byID[a.ID] = a
	return a, nil
}

func (r *animalRepo) Update(ctx context.Context, id string, p animals.Patch, at time.Time) error {
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

func (r *animalRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
