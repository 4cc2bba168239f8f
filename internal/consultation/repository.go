package consultation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotFound is returned when a consultation id is unknown.
var ErrNotFound = errors.New("consultation not found")

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Consultation, error)
	Save(ctx context.Context, c *Consultation) error
	List(ctx context.Context) ([]*Consultation, error)
}

// memoryRepo keeps consultations in process memory. Losing them on
// restart is intended: the product keeps no record of a session once it
// ends, so there is no database behind this.
type memoryRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]Consultation
	order []uuid.UUID
}

func NewRepository() Repository {
	return &memoryRepo{
		items: make(map[uuid.UUID]Consultation),
	}
}

func (r *memoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	// Copy out so callers can't reach into the stored aggregate.
	return &c, nil
}

func (r *memoryRepo) Save(ctx context.Context, c *Consultation) error {
	if c.ID == uuid.Nil {
		return errors.New("consultation id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	c.UpdatedAt = time.Now()

	if _, exists := r.items[c.ID]; !exists {
		r.order = append(r.order, c.ID)
	}
	r.items[c.ID] = *c
	return nil
}

// List returns consultations newest first, matching the dashboard's
// prepend-on-submit ordering.
func (r *memoryRepo) List(ctx context.Context) ([]*Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Consultation, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		c := r.items[r.order[i]]
		out = append(out, &c)
	}
	return out, nil
}
