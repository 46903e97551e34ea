package store

import (
	"sync"

	"billfold/internal/core"
)

// Registry holds the user-authored bill templates in insertion order.
// Templates that have generated history are never removed; a delete-all is a
// soft cutoff recorded on the template itself.
type Registry struct {
	mu    sync.Mutex
	bills []core.Bill
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a template. The caller is responsible for validation and id
// assignment.
func (r *Registry) Add(b core.Bill) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bills = append(r.bills, b)
}

// Get returns the template with the given id.
func (r *Registry) Get(id string) (core.Bill, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bills {
		if b.ID == id {
			return b, true
		}
	}
	return core.Bill{}, false
}

// List returns a snapshot of all templates.
func (r *Registry) List() []core.Bill {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Bill, len(r.bills))
	copy(out, r.bills)
	return out
}

// Apply runs mutate against the template with the given id in place.
// Returns false when the id is unknown.
func (r *Registry) Apply(id string, mutate func(*core.Bill)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bills {
		if r.bills[i].ID == id {
			mutate(&r.bills[i])
			return true
		}
	}
	return false
}

// MarkDeletedFrom records the soft cutoff on the template. Instances dated on
// or after the cutoff are never materialized again.
func (r *Registry) MarkDeletedFrom(id string, from core.Date) bool {
	return r.Apply(id, func(b *core.Bill) {
		b.DeletedFrom = from
	})
}

// Len returns the number of templates including soft-deleted ones.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bills)
}
