// Package store holds the in-memory state the planner operates on: the bill
// template registry, per-occurrence overrides, and the todo and paycheck
// lists. Stores are dumb containers; all business rules live in the schedule
// and planner packages.
package store

import (
	"sync"

	"billfold/internal/core"
)

// Key identifies one occurrence of a recurring bill series. A composite value
// type is used instead of a concatenated string so that cutoff clearing can
// compare the date portion exactly, without prefix matching across bills
// whose ids share a prefix.
type Key struct {
	BillID string
	Due    core.Date
}

// KeyFor builds the occurrence key for a materialized instance, resolving
// through OriginalID when present.
func KeyFor(b core.Bill) Key {
	id := b.OriginalID
	if id == "" {
		id = b.ID
	}
	return Key{BillID: id, Due: b.DueDate}
}

// Overrides stores per-occurrence edits and deletions for recurring bills.
type Overrides struct {
	mu        sync.Mutex
	edits     map[Key]core.Bill
	deletions map[Key]struct{}
}

func NewOverrides() *Overrides {
	return &Overrides{
		edits:     make(map[Key]core.Bill),
		deletions: make(map[Key]struct{}),
	}
}

// SetEdit records a full instance snapshot for one occurrence.
func (o *Overrides) SetEdit(k Key, b core.Bill) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.edits[k] = b
}

// Edit returns the stored snapshot for the occurrence, if any.
func (o *Overrides) Edit(k Key) (core.Bill, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	b, ok := o.edits[k]
	return b, ok
}

// SetDeletion marks one occurrence as deleted. Idempotent.
func (o *Overrides) SetDeletion(k Key) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.deletions[k] = struct{}{}
}

// IsDeleted reports whether the occurrence was deleted individually.
func (o *Overrides) IsDeleted(k Key) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.deletions[k]
	return ok
}

// ClearFrom removes all edit and deletion entries for the bill whose due date
// falls on or after from. Entries before the cutoff are kept so that past
// months keep their history.
func (o *Overrides) ClearFrom(billID string, from core.Date) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for k := range o.edits {
		if k.BillID == billID && k.Due.OnOrAfter(from) {
			delete(o.edits, k)
		}
	}
	for k := range o.deletions {
		if k.BillID == billID && k.Due.OnOrAfter(from) {
			delete(o.deletions, k)
		}
	}
}

// Len returns the number of stored edits and deletions.
func (o *Overrides) Len() (edits, deletions int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.edits), len(o.deletions)
}
