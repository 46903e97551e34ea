package store

import (
	"sync"

	"billfold/internal/core"
)

// Todos is a mutex-guarded todo list with plain CRUD semantics.
type Todos struct {
	mu    sync.Mutex
	items []core.Todo
}

func NewTodos() *Todos {
	return &Todos{}
}

func (t *Todos) Add(todo core.Todo) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = append(t.items, todo)
}

// Apply runs mutate against the todo with the given id in place.
func (t *Todos) Apply(id string, mutate func(*core.Todo)) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.items {
		if t.items[i].ID == id {
			mutate(&t.items[i])
			return true
		}
	}
	return false
}

func (t *Todos) Delete(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.items {
		if t.items[i].ID == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a snapshot of all todos.
func (t *Todos) List() []core.Todo {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]core.Todo, len(t.items))
	copy(out, t.items)
	return out
}

// Paychecks is a mutex-guarded paycheck list.
type Paychecks struct {
	mu    sync.Mutex
	items []core.Paycheck
}

func NewPaychecks() *Paychecks {
	return &Paychecks{}
}

func (p *Paychecks) Add(pc core.Paycheck) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = append(p.items, pc)
}

func (p *Paychecks) Delete(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.items {
		if p.items[i].ID == id {
			p.items = append(p.items[:i], p.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a snapshot of all paychecks.
func (p *Paychecks) List() []core.Paycheck {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]core.Paycheck, len(p.items))
	copy(out, p.items)
	return out
}
