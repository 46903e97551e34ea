// Package planner owns the month-view state and exposes the mutation
// operations the UI layer drives: bill add/update/delete/skip with
// occurrence or future scope, todo and paycheck list edits, and month
// navigation. Every mutation re-materializes the displayed bill list from
// the registry and override store.
package planner

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"billfold/internal/cache"
	"billfold/internal/core"
	applog "billfold/internal/log"
	"billfold/internal/schedule"
	"billfold/internal/store"
)

// Scope selects whether a mutation applies to a single occurrence or to the
// whole series from the viewed month onwards.
type Scope string

const (
	ScopeOccurrence Scope = "occurrence"
	ScopeFuture     Scope = "future"
)

// Valid reports whether s is a known scope.
func (s Scope) Valid() bool {
	return s == ScopeOccurrence || s == ScopeFuture
}

// BillChanges holds the fields of a bill update; nil fields are left alone.
type BillChanges struct {
	Name       *string
	Amount     *core.Money
	DueDate    *core.Date
	Recurrence *core.Recurrence
	Paid       *bool
	Skipped    *bool
}

func (ch BillChanges) apply(b *core.Bill) {
	if ch.Name != nil {
		b.Name = *ch.Name
	}
	if ch.Amount != nil {
		b.Amount = *ch.Amount
	}
	if ch.DueDate != nil {
		b.DueDate = *ch.DueDate
	}
	if ch.Recurrence != nil {
		b.Recurrence = *ch.Recurrence
	}
	if ch.Paid != nil {
		b.Paid = *ch.Paid
	}
	if ch.Skipped != nil {
		b.Skipped = *ch.Skipped
	}
}

// TodoChanges holds the fields of a todo update; nil fields are left alone.
type TodoChanges struct {
	Task      *string
	Completed *bool
	DueDate   *core.Date
}

// Planner holds all in-memory state behind one coarse lock, so that
// materialization always reads a consistent snapshot of registry and
// overrides.
type Planner struct {
	mu        sync.Mutex
	registry  *store.Registry
	overrides *store.Overrides
	todos     *store.Todos
	paychecks *store.Paychecks

	view  core.Month
	bills []core.Bill

	gen   uint64 // bumped on every mutation; part of the view cache key
	views *cache.LRU[[]core.Bill]

	logger *slog.Logger
}

// New creates a planner viewing the month containing now.
func New(now time.Time, views *cache.LRU[[]core.Bill], logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Planner{
		registry:  store.NewRegistry(),
		overrides: store.NewOverrides(),
		todos:     store.NewTodos(),
		paychecks: store.NewPaychecks(),
		view:      core.MonthOf(core.Date{Time: now.UTC()}),
		views:     views,
		logger:    logger.With(applog.FieldComponent, applog.ComponentPlanner),
	}
	p.refresh()
	return p
}

// View returns the currently viewed month.
func (p *Planner) View() core.Month {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view
}

// Bills returns the materialized bill list for the viewed month.
func (p *Planner) Bills() []core.Bill {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]core.Bill, len(p.bills))
	copy(out, p.bills)
	return out
}

// PrevMonth moves the view one month back and re-materializes.
func (p *Planner) PrevMonth() core.Month {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view = p.view.Prev()
	p.refresh()
	return p.view
}

// NextMonth moves the view one month forward and re-materializes.
func (p *Planner) NextMonth() core.Month {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view = p.view.Next()
	p.refresh()
	return p.view
}

// SetMonth pins the view to a specific month.
func (p *Planner) SetMonth(m core.Month) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view = m
	p.refresh()
}

// refresh recomputes the displayed bill list. Views are memoized per state
// generation so month navigation without intervening mutations reuses the
// previous materialization. Callers must hold p.mu.
func (p *Planner) refresh() {
	key := strconv.FormatUint(p.gen, 10) + "|" + p.view.String()
	if p.views != nil {
		if cached, ok := p.views.Get(key); ok {
			p.bills = cached
			return
		}
	}
	p.bills = schedule.Materialize(p.registry.List(), p.overrides, p.view)
	if p.views != nil {
		p.views.Set(key, p.bills)
	}
}

// mutated bumps the state generation and re-materializes. Callers must hold
// p.mu.
func (p *Planner) mutated() {
	p.gen++
	p.refresh()
}

// AddBill creates a new bill template. Invalid input (missing name, amount,
// or date) is a reported no-op: nothing is created and the validation error
// is returned.
func (p *Planner) AddBill(name string, amount core.Money, due core.Date, rec core.Recurrence) (core.Bill, error) {
	if rec == "" {
		rec = core.None
	}
	b := core.Bill{
		ID:         uuid.NewString(),
		Name:       name,
		Amount:     amount,
		DueDate:    due,
		Recurrence: rec,
	}
	if err := b.Validate(); err != nil {
		p.logger.Warn("rejected bill", "name", name, applog.FieldError, err)
		return core.Bill{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.registry.Add(b)
	p.mutated()
	p.logger.Info("bill added", applog.FieldBillID, b.ID, "name", b.Name, "recurrence", string(b.Recurrence))
	return b, nil
}

// resolve finds the displayed instance with the given id and its owning
// template. Callers must hold p.mu.
func (p *Planner) resolve(instanceID string) (tpl core.Bill, inst core.Bill, ok bool) {
	if t, found := p.registry.Get(instanceID); found {
		return t, t, true
	}
	for _, b := range p.bills {
		if b.ID == instanceID && b.OriginalID != "" {
			if t, found := p.registry.Get(b.OriginalID); found {
				return t, b, true
			}
		}
	}
	return core.Bill{}, core.Bill{}, false
}

// UpdateBill applies changes to one occurrence or to the whole series.
// Unknown ids are a no-op returning ErrNotFound; no state is mutated.
func (p *Planner) UpdateBill(instanceID string, ch BillChanges, scope Scope) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	tpl, inst, ok := p.resolve(instanceID)
	if !ok {
		return core.ErrNotFound
	}

	switch {
	case scope == ScopeFuture || !tpl.IsRecurring():
		// one-off bills have a single occurrence; occurrence scope and
		// future scope coincide
		p.registry.Apply(tpl.ID, func(b *core.Bill) { ch.apply(b) })
	default:
		merged := inst
		ch.apply(&merged)
		p.overrides.SetEdit(store.KeyFor(inst), merged)
	}

	p.mutated()
	p.logger.Info("bill updated", applog.FieldBillID, instanceID, applog.FieldScope, string(scope))
	return nil
}

// DeleteBill removes one occurrence or cuts off the series. For future scope
// the cutoff anchors at the start of the currently viewed month, and all
// overrides at or after the cutoff are cleared. Unknown ids are a no-op.
func (p *Planner) DeleteBill(instanceID string, scope Scope) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	tpl, inst, ok := p.resolve(instanceID)
	if !ok {
		return core.ErrNotFound
	}

	switch {
	case scope == ScopeFuture:
		cutoff := p.view.Start()
		p.registry.MarkDeletedFrom(tpl.ID, cutoff)
		p.overrides.ClearFrom(tpl.ID, cutoff)
	case !tpl.IsRecurring():
		// a one-off disappears for good once its own due date is cut off
		p.registry.MarkDeletedFrom(tpl.ID, tpl.DueDate)
	default:
		p.overrides.SetDeletion(store.KeyFor(inst))
	}

	p.mutated()
	p.logger.Info("bill deleted", applog.FieldBillID, instanceID, applog.FieldScope, string(scope))
	return nil
}

// SkipBill marks one occurrence skipped. The skip is captured as an edit
// override so it survives month navigation and re-materialization.
func (p *Planner) SkipBill(instanceID string) error {
	skipped := true
	return p.UpdateBill(instanceID, BillChanges{Skipped: &skipped}, ScopeOccurrence)
}

// SetBillPaid toggles the paid flag of one occurrence.
func (p *Planner) SetBillPaid(instanceID string, paid bool) error {
	return p.UpdateBill(instanceID, BillChanges{Paid: &paid}, ScopeOccurrence)
}

// AddTodo appends a todo. Missing task or date is a reported no-op.
func (p *Planner) AddTodo(task string, due core.Date) (core.Todo, error) {
	td := core.Todo{ID: uuid.NewString(), Task: task, DueDate: due}
	if err := td.Validate(); err != nil {
		return core.Todo{}, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.todos.Add(td)
	return td, nil
}

// UpdateTodo applies changes to a todo. Unknown ids are a no-op.
func (p *Planner) UpdateTodo(id string, ch TodoChanges) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	ok := p.todos.Apply(id, func(td *core.Todo) {
		if ch.Task != nil {
			td.Task = *ch.Task
		}
		if ch.Completed != nil {
			td.Completed = *ch.Completed
		}
		if ch.DueDate != nil {
			td.DueDate = *ch.DueDate
		}
	})
	if !ok {
		return core.ErrNotFound
	}
	return nil
}

// DeleteTodo removes a todo. Unknown ids are a no-op.
func (p *Planner) DeleteTodo(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.todos.Delete(id) {
		return core.ErrNotFound
	}
	return nil
}

// AddPaycheck appends a paycheck. Missing amount or date is a reported no-op.
func (p *Planner) AddPaycheck(amount core.Money, date core.Date) (core.Paycheck, error) {
	pc := core.Paycheck{ID: uuid.NewString(), Amount: amount, Date: date}
	if err := pc.Validate(); err != nil {
		return core.Paycheck{}, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paychecks.Add(pc)
	return pc, nil
}

// DeletePaycheck removes a paycheck. Unknown ids are a no-op.
func (p *Planner) DeletePaycheck(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.paychecks.Delete(id) {
		return core.ErrNotFound
	}
	return nil
}

// MonthTodos returns the todos due in the viewed month.
func (p *Planner) MonthTodos() []core.Todo {
	p.mu.Lock()
	view := p.view
	p.mu.Unlock()

	var out []core.Todo
	for _, td := range p.todos.List() {
		if view.Contains(td.DueDate) {
			out = append(out, td)
		}
	}
	return out
}

// MonthPaychecks returns the paychecks dated in the viewed month.
func (p *Planner) MonthPaychecks() []core.Paycheck {
	p.mu.Lock()
	view := p.view
	p.mu.Unlock()

	var out []core.Paycheck
	for _, pc := range p.paychecks.List() {
		if view.Contains(pc.Date) {
			out = append(out, pc)
		}
	}
	return out
}
