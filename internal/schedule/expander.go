// Package schedule turns bill templates and overrides into the concrete
// per-month occurrence list.
//
// This file implements the Strategy Pattern for recurrence stepping. Each
// recurrence type (weekly, monthly, yearly) has its own stepper that
// encapsulates how a due date advances to the next occurrence.
package schedule

import (
	"fmt"
	"time"

	"billfold/internal/core"
)

// Stepper is the strategy interface for advancing a due date by one
// recurrence period.
type Stepper interface {
	// Next returns the due date of the occurrence following d.
	Next(d core.Date) core.Date
}

// WeeklyStepper advances by seven days.
type WeeklyStepper struct{}

func (WeeklyStepper) Next(d core.Date) core.Date {
	return d.AddDays(7)
}

// MonthlyStepper advances by one calendar month, clamping to the last valid
// day when the month is shorter. The step starts from the previous occurrence,
// so a date clamped once (Jan 31 -> Feb 29) keeps the clamped day afterwards
// (Mar 29), matching the original scheduling behavior.
type MonthlyStepper struct{}

func (MonthlyStepper) Next(d core.Date) core.Date {
	return addMonthsClamped(d, 1)
}

// YearlyStepper advances by twelve calendar months.
type YearlyStepper struct{}

func (YearlyStepper) Next(d core.Date) core.Date {
	return addMonthsClamped(d, 12)
}

// addMonthsClamped adds n months, clamping the day to the target month's last
// day instead of letting it overflow into the following month.
func addMonthsClamped(d core.Date, n int) core.Date {
	y, m, day := d.Time.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	lastDay := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}
	return core.NewDate(first.Year(), first.Month(), day)
}

// steppers maps recurrence types to their stepping strategies.
var steppers = map[core.Recurrence]Stepper{
	core.Weekly:  WeeklyStepper{},
	core.Monthly: MonthlyStepper{},
	core.Yearly:  YearlyStepper{},
}

// StepperFor returns the stepping strategy for a recurrence type. Returns an
// error for non-recurring or unknown types, which have no step.
func StepperFor(r core.Recurrence) (Stepper, error) {
	s, ok := steppers[r]
	if !ok {
		return nil, fmt.Errorf("no stepper for recurrence %q", r)
	}
	return s, nil
}

// Expand produces the due dates of a recurring template falling in the given
// month, in chronological order.
//
// The walk always restarts from the template's anchor due date; no state is
// carried between calls. Dates on or after the template's DeletedFrom cutoff
// end the walk entirely. The month bounds are inclusive on both ends.
// Non-recurring templates yield nothing; the caller includes them directly.
func Expand(b core.Bill, month core.Month) []core.Date {
	s, err := StepperFor(b.Recurrence)
	if err != nil {
		return nil
	}

	start, end := month.Start(), month.End()
	var out []core.Date
	for cur := b.DueDate; !cur.After(end); cur = s.Next(cur) {
		if !b.DeletedFrom.IsZero() && cur.OnOrAfter(b.DeletedFrom) {
			break
		}
		if cur.OnOrAfter(start) {
			out = append(out, cur)
		}
	}
	return out
}
