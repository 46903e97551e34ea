package schedule

import (
	"github.com/google/uuid"

	"billfold/internal/core"
	"billfold/internal/store"
)

// Materialize combines the template registry snapshot with the override store
// to produce the bill instances shown for one month.
//
// The function is pure and stateless: identical inputs yield instances equal
// in all fields except the freshly generated ids of non-overridden
// occurrences. Non-recurring bills due in the month come first, followed by
// each recurring template's occurrences in chronological order.
//
// Per candidate date of a recurring template: a deletion override suppresses
// the occurrence entirely (an edit for the same key is moot), an edit
// override is emitted as stored, and otherwise a fresh instance is
// synthesized from the template. An edit may move an occurrence to another
// date; the emitted date then claims the (template, due date) slot, so a
// later candidate landing on it is not synthesized again, and a date moved
// outside the month drops the occurrence from this view.
func Materialize(templates []core.Bill, ov *store.Overrides, month core.Month) []core.Bill {
	var out []core.Bill

	for _, t := range templates {
		if t.IsRecurring() {
			continue
		}
		if month.Contains(t.DueDate) && (t.DeletedFrom.IsZero() || t.DueDate.Before(t.DeletedFrom)) {
			out = append(out, t)
		}
	}

	seen := make(map[store.Key]struct{})
	for _, t := range templates {
		if !t.IsRecurring() {
			continue
		}
		for _, due := range Expand(t, month) {
			k := store.Key{BillID: t.ID, Due: due}
			if ov.IsDeleted(k) {
				continue
			}
			inst, hasEdit := ov.Edit(k)
			if !hasEdit {
				inst = synthesize(t, due)
			}
			if !month.Contains(inst.DueDate) {
				continue
			}
			slot := store.Key{BillID: t.ID, Due: inst.DueDate}
			if _, taken := seen[slot]; taken {
				continue
			}
			seen[slot] = struct{}{}
			out = append(out, inst)
		}
	}

	return out
}

// synthesize builds a fresh instance for one occurrence of a recurring
// template. The instance gets its own id and starts unpaid and unskipped.
func synthesize(t core.Bill, due core.Date) core.Bill {
	return core.Bill{
		ID:         uuid.NewString(),
		Name:       t.Name,
		Amount:     t.Amount,
		DueDate:    due,
		Recurrence: t.Recurrence,
		Paid:       false,
		Skipped:    false,
		OriginalID: t.ID,
	}
}
