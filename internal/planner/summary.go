package planner

import (
	"billfold/internal/core"
)

// startOfWeek returns the Sunday on or before d.
func startOfWeek(d core.Date) core.Date {
	return d.AddDays(-int(d.Time.Weekday()))
}

// Summary computes the aggregate figures for the viewed month: monthly
// totals plus the sub-aggregates of the calendar week containing the first
// day of the month view. Skipped bills never count; unpaid additionally
// excludes paid ones. Weekly figures are restricted to the monthly lists, so
// week days falling before the month start contribute nothing.
func (p *Planner) Summary() core.MonthSummary {
	p.mu.Lock()
	view := p.view
	bills := make([]core.Bill, len(p.bills))
	copy(bills, p.bills)
	p.mu.Unlock()

	paychecks := p.MonthPaychecks()
	todos := p.MonthTodos()

	weekStart := startOfWeek(view.Start())
	weekEnd := weekStart.AddDays(6)
	inWeek := func(d core.Date) bool {
		return d.OnOrAfter(weekStart) && !d.After(weekEnd)
	}

	s := core.MonthSummary{
		Year:  view.Year,
		Month: int(view.Month),
		Week: core.WeekSummary{
			Start: weekStart,
			End:   weekEnd,
		},
	}

	for _, b := range bills {
		if b.Skipped {
			continue
		}
		s.TotalBills.Cents += b.Amount.Cents
		if !b.Paid {
			s.UnpaidBills.Cents += b.Amount.Cents
		}
		if inWeek(b.DueDate) {
			s.Week.BillsDue.Cents += b.Amount.Cents
		}
	}
	for _, pc := range paychecks {
		s.TotalPaychecks.Cents += pc.Amount.Cents
		if inWeek(pc.Date) {
			s.Week.Paychecks.Cents += pc.Amount.Cents
		}
	}
	for _, td := range todos {
		s.TotalTodos++
		if td.Completed {
			s.CompletedTodos++
		}
	}

	s.Balance.Cents = s.TotalPaychecks.Cents - s.TotalBills.Cents
	s.Week.Balance.Cents = s.Week.Paychecks.Cents - s.Week.BillsDue.Cents
	return s
}
