package planner

import (
	"testing"
	"time"

	"billfold/internal/core"
)

func TestSummaryMonthlyFigures(t *testing.T) {
	p := newTestPlanner(t) // viewing January 2024

	if _, err := p.AddBill("Rent", core.Money{Cents: 100000}, core.NewDate(2024, time.January, 15), core.None); err != nil {
		t.Fatalf("AddBill: %v", err)
	}
	gym, err := p.AddBill("Gym", core.Money{Cents: 4500}, core.NewDate(2024, time.January, 20), core.None)
	if err != nil {
		t.Fatalf("AddBill: %v", err)
	}
	if _, err := p.AddPaycheck(core.Money{Cents: 250000}, core.NewDate(2024, time.January, 5)); err != nil {
		t.Fatalf("AddPaycheck: %v", err)
	}
	td, err := p.AddTodo("file taxes", core.NewDate(2024, time.January, 25))
	if err != nil {
		t.Fatalf("AddTodo: %v", err)
	}
	done := true
	if err := p.UpdateTodo(td.ID, TodoChanges{Completed: &done}); err != nil {
		t.Fatalf("UpdateTodo: %v", err)
	}

	s := p.Summary()
	if s.TotalBills.Cents != 104500 {
		t.Errorf("TotalBills = %d", s.TotalBills.Cents)
	}
	if s.UnpaidBills.Cents != 104500 {
		t.Errorf("UnpaidBills = %d", s.UnpaidBills.Cents)
	}
	if s.TotalPaychecks.Cents != 250000 {
		t.Errorf("TotalPaychecks = %d", s.TotalPaychecks.Cents)
	}
	if s.Balance.Cents != 145500 {
		t.Errorf("Balance = %d", s.Balance.Cents)
	}
	if s.CompletedTodos != 1 || s.TotalTodos != 1 {
		t.Errorf("todos = %d/%d", s.CompletedTodos, s.TotalTodos)
	}

	// paid bills leave the unpaid figure but not the total
	if err := p.SetBillPaid(gym.ID, true); err != nil {
		t.Fatalf("SetBillPaid: %v", err)
	}
	s = p.Summary()
	if s.TotalBills.Cents != 104500 || s.UnpaidBills.Cents != 100000 {
		t.Errorf("after paid: total=%d unpaid=%d", s.TotalBills.Cents, s.UnpaidBills.Cents)
	}

	// skipped bills leave both figures
	if err := p.SkipBill(gym.ID); err != nil {
		t.Fatalf("SkipBill: %v", err)
	}
	s = p.Summary()
	if s.TotalBills.Cents != 100000 || s.UnpaidBills.Cents != 100000 {
		t.Errorf("after skip: total=%d unpaid=%d", s.TotalBills.Cents, s.UnpaidBills.Cents)
	}
}

func TestSummaryWeeklyFigures(t *testing.T) {
	p := newTestPlanner(t)
	p.SetMonth(core.Month{Year: 2024, Month: time.March})

	// March 1, 2024 is a Friday; its calendar week runs Sun Feb 25 - Sat Mar 2
	s := p.Summary()
	if s.Week.Start.ISO() != "2024-02-25" || s.Week.End.ISO() != "2024-03-02" {
		t.Fatalf("week bounds = %s..%s", s.Week.Start.ISO(), s.Week.End.ISO())
	}

	// due inside the week
	if _, err := p.AddBill("Water", core.Money{Cents: 3000}, core.NewDate(2024, time.March, 1), core.None); err != nil {
		t.Fatalf("AddBill: %v", err)
	}
	// due in the month but outside the week
	if _, err := p.AddBill("Power", core.Money{Cents: 8000}, core.NewDate(2024, time.March, 15), core.None); err != nil {
		t.Fatalf("AddBill: %v", err)
	}
	if _, err := p.AddPaycheck(core.Money{Cents: 100000}, core.NewDate(2024, time.March, 1)); err != nil {
		t.Fatalf("AddPaycheck: %v", err)
	}
	// Feb 26 is inside the calendar week but outside the viewed month, so the
	// monthly filter excludes it from the weekly figures too
	if _, err := p.AddPaycheck(core.Money{Cents: 77700}, core.NewDate(2024, time.February, 26)); err != nil {
		t.Fatalf("AddPaycheck: %v", err)
	}

	s = p.Summary()
	if s.Week.BillsDue.Cents != 3000 {
		t.Errorf("Week.BillsDue = %d", s.Week.BillsDue.Cents)
	}
	if s.Week.Paychecks.Cents != 100000 {
		t.Errorf("Week.Paychecks = %d", s.Week.Paychecks.Cents)
	}
	if s.Week.Balance.Cents != 97000 {
		t.Errorf("Week.Balance = %d", s.Week.Balance.Cents)
	}
	if s.TotalBills.Cents != 11000 {
		t.Errorf("TotalBills = %d", s.TotalBills.Cents)
	}
}

func TestSummaryNegativeBalance(t *testing.T) {
	p := newTestPlanner(t)
	if _, err := p.AddBill("Rent", core.Money{Cents: 100000}, core.NewDate(2024, time.January, 15), core.None); err != nil {
		t.Fatalf("AddBill: %v", err)
	}
	s := p.Summary()
	if s.Balance.Cents != -100000 {
		t.Errorf("Balance = %d, want -100000", s.Balance.Cents)
	}
}
