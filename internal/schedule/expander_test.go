package schedule

import (
	"testing"
	"time"

	"billfold/internal/core"
)

func dates(ds []core.Date) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.ISO()
	}
	return out
}

func equalDates(got []core.Date, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, d := range got {
		if d.ISO() != want[i] {
			return false
		}
	}
	return true
}

func TestExpandMonthly(t *testing.T) {
	bill := core.Bill{
		ID:         "t1",
		DueDate:    core.NewDate(2024, time.January, 15),
		Recurrence: core.Monthly,
	}

	got := Expand(bill, core.Month{Year: 2024, Month: time.February})
	if !equalDates(got, "2024-02-15") {
		t.Fatalf("February expansion = %v", dates(got))
	}

	// anchor month includes the anchor itself
	got = Expand(bill, core.Month{Year: 2024, Month: time.January})
	if !equalDates(got, "2024-01-15") {
		t.Fatalf("January expansion = %v", dates(got))
	}

	// months before the anchor yield nothing
	got = Expand(bill, core.Month{Year: 2023, Month: time.December})
	if len(got) != 0 {
		t.Fatalf("pre-anchor expansion = %v", dates(got))
	}
}

func TestExpandWeekly(t *testing.T) {
	bill := core.Bill{
		ID:         "t1",
		DueDate:    core.NewDate(2024, time.January, 29), // Monday
		Recurrence: core.Weekly,
	}

	got := Expand(bill, core.Month{Year: 2024, Month: time.February})
	if !equalDates(got, "2024-02-05", "2024-02-12", "2024-02-19", "2024-02-26") {
		t.Fatalf("weekly expansion = %v", dates(got))
	}
}

func TestExpandYearly(t *testing.T) {
	bill := core.Bill{
		ID:         "t1",
		DueDate:    core.NewDate(2022, time.March, 10),
		Recurrence: core.Yearly,
	}

	got := Expand(bill, core.Month{Year: 2024, Month: time.March})
	if !equalDates(got, "2024-03-10") {
		t.Fatalf("yearly expansion = %v", dates(got))
	}
	if got := Expand(bill, core.Month{Year: 2024, Month: time.April}); len(got) != 0 {
		t.Fatalf("off-month yearly expansion = %v", dates(got))
	}
}

func TestExpandIncludesLastDayOfMonth(t *testing.T) {
	bill := core.Bill{
		ID:         "t1",
		DueDate:    core.NewDate(2024, time.January, 31),
		Recurrence: core.Monthly,
	}

	got := Expand(bill, core.Month{Year: 2024, Month: time.January})
	if !equalDates(got, "2024-01-31") {
		t.Fatalf("due date on month end must be yielded, got %v", dates(got))
	}
}

func TestExpandMonthlyClampsShortMonths(t *testing.T) {
	bill := core.Bill{
		ID:         "t1",
		DueDate:    core.NewDate(2024, time.January, 31),
		Recurrence: core.Monthly,
	}

	// 2024 is a leap year: Jan 31 -> Feb 29
	got := Expand(bill, core.Month{Year: 2024, Month: time.February})
	if !equalDates(got, "2024-02-29") {
		t.Fatalf("February expansion = %v", dates(got))
	}

	// the clamp carries forward: Feb 29 -> Mar 29, not Mar 31
	got = Expand(bill, core.Month{Year: 2024, Month: time.March})
	if !equalDates(got, "2024-03-29") {
		t.Fatalf("March expansion = %v", dates(got))
	}
}

func TestExpandStopsAtCutoff(t *testing.T) {
	bill := core.Bill{
		ID:          "t1",
		DueDate:     core.NewDate(2024, time.January, 15),
		Recurrence:  core.Monthly,
		DeletedFrom: core.NewDate(2024, time.March, 1),
	}

	if got := Expand(bill, core.Month{Year: 2024, Month: time.March}); len(got) != 0 {
		t.Fatalf("cutoff month should be empty, got %v", dates(got))
	}
	if got := Expand(bill, core.Month{Year: 2024, Month: time.April}); len(got) != 0 {
		t.Fatalf("months past the cutoff should be empty, got %v", dates(got))
	}
	// months before the cutoff are untouched
	if got := Expand(bill, core.Month{Year: 2024, Month: time.February}); !equalDates(got, "2024-02-15") {
		t.Fatalf("pre-cutoff month = %v", dates(got))
	}
}

func TestExpandCutoffOnDueDateItself(t *testing.T) {
	bill := core.Bill{
		ID:          "t1",
		DueDate:     core.NewDate(2024, time.January, 15),
		Recurrence:  core.Monthly,
		DeletedFrom: core.NewDate(2024, time.February, 15),
	}

	// cutoff comparison is >=, so the Feb 15 occurrence is gone too
	if got := Expand(bill, core.Month{Year: 2024, Month: time.February}); len(got) != 0 {
		t.Fatalf("occurrence on the cutoff day must not be yielded, got %v", dates(got))
	}
}

func TestExpandIsRestartable(t *testing.T) {
	bill := core.Bill{
		ID:         "t1",
		DueDate:    core.NewDate(2024, time.January, 15),
		Recurrence: core.Monthly,
	}
	month := core.Month{Year: 2024, Month: time.June}

	first := Expand(bill, month)
	second := Expand(bill, month)
	if !equalDates(second, dates(first)...) {
		t.Fatalf("repeat expansion diverged: %v vs %v", dates(first), dates(second))
	}
}

func TestExpandNonRecurringYieldsNothing(t *testing.T) {
	bill := core.Bill{
		ID:         "t1",
		DueDate:    core.NewDate(2024, time.February, 15),
		Recurrence: core.None,
	}
	if got := Expand(bill, core.Month{Year: 2024, Month: time.February}); len(got) != 0 {
		t.Fatalf("non-recurring template must not expand, got %v", dates(got))
	}
}

func TestStepperFor(t *testing.T) {
	for _, r := range []core.Recurrence{core.Weekly, core.Monthly, core.Yearly} {
		if _, err := StepperFor(r); err != nil {
			t.Errorf("StepperFor(%s) error: %v", r, err)
		}
	}
	if _, err := StepperFor(core.None); err == nil {
		t.Error("StepperFor(none) should fail")
	}
	if _, err := StepperFor("fortnightly"); err == nil {
		t.Error("StepperFor(unknown) should fail")
	}
}
