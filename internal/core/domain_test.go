package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-15")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.ISO() != "2024-02-15" {
		t.Fatalf("round trip mismatch: %s", d.ISO())
	}

	for _, bad := range []string{"", "2024-2-15", "15/02/2024", "garbage"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	cases := []struct {
		m     Month
		start string
		end   string
	}{
		{Month{2024, time.February}, "2024-02-01", "2024-02-29"}, // leap year
		{Month{2023, time.February}, "2023-02-01", "2023-02-28"},
		{Month{2024, time.December}, "2024-12-01", "2024-12-31"},
	}
	for i, tc := range cases {
		if got := tc.m.Start().ISO(); got != tc.start {
			t.Errorf("case %d start = %s, want %s", i, got, tc.start)
		}
		if got := tc.m.End().ISO(); got != tc.end {
			t.Errorf("case %d end = %s, want %s", i, got, tc.end)
		}
	}
}

func TestMonthPrevNext(t *testing.T) {
	jan := Month{2024, time.January}
	if prev := jan.Prev(); prev != (Month{2023, time.December}) {
		t.Fatalf("Prev() = %v", prev)
	}
	if next := (Month{2024, time.December}).Next(); next != (Month{2025, time.January}) {
		t.Fatalf("Next() = %v", next)
	}
}

func TestMonthContains(t *testing.T) {
	feb := Month{2024, time.February}
	if !feb.Contains(NewDate(2024, time.February, 1)) {
		t.Error("first day should be contained")
	}
	if !feb.Contains(NewDate(2024, time.February, 29)) {
		t.Error("last day should be contained")
	}
	if feb.Contains(NewDate(2024, time.March, 1)) {
		t.Error("next month should not be contained")
	}
}

func TestBillValidate(t *testing.T) {
	good := Bill{
		Name:       "Rent",
		Amount:     Money{Cents: 100000},
		DueDate:    NewDate(2024, time.January, 15),
		Recurrence: Monthly,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Bill{
		{Name: "", Amount: Money{Cents: 1}, DueDate: NewDate(2024, time.January, 1), Recurrence: None},
		{Name: "a", Amount: Money{Cents: 0}, DueDate: NewDate(2024, time.January, 1), Recurrence: None},
		{Name: "a", Amount: Money{Cents: 1}, Recurrence: None}, // zero date
		{Name: "a", Amount: Money{Cents: 1}, DueDate: NewDate(2024, time.January, 1), Recurrence: "fortnightly"},
	}
	for i, b := range bads {
		if err := b.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestTodoAndPaycheckValidate(t *testing.T) {
	if err := (Todo{Task: "call bank", DueDate: NewDate(2024, time.March, 1)}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Todo{Task: " "}).Validate(); err == nil {
		t.Fatal("expected error for blank task")
	}
	if err := (Paycheck{Amount: Money{Cents: 150000}, Date: NewDate(2024, time.March, 1)}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Paycheck{Amount: Money{Cents: 0}, Date: NewDate(2024, time.March, 1)}).Validate(); err == nil {
		t.Fatal("expected error for zero amount")
	}
}

func TestBillJSONRoundTrip(t *testing.T) {
	b := Bill{
		ID:         "b1",
		Name:       "Internet",
		Amount:     Money{Cents: 4599},
		DueDate:    NewDate(2024, time.February, 15),
		Recurrence: Monthly,
		OriginalID: "t1",
	}
	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Bill
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Amount.Cents != 4599 || got.DueDate.ISO() != "2024-02-15" || got.OriginalID != "t1" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
