package core

import (
	"errors"
	"strings"
	"time"
)

const (
	None    Recurrence = "none"
	Weekly  Recurrence = "weekly"
	Monthly Recurrence = "monthly"
	Yearly  Recurrence = "yearly"
)

type (
	Recurrence string

	Date struct {
		time.Time
	}

	// Month identifies one calendar month view.
	Month struct {
		Year  int
		Month time.Month
	}

	Money struct {
		Cents int64
	}

	// Bill is both a user-authored template and a materialized occurrence.
	// Templates have OriginalID == ""; synthesized occurrences carry the
	// owning template's id in OriginalID and never own series state.
	Bill struct {
		ID          string     `json:"id"`
		Name        string     `json:"name"`
		Amount      Money      `json:"amount"`
		DueDate     Date       `json:"dueDate"`
		Recurrence  Recurrence `json:"recurrence"`
		Paid        bool       `json:"paid"`
		Skipped     bool       `json:"skipped"`
		OriginalID  string     `json:"originalId,omitempty"`
		DeletedFrom Date       `json:"deletedFromDate,omitempty"`
	}

	Todo struct {
		ID        string `json:"id"`
		Task      string `json:"task"`
		Completed bool   `json:"completed"`
		DueDate   Date   `json:"dueDate"`
	}

	Paycheck struct {
		ID     string `json:"id"`
		Amount Money  `json:"amount"`
		Date   Date   `json:"date"`
	}
)

var (
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidRecurrence = errors.New("invalid recurrence")
	ErrEmptyName         = errors.New("empty name")
	ErrEmptyTask         = errors.New("empty task")
	ErrNotFound          = errors.New("not found")
)

const isoDate = "2006-01-02"

// NewDate creates a whole-day Date at UTC midnight.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO-8601 date string (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(isoDate, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// ISO renders the date as YYYY-MM-DD.
func (d Date) ISO() string {
	return d.Format(isoDate)
}

// Before reports whether d falls on an earlier day than other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d falls on a later day than other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// OnOrAfter reports whether d falls on other's day or later.
func (d Date) OnOrAfter(other Date) bool {
	return !d.Time.Before(other.Time)
}

func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.ISO() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MonthOf returns the month containing the given date.
func MonthOf(d Date) Month {
	return Month{Year: d.Time.Year(), Month: d.Time.Month()}
}

// Start returns the first day of the month.
func (m Month) Start() Date {
	return NewDate(m.Year, m.Month, 1)
}

// End returns the last day of the month.
func (m Month) End() Date {
	return Date{Time: time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC)}
}

// Contains reports whether d falls within the month, inclusive on both ends.
func (m Month) Contains(d Date) bool {
	return !d.Before(m.Start()) && !d.After(m.End())
}

// Prev returns the previous calendar month.
func (m Month) Prev() Month {
	return MonthOf(Date{Time: m.Start().Time.AddDate(0, -1, 0)})
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	return MonthOf(Date{Time: m.Start().Time.AddDate(0, 1, 0)})
}

// String renders the month as YYYY-MM.
func (m Month) String() string {
	return m.Start().Format("2006-01")
}

// ParseMonth parses a YYYY-MM month string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return Month{}, ErrInvalidDate
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// Valid reports whether r is a known recurrence type.
func (r Recurrence) Valid() bool {
	switch r {
	case None, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// IsRecurring reports whether the bill generates more than one occurrence.
func (b Bill) IsRecurring() bool {
	return b.Recurrence != None && b.Recurrence != ""
}

// Validate checks template-level constraints for a user-authored bill.
func (b Bill) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrEmptyName
	}
	if len(b.Name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	if err := b.Amount.Validate(); err != nil {
		return err
	}
	if b.DueDate.IsZero() {
		return ErrInvalidDate
	}
	if !b.Recurrence.Valid() {
		return ErrInvalidRecurrence
	}
	return nil
}

func (t Todo) Validate() error {
	if strings.TrimSpace(t.Task) == "" {
		return ErrEmptyTask
	}
	if t.DueDate.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (p Paycheck) Validate() error {
	if err := p.Amount.Validate(); err != nil {
		return err
	}
	if p.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
