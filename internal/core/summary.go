package core

// WeekSummary aggregates the calendar week containing the first day of the
// viewed month.
type WeekSummary struct {
	Start     Date  `json:"start"`
	End       Date  `json:"end"`
	BillsDue  Money `json:"billsDue"`
	Paychecks Money `json:"paychecks"`
	Balance   Money `json:"balance"`
}

// MonthSummary is the aggregate view for one month.
type MonthSummary struct {
	Year           int         `json:"year"`
	Month          int         `json:"month"` // 1-12
	TotalBills     Money       `json:"totalBills"`
	UnpaidBills    Money       `json:"unpaidBills"`
	TotalPaychecks Money       `json:"totalPaychecks"`
	Balance        Money       `json:"balance"`
	CompletedTodos int         `json:"completedTodos"`
	TotalTodos     int         `json:"totalTodos"`
	Week           WeekSummary `json:"week"`
}
