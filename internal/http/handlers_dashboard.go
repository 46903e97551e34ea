package http

import (
	"net/http"
	"strings"

	"billfold/internal/core"
)

// DashboardResponse is the full month view: the materialized bills, the
// month's todos and paychecks, and the aggregate summary.
type DashboardResponse struct {
	Month     string            `json:"month"`
	Bills     []core.Bill       `json:"bills"`
	Todos     []core.Todo       `json:"todos"`
	Paychecks []core.Paycheck   `json:"paychecks"`
	Summary   core.MonthSummary `json:"summary"`
}

func (s *Server) dashboardResponse() DashboardResponse {
	bills := s.planner.Bills()
	if bills == nil {
		bills = []core.Bill{}
	}
	todos := s.planner.MonthTodos()
	if todos == nil {
		todos = []core.Todo{}
	}
	paychecks := s.planner.MonthPaychecks()
	if paychecks == nil {
		paychecks = []core.Paycheck{}
	}
	return DashboardResponse{
		Month:     s.planner.View().String(),
		Bills:     bills,
		Todos:     todos,
		Paychecks: paychecks,
		Summary:   s.planner.Summary(),
	}
}

// handleDashboard serves the current month view. An optional month query
// parameter (YYYY-MM) pins the view before responding.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
		m, err := core.ParseMonth(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid month, want YYYY-MM")
			return
		}
		s.planner.SetMonth(m)
	}
	writeJSON(w, http.StatusOK, s.dashboardResponse())
}

func (s *Server) handleViewPrev(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	s.planner.PrevMonth()
	writeJSON(w, http.StatusOK, s.dashboardResponse())
}

func (s *Server) handleViewNext(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	s.planner.NextMonth()
	writeJSON(w, http.StatusOK, s.dashboardResponse())
}
