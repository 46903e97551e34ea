package http

import "net/http"

func (s *Server) handleAddPaycheck(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	amount, err := p.GetMoney("amount")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}
	date, err := p.GetDate("date")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid date, want YYYY-MM-DD")
		return
	}

	paycheck, err := s.planner.AddPaycheck(amount, date)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, paycheck)
}

func (s *Server) handleDeletePaycheck(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	id := p.Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}

	if err := s.planner.DeletePaycheck(id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.dashboardResponse())
}
