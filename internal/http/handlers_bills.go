package http

import (
	"log/slog"
	"net/http"

	"billfold/internal/core"
	"billfold/internal/planner"
)

func (s *Server) handleAddBill(w http.ResponseWriter, r *http.Request) {
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
	due, err := p.GetDate("dueDate")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid due date, want YYYY-MM-DD")
		return
	}

	bill, err := s.planner.AddBill(p.Get("name"), amount, due, core.Recurrence(p.Get("recurrence")))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	slog.InfoContext(r.Context(), "Bill created", "id", bill.ID, "name", bill.Name)
	writeJSON(w, http.StatusCreated, bill)
}

// parseScope reads the scope field, defaulting to a single occurrence.
func parseScope(p *RequestBodyParser) (planner.Scope, bool) {
	raw := p.Get("scope")
	if raw == "" {
		return planner.ScopeOccurrence, true
	}
	scope := planner.Scope(raw)
	return scope, scope.Valid()
}

func (s *Server) handleUpdateBill(w http.ResponseWriter, r *http.Request) {
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
	scope, ok := parseScope(p)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid scope")
		return
	}

	var ch planner.BillChanges
	if p.Has("name") {
		name := p.Get("name")
		ch.Name = &name
	}
	if p.Has("amount") {
		amount, err := p.GetMoney("amount")
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid amount")
			return
		}
		ch.Amount = &amount
	}
	if p.Has("dueDate") {
		due, err := p.GetDate("dueDate")
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid due date, want YYYY-MM-DD")
			return
		}
		ch.DueDate = &due
	}
	if p.Has("recurrence") {
		rec := core.Recurrence(p.Get("recurrence"))
		if !rec.Valid() {
			writeError(w, http.StatusUnprocessableEntity, "invalid recurrence")
			return
		}
		ch.Recurrence = &rec
	}
	if p.Has("paid") {
		paid := p.GetBool("paid")
		ch.Paid = &paid
	}
	if p.Has("skipped") {
		skipped := p.GetBool("skipped")
		ch.Skipped = &skipped
	}

	if err := s.planner.UpdateBill(id, ch, scope); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.dashboardResponse())
}

func (s *Server) handleDeleteBill(w http.ResponseWriter, r *http.Request) {
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
	scope, ok := parseScope(p)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid scope")
		return
	}

	if err := s.planner.DeleteBill(id, scope); err != nil {
		writeDomainError(w, err)
		return
	}
	slog.InfoContext(r.Context(), "Bill deleted", "id", id, "scope", string(scope))
	writeJSON(w, http.StatusOK, s.dashboardResponse())
}

func (s *Server) handleSkipBill(w http.ResponseWriter, r *http.Request) {
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

	if err := s.planner.SkipBill(id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.dashboardResponse())
}

func (s *Server) handleSetBillPaid(w http.ResponseWriter, r *http.Request) {
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
	paid := true
	if p.Has("paid") {
		paid = p.GetBool("paid")
	}

	if err := s.planner.SetBillPaid(id, paid); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.dashboardResponse())
}
