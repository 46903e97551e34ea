package http

import (
	"net/http"

	"billfold/internal/planner"
)

func todoChangesFromBody(p *RequestBodyParser) (planner.TodoChanges, error) {
	var ch planner.TodoChanges
	if p.Has("task") {
		task := p.Get("task")
		ch.Task = &task
	}
	if p.Has("completed") {
		completed := p.GetBool("completed")
		ch.Completed = &completed
	}
	if p.Has("dueDate") {
		due, err := p.GetDate("dueDate")
		if err != nil {
			return ch, err
		}
		ch.DueDate = &due
	}
	return ch, nil
}

func (s *Server) handleAddTodo(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	due, err := p.GetDate("dueDate")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid due date, want YYYY-MM-DD")
		return
	}

	todo, err := s.planner.AddTodo(p.Get("task"), due)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, todo)
}

func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
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

	ch, err := todoChangesFromBody(p)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid due date, want YYYY-MM-DD")
		return
	}
	if err := s.planner.UpdateTodo(id, ch); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.dashboardResponse())
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
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

	if err := s.planner.DeleteTodo(id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.dashboardResponse())
}
