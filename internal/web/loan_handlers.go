// internal/web/loan_handlers.go
package web

import (
	"net/http"
	"strconv"

	"biblioteca/internal/library"
)

type loanListView struct {
	State       ListState[library.Loan]
	Filter      string
	ActiveCount int
	Flash       *Flash
}

type loanFormView struct {
	Books       []library.Book
	BookID      int64
	StudentName string
	Error       string
	Flash       *Flash
}

func (s *Server) handleLoanList(w http.ResponseWriter, r *http.Request) {
	// The active view and the all view are two independent server queries;
	// switching the filter re-queries, it never filters the other set.
	filter := r.URL.Query().Get("filter")
	if filter != "all" {
		filter = "active"
	}

	view := loanListView{Filter: filter, Flash: popFlash(w, r)}

	data, err := s.loans.List(r.Context(), filter == "active")
	if err != nil {
		view.State = failed[library.Loan](err)
	} else {
		view.State = loaded(data)
		for _, loan := range data {
			if loan.Active() {
				view.ActiveCount++
			}
		}
	}
	s.render(w, "loans_list.html", "layout", view)
}

func (s *Server) handleLoanNew(w http.ResponseWriter, r *http.Request) {
	s.render(w, "loan_form.html", "layout", s.loanForm(r, loanFormView{Flash: popFlash(w, r)}))
}

// loanForm populates the book selector. The available list is fetched
// fresh on every render of the dialog and can still be stale by the time
// the form is submitted; the server has the last word.
func (s *Server) loanForm(r *http.Request, view loanFormView) loanFormView {
	available, err := s.loans.AvailableBooks(r.Context())
	if err != nil {
		if view.Error == "" {
			view.Error = err.Error()
		}
		return view
	}
	view.Books = available
	return view
}

func (s *Server) handleLoanCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	bookID, _ := strconv.ParseInt(r.PostFormValue("bookId"), 10, 64)
	req := library.CreateLoanRequest{
		BookID:      bookID,
		StudentName: r.PostFormValue("studentName"),
	}

	if _, err := s.loans.Create(r.Context(), req); err != nil {
		view := loanFormView{
			BookID:      req.BookID,
			StudentName: req.StudentName,
			Error:       err.Error(),
		}
		s.render(w, "loan_form.html", "layout", s.loanForm(r, view))
		return
	}

	setFlash(w, "success", "Loan created")
	http.Redirect(w, r, "/loans", http.StatusSeeOther)
}

func (s *Server) handleLoanReturn(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if r.PostFormValue("confirm") != "yes" {
		http.Redirect(w, r, "/loans", http.StatusSeeOther)
		return
	}

	if _, err := s.loans.Return(r.Context(), id); err != nil {
		setFlash(w, "error", err.Error())
	} else {
		setFlash(w, "success", "Loan marked as returned")
	}
	http.Redirect(w, r, "/loans", http.StatusSeeOther)
}

func (s *Server) handleLoanDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if r.PostFormValue("confirm") != "yes" {
		http.Redirect(w, r, "/loans", http.StatusSeeOther)
		return
	}

	if err := s.loans.Delete(r.Context(), id); err != nil {
		setFlash(w, "error", err.Error())
	} else {
		setFlash(w, "success", "Loan deleted")
	}
	http.Redirect(w, r, "/loans", http.StatusSeeOther)
}
