// internal/web/book_handlers.go
package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"biblioteca/internal/library"
)

type bookListView struct {
	State ListState[library.Book]
	Flash *Flash
}

type bookFormView struct {
	Edit   bool
	ID     int64
	Title  string
	Author string
	ISBN   string
	Stock  int
	Error  string
	Flash  *Flash
}

func (s *Server) handleBookList(w http.ResponseWriter, r *http.Request) {
	view := bookListView{Flash: popFlash(w, r)}

	data, err := s.books.List(r.Context())
	if err != nil {
		view.State = failed[library.Book](err)
	} else {
		view.State = loaded(data)
	}
	s.render(w, "books_list.html", "layout", view)
}

func (s *Server) handleBookNew(w http.ResponseWriter, r *http.Request) {
	// Stock starts at 1, matching the creation dialog's default.
	s.render(w, "book_form.html", "layout", bookFormView{Stock: 1, Flash: popFlash(w, r)})
}

func (s *Server) handleBookEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	book, err := s.books.Get(r.Context(), id)
	if err != nil {
		setFlash(w, "error", err.Error())
		http.Redirect(w, r, "/books", http.StatusSeeOther)
		return
	}

	s.render(w, "book_form.html", "layout", bookFormView{
		Edit:   true,
		ID:     book.ID,
		Title:  book.Title,
		Author: book.Author,
		ISBN:   book.ISBN,
		Stock:  book.Stock,
		Flash:  popFlash(w, r),
	})
}

func (s *Server) handleBookCreate(w http.ResponseWriter, r *http.Request) {
	form, ok := parseBookForm(w, r)
	if !ok {
		return
	}

	req := library.CreateBookRequest{
		Title:  form.Title,
		Author: form.Author,
		ISBN:   form.ISBN,
		Stock:  form.Stock,
	}
	if _, err := s.books.Create(r.Context(), req); err != nil {
		// The form stays open with the entered values so the user can
		// correct and retry.
		form.Error = err.Error()
		s.render(w, "book_form.html", "layout", form)
		return
	}

	setFlash(w, "success", "Book created")
	http.Redirect(w, r, "/books", http.StatusSeeOther)
}

func (s *Server) handleBookUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	form, ok := parseBookForm(w, r)
	if !ok {
		return
	}
	form.Edit = true
	form.ID = id

	// The edit form always submits the full field set; the request type
	// still allows partial updates for other API consumers.
	req := library.UpdateBookRequest{
		Title:  &form.Title,
		Author: &form.Author,
		ISBN:   &form.ISBN,
		Stock:  &form.Stock,
	}
	if _, err := s.books.Update(r.Context(), id, req); err != nil {
		form.Error = err.Error()
		s.render(w, "book_form.html", "layout", form)
		return
	}

	setFlash(w, "success", "Book updated")
	http.Redirect(w, r, "/books", http.StatusSeeOther)
}

func (s *Server) handleBookDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	// Declining the confirmation is a no-op: no remote call is made and
	// the list is left exactly as it was.
	if r.PostFormValue("confirm") != "yes" {
		http.Redirect(w, r, "/books", http.StatusSeeOther)
		return
	}

	if err := s.books.Delete(r.Context(), id); err != nil {
		setFlash(w, "error", err.Error())
	} else {
		setFlash(w, "success", "Book deleted")
	}
	http.Redirect(w, r, "/books", http.StatusSeeOther)
}

// parseBookForm reads the submitted fields. A non-numeric stock value is
// coerced to zero, mirroring the numeric input's behavior in the original
// dialog; range checking is validation's job.
func parseBookForm(w http.ResponseWriter, r *http.Request) (bookFormView, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return bookFormView{}, false
	}
	stock, _ := strconv.Atoi(r.PostFormValue("stock"))
	return bookFormView{
		Title:  r.PostFormValue("title"),
		Author: r.PostFormValue("author"),
		ISBN:   r.PostFormValue("isbn"),
		Stock:  stock,
	}, true
}

func urlID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
