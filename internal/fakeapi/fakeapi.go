// internal/fakeapi/fakeapi.go

// Package fakeapi is an in-memory stand-in for the remote library system.
// It implements the full call contract the admin client depends on,
// including the server-owned rules the client must never compute itself:
// stock arithmetic, ISBN uniqueness, and the one-way loan transition.
// It backs cmd/fakeapi for local development and the integration tests.
package fakeapi

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"biblioteca/internal/library"
)

// Server holds the in-memory ledger. All access is serialized; the contract
// it simulates is read-after-write consistent.
type Server struct {
	mu         sync.Mutex
	books      map[int64]*library.Book
	loans      map[int64]*library.Loan
	nextBookID int64
	nextLoanID int64
}

func New() *Server {
	return &Server{
		books: make(map[int64]*library.Book),
		loans: make(map[int64]*library.Loan),
	}
}

// Router mounts the remote API contract.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Route("/books", func(r chi.Router) {
		r.Get("/", s.handleListBooks)
		r.Post("/", s.handleCreateBook)
		r.Get("/available", s.handleAvailableBooks)
		r.Get("/{id}", s.handleGetBook)
		r.Put("/{id}", s.handleUpdateBook)
		r.Delete("/{id}", s.handleDeleteBook)
	})

	r.Route("/loans", func(r chi.Router) {
		r.Get("/", s.handleListLoans)
		r.Post("/", s.handleCreateLoan)
		r.Get("/active", s.handleActiveLoans)
		r.Patch("/{id}/return", s.handleReturnLoan)
		r.Delete("/{id}", s.handleDeleteLoan)
	})

	return r
}

// available is the number of copies of a book not currently out on an
// active loan. Callers must hold mu.
func (s *Server) available(bookID int64) int {
	book, ok := s.books[bookID]
	if !ok {
		return 0
	}
	out := 0
	for _, loan := range s.loans {
		if loan.BookID == bookID && loan.Status == library.StatusActive {
			out++
		}
	}
	return book.Stock - out
}

func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	books := make([]library.Book, 0, len(s.books))
	for _, b := range s.books {
		books = append(books, *b)
	}
	s.mu.Unlock()

	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	writeJSON(w, http.StatusOK, books)
}

func (s *Server) handleAvailableBooks(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	books := make([]library.Book, 0, len(s.books))
	for _, b := range s.books {
		avail := s.available(b.ID)
		if avail <= 0 {
			continue
		}
		view := *b
		view.AvailableQuantity = avail
		view.TotalQuantity = b.Stock
		books = append(books, view)
	}
	s.mu.Unlock()

	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	writeJSON(w, http.StatusOK, books)
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	book, exists := s.books[id]
	var view library.Book
	if exists {
		view = *book
	}
	s.mu.Unlock()

	if !exists {
		writeError(w, http.StatusNotFound, "Libro no encontrado")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var req library.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	for _, b := range s.books {
		if b.ISBN == req.ISBN {
			s.mu.Unlock()
			writeError(w, http.StatusConflict, "El ISBN ya está registrado")
			return
		}
	}
	s.nextBookID++
	book := &library.Book{
		ID:        s.nextBookID,
		Title:     req.Title,
		Author:    req.Author,
		ISBN:      req.ISBN,
		Stock:     req.Stock,
		CreatedAt: time.Now().UTC(),
	}
	s.books[book.ID] = book
	view := *book
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req library.UpdateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	book, exists := s.books[id]
	if !exists {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "Libro no encontrado")
		return
	}
	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Author != nil {
		book.Author = *req.Author
	}
	if req.ISBN != nil {
		book.ISBN = *req.ISBN
	}
	if req.Stock != nil {
		book.Stock = *req.Stock
	}
	view := *book
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	_, exists := s.books[id]
	delete(s.books, id)
	s.mu.Unlock()

	if !exists {
		writeError(w, http.StatusNotFound, "Libro no encontrado")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListLoans(w http.ResponseWriter, r *http.Request) {
	s.listLoans(w, false)
}

func (s *Server) handleActiveLoans(w http.ResponseWriter, r *http.Request) {
	s.listLoans(w, true)
}

func (s *Server) listLoans(w http.ResponseWriter, activeOnly bool) {
	s.mu.Lock()
	loans := make([]library.Loan, 0, len(s.loans))
	for _, l := range s.loans {
		if activeOnly && l.Status != library.StatusActive {
			continue
		}
		loans = append(loans, *l)
	}
	s.mu.Unlock()

	sort.Slice(loans, func(i, j int) bool { return loans[i].ID < loans[j].ID })
	writeJSON(w, http.StatusOK, loans)
}

func (s *Server) handleCreateLoan(w http.ResponseWriter, r *http.Request) {
	var req library.CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	book, exists := s.books[req.BookID]
	if !exists {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "Libro no encontrado")
		return
	}
	if s.available(req.BookID) <= 0 {
		s.mu.Unlock()
		// The real upstream reports stock exhaustion in Spanish; the admin
		// client's substring contract depends on this exact wording.
		writeError(w, http.StatusBadRequest, "El libro no tiene stock disponible")
		return
	}

	now := time.Now().UTC()
	s.nextLoanID++
	loan := &library.Loan{
		ID:          s.nextLoanID,
		BookID:      book.ID,
		BookTitle:   book.Title,
		StudentName: req.StudentName,
		LoanDate:    now,
		Status:      library.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.loans[loan.ID] = loan
	view := *loan
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) handleReturnLoan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	loan, exists := s.loans[id]
	if !exists {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "Préstamo no encontrado")
		return
	}
	if loan.Status == library.StatusReturned {
		s.mu.Unlock()
		writeError(w, http.StatusBadRequest, "El préstamo ya fue devuelto")
		return
	}

	now := time.Now().UTC()
	loan.Status = library.StatusReturned
	loan.ReturnDate = &now
	loan.UpdatedAt = now
	view := *loan
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDeleteLoan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	_, exists := s.loans[id]
	delete(s.loans, id)
	s.mu.Unlock()

	if !exists {
		writeError(w, http.StatusNotFound, "Préstamo no encontrado")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
