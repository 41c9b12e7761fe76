// internal/web/server.go

// Package web is the presentation layer of the admin interface: two
// management screens (books, loans) rendered server-side, with all business
// rules living behind the remote library API. Every successful mutation
// redirects back to the list route, so the following GET re-fetches the
// collection from the server; displayed state is never patched locally.
package web

import (
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"biblioteca/internal/books"
	"biblioteca/internal/loans"
)

const sessionCookie = "biblioteca_session"

type Server struct {
	books    books.Service
	loans    loans.Service
	creds    Credentials
	sessions *SessionStore
	// loginLimiter bounds credential guesses the same way the upstream
	// bounds registrations.
	loginLimiter *rate.Limiter
	tmpl         map[string]*template.Template
}

func NewServer(bookSvc books.Service, loanSvc loans.Service, creds Credentials) *Server {
	return &Server{
		books:        bookSvc,
		loans:        loanSvc,
		creds:        creds,
		sessions:     NewSessionStore(12 * time.Hour),
		loginLimiter: rate.NewLimiter(rate.Every(1*time.Minute), 5),
		tmpl:         parseTemplates(),
	}
}

// Router wires the admin routes. Everything except the login screen sits
// behind the session guard.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)

	r.Get("/login", s.handleLoginForm)
	r.Post("/login", s.handleLogin)
	r.Post("/logout", s.handleLogout)

	r.Group(func(r chi.Router) {
		r.Use(s.requireSession)

		r.Get("/", s.handleHome)

		r.Route("/books", func(r chi.Router) {
			r.Get("/", s.handleBookList)
			r.Post("/", s.handleBookCreate)
			r.Get("/new", s.handleBookNew)
			r.Get("/{id}/edit", s.handleBookEdit)
			r.Post("/{id}", s.handleBookUpdate)
			r.Post("/{id}/delete", s.handleBookDelete)
		})

		r.Route("/loans", func(r chi.Router) {
			r.Get("/", s.handleLoanList)
			r.Post("/", s.handleLoanCreate)
			r.Get("/new", s.handleLoanNew)
			r.Post("/{id}/return", s.handleLoanReturn)
			r.Post("/{id}/delete", s.handleLoanDelete)
		})
	})

	return r
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, "home.html", "layout", struct{ Flash *Flash }{popFlash(w, r)})
}
