// internal/web/auth_handlers.go
package web

import "net/http"

type loginView struct {
	Username string
	Error    string
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, "login.html", "login", loginView{})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if !s.loginLimiter.Allow() {
		s.render(w, "login.html", "login", loginView{
			Username: username,
			Error:    "too many attempts, try again in a minute",
		})
		return
	}

	ok, err := verifyPassword(password, s.creds.Salt, s.creds.Hash)
	if err != nil || !ok || username != s.creds.Username {
		s.render(w, "login.html", "login", loginView{
			Username: username,
			Error:    "invalid credentials",
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    s.sessions.Issue(),
		Path:     "/",
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		s.sessions.Revoke(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
