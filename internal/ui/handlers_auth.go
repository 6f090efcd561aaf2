package ui

import (
	"net/http"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/middleware"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/session"
)

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Sessions.Decode(r); err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	renderHTML(w, http.StatusOK, loginPage(formString(r.URL.Query(), "error")))
}

func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?error=formulario+invalido", http.StatusSeeOther)
		return
	}
	email := formString(r.Form, "email")
	password := first(r.Form["password"])
	if email == "" || password == "" {
		http.Redirect(w, r, "/login?error=correo+y+clave+son+obligatorios", http.StatusSeeOther)
		return
	}

	result, err := h.Auth.Login(r.Context(), email, password)
	if err != nil {
		middleware.LoginAttemptsTotal.WithLabelValues("failed").Inc()
		h.Log.Info("login rejected", "email", email, "error", err)
		http.Redirect(w, r, "/login?error=credenciales+invalidas", http.StatusSeeOther)
		return
	}

	if err := h.Sessions.Issue(w, session.Session{Token: result.Token, Usuario: result.Usuario}); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	middleware.LoginAttemptsTotal.WithLabelValues("ok").Inc()
	h.Log.Info("login accepted", "usuario", result.Usuario.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if s, err := h.Sessions.Decode(r); err == nil {
		h.dropHistoryView(s.Usuario.ID)
	}
	h.Sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
