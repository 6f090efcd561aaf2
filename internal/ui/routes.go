package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/session"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/ui/assets"
)

func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.LoginSubmit)
	r.Post("/logout", h.Logout)

	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	r.Group(func(r chi.Router) {
		r.Use(h.Sessions.Middleware)
		r.Use(h.EnsureCSRFToken)
		r.Use(h.RequireCSRF)

		r.Get("/", h.Home)

		r.Route("/usuarios", func(r chi.Router) {
			r.Use(session.RequireRole(domain.TipoAdministrador))
			r.Get("/", h.UsersList)
			r.Get("/nuevo", h.UsersNew)
			r.Post("/", h.UsersCreate)
			r.Get("/{usuarioID}", h.UsersDetail)
			r.Get("/{usuarioID}/editar", h.UsersEdit)
			r.Post("/{usuarioID}", h.UsersUpdate)
			r.Post("/{usuarioID}/eliminar", h.UsersDelete)
		})

		r.Route("/historial", func(r chi.Router) {
			r.Use(session.RequireRole(domain.TipoAdministrador, domain.TipoContador))
			r.Get("/", h.HistoryPage)
			r.Post("/recargar", h.HistoryReload)
			r.Post("/filtrar", h.HistoryFilter)
			r.Post("/limpiar", h.HistoryClearFilter)
			r.Post("/exportar", h.HistoryExport)
			r.Get("/cerrar", h.HistoryCloseDetail)
			r.Get("/{registroID}", h.HistoryDetail)
		})
	})
}
