package session

import (
	"net/http"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/rest"
)

// Middleware decodes the session cookie and stores both the session and
// the upstream bearer token in the request context. Requests without a
// valid session are redirected to the login page.
func (c *Codec) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := c.Decode(r)
		if err != nil {
			c.Clear(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		ctx := WithSession(r.Context(), s)
		ctx = rest.ContextWithToken(ctx, s.Token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects the request unless the session user has one of the
// given roles. It assumes Middleware already ran.
func RequireRole(tipos ...domain.TipoUsuario) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := FromContext(r.Context())
			if !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			tipo, _ := s.Usuario.Tipo()
			for _, t := range tipos {
				if tipo == t {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "acceso denegado", http.StatusForbidden)
		})
	}
}
