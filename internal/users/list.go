package users

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
)

// Sortable columns of the user list.
const (
	ColNombre   = "nombre"
	ColApellido = "apellido"
	ColEmail    = "email"
	ColEstado   = "estado"
	ColFecha    = "fecha"
)

// ListFiltered returns the users matching a case-insensitive substring query
// against name, surname, or email, AND-ed with an optional exact type
// filter. Empty predicates impose no constraint; input order is preserved.
func ListFiltered(users []domain.User, query string, tipo domain.TipoUsuario) []domain.User {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if query != "" && !matchesQuery(u, query) {
			continue
		}
		if tipo != "" {
			t, ok := u.Tipo()
			if !ok || t != tipo {
				continue
			}
		}
		out = append(out, u)
	}
	return out
}

func matchesQuery(u domain.User, query string) bool {
	return strings.Contains(strings.ToLower(u.Nombre), query) ||
		strings.Contains(strings.ToLower(u.Apellido), query) ||
		strings.Contains(strings.ToLower(u.Email), query)
}

// SortBy orders users by the given column, in place and stably, using a
// Spanish-locale collation for string columns. Unknown columns fall back to
// nombre.
func SortBy(users []domain.User, column string, ascending bool) {
	coll := collate.New(language.Spanish, collate.IgnoreCase)
	less := func(a, b domain.User) bool {
		switch column {
		case ColApellido:
			return coll.CompareString(a.Apellido, b.Apellido) < 0
		case ColEmail:
			return coll.CompareString(a.Email, b.Email) < 0
		case ColEstado:
			return coll.CompareString(string(a.Estado), string(b.Estado)) < 0
		case ColFecha:
			return a.FechaRegistro.Before(b.FechaRegistro)
		default:
			return coll.CompareString(a.Nombre, b.Nombre) < 0
		}
	}
	sort.SliceStable(users, func(i, j int) bool {
		if ascending {
			return less(users[i], users[j])
		}
		return less(users[j], users[i])
	})
}

// NextSort computes the sort state after clicking a column header: clicking
// the current column toggles direction, switching columns resets to
// ascending.
func NextSort(currentColumn string, currentAscending bool, clicked string) (string, bool) {
	if clicked == currentColumn {
		return clicked, !currentAscending
	}
	return clicked, true
}
