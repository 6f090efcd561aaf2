package ui

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/history"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/users"
)

func (h *Handler) UsersList(w http.ResponseWriter, r *http.Request) {
	query := formString(r.URL.Query(), "q")
	tipo := domain.TipoUsuario(formString(r.URL.Query(), "tipo"))
	column := formString(r.URL.Query(), "orden")
	if column == "" {
		column = users.ColNombre
	}
	ascending := formString(r.URL.Query(), "dir") != "desc"

	all, err := h.Usuarios.Listar(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	matched := users.ListFiltered(all, query, tipo)
	users.SortBy(matched, column, ascending)

	rows := make([]userRowData, 0, len(matched))
	for i := range matched {
		u := matched[i]
		roleLabel := "Usuario"
		if t, ok := u.Tipo(); ok {
			roleLabel = roleLabels[t]
		}
		rows = append(rows, userRowData{
			Nombre:     u.Nombre,
			Apellido:   u.Apellido,
			Email:      u.Email,
			Rol:        roleLabel,
			Estado:     string(u.Estado),
			Tone:       estadoTone(u.Estado),
			Fecha:      history.FormatFecha(u.FechaRegistro),
			URL:        "/usuarios/" + url.PathEscape(u.ID),
			Eliminable: u.Eliminable(),
			DeleteURL:  "/usuarios/" + url.PathEscape(u.ID) + "/eliminar",
			Hidden:     deleteHiddenFields(u),
		})
	}

	renderHTML(w, http.StatusOK, usersListPage(usersListPageData{
		User:          currentUser(r),
		Rows:          rows,
		Query:         query,
		Tipo:          string(tipo),
		Column:        column,
		Ascending:     ascending,
		CSRFFieldFunc: csrfFieldProvider(r),
	}))
}

func (h *Handler) UsersNew(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, userFormPage(currentUser(r), "Nuevo Usuario", "/usuarios", domain.UserForm{}, csrfFieldProvider(r)))
}

func (h *Handler) UsersCreate(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRenderBadRequest(w, r) {
		return
	}
	form := userFormFromRequest(r.Form)
	form.ID = ""
	if _, err := h.Usuarios.Save(r.Context(), form); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/usuarios", http.StatusSeeOther)
}

func (h *Handler) UsersDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "usuarioID")
	u, err := h.Usuarios.Obtener(r.Context(), id)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	related, err := h.Usuarios.Details(r.Context(), u)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, userDetailPage(currentUser(r), u, related))
}

func (h *Handler) UsersEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "usuarioID")
	u, err := h.Usuarios.Obtener(r.Context(), id)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, userFormPage(
		currentUser(r),
		"Editar Usuario",
		"/usuarios/"+url.PathEscape(id),
		formFromUser(u),
		csrfFieldProvider(r),
	))
}

func (h *Handler) UsersUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "usuarioID")
	if !parseFormOrRenderBadRequest(w, r) {
		return
	}
	form := userFormFromRequest(r.Form)
	form.ID = id
	if _, err := h.Usuarios.Save(r.Context(), form); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/usuarios/"+url.PathEscape(id), http.StatusSeeOther)
}

func (h *Handler) UsersDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "usuarioID")
	if !parseFormOrRenderBadRequest(w, r) {
		return
	}
	tipo := domain.TipoUsuario(formString(r.Form, "tipo"))
	estado := domain.EstadoUsuario(formString(r.Form, "estado"))
	if err := h.Usuarios.Delete(r.Context(), id, tipo, estado); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/usuarios", http.StatusSeeOther)
}

// formFromUser flattens a fetched user back onto the edit form, with the
// resolved variant as the explicit discriminant.
func formFromUser(u domain.User) domain.UserForm {
	form := domain.UserForm{
		ID:              u.ID,
		Nombre:          u.Nombre,
		Apellido:        u.Apellido,
		Email:           u.Email,
		TipoDocumento:   u.TipoDocumento,
		NumeroDocumento: u.NumeroDocumento,
		Telefono:        u.Telefono,
		Estado:          u.Estado,
	}
	if tipo, ok := u.Tipo(); ok {
		form.TipoUsuario = string(tipo)
	}
	if u.Administrador != nil {
		form.Cargo = u.Administrador.Cargo
		form.NivelAcceso = u.Administrador.NivelAcceso
	}
	if u.Contador != nil {
		form.NumeroTarjetaProfesional = u.Contador.NumeroTarjetaProfesional
		form.Especialidad = u.Contador.Especialidad
	}
	if u.Arrendatario != nil {
		form.EstadoCivil = u.Arrendatario.EstadoCivil
		form.Ocupacion = u.Arrendatario.Ocupacion
	}
	if u.Propietario != nil {
		form.CuentaBancaria = u.Propietario.CuentaBancaria
		form.Banco = u.Propietario.Banco
	}
	return form
}

func deleteHiddenFields(u domain.User) map[string]string {
	fields := map[string]string{"estado": string(u.Estado)}
	if tipo, ok := u.Tipo(); ok {
		fields["tipo"] = string(tipo)
	}
	return fields
}

func estadoTone(e domain.EstadoUsuario) string {
	switch e {
	case domain.EstadoActivo:
		return "success"
	case domain.EstadoSuspendido:
		return "attention"
	case domain.EstadoEliminado:
		return "danger"
	default:
		return "secondary"
	}
}
