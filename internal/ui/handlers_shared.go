package ui

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/history"
)

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, homePage(currentUser(r), []homeCardData{
		{Title: "Usuarios", Description: "Registrar, editar y eliminar usuarios de cualquier rol.", Href: "/usuarios", LinkLabel: "Abrir usuarios"},
		{Title: "Historial", Description: "Consultar la trazabilidad de propiedades, contratos, facturas y pagos.", Href: "/historial", LinkLabel: "Abrir historial"},
	}))
}

func (h *Handler) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	title := "Error Inesperado"
	message := "Ocurrió un error inesperado al cargar esta página."

	var notFound *domain.NotFoundError
	var accessDenied *domain.AccessDeniedError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError
	var unavailable *domain.UnavailableError
	if errors.As(err, &notFound) {
		status = http.StatusNotFound
		title = "No Encontrado"
		message = notFound.Error()
	} else if errors.As(err, &accessDenied) {
		status = http.StatusForbidden
		title = "Acceso Denegado"
		message = accessDenied.Error()
	} else if errors.As(err, &validation) {
		status = http.StatusBadRequest
		title = "Solicitud Inválida"
		message = validation.Error()
	} else if errors.As(err, &conflict) {
		status = http.StatusConflict
		title = "Conflicto"
		message = conflict.Error()
	} else if errors.As(err, &unavailable) {
		status = http.StatusBadGateway
		title = "Servicio No Disponible"
		message = "El servicio remoto no respondió. Intente de nuevo en unos segundos."
	}

	h.Log.Warn("page render failed", "path", r.URL.Path, "status", status, "error", err)
	renderHTML(w, status, errorPage(title, message))
}

func strOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func formatMonto(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

func formatFechaPtr(ts *time.Time) string {
	if ts == nil {
		return "-"
	}
	return history.FormatFecha(*ts)
}
