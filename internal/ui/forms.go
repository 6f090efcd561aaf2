package ui

import (
	"net/http"
	"strings"
	"time"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
)

func formString(values map[string][]string, key string) string {
	if values == nil {
		return ""
	}
	return strings.TrimSpace(first(values[key]))
}

// formDate parses a YYYY-MM-DD date input. Empty values and parse failures
// both yield nil so an untouched picker imposes no constraint.
func formDate(values map[string][]string, key string) *time.Time {
	v := formString(values, key)
	if v == "" {
		return nil
	}
	ts, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &ts
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// userFormFromRequest maps the submitted fields onto the flattened wire
// payload. Role-specific inputs arrive sparse; the service layer decides the
// target variant from them.
func userFormFromRequest(values map[string][]string) domain.UserForm {
	return domain.UserForm{
		ID:              formString(values, "id"),
		Nombre:          formString(values, "nombre"),
		Apellido:        formString(values, "apellido"),
		Email:           formString(values, "email"),
		TipoDocumento:   formString(values, "tipo_documento"),
		NumeroDocumento: formString(values, "numero_documento"),
		Telefono:        formString(values, "telefono"),
		Estado:          domain.EstadoUsuario(formString(values, "estado")),
		TipoUsuario:     formString(values, "tipo_usuario"),

		Cargo:       formString(values, "cargo"),
		NivelAcceso: formString(values, "nivel_acceso"),

		NumeroTarjetaProfesional: formString(values, "numero_tarjeta_profesional"),
		Especialidad:             formString(values, "especialidad"),

		EstadoCivil: formString(values, "estado_civil"),
		Ocupacion:   formString(values, "ocupacion"),

		CuentaBancaria: formString(values, "cuenta_bancaria"),
		Banco:          formString(values, "banco"),
	}
}

// historyFilterFromRequest maps the filter form onto the criteria object.
// Compaction happens in the view-model, not here.
func historyFilterFromRequest(values map[string][]string) domain.HistoryFilter {
	return domain.HistoryFilter{
		TipoEntidad: domain.TipoEntidad(formString(values, "tipo_entidad")),
		EntidadID:   formString(values, "entidad_id"),
		TipoAccion:  domain.TipoAccion(formString(values, "tipo_accion")),
		Responsable: formString(values, "responsable"),
		FechaDesde:  formDate(values, "fecha_desde"),
		FechaHasta:  formDate(values, "fecha_hasta"),
	}
}

func parseFormOrRenderBadRequest(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Solicitud Inválida", "No fue posible leer el formulario enviado."))
		return false
	}
	return true
}
