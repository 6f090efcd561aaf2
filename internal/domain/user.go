package domain

import (
	"strings"
	"time"
)

// TipoUsuario discriminates the four user variants the remote API serves.
type TipoUsuario string

const (
	TipoAdministrador TipoUsuario = "ADMINISTRADOR"
	TipoContador      TipoUsuario = "CONTADOR"
	TipoArrendatario  TipoUsuario = "ARRENDATARIO"
	TipoPropietario   TipoUsuario = "PROPIETARIO"
)

// ParseTipoUsuario maps a raw tag to a known variant. The boolean is false
// for unknown or empty tags.
func ParseTipoUsuario(raw string) (TipoUsuario, bool) {
	switch TipoUsuario(strings.ToUpper(strings.TrimSpace(raw))) {
	case TipoAdministrador:
		return TipoAdministrador, true
	case TipoContador:
		return TipoContador, true
	case TipoArrendatario:
		return TipoArrendatario, true
	case TipoPropietario:
		return TipoPropietario, true
	}
	return "", false
}

// EstadoUsuario is the lifecycle status of a user record.
type EstadoUsuario string

const (
	EstadoActivo     EstadoUsuario = "ACTIVO"
	EstadoInactivo   EstadoUsuario = "INACTIVO"
	EstadoSuspendido EstadoUsuario = "SUSPENDIDO"
	EstadoEliminado  EstadoUsuario = "ELIMINADO"
)

// AdministradorInfo holds the administrator-specific attribute set.
type AdministradorInfo struct {
	Cargo       string `json:"cargo"`
	NivelAcceso string `json:"nivelAcceso"`
}

// ContadorInfo holds the accountant-specific attribute set.
type ContadorInfo struct {
	NumeroTarjetaProfesional string `json:"numeroTarjetaProfesional"`
	Especialidad             string `json:"especialidad"`
}

// ArrendatarioInfo holds the tenant-specific attribute set.
type ArrendatarioInfo struct {
	EstadoCivil string `json:"estadoCivil"`
	Ocupacion   string `json:"ocupacion"`
}

// PropietarioInfo holds the owner-specific attribute set.
type PropietarioInfo struct {
	CuentaBancaria string `json:"cuentaBancaria"`
	Banco          string `json:"banco"`
}

// User is the discriminated user record. Exactly one of the role sections is
// populated per instance; the base shape (all sections nil) is used only when
// the remote response carries none of the specialized discriminator fields.
type User struct {
	ID              string        `json:"id"`
	Nombre          string        `json:"nombre"`
	Apellido        string        `json:"apellido"`
	Email           string        `json:"email"`
	TipoDocumento   string        `json:"tipoDocumento"`
	NumeroDocumento string        `json:"numeroDocumento"`
	Telefono        string        `json:"telefono"`
	Estado          EstadoUsuario `json:"estado"`
	FechaRegistro   time.Time     `json:"fechaRegistro"`

	Administrador *AdministradorInfo `json:"administrador,omitempty"`
	Contador      *ContadorInfo      `json:"contador,omitempty"`
	Arrendatario  *ArrendatarioInfo  `json:"arrendatario,omitempty"`
	Propietario   *PropietarioInfo   `json:"propietario,omitempty"`
}

// Tipo returns the variant implied by the populated role section. The boolean
// is false for the base shape.
func (u User) Tipo() (TipoUsuario, bool) {
	switch {
	case u.Administrador != nil:
		return TipoAdministrador, true
	case u.Contador != nil:
		return TipoContador, true
	case u.Arrendatario != nil:
		return TipoArrendatario, true
	case u.Propietario != nil:
		return TipoPropietario, true
	}
	return "", false
}

// NombreCompleto joins the name fields for display.
func (u User) NombreCompleto() string {
	return strings.TrimSpace(u.Nombre + " " + u.Apellido)
}

// Eliminable reports whether the local delete precondition holds: only
// INACTIVO and SUSPENDIDO users may be deleted from the console.
func (u User) Eliminable() bool {
	return EstadoPermiteEliminar(u.Estado)
}

// EstadoPermiteEliminar is the delete precondition on a bare status value.
func EstadoPermiteEliminar(estado EstadoUsuario) bool {
	return estado == EstadoInactivo || estado == EstadoSuspendido
}
