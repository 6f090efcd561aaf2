package domain

import "strings"

// UserForm is the create/edit payload for a user of any variant. Base fields
// are always present; role-specific fields are sparse. The wire convention of
// the remote API keeps them flattened on one object.
type UserForm struct {
	ID              string        `json:"id,omitempty"`
	Nombre          string        `json:"nombre"`
	Apellido        string        `json:"apellido"`
	Email           string        `json:"email"`
	TipoDocumento   string        `json:"tipoDocumento"`
	NumeroDocumento string        `json:"numeroDocumento"`
	Telefono        string        `json:"telefono"`
	Estado          EstadoUsuario `json:"estado,omitempty"`

	// Explicit discriminant. Optional: legacy payloads omit it and are
	// routed by field presence instead.
	TipoUsuario string `json:"tipoUsuario,omitempty"`

	// Administrator
	Cargo       string `json:"cargo,omitempty"`
	NivelAcceso string `json:"nivelAcceso,omitempty"`

	// Accountant
	NumeroTarjetaProfesional string `json:"numeroTarjetaProfesional,omitempty"`
	Especialidad             string `json:"especialidad,omitempty"`

	// Tenant
	EstadoCivil string `json:"estadoCivil,omitempty"`
	Ocupacion   string `json:"ocupacion,omitempty"`

	// Owner
	CuentaBancaria string `json:"cuentaBancaria,omitempty"`
	Banco          string `json:"banco,omitempty"`
}

// Discriminar resolves the target user variant for this form.
//
// The explicit tipoUsuario tag wins and is validated; when it is absent the
// variant is inferred from which role-specific fields are populated, with
// administrator > accountant > tenant > owner precedence. The boolean is
// false when neither the tag nor any role field identifies a variant, in
// which case the generic user endpoint applies.
func (f UserForm) Discriminar() (TipoUsuario, bool, error) {
	if tag := strings.TrimSpace(f.TipoUsuario); tag != "" {
		tipo, ok := ParseTipoUsuario(tag)
		if !ok {
			return "", false, ErrValidation("tipoUsuario desconocido: %q", tag)
		}
		return tipo, true, nil
	}
	switch {
	case f.Cargo != "" || f.NivelAcceso != "":
		return TipoAdministrador, true, nil
	case f.NumeroTarjetaProfesional != "" || f.Especialidad != "":
		return TipoContador, true, nil
	case f.EstadoCivil != "" || f.Ocupacion != "":
		return TipoArrendatario, true, nil
	case f.CuentaBancaria != "" || f.Banco != "":
		return TipoPropietario, true, nil
	}
	return "", false, nil
}
