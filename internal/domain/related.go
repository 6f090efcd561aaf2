package domain

import "time"

// Property is a rental property owned by a PROPIETARIO user.
type Property struct {
	ID            string    `json:"id"`
	PropietarioID string    `json:"propietarioId"`
	Direccion     string    `json:"direccion"`
	Ciudad        string    `json:"ciudad"`
	Estado        string    `json:"estado"`
	FechaRegistro time.Time `json:"fechaRegistro"`
}

// Contract binds a tenant to a property.
type Contract struct {
	ID             string     `json:"id"`
	PropiedadID    string     `json:"propiedadId"`
	ArrendatarioID string     `json:"arrendatarioId"`
	Estado         string     `json:"estado"`
	FechaInicio    time.Time  `json:"fechaInicio"`
	FechaFin       *time.Time `json:"fechaFin,omitempty"`
}

// Invoice is a billing document issued under a contract.
type Invoice struct {
	ID           string    `json:"id"`
	ContratoID   string    `json:"contratoId"`
	Estado       string    `json:"estado"`
	Monto        float64   `json:"monto"`
	FechaEmision time.Time `json:"fechaEmision"`
}

// Payment settles an invoice, fully or partially.
type Payment struct {
	ID        string    `json:"id"`
	FacturaID string    `json:"facturaId"`
	Estado    string    `json:"estado"`
	Monto     float64   `json:"monto"`
	Fecha     time.Time `json:"fecha"`
}
