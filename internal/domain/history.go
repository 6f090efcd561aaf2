package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// TipoEntidad is the audited resource category of a history record.
type TipoEntidad string

const (
	EntidadPropiedad TipoEntidad = "PROPIEDAD"
	EntidadContrato  TipoEntidad = "CONTRATO"
	EntidadFactura   TipoEntidad = "FACTURA"
	EntidadPago      TipoEntidad = "PAGO"
)

// TipoAccion classifies what kind of mutation a history record captured.
type TipoAccion string

const (
	AccionCreacion      TipoAccion = "CREACION"
	AccionActualizacion TipoAccion = "ACTUALIZACION"
	AccionEliminacion   TipoAccion = "ELIMINACION"
	AccionCambioEstado  TipoAccion = "CAMBIO_ESTADO"
	AccionTransicion    TipoAccion = "TRANSICION"
)

// HistoryRecord is an immutable audit entry created by the server on every
// tracked mutation. The console only reads and renders these.
type HistoryRecord struct {
	ID              string          `json:"id"`
	TipoEntidad     TipoEntidad     `json:"tipoEntidad"`
	EntidadID       string          `json:"entidadId"`
	EstadoAnterior  string          `json:"estadoAnterior"`
	EstadoNuevo     string          `json:"estadoNuevo"`
	TipoAccion      TipoAccion      `json:"tipoAccion"`
	ResponsableID   string          `json:"responsableId"`
	Responsable     string          `json:"responsable"`
	Fecha           time.Time       `json:"fecha"`
	Motivo          string          `json:"motivo,omitempty"`
	SnapshotAntes   json.RawMessage `json:"snapshotAntes,omitempty"`
	SnapshotDespues json.RawMessage `json:"snapshotDespues,omitempty"`
	Version         *int64          `json:"version,omitempty"`
	IPOrigen        string          `json:"ipOrigen,omitempty"`
}

// HistoryFilter is a sparse set of optional predicates combined with logical
// AND. Empty fields impose no constraint.
type HistoryFilter struct {
	TipoEntidad TipoEntidad `json:"tipoEntidad,omitempty"`
	EntidadID   string      `json:"entidadId,omitempty"`
	TipoAccion  TipoAccion  `json:"tipoAccion,omitempty"`
	Responsable string      `json:"responsable,omitempty"`
	FechaDesde  *time.Time  `json:"fechaDesde,omitempty"`
	FechaHasta  *time.Time  `json:"fechaHasta,omitempty"`
}

// Compact returns a copy with blank string fields stripped of surrounding
// whitespace and zero-valued date bounds removed, so the wire payload only
// carries real predicates.
func (f HistoryFilter) Compact() HistoryFilter {
	out := HistoryFilter{
		TipoEntidad: TipoEntidad(strings.TrimSpace(string(f.TipoEntidad))),
		EntidadID:   strings.TrimSpace(f.EntidadID),
		TipoAccion:  TipoAccion(strings.TrimSpace(string(f.TipoAccion))),
		Responsable: strings.TrimSpace(f.Responsable),
	}
	if f.FechaDesde != nil && !f.FechaDesde.IsZero() {
		out.FechaDesde = f.FechaDesde
	}
	if f.FechaHasta != nil && !f.FechaHasta.IsZero() {
		out.FechaHasta = f.FechaHasta
	}
	return out
}

// IsEmpty reports whether no predicate is set after compaction.
func (f HistoryFilter) IsEmpty() bool {
	c := f.Compact()
	return c.TipoEntidad == "" && c.EntidadID == "" && c.TipoAccion == "" &&
		c.Responsable == "" && c.FechaDesde == nil && c.FechaHasta == nil
}

// HistoryStats is the server-computed aggregate snapshot. Displayed as-is.
type HistoryStats struct {
	TotalCambios int64                 `json:"totalCambios"`
	PorEntidad   map[TipoEntidad]int64 `json:"porEntidad"`
}
