package history

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
)

// Badge is the icon and category label derived from an entity-type tag.
type Badge struct {
	Icon  string
	Label string
}

var entityBadges = map[domain.TipoEntidad]Badge{
	domain.EntidadPropiedad: {Icon: "home", Label: "Propiedad"},
	domain.EntidadContrato:  {Icon: "file-text", Label: "Contrato"},
	domain.EntidadFactura:   {Icon: "receipt", Label: "Factura"},
	domain.EntidadPago:      {Icon: "credit-card", Label: "Pago"},
}

// EntityBadge maps an entity-type tag to its icon and label. Unknown tags
// get a neutral fallback.
func EntityBadge(t domain.TipoEntidad) Badge {
	if b, ok := entityBadges[t]; ok {
		return b
	}
	return Badge{Icon: "circle", Label: "Registro"}
}

var actionTones = map[domain.TipoAccion]string{
	domain.AccionCreacion:      "success",
	domain.AccionActualizacion: "accent",
	domain.AccionEliminacion:   "danger",
	domain.AccionCambioEstado:  "attention",
	domain.AccionTransicion:    "done",
}

// ActionTone maps an action-type tag to a fixed label tone. Unknown tags get
// the secondary tone.
func ActionTone(a domain.TipoAccion) string {
	if tone, ok := actionTones[a]; ok {
		return tone
	}
	return "secondary"
}

// fechaLayout is the fixed display format for record timestamps
// (day-first, es-CO convention).
const fechaLayout = "02/01/2006 15:04"

// FormatFecha renders a timestamp in the fixed display format; zero values
// render as a literal placeholder.
func FormatFecha(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Format(fechaLayout)
}

// SnapshotPair is one key/value line of a rendered before/after snapshot.
type SnapshotPair struct {
	Key   string
	Value string
}

// SnapshotPairs flattens the top-level fields of a raw JSON snapshot for the
// detail view. Non-object payloads collapse to a single "valor" line; empty
// payloads return nil.
func SnapshotPairs(raw []byte) []SnapshotPair {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	parsed := gjson.Parse(trimmed)
	if !parsed.IsObject() {
		return []SnapshotPair{{Key: "valor", Value: parsed.String()}}
	}
	var pairs []SnapshotPair
	parsed.ForEach(func(key, value gjson.Result) bool {
		pairs = append(pairs, SnapshotPair{Key: key.String(), Value: value.String()})
		return true
	})
	return pairs
}
