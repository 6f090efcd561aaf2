package rest

import (
	"context"
	"net/http"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
)

// HistorialService wraps the /historial resource family: the plain list, the
// filtered search, the statistics endpoint, and the binary PDF export.
type HistorialService struct {
	c *Client
}

// NewHistorialService creates a HistorialService on the shared client.
func NewHistorialService(c *Client) *HistorialService {
	return &HistorialService{c: c}
}

// Listar fetches the complete unfiltered history.
func (s *HistorialService) Listar(ctx context.Context) ([]domain.HistoryRecord, error) {
	var out []domain.HistoryRecord
	if err := s.c.getJSON(ctx, "/historial/listar", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Filtrar runs a server-side filtered search. The filter is compacted before
// sending so blank fields never reach the wire.
func (s *HistorialService) Filtrar(ctx context.Context, f domain.HistoryFilter) ([]domain.HistoryRecord, error) {
	var out []domain.HistoryRecord
	if err := s.c.sendJSON(ctx, http.MethodPost, "/historial/filtrar", f.Compact(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Estadisticas fetches the server-computed aggregate counts.
func (s *HistorialService) Estadisticas(ctx context.Context) (domain.HistoryStats, error) {
	var out domain.HistoryStats
	err := s.c.getJSON(ctx, "/historial/estadisticas", &out)
	return out, err
}

// ExportarPDF requests a PDF rendering of the records matching the filter
// and returns the raw document bytes.
func (s *HistorialService) ExportarPDF(ctx context.Context, f domain.HistoryFilter) ([]byte, error) {
	return s.c.postBinary(ctx, "/historial/exportar-pdf", f.Compact())
}
