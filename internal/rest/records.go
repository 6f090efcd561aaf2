package rest

import (
	"context"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
)

// PropiedadService wraps the read side of /propiedades.
type PropiedadService struct {
	c *Client
}

// NewPropiedadService creates a PropiedadService on the shared client.
func NewPropiedadService(c *Client) *PropiedadService {
	return &PropiedadService{c: c}
}

// Listar fetches the full property collection.
func (s *PropiedadService) Listar(ctx context.Context) ([]domain.Property, error) {
	var out []domain.Property
	if err := s.c.getJSON(ctx, "/propiedades/listar", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContratoService wraps the read side of /contratos.
type ContratoService struct {
	c *Client
}

// NewContratoService creates a ContratoService on the shared client.
func NewContratoService(c *Client) *ContratoService {
	return &ContratoService{c: c}
}

// Listar fetches the full contract collection.
func (s *ContratoService) Listar(ctx context.Context) ([]domain.Contract, error) {
	var out []domain.Contract
	if err := s.c.getJSON(ctx, "/contratos/listar", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FacturaService wraps the read side of /facturas.
type FacturaService struct {
	c *Client
}

// NewFacturaService creates a FacturaService on the shared client.
func NewFacturaService(c *Client) *FacturaService {
	return &FacturaService{c: c}
}

// Listar fetches the full invoice collection.
func (s *FacturaService) Listar(ctx context.Context) ([]domain.Invoice, error) {
	var out []domain.Invoice
	if err := s.c.getJSON(ctx, "/facturas/listar", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PagoService wraps the read side of /pagos.
type PagoService struct {
	c *Client
}

// NewPagoService creates a PagoService on the shared client.
func NewPagoService(c *Client) *PagoService {
	return &PagoService{c: c}
}

// Listar fetches the full payment collection.
func (s *PagoService) Listar(ctx context.Context) ([]domain.Payment, error) {
	var out []domain.Payment
	if err := s.c.getJSON(ctx, "/pagos/listar", &out); err != nil {
		return nil, err
	}
	return out, nil
}
