// Package users implements the user-management view-model: list filtering
// and sorting, role-discriminated create/edit dispatch, the local delete
// precondition, and the related-records drill-down for owners and tenants.
package users

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
)

// UsuarioClient is the generic user resource the view consumes.
type UsuarioClient interface {
	Listar(ctx context.Context) ([]domain.User, error)
	Obtener(ctx context.Context, id string) (domain.User, error)
	Registro(ctx context.Context, form domain.UserForm) (domain.User, error)
	Actualizar(ctx context.Context, id string, form domain.UserForm) (domain.User, error)
	Eliminar(ctx context.Context, id string) error
}

// RoleClient is one role-scoped user resource.
type RoleClient interface {
	Registro(ctx context.Context, form domain.UserForm) (domain.User, error)
	Actualizar(ctx context.Context, id string, form domain.UserForm) (domain.User, error)
	Eliminar(ctx context.Context, id string) error
}

// RecordListers groups the four related-record collections used by the
// detail drill-down.
type RecordListers struct {
	Propiedades interface {
		Listar(ctx context.Context) ([]domain.Property, error)
	}
	Contratos interface {
		Listar(ctx context.Context) ([]domain.Contract, error)
	}
	Facturas interface {
		Listar(ctx context.Context) ([]domain.Invoice, error)
	}
	Pagos interface {
		Listar(ctx context.Context) ([]domain.Payment, error)
	}
}

// Service is the user-management view-model.
type Service struct {
	usuarios UsuarioClient
	roles    map[domain.TipoUsuario]RoleClient
	records  RecordListers
	log      *slog.Logger
}

// NewService wires the view-model over the REST services.
func NewService(usuarios UsuarioClient, roles map[domain.TipoUsuario]RoleClient, records RecordListers, log *slog.Logger) *Service {
	return &Service{usuarios: usuarios, roles: roles, records: records, log: log}
}

// Listar fetches the full user list.
func (s *Service) Listar(ctx context.Context) ([]domain.User, error) {
	return s.usuarios.Listar(ctx)
}

// Obtener fetches a single user by id.
func (s *Service) Obtener(ctx context.Context, id string) (domain.User, error) {
	if id == "" {
		return domain.User{}, domain.ErrValidation("id de usuario vacio")
	}
	return s.usuarios.Obtener(ctx, id)
}

// Save routes the form to the endpoint of its resolved variant: the explicit
// tipoUsuario tag when present, field-presence inference otherwise, and the
// generic user endpoint when neither identifies a variant. An empty form id
// means create; otherwise update.
func (s *Service) Save(ctx context.Context, form domain.UserForm) (domain.User, error) {
	tipo, ok, err := form.Discriminar()
	if err != nil {
		return domain.User{}, err
	}

	if !ok {
		if form.ID == "" {
			return s.usuarios.Registro(ctx, form)
		}
		return s.usuarios.Actualizar(ctx, form.ID, form)
	}

	role, found := s.roles[tipo]
	if !found {
		return domain.User{}, domain.ErrValidation("sin servicio para tipo %s", tipo)
	}
	if form.ID == "" {
		return role.Registro(ctx, form)
	}
	return role.Actualizar(ctx, form.ID, form)
}

// Delete removes a user through the role-scoped endpoint. The local
// precondition blocks the call entirely unless the status is INACTIVO or
// SUSPENDIDO; no network request is made for blocked deletes.
func (s *Service) Delete(ctx context.Context, id string, tipo domain.TipoUsuario, estado domain.EstadoUsuario) error {
	if id == "" {
		return domain.ErrValidation("id de usuario vacio")
	}
	if !domain.EstadoPermiteEliminar(estado) {
		return domain.ErrValidation("solo se pueden eliminar usuarios INACTIVOS o SUSPENDIDOS (estado actual: %s)", estado)
	}
	if role, found := s.roles[tipo]; found {
		return role.Eliminar(ctx, id)
	}
	return s.usuarios.Eliminar(ctx, id)
}

// RelatedRecords is the drill-down projection for an owner or tenant.
type RelatedRecords struct {
	Propiedades []domain.Property
	Contratos   []domain.Contract
	Facturas    []domain.Invoice
	Pagos       []domain.Payment
}

// Details assembles the related records for an owner or tenant.
//
// The four collections are fetched wholesale and concurrently; membership
// filtering stays dependent: properties seed contracts, contracts seed
// invoices, invoices seed payments. Tenants seed from contracts instead.
// Wholesale fetching assumes collections small enough to materialize, which
// is the remote API's current contract.
func (s *Service) Details(ctx context.Context, user domain.User) (RelatedRecords, error) {
	tipo, _ := user.Tipo()
	if tipo != domain.TipoPropietario && tipo != domain.TipoArrendatario {
		return RelatedRecords{}, nil
	}

	var (
		propiedades []domain.Property
		contratos   []domain.Contract
		facturas    []domain.Invoice
		pagos       []domain.Payment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		propiedades, err = s.records.Propiedades.Listar(gctx)
		return err
	})
	g.Go(func() (err error) {
		contratos, err = s.records.Contratos.Listar(gctx)
		return err
	})
	g.Go(func() (err error) {
		facturas, err = s.records.Facturas.Listar(gctx)
		return err
	})
	g.Go(func() (err error) {
		pagos, err = s.records.Pagos.Listar(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return RelatedRecords{}, err
	}

	var out RelatedRecords
	propIDs := map[string]bool{}
	contractIDs := map[string]bool{}

	if tipo == domain.TipoPropietario {
		for _, p := range propiedades {
			if p.PropietarioID == user.ID {
				out.Propiedades = append(out.Propiedades, p)
				propIDs[p.ID] = true
			}
		}
		for _, c := range contratos {
			if propIDs[c.PropiedadID] {
				out.Contratos = append(out.Contratos, c)
				contractIDs[c.ID] = true
			}
		}
	} else {
		for _, c := range contratos {
			if c.ArrendatarioID == user.ID {
				out.Contratos = append(out.Contratos, c)
				contractIDs[c.ID] = true
				propIDs[c.PropiedadID] = true
			}
		}
		for _, p := range propiedades {
			if propIDs[p.ID] {
				out.Propiedades = append(out.Propiedades, p)
			}
		}
	}

	invoiceIDs := map[string]bool{}
	for _, f := range facturas {
		if contractIDs[f.ContratoID] {
			out.Facturas = append(out.Facturas, f)
			invoiceIDs[f.ID] = true
		}
	}
	for _, p := range pagos {
		if invoiceIDs[p.FacturaID] {
			out.Pagos = append(out.Pagos, p)
		}
	}
	return out, nil
}
