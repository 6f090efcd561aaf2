package users

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
)

type fakeUsuarios struct {
	registros      []domain.UserForm
	actualizados   []string
	eliminados     []string
	listarResponse []domain.User
}

func (f *fakeUsuarios) Listar(context.Context) ([]domain.User, error) {
	return f.listarResponse, nil
}

func (f *fakeUsuarios) Obtener(_ context.Context, id string) (domain.User, error) {
	return domain.User{ID: id}, nil
}

func (f *fakeUsuarios) Registro(_ context.Context, form domain.UserForm) (domain.User, error) {
	f.registros = append(f.registros, form)
	return domain.User{ID: "nuevo"}, nil
}

func (f *fakeUsuarios) Actualizar(_ context.Context, id string, form domain.UserForm) (domain.User, error) {
	f.actualizados = append(f.actualizados, id)
	return domain.User{ID: id}, nil
}

func (f *fakeUsuarios) Eliminar(_ context.Context, id string) error {
	f.eliminados = append(f.eliminados, id)
	return nil
}

type fakeRole struct {
	registros    []domain.UserForm
	actualizados []string
	eliminados   []string
}

func (f *fakeRole) Registro(_ context.Context, form domain.UserForm) (domain.User, error) {
	f.registros = append(f.registros, form)
	return domain.User{ID: "nuevo"}, nil
}

func (f *fakeRole) Actualizar(_ context.Context, id string, form domain.UserForm) (domain.User, error) {
	f.actualizados = append(f.actualizados, id)
	return domain.User{ID: id}, nil
}

func (f *fakeRole) Eliminar(_ context.Context, id string) error {
	f.eliminados = append(f.eliminados, id)
	return nil
}

type propLister struct{ items []domain.Property }

func (l propLister) Listar(context.Context) ([]domain.Property, error) { return l.items, nil }

type contractLister struct{ items []domain.Contract }

func (l contractLister) Listar(context.Context) ([]domain.Contract, error) { return l.items, nil }

type invoiceLister struct{ items []domain.Invoice }

func (l invoiceLister) Listar(context.Context) ([]domain.Invoice, error) { return l.items, nil }

type paymentLister struct{ items []domain.Payment }

func (l paymentLister) Listar(context.Context) ([]domain.Payment, error) { return l.items, nil }

type fixture struct {
	svc      *Service
	usuarios *fakeUsuarios
	roles    map[domain.TipoUsuario]*fakeRole
}

func newFixture(records RecordListers) fixture {
	usuarios := &fakeUsuarios{}
	roles := map[domain.TipoUsuario]*fakeRole{
		domain.TipoAdministrador: {},
		domain.TipoContador:      {},
		domain.TipoArrendatario:  {},
		domain.TipoPropietario:   {},
	}
	roleClients := map[domain.TipoUsuario]RoleClient{}
	for tipo, role := range roles {
		roleClients[tipo] = role
	}
	if records.Propiedades == nil {
		records = RecordListers{
			Propiedades: propLister{}, Contratos: contractLister{},
			Facturas: invoiceLister{}, Pagos: paymentLister{},
		}
	}
	return fixture{
		svc:      NewService(usuarios, roleClients, records, slog.New(slog.NewTextHandler(io.Discard, nil))),
		usuarios: usuarios,
		roles:    roles,
	}
}

func TestSave_ExplicitDiscriminantWins(t *testing.T) {
	f := newFixture(RecordListers{})

	_, err := f.svc.Save(context.Background(), domain.UserForm{
		Nombre:      "Ana",
		TipoUsuario: "CONTADOR",
		// Owner-looking field must not override the explicit tag.
		CuentaBancaria: "123",
	})
	require.NoError(t, err)
	assert.Len(t, f.roles[domain.TipoContador].registros, 1)
	assert.Empty(t, f.roles[domain.TipoPropietario].registros)
}

func TestSave_UnknownDiscriminantRejectedAtBoundary(t *testing.T) {
	f := newFixture(RecordListers{})

	_, err := f.svc.Save(context.Background(), domain.UserForm{TipoUsuario: "GERENTE"})
	require.Error(t, err)
	assert.IsType(t, &domain.ValidationError{}, err)
}

func TestSave_PresenceFallbackRoutesOwner(t *testing.T) {
	f := newFixture(RecordListers{})

	// cuentaBancaria present, no cargo/numeroTarjetaProfesional/tenant
	// fields: routed to the owner endpoint.
	_, err := f.svc.Save(context.Background(), domain.UserForm{
		Nombre:         "Luz",
		CuentaBancaria: "900-1",
	})
	require.NoError(t, err)
	assert.Len(t, f.roles[domain.TipoPropietario].registros, 1)
}

func TestSave_PresenceFallbackPrecedence(t *testing.T) {
	f := newFixture(RecordListers{})

	_, err := f.svc.Save(context.Background(), domain.UserForm{Cargo: "gerencia"})
	require.NoError(t, err)
	assert.Len(t, f.roles[domain.TipoAdministrador].registros, 1)

	_, err = f.svc.Save(context.Background(), domain.UserForm{NumeroTarjetaProfesional: "TP-9"})
	require.NoError(t, err)
	assert.Len(t, f.roles[domain.TipoContador].registros, 1)

	_, err = f.svc.Save(context.Background(), domain.UserForm{EstadoCivil: "soltera"})
	require.NoError(t, err)
	assert.Len(t, f.roles[domain.TipoArrendatario].registros, 1)
}

func TestSave_BaseShapeUsesGenericEndpoint(t *testing.T) {
	f := newFixture(RecordListers{})

	_, err := f.svc.Save(context.Background(), domain.UserForm{Nombre: "Sin", Apellido: "Rol"})
	require.NoError(t, err)
	assert.Len(t, f.usuarios.registros, 1)
}

func TestSave_WithIDUpdatesInsteadOfCreating(t *testing.T) {
	f := newFixture(RecordListers{})

	_, err := f.svc.Save(context.Background(), domain.UserForm{ID: "u7", CuentaBancaria: "1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"u7"}, f.roles[domain.TipoPropietario].actualizados)
	assert.Empty(t, f.roles[domain.TipoPropietario].registros)
}

func TestDelete_BlockedStatusesMakeNoNetworkCall(t *testing.T) {
	f := newFixture(RecordListers{})

	for _, estado := range []domain.EstadoUsuario{domain.EstadoActivo, domain.EstadoEliminado} {
		err := f.svc.Delete(context.Background(), "u1", domain.TipoPropietario, estado)
		require.Error(t, err)
		assert.IsType(t, &domain.ValidationError{}, err)
	}
	assert.Empty(t, f.roles[domain.TipoPropietario].eliminados)
	assert.Empty(t, f.usuarios.eliminados)
}

func TestDelete_AllowedStatusesCallRoleEndpoint(t *testing.T) {
	f := newFixture(RecordListers{})

	require.NoError(t, f.svc.Delete(context.Background(), "u1", domain.TipoArrendatario, domain.EstadoInactivo))
	require.NoError(t, f.svc.Delete(context.Background(), "u2", domain.TipoArrendatario, domain.EstadoSuspendido))
	assert.Equal(t, []string{"u1", "u2"}, f.roles[domain.TipoArrendatario].eliminados)
}

func TestDelete_EmptyIDRejected(t *testing.T) {
	f := newFixture(RecordListers{})

	err := f.svc.Delete(context.Background(), "", domain.TipoPropietario, domain.EstadoInactivo)
	require.Error(t, err)
	assert.IsType(t, &domain.ValidationError{}, err)
}

func relatedFixture() RecordListers {
	return RecordListers{
		Propiedades: propLister{items: []domain.Property{
			{ID: "p1", PropietarioID: "owner1"},
			{ID: "p2", PropietarioID: "owner1"},
			{ID: "p3", PropietarioID: "owner2"},
		}},
		Contratos: contractLister{items: []domain.Contract{
			{ID: "c1", PropiedadID: "p1", ArrendatarioID: "tenant1"},
			{ID: "c2", PropiedadID: "p3", ArrendatarioID: "tenant1"},
			{ID: "c3", PropiedadID: "p2", ArrendatarioID: "tenant2"},
		}},
		Facturas: invoiceLister{items: []domain.Invoice{
			{ID: "f1", ContratoID: "c1"},
			{ID: "f2", ContratoID: "c2"},
			{ID: "f3", ContratoID: "c3"},
		}},
		Pagos: paymentLister{items: []domain.Payment{
			{ID: "g1", FacturaID: "f1"},
			{ID: "g2", FacturaID: "f2"},
			{ID: "g3", FacturaID: "f3"},
		}},
	}
}

func TestDetails_OwnerChainFiltersByMembership(t *testing.T) {
	f := newFixture(relatedFixture())
	owner := domain.User{ID: "owner1", Propietario: &domain.PropietarioInfo{}}

	got, err := f.svc.Details(context.Background(), owner)
	require.NoError(t, err)

	require.Len(t, got.Propiedades, 2)
	require.Len(t, got.Contratos, 2) // c1 (p1) and c3 (p2)
	assert.Equal(t, "c1", got.Contratos[0].ID)
	assert.Equal(t, "c3", got.Contratos[1].ID)
	require.Len(t, got.Facturas, 2) // f1, f3
	require.Len(t, got.Pagos, 2)    // g1, g3
	assert.Equal(t, "g1", got.Pagos[0].ID)
	assert.Equal(t, "g3", got.Pagos[1].ID)
}

func TestDetails_TenantChainSeedsFromContracts(t *testing.T) {
	f := newFixture(relatedFixture())
	tenant := domain.User{ID: "tenant1", Arrendatario: &domain.ArrendatarioInfo{}}

	got, err := f.svc.Details(context.Background(), tenant)
	require.NoError(t, err)

	require.Len(t, got.Contratos, 2) // c1, c2
	require.Len(t, got.Propiedades, 2)
	require.Len(t, got.Facturas, 2) // f1, f2
	require.Len(t, got.Pagos, 2)    // g1, g2
}

func TestDetails_OtherRolesReturnNothing(t *testing.T) {
	f := newFixture(relatedFixture())
	admin := domain.User{ID: "a1", Administrador: &domain.AdministradorInfo{}}

	got, err := f.svc.Details(context.Background(), admin)
	require.NoError(t, err)
	assert.Empty(t, got.Propiedades)
	assert.Empty(t, got.Contratos)
	assert.Empty(t, got.Facturas)
	assert.Empty(t, got.Pagos)
}
