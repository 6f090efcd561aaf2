// Package app wires the REST client, services, and view-models from the
// loaded configuration.
package app

import (
	"log/slog"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/config"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/rest"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/session"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/ui"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/users"
)

// Deps holds the external dependencies that main() must provide.
type Deps struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// Services groups the remote API clients the presentation layer consumes.
type Services struct {
	Auth      *rest.AuthService
	Usuarios  *users.Service
	Historial *rest.HistorialService
}

// App holds the fully-wired application.
type App struct {
	Services Services
	Sessions *session.Codec
	UI       *ui.Handler
}

// New wires the REST client and every service from the provided deps.
func New(deps Deps) *App {
	cfg := deps.Cfg
	log := deps.Logger

	client := rest.New(cfg, log.With("component", "rest"))

	authSvc := rest.NewAuthService(client)
	usuarioSvc := rest.NewUsuarioService(client)
	historialSvc := rest.NewHistorialService(client)

	roleClients := map[domain.TipoUsuario]users.RoleClient{
		domain.TipoAdministrador: rest.NewAdministradorService(client),
		domain.TipoContador:      rest.NewContadorService(client),
		domain.TipoArrendatario:  rest.NewArrendatarioService(client),
		domain.TipoPropietario:   rest.NewPropietarioService(client),
	}
	records := users.RecordListers{
		Propiedades: rest.NewPropiedadService(client),
		Contratos:   rest.NewContratoService(client),
		Facturas:    rest.NewFacturaService(client),
		Pagos:       rest.NewPagoService(client),
	}
	usuariosSvc := users.NewService(usuarioSvc, roleClients, records, log.With("component", "users"))

	sessions := session.NewCodec(cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())

	handler := ui.NewHandler(
		authSvc,
		usuariosSvc,
		historialSvc,
		sessions,
		log.With("component", "ui"),
		cfg.IsProduction(),
	)

	return &App{
		Services: Services{
			Auth:      authSvc,
			Usuarios:  usuariosSvc,
			Historial: historialSvc,
		},
		Sessions: sessions,
		UI:       handler,
	}
}
