package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
)

// UsuarioService wraps the generic /usuarios resource family.
type UsuarioService struct {
	c *Client
}

// NewUsuarioService creates a UsuarioService on the shared client.
func NewUsuarioService(c *Client) *UsuarioService {
	return &UsuarioService{c: c}
}

// Listar fetches the complete user list across all variants.
func (s *UsuarioService) Listar(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := s.c.getJSON(ctx, "/usuarios/listar", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Obtener fetches one user by id.
func (s *UsuarioService) Obtener(ctx context.Context, id string) (domain.User, error) {
	var out domain.User
	err := s.c.getJSON(ctx, "/usuarios/"+url.PathEscape(id), &out)
	return out, err
}

// Registro creates a generic (base-shape) user.
func (s *UsuarioService) Registro(ctx context.Context, form domain.UserForm) (domain.User, error) {
	var out domain.User
	err := s.c.sendJSON(ctx, http.MethodPost, "/usuarios/registro", form, &out)
	return out, err
}

// Actualizar updates a generic user.
func (s *UsuarioService) Actualizar(ctx context.Context, id string, form domain.UserForm) (domain.User, error) {
	var out domain.User
	err := s.c.sendJSON(ctx, http.MethodPut, "/usuarios/actualizar/"+url.PathEscape(id), form, &out)
	return out, err
}

// Eliminar deletes a generic user.
func (s *UsuarioService) Eliminar(ctx context.Context, id string) error {
	return s.c.sendJSON(ctx, http.MethodDelete, "/usuarios/eliminar/"+url.PathEscape(id), nil, nil)
}

// RoleService wraps one role-scoped resource family (propietarios,
// arrendatarios, contadores, administradores). All four share the
// registro/actualizar/eliminar verb convention, so one type serves them.
type RoleService struct {
	c       *Client
	recurso string
}

// NewPropietarioService wraps /propietarios.
func NewPropietarioService(c *Client) *RoleService {
	return &RoleService{c: c, recurso: "propietarios"}
}

// NewArrendatarioService wraps /arrendatarios.
func NewArrendatarioService(c *Client) *RoleService {
	return &RoleService{c: c, recurso: "arrendatarios"}
}

// NewContadorService wraps /contadores.
func NewContadorService(c *Client) *RoleService {
	return &RoleService{c: c, recurso: "contadores"}
}

// NewAdministradorService wraps /administradores.
func NewAdministradorService(c *Client) *RoleService {
	return &RoleService{c: c, recurso: "administradores"}
}

// Recurso returns the resource path segment this service targets.
func (s *RoleService) Recurso() string { return s.recurso }

// Registro creates a user under this role's endpoint.
func (s *RoleService) Registro(ctx context.Context, form domain.UserForm) (domain.User, error) {
	var out domain.User
	err := s.c.sendJSON(ctx, http.MethodPost, "/"+s.recurso+"/registro", form, &out)
	return out, err
}

// Actualizar updates a user under this role's endpoint.
func (s *RoleService) Actualizar(ctx context.Context, id string, form domain.UserForm) (domain.User, error) {
	var out domain.User
	err := s.c.sendJSON(ctx, http.MethodPut, "/"+s.recurso+"/actualizar/"+url.PathEscape(id), form, &out)
	return out, err
}

// Eliminar deletes a user under this role's endpoint.
func (s *RoleService) Eliminar(ctx context.Context, id string) error {
	return s.c.sendJSON(ctx, http.MethodDelete, "/"+s.recurso+"/eliminar/"+url.PathEscape(id), nil, nil)
}
