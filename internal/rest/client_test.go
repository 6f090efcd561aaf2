package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/config"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := &config.Config{
		APIBaseURL:    srv.URL,
		APITimeout:    5 * time.Second,
		ExportTimeout: 5 * time.Second,
	}
	return New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_SendsBearerTokenFromContext(t *testing.T) {
	var gotAuth string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]domain.User{})
	}))

	ctx := ContextWithToken(context.Background(), "tok-123")
	_, err := NewUsuarioService(c).Listar(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_MapsStatusToDomainErrors(t *testing.T) {
	tests := []struct {
		status int
		check  func(t *testing.T, err error)
	}{
		{http.StatusNotFound, func(t *testing.T, err error) {
			assert.IsType(t, &domain.NotFoundError{}, err)
		}},
		{http.StatusForbidden, func(t *testing.T, err error) {
			assert.IsType(t, &domain.AccessDeniedError{}, err)
		}},
		{http.StatusUnauthorized, func(t *testing.T, err error) {
			assert.IsType(t, &domain.AccessDeniedError{}, err)
		}},
		{http.StatusBadRequest, func(t *testing.T, err error) {
			assert.IsType(t, &domain.ValidationError{}, err)
		}},
		{http.StatusConflict, func(t *testing.T, err error) {
			assert.IsType(t, &domain.ConflictError{}, err)
		}},
	}
	for _, tc := range tests {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
			_ = json.NewEncoder(w).Encode(map[string]string{"mensaje": "boom"})
		}))
		err := c.sendJSON(context.Background(), http.MethodPost, "/usuarios/registro", map[string]string{}, nil)
		require.Error(t, err)
		tc.check(t, err)
		assert.Contains(t, err.Error(), "boom")
	}
}

func TestClient_RetriesGETOnServerFailure(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode([]domain.User{{ID: "u1"}}) //nolint:errcheck
	}))

	users, err := NewUsuarioService(c).Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_DoesNotRetryMutations(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := NewPropietarioService(c).Registro(context.Background(), domain.UserForm{Nombre: "x"})
	require.Error(t, err)
	assert.IsType(t, &domain.UnavailableError{}, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_DoesNotRetryNotFound(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := NewUsuarioService(c).Obtener(context.Background(), "missing")
	require.Error(t, err)
	assert.IsType(t, &domain.NotFoundError{}, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRoleService_ComposesRolePaths(t *testing.T) {
	var gotPath, gotMethod string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		_ = json.NewEncoder(w).Encode(domain.User{ID: "u9"})
	}))

	_, err := NewContadorService(c).Actualizar(context.Background(), "u9", domain.UserForm{})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/contadores/actualizar/u9", gotPath)
	assert.Equal(t, http.MethodPut, gotMethod)

	require.NoError(t, NewArrendatarioService(c).Eliminar(context.Background(), "u9"))
	assert.Equal(t, "/api/v1/arrendatarios/eliminar/u9", gotPath)
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestUsuarioService_EscapesIDsInPaths(t *testing.T) {
	var gotPath string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_ = json.NewEncoder(w).Encode(domain.User{})
	}))

	// An id carrying path metacharacters must stay a single segment.
	id := "u1/../admin"
	_, err := NewUsuarioService(c).Obtener(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/usuarios/u1%2F..%2Fadmin", gotPath)

	require.NoError(t, NewPropietarioService(c).Eliminar(context.Background(), id))
	assert.Equal(t, "/api/v1/propietarios/eliminar/u1%2F..%2Fadmin", gotPath)
}
