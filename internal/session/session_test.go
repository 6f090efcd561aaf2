package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/rest"
)

const testSecret = "test-secret-32-bytes-long-xxxxx"

func issueCookie(t *testing.T, c *Codec, s Session) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, c.Issue(rec, s))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	c := NewCodec(testSecret, time.Hour, false)
	issued := Session{
		Token: "bearer-abc",
		Usuario: domain.User{
			ID:     "u1",
			Nombre: "Ana",
			Email:  "ana@casa.co",
			Estado: domain.EstadoActivo,
			Propietario: &domain.PropietarioInfo{
				CuentaBancaria: "900-1",
				Banco:          "Bancolombia",
			},
		},
	}
	cookie := issueCookie(t, c, issued)
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookie)
	got, err := c.Decode(r)

	require.NoError(t, err)
	assert.Equal(t, "bearer-abc", got.Token)
	assert.Equal(t, issued.Usuario, got.Usuario)
	tipo, ok := got.Usuario.Tipo()
	require.True(t, ok)
	assert.Equal(t, domain.TipoPropietario, tipo)
}

func TestCodec_Decode_Rejections(t *testing.T) {
	t.Parallel()

	c := NewCodec(testSecret, time.Hour, false)

	makeCookie := func(secret string, claims jwt.MapClaims) *http.Cookie {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, _ := tok.SignedString([]byte(secret))
		return &http.Cookie{Name: CookieName, Value: signed}
	}

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{name: "no cookie", cookie: nil},
		{name: "wrong secret", cookie: makeCookie("otro-secreto", jwt.MapClaims{
			"sub": "u1", "tok": "t", "usr": `{"id":"u1"}`,
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
		{name: "expired", cookie: makeCookie(testSecret, jwt.MapClaims{
			"sub": "u1", "tok": "t", "usr": `{"id":"u1"}`,
			"exp": time.Now().Add(-time.Hour).Unix(),
		})},
		{name: "missing token claim", cookie: makeCookie(testSecret, jwt.MapClaims{
			"sub": "u1", "usr": `{"id":"u1"}`,
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
		{name: "garbage user claim", cookie: makeCookie(testSecret, jwt.MapClaims{
			"sub": "u1", "tok": "t", "usr": "{no es json",
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				r.AddCookie(tt.cookie)
			}
			_, err := c.Decode(r)
			require.Error(t, err)
			assert.IsType(t, &domain.AccessDeniedError{}, err)
		})
	}
}

func TestMiddleware_InjectsSessionAndBearerToken(t *testing.T) {
	t.Parallel()

	c := NewCodec(testSecret, time.Hour, false)
	cookie := issueCookie(t, c, Session{
		Token:   "bearer-xyz",
		Usuario: domain.User{ID: "u2", Nombre: "Bruno"},
	})

	var gotSession Session
	var gotToken string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession, _ = FromContext(r.Context())
		gotToken = rest.TokenFromContext(r.Context())
	})

	r := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
	r.AddCookie(cookie)
	rec := httptest.NewRecorder()
	c.Middleware(next).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u2", gotSession.Usuario.ID)
	assert.Equal(t, "bearer-xyz", gotToken)
}

func TestMiddleware_RedirectsWithoutValidSession(t *testing.T) {
	t.Parallel()

	c := NewCodec(testSecret, time.Hour, false)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	r := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
	rec := httptest.NewRecorder()
	c.Middleware(next).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	admin := Session{Token: "t", Usuario: domain.User{
		ID:            "a1",
		Administrador: &domain.AdministradorInfo{Cargo: "gerencia"},
	}}
	tenant := Session{Token: "t", Usuario: domain.User{
		ID:           "i1",
		Arrendatario: &domain.ArrendatarioInfo{Ocupacion: "docente"},
	}}

	handler := RequireRole(domain.TipoAdministrador)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) },
	))

	run := func(s Session) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
		r = r.WithContext(WithSession(r.Context(), s))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		return rec
	}

	assert.Equal(t, http.StatusOK, run(admin).Code)
	assert.Equal(t, http.StatusForbidden, run(tenant).Code)
}
