// Package session issues and validates the signed browser session cookie.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
)

// CookieName is the session cookie set after a successful login.
const CookieName = "rm_session"

// Session is the authenticated browser state: the upstream API token plus
// the logged-in user as returned by the login endpoint.
type Session struct {
	Token   string
	Usuario domain.User
}

// Codec signs sessions into HS256 JWT cookies and validates them back.
type Codec struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewCodec(secret string, ttl time.Duration, secure bool) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl, secure: secure}
}

// Issue signs the session and sets the cookie on the response.
func (c *Codec) Issue(w http.ResponseWriter, s Session) error {
	usuario, err := json.Marshal(s.Usuario)
	if err != nil {
		return fmt.Errorf("marshal usuario: %w", err)
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": s.Usuario.ID,
		"iat": now.Unix(),
		"exp": now.Add(c.ttl).Unix(),
		"tok": s.Token,
		"usr": string(usuario),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  now.Add(c.ttl),
	})
	return nil
}

// Decode validates the session cookie on the request.
func (c *Codec) Decode(r *http.Request) (Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return Session{}, domain.ErrAccessDenied("no hay sesión activa")
	}

	tok, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		if t.Method == nil || t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return Session{}, domain.ErrAccessDenied("la sesión no es válida o expiró")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, domain.ErrAccessDenied("la sesión no es válida o expiró")
	}

	var s Session
	if v, ok := claims["tok"].(string); ok {
		s.Token = v
	}
	if raw, ok := claims["usr"].(string); ok {
		if err := json.Unmarshal([]byte(raw), &s.Usuario); err != nil {
			return Session{}, domain.ErrAccessDenied("la sesión no es válida o expiró")
		}
	}
	if s.Token == "" || s.Usuario.ID == "" {
		return Session{}, domain.ErrAccessDenied("la sesión no es válida o expiró")
	}
	return s, nil
}

// Clear expires the session cookie.
func (c *Codec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

type sessionKey struct{}

// WithSession stores the session in the context.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext extracts the session from the context.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}
