package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/devanshuguptaa/Stylo/internal/model"
	"github.com/devanshuguptaa/Stylo/internal/session"
)

// TokenCookieName is the cookie the login endpoint sets alongside the JSON
// token response.
const TokenCookieName = "token"

type Method string

const (
	MethodToken   Method = "token"
	MethodSession Method = "session"
)

// State is the single authentication result computed per request. Exactly one
// mechanism wins; an empty Method means unauthenticated.
type State struct {
	Method Method
	Name   string
	Email  string

	// SessionID is set only for MethodSession.
	SessionID string
}

func (s State) Authenticated() bool {
	return s.Method != ""
}

// UserSource rehydrates a user for session-backed requests.
type UserSource interface {
	GetUserByID(ctx context.Context, id string) (model.User, error)
}

// Resolver reconciles the two credential mechanisms into one State. The
// stateless token always takes priority over the server-side session; an
// invalid or expired token is treated as absent rather than failing the
// request, so the session check still runs.
type Resolver struct {
	secret   string
	sessions *session.Store
	codec    session.Codec
	users    UserSource
}

func NewResolver(jwtSecret string, sessions *session.Store, codec session.Codec, users UserSource) *Resolver {
	return &Resolver{secret: jwtSecret, sessions: sessions, codec: codec, users: users}
}

// Resolve never returns an error: missing and rejected credentials both come
// back as the unauthenticated State.
func (r *Resolver) Resolve(req *http.Request) State {
	if token := candidateToken(req); token != "" {
		if claims, err := ParseToken(r.secret, token); err == nil {
			// The token is authoritative: identity comes from its claims,
			// not from current store state.
			return State{Method: MethodToken, Name: claims.Name, Email: claims.Email}
		}
	}

	cookie, err := req.Cookie(session.CookieName)
	if err != nil {
		return State{}
	}
	id, ok := r.codec.Decode(cookie.Value)
	if !ok {
		return State{}
	}
	record, err := r.sessions.Get(req.Context(), id)
	if err != nil {
		return State{}
	}
	user, err := r.users.GetUserByID(req.Context(), record.UserID)
	if err != nil {
		return State{}
	}
	return State{Method: MethodSession, Name: user.Name, Email: user.Email, SessionID: id}
}

// candidateToken prefers the Authorization header over the token cookie.
func candidateToken(req *http.Request) string {
	if token := bearerToken(req.Header.Get("Authorization")); token != "" {
		return token
	}
	if cookie, err := req.Cookie(TokenCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
