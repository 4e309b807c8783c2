package http

import (
	"errors"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/devanshuguptaa/Stylo/internal/auth"
	"github.com/devanshuguptaa/Stylo/internal/auth0"
	"github.com/devanshuguptaa/Stylo/internal/crypto"
	"github.com/devanshuguptaa/Stylo/internal/model"
	"github.com/devanshuguptaa/Stylo/internal/repository"
	"github.com/devanshuguptaa/Stylo/internal/session"
)

const stateCookieName = "oauth_state"

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMsg(w, http.StatusBadRequest, "Please enter all fields")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeMsg(w, http.StatusBadRequest, "Please enter all fields")
		return
	}

	if _, err := s.users.GetUserByEmail(r.Context(), req.Email); err == nil {
		writeMsg(w, http.StatusBadRequest, "User already exists")
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		writeMsg(w, http.StatusInternalServerError, "Server error")
		return
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		writeMsg(w, http.StatusInternalServerError, "Server error")
		return
	}

	now := time.Now().UTC()
	user := model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.CreateUser(r.Context(), user); err != nil {
		// The unique constraint closes the window between the lookup above
		// and the insert.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			writeMsg(w, http.StatusBadRequest, "User already exists")
			return
		}
		writeMsg(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeMsg(w, http.StatusCreated, "User created successfully")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMsg(w, http.StatusBadRequest, "Please enter all fields")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeMsg(w, http.StatusBadRequest, "Please enter all fields")
		return
	}

	user, err := s.users.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Deliberately the same message as a bad password.
			writeMsg(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		writeMsg(w, http.StatusInternalServerError, "Server error")
		return
	}
	if err := crypto.CheckPassword(user.PasswordHash, req.Password); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := auth.NewToken(s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.TokenTTL, auth.Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	})
	if err != nil {
		writeMsg(w, http.StatusInternalServerError, "Server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.cfg.TokenTTL.Seconds()),
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]string{"msg": "Login successful", "token": token})
}

type statusResponse struct {
	LoggedIn bool        `json:"loggedIn"`
	User     *statusUser `json:"user,omitempty"`
}

type statusUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	state := s.resolver.Resolve(r)
	if !state.Authenticated() {
		writeJSON(w, http.StatusOK, statusResponse{LoggedIn: false})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		LoggedIn: true,
		User:     &statusUser{Name: state.Name, Email: state.Email},
	})
}

func (s *Server) handleFederatedLogin(w http.ResponseWriter, r *http.Request) {
	if !s.provider.Configured() {
		log.Printf("federated login requested but auth0 is not configured")
		http.Redirect(w, r, "/index.html", http.StatusFound)
		return
	}

	state, err := crypto.NewStateToken()
	if err != nil {
		writeMsg(w, http.StatusInternalServerError, "Server error")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
	})
	http.Redirect(w, r, s.provider.AuthorizeURL(state), http.StatusFound)
}

// handleCallback resolves the provider redirect into a local session. Every
// failure path lands back on the home page without one; the user sees no
// error, matching the flow's fail-quiet contract.
func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	redirectHome := func() {
		http.Redirect(w, r, "/index.html", http.StatusFound)
	}

	// The state cookie is single-use.
	stateCookie, err := r.Cookie(stateCookieName)
	http.SetCookie(w, &http.Cookie{Name: stateCookieName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	if err != nil || stateCookie.Value == "" || r.URL.Query().Get("state") != stateCookie.Value {
		log.Printf("callback rejected: state mismatch")
		redirectHome()
		return
	}

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		log.Printf("callback rejected by provider: %s", errParam)
		redirectHome()
		return
	}
	code := r.URL.Query().Get("code")
	if code == "" {
		redirectHome()
		return
	}

	accessToken, err := s.provider.Exchange(r.Context(), code)
	if err != nil {
		log.Printf("code exchange failed: %v", err)
		redirectHome()
		return
	}
	profile, err := s.provider.UserInfo(r.Context(), accessToken)
	if err != nil {
		log.Printf("userinfo fetch failed: %v", err)
		redirectHome()
		return
	}

	user, err := s.resolveFederatedUser(r, profile)
	if err != nil {
		log.Printf("federated user resolution failed: %v", err)
		redirectHome()
		return
	}

	sid, err := s.sessions.Create(r.Context(), user.ID)
	if err != nil {
		log.Printf("session create failed: %v", err)
		redirectHome()
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    s.codec.Encode(sid),
		Path:     "/",
		MaxAge:   int(s.cfg.SessionCookieTTL.Seconds()),
		HttpOnly: true,
	})
	redirectHome()
}

// resolveFederatedUser matches by the provider's email claim and lazily
// creates the account on first login. When two first logins race, the loser's
// insert hits the unique constraint and is retried as a plain lookup.
func (s *Server) resolveFederatedUser(r *http.Request, profile auth0.Profile) (model.User, error) {
	user, err := s.users.GetUserByEmail(r.Context(), profile.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return model.User{}, err
	}

	placeholder, err := crypto.NewPlaceholderSecret()
	if err != nil {
		return model.User{}, err
	}
	hash, err := crypto.HashPassword(placeholder)
	if err != nil {
		return model.User{}, err
	}

	name := profile.Name
	if name == "" {
		name = profile.Email
	}
	now := time.Now().UTC()
	sub := profile.Sub
	user = model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        profile.Email,
		PasswordHash: hash,
		Auth0ID:      &sub,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return s.users.GetUserByEmail(r.Context(), profile.Email)
		}
		return model.User{}, err
	}
	return user, nil
}

// handleLogout terminates both mechanisms. The token cookie is cleared
// unconditionally, and the session is checked on its own rather than through
// the resolver: token priority must not shadow a live session here, or the
// session would survive logout. Session destruction failures are logged and
// do not block the redirect.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	sid, live := s.liveSession(r)
	if !live {
		http.Redirect(w, r, "/logout.html", http.StatusFound)
		return
	}

	if err := s.sessions.Delete(r.Context(), sid); err != nil {
		log.Printf("session destroy failed: %v", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	if !s.provider.Configured() {
		log.Printf("auth0 not configured, using local logout")
		http.Redirect(w, r, "/logout.html", http.StatusFound)
		return
	}
	http.Redirect(w, r, s.provider.LogoutURL(requestOrigin(r)), http.StatusFound)
}

// liveSession reports the session id behind the request's sid cookie, if the
// cookie verifies and the record still exists.
func (s *Server) liveSession(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return "", false
	}
	sid, ok := s.codec.Decode(cookie.Value)
	if !ok {
		return "", false
	}
	if _, err := s.sessions.Get(r.Context(), sid); err != nil {
		return "", false
	}
	return sid, true
}

// requestOrigin rebuilds scheme://host for the provider's returnTo target,
// dropping default ports.
func requestOrigin(r *http.Request) string {
	scheme := "http"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS != nil {
		scheme = "https"
	}

	host, port, err := net.SplitHostPort(r.Host)
	if err != nil {
		return scheme + "://" + r.Host
	}
	if port == "80" || port == "443" {
		return scheme + "://" + host
	}
	return scheme + "://" + host + ":" + port
}
