package http

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/devanshuguptaa/Stylo/internal/auth"
	"github.com/devanshuguptaa/Stylo/internal/auth0"
	"github.com/devanshuguptaa/Stylo/internal/catalog"
	"github.com/devanshuguptaa/Stylo/internal/config"
	"github.com/devanshuguptaa/Stylo/internal/model"
	"github.com/devanshuguptaa/Stylo/internal/session"
)

// UserStore is the credential store surface the handlers need.
type UserStore interface {
	CreateUser(ctx context.Context, user model.User) error
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByID(ctx context.Context, userID string) (model.User, error)
}

type ContactStore interface {
	CreateContact(ctx context.Context, contact model.Contact) error
}

type Server struct {
	cfg      config.Config
	users    UserStore
	contacts ContactStore
	catalog  catalog.Service
	sessions *session.Store
	codec    session.Codec
	resolver *auth.Resolver
	provider *auth0.Client
}

func NewServer(cfg config.Config, users UserStore, contacts ContactStore, catalogSvc catalog.Service, sessions *session.Store, provider *auth0.Client) *Server {
	codec := session.NewCodec(cfg.SessionSecret)
	return &Server{
		cfg:      cfg,
		users:    users,
		contacts: contacts,
		catalog:  catalogSvc,
		sessions: sessions,
		codec:    codec,
		resolver: auth.NewResolver(cfg.JWTSecret, sessions, codec, users),
		provider: provider,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/auth/signup", s.handleSignup)
	r.Post("/api/auth/login", s.handleLogin)
	r.Get("/api/auth/status", s.handleStatus)

	r.Get("/auth/google", s.handleFederatedLogin)
	r.Get("/callback", s.handleCallback)
	r.Get("/logout", s.handleLogout)

	r.Get("/api/products", s.handleProducts)
	r.Get("/api/categories", s.handleCategories)
	r.Post("/api/contact", s.handleContact)

	r.Get("/", s.servePage("index.html"))
	for _, name := range []string{
		"index.html", "signin.html", "signup.html", "contact.html",
		"category.html", "logout.html", "style.css", "script.js",
		"signin.js", "signup.js", "contact.js", "category.js", "logout.js",
	} {
		r.Get("/"+name, s.servePage(name))
	}

	// Single-page fallback: unknown GETs serve the landing page.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(s.cfg.StaticDir, "index.html"))
	})

	return r
}

func (s *Server) servePage(name string) http.HandlerFunc {
	path := filepath.Join(s.cfg.StaticDir, name)
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	}
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.Products(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeMsg(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.catalog.Categories(r.Context())
	if err != nil {
		writeMsg(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMsg(w, http.StatusBadRequest, "Please enter all fields")
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeMsg(w, http.StatusBadRequest, "Please enter all fields")
		return
	}

	contact := model.Contact{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.contacts.CreateContact(r.Context(), contact); err != nil {
		writeMsg(w, http.StatusInternalServerError, "Server error. Could not store message.")
		return
	}

	writeMsg(w, http.StatusCreated, "Message received and stored successfully!")
}

func decodeJSON(r *http.Request, out interface{}) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}
