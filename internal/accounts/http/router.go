package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"

	_ "github.com/aussiebroadwan/accounts/api/accounts" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	dev          bool

	store       store.Store
	Accounts    *service.AccountService
	Credentials *service.CredentialService
	Sessions    *service.SessionService
}

// NewRouter builds a router. dev enables error details in 500 responses.
func NewRouter(buildVersion string, st store.Store, logger *slog.Logger, dev bool) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		dev:          dev,
		store:        st,
	}

	panicHandler := httpx.DefaultPanicHandler
	if dev {
		panicHandler = httpx.DetailedPanicHandler
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recovery(panicHandler),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			BarTab Accounts Service API
//	@version		0.1.0
//	@description	User accounts: registration, sign-in, sign-out and profile management.
//	@description
//	@description	Sessions are stateless signed JWTs carried in an HttpOnly cookie named "jwt".
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/accounts
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	CookieAuth
//	@in							cookie
//	@name						jwt
//	@description				Session token set by /api/users and /api/users/auth.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{Accounts: r.Accounts, dev: r.dev}
	gate := AuthGate(r.Sessions, r.Credentials, r.dev)

	r.Mux.Handle("POST /api/users", http.HandlerFunc(h.HandleRegister))
	r.Mux.Handle("POST /api/users/{$}", http.HandlerFunc(h.HandleRegister))
	r.Mux.Handle("POST /api/users/auth", http.HandlerFunc(h.HandleAuthenticate))
	r.Mux.Handle("POST /api/users/logout", http.HandlerFunc(h.HandleLogout))

	r.Mux.Handle("GET /api/users/profile", httpx.Chain(http.HandlerFunc(h.HandleGetProfile), gate))
	r.Mux.Handle("PUT /api/users/profile", httpx.Chain(http.HandlerFunc(h.HandleUpdateProfile), gate))

	// Anything else under /api answers in JSON rather than the mux's plain text.
	r.Mux.Handle("/api/", http.HandlerFunc(notFound))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.Sessions))
}

func notFound(w http.ResponseWriter, r *http.Request) {
	httpx.WriteError(w, http.StatusNotFound, "Not Found - "+r.URL.Path)
}
