package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/numbergamble-go/internal/api/handler"
	"github.com/mcoot/numbergamble-go/internal/api/middleware"
	"github.com/mcoot/numbergamble-go/internal/api/sse"
	"github.com/mcoot/numbergamble-go/internal/registry"
	"github.com/mcoot/numbergamble-go/internal/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	RegistryController *registry.Controller
	SessionController  *session.Controller
	HubManager         *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.RegistryController, cfg.SessionController, cfg.HubManager)

	// Create middleware
	accountMiddleware := middleware.Account()
	optionalAccountMiddleware := middleware.OptionalAccount()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Read-only routes: anyone can watch, identified or not
	public := api.NewRoute().Subrouter()
	public.Use(optionalAccountMiddleware)
	public.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	public.HandleFunc("/games/count", gameHandler.Count).Methods(http.MethodGet)
	public.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	public.HandleFunc("/games/{id}/players", gameHandler.Players).Methods(http.MethodGet)
	public.HandleFunc("/games/{id}/players/{account}", gameHandler.Player).Methods(http.MethodGet)
	public.HandleFunc("/games/{id}/events", gameHandler.Events).Methods(http.MethodGet)

	// Routes acting on behalf of an account
	identified := api.NewRoute().Subrouter()
	identified.Use(accountMiddleware)
	identified.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	identified.HandleFunc("/games/{id}/rolls", gameHandler.Rolls).Methods(http.MethodGet)
	identified.HandleFunc("/games/{id}/join", gameHandler.Join).Methods(http.MethodPost)
	identified.HandleFunc("/games/{id}/start", gameHandler.Start).Methods(http.MethodPost)
	identified.HandleFunc("/games/{id}/decide", gameHandler.Decide).Methods(http.MethodPost)
	identified.HandleFunc("/games/{id}/resolve", gameHandler.Resolve).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
