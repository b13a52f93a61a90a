package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/qubicgame/qubic/internal/api/handler"
	"github.com/qubicgame/qubic/internal/api/middleware"
	"github.com/qubicgame/qubic/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameController)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Game lifecycle
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)

	// Play
	api.HandleFunc("/games/{id}/moves", gameHandler.Move).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/machine-move", gameHandler.MachineMove).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/moves/{cell}", gameHandler.Undo).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/refresh-winner", gameHandler.Refresh).Methods(http.MethodPost)

	// Configuration
	api.HandleFunc("/games/{id}/weights", gameHandler.SetWeights).Methods(http.MethodPut)
	api.HandleFunc("/games/{id}/randomize", gameHandler.SetRandomize).Methods(http.MethodPut)
	api.HandleFunc("/games/{id}/board", gameHandler.SetBoard).Methods(http.MethodPut)

	// Analysis
	api.HandleFunc("/games/{id}/best-move", gameHandler.BestMove).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/overlay", gameHandler.Overlay).Methods(http.MethodGet)
	api.HandleFunc("/evaluate", gameHandler.Evaluate).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
