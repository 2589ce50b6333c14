// Package leaderboard exposes the score table over HTTP so companion
// clients (a web build, a kiosk display) can read and submit scores.
package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jrichson/time-mission-magma-mayhem/internal/storage"
)

// ServerConfig holds configuration for the leaderboard HTTP service.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8787").
	Address string

	// DBPath is the path to the leaderboard database.
	DBPath string

	// GameID selects which score table the endpoints serve.
	GameID string

	// MaxScore and MaxLevel bound accepted submissions.
	MaxScore int
	MaxLevel int
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address: ":8787",
		DBPath:  "~/.magma/scores.db",
		GameID:  "magma",
	}
}

// Server serves the leaderboard over HTTP.
type Server struct {
	config ServerConfig
	store  *storage.Store
	logger *log.Logger
	http   *http.Server
}

// entryJSON is the wire shape of one leaderboard row.
type entryJSON struct {
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Level     int    `json:"level"`
	Character string `json:"character"`
	CreatedAt string `json:"created_at"`
}

// submitJSON is the wire shape of a score submission.
type submitJSON struct {
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Level     int    `json:"level"`
	Character string `json:"character"`
}

// submitResultJSON is the response to an accepted submission.
type submitResultJSON struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
	Rank    int   `json:"rank"`
}

// errorJSON is the response to a rejected request.
type errorJSON struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// topPageSize is how many entries GET /leaderboard returns.
const topPageSize = 10

// NewServer creates a leaderboard server backed by the given store.
func NewServer(cfg ServerConfig, store *storage.Store) *Server {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "magma-api",
	})

	s := &Server{
		config: cfg,
		store:  store,
		logger: logger,
	}
	s.http = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP routes for the service.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/leaderboard", enableCORS(s.handleLeaderboard))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	return mux
}

// enableCORS allows browser clients on any origin to reach the API.
func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleGet(w, r)
	case http.MethodPost:
		s.handlePost(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.Top(s.config.GameID, topPageSize)
	if err != nil {
		s.logger.Error("cannot read leaderboard", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	payload := make([]entryJSON, 0, len(entries))
	for _, e := range entries {
		payload = append(payload, entryJSON{
			Name:      e.Name,
			Score:     e.Score,
			Level:     e.Level,
			Character: e.Character,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	var sub submitJSON
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, rank, err := s.store.Submit(storage.Submission{
		GameID:    s.config.GameID,
		Name:      sub.Name,
		Score:     sub.Score,
		Level:     sub.Level,
		Character: sub.Character,
		MaxScore:  s.config.MaxScore,
		MaxLevel:  s.config.MaxLevel,
	})
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.logger.Info("score submitted",
		"name", sub.Name,
		"score", sub.Score,
		"level", sub.Level,
		"rank", rank,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(submitResultJSON{Success: true, ID: id, Rank: rank})
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorJSON{Success: false, Error: msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// ListenAndServe starts the HTTP server and blocks until shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting leaderboard API", "address", s.config.Address, "game", s.config.GameID)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-done:
	}

	s.logger.Info("shutting down leaderboard API")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
