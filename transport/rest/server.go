package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"github.com/rocketscienceinc/gomoku-backend/pkg/handlers"
	"github.com/rocketscienceinc/gomoku-backend/transport/dto"
)

type gameReader interface {
	GetGameByID(ctx context.Context, gameID string) (*entity.Game, error)
	GameScores(ctx context.Context, gameID string) ([][]float64, error)
}

type Server struct {
	logger     *slog.Logger
	gameReader gameReader
}

func New(logger *slog.Logger, gameReader gameReader) *Server {
	return &Server{
		logger:     logger.With("component", "rest"),
		gameReader: gameReader,
	}
}

// Router - ping, game snapshots and score overlays.
func (that *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(that.logRequests)

	router.Get("/ping", handlers.PingHandler)

	router.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", that.getGame)
		r.Get("/scores", that.getScores)
	})

	return router
}

// Start - starts REST server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) getGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")

	game, err := that.gameReader.GetGameByID(r.Context(), gameID)
	if err != nil {
		that.writeGameError(w, r, gameID, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, dto.NewGameView(game))
}

func (that *Server) getScores(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")

	scores, err := that.gameReader.GameScores(r.Context(), gameID)
	if err != nil {
		that.writeGameError(w, r, gameID, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, dto.ScoresView{GameID: gameID, Scores: scores})
}

func (that *Server) writeGameError(w http.ResponseWriter, r *http.Request, gameID string, err error) {
	if errors.Is(err, repository.ErrGameNotFound) {
		handlers.WriteError(w, http.StatusNotFound, "game not found")
		return
	}

	that.logger.Error("failed to load game",
		"gameID", gameID,
		"requestID", middleware.GetReqID(r.Context()),
		"error", err,
	)
	handlers.WriteInternalError(w)
}

func (that *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		that.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"requestID", middleware.GetReqID(r.Context()),
		)
	})
}
