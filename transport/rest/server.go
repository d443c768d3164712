package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ninecell/tictactoe-solo-backend/internal/entity"
)

type gameSession interface {
	CurrentGame(ctx context.Context) (*entity.Game, error)
	SubmitMove(ctx context.Context, cell int) (*entity.Game, error)
	Reset(ctx context.Context) (*entity.Game, error)
	StartOpponentDemo(ctx context.Context) (*entity.Game, error)
}

type Server struct {
	logger  *slog.Logger
	session gameSession
}

func New(logger *slog.Logger, session gameSession) *Server {
	return &Server{
		logger:  logger.With("component", "rest"),
		session: session,
	}
}

// Start - serves the game API until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Routes - builds the request mux; split out so tests can drive handlers
// through httptest.
func (that *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", that.handlePing)
	mux.HandleFunc("GET /game", that.handleCurrentGame)
	mux.HandleFunc("POST /game/turn", that.handleTurn)
	mux.HandleFunc("POST /game/reset", that.handleReset)
	mux.HandleFunc("POST /game/demo", that.handleDemo)

	return mux
}
