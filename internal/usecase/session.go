package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ninecell/tictactoe-solo-backend/internal/apperror"
	"github.com/ninecell/tictactoe-solo-backend/internal/entity"
	"github.com/ninecell/tictactoe-solo-backend/internal/tictactoe"
)

type sessionRepo interface {
	Save(ctx context.Context, game *entity.Game) error
	Get(ctx context.Context) (*entity.Game, error)
}

// SessionManager owns the single live game session: it loads the snapshot,
// runs turns through the controller and writes the result back.
type SessionManager struct {
	logger *slog.Logger

	sessionRepo sessionRepo
	controller  *tictactoe.Controller
}

func NewSessionManager(logger *slog.Logger, sessionRepo sessionRepo, controller *tictactoe.Controller) *SessionManager {
	return &SessionManager{
		logger: logger.With("component", "session-manager"),

		sessionRepo: sessionRepo,
		controller:  controller,
	}
}

// CurrentGame - returns the stored session, creating a fresh one when none
// exists yet.
func (that *SessionManager) CurrentGame(ctx context.Context) (*entity.Game, error) {
	game, err := that.sessionRepo.Get(ctx)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		return that.createGame(ctx)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return game, nil
}

// SubmitMove - applies the player's move and the bot's reply, then persists
// the result. A rejected move (occupied cell, bad index, finished game) is a
// no-op: the unchanged snapshot is returned without an error.
func (that *SessionManager) SubmitMove(ctx context.Context, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "SubmitMove")

	game, err := that.CurrentGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current game: %w", err)
	}

	if err = that.controller.SubmitPlayerMove(game, cell); err != nil {
		log.Debug("move rejected", "cell", cell, "error", err)

		return game, nil
	}

	if err = that.sessionRepo.Save(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return game, nil
}

// Reset - starts a fresh game, from any state.
func (that *SessionManager) Reset(ctx context.Context) (*entity.Game, error) {
	game, err := that.CurrentGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current game: %w", err)
	}

	that.controller.Reset(game)

	if err = that.sessionRepo.Save(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return game, nil
}

// StartOpponentDemo - starts a fresh game where the bot opens with one O.
func (that *SessionManager) StartOpponentDemo(ctx context.Context) (*entity.Game, error) {
	game, err := that.CurrentGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current game: %w", err)
	}

	that.controller.OpponentStartsDemo(game)

	if err = that.sessionRepo.Save(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return game, nil
}

func (that *SessionManager) createGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame()

	if err := that.sessionRepo.Save(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	that.logger.Info("created new game session")

	return game, nil
}
