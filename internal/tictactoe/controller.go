package tictactoe

import (
	"errors"
	"fmt"

	"github.com/ninecell/tictactoe-solo-backend/internal/apperror"
	"github.com/ninecell/tictactoe-solo-backend/internal/entity"
)

var (
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
)

// Controller drives one full turn: the player's move and, while the game is
// still open, the bot's reply.
type Controller struct {
	bot *Bot
}

func NewController(bot *Bot) *Controller {
	return &Controller{
		bot: bot,
	}
}

// SubmitPlayerMove - places X on cell and lets the bot answer with O.
// A rejected move leaves the game untouched and returns a sentinel error;
// callers that want the silent no-op contract swallow it.
func (that *Controller) SubmitPlayerMove(game *entity.Game, cell int) error {
	if err := validateMove(game, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board[cell] = entity.PlayerMark

	if HasWinner(game.Board, entity.PlayerMark) {
		game.State = entity.StatePlayerWon
		game.Message = entity.MessageVictory

		return nil
	}

	if IsDraw(game.Board) {
		game.State = entity.StateDraw
		game.Message = entity.MessageDraw

		return nil
	}

	that.makeOpponentMove(game)

	return nil
}

// Reset - starts a fresh game with the player to move.
func (that *Controller) Reset(game *entity.Game) {
	game.Reset()
}

// OpponentStartsDemo - resets the game and lets the bot open with a single O.
// One move on an empty board cannot end the game, so no result check is made.
func (that *Controller) OpponentStartsDemo(game *entity.Game) {
	game.Reset()

	game.Board[that.bot.PickMove(game.Board)] = entity.OpponentMark
}

// makeOpponentMove - places the bot's O and settles the game state.
func (that *Controller) makeOpponentMove(game *entity.Game) {
	move := that.bot.PickMove(game.Board)
	if move == NoMove {
		// unreachable after the draw check, kept as a guard
		game.State = entity.StateDraw
		game.Message = entity.MessageDraw

		return
	}

	game.Board[move] = entity.OpponentMark

	switch {
	case HasWinner(game.Board, entity.OpponentMark):
		game.State = entity.StateOpponentWon
		game.Message = entity.MessageDefeat
	case IsDraw(game.Board):
		game.State = entity.StateDraw
		game.Message = entity.MessageDraw
	default:
		game.State = entity.StateInProgress
		game.Message = entity.MessageYourTurn
	}
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, cell int) error {
	if game.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(game.Board) {
		return ErrInvalidCell
	}

	if game.Board[cell] != entity.EmptyCell {
		return ErrCellOccupied
	}

	return nil
}
