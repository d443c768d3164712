package tictactoe

import (
	"math/rand"
	"time"
)

// NoMove is returned by Bot.PickMove when the board has no empty cells.
const NoMove = -1

// Bot picks the opponent's move: a uniformly random empty cell.
type Bot struct {
	rng *rand.Rand
}

func NewBot() *Bot {
	return NewSeededBot(time.Now().UnixNano())
}

// NewSeededBot - builds a bot with a fixed seed, so tests can replay moves.
func NewSeededBot(seed int64) *Bot {
	return &Bot{
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // move selection needs no crypto randomness
	}
}

// PickMove - returns a random empty cell index, or NoMove on a full board.
func (that *Bot) PickMove(board [9]string) int {
	availableCells := EmptyCells(board)
	if len(availableCells) == 0 {
		return NoMove
	}

	return availableCells[that.rng.Intn(len(availableCells))]
}
