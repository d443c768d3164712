package rest

import "github.com/ninecell/tictactoe-solo-backend/internal/entity"

type TurnRequest struct {
	Cell *int `json:"cell"`
}

// GameResponse is the session snapshot handed to the presentation layer:
// the 9 cells, the status line, and everything needed to enable or disable
// the board.
type GameResponse struct {
	Board         []string `json:"board"`
	State         string   `json:"state"`
	Message       string   `json:"message"`
	Terminal      bool     `json:"terminal"`
	PlayableCells []int    `json:"playable_cells"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func newGameResponse(game *entity.Game) *GameResponse {
	return &GameResponse{
		Board:         game.Board[:],
		State:         game.State,
		Message:       game.Message,
		Terminal:      game.IsTerminal(),
		PlayableCells: game.PlayableCells(),
	}
}
