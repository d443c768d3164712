package entity

const (
	PlayerMark   = "X"
	OpponentMark = "O"

	EmptyCell = ""
)

// Session states. A game is terminal in every state except StateInProgress.
const (
	StateInProgress  = "in_progress"
	StatePlayerWon   = "player_won"
	StateOpponentWon = "opponent_won"
	StateDraw        = "draw"
)

// Status line texts shown to the player.
const (
	MessageYourTurn = "your turn"
	MessageVictory  = "you won"
	MessageDefeat   = "you lost"
	MessageDraw     = "it's a draw"
)

// Game is the single live session: a 9-cell board in row-major order
// (row = index/3, col = index%3) plus the derived state and status line.
type Game struct {
	Board   [9]string `json:"board"`
	State   string    `json:"state"`
	Message string    `json:"message"`
}

func NewGame() *Game {
	game := &Game{}
	game.Reset()

	return game
}

// Reset - clears the board and returns the session to the initial state.
// Callable from any state, terminal or not.
func (that *Game) Reset() {
	that.Board = [9]string{}
	that.State = StateInProgress
	that.Message = MessageYourTurn
}

func (that *Game) IsInProgress() bool {
	return that.State == StateInProgress
}

// IsTerminal reports whether no further moves are accepted until reset.
func (that *Game) IsTerminal() bool {
	return that.State != StateInProgress
}

// IsCellPlayable - reports whether a player move on cell would currently be
// accepted: index in range, cell empty, game still in progress.
func (that *Game) IsCellPlayable(cell int) bool {
	if cell < 0 || cell >= len(that.Board) {
		return false
	}

	return that.Board[cell] == EmptyCell && that.IsInProgress()
}

// PlayableCells - returns the playable cell indices in ascending order.
// Empty on a terminal game.
func (that *Game) PlayableCells() []int {
	cells := make([]int, 0, len(that.Board))
	for i := range that.Board {
		if that.IsCellPlayable(i) {
			cells = append(cells, i)
		}
	}

	return cells
}
