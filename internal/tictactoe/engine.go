package tictactoe

import "errors"

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

// Outcome is derived from the board and never stored as the source of truth.
type Outcome string

const (
	OutcomeInProgress Outcome = ""
	OutcomeXWon       Outcome = PlayerX
	OutcomeOWon       Outcome = PlayerO
	OutcomeDraw       Outcome = "-"
)

var (
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrGameFinished = errors.New("game is already finished")

	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Board is a 3x3 grid in row-major order.
type Board [9]string

func EmptyBoard() Board {
	return Board{}
}

func (that Board) FreeCells() int {
	free := 0
	for _, cell := range that {
		if cell == EmptyCell {
			free++
		}
	}
	return free
}

func (that Outcome) IsTerminal() bool {
	return that != OutcomeInProgress
}

// Winner returns the winning mark, or an empty string for a draw or an
// unfinished game.
func (that Outcome) Winner() string {
	if that == OutcomeXWon || that == OutcomeOWon {
		return string(that)
	}
	return EmptyCell
}

// ComputeOutcome checks all eight winning lines and falls back to a draw
// once no empty cell remains.
func ComputeOutcome(board Board) Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return Outcome(a)
		}
	}

	for _, cell := range board {
		if cell == EmptyCell {
			return OutcomeInProgress
		}
	}

	return OutcomeDraw
}

// ApplyMove places the mark of the current turn on the board and returns the
// updated board with its outcome. On a rejected move the original board is
// returned unchanged together with a sentinel error.
func ApplyMove(board Board, turn string, cell int) (Board, Outcome, error) {
	if outcome := ComputeOutcome(board); outcome.IsTerminal() {
		return board, outcome, ErrGameFinished
	}

	if cell < 0 || cell >= len(board) {
		return board, OutcomeInProgress, ErrInvalidCell
	}

	if board[cell] != EmptyCell {
		return board, OutcomeInProgress, ErrCellOccupied
	}

	board[cell] = turn

	return board, ComputeOutcome(board), nil
}

// NewGame returns a fresh board with the starting mark alternated from the
// previous game, independent of how that game ended.
func NewGame(previousStarter string) (Board, string) {
	return EmptyBoard(), ToggleMark(previousStarter)
}

func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
