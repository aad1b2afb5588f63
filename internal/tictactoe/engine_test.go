package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeOutcome(t *testing.T) {
	t.Run("Returns OutcomeXWon when X holds the top row", func(t *testing.T) {
		// Given: a board where X holds cells 0, 1, 2
		board := Board{
			PlayerX, PlayerX, PlayerX,
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: computing the outcome
		outcome := ComputeOutcome(board)

		// Then: X has won
		assert.Equal(t, OutcomeXWon, outcome)
		assert.True(t, outcome.IsTerminal())
		assert.Equal(t, PlayerX, outcome.Winner())
	})

	t.Run("Returns OutcomeOWon when O holds a diagonal", func(t *testing.T) {
		// Given: a board where O holds cells 2, 4, 6
		board := Board{
			PlayerX, PlayerX, PlayerO,
			EmptyCell, PlayerO, EmptyCell,
			PlayerO, EmptyCell, PlayerX,
		}

		// When: computing the outcome
		outcome := ComputeOutcome(board)

		// Then: O has won
		assert.Equal(t, OutcomeOWon, outcome)
	})

	t.Run("Returns OutcomeDraw for a full board without a line", func(t *testing.T) {
		// Given: the alternating non-winning pattern
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerO,
		}

		// When: computing the outcome
		outcome := ComputeOutcome(board)

		// Then: the game is a draw
		assert.Equal(t, OutcomeDraw, outcome)
		assert.True(t, outcome.IsTerminal())
		assert.Equal(t, EmptyCell, outcome.Winner())
	})

	t.Run("Returns OutcomeInProgress while empty cells remain", func(t *testing.T) {
		// Given: a board with moves left
		board := Board{
			PlayerX, PlayerO, EmptyCell,
			EmptyCell, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, PlayerO,
		}

		// When: computing the outcome
		outcome := ComputeOutcome(board)

		// Then: the game continues
		assert.Equal(t, OutcomeInProgress, outcome)
		assert.False(t, outcome.IsTerminal())
	})

	t.Run("Every line of the grid is recognized", func(t *testing.T) {
		for _, combo := range WinCombos {
			// Given: a board where X holds exactly one winning line
			board := EmptyBoard()
			for _, cell := range combo {
				board[cell] = PlayerX
			}

			// When: computing the outcome
			outcome := ComputeOutcome(board)

			// Then: X has won
			assert.Equalf(t, OutcomeXWon, outcome, "line %v not detected", combo)
		}
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("Legal move fills exactly one cell", func(t *testing.T) {
		// Given: an empty board with X to move
		board := EmptyBoard()

		// When: X plays index 4
		newBoard, outcome, err := ApplyMove(board, PlayerX, 4)

		// Then: only that cell changed and the game continues
		require.NoError(t, err)
		assert.Equal(t, PlayerX, newBoard[4])
		assert.Equal(t, OutcomeInProgress, outcome)
		assert.Equal(t, board.FreeCells()-1, newBoard.FreeCells())
	})

	t.Run("Top row sequence ends with a win for X", func(t *testing.T) {
		// Given: an empty board
		board := EmptyBoard()
		turn := PlayerX

		// When: playing X 0, O 4, X 1, O 5, X 2
		for _, cell := range []int{0, 4, 1, 5, 2} {
			var err error
			var outcome Outcome

			board, outcome, err = ApplyMove(board, turn, cell)
			require.NoError(t, err)

			if cell != 2 {
				require.Equal(t, OutcomeInProgress, outcome)
				turn = ToggleMark(turn)
			} else {
				// Then: the last move wins the top row for X
				assert.Equal(t, OutcomeXWon, outcome)
			}
		}
	})

	t.Run("Move on an occupied cell is rejected and changes nothing", func(t *testing.T) {
		// Given: a board with cell 0 taken
		board := Board{PlayerX}

		// When: O plays the same cell
		newBoard, outcome, err := ApplyMove(board, PlayerO, 0)

		// Then: the move is rejected and the board is unchanged
		require.ErrorIs(t, err, ErrCellOccupied)
		assert.Equal(t, board, newBoard)
		assert.Equal(t, OutcomeInProgress, outcome)
	})

	t.Run("Move outside the grid is rejected", func(t *testing.T) {
		// Given: an empty board
		board := EmptyBoard()

		// When: playing invalid indices
		for _, cell := range []int{-1, 9, 42} {
			newBoard, _, err := ApplyMove(board, PlayerX, cell)

			// Then: the move is rejected and the board is unchanged
			require.ErrorIs(t, err, ErrInvalidCell)
			assert.Equal(t, board, newBoard)
		}
	})

	t.Run("Terminal board absorbs further moves", func(t *testing.T) {
		// Given: a board already won by X
		board := Board{
			PlayerX, PlayerX, PlayerX,
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: O tries to keep playing
		newBoard, outcome, err := ApplyMove(board, PlayerO, 5)

		// Then: the move is rejected and the outcome stands
		require.ErrorIs(t, err, ErrGameFinished)
		assert.Equal(t, board, newBoard)
		assert.Equal(t, OutcomeXWon, outcome)
	})
}

func TestNewGame(t *testing.T) {
	t.Run("Starting mark alternates between games", func(t *testing.T) {
		// Given: the previous game was opened by X
		board, starter := NewGame(PlayerX)

		// Then: the next game starts empty with O to open
		assert.Equal(t, EmptyBoard(), board)
		assert.Equal(t, PlayerO, starter)

		// When: another game follows
		board, starter = NewGame(starter)

		// Then: the opening mark flips back to X
		assert.Equal(t, EmptyBoard(), board)
		assert.Equal(t, PlayerX, starter)
	})
}

func TestToggleMark(t *testing.T) {
	assert.Equal(t, PlayerO, ToggleMark(PlayerX))
	assert.Equal(t, PlayerX, ToggleMark(PlayerO))
}
