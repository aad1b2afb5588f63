package entity

import (
	"math"

	"github.com/playgrid/tictactoe-server/internal/tictactoe"
)

// Score holds the running counters of a match. The wire format mirrors the
// stored value: {"X":n,"O":n,"draws":n}.
type Score struct {
	X     int `json:"X"`
	O     int `json:"O"`
	Draws int `json:"draws"`
}

// Apply increments exactly one counter for a terminal outcome and leaves the
// score untouched for a game still in progress.
func (that Score) Apply(outcome tictactoe.Outcome) Score {
	switch outcome {
	case tictactoe.OutcomeXWon:
		that.X++
	case tictactoe.OutcomeOWon:
		that.O++
	case tictactoe.OutcomeDraw:
		that.Draws++
	case tictactoe.OutcomeInProgress:
	}

	return that
}

// ValidScoreField reports whether a stored counter is usable: non-negative
// and finite. Anything else makes the whole stored score untrusted.
func ValidScoreField(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
