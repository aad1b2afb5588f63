package entity

import (
	"github.com/playgrid/tictactoe-server/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is one hotseat match session: the board, whose turn it is, and which
// mark opened the current game. Status and Winner are caches recomputed from
// the board after every mutation.
type Game struct {
	ID           string          `json:"id"`
	Board        tictactoe.Board `json:"board"`
	Turn         string          `json:"player_turn"`
	StartingMark string          `json:"starting_mark"`
	Winner       string          `json:"winner,omitempty"`
	Status       string          `json:"status"`
	WithBot      bool            `json:"with_bot,omitempty"`
}

func NewGame(id string, withBot bool) *Game {
	return &Game{
		ID:           id,
		Board:        tictactoe.EmptyBoard(),
		Turn:         tictactoe.PlayerX,
		StartingMark: tictactoe.PlayerX,
		Status:       StatusOngoing,
		WithBot:      withBot,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// ApplyOutcome refreshes the cached status fields from a freshly computed
// outcome.
func (that *Game) ApplyOutcome(outcome tictactoe.Outcome) {
	if !outcome.IsTerminal() {
		that.Status = StatusOngoing
		that.Winner = ""
		return
	}

	that.Status = StatusFinished
	that.Winner = string(outcome)
	that.Turn = ""
}

// StartNextGame clears the board and hands the opening move to the other
// mark, no matter how the previous game ended.
func (that *Game) StartNextGame() {
	board, starter := tictactoe.NewGame(that.StartingMark)

	that.Board = board
	that.Turn = starter
	that.StartingMark = starter
	that.Winner = ""
	that.Status = StatusOngoing
}

// ResetMatch puts the session back to its initial state: empty board, X to
// move, X opening.
func (that *Game) ResetMatch() {
	that.Board = tictactoe.EmptyBoard()
	that.Turn = tictactoe.PlayerX
	that.StartingMark = tictactoe.PlayerX
	that.Winner = ""
	that.Status = StatusOngoing
}
