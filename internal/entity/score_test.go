package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/playgrid/tictactoe-server/internal/tictactoe"
)

func TestScore_Apply(t *testing.T) {
	t.Run("Each terminal outcome bumps exactly one counter", func(t *testing.T) {
		score := Score{}

		score = score.Apply(tictactoe.OutcomeXWon)
		assert.Equal(t, Score{X: 1}, score)

		score = score.Apply(tictactoe.OutcomeOWon)
		assert.Equal(t, Score{X: 1, O: 1}, score)

		score = score.Apply(tictactoe.OutcomeDraw)
		assert.Equal(t, Score{X: 1, O: 1, Draws: 1}, score)
	})

	t.Run("In-progress outcome leaves the score unchanged", func(t *testing.T) {
		score := Score{X: 2, O: 1, Draws: 3}

		assert.Equal(t, score, score.Apply(tictactoe.OutcomeInProgress))
	})

	t.Run("Order of outcomes does not matter", func(t *testing.T) {
		// Given: the same outcomes in two different orders
		first := []tictactoe.Outcome{tictactoe.OutcomeXWon, tictactoe.OutcomeDraw, tictactoe.OutcomeOWon, tictactoe.OutcomeXWon}
		second := []tictactoe.Outcome{tictactoe.OutcomeOWon, tictactoe.OutcomeXWon, tictactoe.OutcomeXWon, tictactoe.OutcomeDraw}

		a, b := Score{}, Score{}
		for _, outcome := range first {
			a = a.Apply(outcome)
		}
		for _, outcome := range second {
			b = b.Apply(outcome)
		}

		// Then: both sequences reach the same final score
		assert.Equal(t, a, b)
		assert.Equal(t, Score{X: 2, O: 1, Draws: 1}, a)
	})
}

func TestValidScoreField(t *testing.T) {
	assert.True(t, ValidScoreField(0))
	assert.True(t, ValidScoreField(42))

	assert.False(t, ValidScoreField(-1))
	assert.False(t, ValidScoreField(math.NaN()))
	assert.False(t, ValidScoreField(math.Inf(1)))
	assert.False(t, ValidScoreField(math.Inf(-1)))
}
