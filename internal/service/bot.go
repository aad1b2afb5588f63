package service

import (
	"errors"
	"math/rand"

	"github.com/playgrid/tictactoe-server/internal/entity"
	"github.com/playgrid/tictactoe-server/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// BotMark is the mark the bot plays in a vs-bot session.
const BotMark = tictactoe.PlayerO

type BotService interface {
	PickCell(game *entity.Game) (int, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// PickCell chooses a random empty cell for the bot's reply.
func (that *botService) PickCell(game *entity.Game) (int, error) {
	availableCells := make([]int, 0, len(game.Board))
	for i, cell := range game.Board {
		if cell == tictactoe.EmptyCell {
			availableCells = append(availableCells, i)
		}
	}

	if len(availableCells) == 0 {
		return 0, ErrNoAvailableMoves
	}

	return availableCells[rand.Intn(len(availableCells))], nil //nolint: gosec // it's ok
}
