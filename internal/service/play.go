package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/playgrid/tictactoe-server/internal/entity"
	"github.com/playgrid/tictactoe-server/internal/repository"
	"github.com/playgrid/tictactoe-server/internal/tictactoe"
)

type PlayService interface {
	GetOrCreateGame(ctx context.Context, id string, withBot bool) (*entity.Game, error)

	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, entity.Score, error)
	StartNextGame(ctx context.Context, gameID string) (*entity.Game, entity.Score, error)
	ResetMatch(ctx context.Context, gameID string) (*entity.Game, entity.Score, error)
	GetScore(ctx context.Context, gameID string) (entity.Score, error)
}

type scoreRepo interface {
	Load(ctx context.Context, sessionID string) (entity.Score, error)
	Save(ctx context.Context, sessionID string, score entity.Score) error
	Delete(ctx context.Context, sessionID string) error
}

type archiveRepo interface {
	Save(ctx context.Context, record *repository.FinishedGame) error
}

type playService struct {
	logger *slog.Logger

	gameService GameService
	botService  BotService
	scoreRepo   scoreRepo
	archiveRepo archiveRepo
}

func NewPlayService(logger *slog.Logger, gameService GameService, botService BotService, scoreRepo scoreRepo, archiveRepo archiveRepo) PlayService {
	return &playService{
		logger:      logger,
		gameService: gameService,
		botService:  botService,
		scoreRepo:   scoreRepo,
		archiveRepo: archiveRepo,
	}
}

// GetOrCreateGame resumes or opens the session this connection plays in.
func (that *playService) GetOrCreateGame(ctx context.Context, id string, withBot bool) (*entity.Game, error) {
	game, err := that.gameService.GetOrCreateGame(ctx, id, withBot)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create game: %w", err)
	}

	return game, nil
}

// MakeTurn applies one move to the session's board. A rejected move leaves
// the session untouched and is reported back with a sentinel error; the
// score is bumped exactly once, at the transition into a terminal outcome.
func (that *playService) MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, entity.Score, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, entity.Score{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	board, outcome, err := tictactoe.ApplyMove(game.Board, game.Turn, cell)
	if err != nil {
		return game, that.loadScore(ctx, gameID), err
	}

	game.Board = board
	game.ApplyOutcome(outcome)

	var score entity.Score
	if outcome.IsTerminal() {
		score = that.concludeGame(ctx, game, outcome)
	} else {
		game.Turn = tictactoe.ToggleMark(game.Turn)
		score = that.makeBotTurn(ctx, game)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, entity.Score{}, fmt.Errorf("failed to update game: %w", err)
	}

	return game, score, nil
}

// makeBotTurn lets the bot answer when the session plays against one and it
// is the bot's move. It returns the score so a bot win is counted here too.
func (that *playService) makeBotTurn(ctx context.Context, game *entity.Game) entity.Score {
	log := that.logger.With("method", "makeBotTurn")

	if !game.WithBot || !game.IsOngoing() || game.Turn != BotMark {
		return that.loadScore(ctx, game.ID)
	}

	cell, err := that.botService.PickCell(game)
	if err != nil {
		log.Error("bot has no move on an ongoing board", "gameID", game.ID, "error", err)
		return that.loadScore(ctx, game.ID)
	}

	board, outcome, err := tictactoe.ApplyMove(game.Board, game.Turn, cell)
	if err != nil {
		log.Error("bot failed to make turn", "gameID", game.ID, "error", err)
		return that.loadScore(ctx, game.ID)
	}

	game.Board = board
	game.ApplyOutcome(outcome)

	if outcome.IsTerminal() {
		return that.concludeGame(ctx, game, outcome)
	}

	game.Turn = tictactoe.ToggleMark(game.Turn)

	return that.loadScore(ctx, game.ID)
}

// StartNextGame replaces the board wholesale and alternates the opening
// mark. The running score carries over.
func (that *playService) StartNextGame(ctx context.Context, gameID string) (*entity.Game, entity.Score, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, entity.Score{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	game.StartNextGame()

	score := that.makeBotTurn(ctx, game)

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, entity.Score{}, fmt.Errorf("failed to update game: %w", err)
	}

	return game, score, nil
}

// ResetMatch clears board, turn and score unconditionally.
func (that *playService) ResetMatch(ctx context.Context, gameID string) (*entity.Game, entity.Score, error) {
	log := that.logger.With("method", "ResetMatch")

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, entity.Score{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	game.ResetMatch()

	if err = that.scoreRepo.Delete(ctx, gameID); err != nil {
		log.Error("failed to delete score", "gameID", gameID, "error", err)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, entity.Score{}, fmt.Errorf("failed to update game: %w", err)
	}

	return game, entity.Score{}, nil
}

func (that *playService) GetScore(ctx context.Context, gameID string) (entity.Score, error) {
	score, err := that.scoreRepo.Load(ctx, gameID)
	if err != nil {
		return entity.Score{}, fmt.Errorf("failed to load score: %w", err)
	}

	return score, nil
}

// concludeGame bumps the score for a terminal outcome and archives the
// finished board. Both writes are best-effort: a storage failure is logged
// and the in-memory result stands.
func (that *playService) concludeGame(ctx context.Context, game *entity.Game, outcome tictactoe.Outcome) entity.Score {
	log := that.logger.With("method", "concludeGame", "gameID", game.ID)

	score := that.loadScore(ctx, game.ID)
	score = score.Apply(outcome)

	if err := that.scoreRepo.Save(ctx, game.ID, score); err != nil {
		log.Error("failed to save score", "error", err)
	}

	record := &repository.FinishedGame{
		GameID:     game.ID,
		Board:      game.Board,
		Outcome:    outcome,
		FinishedAt: time.Now().UTC(),
	}

	if err := that.archiveRepo.Save(ctx, record); err != nil {
		log.Error("failed to archive finished game", "error", err)
	}

	return score
}

// loadScore never fails the caller: a broken score store reads as zeros.
func (that *playService) loadScore(ctx context.Context, gameID string) entity.Score {
	score, err := that.scoreRepo.Load(ctx, gameID)
	if err != nil {
		that.logger.Error("failed to load score", "gameID", gameID, "error", err)
		return entity.Score{}
	}

	return score
}
