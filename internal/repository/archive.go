package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/playgrid/tictactoe-server/internal/tictactoe"
)

// FinishedGame is one archived game of a match.
type FinishedGame struct {
	GameID     string
	Board      tictactoe.Board
	Outcome    tictactoe.Outcome
	FinishedAt time.Time
}

type ArchiveRepository interface {
	Save(ctx context.Context, record *FinishedGame) error
	ListByGameID(ctx context.Context, gameID string, limit int) ([]FinishedGame, error)
}

type archiveRepository struct {
	conn *sql.DB
}

func NewArchiveRepository(conn *sql.DB) ArchiveRepository {
	return &archiveRepository{
		conn: conn,
	}
}

func (that *archiveRepository) Save(ctx context.Context, record *FinishedGame) error {
	query := `INSERT INTO finished_games (game_id, board, outcome, finished_at) VALUES (?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, record.GameID, flattenBoard(record.Board), string(record.Outcome), record.FinishedAt)
	if err != nil {
		return fmt.Errorf("can't save finished game: %w", err)
	}

	return nil
}

func (that *archiveRepository) ListByGameID(ctx context.Context, gameID string, limit int) ([]FinishedGame, error) {
	query := `SELECT game_id, board, outcome, finished_at FROM finished_games WHERE game_id = ? ORDER BY id DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list finished games: %w", err)
	}
	defer rows.Close()

	var records []FinishedGame

	for rows.Next() {
		var record FinishedGame
		var board string

		if err = rows.Scan(&record.GameID, &board, &record.Outcome, &record.FinishedAt); err != nil {
			return nil, fmt.Errorf("can't scan finished game: %w", err)
		}

		record.Board = unflattenBoard(board)
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read finished games: %w", err)
	}

	return records, nil
}

// flattenBoard packs a board into a 9-rune string, "." marking empty cells.
func flattenBoard(board tictactoe.Board) string {
	var sb strings.Builder
	for _, cell := range board {
		if cell == tictactoe.EmptyCell {
			sb.WriteByte('.')
			continue
		}
		sb.WriteString(cell)
	}
	return sb.String()
}

func unflattenBoard(flat string) tictactoe.Board {
	board := tictactoe.EmptyBoard()
	for i, r := range flat {
		if i >= len(board) {
			break
		}
		if r != '.' {
			board[i] = string(r)
		}
	}
	return board
}
