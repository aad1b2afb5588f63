package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/playgrid/tictactoe-server/internal/entity"
)

// scoreKeyPrefix is the stored-score entry name; one entry per match session.
const scoreKeyPrefix = "ttt_score"

type ScoreRepository interface {
	Load(ctx context.Context, sessionID string) (entity.Score, error)
	Save(ctx context.Context, sessionID string, score entity.Score) error
	Delete(ctx context.Context, sessionID string) error
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

// Load reads the persisted score for a session. A missing entry, a value
// that does not parse, or any negative or non-finite counter all yield the
// zero score without an error; only a storage failure is reported.
func (that *dbScore) Load(ctx context.Context, sessionID string) (entity.Score, error) {
	response, err := that.client.Get(ctx, scoreKey(sessionID)).Result()

	if errors.Is(err, redis.Nil) {
		return entity.Score{}, nil
	}

	if err != nil {
		return entity.Score{}, fmt.Errorf("failed to get score: %w", err)
	}

	return parseScore([]byte(response)), nil
}

func (that *dbScore) Save(ctx context.Context, sessionID string, score entity.Score) error {
	scoreJSON, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("could not marshal score: %w", err)
	}

	if err = that.client.Set(ctx, scoreKey(sessionID), scoreJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set score: %w", err)
	}

	return nil
}

func (that *dbScore) Delete(ctx context.Context, sessionID string) error {
	if err := that.client.Del(ctx, scoreKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete score: %w", err)
	}

	return nil
}

func scoreKey(sessionID string) string {
	if sessionID == "" {
		return scoreKeyPrefix
	}
	return scoreKeyPrefix + ":" + sessionID
}

// parseScore turns a stored value into a usable score, falling back to zero
// counters whenever the value cannot be trusted.
func parseScore(raw []byte) entity.Score {
	var stored struct {
		X     float64 `json:"X"`
		O     float64 `json:"O"`
		Draws float64 `json:"draws"`
	}

	if err := json.Unmarshal(raw, &stored); err != nil {
		return entity.Score{}
	}

	if !entity.ValidScoreField(stored.X) || !entity.ValidScoreField(stored.O) || !entity.ValidScoreField(stored.Draws) {
		return entity.Score{}
	}

	return entity.Score{
		X:     int(stored.X),
		O:     int(stored.O),
		Draws: int(stored.Draws),
	}
}
