package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/playgrid/tictactoe-server/internal/entity"
)

type scoreService interface {
	GetScore(ctx context.Context, gameID string) (entity.Score, error)
}

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	ScoreHandler(w http.ResponseWriter, r *http.Request)
}

type handlers struct {
	scoreService scoreService
}

func NewHandlers(scoreService scoreService) Handlers {
	return &handlers{
		scoreService: scoreService,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// ScoreHandler returns the running score of a match session as JSON.
func (that *handlers) ScoreHandler(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		http.Error(w, "game query parameter is required", http.StatusBadRequest)
		return
	}

	score, err := that.scoreService.GetScore(r.Context(), gameID)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err = json.NewEncoder(w).Encode(score); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
