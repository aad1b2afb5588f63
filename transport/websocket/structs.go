package websocket

import (
	"encoding/json"

	"github.com/playgrid/tictactoe-server/internal/entity"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Game    *entity.Game  `json:"game,omitempty"`
	Score   *entity.Score `json:"score,omitempty"`
	Cell    *int          `json:"cell,omitempty"`
	WithBot bool          `json:"with_bot,omitempty"`
	Error   string        `json:"error,omitempty"`
}
