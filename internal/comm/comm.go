package comm

import (
	"encoding/json"
)

// SvcMessage is the envelope services exchange over NATS.
type SvcMessage struct {
	Type   string          `json:"type"` // e.g. "save-result", "init-games"
	Data   json.RawMessage `json:"data"`
	Origin string          `json:"origin,omitempty"` // publishing service instance
}

type ResultAck struct {
	GameID     string `json:"game_id,omitempty"`
	IsComplete bool   `json:"is_complete"`
	HasNext    bool   `json:"has_next"`
	Error      string `json:"error,omitempty"`
}

type InitGamesRequest struct {
	MatchID string `json:"match_id"`
}
