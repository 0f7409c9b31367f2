package models

import (
	"fmt"
	"time"
)

type GameStatus string

const (
	GamePending   GameStatus = "pending"
	GameOngoing   GameStatus = "ongoing"
	GameCompleted GameStatus = "completed"
)

// PlaceholderRound marks a pre-game note row that only exists to stash an
// operator note before the real game row for that map is created.
const PlaceholderRound = 0

type Game struct {
	ID                  string         `json:"id"`
	MatchID             string         `json:"match_id"`
	Round               int            `json:"round"` // 1-based; 0 reserved for note placeholders
	MapID               string         `json:"map_id"`
	Status              GameStatus     `json:"status"`
	WinnerID            *string        `json:"winner_id,omitempty"`             // team mode
	ParticipantWinnerID *string        `json:"participant_winner_id,omitempty"` // ffa mode
	IsFfaMode           bool           `json:"is_ffa_mode"`
	PositionResults     map[string]int `json:"position_results,omitempty"` // participant -> finishing position
	PointsAwarded       map[string]int `json:"points_awarded,omitempty"`   // participant -> points
	Notes               *string        `json:"notes,omitempty"`
	CompletedAt         *time.Time     `json:"completed_at,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// GameID derives the deterministic id of the round-th game of a match.
func GameID(matchID string, round int) string {
	return fmt.Sprintf("%s_game_%d", matchID, round)
}

// GameView is a game enriched with map display metadata for listings.
// Metadata fields stay empty when the map lookup fails.
type GameView struct {
	Game
	MapName  string `json:"map_name,omitempty"`
	MapImage string `json:"map_image,omitempty"`
	MapMode  string `json:"map_mode,omitempty"`
	Title    string `json:"title,omitempty"`
}

// MapInfo is display metadata for a map, keyed by its canonical id.
type MapInfo struct {
	MapID   string `json:"map_id"`
	Name    string `json:"name"`
	Image   string `json:"image"`
	Mode    string `json:"mode"`
	TitleID string `json:"title_id"`
	Title   string `json:"title"`
}
