package models

import "time"

type MatchStatus string

const (
	MatchCreated   MatchStatus = "created"
	MatchGather    MatchStatus = "gather"
	MatchAssign    MatchStatus = "assign"
	MatchBattle    MatchStatus = "battle"
	MatchComplete  MatchStatus = "complete"
	MatchCancelled MatchStatus = "cancelled"
)

// Scoring sides.
const (
	TeamOne = "team1"
	TeamTwo = "team2"
	TeamTie = "tie"
)

// Voice announcement sides.
const (
	VoiceBlue = "blue"
	VoiceRed  = "red"
)

type Match struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	TitleID          string            `json:"title_id"` // FK to game_titles
	Status           MatchStatus       `json:"status"`
	Maps             []string          `json:"maps"` // ordered map ids, one game per entry
	WinnerTeam       *string           `json:"winner_team,omitempty"`
	Team1Name        string            `json:"team1_name"`
	Team2Name        string            `json:"team2_name"`
	BlueChannel      *string           `json:"blue_channel,omitempty"`
	RedChannel       *string           `json:"red_channel,omitempty"`
	MapCodes         map[string]string `json:"map_codes,omitempty"` // map name -> lobby code
	SupportsMapCodes bool              `json:"supports_map_codes"`
	LastFirstTeam    *string           `json:"last_first_team,omitempty"` // blue|red, voice alternation state
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// HasVoiceChannels reports whether at least one side has a channel assigned.
func (m *Match) HasVoiceChannels() bool {
	return m.BlueChannel != nil || m.RedChannel != nil
}
