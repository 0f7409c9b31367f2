package models

import (
	"fmt"
	"time"
)

// MatchResult is the wire shape of a result submission. Which optional
// fields are set decides the scoring mode, see Resolve.
type MatchResult struct {
	MatchID             string         `json:"match_id"`
	GameID              string         `json:"game_id"`
	Winner              string         `json:"winner,omitempty"` // team1|team2
	ParticipantWinnerID string         `json:"participant_winner_id,omitempty"`
	IsFfaMode           bool           `json:"is_ffa_mode,omitempty"`
	PositionResults     map[string]int `json:"position_results,omitempty"`
	IsPositionMode      bool           `json:"is_position_mode,omitempty"`
	CompletedAt         time.Time      `json:"completed_at"`
}

type ResultKind string

const (
	KindTeam     ResultKind = "team"
	KindFFA      ResultKind = "ffa"
	KindPosition ResultKind = "position"
)

// ResultMode is the resolved form of a MatchResult: exactly one mode,
// carrying only that mode's payload.
type ResultMode struct {
	Kind                ResultKind
	Winner              string         // team mode
	ParticipantWinnerID string         // ffa mode
	Positions           map[string]int // position mode
}

// Resolve picks the scoring mode once, at the boundary. A payload that
// carries several indicators resolves position > ffa > team.
func (r *MatchResult) Resolve() (*ResultMode, error) {
	if r.MatchID == "" {
		return nil, fmt.Errorf("result is missing match_id")
	}
	switch {
	case r.IsPositionMode && len(r.PositionResults) > 0:
		return &ResultMode{Kind: KindPosition, Positions: r.PositionResults}, nil
	case r.IsFfaMode && r.ParticipantWinnerID != "":
		return &ResultMode{Kind: KindFFA, ParticipantWinnerID: r.ParticipantWinnerID}, nil
	case r.Winner == TeamOne || r.Winner == TeamTwo:
		return &ResultMode{Kind: KindTeam, Winner: r.Winner}, nil
	default:
		return nil, fmt.Errorf("result for game %s carries no usable mode", r.GameID)
	}
}
