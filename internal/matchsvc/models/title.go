package models

// GameTitle carries the per-title scoring configuration. PointsPerPosition
// maps a finishing position to the points it awards; positions outside the
// table score zero.
type GameTitle struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	PointsPerPosition map[int]int `json:"points_per_position"`
}

type Participant struct {
	MatchID       string `json:"match_id"`
	ParticipantID string `json:"participant_id"`
	Name          string `json:"name"`
	Mention       string `json:"mention,omitempty"` // chat handle, may be empty
	Team          string `json:"team"`              // team1|team2, empty for unassigned
}
