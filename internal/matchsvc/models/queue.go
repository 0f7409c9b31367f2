package models

// Queue rows are written once with status pending; an external consumer
// owns every later transition.
const QueuePending = "pending"

// Queue kinds, used as the id prefix of generated entries.
const (
	QueueScore       = "score"
	QueueMatchWinner = "matchwinner"
	QueueVoice       = "voice"
	QueueMapCode     = "mapcode"
	QueueDeletion    = "deletion"
)

// Voice announcement types.
const (
	VoiceNextRound = "nextround"
	VoiceFinish    = "finish"
)

type ScoreNotification struct {
	ID              string   `json:"id"`
	MatchID         string   `json:"match_id"`
	GameID          string   `json:"game_id"`
	MapID           string   `json:"map_id"`
	Round           int      `json:"round"`
	Winner          string   `json:"winner"` // team1|team2 or a participant id
	WinningTeamName string   `json:"winning_team_name"`
	WinningPlayers  []string `json:"winning_players"`
	Status          string   `json:"status"`
}

type MatchWinnerNotification struct {
	ID              string   `json:"id"`
	MatchID         string   `json:"match_id"`
	MatchName       string   `json:"match_name"`
	GameID          string   `json:"game_id"` // last completed game
	Winner          string   `json:"winner"`  // team1|team2|tie
	WinningTeamName string   `json:"winning_team_name"`
	WinningPlayers  []string `json:"winning_players"`
	Team1Score      int      `json:"team1_score"`
	Team2Score      int      `json:"team2_score"`
	TotalGames      int      `json:"total_games"` // team-mode games in the tally
	Status          string   `json:"status"`
}

type VoiceAnnouncement struct {
	ID          string `json:"id"`
	MatchID     string `json:"match_id"`
	Type        string `json:"type"` // nextround|finish
	BlueChannel string `json:"blue_channel,omitempty"`
	RedChannel  string `json:"red_channel,omitempty"`
	FirstTeam   string `json:"first_team"` // blue|red
	Status      string `json:"status"`
}

type MapCodeMessage struct {
	ID      string `json:"id"`
	MatchID string `json:"match_id"`
	MapName string `json:"map_name"`
	MapCode string `json:"map_code"`
	Status  string `json:"status"`
}

type DeletionRequest struct {
	ID      string `json:"id"`
	MatchID string `json:"match_id"`
	Status  string `json:"status"`
}
