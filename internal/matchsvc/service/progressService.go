package service

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/nrdev/scrim-services/internal/matchsvc/models"
)

// ProgressService drives a match through its games: it persists a result,
// promotes the next pending game, detects whole-match completion, derives
// the overall winner and fans the side effects out to the queues.
//
// Only the result write itself (and the upsert guarding it) can fail the
// caller. Everything after it degrades to a log line.
type ProgressService struct {
	game         *GameService
	scoring      *ScoringService
	voice        *VoiceService
	outbox       *Outbox
	games        GameRepo
	matches      MatchRepo
	participants ParticipantRepo

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewProgressService(game *GameService, scoring *ScoringService, voice *VoiceService,
	outbox *Outbox, games GameRepo, matches MatchRepo, participants ParticipantRepo) *ProgressService {
	return &ProgressService{
		game:         game,
		scoring:      scoring,
		voice:        voice,
		outbox:       outbox,
		games:        games,
		matches:      matches,
		participants: participants,
		locks:        make(map[string]*sync.Mutex),
	}
}

type SaveOutcome struct {
	GameID     string  `json:"game_id"`
	IsComplete bool    `json:"is_complete"`
	HasNext    bool    `json:"has_next"`
	WinnerTeam *string `json:"winner_team,omitempty"`
}

// matchLock serializes SaveResult per match so two submissions cannot race
// the completion check or both promote the same pending game.
func (s *ProgressService) matchLock(matchID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[matchID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[matchID] = l
	}
	return l
}

// SaveResult records one game's result and advances the match.
func (s *ProgressService) SaveResult(ctx context.Context, gameID string, in *models.MatchResult) (*SaveOutcome, error) {
	mode, err := in.Resolve()
	if err != nil {
		return nil, err
	}

	l := s.matchLock(in.MatchID)
	l.Lock()
	defer l.Unlock()

	if err := s.game.EnsureExists(ctx, gameID, in.MatchID); err != nil {
		return nil, err
	}

	var points map[string]int
	if mode.Kind == models.KindPosition {
		points = s.scoring.ComputePositionPoints(ctx, mode.Positions, gameID)
	}
	if err := s.games.MarkCompleted(ctx, gameID, mode, points, in.CompletedAt); err != nil {
		return nil, err
	}

	// Result is durable from here on; the rest is best effort.
	out := &SaveOutcome{GameID: gameID}

	s.queueScore(ctx, gameID, in.MatchID, mode)

	hasNext, err := s.game.AdvanceNextPending(ctx, in.MatchID)
	if err != nil {
		log.Errorf("Error [ProgressService.AdvanceNextPending] match %s: %s", in.MatchID, err)
	}
	out.HasNext = hasNext

	out.IsComplete, out.WinnerTeam = s.finishIfComplete(ctx, gameID, in.MatchID)

	s.queueVoice(ctx, in.MatchID, out)

	return out, nil
}

// queueScore resolves "who won" by name and appends the score row.
func (s *ProgressService) queueScore(ctx context.Context, gameID, matchID string, mode *models.ResultMode) {
	game, err := s.games.GetByID(ctx, gameID)
	if err != nil || game == nil {
		log.Errorf("Error [ProgressService.queueScore] reload game %s: %v", gameID, err)
		return
	}

	n := models.ScoreNotification{
		MatchID: matchID,
		GameID:  gameID,
		MapID:   game.MapID,
		Round:   game.Round,
	}

	parts, err := s.participants.ListByMatch(ctx, matchID)
	if err != nil {
		log.Warnf("participants unavailable for match %s: %s", matchID, err)
	}

	switch mode.Kind {
	case models.KindTeam:
		n.Winner = mode.Winner
		n.WinningTeamName = s.teamName(ctx, matchID, mode.Winner)
		for _, p := range parts {
			if p.Team == mode.Winner {
				n.WinningPlayers = append(n.WinningPlayers, p.Name)
			}
		}
	case models.KindFFA:
		n.Winner = mode.ParticipantWinnerID
		if p := findParticipant(parts, mode.ParticipantWinnerID); p != nil {
			n.WinningTeamName = p.Name
			if p.Mention != "" {
				n.WinningPlayers = []string{p.Mention}
			} else {
				n.WinningPlayers = []string{p.Name}
			}
		}
	case models.KindPosition:
		// the participant placed first is the announced winner
		first := ""
		best := 0
		for id, pos := range mode.Positions {
			if first == "" || pos < best || (pos == best && id < first) {
				first, best = id, pos
			}
		}
		n.Winner = first
		if p := findParticipant(parts, first); p != nil {
			n.WinningTeamName = p.Name
			n.WinningPlayers = []string{p.Name}
		}
	}

	s.outbox.Score(ctx, n)
}

func findParticipant(parts []*models.Participant, id string) *models.Participant {
	for _, p := range parts {
		if p.ParticipantID == id {
			return p
		}
	}
	return nil
}

func (s *ProgressService) teamName(ctx context.Context, matchID, side string) string {
	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil || match == nil {
		return side
	}
	if side == models.TeamOne {
		return match.Team1Name
	}
	return match.Team2Name
}

// finishIfComplete checks whether every game of the match is completed and,
// if so, persists the match outcome and queues the winner announcement and
// the cleanup request.
func (s *ProgressService) finishIfComplete(ctx context.Context, lastGameID, matchID string) (bool, *string) {
	games, err := s.games.ListByMatch(ctx, matchID)
	if err != nil {
		log.Errorf("Error [ProgressService.finishIfComplete] list games for %s: %s", matchID, err)
		return false, nil
	}

	total, completed := 0, 0
	for _, g := range games {
		if g.Round == models.PlaceholderRound {
			continue
		}
		total++
		if g.Status == models.GameCompleted {
			completed++
		}
	}
	if total == 0 || completed < total {
		return false, nil
	}

	team1, team2 := tallyTeamWins(games)
	var winner *string
	verdict := models.TeamTie
	switch {
	case team1 > team2:
		w := models.TeamOne
		winner, verdict = &w, w
	case team2 > team1:
		w := models.TeamTwo
		winner, verdict = &w, w
	}

	if err := s.matches.SetComplete(ctx, matchID, winner); err != nil {
		log.Errorf("Error [ProgressService.finishIfComplete] complete match %s: %s", matchID, err)
		return false, nil
	}

	n := models.MatchWinnerNotification{
		MatchID:    matchID,
		GameID:     lastGameID,
		Winner:     verdict,
		Team1Score: team1,
		Team2Score: team2,
		TotalGames: team1 + team2,
	}
	match, err := s.matches.GetByID(ctx, matchID)
	if err == nil && match != nil {
		n.MatchName = match.Name
	}
	if winner != nil {
		n.WinningTeamName = s.teamName(ctx, matchID, *winner)
		if parts, err := s.participants.ListByMatch(ctx, matchID); err == nil {
			for _, p := range parts {
				if p.Team == *winner {
					n.WinningPlayers = append(n.WinningPlayers, p.Name)
				}
			}
		}
	}
	s.outbox.MatchWinner(ctx, n)
	s.outbox.Deletion(ctx, models.DeletionRequest{MatchID: matchID})

	return true, winner
}

// tallyTeamWins counts per-side wins over completed team-mode games. FFA
// and position games never enter the team tally.
func tallyTeamWins(games []*models.Game) (team1, team2 int) {
	for _, g := range games {
		if g.Status != models.GameCompleted || g.IsFfaMode || g.WinnerID == nil {
			continue
		}
		switch *g.WinnerID {
		case models.TeamOne:
			team1++
		case models.TeamTwo:
			team2++
		}
	}
	return team1, team2
}

// queueVoice announces the next round, or the finish, alternating which
// side is named first. Matches without any voice channel stay silent.
func (s *ProgressService) queueVoice(ctx context.Context, matchID string, out *SaveOutcome) {
	var kind string
	switch {
	case out.IsComplete:
		kind = models.VoiceFinish
	case out.HasNext:
		kind = models.VoiceNextRound
	default:
		return
	}

	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil || match == nil {
		log.Errorf("Error [ProgressService.queueVoice] load match %s: %v", matchID, err)
		return
	}
	if !match.HasVoiceChannels() {
		return
	}

	first, err := s.voice.DecideFirstTeam(ctx, matchID)
	if err != nil {
		log.Errorf("Error [ProgressService.queueVoice] alternation for %s: %s", matchID, err)
		return
	}

	n := models.VoiceAnnouncement{
		MatchID:   matchID,
		Type:      kind,
		FirstTeam: first,
	}
	if match.BlueChannel != nil {
		n.BlueChannel = *match.BlueChannel
	}
	if match.RedChannel != nil {
		n.RedChannel = *match.RedChannel
	}
	s.outbox.Voice(ctx, n)

	if err := s.matches.SetLastFirstTeam(ctx, matchID, first); err != nil {
		log.Warnf("could not persist first team for match %s: %s", matchID, err)
	}
}
