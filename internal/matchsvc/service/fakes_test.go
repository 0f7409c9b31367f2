package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/nrdev/scrim-services/internal/matchsvc/models"
)

// In-memory repo implementations so the engine tests run without Postgres.

var errForced = errors.New("forced failure")

type memGameRepo struct {
	games map[string]*models.Game
}

func newMemGameRepo() *memGameRepo {
	return &memGameRepo{games: make(map[string]*models.Game)}
}

func (r *memGameRepo) GetByID(_ context.Context, id string) (*models.Game, error) {
	g, ok := r.games[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r *memGameRepo) Insert(_ context.Context, g *models.Game) error {
	if _, ok := r.games[g.ID]; ok {
		return errors.New("duplicate game id " + g.ID)
	}
	cp := *g
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.games[g.ID] = &cp
	return nil
}

func (r *memGameRepo) ListByMatch(_ context.Context, matchID string) ([]*models.Game, error) {
	var out []*models.Game
	for _, g := range r.games {
		if g.MatchID == matchID {
			cp := *g
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Round < out[j].Round })
	return out, nil
}

func (r *memGameRepo) FindPlaceholder(_ context.Context, matchID, mapID string) (*models.Game, error) {
	for _, g := range r.games {
		if g.MatchID == matchID && g.Round == models.PlaceholderRound && g.MapID == mapID {
			cp := *g
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memGameRepo) Delete(_ context.Context, id string) error {
	delete(r.games, id)
	return nil
}

func (r *memGameRepo) FirstPending(_ context.Context, matchID string) (*models.Game, error) {
	var found *models.Game
	for _, g := range r.games {
		if g.MatchID != matchID || g.Status != models.GamePending || g.Round == models.PlaceholderRound {
			continue
		}
		if found == nil || g.Round < found.Round {
			found = g
		}
	}
	if found == nil {
		return nil, nil
	}
	cp := *found
	return &cp, nil
}

func (r *memGameRepo) SetOngoing(_ context.Context, id string) error {
	g, ok := r.games[id]
	if !ok {
		return errors.New("no such game " + id)
	}
	g.Status = models.GameOngoing
	return nil
}

func (r *memGameRepo) MarkCompleted(_ context.Context, id string, res *models.ResultMode, points map[string]int, completedAt time.Time) error {
	g, ok := r.games[id]
	if !ok {
		return errors.New("no such game " + id)
	}
	g.Status = models.GameCompleted
	g.WinnerID = nil
	g.ParticipantWinnerID = nil
	g.IsFfaMode = false
	g.PositionResults = nil
	g.PointsAwarded = nil
	switch res.Kind {
	case models.KindTeam:
		w := res.Winner
		g.WinnerID = &w
	case models.KindFFA:
		p := res.ParticipantWinnerID
		g.ParticipantWinnerID = &p
		g.IsFfaMode = true
	case models.KindPosition:
		g.PositionResults = res.Positions
		g.PointsAwarded = points
	}
	g.CompletedAt = &completedAt
	return nil
}

type memMatchRepo struct {
	matches map[string]*models.Match
}

func newMemMatchRepo(ms ...*models.Match) *memMatchRepo {
	r := &memMatchRepo{matches: make(map[string]*models.Match)}
	for _, m := range ms {
		r.matches[m.ID] = m
	}
	return r
}

func (r *memMatchRepo) GetByID(_ context.Context, id string) (*models.Match, error) {
	m, ok := r.matches[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memMatchRepo) SetComplete(_ context.Context, id string, winner *string) error {
	m, ok := r.matches[id]
	if !ok {
		return errors.New("no such match " + id)
	}
	m.Status = models.MatchComplete
	m.WinnerTeam = winner
	return nil
}

func (r *memMatchRepo) SetLastFirstTeam(_ context.Context, id, team string) error {
	m, ok := r.matches[id]
	if !ok {
		return errors.New("no such match " + id)
	}
	t := team
	m.LastFirstTeam = &t
	return nil
}

type memOutboxRepo struct {
	scores       []models.ScoreNotification
	matchWinners []models.MatchWinnerNotification
	voices       []models.VoiceAnnouncement
	mapCodes     []models.MapCodeMessage
	deletions    []models.DeletionRequest

	failAll bool
}

func (r *memOutboxRepo) EnqueueScore(_ context.Context, n models.ScoreNotification) error {
	if r.failAll {
		return errForced
	}
	r.scores = append(r.scores, n)
	return nil
}

func (r *memOutboxRepo) EnqueueMatchWinner(_ context.Context, n models.MatchWinnerNotification) error {
	if r.failAll {
		return errForced
	}
	r.matchWinners = append(r.matchWinners, n)
	return nil
}

func (r *memOutboxRepo) EnqueueVoice(_ context.Context, n models.VoiceAnnouncement) error {
	if r.failAll {
		return errForced
	}
	r.voices = append(r.voices, n)
	return nil
}

func (r *memOutboxRepo) EnqueueMapCode(_ context.Context, n models.MapCodeMessage) error {
	if r.failAll {
		return errForced
	}
	r.mapCodes = append(r.mapCodes, n)
	return nil
}

func (r *memOutboxRepo) EnqueueDeletion(_ context.Context, n models.DeletionRequest) error {
	if r.failAll {
		return errForced
	}
	r.deletions = append(r.deletions, n)
	return nil
}

type memParticipantRepo struct {
	parts []*models.Participant
}

func (r *memParticipantRepo) ListByMatch(_ context.Context, matchID string) ([]*models.Participant, error) {
	var out []*models.Participant
	for _, p := range r.parts {
		if p.MatchID == matchID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type memTitleRepo struct {
	titles map[string]*models.GameTitle
}

func (r *memTitleRepo) GetByID(_ context.Context, id string) (*models.GameTitle, error) {
	if r == nil || r.titles == nil {
		return nil, nil
	}
	return r.titles[id], nil
}

type memMapRepo struct {
	maps map[string]*models.MapInfo
}

func (r *memMapRepo) GetByID(_ context.Context, mapID string) (*models.MapInfo, error) {
	if r == nil || r.maps == nil {
		return nil, nil
	}
	return r.maps[mapID], nil
}

// engine bundles a fully wired service graph over the fakes.
type engine struct {
	games    *memGameRepo
	matches  *memMatchRepo
	outbox   *memOutboxRepo
	parts    *memParticipantRepo
	titles   *memTitleRepo
	maps     *memMapRepo
	game     *GameService
	scoring  *ScoringService
	voice    *VoiceService
	progress *ProgressService
}

func newEngine(matches ...*models.Match) *engine {
	e := &engine{
		games:   newMemGameRepo(),
		matches: newMemMatchRepo(matches...),
		outbox:  &memOutboxRepo{},
		parts:   &memParticipantRepo{},
		titles:  &memTitleRepo{titles: make(map[string]*models.GameTitle)},
		maps:    &memMapRepo{maps: make(map[string]*models.MapInfo)},
	}
	ob := NewOutbox(e.outbox)
	e.game = NewGameService(e.games, e.matches, e.maps, ob)
	e.scoring = NewScoringService(e.games, e.matches, e.titles)
	e.voice = NewVoiceService(e.matches)
	e.progress = NewProgressService(e.game, e.scoring, e.voice, ob, e.games, e.matches, e.parts)
	return e
}
