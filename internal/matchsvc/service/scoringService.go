package service

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/nrdev/scrim-services/internal/matchsvc/models"
)

type ScoringService struct {
	games   GameRepo
	matches MatchRepo
	titles  TitleRepo
}

func NewScoringService(games GameRepo, matches MatchRepo, titles TitleRepo) *ScoringService {
	return &ScoringService{games: games, matches: matches, titles: titles}
}

// PointsForPosition reads the title's points table. Positions outside the
// table score zero, not an error.
func (s *ScoringService) PointsForPosition(position int, title *models.GameTitle) int {
	if title == nil {
		return 0
	}
	return title.PointsPerPosition[position]
}

// ComputePositionPoints maps every participant's finishing position through
// the scoring config of the title owning the game's match. A missing config
// anywhere along the game -> match -> title chain awards zero points to
// every participant and only logs a warning.
func (s *ScoringService) ComputePositionPoints(ctx context.Context, positions map[string]int, gameID string) map[string]int {
	title := s.resolveTitle(ctx, gameID)
	if title == nil || len(title.PointsPerPosition) == 0 {
		log.Warnf("no scoring config for game %s, awarding zero points", gameID)
	}

	points := make(map[string]int, len(positions))
	for participant, position := range positions {
		points[participant] = s.PointsForPosition(position, title)
	}
	return points
}

func (s *ScoringService) resolveTitle(ctx context.Context, gameID string) *models.GameTitle {
	game, err := s.games.GetByID(ctx, gameID)
	if err != nil || game == nil {
		return nil
	}
	match, err := s.matches.GetByID(ctx, game.MatchID)
	if err != nil || match == nil || match.TitleID == "" {
		return nil
	}
	title, err := s.titles.GetByID(ctx, match.TitleID)
	if err != nil {
		return nil
	}
	return title
}
