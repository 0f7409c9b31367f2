package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/nrdev/scrim-services/internal/matchsvc/mapname"
	"github.com/nrdev/scrim-services/internal/matchsvc/models"
)

type GameService struct {
	games   GameRepo
	matches MatchRepo
	maps    MapRepo
	outbox  *Outbox
}

func NewGameService(games GameRepo, matches MatchRepo, maps MapRepo, outbox *Outbox) *GameService {
	return &GameService{games: games, matches: matches, maps: maps, outbox: outbox}
}

// InitializeGames creates one game row per entry of the match's map list.
// Idempotent: rows that already exist are skipped, so re-running after a
// partial failure only fills the gaps. The first map starts ongoing, the
// rest pending. A note stashed in a round-0 placeholder for a map is
// carried into the real row and the placeholder deleted.
func (s *GameService) InitializeGames(ctx context.Context, matchID string) error {
	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return err
	}
	if match == nil {
		return fmt.Errorf("match %s not found", matchID)
	}
	if len(match.Maps) == 0 {
		return nil
	}

	for i, mapID := range match.Maps {
		round := i + 1
		id := models.GameID(matchID, round)

		existing, err := s.games.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		var notes *string
		placeholder, err := s.games.FindPlaceholder(ctx, matchID, mapID)
		if err != nil {
			return err
		}
		if placeholder != nil {
			notes = placeholder.Notes
		}

		status := models.GamePending
		if i == 0 {
			status = models.GameOngoing
		}
		game := &models.Game{
			ID:      id,
			MatchID: matchID,
			Round:   round,
			MapID:   mapID,
			Status:  status,
			Notes:   notes,
		}
		if err := s.games.Insert(ctx, game); err != nil {
			return err
		}
		if placeholder != nil {
			if err := s.games.Delete(ctx, placeholder.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// ListGames returns the match's games in round order, enriched with map
// display metadata. A failed metadata lookup leaves that game's metadata
// empty instead of failing the listing.
func (s *GameService) ListGames(ctx context.Context, matchID string) ([]*models.GameView, error) {
	games, err := s.games.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	views := make([]*models.GameView, 0, len(games))
	for _, g := range games {
		v := &models.GameView{Game: *g}
		info, err := s.maps.GetByID(ctx, mapname.Canonical(g.MapID))
		if err != nil {
			log.Warnf("map lookup failed for game %s (%s): %s", g.ID, g.MapID, err)
		} else if info != nil {
			v.MapName = info.Name
			v.MapImage = info.Image
			v.MapMode = info.Mode
			v.Title = info.Title
		}
		views = append(views, v)
	}
	return views, nil
}

// EnsureExists creates a minimal ongoing round-1 row when a result arrives
// for a game id that was never initialized.
func (s *GameService) EnsureExists(ctx context.Context, gameID, matchID string) error {
	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return err
	}
	if game != nil {
		return nil
	}
	return s.games.Insert(ctx, &models.Game{
		ID:      gameID,
		MatchID: matchID,
		Round:   1,
		Status:  models.GameOngoing,
	})
}

// AdvanceNextPending promotes the lowest-round pending game to ongoing and
// reports whether one was found. When the match delivers lobby codes, a
// MapCodeMessage for the promoted map is queued as a side effect; that step
// never blocks advancement.
func (s *GameService) AdvanceNextPending(ctx context.Context, matchID string) (bool, error) {
	next, err := s.games.FirstPending(ctx, matchID)
	if err != nil {
		return false, err
	}
	if next == nil {
		return false, nil
	}
	if err := s.games.SetOngoing(ctx, next.ID); err != nil {
		return false, err
	}

	s.queueMapCode(ctx, matchID, next)
	return true, nil
}

func (s *GameService) queueMapCode(ctx context.Context, matchID string, game *models.Game) {
	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil || match == nil {
		log.Warnf("map code skipped, match %s not loadable: %v", matchID, err)
		return
	}
	if !match.SupportsMapCodes || len(match.MapCodes) == 0 {
		return
	}

	name := mapname.Canonical(game.MapID)
	if info, err := s.maps.GetByID(ctx, name); err == nil && info != nil {
		name = info.Name
	}

	code, ok := mapname.FindCode(match.MapCodes, name)
	if !ok {
		log.Warnf("no lobby code matches map %q for match %s", name, matchID)
		return
	}
	s.outbox.MapCode(ctx, models.MapCodeMessage{
		MatchID: matchID,
		MapName: name,
		MapCode: code,
	})
}
