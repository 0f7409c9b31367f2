package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nrdev/scrim-services/internal/matchsvc/models"
)

type GameStore struct {
	db *pgxpool.Pool
}

func NewGameStore(db *pgxpool.Pool) *GameStore {
	return &GameStore{db: db}
}

const gameColumns = `id, match_id, round, map_id, status, winner_id, participant_winner_id,
	       is_ffa_mode, position_results, points_awarded, notes, completed_at, created_at, updated_at`

func scanGame(row pgx.Row) (*models.Game, error) {
	g := &models.Game{}
	err := row.Scan(
		&g.ID,
		&g.MatchID,
		&g.Round,
		&g.MapID,
		&g.Status,
		&g.WinnerID,
		&g.ParticipantWinnerID,
		&g.IsFfaMode,
		&g.PositionResults,
		&g.PointsAwarded,
		&g.Notes,
		&g.CompletedAt,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return g, nil
}

func (s *GameStore) GetByID(ctx context.Context, id string) (*models.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games
		WHERE id = $1
	`
	g, err := scanGame(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get game %s: %w", id, err)
	}
	return g, nil
}

func (s *GameStore) Insert(ctx context.Context, g *models.Game) error {
	query := `
		INSERT INTO games (id, match_id, round, map_id, status, is_ffa_mode, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, false, $6, now(), now())
	`
	_, err := s.db.Exec(ctx, query, g.ID, g.MatchID, g.Round, g.MapID, g.Status, g.Notes)
	if err != nil {
		return fmt.Errorf("failed to insert game %s: %w", g.ID, err)
	}
	return nil
}

// ListByMatch returns the match's games ordered by round, placeholders first.
func (s *GameStore) ListByMatch(ctx context.Context, matchID string) ([]*models.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games
		WHERE match_id = $1
		ORDER BY round
	`
	rows, err := s.db.Query(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games for match %s: %w", matchID, err)
	}
	defer rows.Close()

	var games []*models.Game
	for rows.Next() {
		g := &models.Game{}
		err := rows.Scan(
			&g.ID,
			&g.MatchID,
			&g.Round,
			&g.MapID,
			&g.Status,
			&g.WinnerID,
			&g.ParticipantWinnerID,
			&g.IsFfaMode,
			&g.PositionResults,
			&g.PointsAwarded,
			&g.Notes,
			&g.CompletedAt,
			&g.CreatedAt,
			&g.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// FindPlaceholder returns the round-0 note row stashed for a map, if any.
func (s *GameStore) FindPlaceholder(ctx context.Context, matchID, mapID string) (*models.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games
		WHERE match_id = $1 AND round = 0 AND map_id = $2
		LIMIT 1
	`
	g, err := scanGame(s.db.QueryRow(ctx, query, matchID, mapID))
	if err != nil {
		return nil, fmt.Errorf("failed to find placeholder for match %s map %s: %w", matchID, mapID, err)
	}
	return g, nil
}

func (s *GameStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete game %s: %w", id, err)
	}
	return nil
}

// FirstPending returns the lowest-round game still pending, or nil.
func (s *GameStore) FirstPending(ctx context.Context, matchID string) (*models.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games
		WHERE match_id = $1 AND status = $2 AND round > 0
		ORDER BY round
		LIMIT 1
	`
	g, err := scanGame(s.db.QueryRow(ctx, query, matchID, models.GamePending))
	if err != nil {
		return nil, fmt.Errorf("failed to find pending game for match %s: %w", matchID, err)
	}
	return g, nil
}

func (s *GameStore) SetOngoing(ctx context.Context, id string) error {
	query := `
		UPDATE games
		SET status = $2, updated_at = now()
		WHERE id = $1
	`
	_, err := s.db.Exec(ctx, query, id, models.GameOngoing)
	if err != nil {
		return fmt.Errorf("failed to set game %s ongoing: %w", id, err)
	}
	return nil
}

// MarkCompleted persists exactly one result shape and flips the game to
// completed. The columns of the two unused shapes are cleared.
func (s *GameStore) MarkCompleted(ctx context.Context, id string, res *models.ResultMode, points map[string]int, completedAt time.Time) error {
	query := `
		UPDATE games
		SET status = $2,
		    winner_id = $3,
		    participant_winner_id = $4,
		    is_ffa_mode = $5,
		    position_results = $6,
		    points_awarded = $7,
		    completed_at = $8,
		    updated_at = now()
		WHERE id = $1
	`
	var (
		winnerID      *string
		participantID *string
		positions     map[string]int
	)
	switch res.Kind {
	case models.KindTeam:
		winnerID = &res.Winner
	case models.KindFFA:
		participantID = &res.ParticipantWinnerID
	case models.KindPosition:
		positions = res.Positions
	}
	_, err := s.db.Exec(ctx, query, id,
		models.GameCompleted,
		winnerID,
		participantID,
		res.Kind == models.KindFFA,
		positions,
		points,
		completedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to complete game %s: %w", id, err)
	}
	return nil
}
