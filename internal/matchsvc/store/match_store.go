package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nrdev/scrim-services/internal/matchsvc/models"
)

type MatchStore struct {
	db *pgxpool.Pool
}

func NewMatchStore(db *pgxpool.Pool) *MatchStore {
	return &MatchStore{db: db}
}

func (s *MatchStore) GetByID(ctx context.Context, id string) (*models.Match, error) {
	query := `
		SELECT id, name, title_id, status, maps, winner_team, team1_name, team2_name,
		       blue_channel, red_channel, map_codes, supports_map_codes, last_first_team,
		       created_at, updated_at
		FROM matches
		WHERE id = $1
	`
	m := &models.Match{}
	err := s.db.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.Name,
		&m.TitleID,
		&m.Status,
		&m.Maps,
		&m.WinnerTeam,
		&m.Team1Name,
		&m.Team2Name,
		&m.BlueChannel,
		&m.RedChannel,
		&m.MapCodes,
		&m.SupportsMapCodes,
		&m.LastFirstTeam,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match %s: %w", id, err)
	}
	return m, nil
}

// SetComplete flips the match to complete and records the overall winner.
// winner stays NULL on an exact tie.
func (s *MatchStore) SetComplete(ctx context.Context, id string, winner *string) error {
	query := `
		UPDATE matches
		SET status = $2, winner_team = $3, updated_at = now()
		WHERE id = $1
	`
	_, err := s.db.Exec(ctx, query, id, models.MatchComplete, winner)
	if err != nil {
		return fmt.Errorf("failed to complete match %s: %w", id, err)
	}
	return nil
}

// SetLastFirstTeam records which side the latest voice announcement named
// first, so the next one alternates.
func (s *MatchStore) SetLastFirstTeam(ctx context.Context, id, team string) error {
	query := `
		UPDATE matches
		SET last_first_team = $2, updated_at = now()
		WHERE id = $1
	`
	_, err := s.db.Exec(ctx, query, id, team)
	if err != nil {
		return fmt.Errorf("failed to record first team for match %s: %w", id, err)
	}
	return nil
}
