package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nrdev/scrim-services/internal/matchsvc/models"
)

type TitleStore struct {
	db *pgxpool.Pool
}

func NewTitleStore(db *pgxpool.Pool) *TitleStore {
	return &TitleStore{db: db}
}

// GetByID returns (nil, nil) when the title has no row; callers treat a
// missing scoring config as zero points, not as a failure.
func (s *TitleStore) GetByID(ctx context.Context, id string) (*models.GameTitle, error) {
	query := `
		SELECT id, name, points_per_position
		FROM game_titles
		WHERE id = $1
	`
	t := &models.GameTitle{}
	var raw []byte
	err := s.db.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get game title %s: %w", id, err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &t.PointsPerPosition); err != nil {
			return nil, fmt.Errorf("bad points table for title %s: %w", id, err)
		}
	}
	return t, nil
}
