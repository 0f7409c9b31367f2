package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nrdev/scrim-services/internal/matchsvc/models"
)

type MapStore struct {
	db *pgxpool.Pool
}

func NewMapStore(db *pgxpool.Pool) *MapStore {
	return &MapStore{db: db}
}

// GetByID looks up display metadata by canonical map id. Returns (nil, nil)
// for unknown maps so listings can skip enrichment instead of failing.
func (s *MapStore) GetByID(ctx context.Context, mapID string) (*models.MapInfo, error) {
	query := `
		SELECT m.map_id, m.name, COALESCE(m.image, ''), COALESCE(m.mode, ''), m.title_id,
		       COALESCE(t.name, '')
		FROM maps m
		LEFT JOIN game_titles t ON t.id = m.title_id
		WHERE m.map_id = $1
	`
	info := &models.MapInfo{}
	err := s.db.QueryRow(ctx, query, mapID).Scan(
		&info.MapID,
		&info.Name,
		&info.Image,
		&info.Mode,
		&info.TitleID,
		&info.Title,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get map %s: %w", mapID, err)
	}
	return info, nil
}
