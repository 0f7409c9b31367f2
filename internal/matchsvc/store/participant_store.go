package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nrdev/scrim-services/internal/matchsvc/models"
)

type ParticipantStore struct {
	db *pgxpool.Pool
}

func NewParticipantStore(db *pgxpool.Pool) *ParticipantStore {
	return &ParticipantStore{db: db}
}

func (s *ParticipantStore) ListByMatch(ctx context.Context, matchID string) ([]*models.Participant, error) {
	query := `
		SELECT match_id, participant_id, name, COALESCE(mention, ''), COALESCE(team, '')
		FROM match_participants
		WHERE match_id = $1
		ORDER BY name
	`
	rows, err := s.db.Query(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants for match %s: %w", matchID, err)
	}
	defer rows.Close()

	var out []*models.Participant
	for rows.Next() {
		p := &models.Participant{}
		if err := rows.Scan(&p.MatchID, &p.ParticipantID, &p.Name, &p.Mention, &p.Team); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
