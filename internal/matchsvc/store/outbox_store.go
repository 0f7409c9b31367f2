package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nrdev/scrim-services/internal/matchsvc/models"
)

// OutboxStore appends pending rows to the five notification queue tables.
// Each insert stands alone; an external consumer drains the queues and
// owns every status transition after pending.
type OutboxStore struct {
	db *pgxpool.Pool
}

func NewOutboxStore(db *pgxpool.Pool) *OutboxStore {
	return &OutboxStore{db: db}
}

// newQueueID builds a collision-resistant id of the form
// <kind>_<epoch-ms>_<suffix>.
func newQueueID(kind string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%s_%d_%s", kind, time.Now().UnixMilli(), suffix)
}

func (s *OutboxStore) EnqueueScore(ctx context.Context, n models.ScoreNotification) error {
	n.ID = newQueueID(models.QueueScore)
	n.Status = models.QueuePending
	query := `
		INSERT INTO score_notification_queue
			(id, match_id, game_id, map_id, round, winner, winning_team_name, winning_players, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
	`
	_, err := s.db.Exec(ctx, query, n.ID, n.MatchID, n.GameID, n.MapID, n.Round,
		n.Winner, n.WinningTeamName, n.WinningPlayers, n.Status)
	if err != nil {
		return fmt.Errorf("failed to enqueue score notification: %w", err)
	}
	return nil
}

func (s *OutboxStore) EnqueueMatchWinner(ctx context.Context, n models.MatchWinnerNotification) error {
	n.ID = newQueueID(models.QueueMatchWinner)
	n.Status = models.QueuePending
	query := `
		INSERT INTO match_winner_queue
			(id, match_id, match_name, game_id, winner, winning_team_name, winning_players,
			 team1_score, team2_score, total_games, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
	`
	_, err := s.db.Exec(ctx, query, n.ID, n.MatchID, n.MatchName, n.GameID, n.Winner,
		n.WinningTeamName, n.WinningPlayers, n.Team1Score, n.Team2Score, n.TotalGames, n.Status)
	if err != nil {
		return fmt.Errorf("failed to enqueue match winner notification: %w", err)
	}
	return nil
}

func (s *OutboxStore) EnqueueVoice(ctx context.Context, n models.VoiceAnnouncement) error {
	n.ID = newQueueID(models.QueueVoice)
	n.Status = models.QueuePending
	query := `
		INSERT INTO voice_announcement_queue
			(id, match_id, type, blue_channel, red_channel, first_team, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
	`
	_, err := s.db.Exec(ctx, query, n.ID, n.MatchID, n.Type,
		n.BlueChannel, n.RedChannel, n.FirstTeam, n.Status)
	if err != nil {
		return fmt.Errorf("failed to enqueue voice announcement: %w", err)
	}
	return nil
}

func (s *OutboxStore) EnqueueMapCode(ctx context.Context, n models.MapCodeMessage) error {
	n.ID = newQueueID(models.QueueMapCode)
	n.Status = models.QueuePending
	query := `
		INSERT INTO map_code_queue (id, match_id, map_name, map_code, status, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
	`
	_, err := s.db.Exec(ctx, query, n.ID, n.MatchID, n.MapName, n.MapCode, n.Status)
	if err != nil {
		return fmt.Errorf("failed to enqueue map code message: %w", err)
	}
	return nil
}

func (s *OutboxStore) EnqueueDeletion(ctx context.Context, n models.DeletionRequest) error {
	n.ID = newQueueID(models.QueueDeletion)
	n.Status = models.QueuePending
	query := `
		INSERT INTO deletion_queue (id, match_id, status, created_at)
		VALUES ($1, $2, $3, now())
	`
	_, err := s.db.Exec(ctx, query, n.ID, n.MatchID, n.Status)
	if err != nil {
		return fmt.Errorf("failed to enqueue deletion request: %w", err)
	}
	return nil
}
