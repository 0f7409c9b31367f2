package service

import (
	"context"
	"time"

	"github.com/nrdev/scrim-services/internal/matchsvc/models"
)

// Narrow repository contracts implemented by the pgx stores. Services hold
// these rather than concrete stores so the progression engine runs against
// fakes in tests.

type GameRepo interface {
	GetByID(ctx context.Context, id string) (*models.Game, error)
	Insert(ctx context.Context, g *models.Game) error
	ListByMatch(ctx context.Context, matchID string) ([]*models.Game, error)
	FindPlaceholder(ctx context.Context, matchID, mapID string) (*models.Game, error)
	Delete(ctx context.Context, id string) error
	FirstPending(ctx context.Context, matchID string) (*models.Game, error)
	SetOngoing(ctx context.Context, id string) error
	MarkCompleted(ctx context.Context, id string, res *models.ResultMode, points map[string]int, completedAt time.Time) error
}

type MatchRepo interface {
	GetByID(ctx context.Context, id string) (*models.Match, error)
	SetComplete(ctx context.Context, id string, winner *string) error
	SetLastFirstTeam(ctx context.Context, id, team string) error
}

type OutboxRepo interface {
	EnqueueScore(ctx context.Context, n models.ScoreNotification) error
	EnqueueMatchWinner(ctx context.Context, n models.MatchWinnerNotification) error
	EnqueueVoice(ctx context.Context, n models.VoiceAnnouncement) error
	EnqueueMapCode(ctx context.Context, n models.MapCodeMessage) error
	EnqueueDeletion(ctx context.Context, n models.DeletionRequest) error
}

type ParticipantRepo interface {
	ListByMatch(ctx context.Context, matchID string) ([]*models.Participant, error)
}

type TitleRepo interface {
	GetByID(ctx context.Context, id string) (*models.GameTitle, error)
}

type MapRepo interface {
	GetByID(ctx context.Context, mapID string) (*models.MapInfo, error)
}
