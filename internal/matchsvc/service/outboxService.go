package service

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/nrdev/scrim-services/internal/matchsvc/models"
)

// Outbox is the never-fail face of the notification queues. The scoring
// write is authoritative; a queue insert that cannot go through is logged
// and dropped so the caller of SaveResult never sees it.
type Outbox struct {
	repo OutboxRepo
}

func NewOutbox(repo OutboxRepo) *Outbox {
	return &Outbox{repo: repo}
}

func (o *Outbox) Score(ctx context.Context, n models.ScoreNotification) {
	if err := o.repo.EnqueueScore(ctx, n); err != nil {
		log.Errorf("Error [Outbox.Score] match %s game %s: %s", n.MatchID, n.GameID, err)
	}
}

func (o *Outbox) MatchWinner(ctx context.Context, n models.MatchWinnerNotification) {
	if err := o.repo.EnqueueMatchWinner(ctx, n); err != nil {
		log.Errorf("Error [Outbox.MatchWinner] match %s: %s", n.MatchID, err)
	}
}

func (o *Outbox) Voice(ctx context.Context, n models.VoiceAnnouncement) {
	if err := o.repo.EnqueueVoice(ctx, n); err != nil {
		log.Errorf("Error [Outbox.Voice] match %s: %s", n.MatchID, err)
	}
}

func (o *Outbox) MapCode(ctx context.Context, n models.MapCodeMessage) {
	if err := o.repo.EnqueueMapCode(ctx, n); err != nil {
		log.Errorf("Error [Outbox.MapCode] match %s map %s: %s", n.MatchID, n.MapName, err)
	}
}

func (o *Outbox) Deletion(ctx context.Context, n models.DeletionRequest) {
	if err := o.repo.EnqueueDeletion(ctx, n); err != nil {
		log.Errorf("Error [Outbox.Deletion] match %s: %s", n.MatchID, err)
	}
}
