package service

import (
	"context"

	"github.com/nrdev/scrim-services/internal/matchsvc/models"
)

// VoiceService alternates which side a voice announcement names first.
type VoiceService struct {
	matches MatchRepo
}

func NewVoiceService(matches MatchRepo) *VoiceService {
	return &VoiceService{matches: matches}
}

// DecideFirstTeam returns the opposite of the side announced first last
// time, defaulting to blue for a match with no prior announcement. The
// caller persists the new value after the announcement is queued.
func (s *VoiceService) DecideFirstTeam(ctx context.Context, matchID string) (string, error) {
	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return "", err
	}
	if match == nil || match.LastFirstTeam == nil {
		return models.VoiceBlue, nil
	}
	if *match.LastFirstTeam == models.VoiceBlue {
		return models.VoiceRed, nil
	}
	return models.VoiceBlue, nil
}
