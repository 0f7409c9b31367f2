package store

import (
	"strconv"
	"strings"
	"testing"

	"github.com/nrdev/scrim-services/internal/matchsvc/models"
)

func TestNewQueueID(t *testing.T) {
	kinds := []string{
		models.QueueScore,
		models.QueueMatchWinner,
		models.QueueVoice,
		models.QueueMapCode,
		models.QueueDeletion,
	}
	for _, kind := range kinds {
		t.Run(kind, func(t *testing.T) {
			id := newQueueID(kind)
			parts := strings.Split(id, "_")
			if len(parts) != 3 {
				t.Fatalf("id %q has %d segments, want kind_epoch_suffix", id, len(parts))
			}
			if parts[0] != kind {
				t.Errorf("prefix = %q, want %q", parts[0], kind)
			}
			if _, err := strconv.ParseInt(parts[1], 10, 64); err != nil {
				t.Errorf("epoch segment %q is not numeric", parts[1])
			}
			if len(parts[2]) != 6 {
				t.Errorf("suffix %q length = %d, want 6", parts[2], len(parts[2]))
			}
		})
	}
}

func TestNewQueueIDCollisionResistance(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := newQueueID(models.QueueScore)
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
