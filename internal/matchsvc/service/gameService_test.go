package service

import (
	"context"
	"testing"

	"github.com/nrdev/scrim-services/internal/matchsvc/models"
)

func TestInitializeGamesIsIdempotent(t *testing.T) {
	ctx := context.Background()
	e := newEngine(testMatch("m1", "map-a", "map-b", "map-c"))

	for i := 0; i < 2; i++ {
		if err := e.game.InitializeGames(ctx, "m1"); err != nil {
			t.Fatalf("InitializeGames: %v", err)
		}
	}

	games, _ := e.games.ListByMatch(ctx, "m1")
	if len(games) != 3 {
		t.Fatalf("games = %d, want 3 (no duplicates)", len(games))
	}
	for i, g := range games {
		if g.Round != i+1 {
			t.Errorf("game %d round = %d, want %d", i, g.Round, i+1)
		}
		want := models.GamePending
		if i == 0 {
			want = models.GameOngoing
		}
		if g.Status != want {
			t.Errorf("round %d status = %s, want %s", g.Round, g.Status, want)
		}
	}
}

func TestInitializeGamesConsumesNotePlaceholder(t *testing.T) {
	ctx := context.Background()
	e := newEngine(testMatch("m1", "map-a", "map-b"))

	note := "enemy smurf on map b, watch for rehost"
	e.games.Insert(ctx, &models.Game{
		ID:      "m1_note_map-b",
		MatchID: "m1",
		Round:   models.PlaceholderRound,
		MapID:   "map-b",
		Status:  models.GamePending,
		Notes:   &note,
	})

	if err := e.game.InitializeGames(ctx, "m1"); err != nil {
		t.Fatalf("InitializeGames: %v", err)
	}

	games, _ := e.games.ListByMatch(ctx, "m1")
	if len(games) != 2 {
		t.Fatalf("games = %d, want 2 (placeholder consumed)", len(games))
	}
	g2, _ := e.games.GetByID(ctx, models.GameID("m1", 2))
	if g2.Notes == nil || *g2.Notes != note {
		t.Errorf("note not carried forward: %v", g2.Notes)
	}
	if ph, _ := e.games.FindPlaceholder(ctx, "m1", "map-b"); ph != nil {
		t.Error("placeholder row still present after init")
	}
}

func TestInitializeGamesNoMapsIsNoop(t *testing.T) {
	ctx := context.Background()
	e := newEngine(testMatch("m1"))

	if err := e.game.InitializeGames(ctx, "m1"); err != nil {
		t.Fatalf("InitializeGames with no maps must not fail: %v", err)
	}
	games, _ := e.games.ListByMatch(ctx, "m1")
	if len(games) != 0 {
		t.Errorf("games = %d, want 0", len(games))
	}
}

func TestEnsureExistsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	e := newEngine(testMatch("m1", "map-a"))

	for i := 0; i < 2; i++ {
		if err := e.game.EnsureExists(ctx, "g77", "m1"); err != nil {
			t.Fatalf("EnsureExists: %v", err)
		}
	}

	g, _ := e.games.GetByID(ctx, "g77")
	if g == nil {
		t.Fatal("game not created")
	}
	if g.Round != 1 || g.Status != models.GameOngoing {
		t.Errorf("game = (round %d, %s), want (1, ongoing)", g.Round, g.Status)
	}
}

func TestListGamesEnrichesWithMapMetadata(t *testing.T) {
	ctx := context.Background()
	e := newEngine(testMatch("m1", "kings-row-173839201-x7q", "lost-temple"))
	e.maps.maps["kings-row"] = &models.MapInfo{
		MapID: "kings-row", Name: "King's Row", Image: "kings_row.png", Mode: "hybrid", Title: "Overwatch",
	}
	if err := e.game.InitializeGames(ctx, "m1"); err != nil {
		t.Fatalf("InitializeGames: %v", err)
	}

	views, err := e.game.ListGames(ctx, "m1")
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("views = %d, want 2", len(views))
	}

	// suffixed id resolves to the same metadata as the bare id
	if views[0].MapName != "King's Row" || views[0].MapMode != "hybrid" {
		t.Errorf("enrichment = (%s, %s), want (King's Row, hybrid)", views[0].MapName, views[0].MapMode)
	}

	// unknown map keeps the listing alive with empty metadata
	if views[1].MapName != "" || views[1].Title != "" {
		t.Errorf("unknown map should have empty metadata, got (%s, %s)", views[1].MapName, views[1].Title)
	}
}

func TestAdvanceNextPendingQueuesMapCode(t *testing.T) {
	ctx := context.Background()
	m := testMatch("m1", "map-a", "chateau-guillard-20250817-k2p")
	m.SupportsMapCodes = true
	m.MapCodes = map[string]string{"Château Guillard": "QXR41"}
	e := newEngine(m)
	e.maps.maps["chateau-guillard"] = &models.MapInfo{
		MapID: "chateau-guillard", Name: "Chateau Guillard",
	}
	if err := e.game.InitializeGames(ctx, "m1"); err != nil {
		t.Fatalf("InitializeGames: %v", err)
	}

	found, err := e.game.AdvanceNextPending(ctx, "m1")
	if err != nil {
		t.Fatalf("AdvanceNextPending: %v", err)
	}
	if !found {
		t.Fatal("pending game not found")
	}

	g2, _ := e.games.GetByID(ctx, models.GameID("m1", 2))
	if g2.Status != models.GameOngoing {
		t.Errorf("round 2 status = %s, want ongoing", g2.Status)
	}
	if len(e.outbox.mapCodes) != 1 {
		t.Fatalf("map code rows = %d, want 1", len(e.outbox.mapCodes))
	}
	if got := e.outbox.mapCodes[0].MapCode; got != "QXR41" {
		t.Errorf("map code = %q, want QXR41", got)
	}
}

func TestAdvanceNextPendingWithoutPendingGames(t *testing.T) {
	ctx := context.Background()
	e := newEngine(testMatch("m1", "map-a"))
	if err := e.game.InitializeGames(ctx, "m1"); err != nil {
		t.Fatalf("InitializeGames: %v", err)
	}

	found, err := e.game.AdvanceNextPending(ctx, "m1")
	if err != nil {
		t.Fatalf("AdvanceNextPending: %v", err)
	}
	if found {
		t.Error("found = true, want false for a single ongoing game")
	}
}

func TestAdvanceNextPendingMissingCodeDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	m := testMatch("m1", "map-a", "map-b")
	m.SupportsMapCodes = true
	m.MapCodes = map[string]string{"Some Other Map": "ZZZ99"}
	e := newEngine(m)
	if err := e.game.InitializeGames(ctx, "m1"); err != nil {
		t.Fatalf("InitializeGames: %v", err)
	}

	found, err := e.game.AdvanceNextPending(ctx, "m1")
	if err != nil {
		t.Fatalf("advancement must survive a code miss: %v", err)
	}
	if !found {
		t.Fatal("pending game not promoted")
	}
	if len(e.outbox.mapCodes) != 0 {
		t.Errorf("map code rows = %d, want 0", len(e.outbox.mapCodes))
	}
}
