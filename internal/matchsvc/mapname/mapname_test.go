package mapname

import "testing"

func TestCanonical(t *testing.T) {
	tests := []struct {
		name  string
		mapID string
		want  string
	}{
		{"timestamp and token suffix", "kings-row-173839201-x7q", "kings-row"},
		{"bare id untouched", "kings-row", "kings-row"},
		{"single hyphen kept", "lost-temple", "lost-temple"},
		{"short trailing number kept", "arena-2-v1", "arena-2-v1"},
		{"long suffix on multiword id", "chateau-guillard-20250817-k2p", "chateau-guillard"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Canonical(tt.mapID); got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.mapID, got, tt.want)
			}
		})
	}
}

func TestFindCode(t *testing.T) {
	codes := map[string]string{
		"Château Guillard": "QXR41",
		"King's Row":       "KR882",
		"Nepal":            "NP110",
	}

	tests := []struct {
		name    string
		mapName string
		want    string
		ok      bool
	}{
		{"exact", "Nepal", "NP110", true},
		{"case insensitive", "nepal", "NP110", true},
		{"diacritics stripped", "chateau guillard", "QXR41", true},
		{"punctuation ignored", "kings row", "KR882", true},
		{"partial name", "Guillard", "QXR41", true},
		{"stored name longer", "King's Row (night)", "KR882", true},
		{"no match", "Busan", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindCode(codes, tt.mapName)
			if ok != tt.ok || got != tt.want {
				t.Errorf("FindCode(%q) = (%q, %v), want (%q, %v)", tt.mapName, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFindCodeIsDeterministic(t *testing.T) {
	// two keys both contain "row"; sorted key order must pin the pick
	codes := map[string]string{
		"Kings Row":  "A",
		"Row Royale": "B",
	}
	first, _ := FindCode(codes, "row")
	for i := 0; i < 20; i++ {
		got, _ := FindCode(codes, "row")
		if got != first {
			t.Fatalf("FindCode flapped between entries: %q then %q", first, got)
		}
	}
}
