package defs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	b := Default()
	if b.Field.Width != 1600 || b.Field.Height != 1100 {
		t.Errorf("field = %vx%v, want 1600x1100", b.Field.Width, b.Field.Height)
	}
	if b.Spawn.KillThreshold != 30 {
		t.Errorf("KillThreshold = %d, want 30", b.Spawn.KillThreshold)
	}
	if b.Enemies.Boss.CircleBullets != 8 {
		t.Errorf("boss CircleBullets = %d, want 8", b.Enemies.Boss.CircleBullets)
	}
	if len(b.Spawn.Kinds) != 3 {
		t.Errorf("spawn kinds = %d, want 3", len(b.Spawn.Kinds))
	}
	if b.Shop.Health.Cost != 50 || b.Shop.Damage.Cost != 500 || b.Shop.Speed.Cost != 200 || b.Shop.FireRate.Cost != 400 {
		t.Errorf("unexpected shop costs: %+v", b.Shop)
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Player.Health = 999
	if b := Default(); b.Player.Health == 999 {
		t.Error("Default() shares state between calls")
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	data := "player:\n  health: 25\nspawn:\n  kill_threshold: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Player.Health != 25 {
		t.Errorf("Player.Health = %d, want 25", b.Player.Health)
	}
	if b.Spawn.KillThreshold != 5 {
		t.Errorf("KillThreshold = %d, want 5", b.Spawn.KillThreshold)
	}
	if b.Player.Speed != 300 {
		t.Errorf("Player.Speed = %v, want default 300", b.Player.Speed)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"broken yaml", "player: [", "unmarshal"},
		{"bad field", "field:\n  width: 0\n", "field size"},
		{"unknown kind", "spawn:\n  kinds:\n    - kind: dragon\n      weight: 1\n", "unknown spawn kind"},
		{"no spawn kinds", "spawn:\n  kinds: []\n", "spawn kinds must not be empty"},
		{"zero weights", "spawn:\n  kinds:\n    - kind: melee\n      weight: 0\n    - kind: boss\n      weight: 0\n", "all be zero"},
		{"negative weight", "spawn:\n  kinds:\n    - kind: melee\n      weight: -2\n    - kind: boss\n      weight: 1\n", "must not be negative"},
		{"no circle bullets", "enemies:\n  boss:\n    circle_bullets: 0\n", "circle bullets"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
