package config

import (
	"os"
	"path/filepath"
	"testing"
)

func snapshot() func() {
	c, d, dist, lvl, pu, pl, fog, tr, ap := *C, Dungeon, Distribution, Level, PowerUp, Player, Fog, Transition, Autopilot
	cat := append([]string(nil), Catalog...)
	return func() {
		*C, Dungeon, Distribution, Level, PowerUp, Player, Fog, Transition, Autopilot = c, d, dist, lvl, pu, pl, fog, tr, ap
		Catalog = cat
	}
}

func TestApplyKeepsUnsetDefaults(t *testing.T) {
	defer snapshot()()

	err := Apply([]byte(`
level:
  finalLevel: 3
distribution:
  itemCount: 4
catalog: [a, b, c, d, e]
`))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if Level.FinalLevel != 3 {
		t.Errorf("FinalLevel = %d, want 3", Level.FinalLevel)
	}
	if Level.BaseCountdown != 35 {
		t.Errorf("BaseCountdown = %d, want default 35", Level.BaseCountdown)
	}
	if Distribution.ItemCount != 4 {
		t.Errorf("ItemCount = %d, want 4", Distribution.ItemCount)
	}
	if Distribution.PowerUpChance != 0.2 {
		t.Errorf("PowerUpChance = %v, want default 0.2", Distribution.PowerUpChance)
	}
	if len(Catalog) != 5 {
		t.Errorf("len(Catalog) = %d, want 5", len(Catalog))
	}
}

func TestApplyRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"zero_items", "distribution:\n  itemCount: 0\n"},
		{"even_room", "dungeon:\n  minRoomSize: 8\n"},
		{"tight_doors", "dungeon:\n  doorPadding: 1\n"},
		{"negative_speed", "player:\n  speed: -1\n"},
		{"bad_yaml", "level: [\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer snapshot()()
			before := Distribution.ItemCount

			if err := Apply([]byte(c.data)); err == nil {
				t.Fatalf("Apply(%q) should fail", c.data)
			}
			if Distribution.ItemCount != before || Dungeon.MinRoomSize != 7 {
				t.Fatalf("failed Apply must not change configuration")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	defer snapshot()()

	path := filepath.Join(t.TempDir(), "labhunt.yaml")
	if err := os.WriteFile(path, []byte("sim:\n  seed: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if C.Seed != 42 || C.TickRate != 60 {
		t.Fatalf("C = %+v, want seed 42 and default tick rate", *C)
	}

	if err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load of a missing file should fail")
	}
}

func TestProgressionStateNames(t *testing.T) {
	if StateItemsComplete.String() != "ItemsComplete" {
		t.Errorf("got %q", StateItemsComplete.String())
	}
	if ProgressionStateID(99).String() != "Unknown" {
		t.Errorf("unknown state should stringify as Unknown")
	}
}
