package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempJSON(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTroopDefinitions(t *testing.T) {
	path := writeTempJSON(t, "troops.json", `[
		{
			"name": "Barbarian",
			"attack_range": 1,
			"movement_speed": 2,
			"housing_space": 1,
			"levels": [
				{"level": 1, "hp": 100, "dps": 50},
				{"level": 2, "hp": 120, "dps": 60}
			]
		},
		{
			"name": "Wall Breaker",
			"attack_range": 0.5,
			"movement_speed": 3,
			"housing_space": 2,
			"wall_damage_multiplier": 40,
			"levels": [{"level": 1, "hp": 20, "dps": 10}]
		}
	]`)

	if err := LoadTroopDefinitions(path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(TroopLibrary) != 2 {
		t.Fatalf("Expected 2 troops, got %d", len(TroopLibrary))
	}

	barb, ok := TroopLibrary["Barbarian"]
	if !ok {
		t.Fatal("Expected Barbarian in library")
	}
	stats, ok := barb.StatsForLevel(2)
	if !ok || stats.HP != 120 || stats.DPS != 60 {
		t.Errorf("Expected level 2 stats hp=120 dps=60, got %+v", stats)
	}
	if _, ok := barb.StatsForLevel(3); ok {
		t.Error("Expected no stats for an undefined level")
	}

	if TroopLibrary["Wall Breaker"].WallDamageMultiplier != 40 {
		t.Error("Expected wall damage multiplier carried through")
	}
}

func TestLoadSpellDefinitions(t *testing.T) {
	path := writeTempJSON(t, "spells.json", `[
		{
			"name": "Lightning",
			"effect": "FLAT_SPLIT",
			"levels": [{"level": 1, "radius": 2, "total_damage": 150}]
		},
		{
			"name": "Healing",
			"effect": "PERIODIC_HEAL",
			"levels": [{"level": 1, "radius": 5, "healing_per_second": 40, "duration": 12}]
		}
	]`)

	if err := LoadSpellDefinitions(path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lightning := SpellLibrary["Lightning"]
	if lightning.Effect != EffectFlatSplit {
		t.Errorf("Expected FLAT_SPLIT effect, got %q", lightning.Effect)
	}
	if !lightning.Instant() {
		t.Error("Expected lightning to be instant")
	}
	if SpellLibrary["Healing"].Instant() {
		t.Error("Expected healing to be a duration spell")
	}
}

func TestLoadBuildingDefinitions(t *testing.T) {
	path := writeTempJSON(t, "buildings.json", `[
		{
			"name": "Cannon",
			"category": "defense",
			"weight": 1,
			"levels": [{
				"level": 1,
				"hp": 420,
				"defense": {"dps": 20, "max_range": 9, "attack_speed": 1, "hits_ground": true}
			}]
		},
		{
			"name": "Wall",
			"category": "wall",
			"weight": 0,
			"levels": [{"level": 1, "hp": 300}]
		}
	]`)

	if err := LoadBuildingDefinitions(path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	cannon := BuildingLibrary["Cannon"]
	stats, ok := cannon.StatsForLevel(1)
	if !ok || stats.Defense == nil {
		t.Fatal("Expected cannon defense stats")
	}
	if stats.Defense.DPS != 20 || !stats.Defense.HitsGround || stats.Defense.HitsAir {
		t.Errorf("Expected ground-only cannon at 20 dps, got %+v", stats.Defense)
	}
	if BuildingLibrary["Wall"].Levels[0].Defense != nil {
		t.Error("Expected no defense stats on a wall")
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if err := LoadTroopDefinitions(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("Expected error for a missing file")
		}
	})
	t.Run("malformed json", func(t *testing.T) {
		path := writeTempJSON(t, "bad.json", `{not json`)
		if err := LoadBuildingDefinitions(path); err == nil {
			t.Error("Expected error for malformed json")
		}
	})
}
