package system

import (
	"testing"

	"go-village-battle/internal/component"
	"go-village-battle/internal/defs"
)

// registerTestSpells installs a small spell library with round numbers.
func registerTestSpells(t *testing.T) {
	t.Helper()
	defs.SpellLibrary = map[string]defs.SpellDefinition{
		"Lightning": {
			Name: "Lightning", Effect: defs.EffectFlatSplit,
			Levels: []defs.SpellLevelStats{{Level: 1, Radius: 2, TotalDamage: 150}},
		},
		"Earthquake": {
			Name: "Earthquake", Effect: defs.EffectPercentPerTarget,
			Levels: []defs.SpellLevelStats{{Level: 1, Radius: 3.5, DamagePercent: 25}},
		},
		"Healing": {
			Name: "Healing", Effect: defs.EffectPeriodicHeal,
			Levels: []defs.SpellLevelStats{{Level: 1, Radius: 5, HealingPerSecond: 40, Duration: 12}},
		},
		"Poison": {
			Name: "Poison", Effect: defs.EffectPeriodicDamage,
			Levels: []defs.SpellLevelStats{{Level: 1, Radius: 4, MaxDamagePerSecond: 90, Duration: 16}},
		},
	}
}

func makeSpellState(spells map[string]int) *component.BattleState {
	return &component.BattleState{
		Phase:           component.PhaseActive,
		AvailableSpells: spells,
		SpellLevels:     map[string]int{},
	}
}

func TestDeploySpellRejections(t *testing.T) {
	registerTestSpells(t)

	tests := []struct {
		name      string
		available map[string]int
		spell     string
	}{
		{"Unknown spell", map[string]int{"Lightning": 1}, "Rage"},
		{"Zero count", map[string]int{"Lightning": 0}, "Lightning"},
		{"Not in loadout", map[string]int{"Healing": 1}, "Lightning"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := makeSpellState(tt.available)
			state.Buildings = []*component.BattleBuilding{
				makeBuilding("b1", component.CategoryOther, 500, 0, 0),
			}
			if got := DeploySpell(state, tt.spell, 0, 0); got != nil {
				t.Fatal("Expected nil for rejected deploy")
			}
			if state.Buildings[0].CurrentHP != 500 {
				t.Error("Expected no state change on rejection")
			}
			for name, count := range tt.available {
				if state.AvailableSpells[name] != count {
					t.Error("Expected no resource consumed on rejection")
				}
			}
		})
	}

	t.Run("Missing level definition", func(t *testing.T) {
		state := makeSpellState(map[string]int{"Lightning": 1})
		state.SpellLevels["Lightning"] = 9
		if DeploySpell(state, "Lightning", 0, 0) != nil {
			t.Fatal("Expected nil for missing level data")
		}
		if state.AvailableSpells["Lightning"] != 1 {
			t.Error("Expected no resource consumed")
		}
	})
}

func TestLightning(t *testing.T) {
	registerTestSpells(t)

	t.Run("splits damage evenly across three targets", func(t *testing.T) {
		buildings := []*component.BattleBuilding{
			makeBuilding("b1", component.CategoryOther, 500, 0, 0),
			makeBuilding("b2", component.CategoryOther, 500, 1, 0),
			makeBuilding("b3", component.CategoryOther, 500, 0, 1),
			makeBuilding("b4", component.CategoryOther, 500, 10, 10),
		}
		ApplyLightningDamage(buildings, nil, 0, 0, 2, 150)

		for _, b := range buildings[:3] {
			if got := b.MaxHP - b.CurrentHP; got != 50 {
				t.Errorf("Expected 50 damage to %s, got %v", b.InstanceID, got)
			}
		}
		if buildings[3].CurrentHP != 500 {
			t.Error("Expected building outside radius untouched")
		}
	})

	t.Run("no eligible targets leaves inputs unchanged", func(t *testing.T) {
		destroyed := makeBuilding("b1", component.CategoryOther, 500, 0, 0)
		destroyed.CurrentHP = 0
		destroyed.IsDestroyed = true
		buildings := []*component.BattleBuilding{destroyed}

		ApplyLightningDamage(buildings, nil, 0, 0, 2, 150)
		if destroyed.CurrentHP != 0 || !destroyed.IsDestroyed {
			t.Error("Expected destroyed building untouched")
		}
	})

	t.Run("lethal share marks destroyed and syncs defense", func(t *testing.T) {
		tower := makeBuilding("b1", component.CategoryDefense, 100, 0, 0)
		defense := &component.ActiveDefense{BuildingInstanceID: "b1", HP: 100}

		ApplyLightningDamage([]*component.BattleBuilding{tower},
			[]*component.ActiveDefense{defense}, 0, 0, 2, 150)
		if !tower.IsDestroyed || !defense.IsDestroyed {
			t.Error("Expected lethal share to destroy building and sync defense")
		}
	})
}

func TestEarthquake(t *testing.T) {
	registerTestSpells(t)

	t.Run("percent damage per target, not divided", func(t *testing.T) {
		big := makeBuilding("b1", component.CategoryOther, 1000, 0, 0)
		small := makeBuilding("b2", component.CategoryOther, 200, 1, 0)

		ApplyEarthquakeDamage([]*component.BattleBuilding{big, small}, nil, 0, 0, 3.5, 25)
		if got := big.MaxHP - big.CurrentHP; got != 250 {
			t.Errorf("Expected exactly 250 damage to 1000-hp building, got %v", got)
		}
		if got := small.MaxHP - small.CurrentHP; got != 50 {
			t.Errorf("Expected 50 damage to 200-hp building, got %v", got)
		}
	})
}

func TestTickSpellsHealing(t *testing.T) {
	registerTestSpells(t)

	spell := &component.ActiveSpell{
		ID: "s1", Name: "Healing", Level: 1, Radius: 5,
		RemainingDuration: 12, TotalDuration: 12,
	}
	inside := makeTroop("t1", component.SpeciesBarbarian, 100, 1, 0)
	inside.CurrentHP = 40
	nearlyFull := makeTroop("t2", component.SpeciesBarbarian, 100, 0, 1)
	nearlyFull.CurrentHP = 95
	outside := makeTroop("t3", component.SpeciesBarbarian, 100, 20, 0)
	outside.CurrentHP = 40

	spells, _, _, _ := TickSpells([]*component.ActiveSpell{spell},
		[]*component.DeployedTroop{inside, nearlyFull, outside}, nil, nil, 1000)

	if inside.CurrentHP != 80 {
		t.Errorf("Expected 40 hp healed, got %v", inside.CurrentHP)
	}
	if nearlyFull.CurrentHP != 100 {
		t.Errorf("Expected heal capped at max hp, got %v", nearlyFull.CurrentHP)
	}
	if outside.CurrentHP != 40 {
		t.Error("Expected troop outside radius untouched")
	}
	if len(spells) != 1 || spells[0].RemainingDuration != 11 {
		t.Errorf("Expected spell kept with 11s remaining, got %+v", spells)
	}
}

func TestTickSpellsPoison(t *testing.T) {
	registerTestSpells(t)

	spell := &component.ActiveSpell{
		ID: "s1", Name: "Poison", Level: 1, Radius: 4,
		RemainingDuration: 16, TotalDuration: 16,
	}
	sturdy := makeTroop("t1", component.SpeciesBarbarian, 100, 1, 0)
	frail := makeTroop("t2", component.SpeciesBarbarian, 50, 0, 1)

	TickSpells([]*component.ActiveSpell{spell},
		[]*component.DeployedTroop{sturdy, frail}, nil, nil, 1000)

	if sturdy.CurrentHP != 10 {
		t.Errorf("Expected 100-hp troop at 10 hp, got %v", sturdy.CurrentHP)
	}
	if frail.CurrentHP != 0 {
		t.Errorf("Expected 50-hp troop floored at 0, got %v", frail.CurrentHP)
	}
	if frail.State != component.TroopStateDead {
		t.Errorf("Expected poisoned troop dead at 0 hp, got state=%v", frail.State)
	}
}

func TestTickSpellsExpiry(t *testing.T) {
	registerTestSpells(t)

	expiring := &component.ActiveSpell{
		ID: "s1", Name: "Healing", Level: 1, Radius: 5,
		RemainingDuration: 0.5, TotalDuration: 12,
	}
	fresh := &component.ActiveSpell{
		ID: "s2", Name: "Poison", Level: 1, Radius: 4,
		RemainingDuration: 10, TotalDuration: 16,
	}

	spells, _, _, _ := TickSpells(
		[]*component.ActiveSpell{expiring, fresh}, nil, nil, nil, 1000)

	if len(spells) != 1 || spells[0].ID != "s2" {
		t.Fatalf("Expected only the fresh spell to survive, got %d spells", len(spells))
	}
	if spells[0].RemainingDuration != 9 {
		t.Errorf("Expected 9s remaining on surviving spell, got %v", spells[0].RemainingDuration)
	}
}

func TestDeploySpellInstantType(t *testing.T) {
	registerTestSpells(t)

	state := makeSpellState(map[string]int{"Lightning": 1})
	building := makeBuilding("b1", component.CategoryOther, 500, 0, 0)
	state.Buildings = []*component.BattleBuilding{building}

	if DeploySpell(state, "Lightning", 0, 0) == nil {
		t.Fatal("Expected successful deploy")
	}
	if building.CurrentHP != 350 {
		t.Errorf("Expected single target at 350/500, got %v", building.CurrentHP)
	}
	if state.AvailableSpells["Lightning"] != 0 {
		t.Errorf("Expected count decremented to 0, got %d", state.AvailableSpells["Lightning"])
	}
	if len(state.Spells) != 0 {
		t.Errorf("Expected no active spell from an instant effect, got %d", len(state.Spells))
	}
}

func TestDeploySpellDurationType(t *testing.T) {
	registerTestSpells(t)

	state := makeSpellState(map[string]int{"Healing": 2})
	troop := makeTroop("t1", component.SpeciesBarbarian, 100, 0, 0)
	troop.CurrentHP = 50
	state.Troops = []*component.DeployedTroop{troop}

	if DeploySpell(state, "Healing", 3, 3) == nil {
		t.Fatal("Expected successful deploy")
	}
	if state.AvailableSpells["Healing"] != 1 {
		t.Errorf("Expected count decremented to 1, got %d", state.AvailableSpells["Healing"])
	}
	if len(state.Spells) != 1 {
		t.Fatalf("Expected one active spell, got %d", len(state.Spells))
	}
	spell := state.Spells[0]
	if spell.RemainingDuration != 12 || spell.TotalDuration != 12 {
		t.Errorf("Expected 12s duration, got %v/%v", spell.RemainingDuration, spell.TotalDuration)
	}
	if troop.CurrentHP != 50 {
		t.Error("Expected no immediate effect from a duration spell")
	}
}
