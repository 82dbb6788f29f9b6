// internal/defs/defaults.go
package defs

// RegisterDefaults populates the libraries with the built-in balance data.
// The JSON loaders replace these wholesale when external definition files
// are supplied.
func RegisterDefaults() {
	TroopLibrary = make(map[string]TroopDefinition)
	for _, def := range defaultTroops {
		TroopLibrary[def.Name] = def
	}
	SpellLibrary = make(map[string]SpellDefinition)
	for _, def := range defaultSpells {
		SpellLibrary[def.Name] = def
	}
	BuildingLibrary = make(map[string]BuildingDefinition)
	for _, def := range defaultBuildings {
		BuildingLibrary[def.Name] = def
	}
}

var defaultTroops = []TroopDefinition{
	{
		Name: "Barbarian", AttackRange: 0.4, MovementSpeed: 2.0, HousingSpace: 1,
		Levels: []TroopLevelStats{
			{Level: 1, HP: 45, DPS: 8},
			{Level: 2, HP: 54, DPS: 11},
			{Level: 3, HP: 65, DPS: 14},
		},
	},
	{
		Name: "Archer", AttackRange: 3.5, MovementSpeed: 3.0, HousingSpace: 1,
		Levels: []TroopLevelStats{
			{Level: 1, HP: 20, DPS: 7},
			{Level: 2, HP: 23, DPS: 9},
			{Level: 3, HP: 28, DPS: 12},
		},
	},
	{
		Name: "Giant", AttackRange: 0.5, MovementSpeed: 1.5, HousingSpace: 5,
		Levels: []TroopLevelStats{
			{Level: 1, HP: 300, DPS: 11},
			{Level: 2, HP: 360, DPS: 14},
		},
	},
	{
		Name: "Wall Breaker", AttackRange: 0.5, MovementSpeed: 3.0, HousingSpace: 2,
		WallDamageMultiplier: 40,
		Levels: []TroopLevelStats{
			{Level: 1, HP: 20, DPS: 6},
			{Level: 2, HP: 24, DPS: 10},
		},
	},
	{
		Name: "Goblin", AttackRange: 0.4, MovementSpeed: 4.0, HousingSpace: 1,
		ResourceDamageMultiplier: 2,
		Levels: []TroopLevelStats{
			{Level: 1, HP: 25, DPS: 11},
			{Level: 2, HP: 30, DPS: 14},
		},
	},
	{
		Name: "Healer", IsFlying: true, AttackRange: 5.0, MovementSpeed: 2.0, HousingSpace: 14,
		HealRadius: 5,
		Levels: []TroopLevelStats{
			{Level: 1, HP: 500, HealPerSecond: 36},
			{Level: 2, HP: 600, HealPerSecond: 42},
		},
	},
	{
		Name: "Baby Dragon", IsFlying: true, AttackRange: 0.75, MovementSpeed: 2.5, HousingSpace: 10,
		Levels: []TroopLevelStats{
			{Level: 1, HP: 640, DPS: 75},
			{Level: 2, HP: 700, DPS: 85},
		},
	},
	{
		Name: "Miner", AttackRange: 0.5, MovementSpeed: 3.2, HousingSpace: 6,
		Levels: []TroopLevelStats{
			{Level: 1, HP: 550, DPS: 80},
			{Level: 2, HP: 610, DPS: 88},
		},
	},
	{
		Name: "Electro Dragon", IsFlying: true, AttackRange: 3.0, MovementSpeed: 1.8, HousingSpace: 30,
		ChainTargets: 4, ChainDamageDecay: 0.75,
		Levels: []TroopLevelStats{
			{Level: 1, HP: 3200, DPS: 240},
			{Level: 2, HP: 3700, DPS: 270},
		},
	},
	{
		Name: "Valkyrie", AttackRange: 0.5, MovementSpeed: 3.0, HousingSpace: 8,
		SplashRadius: 1,
		Levels: []TroopLevelStats{
			{Level: 1, HP: 900, DPS: 94},
			{Level: 2, HP: 1000, DPS: 106},
		},
	},
	{
		Name: "Balloon", IsFlying: true, AttackRange: 0.5, MovementSpeed: 1.2, HousingSpace: 5,
		DeathDamage: 25, DeathDamageRadius: 1.2,
		Levels: []TroopLevelStats{
			{Level: 1, HP: 150, DPS: 25},
			{Level: 2, HP: 180, DPS: 32},
		},
	},
	{
		Name: "Golem", AttackRange: 0.5, MovementSpeed: 1.0, HousingSpace: 30,
		DeathSpawnName: "Golemite", DeathSpawnCount: 2,
		DeathDamage: 350, DeathDamageRadius: 1.2,
		Levels: []TroopLevelStats{
			{Level: 1, HP: 5000, DPS: 40},
			{Level: 2, HP: 5500, DPS: 45},
		},
	},
	{
		Name: "Golemite", AttackRange: 0.5, MovementSpeed: 1.0, HousingSpace: 0,
		Levels: []TroopLevelStats{
			{Level: 1, HP: 1000, DPS: 12},
			{Level: 2, HP: 1100, DPS: 13},
		},
	},
	{
		Name: "Lava Hound", IsFlying: true, AttackRange: 0.5, MovementSpeed: 1.3, HousingSpace: 30,
		DeathSpawnName: "Lava Pup", DeathSpawnCount: 8,
		DeathDamage: 100, DeathDamageRadius: 2.0,
		Levels: []TroopLevelStats{
			{Level: 1, HP: 6100, DPS: 10},
		},
	},
	{
		Name: "Lava Pup", IsFlying: true, AttackRange: 0.4, MovementSpeed: 2.8, HousingSpace: 0,
		Levels: []TroopLevelStats{
			{Level: 1, HP: 50, DPS: 35},
		},
	},
	{
		Name: "Barbarian King", IsHero: true, AttackRange: 0.5, MovementSpeed: 1.6, HousingSpace: 0,
		Levels: []TroopLevelStats{
			{Level: 1, HP: 1700, DPS: 120},
			{Level: 2, HP: 1800, DPS: 127},
		},
	},
}

var defaultSpells = []SpellDefinition{
	{
		Name: "Lightning", Effect: EffectFlatSplit,
		Levels: []SpellLevelStats{
			{Level: 1, Radius: 2.0, TotalDamage: 150},
			{Level: 2, Radius: 2.0, TotalDamage: 180},
			{Level: 3, Radius: 2.0, TotalDamage: 210},
		},
	},
	{
		Name: "Earthquake", Effect: EffectPercentPerTarget,
		Levels: []SpellLevelStats{
			{Level: 1, Radius: 3.5, DamagePercent: 14.5},
			{Level: 2, Radius: 3.8, DamagePercent: 17},
			{Level: 3, Radius: 4.1, DamagePercent: 25},
		},
	},
	{
		Name: "Healing", Effect: EffectPeriodicHeal,
		Levels: []SpellLevelStats{
			{Level: 1, Radius: 5.0, HealingPerSecond: 50, Duration: 12},
			{Level: 2, Radius: 5.0, HealingPerSecond: 65, Duration: 12},
		},
	},
	{
		Name: "Poison", Effect: EffectPeriodicDamage,
		Levels: []SpellLevelStats{
			{Level: 1, Radius: 4.0, MaxDamagePerSecond: 90, Duration: 16},
			{Level: 2, Radius: 4.0, MaxDamagePerSecond: 115, Duration: 16},
		},
	},
}

var defaultBuildings = []BuildingDefinition{
	{
		Name: "Town Hall", Category: "townhall", Weight: 10,
		Levels: []BuildingLevelStats{
			{Level: 1, HP: 1500, LootGold: 500, LootElixir: 500},
			{Level: 2, HP: 1800, LootGold: 700, LootElixir: 700},
		},
	},
	{
		Name: "Gold Mine", Category: "resource", Weight: 3,
		Levels: []BuildingLevelStats{
			{Level: 1, HP: 400, LootGold: 250},
			{Level: 2, HP: 480, LootGold: 400},
		},
	},
	{
		Name: "Elixir Collector", Category: "resource", Weight: 3,
		Levels: []BuildingLevelStats{
			{Level: 1, HP: 400, LootElixir: 250},
			{Level: 2, HP: 480, LootElixir: 400},
		},
	},
	{
		Name: "Gold Storage", Category: "resource", Weight: 4,
		Levels: []BuildingLevelStats{
			{Level: 1, HP: 800, LootGold: 600},
		},
	},
	{
		Name: "Elixir Storage", Category: "resource", Weight: 4,
		Levels: []BuildingLevelStats{
			{Level: 1, HP: 800, LootElixir: 600},
		},
	},
	{
		// Стены не входят в процент разрушения.
		Name: "Wall", Category: "wall", Weight: 0,
		Levels: []BuildingLevelStats{
			{Level: 1, HP: 300},
			{Level: 2, HP: 500},
			{Level: 3, HP: 700},
		},
	},
	{
		Name: "Army Camp", Category: "other", Weight: 2,
		Levels: []BuildingLevelStats{
			{Level: 1, HP: 250},
		},
	},
	{
		Name: "Builder's Hut", Category: "other", Weight: 1,
		Levels: []BuildingLevelStats{
			{Level: 1, HP: 250},
		},
	},
	{
		Name: "Cannon", Category: "defense", Weight: 5,
		Levels: []BuildingLevelStats{
			{Level: 1, HP: 420, Defense: &DefenseStats{
				DPS: 9, MaxRange: 9, AttackSpeed: 1.25, HitsGround: true,
			}},
			{Level: 2, HP: 470, Defense: &DefenseStats{
				DPS: 11, MaxRange: 9, AttackSpeed: 1.25, HitsGround: true,
			}},
		},
	},
	{
		Name: "Archer Tower", Category: "defense", Weight: 5,
		Levels: []BuildingLevelStats{
			{Level: 1, HP: 380, Defense: &DefenseStats{
				DPS: 11, MaxRange: 10, AttackSpeed: 2, HitsGround: true, HitsAir: true,
			}},
			{Level: 2, HP: 420, Defense: &DefenseStats{
				DPS: 13, MaxRange: 10, AttackSpeed: 2, HitsGround: true, HitsAir: true,
			}},
		},
	},
	{
		Name: "Mortar", Category: "defense", Weight: 6,
		Levels: []BuildingLevelStats{
			{Level: 1, HP: 400, Defense: &DefenseStats{
				DPS: 4, MinRange: 4, MaxRange: 11, AttackSpeed: 0.2,
				HitsGround: true, SplashRadius: 1.5,
			}},
		},
	},
	{
		Name: "Air Defense", Category: "defense", Weight: 6,
		Levels: []BuildingLevelStats{
			{Level: 1, HP: 800, Defense: &DefenseStats{
				DPS: 80, MaxRange: 10, AttackSpeed: 1, HitsAir: true,
			}},
		},
	},
	{
		Name: "Wizard Tower", Category: "defense", Weight: 6,
		Levels: []BuildingLevelStats{
			{Level: 1, HP: 620, Defense: &DefenseStats{
				DPS: 11, MaxRange: 7, AttackSpeed: 0.77,
				HitsGround: true, HitsAir: true, SplashRadius: 1,
			}},
		},
	},
	{
		Name: "Inferno Tower", Category: "defense", Weight: 8,
		Levels: []BuildingLevelStats{
			{Level: 1, HP: 1500, Defense: &DefenseStats{
				DPS: 30, MaxRange: 9, AttackSpeed: 1.25,
				HitsGround: true, HitsAir: true, NerfsHealing: true,
			}},
		},
	},
}
