// internal/defs/troops.go
package defs

// TroopLevelStats holds the stats of a troop at one level.
type TroopLevelStats struct {
	Level         int     `json:"level"`
	HP            float64 `json:"hp"`
	DPS           float64 `json:"dps"`
	HealPerSecond float64 `json:"heal_per_second,omitempty"`
}

// TroopDefinition holds all the static data for a specific troop species.
type TroopDefinition struct {
	Name          string  `json:"name"`
	IsFlying      bool    `json:"is_flying,omitempty"`
	IsHero        bool    `json:"is_hero,omitempty"`
	AttackRange   float64 `json:"attack_range"`
	MovementSpeed float64 `json:"movement_speed"`
	HousingSpace  int     `json:"housing_space"`

	Levels []TroopLevelStats `json:"levels"`

	// Special-mechanic parameters. Zero values mean "not applicable";
	// handlers fall back to config defaults where one exists.
	WallDamageMultiplier     float64 `json:"wall_damage_multiplier,omitempty"`
	ResourceDamageMultiplier float64 `json:"resource_damage_multiplier,omitempty"`
	HealRadius               float64 `json:"heal_radius,omitempty"`
	ChainTargets             int     `json:"chain_targets,omitempty"`
	ChainDamageDecay         float64 `json:"chain_damage_decay,omitempty"`
	SplashRadius             float64 `json:"splash_radius,omitempty"`
	DeathSpawnName           string  `json:"death_spawn_name,omitempty"`
	DeathSpawnCount          int     `json:"death_spawn_count,omitempty"`
	DeathDamage              float64 `json:"death_damage,omitempty"`
	DeathDamageRadius        float64 `json:"death_damage_radius,omitempty"`
}

// StatsForLevel returns the stats for the given level, or false when the
// level has no definition.
func (d TroopDefinition) StatsForLevel(level int) (TroopLevelStats, bool) {
	for _, s := range d.Levels {
		if s.Level == level {
			return s, true
		}
	}
	return TroopLevelStats{}, false
}

// TroopLibrary is the library of all troop definitions, keyed by name.
var TroopLibrary map[string]TroopDefinition
