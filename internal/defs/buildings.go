// internal/defs/buildings.go
package defs

// DefenseStats describes how a defensive building returns fire. Buildings
// without these stats never attack.
type DefenseStats struct {
	DPS          float64 `json:"dps"`
	MinRange     float64 `json:"min_range,omitempty"`
	MaxRange     float64 `json:"max_range"`
	AttackSpeed  float64 `json:"attack_speed"` // shots per second
	HitsGround   bool    `json:"hits_ground"`
	HitsAir      bool    `json:"hits_air"`
	SplashRadius float64 `json:"splash_radius,omitempty"`
	// NerfsHealing marks defenses whose targets stop receiving heals
	// (Inferno Tower).
	NerfsHealing bool `json:"nerfs_healing,omitempty"`
}

// BuildingLevelStats holds the stats of a building at one level.
type BuildingLevelStats struct {
	Level      int           `json:"level"`
	HP         float64       `json:"hp"`
	LootGold   int           `json:"loot_gold,omitempty"`
	LootElixir int           `json:"loot_elixir,omitempty"`
	Defense    *DefenseStats `json:"defense,omitempty"`
}

// BuildingDefinition holds all the static data for a specific building.
type BuildingDefinition struct {
	Name     string               `json:"name"`
	Category string               `json:"category"` // defense, resource, townhall, wall, other
	Weight   float64              `json:"weight"`
	Levels   []BuildingLevelStats `json:"levels"`
}

// StatsForLevel returns the stats for the given level, or false when the
// level has no definition.
func (d BuildingDefinition) StatsForLevel(level int) (BuildingLevelStats, bool) {
	for _, s := range d.Levels {
		if s.Level == level {
			return s, true
		}
	}
	return BuildingLevelStats{}, false
}

// BuildingLibrary is the library of all building definitions, keyed by name.
var BuildingLibrary map[string]BuildingDefinition
