// internal/defs/spells.go
package defs

// SpellEffect is the closed set of spell effect variants. Instant effects
// resolve at cast time; periodic effects create an active spell that ticks
// until its duration runs out.
type SpellEffect string

const (
	// EffectFlatSplit splits a flat total damage evenly across every
	// eligible target in radius (Lightning).
	EffectFlatSplit SpellEffect = "FLAT_SPLIT"
	// EffectPercentPerTarget deals max-hp percentage damage to each target
	// in radius independently (Earthquake).
	EffectPercentPerTarget SpellEffect = "PERCENT_PER_TARGET"
	// EffectPeriodicHeal heals troops in radius every tick (Healing).
	EffectPeriodicHeal SpellEffect = "PERIODIC_HEAL"
	// EffectPeriodicDamage damages troops in radius every tick (Poison).
	EffectPeriodicDamage SpellEffect = "PERIODIC_DAMAGE"
)

// SpellLevelStats holds the stats of a spell at one level. Only the fields
// relevant to the spell's effect variant are set.
type SpellLevelStats struct {
	Level              int     `json:"level"`
	Radius             float64 `json:"radius"`
	TotalDamage        float64 `json:"total_damage,omitempty"`
	DamagePercent      float64 `json:"damage_percent,omitempty"`
	HealingPerSecond   float64 `json:"healing_per_second,omitempty"`
	MaxDamagePerSecond float64 `json:"max_damage_per_second,omitempty"`
	Duration           float64 `json:"duration,omitempty"` // seconds
}

// SpellDefinition holds all the static data for a specific spell.
type SpellDefinition struct {
	Name   string            `json:"name"`
	Effect SpellEffect       `json:"effect"`
	Levels []SpellLevelStats `json:"levels"`
}

// Instant reports whether the spell resolves entirely at cast time.
func (d SpellDefinition) Instant() bool {
	return d.Effect == EffectFlatSplit || d.Effect == EffectPercentPerTarget
}

// StatsForLevel returns the stats for the given level, or false when the
// level has no definition.
func (d SpellDefinition) StatsForLevel(level int) (SpellLevelStats, bool) {
	for _, s := range d.Levels {
		if s.Level == level {
			return s, true
		}
	}
	return SpellLevelStats{}, false
}

// SpellLibrary is the library of all spell definitions, keyed by name.
var SpellLibrary map[string]SpellDefinition
