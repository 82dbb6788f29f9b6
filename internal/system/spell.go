// internal/system/spell.go
package system

import (
	"log"

	"github.com/google/uuid"

	"go-village-battle/internal/component"
	"go-village-battle/internal/defs"
	"go-village-battle/pkg/geom"
)

// DeploySpell применяет заклинание по имени в точке (x, y). Возвращает nil,
// если заклинания нет среди доступных, его счётчик исчерпан или для его
// уровня нет определения — в этом случае состояние не меняется и ресурс не
// расходуется. Мгновенные заклинания разрешаются сразу и не создают
// ActiveSpell; длительные добавляют новое ActiveSpell без немедленного урона.
func DeploySpell(state *component.BattleState, spellName string, x, y float64) *component.BattleState {
	if state == nil {
		return nil
	}
	count, ok := state.AvailableSpells[spellName]
	if !ok || count <= 0 {
		return nil
	}
	def, ok := defs.SpellLibrary[spellName]
	if !ok {
		return nil
	}
	level := state.SpellLevels[spellName]
	if level == 0 {
		level = 1
	}
	stats, ok := def.StatsForLevel(level)
	if !ok {
		return nil
	}

	state.AvailableSpells[spellName] = count - 1

	switch def.Effect {
	case defs.EffectFlatSplit:
		ApplyLightningDamage(state.Buildings, state.Defenses, x, y, stats.Radius, stats.TotalDamage)
	case defs.EffectPercentPerTarget:
		ApplyEarthquakeDamage(state.Buildings, state.Defenses, x, y, stats.Radius, stats.DamagePercent)
	default:
		state.Spells = append(state.Spells, &component.ActiveSpell{
			ID:                uuid.NewString(),
			Name:              def.Name,
			Level:             level,
			X:                 x,
			Y:                 y,
			Radius:            stats.Radius,
			RemainingDuration: stats.Duration,
			TotalDuration:     stats.Duration,
		})
	}

	return state
}

// ApplyLightningDamage делит totalDamage поровну между всеми неразрушенными
// зданиями в радиусе (граница включительно). Ноль подходящих целей — no-op.
func ApplyLightningDamage(buildings []*component.BattleBuilding, defenses []*component.ActiveDefense,
	x, y, radius, totalDamage float64) {

	var targets []*component.BattleBuilding
	for _, b := range buildings {
		if b.IsDestroyed {
			continue
		}
		if geom.InRadius(x, y, b.X, b.Y, radius) {
			targets = append(targets, b)
		}
	}
	if len(targets) == 0 {
		return
	}

	share := totalDamage / float64(len(targets))
	for _, b := range targets {
		ApplyBuildingDamage(b, defenses, share)
	}
}

// ApplyEarthquakeDamage наносит каждому неразрушенному зданию в радиусе
// maxHp*pct/100 независимо — урон не делится между целями.
func ApplyEarthquakeDamage(buildings []*component.BattleBuilding, defenses []*component.ActiveDefense,
	x, y, radius, pct float64) {

	for _, b := range buildings {
		if b.IsDestroyed {
			continue
		}
		if geom.InRadius(x, y, b.X, b.Y, radius) {
			ApplyBuildingDamage(b, defenses, b.MaxHP*pct/100)
		}
	}
}

// TickSpells продвигает все активные заклинания на deltaMs. Возвращает новые
// внешние коллекции (replace-on-return); заклинания с неположительным
// остатком длительности молча отбрасываются.
func TickSpells(spells []*component.ActiveSpell, troops []*component.DeployedTroop,
	buildings []*component.BattleBuilding, defenses []*component.ActiveDefense, deltaMs float64) (
	[]*component.ActiveSpell, []*component.DeployedTroop,
	[]*component.BattleBuilding, []*component.ActiveDefense) {

	dt := deltaMs / 1000
	remaining := make([]*component.ActiveSpell, 0, len(spells))

	for _, spell := range spells {
		def, ok := defs.SpellLibrary[spell.Name]
		if !ok {
			log.Printf("TickSpells: no definition for active spell %q, dropping", spell.Name)
			continue
		}
		stats, ok := def.StatsForLevel(spell.Level)
		if !ok {
			log.Printf("TickSpells: no level %d stats for spell %q, dropping", spell.Level, spell.Name)
			continue
		}

		switch def.Effect {
		case defs.EffectPeriodicHeal:
			for _, t := range troops {
				if !t.Alive() {
					continue
				}
				if geom.InRadius(spell.X, spell.Y, t.X, t.Y, spell.Radius) {
					HealTroop(t, stats.HealingPerSecond*dt)
				}
			}
		case defs.EffectPeriodicDamage:
			for _, t := range troops {
				if !t.Alive() {
					continue
				}
				if geom.InRadius(spell.X, spell.Y, t.X, t.Y, spell.Radius) {
					ApplyTroopDamage(t, stats.MaxDamagePerSecond*dt)
					if t.CurrentHP == 0 {
						t.State = component.TroopStateDead
					}
				}
			}
		}

		spell.RemainingDuration -= dt
		if spell.RemainingDuration > 0 {
			remaining = append(remaining, spell)
		}
	}

	outTroops := make([]*component.DeployedTroop, len(troops))
	copy(outTroops, troops)
	outBuildings := make([]*component.BattleBuilding, len(buildings))
	copy(outBuildings, buildings)
	outDefenses := make([]*component.ActiveDefense, len(defenses))
	copy(outDefenses, defenses)

	return remaining, outTroops, outBuildings, outDefenses
}
