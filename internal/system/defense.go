// internal/system/defense.go
package system

import (
	"log"

	"go-village-battle/internal/component"
	"go-village-battle/internal/defs"
	"go-village-battle/pkg/geom"
)

// DefenseSystem управляет ответным огнём обороны защитника: выбор цели,
// перезарядка по attackSpeed, одиночный и площадной урон.
type DefenseSystem struct {
	state *component.BattleState
}

func NewDefenseSystem(state *component.BattleState) *DefenseSystem {
	return &DefenseSystem{state: state}
}

// Update проверяет каждую живую оборону: есть ли цель, перезарядилась ли
// пушка. gameTime — игровое время боя в секундах.
func (s *DefenseSystem) Update(gameTime float64) {
	for _, d := range s.state.Defenses {
		if d.IsDestroyed {
			continue
		}

		stats := s.defenseStats(d)
		if stats == nil {
			continue
		}

		target := s.state.FindTroop(d.TargetTroopID)
		if !s.targetable(d, stats, target) {
			target = s.acquireTarget(d, stats)
			if target == nil {
				d.TargetTroopID = ""
				continue
			}
			d.TargetTroopID = target.ID
		}

		cooldown := 1.0 / stats.AttackSpeed
		if gameTime-d.LastAttackTime < cooldown {
			continue
		}
		d.LastAttackTime = gameTime

		// Урон за выстрел: dps, размазанный по скорострельности.
		shotDamage := d.DPS / stats.AttackSpeed

		if stats.SplashRadius > 0 {
			for _, t := range s.state.Troops {
				if !t.Alive() || t.IsBurrowed {
					continue
				}
				if geom.InRadius(target.X, target.Y, t.X, t.Y, stats.SplashRadius) {
					ApplyTroopDamage(t, shotDamage)
				}
			}
		} else {
			ApplyTroopDamage(target, shotDamage)
		}

		// Адская башня выжигает цель: лечение на неё больше не действует.
		if stats.NerfsHealing {
			target.HealingNerfed = true
		}
	}
}

// defenseStats достаёт боевые параметры обороны из библиотеки определений.
// Оборона без определения молча бездействует.
func (s *DefenseSystem) defenseStats(d *component.ActiveDefense) *defs.DefenseStats {
	def, ok := defs.BuildingLibrary[d.Name]
	if !ok {
		log.Printf("DefenseSystem: no building definition for %q", d.Name)
		return nil
	}
	stats, ok := def.StatsForLevel(d.Level)
	if !ok || stats.Defense == nil || stats.Defense.AttackSpeed <= 0 {
		return nil
	}
	return stats.Defense
}

// targetable проверяет, может ли оборона продолжать вести текущую цель.
func (s *DefenseSystem) targetable(d *component.ActiveDefense, stats *defs.DefenseStats,
	t *component.DeployedTroop) bool {

	if t == nil || !t.Alive() || t.IsBurrowed {
		return false
	}
	if t.IsFlying && !stats.HitsAir {
		return false
	}
	if !t.IsFlying && !stats.HitsGround {
		return false
	}
	dist := geom.Distance(d.X, d.Y, t.X, t.Y)
	return dist >= stats.MinRange && dist <= stats.MaxRange
}

func (s *DefenseSystem) acquireTarget(d *component.ActiveDefense, stats *defs.DefenseStats) *component.DeployedTroop {
	var nearest *component.DeployedTroop
	minDist := 0.0
	for _, t := range s.state.Troops {
		if !s.targetable(d, stats, t) {
			continue
		}
		dist := geom.Distance(d.X, d.Y, t.X, t.Y)
		if nearest == nil || dist < minDist {
			nearest = t
			minDist = dist
		}
	}
	return nearest
}
