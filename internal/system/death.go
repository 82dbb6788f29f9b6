// internal/system/death.go
package system

import (
	"fmt"
	"math"

	"go-village-battle/internal/component"
	"go-village-battle/internal/config"
	"go-village-battle/internal/utils"
	"go-village-battle/pkg/geom"
)

// DeathSpawns вычисляет дочерние войска, появляющиеся на месте гибели
// (голем -> големиты, падающий страж -> щенки). Пустой срез, если у вида
// нет посмертных спавнов.
//
// Каждый спавн получает floor(0.2*maxHp) здоровья и floor(0.3*baseDps)
// урона, наследует уровень/полёт/дальность/скорость родителя и появляется
// рядом с ним с независимым случайным смещением по каждой оси.
func DeathSpawns(dead *component.DeployedTroop, rng *utils.PRNGService) []*component.DeployedTroop {
	if dead == nil || dead.DeathSpawnName == "" || dead.DeathSpawnCount <= 0 {
		return nil
	}

	spawnHP := math.Floor(dead.MaxHP * config.DeathSpawnHPFactor)
	spawnDPS := math.Floor(dead.BaseDPS * config.DeathSpawnDPSFactor)

	spawns := make([]*component.DeployedTroop, 0, dead.DeathSpawnCount)
	for i := 0; i < dead.DeathSpawnCount; i++ {
		spawns = append(spawns, &component.DeployedTroop{
			// Id выводится из родительского: уникален внутри сессии.
			ID:            fmt.Sprintf("%s-spawn-%d", dead.ID, i),
			Species:       component.Species(dead.DeathSpawnName),
			Level:         dead.Level,
			CurrentHP:     spawnHP,
			MaxHP:         spawnHP,
			X:             dead.X + rng.UnitOffset(config.DeathSpawnOffsetRange),
			Y:             dead.Y + rng.UnitOffset(config.DeathSpawnOffsetRange),
			State:         component.TroopStateIdle,
			DPS:           spawnDPS,
			BaseDPS:       spawnDPS,
			AttackRange:   dead.AttackRange,
			MovementSpeed: dead.MovementSpeed,
			IsFlying:      dead.IsFlying,
		})
	}
	return spawns
}

// ApplyDeathDamage наносит плоский посмертный урон каждому неразрушенному
// зданию в радиусе от точки гибели. No-op, если у вида не заданы и урон,
// и радиус.
func ApplyDeathDamage(dead *component.DeployedTroop,
	buildings []*component.BattleBuilding, defenses []*component.ActiveDefense) {

	if dead == nil || dead.DeathDamage <= 0 || dead.DeathDamageRadius <= 0 {
		return
	}

	for _, b := range buildings {
		if b.IsDestroyed {
			continue
		}
		if geom.InRadius(dead.X, dead.Y, b.X, b.Y, dead.DeathDamageRadius) {
			ApplyBuildingDamage(b, defenses, dead.DeathDamage)
		}
	}
}
