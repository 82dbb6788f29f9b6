// internal/system/special.go
package system

import (
	"go-village-battle/internal/component"
	"go-village-battle/internal/config"
	"go-village-battle/pkg/geom"
)

// ProcessSpecial выполняет пер-видовую спец-механику войска за один тик.
// Возвращает true, если обработчик полностью владеет разрешением атаки на
// этот тик (обычный пер-юнитовый урон должен быть пропущен), и false, если
// стандартная атака всё ещё применяется (обработчик мог лишь подправить
// состояние, например dps).
//
// Отсутствующие опциональные поля трактуются как ноль/дефолт и никогда не
// приводят к панике.
func ProcessSpecial(troop *component.DeployedTroop, troops []*component.DeployedTroop,
	buildings []*component.BattleBuilding, defenses []*component.ActiveDefense, deltaMs float64) bool {

	if troop == nil || troop.State == component.TroopStateDead {
		return false
	}

	switch troop.Species {
	case component.SpeciesWallBreaker:
		return processWallBreaker(troop, buildings, defenses, deltaMs)
	case component.SpeciesGoblin:
		return processGoblin(troop, buildings, defenses, deltaMs)
	case component.SpeciesHealer:
		return processHealer(troop, troops, deltaMs)
	case component.SpeciesBabyDragon:
		return processBabyDragon(troop, troops)
	case component.SpeciesMiner:
		return processMiner(troop)
	case component.SpeciesElectroDragon:
		return processElectroDragon(troop, buildings, defenses, deltaMs)
	case component.SpeciesValkyrie:
		return processValkyrie(troop, buildings, defenses, deltaMs)
	default:
		// Вид без спец-механики: обычное разрешение атаки.
		return false
	}
}

// processWallBreaker: у живой цели наносит dps*mult*dt, где множитель
// применяется только к стенам, и сразу самоуничтожается — независимо от
// того, выжила ли цель.
func processWallBreaker(troop *component.DeployedTroop,
	buildings []*component.BattleBuilding, defenses []*component.ActiveDefense, deltaMs float64) bool {

	if troop.State != component.TroopStateAttacking || troop.TargetID == "" {
		return true
	}
	target := findBuilding(buildings, troop.TargetID)
	if target == nil || target.IsDestroyed {
		return true
	}

	mult := 1.0
	if target.Category == component.CategoryWall {
		mult = orDefault(troop.WallDamageMultiplier, config.DefaultWallDamageMultiplier)
	}
	ApplyBuildingDamage(target, defenses, troop.DPS*mult*deltaMs/1000)

	// Подрывник расходуется при взрыве.
	troop.CurrentHP = 0
	troop.State = component.TroopStateDead

	return true
}

// processGoblin: удвоенный (по умолчанию) урон по ресурсным зданиям и ратуше.
func processGoblin(troop *component.DeployedTroop,
	buildings []*component.BattleBuilding, defenses []*component.ActiveDefense, deltaMs float64) bool {

	if troop.State != component.TroopStateAttacking || troop.TargetID == "" {
		return false
	}
	target := findBuilding(buildings, troop.TargetID)
	if target == nil || target.IsDestroyed {
		return false
	}

	mult := 1.0
	if target.Category == component.CategoryResource || target.Category == component.CategoryTownHall {
		mult = orDefault(troop.ResourceDamageMultiplier, config.DefaultResourceDamageMultiplier)
	}
	ApplyBuildingDamage(target, defenses, troop.DPS*mult*deltaMs/1000)

	return true
}

// processHealer: урона не наносит. Лечит каждое живое наземное войско в
// радиусе, кроме себя и других целителей. Герои получают половину лечения,
// войска под эффектом healingNerfed пропускаются целиком.
func processHealer(troop *component.DeployedTroop, troops []*component.DeployedTroop, deltaMs float64) bool {
	radius := orDefault(troop.HealRadius, config.DefaultHealRadius)

	for _, other := range troops {
		if other.ID == troop.ID || !other.Alive() {
			continue
		}
		if other.Species == component.SpeciesHealer || other.IsFlying || other.HealingNerfed {
			continue
		}
		if !geom.InRadius(troop.X, troop.Y, other.X, other.Y, radius) {
			continue
		}

		amount := troop.HealPerSecond * deltaMs / 1000
		if other.IsHero {
			amount *= config.HeroHealFactor
		}
		HealTroop(other, amount)
	}

	return true
}

// processBabyDragon: дракончик приходит в ярость, когда рядом (4.5 тайла)
// нет других живых летающих союзников, и успокаивается, когда они есть.
// Стандартная атака выполняется с результирующим dps.
func processBabyDragon(troop *component.DeployedTroop, troops []*component.DeployedTroop) bool {
	alone := true
	for _, other := range troops {
		if other.ID == troop.ID || !other.Alive() || !other.IsFlying {
			continue
		}
		if geom.InRadius(troop.X, troop.Y, other.X, other.Y, config.BabyDragonEnrageRadius) {
			alone = false
			break
		}
	}

	// Идемпотентно: dps дракончика выставляется только этим правилом.
	if alone {
		troop.IsEnraged = true
		troop.DPS = troop.BaseDPS * config.BabyDragonEnrageMultiplier
	} else {
		troop.IsEnraged = false
		troop.DPS = troop.BaseDPS
	}

	return false
}

// processMiner: шахтёр неуязвим под землёй, пока двигается.
func processMiner(troop *component.DeployedTroop) bool {
	troop.IsBurrowed = troop.State == component.TroopStateMoving
	return false
}

// processElectroDragon: два независимых шага за тик. Шаг 1 — полный урон по
// основной цели (стандартная формула). Шаг 2 — цепная молния: от позиции
// основной цели к ближайшему ещё не задетому зданию в пределах 4 тайлов,
// с затуханием урона на каждом прыжке.
func processElectroDragon(troop *component.DeployedTroop,
	buildings []*component.BattleBuilding, defenses []*component.ActiveDefense, deltaMs float64) bool {

	if troop.State != component.TroopStateAttacking || troop.TargetID == "" {
		return true
	}
	primary := findBuilding(buildings, troop.TargetID)
	if primary == nil || primary.IsDestroyed {
		return true
	}

	baseDamage := troop.DPS * deltaMs / 1000
	ApplyBuildingDamage(primary, defenses, baseDamage)

	decay := orDefault(troop.ChainDamageDecay, config.DefaultChainDamageDecay)
	hops := orDefaultInt(troop.ChainTargets, config.DefaultChainTargets)

	hit := map[string]bool{primary.InstanceID: true}
	fromX, fromY := primary.X, primary.Y
	currentDamage := baseDamage * decay

	for hop := 0; hop < hops; hop++ {
		next := nearestBuildingExcept(buildings, fromX, fromY, config.ElectroChainRadius, hit)
		if next == nil {
			break
		}
		ApplyBuildingDamage(next, defenses, currentDamage)
		hit[next.InstanceID] = true
		fromX, fromY = next.X, next.Y
		currentDamage *= decay
	}

	return true
}

// processValkyrie: круговой удар — dps*dt каждому неразрушенному зданию
// в радиусе вокруг позиции самой валькирии, не номинальной цели.
func processValkyrie(troop *component.DeployedTroop,
	buildings []*component.BattleBuilding, defenses []*component.ActiveDefense, deltaMs float64) bool {

	if troop.State != component.TroopStateAttacking {
		return true
	}

	radius := orDefault(troop.SplashRadius, config.DefaultSplashRadius)
	damage := troop.DPS * deltaMs / 1000
	for _, b := range buildings {
		if b.IsDestroyed {
			continue
		}
		if geom.InRadius(troop.X, troop.Y, b.X, b.Y, radius) {
			ApplyBuildingDamage(b, defenses, damage)
		}
	}

	return true
}

func findBuilding(buildings []*component.BattleBuilding, instanceID string) *component.BattleBuilding {
	for _, b := range buildings {
		if b.InstanceID == instanceID {
			return b
		}
	}
	return nil
}

// nearestBuildingExcept ищет ближайшее неразрушенное здание в радиусе,
// исключая уже задетые.
func nearestBuildingExcept(buildings []*component.BattleBuilding, x, y, radius float64,
	except map[string]bool) *component.BattleBuilding {

	var nearest *component.BattleBuilding
	minDist := radius + 1
	for _, b := range buildings {
		if b.IsDestroyed || except[b.InstanceID] {
			continue
		}
		dist := geom.Distance(x, y, b.X, b.Y)
		if dist <= radius && dist < minDist {
			minDist = dist
			nearest = b
		}
	}
	return nearest
}
