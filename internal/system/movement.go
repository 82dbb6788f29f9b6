// internal/system/movement.go
package system

import (
	"go-village-battle/internal/component"
	"go-village-battle/internal/config"
	"go-village-battle/pkg/geom"
)

// BuildingHitboxRadius — эффективный радиус корпуса здания в тайлах.
// Дальность атаки войска отсчитывается до корпуса, а не до центра.
const BuildingHitboxRadius = 0.7

// MovementSystem выбирает цели и ведёт войска по прямой. Поиска пути нет:
// проверка дистанции и движение по прямой линии.
type MovementSystem struct {
	state *component.BattleState
}

func NewMovementSystem(state *component.BattleState) *MovementSystem {
	return &MovementSystem{state: state}
}

func (s *MovementSystem) Update(deltaMs float64) {
	dt := deltaMs / 1000
	for _, t := range s.state.Troops {
		if !t.Alive() {
			continue
		}
		if t.Species == component.SpeciesHealer {
			s.escortTroops(t, dt)
			continue
		}
		s.advanceOnBuilding(t, dt)
	}
}

// advanceOnBuilding держит у войска живую цель и либо сближается с ней,
// либо переводит войско в состояние атаки.
func (s *MovementSystem) advanceOnBuilding(t *component.DeployedTroop, dt float64) {
	target := s.state.FindBuilding(t.TargetID)
	if target == nil || target.IsDestroyed {
		target = s.acquireTarget(t)
		if target == nil {
			t.TargetID = ""
			t.State = component.TroopStateIdle
			return
		}
		t.TargetID = target.InstanceID
	}

	if geom.InRadius(t.X, t.Y, target.X, target.Y, t.AttackRange+BuildingHitboxRadius) {
		t.State = component.TroopStateAttacking
		return
	}

	t.State = component.TroopStateMoving
	moveToward(t, target.X, target.Y, dt)
}

// acquireTarget возвращает ближайшее подходящее здание с учётом пер-видовых
// предпочтений: подрывники идут к стенам, гоблины — к ресурсам и ратуше,
// остальные стены игнорируют.
func (s *MovementSystem) acquireTarget(t *component.DeployedTroop) *component.BattleBuilding {
	var preferred func(*component.BattleBuilding) bool
	switch t.Species {
	case component.SpeciesWallBreaker:
		preferred = func(b *component.BattleBuilding) bool {
			return b.Category == component.CategoryWall
		}
	case component.SpeciesGoblin:
		preferred = func(b *component.BattleBuilding) bool {
			return b.Category == component.CategoryResource || b.Category == component.CategoryTownHall
		}
	}

	if preferred != nil {
		if b := s.nearestBuilding(t, preferred); b != nil {
			return b
		}
	}
	// Общий случай: ближайшее не-стенное здание.
	if b := s.nearestBuilding(t, func(b *component.BattleBuilding) bool {
		return b.Category != component.CategoryWall
	}); b != nil {
		return b
	}
	// Остались только стены.
	return s.nearestBuilding(t, func(*component.BattleBuilding) bool { return true })
}

func (s *MovementSystem) nearestBuilding(t *component.DeployedTroop,
	eligible func(*component.BattleBuilding) bool) *component.BattleBuilding {

	var nearest *component.BattleBuilding
	minDist := 0.0
	for _, b := range s.state.Buildings {
		if b.IsDestroyed || !eligible(b) {
			continue
		}
		dist := geom.Distance(t.X, t.Y, b.X, b.Y)
		if nearest == nil || dist < minDist {
			nearest = b
			minDist = dist
		}
	}
	return nearest
}

// escortTroops ведёт целителя за ближайшим подопечным. Целитель никогда не
// атакует; его состояние — только idle/moving.
func (s *MovementSystem) escortTroops(t *component.DeployedTroop, dt float64) {
	var ward *component.DeployedTroop
	minDist := 0.0
	for _, other := range s.state.Troops {
		if other.ID == t.ID || !other.Alive() || other.IsFlying {
			continue
		}
		if other.Species == component.SpeciesHealer {
			continue
		}
		dist := geom.Distance(t.X, t.Y, other.X, other.Y)
		if ward == nil || dist < minDist {
			ward = other
			minDist = dist
		}
	}

	t.TargetID = ""
	if ward == nil {
		t.State = component.TroopStateIdle
		return
	}
	if geom.InRadius(t.X, t.Y, ward.X, ward.Y, orDefault(t.HealRadius, config.DefaultHealRadius)) {
		t.State = component.TroopStateIdle
		return
	}
	t.State = component.TroopStateMoving
	moveToward(t, ward.X, ward.Y, dt)
}

func moveToward(t *component.DeployedTroop, tx, ty, dt float64) {
	dist := geom.Distance(t.X, t.Y, tx, ty)
	if dist == 0 {
		return
	}
	step := t.MovementSpeed * dt
	if step >= dist {
		t.X = tx
		t.Y = ty
		return
	}
	t.X += (tx - t.X) / dist * step
	t.Y += (ty - t.Y) / dist * step
}
