// internal/component/battle_state.go
package component

// BattlePhase — фаза боевой сессии.
type BattlePhase string

const (
	PhaseActive BattlePhase = "active"
	PhaseEnded  BattlePhase = "ended"
)

// BattleState — всё изменяемое состояние одной боевой сессии. Внешние
// коллекции трактуются как replace-on-return; отдельные объекты внутри тика
// мутируются на месте.
type BattleState struct {
	SessionID string
	Phase     BattlePhase

	// TimeRemaining — оставшееся время боя в секундах.
	TimeRemaining      float64
	DestructionPercent float64
	Stars              int

	Troops    []*DeployedTroop
	Buildings []*BattleBuilding
	Defenses  []*ActiveDefense
	Spells    []*ActiveSpell

	LootGold   int
	LootElixir int

	// Остатки доступных для высадки войск/заклинаний, по имени.
	AvailableTroops map[string]int
	AvailableSpells map[string]int

	// Уровни заклинаний атакующего, по имени. Отсутствие записи = уровень 1.
	SpellLevels map[string]int
}

// FindBuilding возвращает здание по instance id, либо nil.
func (s *BattleState) FindBuilding(instanceID string) *BattleBuilding {
	for _, b := range s.Buildings {
		if b.InstanceID == instanceID {
			return b
		}
	}
	return nil
}

// FindDefense возвращает оборону, привязанную к зданию, либо nil.
func (s *BattleState) FindDefense(buildingInstanceID string) *ActiveDefense {
	for _, d := range s.Defenses {
		if d.BuildingInstanceID == buildingInstanceID {
			return d
		}
	}
	return nil
}

// FindTroop возвращает войско по id, либо nil.
func (s *BattleState) FindTroop(id string) *DeployedTroop {
	for _, t := range s.Troops {
		if t.ID == id {
			return t
		}
	}
	return nil
}
