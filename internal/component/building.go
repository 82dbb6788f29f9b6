// internal/component/building.go
package component

// BuildingCategory — категория здания. Используется предпочтениями целей
// (гоблины, стенобои) и подсчётом добычи вместо сравнения имён подстрокой.
type BuildingCategory string

const (
	CategoryDefense  BuildingCategory = "defense"
	CategoryResource BuildingCategory = "resource"
	CategoryTownHall BuildingCategory = "townhall"
	CategoryWall     BuildingCategory = "wall"
	CategoryOther    BuildingCategory = "other"
)

// BattleBuilding — здание защитника в рамках одной боевой сессии.
type BattleBuilding struct {
	InstanceID string
	Name       string
	Category   BuildingCategory

	CurrentHP float64
	MaxHP     float64
	X, Y      float64

	IsDestroyed bool

	// Weight — вклад здания в процент разрушения.
	Weight float64

	// Добыча, выдаваемая при разрушении.
	LootGold   int
	LootElixir int
	Looted     bool
}

// ActiveDefense — боевая часть оборонительного здания. Слабая ссылка на
// BattleBuilding через BuildingInstanceID; оба всегда должны совпадать по
// статусу разрушения.
type ActiveDefense struct {
	BuildingInstanceID string
	Name               string
	Level              int

	HP   float64
	X, Y float64

	TargetTroopID string
	DPS           float64
	MinRange      float64
	MaxRange      float64

	// AttackSpeed — выстрелов в секунду; LastAttackTime — игровое время
	// последнего выстрела в секундах.
	AttackSpeed    float64
	LastAttackTime float64

	IsDestroyed bool
}
