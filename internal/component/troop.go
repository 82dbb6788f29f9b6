// internal/component/troop.go
package component

// TroopState — состояние войска на поле боя.
type TroopState string

const (
	TroopStateIdle      TroopState = "idle"
	TroopStateMoving    TroopState = "moving"
	TroopStateAttacking TroopState = "attacking"
	TroopStateDead      TroopState = "dead" // терминальное состояние
)

// Species — закрытое множество видов войск. Диспетчер спец-механик делает
// исчерпывающий switch по этому типу, а не по произвольной строке.
type Species string

const (
	SpeciesBarbarian     Species = "Barbarian"
	SpeciesArcher        Species = "Archer"
	SpeciesGiant         Species = "Giant"
	SpeciesWallBreaker   Species = "Wall Breaker"
	SpeciesGoblin        Species = "Goblin"
	SpeciesHealer        Species = "Healer"
	SpeciesBabyDragon    Species = "Baby Dragon"
	SpeciesMiner         Species = "Miner"
	SpeciesElectroDragon Species = "Electro Dragon"
	SpeciesValkyrie      Species = "Valkyrie"
	SpeciesBalloon       Species = "Balloon"
	SpeciesGolem         Species = "Golem"
	SpeciesGolemite      Species = "Golemite"
	SpeciesLavaHound     Species = "Lava Hound"
	SpeciesLavaPup       Species = "Lava Pup"
	SpeciesBarbarianKing Species = "Barbarian King"
)

// DeployedTroop — войско, высаженное атакующим. Принадлежит одной боевой
// сессии и мутируется каждый тик.
type DeployedTroop struct {
	ID      string
	Species Species
	Level   int

	CurrentHP float64
	MaxHP     float64
	X, Y      float64

	// TargetID — instance id здания-цели; пустая строка, если цели нет.
	TargetID string
	State    TroopState

	DPS           float64
	BaseDPS       float64
	AttackRange   float64
	MovementSpeed float64
	IsFlying      bool

	// Опциональные пер-видовые поля. Нулевое значение означает
	// "не задано": обработчики подставляют дефолты из config.
	WallDamageMultiplier     float64
	ResourceDamageMultiplier float64
	HealPerSecond            float64
	HealRadius               float64
	IsEnraged                bool
	IsBurrowed               bool
	ChainTargets             int
	ChainDamageDecay         float64
	SplashRadius             float64
	DeathSpawnName           string
	DeathSpawnCount          int
	DeathDamage              float64
	DeathDamageRadius        float64
	IsHero                   bool
	HealingNerfed            bool

	// DeathHandled гарантирует, что эффекты смерти (спавны, урон по области)
	// срабатывают ровно один раз — на переходе в состояние dead.
	DeathHandled bool
}

// Alive сообщает, участвует ли войско ещё в бою.
func (t *DeployedTroop) Alive() bool {
	return t.State != TroopStateDead && t.CurrentHP > 0
}
