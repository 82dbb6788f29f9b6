// internal/app/battle.go
package app

import (
	"log"

	"github.com/google/uuid"

	"go-village-battle/internal/component"
	"go-village-battle/internal/config"
	"go-village-battle/internal/defs"
	"go-village-battle/internal/event"
	"go-village-battle/internal/system"
	"go-village-battle/internal/utils"
)

// BuildingPlacement — одно здание в расстановке защитника.
type BuildingPlacement struct {
	Name  string
	Level int
	X, Y  float64
}

// BattleConfig описывает одну боевую сессию: расстановка защитника, армия и
// заклинания атакующего, лимит времени. Приходит из кампании или клановой
// войны; для ядра это непрозрачные данные.
type BattleConfig struct {
	Layout      []BuildingPlacement
	Army        map[string]int // имя войска -> количество
	TroopLevels map[string]int // имя войска -> уровень, по умолчанию 1
	Spells      map[string]int
	SpellLevels map[string]int
	Duration    float64 // секунды; 0 = config.BattleDuration
	Seed        int64   // 0 = недетерминированный
}

// Battle — оркестратор одной боевой сессии. Хост-цикл вызывает Update один
// раз за кадр с прошедшей дельтой; все операции синхронны.
type Battle struct {
	State           *component.BattleState
	MovementSystem  *system.MovementSystem
	DefenseSystem   *system.DefenseSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	troopLevels map[string]int
	gameTime    float64

	halfStarAwarded     bool
	townHallStarAwarded bool
	fullStarAwarded     bool
}

// NewBattle собирает боевое состояние из конфигурации. Здания без
// определения или без статов уровня пропускаются с записью в лог.
func NewBattle(cfg BattleConfig) *Battle {
	duration := cfg.Duration
	if duration == 0 {
		duration = config.BattleDuration
	}

	state := &component.BattleState{
		SessionID:       uuid.NewString(),
		Phase:           component.PhaseActive,
		TimeRemaining:   duration,
		AvailableTroops: make(map[string]int),
		AvailableSpells: make(map[string]int),
		SpellLevels:     make(map[string]int),
	}
	for name, count := range cfg.Army {
		state.AvailableTroops[name] = count
	}
	for name, count := range cfg.Spells {
		state.AvailableSpells[name] = count
	}
	for name, level := range cfg.SpellLevels {
		state.SpellLevels[name] = level
	}

	for _, placement := range cfg.Layout {
		def, ok := defs.BuildingLibrary[placement.Name]
		if !ok {
			log.Printf("NewBattle: no building definition for %q, skipping", placement.Name)
			continue
		}
		level := placement.Level
		if level == 0 {
			level = 1
		}
		stats, ok := def.StatsForLevel(level)
		if !ok {
			log.Printf("NewBattle: no level %d stats for building %q, skipping", level, placement.Name)
			continue
		}

		building := &component.BattleBuilding{
			InstanceID: uuid.NewString(),
			Name:       def.Name,
			Category:   component.BuildingCategory(def.Category),
			CurrentHP:  stats.HP,
			MaxHP:      stats.HP,
			X:          placement.X,
			Y:          placement.Y,
			Weight:     def.Weight,
			LootGold:   stats.LootGold,
			LootElixir: stats.LootElixir,
		}
		state.Buildings = append(state.Buildings, building)

		if stats.Defense != nil {
			state.Defenses = append(state.Defenses, &component.ActiveDefense{
				BuildingInstanceID: building.InstanceID,
				Name:               def.Name,
				Level:              level,
				HP:                 stats.HP,
				X:                  placement.X,
				Y:                  placement.Y,
				DPS:                stats.Defense.DPS,
				MinRange:           stats.Defense.MinRange,
				MaxRange:           stats.Defense.MaxRange,
				AttackSpeed:        stats.Defense.AttackSpeed,
			})
		}
	}

	dispatcher := event.NewDispatcher()
	b := &Battle{
		State:           state,
		MovementSystem:  system.NewMovementSystem(state),
		DefenseSystem:   system.NewDefenseSystem(state),
		EventDispatcher: dispatcher,
		Rng:             utils.NewPRNGService(cfg.Seed),
		troopLevels:     cfg.TroopLevels,
	}

	listener := &BattleEventListener{battle: b}
	dispatcher.Subscribe(event.BuildingDestroyed, listener)

	return b
}

// Update продвигает бой на deltaMs миллисекунд. Порядок внутри тика:
// заклинания, движение, спец-механики и стандартные атаки, ответный огонь,
// переходы смерти/разрушения, агрегаты и проверка конца боя.
func (b *Battle) Update(deltaMs float64) {
	if b.State.Phase != component.PhaseActive || deltaMs <= 0 {
		return
	}
	if deltaMs > config.MaxDeltaMs {
		deltaMs = config.MaxDeltaMs
	}
	dt := deltaMs / 1000
	b.gameTime += dt

	b.tickSpells(deltaMs)
	b.MovementSystem.Update(deltaMs)
	b.tickTroops(deltaMs)
	b.DefenseSystem.Update(b.gameTime)
	b.resolveDeaths()
	b.resolveDestroyed()
	b.updateAggregates()

	b.State.TimeRemaining -= dt
	if b.State.TimeRemaining < 0 {
		b.State.TimeRemaining = 0
	}
	b.checkEnd()
}

// DeployTroop высаживает одно войско в точке (x, y). Возвращает nil, если
// войска нет среди доступных или для него нет данных уровня; состояние при
// этом не меняется.
func (b *Battle) DeployTroop(name string, x, y float64) *component.DeployedTroop {
	if b.State.Phase != component.PhaseActive {
		return nil
	}
	count, ok := b.State.AvailableTroops[name]
	if !ok || count <= 0 {
		return nil
	}
	def, ok := defs.TroopLibrary[name]
	if !ok {
		return nil
	}
	level := 1
	if l, ok := b.levelFor(name); ok && l > 0 {
		level = l
	}
	stats, ok := def.StatsForLevel(level)
	if !ok {
		return nil
	}

	b.State.AvailableTroops[name] = count - 1

	troop := &component.DeployedTroop{
		ID:            uuid.NewString(),
		Species:       component.Species(def.Name),
		Level:         level,
		CurrentHP:     stats.HP,
		MaxHP:         stats.HP,
		X:             x,
		Y:             y,
		State:         component.TroopStateIdle,
		DPS:           stats.DPS,
		BaseDPS:       stats.DPS,
		AttackRange:   def.AttackRange,
		MovementSpeed: def.MovementSpeed,
		IsFlying:      def.IsFlying,
		IsHero:        def.IsHero,

		WallDamageMultiplier:     def.WallDamageMultiplier,
		ResourceDamageMultiplier: def.ResourceDamageMultiplier,
		HealPerSecond:            stats.HealPerSecond,
		HealRadius:               def.HealRadius,
		ChainTargets:             def.ChainTargets,
		ChainDamageDecay:         def.ChainDamageDecay,
		SplashRadius:             def.SplashRadius,
		DeathSpawnName:           def.DeathSpawnName,
		DeathSpawnCount:          def.DeathSpawnCount,
		DeathDamage:              def.DeathDamage,
		DeathDamageRadius:        def.DeathDamageRadius,
	}
	b.State.Troops = append(b.State.Troops, troop)
	b.EventDispatcher.Dispatch(event.Event{Type: event.TroopDeployed, Data: troop})

	return troop
}

// DeploySpell применяет заклинание в точке (x, y); вызывается слоем UI по
// тапу "заклинание, затем тайл". false означает «отклонено, состояние не
// изменилось, ресурс не израсходован».
func (b *Battle) DeploySpell(name string, x, y float64) bool {
	if b.State.Phase != component.PhaseActive {
		return false
	}
	if system.DeploySpell(b.State, name, x, y) == nil {
		return false
	}
	b.EventDispatcher.Dispatch(event.Event{Type: event.SpellDeployed, Data: name})
	return true
}

// GameTime возвращает игровое время боя в секундах.
func (b *Battle) GameTime() float64 {
	return b.gameTime
}

func (b *Battle) levelFor(name string) (int, bool) {
	if b.troopLevels == nil {
		return 0, false
	}
	l, ok := b.troopLevels[name]
	return l, ok
}

func (b *Battle) tickSpells(deltaMs float64) {
	before := b.State.Spells
	spells, troops, buildings, defenses := system.TickSpells(
		b.State.Spells, b.State.Troops, b.State.Buildings, b.State.Defenses, deltaMs)
	b.State.Spells = spells
	b.State.Troops = troops
	b.State.Buildings = buildings
	b.State.Defenses = defenses

	// Тихое истечение в движке, событие — для слушателей.
	if len(spells) == len(before) {
		return
	}
	kept := make(map[string]bool, len(spells))
	for _, s := range spells {
		kept[s.ID] = true
	}
	for _, s := range before {
		if !kept[s.ID] {
			b.EventDispatcher.Dispatch(event.Event{Type: event.SpellExpired, Data: s})
		}
	}
}

// tickTroops запускает спец-механики и, где обработчик не владеет атакой,
// стандартный одиночный урон по цели.
func (b *Battle) tickTroops(deltaMs float64) {
	for _, t := range b.State.Troops {
		if !t.Alive() {
			continue
		}
		if system.ProcessSpecial(t, b.State.Troops, b.State.Buildings, b.State.Defenses, deltaMs) {
			continue
		}
		if t.State != component.TroopStateAttacking || t.TargetID == "" {
			continue
		}
		target := b.State.FindBuilding(t.TargetID)
		if target == nil || target.IsDestroyed {
			continue
		}
		system.ApplyBuildingDamage(target, b.State.Defenses, t.DPS*deltaMs/1000)
	}
}

// resolveDeaths выполняет переходы в состояние dead. Эффекты смерти
// срабатывают ровно один раз на переходе: спавны добавляются в конец
// коллекции и начинают действовать со следующего тика.
func (b *Battle) resolveDeaths() {
	count := len(b.State.Troops)
	for i := 0; i < count; i++ {
		t := b.State.Troops[i]
		if t.CurrentHP > 0 || t.DeathHandled {
			continue
		}
		t.DeathHandled = true
		t.State = component.TroopStateDead
		t.TargetID = ""

		if spawns := system.DeathSpawns(t, b.Rng); len(spawns) > 0 {
			b.State.Troops = append(b.State.Troops, spawns...)
		}
		system.ApplyDeathDamage(t, b.State.Buildings, b.State.Defenses)
		b.EventDispatcher.Dispatch(event.Event{Type: event.TroopDied, Data: t})
	}
}

// resolveDestroyed сообщает о только что разрушенных зданиях.
func (b *Battle) resolveDestroyed() {
	for _, building := range b.State.Buildings {
		if building.IsDestroyed && !building.Looted {
			building.Looted = true
			b.EventDispatcher.Dispatch(event.Event{Type: event.BuildingDestroyed, Data: building})
		}
	}
}

// updateAggregates пересчитывает процент разрушения (по весам зданий) и
// начисляет звёзды.
func (b *Battle) updateAggregates() {
	var total, destroyed float64
	townHallDown := false
	for _, building := range b.State.Buildings {
		if building.Weight <= 0 {
			continue // стены не считаются
		}
		total += building.Weight
		if building.IsDestroyed {
			destroyed += building.Weight
			if building.Category == component.CategoryTownHall {
				townHallDown = true
			}
		}
	}
	if total > 0 {
		b.State.DestructionPercent = destroyed / total * 100
	}

	if !b.halfStarAwarded && b.State.DestructionPercent >= config.StarDestructionThreshold {
		b.halfStarAwarded = true
		b.awardStar()
	}
	if !b.townHallStarAwarded && townHallDown {
		b.townHallStarAwarded = true
		b.awardStar()
	}
	if !b.fullStarAwarded && b.State.DestructionPercent >= 100 {
		b.fullStarAwarded = true
		b.awardStar()
	}
}

func (b *Battle) awardStar() {
	b.State.Stars++
	b.EventDispatcher.Dispatch(event.Event{Type: event.StarAwarded, Data: b.State.Stars})
}

// checkEnd завершает бой на 100% разрушения, по таймеру или когда у
// атакующего не осталось ни резервов, ни живых войск, ни активных заклинаний.
func (b *Battle) checkEnd() {
	if b.State.DestructionPercent >= 100 {
		b.endBattle()
		return
	}
	if b.State.TimeRemaining <= 0 {
		b.endBattle()
		return
	}

	for _, count := range b.State.AvailableTroops {
		if count > 0 {
			return
		}
	}
	for _, count := range b.State.AvailableSpells {
		if count > 0 {
			return
		}
	}
	for _, t := range b.State.Troops {
		if t.Alive() {
			return
		}
	}
	if len(b.State.Spells) > 0 {
		return
	}
	b.endBattle()
}

func (b *Battle) endBattle() {
	b.State.Phase = component.PhaseEnded
	b.EventDispatcher.Dispatch(event.Event{Type: event.BattleEnded, Data: b.State})
}

// BattleEventListener агрегирует добычу по событиям разрушения.
type BattleEventListener struct {
	battle *Battle
}

func (l *BattleEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.BuildingDestroyed:
		building, ok := e.Data.(*component.BattleBuilding)
		if !ok {
			return
		}
		l.battle.State.LootGold += building.LootGold
		l.battle.State.LootElixir += building.LootElixir
	}
}
