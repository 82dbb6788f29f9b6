// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-village-battle/internal/app"
	"go-village-battle/internal/config"
	"go-village-battle/internal/defs"
	"go-village-battle/internal/system"
	"go-village-battle/internal/ui"
)

// AppGame — хост-цикл: один вызов Battle.Update на кадр с прошедшей дельтой.
type AppGame struct {
	battle         *app.Battle
	renderSystem   *system.RenderSystem
	hud            *ui.HUD
	deployables    []string // имена войск и заклинаний в порядке горячих клавиш
	selected       string
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaMs := float64(now.Sub(a.lastUpdateTime).Microseconds()) / 1000
	if deltaMs > config.MaxDeltaMs {
		deltaMs = config.MaxDeltaMs
	}
	a.lastUpdateTime = now

	a.handleInput()
	a.battle.Update(deltaMs)
	return nil
}

func (a *AppGame) handleInput() {
	// Клавиши 1-9 выбирают юнит/заклинание, клик по полю высаживает.
	digits := []ebiten.Key{
		ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
		ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
	}
	for i, key := range digits {
		if i < len(a.deployables) && inpututil.IsKeyJustPressed(key) {
			a.selected = a.deployables[i]
		}
	}

	if a.selected == "" {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py := ebiten.CursorPosition()
		x, y := system.ScreenToTile(px, py)
		if _, isSpell := defs.SpellLibrary[a.selected]; isSpell {
			a.battle.DeploySpell(a.selected, x, y)
		} else {
			a.battle.DeployTroop(a.selected, x, y)
		}
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	a.renderSystem.Draw(screen)
	a.hud.Draw(screen, a.battle.State, a.selected)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// demoConfig — тренировочная деревня и армия для ручной игры.
func demoConfig() app.BattleConfig {
	return app.BattleConfig{
		Layout: []app.BuildingPlacement{
			{Name: "Town Hall", X: 20, Y: 15},
			{Name: "Gold Mine", X: 14, Y: 12},
			{Name: "Elixir Collector", X: 26, Y: 12},
			{Name: "Gold Storage", X: 16, Y: 18},
			{Name: "Elixir Storage", X: 24, Y: 18},
			{Name: "Cannon", X: 17, Y: 14},
			{Name: "Archer Tower", X: 23, Y: 14},
			{Name: "Mortar", X: 20, Y: 18},
			{Name: "Air Defense", X: 20, Y: 12},
			{Name: "Wizard Tower", X: 14, Y: 16},
			{Name: "Inferno Tower", X: 26, Y: 16},
			{Name: "Wall", X: 18, Y: 13}, {Name: "Wall", X: 19, Y: 13},
			{Name: "Wall", X: 20, Y: 13}, {Name: "Wall", X: 21, Y: 13},
			{Name: "Wall", X: 22, Y: 13},
		},
		Army: map[string]int{
			"Barbarian":    10,
			"Archer":       10,
			"Giant":        4,
			"Wall Breaker": 4,
			"Goblin":       8,
			"Healer":       2,
			"Baby Dragon":  2,
			"Valkyrie":     3,
			"Golem":        1,
		},
		Spells: map[string]int{
			"Lightning": 2,
			"Healing":   2,
			"Poison":    1,
		},
	}
}

// loadDefinitions читает библиотеки из JSON; если файлов нет (например,
// бинарь запущен вне дерева репозитория), берутся встроенные дефолты.
func loadDefinitions() {
	err := defs.LoadTroopDefinitions("internal/defs/assets/troops.json")
	if err == nil {
		err = defs.LoadSpellDefinitions("internal/defs/assets/spells.json")
	}
	if err == nil {
		err = defs.LoadBuildingDefinitions("internal/defs/assets/buildings.json")
	}
	if err != nil {
		log.Printf("definition files unavailable (%v), using built-in defaults", err)
		defs.RegisterDefaults()
	}
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	loadDefinitions()

	battle := app.NewBattle(demoConfig())

	var deployables []string
	for name := range battle.State.AvailableTroops {
		deployables = append(deployables, name)
	}
	for name := range battle.State.AvailableSpells {
		deployables = append(deployables, name)
	}
	sort.Strings(deployables)

	selected := ""
	if len(deployables) > 0 {
		selected = deployables[0]
	}

	appGame := &AppGame{
		battle:         battle,
		renderSystem:   system.NewRenderSystem(battle.State),
		hud:            ui.NewHUD(),
		deployables:    deployables,
		selected:       selected,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Village Battle")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
