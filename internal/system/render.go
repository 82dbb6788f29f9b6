// internal/system/render.go
package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-village-battle/internal/component"
	"go-village-battle/internal/config"
	"go-village-battle/internal/defs"
)

// RenderSystem рисует поле боя. Чисто презентационный слой: симуляция о нём
// не знает.
type RenderSystem struct {
	state *component.BattleState
}

func NewRenderSystem(state *component.BattleState) *RenderSystem {
	return &RenderSystem{state: state}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	// Сначала здания, затем войска, поверх — области заклинаний.
	for _, b := range s.state.Buildings {
		x, y := tileToScreen(b.X, b.Y)
		half := float32(config.TileSize * 0.45)
		c := buildingColor(b)
		vector.DrawFilledRect(screen, x-half, y-half, half*2, half*2, c, true)
	}

	for _, t := range s.state.Troops {
		if t.State == component.TroopStateDead {
			continue
		}
		x, y := tileToScreen(t.X, t.Y)
		radius := float32(config.TileSize * 0.3)
		c := troopColor(t)
		if t.IsBurrowed {
			// Шахтёр под землёй: виден только след.
			radius *= 0.5
			c.A = 100
		}
		vector.DrawFilledCircle(screen, x, y, radius, c, true)
	}

	for _, spell := range s.state.Spells {
		x, y := tileToScreen(spell.X, spell.Y)
		radius := float32(spell.Radius * config.TileSize)
		vector.DrawFilledCircle(screen, x, y, radius, spellColor(spell.Name), true)
	}
}

func buildingColor(b *component.BattleBuilding) color.RGBA {
	if b.IsDestroyed {
		return config.DestroyedColor
	}
	switch b.Category {
	case component.CategoryWall:
		return config.WallColor
	case component.CategoryDefense:
		return config.DefenseColor
	case component.CategoryResource, component.CategoryTownHall:
		return config.ResourceColor
	default:
		return config.BuildingColor
	}
}

func troopColor(t *component.DeployedTroop) color.RGBA {
	switch {
	case t.IsHero:
		return config.HeroColor
	case t.IsFlying:
		return config.FlyingColor
	default:
		return config.TroopColor
	}
}

func spellColor(name string) color.RGBA {
	def, ok := defs.SpellLibrary[name]
	if ok && def.Effect == defs.EffectPeriodicDamage {
		return config.PoisonColor
	}
	return config.HealSpellColor
}

// tileToScreen переводит координаты поля (тайлы) в экранные пиксели.
func tileToScreen(tx, ty float64) (float32, float32) {
	return float32(config.FieldOffsetX + tx*config.TileSize),
		float32(config.FieldOffsetY + ty*config.TileSize)
}

// ScreenToTile — обратное преобразование, для кликов мыши.
func ScreenToTile(px, py int) (float64, float64) {
	return (float64(px) - config.FieldOffsetX) / config.TileSize,
		(float64(py) - config.FieldOffsetY) / config.TileSize
}
