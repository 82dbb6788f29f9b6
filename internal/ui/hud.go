// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-village-battle/internal/component"
	"go-village-battle/internal/config"
)

// HUD рисует строку состояния боя: таймер, процент разрушения, звёзды,
// добыча и выбранный для высадки юнит.
type HUD struct {
	face font.Face
}

func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

func (h *HUD) Draw(screen *ebiten.Image, state *component.BattleState, selected string) {
	line := fmt.Sprintf("time %3.0fs   destruction %5.1f%%   gold %d   elixir %d",
		state.TimeRemaining, state.DestructionPercent, state.LootGold, state.LootElixir)
	text.Draw(screen, line, h.face, 16, 20, config.TextLightColor)

	for i := 0; i < 3; i++ {
		c := config.DestroyedColor
		if i < state.Stars {
			c = config.StarColor
		}
		vector.DrawFilledCircle(screen, float32(16+i*22), 36, 8, c, true)
	}

	if selected != "" {
		left := state.AvailableTroops[selected] + state.AvailableSpells[selected]
		text.Draw(screen, fmt.Sprintf("deploy: %s (x%d)", selected, left),
			h.face, 16, 60, config.TextLightColor)
	}

	if state.Phase == component.PhaseEnded {
		summary := fmt.Sprintf("battle over: %d star(s), %.1f%% destruction",
			state.Stars, state.DestructionPercent)
		text.Draw(screen, summary, h.face, config.ScreenWidth/2-120, config.ScreenHeight/2, config.TextLightColor)
	}
}
