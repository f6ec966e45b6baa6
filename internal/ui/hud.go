// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD — текстовый блок с характеристиками игрока в левом верхнем углу
type HUD struct {
	face      font.Face
	healthBar *HealthBar
	debug     bool
}

func NewHUD(face font.Face, debug bool) *HUD {
	return &HUD{
		face:      face,
		healthBar: NewHealthBar(config.HUDOffsetX, config.HUDOffsetY, config.HealthBarWidth, config.HealthBarHeight),
		debug:     debug,
	}
}

func (h *HUD) Update(world *entity.World, deltaTime float64) {
	h.healthBar.Update(world.Player.Health.Fraction(), deltaTime)
}

// Lines возвращает строки HUD для текущего состояния мира
func (h *HUD) Lines(world *entity.World) []string {
	p := world.Player
	lines := []string{
		fmt.Sprintf("HP: %d/%d", p.Health.Current, p.Health.Max),
		fmt.Sprintf("Points: %d", p.Points),
		fmt.Sprintf("Damage: %d", p.Damage),
		fmt.Sprintf("Fire rate: %.2f/s", 1/p.FireInterval()),
		fmt.Sprintf("Speed: %.0f", p.Speed),
		fmt.Sprintf("Coins: %d", p.Coins),
		fmt.Sprintf("Level: %d", world.Level),
	}
	if h.debug {
		lines = append(lines, fmt.Sprintf("Enemies: %d  Bullets: %d/%d",
			len(world.Enemies), len(p.Bullets), len(world.EnemyBullets)))
		if boss, ok := world.Boss(); ok {
			lines = append(lines, fmt.Sprintf("Boss: %s %.0f%%", boss.State(), boss.AttackProgress()*100))
		}
	}
	return lines
}

func (h *HUD) Draw(screen *ebiten.Image, world *entity.World) {
	h.healthBar.Draw(screen)

	y := config.HUDOffsetY + config.HealthBarHeight + config.HUDLineHeight
	for _, line := range h.Lines(world) {
		text.Draw(screen, line, h.face, config.HUDOffsetX, y, config.TextLightColor)
		y += config.HUDLineHeight
	}
}
