// internal/state/menu_state.go
package state

import (
	"image/color"

	"go-survival-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState — главное меню с прокручиваемым фоном
type MenuState struct {
	sm  *StateMachine
	ctx *Context
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{sm: sm, ctx: ctx}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	m.ctx.Parallax.Update(deltaTime)
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.ctx.Game.Start()
		m.sm.SetState(NewGameState(m.sm, m.ctx))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.ctx.Parallax.Draw(screen)
	drawCentered(screen, "SURVIVAL", m.ctx.Fonts.Title, config.ScreenHeight/3, config.TextLightColor)
	drawCentered(screen, "Press Enter to start", m.ctx.Fonts.HUD, config.ScreenHeight/3+60, config.TextLightColor)
	drawCentered(screen, "WASD move, Space or mouse fire, P shop, Esc quit", m.ctx.Fonts.HUD,
		config.ScreenHeight/3+100, config.TextMutedColor)
}

func (m *MenuState) Exit() {}

// drawCentered рисует строку, выровненную по центру экрана
func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, clr)
}
