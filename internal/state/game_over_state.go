// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-survival-shooter/internal/config"
	"go-survival-shooter/pkg/geom"
	"go-survival-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState — игрок погиб. Мир заморожен, Enter начинает заново.
type GameOverState struct {
	sm  *StateMachine
	ctx *Context
}

func NewGameOverState(sm *StateMachine, ctx *Context) *GameOverState {
	return &GameOverState{sm: sm, ctx: ctx}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.ctx.Game.Start()
		s.sm.SetState(NewGameState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.ctx.Render.Draw(screen)
	render.FillRect(screen, geom.R(0, 0, config.ScreenWidth, config.ScreenHeight), config.OverlayColor)

	w := s.ctx.Game.World
	drawCentered(screen, "GAME OVER", s.ctx.Fonts.Title, config.ScreenHeight/3, config.HealthBarLowColor)
	drawCentered(screen, fmt.Sprintf("Points: %d   Level: %d   Time: %.0fs", w.Player.Points, w.Level, w.GameTime),
		s.ctx.Fonts.HUD, config.ScreenHeight/3+60, config.TextLightColor)
	drawCentered(screen, "Press Enter to play again", s.ctx.Fonts.HUD, config.ScreenHeight/3+100, config.TextMutedColor)
}

func (s *GameOverState) Exit() {}
