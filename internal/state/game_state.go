// internal/state/game_state.go
package state

import (
	"go-survival-shooter/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameState — идёт игра: опрос управления, шаг симуляции, отрисовка
type GameState struct {
	sm  *StateMachine
	ctx *Context
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	return &GameState{sm: sm, ctx: ctx}
}

func (g *GameState) Enter() {
	g.ctx.Logger.Debug("entered game state", "phase", g.ctx.Game.Phase().String())
}

func (g *GameState) Update(deltaTime float64) {
	if pausePressed() {
		g.sm.SetState(NewPauseState(g.sm, g.ctx, g))
		return
	}

	g.ctx.Game.Update(deltaTime, pollInput())
	g.ctx.HUD.Update(g.ctx.Game.World, deltaTime)

	if g.ctx.Game.Phase() == component.GameOverPhase {
		g.sm.SetState(NewGameOverState(g.sm, g.ctx))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.ctx.Render.Draw(screen)
	g.ctx.HUD.Draw(screen, g.ctx.Game.World)
}

func (g *GameState) Exit() {}
