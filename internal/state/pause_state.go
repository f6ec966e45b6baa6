// internal/state/pause_state.go
package state

import (
	"go-survival-shooter/internal/shop"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

var shopKeys = map[ebiten.Key]shop.Track{
	ebiten.KeyDigit1: shop.TrackHealth,
	ebiten.KeyDigit2: shop.TrackDamage,
	ebiten.KeyDigit3: shop.TrackSpeed,
	ebiten.KeyDigit4: shop.TrackFireRate,
}

// PauseState замораживает симуляцию и показывает магазин. Покупки работают.
type PauseState struct {
	stateMachine  *StateMachine
	ctx           *Context
	previousState State
}

func NewPauseState(sm *StateMachine, ctx *Context, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		ctx:           ctx,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if pausePressed() {
		s.stateMachine.SetState(s.previousState)
		return
	}
	for key, track := range shopKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.ctx.Game.Buy(track)
		}
	}
	s.ctx.HUD.Update(s.ctx.Game.World, deltaTime)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	s.ctx.Shop.Draw(screen, s.ctx.Game.Shop, s.ctx.Game.World.Player.Coins)
}

func (s *PauseState) Exit() {}
