// internal/system/player_system.go
package system

import (
	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/entity"
	"go-survival-shooter/internal/event"
	"go-survival-shooter/internal/input"
)

// PlayerSystem двигает игрока, стреляет за него и начисляет награду за убийства.
type PlayerSystem struct {
	world *entity.World
}

func NewPlayerSystem(world *entity.World, dispatcher *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{world: world}
	dispatcher.Subscribe(s, event.EnemyKilled)
	return s
}

func (s *PlayerSystem) Update(in input.Input, deltaTime float64) {
	p := s.world.Player
	p.Update(in, deltaTime, s.world.Field)
	p.Flash.Tick(deltaTime)
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	kill, ok := e.Data.(event.KillInfo)
	if !ok {
		return
	}
	s.world.Player.AddBounty(component.Bounty{Coins: kill.Coins, Points: kill.Points})
}
