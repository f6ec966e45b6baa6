// internal/system/state.go
package system

import (
	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/entity"
	"go-survival-shooter/internal/event"
	"go-survival-shooter/internal/interfaces"
)

// StateSystem переключает фазы игры: меню, игра, конец игры.
type StateSystem struct {
	world           *entity.World
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		world:           world,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
}

// HandleStart реагирует на клавишу старта. Из меню начинается игра,
// после конца игры мир пересоздаётся и игра начинается заново.
func (s *StateSystem) HandleStart() {
	switch s.world.Phase {
	case component.MenuPhase:
		s.transition(component.MenuPhase, component.PlayingPhase)
	case component.GameOverPhase:
		// ResetWorld возвращает мир в меню, поэтому исходную фазу передаём явно
		s.gameContext.ResetWorld()
		s.transition(component.GameOverPhase, component.PlayingPhase)
	}
}

// Update завершает игру, когда у игрока кончилось здоровье
func (s *StateSystem) Update() {
	w := s.world
	if w.Phase != component.PlayingPhase || !w.Player.IsDead() {
		return
	}
	s.eventDispatcher.Emit(event.PlayerDied, event.ScoreInfo{
		Points:   w.Player.Points,
		Level:    w.Level,
		GameTime: w.GameTime,
	})
	s.transition(component.PlayingPhase, component.GameOverPhase)
}

func (s *StateSystem) Current() component.Phase {
	return s.world.Phase
}

func (s *StateSystem) transition(from, to component.Phase) {
	s.world.Phase = to
	s.eventDispatcher.Emit(event.PhaseChanged, event.PhaseInfo{From: from, To: to})
}
