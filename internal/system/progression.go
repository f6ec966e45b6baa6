// internal/system/progression.go
package system

import (
	"math"

	"go-survival-shooter/internal/defs"
	"go-survival-shooter/internal/entity"
	"go-survival-shooter/internal/event"
)

// ProgressionSystem считает убийства и повышает уровень сложности.
type ProgressionSystem struct {
	world           *entity.World
	spawn           defs.SpawnDefinition
	eventDispatcher *event.Dispatcher
}

func NewProgressionSystem(world *entity.World, spawn defs.SpawnDefinition, eventDispatcher *event.Dispatcher) *ProgressionSystem {
	s := &ProgressionSystem{world: world, spawn: spawn, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(s, event.EnemyKilled)
	return s
}

func (s *ProgressionSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyKilled {
		s.world.Kills++
	}
}

// Update повышает уровень, когда набрано KillThreshold убийств.
// Лишние убийства переносятся на следующий уровень.
func (s *ProgressionSystem) Update() {
	w := s.world
	if w.Kills < s.spawn.KillThreshold {
		return
	}
	w.Kills -= s.spawn.KillThreshold
	w.Level++
	w.SpawnRate = math.Min(w.SpawnRate+s.spawn.RateStep, s.spawn.MaxRate)
	s.eventDispatcher.Emit(event.LevelUp, event.LevelInfo{Level: w.Level, SpawnRate: w.SpawnRate})
}
