// internal/system/visual_effect.go
package system

import (
	"slices"

	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/internal/entity"
	"go-survival-shooter/internal/event"
)

// VisualEffectSystem управляет кольцами на месте убитых врагов.
// Вспышки урона тикают вместе со своими сущностями.
type VisualEffectSystem struct {
	world   *entity.World
	balance *defs.Balance
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World, balance *defs.Balance, dispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{world: world, balance: balance}
	dispatcher.Subscribe(s, event.EnemyKilled)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	kill, ok := e.Data.(event.KillInfo)
	if !ok {
		return
	}
	s.world.Bursts = append(s.world.Bursts, &component.Burst{
		X:         kill.Pos.X,
		Y:         kill.Pos.Y,
		MaxRadius: s.balance.Enemy(kill.Kind.ID()).Size * config.BurstRadiusFactor,
		Duration:  config.BurstDuration,
		Color:     config.BurstColor,
	})
}

// Update обновляет все активные эффекты и убирает завершившиеся.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for _, b := range s.world.Bursts {
		b.Timer += deltaTime
	}
	s.world.Bursts = slices.DeleteFunc(s.world.Bursts, (*component.Burst).Done)
}
