// internal/system/enemy.go
package system

import "go-survival-shooter/internal/entity"

// EnemySystem обновляет врагов по одному: движение и выстрелы,
// затем столкновения этого врага с игроком и его снарядами.
type EnemySystem struct {
	world      *entity.World
	collisions *CollisionSystem
}

func NewEnemySystem(world *entity.World, collisions *CollisionSystem) *EnemySystem {
	return &EnemySystem{world: world, collisions: collisions}
}

func (s *EnemySystem) Update(deltaTime float64) {
	target := s.world.Player.Pos
	for _, e := range s.world.Enemies {
		if e.Dead() {
			continue
		}
		for p := range e.Update(target, deltaTime) {
			s.world.EnemyBullets = append(s.world.EnemyBullets, p)
		}
		e.Flash().Tick(deltaTime)
		s.collisions.ResolveEnemy(e)
	}
}
