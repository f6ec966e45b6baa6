// internal/system/cleanup.go
package system

import (
	"slices"

	"go-survival-shooter/internal/entity"
)

// CleanupSystem убирает мёртвых врагов и отработавшие снаряды.
// Вызывается один раз за тик, после всех столкновений.
type CleanupSystem struct {
	world *entity.World
}

func NewCleanupSystem(world *entity.World) *CleanupSystem {
	return &CleanupSystem{world: world}
}

func (s *CleanupSystem) Update() {
	w := s.world
	w.Enemies = slices.DeleteFunc(w.Enemies, entity.Enemy.Dead)

	spent := func(p *entity.Projectile) bool {
		return p.Consumed() || p.IsOffField(w.Field)
	}
	w.EnemyBullets = slices.DeleteFunc(w.EnemyBullets, spent)
	w.Player.Bullets = slices.DeleteFunc(w.Player.Bullets, spent)
}
