// internal/system/collision.go
package system

import (
	"go-survival-shooter/internal/entity"
	"go-survival-shooter/internal/event"
)

// CollisionSystem разрешает попадания. Ничего не удаляет: мёртвые враги
// и израсходованные снаряды убирает CleanupSystem в конце тика.
type CollisionSystem struct {
	world      *entity.World
	dispatcher *event.Dispatcher
}

func NewCollisionSystem(world *entity.World, dispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{world: world, dispatcher: dispatcher}
}

// ResolveEnemy проверяет контакт врага с игроком и попадания снарядов игрока во врага.
// Контактный урон наносится каждый тик, пока хитбоксы пересекаются.
func (s *CollisionSystem) ResolveEnemy(e entity.Enemy) {
	if e.Dead() {
		return
	}
	p := s.world.Player
	if e.CheckCollision(p) {
		e.ApplyDamage(p)
	}

	hitbox := e.Hitbox()
	for _, b := range p.Bullets {
		if !b.Hits(hitbox) {
			continue
		}
		b.Consume()
		if e.TakeDamage(b.Damage) == 0 {
			s.kill(e)
			return
		}
	}
}

// Update двигает снаряды врагов и проверяет попадания в игрока.
func (s *CollisionSystem) Update(deltaTime float64) {
	p := s.world.Player
	hitbox := p.Hitbox()
	for _, b := range s.world.EnemyBullets {
		b.Advance(deltaTime)
		if b.Hits(hitbox) && b.Consume() {
			p.TakeDamage(b.Damage)
		}
	}
}

// kill вызывается ровно один раз для каждого врага: после него Dead() истинно
// и ResolveEnemy этого врага больше не рассматривает.
func (s *CollisionSystem) kill(e entity.Enemy) {
	info := event.KillInfo{Kind: e.Kind(), Coins: e.Coins(), Points: e.Points(), Pos: e.Pos()}
	s.dispatcher.Emit(event.EnemyKilled, info)
	if e.IsBoss() {
		s.dispatcher.Emit(event.BossDefeated, info)
	}
}
