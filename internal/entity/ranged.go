// internal/entity/ranged.go
package entity

import (
	"iter"

	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/pkg/geom"
)

// Ranged — стрелок (шестиугольник). Медленно идёт к игроку и раз в
// ShootCooldown секунд стреляет в его текущую позицию.
type Ranged struct {
	body
	bulletSpeed float64
	bulletSize  float64
	shot        component.Cooldown
}

func NewRanged(def defs.EnemyDefinition, pos geom.Vec2, level int) *Ranged {
	return &Ranged{
		body:        newBody(def, pos, level),
		bulletSpeed: def.BulletSpeed * float64(level),
		bulletSize:  def.BulletSize,
		shot:        component.Cooldown{Interval: def.ShootCooldown},
	}
}

func (r *Ranged) Update(target geom.Vec2, dt float64) iter.Seq[*Projectile] {
	r.moveToward(target, dt)

	r.shot.Tick(dt)
	if !r.shot.Ready() {
		return noShots
	}
	r.shot.Reset()

	origin, speed, damage, size := r.pos, r.bulletSpeed, r.damage, r.bulletSize
	return volley(1, func(int) *Projectile {
		return NewProjectile(origin, target, speed, damage, size, OwnerEnemy)
	})
}

func (r *Ranged) IsBoss() bool         { return false }
func (r *Ranged) Kind() component.Kind { return component.KindRanged }
