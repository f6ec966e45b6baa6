// internal/entity/projectile.go
package entity

import "go-survival-shooter/pkg/geom"

// Owner tells which side fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	Pos    geom.Vec2
	Vel    geom.Vec2 // пикселей в секунду
	Damage int
	Size   float64
	Owner  Owner

	consumed bool
}

// NewProjectile создаёт снаряд, летящий от origin к target со скоростью speed.
// Если origin совпадает с target, направление не определено и снаряд
// получается неподвижным.
func NewProjectile(origin, target geom.Vec2, speed float64, damage int, size float64, owner Owner) *Projectile {
	return NewProjectileDir(origin, geom.Direction(origin, target), speed, damage, size, owner)
}

// NewProjectileDir создаёт снаряд с заранее вычисленным направлением
func NewProjectileDir(origin, dir geom.Vec2, speed float64, damage int, size float64, owner Owner) *Projectile {
	return &Projectile{
		Pos:    origin,
		Vel:    dir.Normalize().Scale(speed),
		Damage: damage,
		Size:   size,
		Owner:  owner,
	}
}

// Advance сдвигает снаряд на Vel*dt
func (p *Projectile) Advance(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}

// IsOffField проверяет, вылетел ли снаряд за пределы поля
func (p *Projectile) IsOffField(field geom.Rect) bool {
	return !field.Contains(p.Pos)
}

// Hitbox возвращает квадрат попадания со стороной Size
func (p *Projectile) Hitbox() geom.Rect {
	return geom.RectCentered(p.Pos, p.Size)
}

// Hits проверяет пересечение с чужим хитбоксом. Израсходованный снаряд никого не задевает.
func (p *Projectile) Hits(target geom.Rect) bool {
	return !p.consumed && p.Hitbox().Overlaps(target)
}

// Consume помечает снаряд использованным. Возвращает false, если он уже был израсходован.
func (p *Projectile) Consume() bool {
	if p.consumed {
		return false
	}
	p.consumed = true
	return true
}

// Consumed сообщает, попал ли снаряд во что-нибудь
func (p *Projectile) Consumed() bool {
	return p.consumed
}
