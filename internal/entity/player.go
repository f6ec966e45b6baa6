// internal/entity/player.go
package entity

import (
	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/internal/input"
	"go-survival-shooter/pkg/geom"
)

// Player is the player character together with its own projectiles.
type Player struct {
	Pos          geom.Vec2
	Health       component.Health
	Speed        float64 // пикселей в секунду
	Damage       int
	FireCooldown component.Cooldown
	BulletSpeed  float64
	BulletSize   float64
	Size         float64
	Coins        int
	Points       int
	Bullets      []*Projectile
	Flash        component.DamageFlash
}

// NewPlayer создаёт игрока по определению из баланса
func NewPlayer(def defs.PlayerDefinition) *Player {
	p := &Player{
		Pos:          geom.V(def.StartX, def.StartY),
		Health:       component.NewHealth(def.Health),
		Speed:        def.Speed,
		Damage:       def.Damage,
		FireCooldown: component.Cooldown{Interval: def.FireInterval},
		BulletSpeed:  def.BulletSpeed,
		BulletSize:   def.BulletSize,
		Size:         def.Size,
	}
	// Первый выстрел доступен сразу
	p.FireCooldown.Prime()
	return p
}

// Update двигает игрока, держит его в границах поля, стреляет и двигает его снаряды.
func (p *Player) Update(in input.Input, dt float64, field geom.Rect) {
	dx, dy := in.Axis()
	step := p.Speed * dt
	p.Pos = field.Clamp(p.Pos.Add(geom.V(dx*step, dy*step)))

	p.FireCooldown.Tick(dt)
	if in.Fire {
		p.Fire(in.Aim)
	}

	for _, b := range p.Bullets {
		b.Advance(dt)
	}
}

// Fire выпускает снаряд в сторону target, если прошёл интервал стрельбы.
// Прицел в точке игрока не даёт направления, такой выстрел не делается.
func (p *Player) Fire(target geom.Vec2) bool {
	if !p.FireCooldown.Ready() {
		return false
	}
	dir := geom.Direction(p.Pos, target)
	if dir.IsZero() {
		return false
	}
	p.Bullets = append(p.Bullets, NewProjectileDir(p.Pos, dir, p.BulletSpeed, p.Damage, p.BulletSize, OwnerPlayer))
	p.FireCooldown.Reset()
	return true
}

// TakeDamage наносит урон игроку, здоровье не опускается ниже нуля
func (p *Player) TakeDamage(amount int) int {
	if amount > 0 {
		p.Flash.Trigger(config.DamageFlashDuration)
	}
	return p.Health.TakeDamage(amount)
}

// IsDead reports whether the player is out of health.
func (p *Player) IsDead() bool {
	return p.Health.IsDead()
}

// Hitbox возвращает квадрат столкновений игрока
func (p *Player) Hitbox() geom.Rect {
	return geom.RectCentered(p.Pos, p.Size)
}

// AddBounty начисляет награду за убийство
func (p *Player) AddBounty(b component.Bounty) {
	p.Coins += b.Coins
	p.Points += b.Points
}

// FireInterval возвращает текущий интервал между выстрелами в секундах
func (p *Player) FireInterval() float64 {
	return p.FireCooldown.Interval
}
