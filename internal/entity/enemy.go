// internal/entity/enemy.go
package entity

import (
	"iter"

	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/pkg/geom"
)

// Rand is the randomness a boss needs to pick its next attack.
type Rand interface {
	Intn(n int) int
}

// Enemy — общий набор возможностей всех врагов.
// Реализаций ровно три: Melee, Ranged и Boss.
type Enemy interface {
	// Update двигает врага к цели и возвращает снаряды, выпущенные за этот тик.
	// Последовательность одноразовая и должна быть прочитана сразу.
	Update(target geom.Vec2, dt float64) iter.Seq[*Projectile]
	Hitbox() geom.Rect
	CheckCollision(p *Player) bool
	ApplyDamage(p *Player)
	TakeDamage(amount int) int
	IsBoss() bool
	Kind() component.Kind
	Pos() geom.Vec2
	HP() int
	MaxHP() int
	Coins() int
	Points() int
	Size() float64
	Dead() bool
	Flash() *component.DamageFlash
}

// body — общие данные и поведение всех врагов
type body struct {
	pos    geom.Vec2
	health component.Health
	speed  float64
	damage int
	bounty component.Bounty
	size   float64
	flash  component.DamageFlash
}

func newBody(def defs.EnemyDefinition, pos geom.Vec2, level int) body {
	return body{
		pos:    pos,
		health: component.NewHealth(def.Health * level),
		speed:  def.ScaledSpeed(level),
		damage: def.Damage * level,
		bounty: component.Bounty{Coins: def.Coins * level, Points: def.Points * level},
		size:   def.Size,
	}
}

// moveToward сдвигает врага к цели. Если враг уже стоит в точке цели, он не двигается.
func (b *body) moveToward(target geom.Vec2, dt float64) {
	dir := geom.Direction(b.pos, target)
	b.pos = b.pos.Add(dir.Scale(b.speed * dt))
}

func (b *body) Pos() geom.Vec2 { return b.pos }
func (b *body) HP() int        { return b.health.Current }
func (b *body) MaxHP() int     { return b.health.Max }
func (b *body) Coins() int     { return b.bounty.Coins }
func (b *body) Points() int    { return b.bounty.Points }
func (b *body) Size() float64  { return b.size }
func (b *body) Dead() bool     { return b.health.IsDead() }

func (b *body) Flash() *component.DamageFlash { return &b.flash }

// Hitbox использует объявленный размер врага для всех столкновений
func (b *body) Hitbox() geom.Rect {
	return geom.RectCentered(b.pos, b.size)
}

// CheckCollision reports whether the enemy and player hitboxes overlap.
func (b *body) CheckCollision(p *Player) bool {
	return b.Hitbox().Overlaps(p.Hitbox())
}

// ApplyDamage наносит игроку контактный урон
func (b *body) ApplyDamage(p *Player) {
	p.TakeDamage(b.damage)
}

// TakeDamage возвращает оставшееся здоровье; ноль означает смерть
func (b *body) TakeDamage(amount int) int {
	if amount > 0 {
		b.flash.Trigger(config.DamageFlashDuration)
	}
	return b.health.TakeDamage(amount)
}

// NewEnemy создаёт врага нужного вида с характеристиками текущего уровня
func NewEnemy(kind component.Kind, pos geom.Vec2, level int, enemies defs.EnemyDefs, rng Rand) Enemy {
	if level < 1 {
		level = 1
	}
	switch kind {
	case component.KindRanged:
		return NewRanged(enemies.Ranged, pos, level)
	case component.KindBoss:
		return NewBoss(enemies.Boss, pos, level, rng)
	default:
		return NewMelee(enemies.Melee, pos, level)
	}
}

// пустой залп
func noShots(func(*Projectile) bool) {}

// volley лениво строит n снарядов. Повторный обход ничего не выдаёт.
func volley(n int, build func(i int) *Projectile) iter.Seq[*Projectile] {
	done := false
	return func(yield func(*Projectile) bool) {
		if done {
			return
		}
		done = true
		for i := 0; i < n; i++ {
			if !yield(build(i)) {
				return
			}
		}
	}
}
