// internal/entity/boss.go
package entity

import (
	"iter"
	"math"

	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/pkg/geom"
)

// BossState — текущий шаблон атаки босса
type BossState int

const (
	BossIdle BossState = iota
	BossSpreadShot
	BossCircleBurst
	BossHomingBurst
)

// attackStates — состояния, между которыми босс выбирает после каждого тика.
// Idle бывает только в самом начале.
var attackStates = [...]BossState{BossSpreadShot, BossCircleBurst, BossHomingBurst}

func (s BossState) String() string {
	switch s {
	case BossIdle:
		return "Idle"
	case BossSpreadShot:
		return "SpreadShot"
	case BossCircleBurst:
		return "CircleBurst"
	case BossHomingBurst:
		return "HomingBurst"
	default:
		return "Unknown"
	}
}

// вниз, вверх, влево, вправо
var spreadDirections = [...]geom.Vec2{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

// Boss — медленный враг с несколькими шаблонами атаки.
// Таймер атаки общий для всех состояний и копится каждый тик, поэтому смена
// состояния до окончания перезарядки просто откладывает выстрел.
type Boss struct {
	body
	state         BossState
	attack        component.Cooldown
	bulletSpeed   float64
	bulletSize    float64
	circleBullets int

	homingSize      float64
	homingSpeedMul  float64
	homingDamageMul float64

	rng Rand
}

// NewBoss создаёт босса. Здоровье, урон, скорость пуль, награда и число пуль
// в круговом залпе растут линейно с уровнем.
func NewBoss(def defs.EnemyDefinition, pos geom.Vec2, level int, rng Rand) *Boss {
	return &Boss{
		body:            newBody(def, pos, level),
		state:           BossIdle,
		attack:          component.Cooldown{Interval: def.ShootCooldown},
		bulletSpeed:     def.BulletSpeed * float64(level),
		bulletSize:      def.BulletSize,
		circleBullets:   def.CircleBullets * level,
		homingSize:      def.HomingBulletSize,
		homingSpeedMul:  def.HomingSpeedMultiplier,
		homingDamageMul: def.HomingDamageMultiplier,
		rng:             rng,
	}
}

func (b *Boss) Update(target geom.Vec2, dt float64) iter.Seq[*Projectile] {
	b.moveToward(target, dt)
	b.attack.Tick(dt)

	shots := b.act(target)
	b.state = b.nextState()
	return shots
}

// act выполняет действие текущего состояния
func (b *Boss) act(target geom.Vec2) iter.Seq[*Projectile] {
	if b.state == BossIdle || !b.attack.Ready() {
		return noShots
	}
	b.attack.Reset()

	origin, speed, damage, size := b.pos, b.bulletSpeed, b.damage, b.bulletSize
	switch b.state {
	case BossSpreadShot:
		return volley(len(spreadDirections), func(i int) *Projectile {
			return NewProjectileDir(origin, spreadDirections[i], speed, damage, size, OwnerEnemy)
		})
	case BossCircleBurst:
		n := b.circleBullets
		step := 2 * math.Pi / float64(n)
		return volley(n, func(i int) *Projectile {
			return NewProjectileDir(origin, geom.FromAngle(float64(i)*step), speed, damage, size, OwnerEnemy)
		})
	case BossHomingBurst:
		homingSpeed := speed * b.homingSpeedMul
		homingDamage := int(math.Round(float64(damage) * b.homingDamageMul))
		homingSize := b.homingSize
		return volley(1, func(int) *Projectile {
			return NewProjectile(origin, target, homingSpeed, homingDamage, homingSize, OwnerEnemy)
		})
	}
	return noShots
}

// nextState равновероятно выбирает одну из атак
func (b *Boss) nextState() BossState {
	if b.rng == nil {
		return BossSpreadShot
	}
	return attackStates[b.rng.Intn(len(attackStates))]
}

// State возвращает текущее состояние автомата атак
func (b *Boss) State() BossState {
	return b.state
}

// AttackProgress returns the charged fraction of the shared attack timer, in [0, 1].
func (b *Boss) AttackProgress() float64 {
	if b.attack.Interval <= 0 {
		return 1
	}
	return math.Min(b.attack.Elapsed/b.attack.Interval, 1)
}

func (b *Boss) IsBoss() bool         { return true }
func (b *Boss) Kind() component.Kind { return component.KindBoss }
