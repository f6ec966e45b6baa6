// internal/defs/enemies.go
package defs

// EnemyDefinition holds the base stats of one enemy kind. Most values are
// multiplied by the current level when the enemy spawns.
type EnemyDefinition struct {
	ID                string  `yaml:"id"`
	Name              string  `yaml:"name"`
	Health            int     `yaml:"health"`
	Speed             float64 `yaml:"speed"`
	SpeedLevelDivisor float64 `yaml:"speed_level_divisor,omitempty"` // 0 — скорость не растёт с уровнем
	Damage            int     `yaml:"damage"`
	Coins             int     `yaml:"coins"`
	Points            int     `yaml:"points"`
	Size              float64 `yaml:"size"`

	// Только для стреляющих врагов
	BulletSpeed   float64 `yaml:"bullet_speed,omitempty"`
	BulletSize    float64 `yaml:"bullet_size,omitempty"`
	ShootCooldown float64 `yaml:"shoot_cooldown,omitempty"`

	// Только для босса
	CircleBullets          int     `yaml:"circle_bullets,omitempty"` // на каждый уровень
	HomingBulletSize       float64 `yaml:"homing_bullet_size,omitempty"`
	HomingSpeedMultiplier  float64 `yaml:"homing_speed_multiplier,omitempty"`
	HomingDamageMultiplier float64 `yaml:"homing_damage_multiplier,omitempty"`
}

// EnemyDefs groups the definitions of the three enemy kinds.
type EnemyDefs struct {
	Melee  EnemyDefinition `yaml:"melee"`
	Ranged EnemyDefinition `yaml:"ranged"`
	Boss   EnemyDefinition `yaml:"boss"`
}

// ScaledSpeed возвращает скорость с учётом уровня
func (d EnemyDefinition) ScaledSpeed(level int) float64 {
	if d.SpeedLevelDivisor <= 0 {
		return d.Speed
	}
	return d.Speed * float64(level) / d.SpeedLevelDivisor
}
