// internal/defs/types.go
package defs

// KindID names an enemy kind in the balance file.
type KindID string

const (
	KindMelee  KindID = "melee"
	KindRanged KindID = "ranged"
	KindBoss   KindID = "boss"
)

// FieldDefinition describes the play field in pixels.
type FieldDefinition struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerDefinition holds the starting stats of the player.
type PlayerDefinition struct {
	Health       int     `yaml:"health"`
	Speed        float64 `yaml:"speed"`
	Damage       int     `yaml:"damage"`
	FireInterval float64 `yaml:"fire_interval"`
	BulletSpeed  float64 `yaml:"bullet_speed"`
	BulletSize   float64 `yaml:"bullet_size"`
	Size         float64 `yaml:"size"`
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
}
