// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed balance.yaml
var defaultBalance []byte

// Balance is the full set of gameplay definitions.
type Balance struct {
	Field   FieldDefinition  `yaml:"field"`
	Player  PlayerDefinition `yaml:"player"`
	Enemies EnemyDefs        `yaml:"enemies"`
	Spawn   SpawnDefinition  `yaml:"spawn"`
	Shop    ShopDefinition   `yaml:"shop"`
}

// Default returns the balance embedded into the binary.
func Default() *Balance {
	b, err := parse(defaultBalance, nil)
	if err != nil {
		// Встроенный файл проверяется тестами, сюда попасть нельзя
		panic(err)
	}
	return b
}

// Load reads a balance file. Values missing from the file keep their defaults.
func Load(path string) (*Balance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance file: %w", err)
	}
	return parse(data, Default())
}

func parse(data []byte, base *Balance) (*Balance, error) {
	b := base
	if b == nil {
		b = &Balance{}
	}
	if err := yaml.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal balance: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("invalid balance: %w", err)
	}
	return b, nil
}

// Validate проверяет значения, без которых симуляция теряет смысл.
func (b *Balance) Validate() error {
	var errs []error
	if b.Field.Width <= 0 || b.Field.Height <= 0 {
		errs = append(errs, errors.New("field size must be positive"))
	}
	if b.Player.Health <= 0 {
		errs = append(errs, errors.New("player health must be positive"))
	}
	if b.Player.FireInterval <= 0 {
		errs = append(errs, errors.New("player fire interval must be positive"))
	}
	for _, d := range []EnemyDefinition{b.Enemies.Melee, b.Enemies.Ranged, b.Enemies.Boss} {
		if d.Health <= 0 {
			errs = append(errs, fmt.Errorf("%s: health must be positive", d.ID))
		}
		if d.Size <= 0 {
			errs = append(errs, fmt.Errorf("%s: size must be positive", d.ID))
		}
	}
	if b.Enemies.Ranged.ShootCooldown <= 0 || b.Enemies.Boss.ShootCooldown <= 0 {
		errs = append(errs, errors.New("shoot cooldown must be positive"))
	}
	if b.Spawn.KillThreshold <= 0 {
		errs = append(errs, errors.New("kill threshold must be positive"))
	}
	if b.Enemies.Boss.CircleBullets <= 0 {
		errs = append(errs, errors.New("boss circle bullets must be positive"))
	}
	if len(b.Spawn.Kinds) == 0 {
		errs = append(errs, errors.New("spawn kinds must not be empty"))
	}
	totalWeight := 0
	for _, e := range b.Spawn.Kinds {
		switch e.Kind {
		case KindMelee, KindRanged, KindBoss:
		default:
			errs = append(errs, fmt.Errorf("unknown spawn kind %q", e.Kind))
		}
		if e.Weight < 0 {
			errs = append(errs, fmt.Errorf("spawn kind %q: weight must not be negative", e.Kind))
		}
		totalWeight += max(e.Weight, 0)
	}
	if len(b.Spawn.Kinds) > 0 && totalWeight == 0 {
		errs = append(errs, errors.New("spawn weights must not all be zero"))
	}
	for name, u := range map[string]UpgradeDefinition{
		"health": b.Shop.Health, "damage": b.Shop.Damage, "speed": b.Shop.Speed, "fire_rate": b.Shop.FireRate,
	} {
		if u.Cost <= 0 {
			errs = append(errs, fmt.Errorf("shop %s: cost must be positive", name))
		}
	}
	return errors.Join(errs...)
}

// Enemy возвращает определение врага по виду
func (b *Balance) Enemy(kind KindID) EnemyDefinition {
	switch kind {
	case KindRanged:
		return b.Enemies.Ranged
	case KindBoss:
		return b.Enemies.Boss
	default:
		return b.Enemies.Melee
	}
}
