// internal/defs/shop.go
package defs

// UpgradeDefinition — стартовая цена и прибавка к характеристике для одной ветки магазина.
type UpgradeDefinition struct {
	Cost     int     `yaml:"cost"`
	Delta    float64 `yaml:"delta"`
	MinValue float64 `yaml:"min_value,omitempty"`
}

// ShopDefinition holds the four upgrade tracks.
type ShopDefinition struct {
	Health   UpgradeDefinition `yaml:"health"`
	Damage   UpgradeDefinition `yaml:"damage"`
	Speed    UpgradeDefinition `yaml:"speed"`
	FireRate UpgradeDefinition `yaml:"fire_rate"`
}
