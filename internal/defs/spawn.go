// internal/defs/spawn.go
package defs

// SpawnEntry — одна запись таблицы появления врагов.
// Weight задаёт относительный шанс выбора этого вида.
type SpawnEntry struct {
	Kind   KindID `yaml:"kind"`
	Weight int    `yaml:"weight"`
}

// SpawnDefinition описывает темп появления врагов и рост сложности.
type SpawnDefinition struct {
	Rate          float64      `yaml:"rate"`      // появлений в секунду на первом уровне
	RateStep      float64      `yaml:"rate_step"` // прибавка за уровень
	MaxRate       float64      `yaml:"max_rate"`
	BossChance    float64      `yaml:"boss_chance"`
	KillThreshold int          `yaml:"kill_threshold"`
	Kinds         []SpawnEntry `yaml:"kinds"`
}
