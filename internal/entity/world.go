// internal/entity/world.go
package entity

import (
	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/pkg/geom"
)

// World хранит всё состояние симуляции. Меняется только внутри одного тика.
type World struct {
	Field        geom.Rect
	GameTime     float64
	Player       *Player
	Enemies      []Enemy
	EnemyBullets []*Projectile
	Level        int
	Kills        int
	SpawnRate    float64 // появлений в секунду
	BossAlive    bool
	Phase        component.Phase

	// Только для отрисовки, на симуляцию не влияют
	Bursts []*component.Burst
}

// NewWorld создаёт мир в фазе меню
func NewWorld(b *defs.Balance) *World {
	return &World{
		Field:     geom.R(0, 0, b.Field.Width, b.Field.Height),
		Player:    NewPlayer(b.Player),
		Level:     1,
		SpawnRate: b.Spawn.Rate,
		Phase:     component.MenuPhase,
	}
}

// Boss возвращает живого босса, если он есть
func (w *World) Boss() (*Boss, bool) {
	for _, e := range w.Enemies {
		if boss, ok := e.(*Boss); ok && !boss.Dead() {
			return boss, true
		}
	}
	return nil, false
}
