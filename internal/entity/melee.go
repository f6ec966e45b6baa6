// internal/entity/melee.go
package entity

import (
	"iter"

	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/pkg/geom"
)

// Melee — быстрый слабый враг (треугольник). Только бежит к игроку.
type Melee struct {
	body
}

func NewMelee(def defs.EnemyDefinition, pos geom.Vec2, level int) *Melee {
	return &Melee{body: newBody(def, pos, level)}
}

func (m *Melee) Update(target geom.Vec2, dt float64) iter.Seq[*Projectile] {
	m.moveToward(target, dt)
	return noShots
}

func (m *Melee) IsBoss() bool         { return false }
func (m *Melee) Kind() component.Kind { return component.KindMelee }
