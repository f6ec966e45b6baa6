package entity

import (
	"iter"
	"math"

	"go-survival-shooter/pkg/geom"
)

// fixedRand всегда возвращает одно и то же значение (по модулю n)
type fixedRand int

func (r fixedRand) Intn(n int) int { return int(r) % n }

const tick = 1.0 / 60

func collect(seq iter.Seq[*Projectile]) []*Projectile {
	var out []*Projectile
	for p := range seq {
		out = append(out, p)
	}
	return out
}

func near(a, b geom.Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// ticksFor возвращает число тиков в интервале seconds
func ticksFor(seconds float64) int {
	return int(math.Round(seconds / tick))
}
