// pkg/geom/vec.go
package geom

import "math"

// Vec2 is a point or a vector on the plane.
type Vec2 struct {
	X, Y float64
}

// V короткий конструктор вектора
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add возвращает сумму двух векторов
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub возвращает разность двух векторов
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale умножает вектор на скаляр
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len возвращает длину вектора
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero сообщает, нулевой ли вектор
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize возвращает единичный вектор того же направления.
// Для нулевого вектора (совпадающие точки) возвращается нулевой вектор,
// деления на ноль не происходит.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// FromAngle строит единичный вектор по углу
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Direction returns the unit vector pointing from from to to.
func Direction(from, to Vec2) Vec2 {
	return to.Sub(from).Normalize()
}
