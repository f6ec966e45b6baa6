// pkg/geom/rect.go
package geom

// Rect is an axis-aligned rectangle. Min is the top-left corner.
type Rect struct {
	Min, Max Vec2
}

// R строит прямоугольник по левому верхнему углу и размерам
func R(x, y, w, h float64) Rect {
	return Rect{Min: Vec2{X: x, Y: y}, Max: Vec2{X: x + w, Y: y + h}}
}

// RectCentered строит квадратный хитбокс со стороной size с центром в center
func RectCentered(center Vec2, size float64) Rect {
	half := size / 2
	return Rect{
		Min: Vec2{X: center.X - half, Y: center.Y - half},
		Max: Vec2{X: center.X + half, Y: center.Y + half},
	}
}

// Width возвращает ширину прямоугольника
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height возвращает высоту прямоугольника
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center возвращает центр прямоугольника
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Overlaps проверяет пересечение двух прямоугольников.
// Касание краями считается пересечением.
func (r Rect) Overlaps(other Rect) bool {
	return r.Min.X <= other.Max.X && r.Max.X >= other.Min.X &&
		r.Min.Y <= other.Max.Y && r.Max.Y >= other.Min.Y
}

// Contains проверяет, лежит ли точка внутри прямоугольника (границы включительно)
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Clamp прижимает точку к границам прямоугольника
func (r Rect) Clamp(p Vec2) Vec2 {
	return Vec2{X: clamp(p.X, r.Min.X, r.Max.X), Y: clamp(p.Y, r.Min.Y, r.Max.Y)}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
