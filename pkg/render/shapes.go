// pkg/render/shapes.go
package render

import (
	"image/color"
	"math"

	"go-survival-shooter/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ShapeRenderer рисует залитые и обведённые многоугольники.
// Буферы вершин переиспользуются между вызовами.
type ShapeRenderer struct {
	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func NewShapeRenderer() *ShapeRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &ShapeRenderer{
		fillImg: fillImg,
		vs:      make([]ebiten.Vertex, 0, 32),
		is:      make([]uint16, 0, 48),
	}
}

// PolygonPoints возвращает вершины правильного многоугольника.
// rotation задаёт угол первой вершины в радианах.
func PolygonPoints(center geom.Vec2, radius float64, sides int, rotation float64) []geom.Vec2 {
	if sides < 3 {
		return nil
	}
	pts := make([]geom.Vec2, sides)
	step := 2 * math.Pi / float64(sides)
	for i := range pts {
		pts[i] = center.Add(geom.FromAngle(rotation + step*float64(i)).Scale(radius))
	}
	return pts
}

// TrianglePoints returns an isosceles triangle pointing up, inscribed in a size square.
func TrianglePoints(center geom.Vec2, size float64) []geom.Vec2 {
	h := size / 2
	return []geom.Vec2{
		{X: center.X, Y: center.Y - h},
		{X: center.X - h, Y: center.Y + h},
		{X: center.X + h, Y: center.Y + h},
	}
}

// HexagonPoints returns a pointy-top hexagon inscribed in a size square.
func HexagonPoints(center geom.Vec2, size float64) []geom.Vec2 {
	return PolygonPoints(center, size/2, 6, -math.Pi/2)
}

func pathOf(pts []geom.Vec2) *vector.Path {
	path := &vector.Path{}
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()
	return path
}

// FillPolygon заливает многоугольник цветом clr
func (r *ShapeRenderer) FillPolygon(dst *ebiten.Image, pts []geom.Vec2, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	r.vs, r.is = pathOf(pts).AppendVerticesAndIndicesForFilling(r.vs[:0], r.is[:0])
	r.draw(dst, clr)
}

// StrokePolygon обводит многоугольник линией толщиной width
func (r *ShapeRenderer) StrokePolygon(dst *ebiten.Image, pts []geom.Vec2, width float32, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	r.vs, r.is = pathOf(pts).AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
	r.draw(dst, clr)
}

func (r *ShapeRenderer) draw(dst *ebiten.Image, clr color.Color) {
	c := ToRGBA(clr)
	for i := range r.vs {
		r.vs[i].SrcX, r.vs[i].SrcY = 0, 0
		r.vs[i].ColorR = float32(c.R) / 255
		r.vs[i].ColorG = float32(c.G) / 255
		r.vs[i].ColorB = float32(c.B) / 255
		r.vs[i].ColorA = float32(c.A) / 255
	}
	dst.DrawTriangles(r.vs, r.is, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// FillRect рисует прямоугольник geom.Rect
func FillRect(dst *ebiten.Image, rect geom.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Width()), float32(rect.Height()), clr, false)
}

// StrokeRect обводит прямоугольник geom.Rect
func StrokeRect(dst *ebiten.Image, rect geom.Rect, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Width()), float32(rect.Height()), width, clr, false)
}
