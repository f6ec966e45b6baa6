// internal/ui/parallax.go
package ui

import (
	"image/color"
	"math"

	"go-survival-shooter/internal/config"
	"go-survival-shooter/pkg/geom"
	"go-survival-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// ParallaxLayer — полоса фона, прокручиваемая влево со своей скоростью
type ParallaxLayer struct {
	Speed  float64 // пикселей в секунду
	Top    float64
	Color  color.Color
	Peaks  int // число зубцов на ширину экрана, 0 — плоская полоса
	Offset float64
}

// Parallax — прокручиваемый фон главного меню
type Parallax struct {
	Layers []*ParallaxLayer
	width  float64
	height float64
	shapes *render.ShapeRenderer
}

func NewParallax(width, height float64) *Parallax {
	return &Parallax{
		Layers: []*ParallaxLayer{
			{Speed: config.ParallaxSkySpeed, Top: 0, Color: config.SkyColor},
			{Speed: config.ParallaxMountainsSpeed, Top: height * 0.45, Color: config.MountainsColor, Peaks: 5},
			{Speed: config.ParallaxGroundSpeed, Top: height * 0.75, Color: config.GroundColor, Peaks: 12},
		},
		width:  width,
		height: height,
	}
}

// Update сдвигает слои. Смещение всегда остаётся в (-width, 0].
func (p *Parallax) Update(deltaTime float64) {
	for _, l := range p.Layers {
		l.Offset = math.Mod(l.Offset-l.Speed*deltaTime, p.width)
	}
}

func (p *Parallax) Draw(screen *ebiten.Image) {
	if p.shapes == nil {
		p.shapes = render.NewShapeRenderer()
	}
	for _, l := range p.Layers {
		// Две копии слоя подряд дают бесшовную прокрутку
		for _, x := range []float64{l.Offset, l.Offset + p.width} {
			p.drawLayer(screen, l, x)
		}
	}
}

func (p *Parallax) drawLayer(screen *ebiten.Image, l *ParallaxLayer, x float64) {
	if l.Peaks == 0 {
		render.FillRect(screen, geom.R(x, l.Top, p.width, p.height-l.Top), l.Color)
		return
	}
	base := l.Top + (p.height-l.Top)*0.3
	render.FillRect(screen, geom.R(x, base, p.width, p.height-base), l.Color)

	w := p.width / float64(l.Peaks)
	for i := 0; i < l.Peaks; i++ {
		left := x + w*float64(i)
		p.shapes.FillPolygon(screen, []geom.Vec2{
			{X: left, Y: base},
			{X: left + w/2, Y: l.Top},
			{X: left + w, Y: base},
		}, l.Color)
	}
}
