// internal/ui/health_bar.go
package ui

import (
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/utils"
	"go-survival-shooter/pkg/geom"
	"go-survival-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// ниже этой доли полоса окрашивается в цвет опасности
const lowHealthFraction = 0.3

// HealthBar — полоса здоровья игрока. Показываемое значение плавно догоняет настоящее.
type HealthBar struct {
	Bounds geom.Rect
	shown  float64
}

// NewHealthBar создает полосу здоровья в указанной позиции.
func NewHealthBar(x, y, w, h float64) *HealthBar {
	return &HealthBar{Bounds: geom.R(x, y, w, h), shown: 1}
}

// Update сдвигает показываемую долю к fraction
func (b *HealthBar) Update(fraction, deltaTime float64) {
	b.shown = utils.Approach(b.shown, fraction, 10, deltaTime)
}

// Shown returns the displayed health fraction.
func (b *HealthBar) Shown() float64 {
	return b.shown
}

func (b *HealthBar) Draw(screen *ebiten.Image) {
	render.FillRect(screen, b.Bounds, config.HealthBarBack)

	clr := config.HealthBarColor
	if b.shown < lowHealthFraction {
		clr = config.HealthBarLowColor
	}
	fill := b.Bounds
	fill.Max.X = fill.Min.X + fill.Width()*max(0, min(b.shown, 1))
	render.FillRect(screen, fill, clr)
	render.StrokeRect(screen, b.Bounds, 1, config.PanelStrokeColor)
}
