// internal/component/visual.go
package component

import "image/color"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Remaining float64 // сколько ещё длится вспышка
	Duration  float64 // общая продолжительность
}

// Trigger запускает вспышку заново
func (f *DamageFlash) Trigger(duration float64) {
	f.Duration = duration
	f.Remaining = duration
}

// Tick уменьшает оставшееся время
func (f *DamageFlash) Tick(dt float64) {
	f.Remaining -= dt
	if f.Remaining < 0 {
		f.Remaining = 0
	}
}

// Intensity returns 1 right after a hit, falling to 0 when the flash is over.
func (f DamageFlash) Intensity() float64 {
	if f.Duration <= 0 || f.Remaining <= 0 {
		return 0
	}
	return f.Remaining / f.Duration
}

// Burst — расширяющееся кольцо на месте убитого врага
type Burst struct {
	X, Y      float64
	MaxRadius float64
	Timer     float64
	Duration  float64
	Color     color.Color
}

// Progress returns the elapsed fraction of the effect.
func (b Burst) Progress() float64 {
	if b.Duration <= 0 {
		return 1
	}
	return min(b.Timer/b.Duration, 1)
}

// Done reports whether the effect is over.
func (b Burst) Done() bool {
	return b.Timer >= b.Duration
}
