// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// ToRGBA приводит любой цвет к color.RGBA
func ToRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// Mix смешивает два цвета: t=0 даёт a, t=1 даёт b.
func Mix(a, b color.Color, t float64) color.RGBA {
	t = max(0, min(t, 1))
	ca, cb := ToRGBA(a), ToRGBA(b)
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: lerp(ca.R, cb.R), G: lerp(ca.G, cb.G), B: lerp(ca.B, cb.B), A: lerp(ca.A, cb.A)}
}

// WithAlpha возвращает цвет с другой прозрачностью
func WithAlpha(c color.Color, alpha float64) color.RGBA {
	rgba := ToRGBA(c)
	a := max(0, min(alpha, 1))
	// color.RGBA хранит премультиплицированные значения
	return color.RGBA{
		R: uint8(float64(rgba.R) * a),
		G: uint8(float64(rgba.G) * a),
		B: uint8(float64(rgba.B) * a),
		A: uint8(float64(rgba.A) * a),
	}
}
