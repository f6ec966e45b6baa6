// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Approach плавно приближает значение к цели. rate задаёт долю разницы,
// закрываемую за секунду; результат не зависит от частоты кадров.
func Approach(from, to, rate, dt float64) float64 {
	if rate <= 0 {
		return to
	}
	return Lerp(from, to, 1-math.Exp(-rate*dt))
}
