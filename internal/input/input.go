// internal/input/input.go
package input

import "go-survival-shooter/pkg/geom"

// Input — снимок управления за один кадр. Симуляция не знает,
// откуда он пришёл: от клавиатуры, из теста или из бота.
type Input struct {
	// Удерживаемые клавиши
	Up, Down, Left, Right bool
	Fire                  bool
	Aim                   geom.Vec2 // позиция курсора в координатах поля

	// Однократные нажатия
	Start       bool
	BuyHealth   bool
	BuyDamage   bool
	BuySpeed    bool
	BuyFireRate bool
}

// HeldOnly возвращает копию без однократных нажатий. Используется для
// дополнительных тиков внутри одного кадра, чтобы покупка не сработала дважды.
func (in Input) HeldOnly() Input {
	in.Start = false
	in.BuyHealth = false
	in.BuyDamage = false
	in.BuySpeed = false
	in.BuyFireRate = false
	return in
}

// Axis возвращает направление движения по осям (-1, 0, 1)
func (in Input) Axis() (dx, dy float64) {
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	return dx, dy
}
