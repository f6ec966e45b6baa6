// internal/state/keyboard.go
package state

import (
	"go-survival-shooter/internal/input"
	"go-survival-shooter/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pollInput снимает состояние клавиатуры и мыши за кадр.
// Координаты курсора уже в координатах поля: Layout возвращает размер поля.
func pollInput() input.Input {
	cx, cy := ebiten.CursorPosition()
	return input.Input{
		Up:    anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:  anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:  anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right: anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Aim:   geom.V(float64(cx), float64(cy)),

		Start:       inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		BuyHealth:   inpututil.IsKeyJustPressed(ebiten.KeyDigit1),
		BuyDamage:   inpututil.IsKeyJustPressed(ebiten.KeyDigit2),
		BuySpeed:    inpututil.IsKeyJustPressed(ebiten.KeyDigit3),
		BuyFireRate: inpututil.IsKeyJustPressed(ebiten.KeyDigit4),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP)
}
