// internal/interfaces/game_context.go
package interfaces

// GameContext — то, что системам нужно от игры, не импортируя пакет app.
type GameContext interface {
	// ResetWorld возвращает мир к начальному состоянию нового забега
	ResetWorld()
}
