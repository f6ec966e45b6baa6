// internal/event/types.go
package event

import (
	"go-survival-shooter/internal/component"
	"go-survival-shooter/pkg/geom"
)

const (
	EnemyKilled      EventType = "EnemyKilled"      // враг убит снарядом игрока, Data: KillInfo
	EnemySpawned     EventType = "EnemySpawned"     // Data: SpawnInfo
	BossSpawned      EventType = "BossSpawned"      // Data: SpawnInfo
	BossDefeated     EventType = "BossDefeated"     // Data: KillInfo
	LevelUp          EventType = "LevelUp"          // Data: LevelInfo
	PlayerDied       EventType = "PlayerDied"       // Data: ScoreInfo
	UpgradePurchased EventType = "UpgradePurchased" // Data: shop.Receipt
	UpgradeRejected  EventType = "UpgradeRejected"  // Data: shop.Receipt
	PhaseChanged     EventType = "PhaseChanged"     // Data: PhaseInfo
)

// KillInfo описывает убитого врага
type KillInfo struct {
	Kind   component.Kind
	Coins  int
	Points int
	Pos    geom.Vec2
}

// SpawnInfo описывает появившегося врага
type SpawnInfo struct {
	Kind  component.Kind
	Pos   geom.Vec2
	Level int
}

// LevelInfo — новый уровень и темп появления врагов
type LevelInfo struct {
	Level     int
	SpawnRate float64
}

// ScoreInfo — итог забега
type ScoreInfo struct {
	Points   int
	Level    int
	GameTime float64
}

// PhaseInfo — смена фазы игры
type PhaseInfo struct {
	From, To component.Phase
}
