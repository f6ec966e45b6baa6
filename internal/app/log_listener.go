// internal/app/log_listener.go
package app

import (
	"context"
	"log/slog"

	"go-survival-shooter/internal/event"
	"go-survival-shooter/internal/shop"
)

// LogListener пишет игровые события в журнал
type LogListener struct {
	logger *slog.Logger
}

func NewLogListener(logger *slog.Logger) *LogListener {
	return &LogListener{logger: logger.With("component", "events")}
}

func (l *LogListener) OnEvent(e event.Event) {
	ctx := context.Background()
	switch data := e.Data.(type) {
	case event.KillInfo:
		l.logger.DebugContext(ctx, string(e.Type),
			"kind", data.Kind.String(), "coins", data.Coins, "points", data.Points)
	case event.SpawnInfo:
		l.logger.InfoContext(ctx, string(e.Type), "kind", data.Kind.String(), "level", data.Level)
	case event.LevelInfo:
		l.logger.InfoContext(ctx, string(e.Type), "level", data.Level, "spawn_rate", data.SpawnRate)
	case event.ScoreInfo:
		l.logger.InfoContext(ctx, string(e.Type),
			"points", data.Points, "level", data.Level, "game_time", data.GameTime)
	case event.PhaseInfo:
		l.logger.InfoContext(ctx, string(e.Type), "from", data.From.String(), "to", data.To.String())
	case shop.Receipt:
		l.logger.DebugContext(ctx, string(e.Type),
			"track", data.Track.String(), "paid", data.Paid, "level", data.Level,
			"next_cost", data.NextCost, "coins_left", data.CoinsLeft)
	default:
		l.logger.DebugContext(ctx, string(e.Type))
	}
}
