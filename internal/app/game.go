// internal/app/game.go
package app

import (
	"log/slog"

	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/internal/entity"
	"go-survival-shooter/internal/event"
	"go-survival-shooter/internal/input"
	"go-survival-shooter/internal/shop"
	"go-survival-shooter/internal/system"
	"go-survival-shooter/internal/utils"
)

// Game holds the simulation state and runs it tick by tick.
// It knows nothing about windows or keyboards: callers pass an input.Input.
type Game struct {
	World              *entity.World
	Shop               *shop.Shop
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	PlayerSystem       *system.PlayerSystem
	EnemySystem        *system.EnemySystem
	CollisionSystem    *system.CollisionSystem
	CleanupSystem      *system.CleanupSystem
	SpawnSystem        *system.SpawnSystem
	ProgressionSystem  *system.ProgressionSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem

	balance     *defs.Balance
	logger      *slog.Logger
	accumulator float64
}

// NewGame builds a game in the menu phase. A zero seed picks one from the clock;
// the seed actually used is available through Rng.Seed().
func NewGame(balance *defs.Balance, seed int64, logger *slog.Logger) *Game {
	if balance == nil {
		balance = defs.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	world := entity.NewWorld(balance)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	// Сид в каждой записи: по журналу можно повторить забег
	logger = logger.With("seed", rng.Seed())

	g := &Game{
		World:           world,
		Shop:            shop.New(balance.Shop),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		balance:         balance,
		logger:          logger,
	}

	// Порядок подписки важен: награда начисляется раньше, чем
	// засчитывается убийство для повышения уровня.
	g.PlayerSystem = system.NewPlayerSystem(world, eventDispatcher)
	g.CollisionSystem = system.NewCollisionSystem(world, eventDispatcher)
	g.EnemySystem = system.NewEnemySystem(world, g.CollisionSystem)
	g.CleanupSystem = system.NewCleanupSystem(world)
	g.SpawnSystem = system.NewSpawnSystem(world, balance, rng, eventDispatcher)
	g.ProgressionSystem = system.NewProgressionSystem(world, balance.Spawn, eventDispatcher)
	g.StateSystem = system.NewStateSystem(world, g, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(world, balance, eventDispatcher)

	eventDispatcher.Subscribe(NewLogListener(logger),
		event.EnemyKilled, event.BossSpawned, event.BossDefeated, event.LevelUp,
		event.PlayerDied, event.UpgradePurchased, event.UpgradeRejected, event.PhaseChanged)

	return g
}

// Update advances the simulation by one frame. The frame delta is clamped to
// config.MaxDeltaTime and consumed in fixed ticks of config.TickDuration, at
// most config.MaxTicksPerFrame per frame. One-shot inputs apply once per frame.
// Returns the number of ticks run.
func (g *Game) Update(frameDelta float64, in input.Input) int {
	frameDelta = max(0, min(frameDelta, config.MaxDeltaTime))
	g.accumulator += frameDelta

	ticks := 0
	for g.accumulator+1e-9 >= config.TickDuration && ticks < config.MaxTicksPerFrame {
		tickIn := in
		if ticks > 0 {
			tickIn = in.HeldOnly()
		}
		g.Step(config.TickDuration, tickIn)
		g.accumulator -= config.TickDuration
		ticks++
	}
	if g.accumulator >= config.TickDuration {
		// Отставание больше, чем можно догнать за кадр, отбрасываем его
		g.accumulator = 0
	}
	if ticks == 0 {
		g.handleInput(in)
	}
	return ticks
}

// Step runs exactly one simulation tick of length dt.
func (g *Game) Step(dt float64, in input.Input) {
	g.handleInput(in)
	if g.World.Phase != component.PlayingPhase {
		return
	}

	g.World.GameTime += dt
	g.PlayerSystem.Update(in, dt)
	g.EnemySystem.Update(dt)
	g.CollisionSystem.Update(dt)
	g.CleanupSystem.Update()
	g.SpawnSystem.Update(dt)
	g.ProgressionSystem.Update()
	g.StateSystem.Update()
	g.VisualEffectSystem.Update(dt)
}

// handleInput применяет однократные нажатия: старт и покупки в магазине
func (g *Game) handleInput(in input.Input) {
	if in.Start {
		g.StateSystem.HandleStart()
	}
	if g.World.Phase != component.PlayingPhase {
		return
	}
	if in.BuyHealth {
		g.Buy(shop.TrackHealth)
	}
	if in.BuyDamage {
		g.Buy(shop.TrackDamage)
	}
	if in.BuySpeed {
		g.Buy(shop.TrackSpeed)
	}
	if in.BuyFireRate {
		g.Buy(shop.TrackFireRate)
	}
}

// Buy tries to purchase one upgrade for the player and reports the outcome as an event.
func (g *Game) Buy(track shop.Track) shop.Receipt {
	r := g.Shop.Buy(track, g.World.Player)
	if r.OK {
		g.EventDispatcher.Emit(event.UpgradePurchased, r)
	} else {
		g.EventDispatcher.Emit(event.UpgradeRejected, r)
	}
	return r
}

// Start leaves the menu, or restarts after game over.
func (g *Game) Start() {
	g.StateSystem.HandleStart()
}

// ResetWorld starts a fresh run with the same balance and random stream.
func (g *Game) ResetWorld() {
	*g.World = *entity.NewWorld(g.balance)
	g.Shop = shop.New(g.balance.Shop)
	g.accumulator = 0
	g.logger.Info("world reset")
}

// Phase returns the current phase of the game.
func (g *Game) Phase() component.Phase {
	return g.StateSystem.Current()
}

// Balance returns the definitions the game was built with.
func (g *Game) Balance() *defs.Balance {
	return g.balance
}
