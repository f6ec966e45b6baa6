// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-survival-shooter/internal/app"
	"go-survival-shooter/internal/assets"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/internal/state"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

type options struct {
	balancePath string
	fontPath    string
	seed        int64
	logLevel    string
	menu        bool
	debug       bool
	pprofAddr   string
}

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.balancePath, "balance", "", "path to balance YAML (embedded defaults if empty)")
	flag.StringVar(&o.fontPath, "font", "", "path to a TTF/OTF font (Go Regular if empty)")
	flag.Int64Var(&o.seed, "seed", 0, "PRNG seed, 0 means time-based")
	flag.StringVar(&o.logLevel, "log-level", "info", "debug, info, warn or error")
	flag.BoolVar(&o.menu, "menu", true, "start from the main menu")
	flag.BoolVar(&o.debug, "debug", false, "show debug HUD lines")
	flag.StringVar(&o.pprofAddr, "pprof", "", "pprof listen address, e.g. localhost:6060")
	flag.Parse()
	return o
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler).With("run", uuid.NewString())
}

func main() {
	opts := parseFlags()
	logger := newLogger(opts.logLevel)

	if opts.pprofAddr != "" {
		go func() {
			logger.Warn("pprof server stopped", "err", http.ListenAndServe(opts.pprofAddr, nil))
		}()
	}

	balance := defs.Default()
	if opts.balancePath != "" {
		b, err := defs.Load(opts.balancePath)
		if err != nil {
			logger.Error("failed to load balance", "path", opts.balancePath, "err", err)
			os.Exit(1)
		}
		balance = b
	}

	fonts, err := assets.LoadFonts(opts.fontPath, config.HUDFontSize, config.TitleFontSize)
	if err != nil {
		logger.Error("failed to load fonts", "err", err)
		os.Exit(1)
	}

	game := app.NewGame(balance, opts.seed, logger)
	logger.Info("starting", "seed", game.Rng.Seed(), "menu", opts.menu)
	ctx := state.NewContext(game, fonts, opts.debug, logger)

	sm := state.NewStateMachine()
	if opts.menu {
		sm.SetState(state.NewMenuState(sm, ctx))
	} else {
		game.Start()
		sm.SetState(state.NewGameState(sm, ctx))
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(int(config.ScreenWidth*config.WindowScale), int(config.ScreenHeight*config.WindowScale))
	ebiten.SetWindowTitle("Survival")
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game stopped", "err", err)
		os.Exit(1)
	}
}
