// internal/state/context.go
package state

import (
	"log/slog"

	"go-survival-shooter/internal/app"
	"go-survival-shooter/internal/assets"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/ui"
)

// Context — всё, что состояния делят между собой: игра, шрифты и виджеты
type Context struct {
	Game     *app.Game
	Fonts    *assets.Fonts
	Render   *ui.RenderSystem
	HUD      *ui.HUD
	Shop     *ui.ShopPanel
	Parallax *ui.Parallax
	Logger   *slog.Logger
}

// NewContext собирает виджеты вокруг готовой игры
func NewContext(game *app.Game, fonts *assets.Fonts, debug bool, logger *slog.Logger) *Context {
	return &Context{
		Game:     game,
		Fonts:    fonts,
		Render:   ui.NewRenderSystem(game.World),
		HUD:      ui.NewHUD(fonts.HUD, debug),
		Shop:     ui.NewShopPanel(fonts.Title, fonts.HUD),
		Parallax: ui.NewParallax(config.ScreenWidth, config.ScreenHeight),
		Logger:   logger,
	}
}
