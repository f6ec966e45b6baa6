// internal/ui/shop_panel.go
package ui

import (
	"fmt"

	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/shop"
	"go-survival-shooter/pkg/geom"
	"go-survival-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ShopRow — одна строка панели магазина
type ShopRow struct {
	Key        string
	Label      string
	Cost       int
	Level      int
	Affordable bool
}

var trackLabels = map[shop.Track]string{
	shop.TrackHealth:   "Max health",
	shop.TrackDamage:   "Damage",
	shop.TrackSpeed:    "Move speed",
	shop.TrackFireRate: "Fire rate",
}

// ShopPanel — панель магазина поверх замороженной игры
type ShopPanel struct {
	titleFace font.Face
	face      font.Face
}

func NewShopPanel(titleFace, face font.Face) *ShopPanel {
	return &ShopPanel{titleFace: titleFace, face: face}
}

// Rows собирает строки панели в порядке веток магазина. Клавиши 1-4.
func (p *ShopPanel) Rows(s *shop.Shop, coins int) []ShopRow {
	rows := make([]ShopRow, 0, len(s.Tracks()))
	for i, t := range s.Tracks() {
		o := s.Offer(t)
		rows = append(rows, ShopRow{
			Key:        fmt.Sprint(i + 1),
			Label:      trackLabels[t],
			Cost:       o.Cost,
			Level:      o.Level,
			Affordable: coins >= o.Cost,
		})
	}
	return rows
}

func (p *ShopPanel) Draw(screen *ebiten.Image, s *shop.Shop, coins int) {
	bounds := geom.R(0, 0, config.ScreenWidth, config.ScreenHeight)
	render.FillRect(screen, bounds, config.OverlayColor)

	rows := p.Rows(s, coins)
	panel := panelRect(bounds, len(rows))
	render.FillRect(screen, panel, config.PanelColor)
	render.StrokeRect(screen, panel, 2, config.PanelStrokeColor)

	x := int(panel.Min.X) + config.ShopPanelPadding
	y := int(panel.Min.Y) + config.ShopPanelPadding + config.HUDLineHeight
	text.Draw(screen, "SHOP", p.titleFace, x, y, config.TextLightColor)
	y += config.HUDLineHeight * 2
	text.Draw(screen, fmt.Sprintf("Coins: %d", coins), p.face, x, y, config.TextLightColor)
	y += config.HUDLineHeight

	for _, r := range rows {
		clr := config.TextMutedColor
		if r.Affordable {
			clr = config.TextLightColor
		}
		line := fmt.Sprintf("[%s] %-12s lvl %-3d %6d coins", r.Key, r.Label, r.Level, r.Cost)
		text.Draw(screen, line, p.face, x, y, clr)
		y += config.HUDLineHeight
	}
	text.Draw(screen, "P: resume", p.face, x, y, config.TextMutedColor)
}

// panelRect центрирует панель в bounds. Высота: заголовок, монеты, строки и подсказка.
func panelRect(bounds geom.Rect, rows int) geom.Rect {
	c := bounds.Center()
	height := float64(config.ShopPanelPadding*2 + config.HUDLineHeight*(rows+4))
	return geom.R(c.X-config.ShopPanelWidth/2, c.Y-height/2, config.ShopPanelWidth, height)
}
