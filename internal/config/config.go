// internal/config/config.go
package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 1600
	ScreenHeight = 1100
	WindowScale  = 0.75

	TickRate         = 60
	TickDuration     = 1.0 / TickRate
	MaxDeltaTime     = 0.06
	MaxTicksPerFrame = 4

	HUDFontSize      = 22
	TitleFontSize    = 48
	HUDOffsetX       = 20
	HUDOffsetY       = 20
	HUDLineHeight    = 26
	HealthBarWidth   = 220
	HealthBarHeight  = 14
	BossBarWidth     = 50
	BossBarHeight    = 5
	BossBarOffsetY   = 35
	ShopPanelWidth   = 520
	ShopPanelPadding = 24

	ParallaxSkySpeed       = 20.0 // пикселей в секунду
	ParallaxMountainsSpeed = 40.0
	ParallaxGroundSpeed    = 80.0

	// Визуальные эффекты
	DamageFlashDuration = 0.12 // секунд
	BurstDuration       = 0.35
	BurstRadiusFactor   = 1.8 // радиус кольца относительно размера врага
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	PlayerColor       = colornames.Limegreen
	PlayerBulletColor = colornames.Yellow
	EnemyBulletColor  = colornames.Red
	MeleeColor        = colornames.Crimson
	RangedColor       = colornames.Royalblue
	BossColor         = colornames.Red
	BossBarBackground = colornames.Black
	BossBarColor      = colornames.Lime
	HealthBarColor    = colornames.Limegreen
	HealthBarLowColor = colornames.Orangered
	HealthBarBack     = color.RGBA{60, 60, 60, 220}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextMutedColor    = colornames.Gray
	PanelColor        = color.RGBA{10, 10, 20, 220}
	PanelStrokeColor  = colornames.Whitesmoke
	OverlayColor      = color.RGBA{0, 0, 0, 160}
	DamageFlashColor  = colornames.White
	BurstColor        = colornames.Orange

	SkyColor       = colornames.Midnightblue
	MountainsColor = colornames.Darkslateblue
	GroundColor    = colornames.Darkolivegreen
)
