// internal/ui/render_system.go
package ui

import (
	"image/color"

	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/entity"
	"go-survival-shooter/pkg/geom"
	"go-survival-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует мир: фон, врагов, снаряды, игрока и эффекты
type RenderSystem struct {
	world  *entity.World
	shapes *render.ShapeRenderer
}

func NewRenderSystem(world *entity.World) *RenderSystem {
	return &RenderSystem{world: world, shapes: render.NewShapeRenderer()}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	for _, e := range s.world.Enemies {
		s.drawEnemy(screen, e)
	}
	for _, b := range s.world.EnemyBullets {
		drawBullet(screen, b, config.EnemyBulletColor)
	}
	for _, b := range s.world.Player.Bullets {
		drawBullet(screen, b, config.PlayerBulletColor)
	}
	s.drawPlayer(screen)

	for _, b := range s.world.Bursts {
		p := b.Progress()
		vector.StrokeCircle(screen, float32(b.X), float32(b.Y), float32(b.MaxRadius*p), 3,
			render.WithAlpha(b.Color, 1-p), true)
	}
}

func (s *RenderSystem) drawEnemy(screen *ebiten.Image, e entity.Enemy) {
	clr := flashed(enemyColor(e.Kind()), e.Flash())
	pos, size := e.Pos(), e.Size()

	switch e.Kind() {
	case component.KindMelee:
		s.shapes.FillPolygon(screen, render.TrianglePoints(pos, size), clr)
	case component.KindRanged:
		s.shapes.FillPolygon(screen, render.HexagonPoints(pos, size), clr)
	case component.KindBoss:
		box := geom.RectCentered(pos, size)
		render.FillRect(screen, box, clr)
		render.StrokeRect(screen, box, 2, render.DarkenColor(render.ToRGBA(config.BossColor)))
		drawBossBar(screen, e)
	}
}

// drawBossBar рисует полосу здоровья над боссом
func drawBossBar(screen *ebiten.Image, e entity.Enemy) {
	pos := e.Pos()
	back := geom.R(pos.X-config.BossBarWidth/2, pos.Y-config.BossBarOffsetY, config.BossBarWidth, config.BossBarHeight)
	render.FillRect(screen, back, config.BossBarBackground)

	fill := back
	fill.Max.X = fill.Min.X + back.Width()*float64(e.HP())/float64(max(e.MaxHP(), 1))
	render.FillRect(screen, fill, config.BossBarColor)
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image) {
	p := s.world.Player
	render.FillRect(screen, p.Hitbox(), flashed(config.PlayerColor, &p.Flash))
}

func drawBullet(screen *ebiten.Image, b *entity.Projectile, clr color.Color) {
	vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Size/2), clr, true)
}

func enemyColor(k component.Kind) color.Color {
	switch k {
	case component.KindRanged:
		return config.RangedColor
	case component.KindBoss:
		return config.BossColor
	default:
		return config.MeleeColor
	}
}

// flashed подмешивает цвет вспышки урона
func flashed(base color.Color, f *component.DamageFlash) color.Color {
	if f == nil || f.Intensity() == 0 {
		return base
	}
	return render.Mix(base, config.DamageFlashColor, f.Intensity())
}
