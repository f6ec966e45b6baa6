package system

import (
	"math"

	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/internal/entity"
	"go-survival-shooter/internal/event"
	"go-survival-shooter/pkg/geom"
)

const tick = 1.0 / 60

func newTestWorld() (*entity.World, *defs.Balance) {
	b := defs.Default()
	w := entity.NewWorld(b)
	w.Phase = component.PlayingPhase
	return w, b
}

// scriptedRandom отдаёт заранее заданные ответы
type scriptedRandom struct {
	chances []bool // по очереди для Chance, дальше всегда true
	kind    defs.KindID
	edge    int
	frac    float64
}

func (r *scriptedRandom) Intn(n int) int { return r.edge % n }

func (r *scriptedRandom) Range(lo, hi float64) float64 { return lo + r.frac*(hi-lo) }

func (r *scriptedRandom) Chance(p float64) bool {
	if len(r.chances) == 0 {
		return true
	}
	c := r.chances[0]
	r.chances = r.chances[1:]
	return c
}

func (r *scriptedRandom) ChooseWeighted([]defs.SpawnEntry) (defs.KindID, bool) {
	return r.kind, r.kind != ""
}

type fakeContext struct{ resets int }

func (c *fakeContext) ResetWorld() { c.resets++ }

// collector запоминает все полученные события
type collector struct{ events []event.Event }

func (c *collector) OnEvent(e event.Event) { c.events = append(c.events, e) }

func (c *collector) count(t event.EventType) int {
	n := 0
	for _, e := range c.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func bulletAt(pos geom.Vec2, damage int) *entity.Projectile {
	return &entity.Projectile{Pos: pos, Damage: damage, Size: 10, Owner: entity.OwnerPlayer}
}

func near(a, b geom.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
