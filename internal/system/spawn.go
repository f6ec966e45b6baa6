// internal/system/spawn.go
package system

import (
	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/internal/entity"
	"go-survival-shooter/internal/event"
	"go-survival-shooter/pkg/geom"
)

// Random is the source of randomness for enemy spawning.
type Random interface {
	entity.Rand
	Range(lo, hi float64) float64
	Chance(p float64) bool
	ChooseWeighted(entries []defs.SpawnEntry) (defs.KindID, bool)
}

// Edge is the side of the field an enemy enters from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// SpawnSystem выпускает врагов с краёв поля. Темп растёт с уровнем,
// живым может быть только один босс.
type SpawnSystem struct {
	world           *entity.World
	spawn           defs.SpawnDefinition
	enemies         defs.EnemyDefs
	rng             Random
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(world *entity.World, b *defs.Balance, rng Random, eventDispatcher *event.Dispatcher) *SpawnSystem {
	s := &SpawnSystem{
		world:           world,
		spawn:           b.Spawn,
		enemies:         b.Enemies,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(s, event.BossDefeated)
	return s
}

// Update с вероятностью SpawnRate*dt выпускает одного врага.
// Если выпал босс, он появляется только когда другого босса нет и сработал BossChance.
func (s *SpawnSystem) Update(deltaTime float64) {
	if !s.rng.Chance(s.world.SpawnRate * deltaTime) {
		return
	}
	id, ok := s.rng.ChooseWeighted(s.spawn.Kinds)
	if !ok {
		return
	}
	kind := component.KindFromID(id)
	if kind == component.KindBoss && (s.world.BossAlive || !s.rng.Chance(s.spawn.BossChance)) {
		return
	}
	s.Spawn(kind, s.EdgePoint(Edge(s.rng.Intn(4))))
}

// Spawn создаёт врага нужного вида с характеристиками текущего уровня.
func (s *SpawnSystem) Spawn(kind component.Kind, pos geom.Vec2) entity.Enemy {
	e := entity.NewEnemy(kind, pos, s.world.Level, s.enemies, s.rng)
	s.world.Enemies = append(s.world.Enemies, e)

	info := event.SpawnInfo{Kind: kind, Pos: pos, Level: s.world.Level}
	if e.IsBoss() {
		s.world.BossAlive = true
		s.eventDispatcher.Emit(event.BossSpawned, info)
	} else {
		s.eventDispatcher.Emit(event.EnemySpawned, info)
	}
	return e
}

// EdgePoint возвращает случайную точку на указанной стороне поля
func (s *SpawnSystem) EdgePoint(edge Edge) geom.Vec2 {
	f := s.world.Field
	switch edge {
	case EdgeTop:
		return geom.V(s.rng.Range(f.Min.X, f.Max.X), f.Min.Y)
	case EdgeRight:
		return geom.V(f.Max.X, s.rng.Range(f.Min.Y, f.Max.Y))
	case EdgeBottom:
		return geom.V(s.rng.Range(f.Min.X, f.Max.X), f.Max.Y)
	default:
		return geom.V(f.Min.X, s.rng.Range(f.Min.Y, f.Max.Y))
	}
}

func (s *SpawnSystem) OnEvent(e event.Event) {
	if e.Type == event.BossDefeated {
		s.world.BossAlive = false
	}
}
