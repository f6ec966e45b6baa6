package system

import (
	"math"
	"testing"

	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/internal/entity"
	"go-survival-shooter/internal/event"
	"go-survival-shooter/internal/input"
	"go-survival-shooter/pkg/geom"
)

func TestCleanup_RemovesOnlySpent(t *testing.T) {
	w, b := newTestWorld()
	alive1 := entity.NewMelee(b.Enemies.Melee, geom.V(10, 10), 1)
	dead := entity.NewMelee(b.Enemies.Melee, geom.V(20, 20), 1)
	alive2 := entity.NewRanged(b.Enemies.Ranged, geom.V(30, 30), 1)
	dead.TakeDamage(100)
	w.Enemies = []entity.Enemy{alive1, dead, alive2}

	keep := bulletAt(geom.V(100, 100), 1)
	used := bulletAt(geom.V(100, 100), 1)
	used.Consume()
	away := bulletAt(geom.V(-50, 100), 1)
	w.Player.Bullets = []*entity.Projectile{used, keep, away}
	w.EnemyBullets = []*entity.Projectile{away, keep}

	NewCleanupSystem(w).Update()

	if len(w.Enemies) != 2 || w.Enemies[0] != alive1 || w.Enemies[1] != alive2 {
		t.Errorf("enemies = %v, want [alive1 alive2] in order", w.Enemies)
	}
	if len(w.Player.Bullets) != 1 || w.Player.Bullets[0] != keep {
		t.Errorf("player bullets = %v", w.Player.Bullets)
	}
	if len(w.EnemyBullets) != 1 || w.EnemyBullets[0] != keep {
		t.Errorf("enemy bullets = %v", w.EnemyBullets)
	}
}

func TestEnemySystem_CollectsShots(t *testing.T) {
	w, b := newTestWorld()
	d := event.NewDispatcher()
	es := NewEnemySystem(w, NewCollisionSystem(w, d))

	r := entity.NewRanged(b.Enemies.Ranged, geom.V(1500, 1000), 1)
	w.Enemies = []entity.Enemy{r}
	ticks := int(math.Round(b.Enemies.Ranged.ShootCooldown / tick))
	for i := 0; i < ticks; i++ {
		es.Update(tick)
	}
	if len(w.EnemyBullets) != 1 {
		t.Errorf("enemy bullets = %d, want 1", len(w.EnemyBullets))
	}
}

func TestSpawn_Probability(t *testing.T) {
	w, b := newTestWorld()
	d := event.NewDispatcher()
	rng := &scriptedRandom{chances: []bool{false}, kind: defs.KindMelee}
	ss := NewSpawnSystem(w, b, rng, d)

	ss.Update(tick)
	if len(w.Enemies) != 0 {
		t.Fatal("spawned when the roll failed")
	}
	ss.Update(tick)
	if len(w.Enemies) != 1 || w.Enemies[0].Kind() != component.KindMelee {
		t.Fatalf("enemies = %v, want one melee", w.Enemies)
	}
}

func TestSpawn_BossGate(t *testing.T) {
	tests := []struct {
		name      string
		bossAlive bool
		chances   []bool
		want      int
	}{
		{"no boss and chance passes", false, []bool{true, true}, 1},
		{"no boss and chance fails", false, []bool{true, false}, 0},
		{"boss already alive", true, []bool{true, true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, b := newTestWorld()
			w.BossAlive = tt.bossAlive
			ss := NewSpawnSystem(w, b, &scriptedRandom{chances: tt.chances, kind: defs.KindBoss}, event.NewDispatcher())
			ss.Update(tick)
			if len(w.Enemies) != tt.want {
				t.Errorf("enemies = %d, want %d", len(w.Enemies), tt.want)
			}
		})
	}
}

func TestSpawn_ScalesWithLevel(t *testing.T) {
	w, b := newTestWorld()
	w.Level = 4
	ss := NewSpawnSystem(w, b, &scriptedRandom{kind: defs.KindRanged}, event.NewDispatcher())
	e := ss.Spawn(component.KindRanged, geom.V(0, 0))
	if want := b.Enemies.Ranged.Health * 4; e.HP() != want {
		t.Errorf("hp = %d, want %d", e.HP(), want)
	}
}

func TestSpawn_EdgePoint(t *testing.T) {
	w, b := newTestWorld()
	ss := NewSpawnSystem(w, b, &scriptedRandom{frac: 0.25}, event.NewDispatcher())
	tests := []struct {
		edge Edge
		want geom.Vec2
	}{
		{EdgeTop, geom.V(400, 0)},
		{EdgeRight, geom.V(1600, 275)},
		{EdgeBottom, geom.V(400, 1100)},
		{EdgeLeft, geom.V(0, 275)},
	}
	for _, tt := range tests {
		if got := ss.EdgePoint(tt.edge); got != tt.want {
			t.Errorf("EdgePoint(%d) = %v, want %v", tt.edge, got, tt.want)
		}
	}
}

func TestProgression_Threshold(t *testing.T) {
	w, b := newTestWorld()
	d := event.NewDispatcher()
	ps := NewProgressionSystem(w, b.Spawn, d)
	events := &collector{}
	d.Subscribe(events, event.LevelUp)

	for i := 0; i < b.Spawn.KillThreshold-1; i++ {
		d.Emit(event.EnemyKilled, event.KillInfo{})
		ps.Update()
	}
	if w.Level != 1 || w.Kills != b.Spawn.KillThreshold-1 {
		t.Fatalf("level/kills = %d/%d before the threshold", w.Level, w.Kills)
	}

	d.Emit(event.EnemyKilled, event.KillInfo{})
	ps.Update()
	if w.Level != 2 || w.Kills != 0 {
		t.Errorf("level/kills = %d/%d, want 2/0", w.Level, w.Kills)
	}
	if want := b.Spawn.Rate + b.Spawn.RateStep; math.Abs(w.SpawnRate-want) > 1e-12 {
		t.Errorf("spawn rate = %v, want %v", w.SpawnRate, want)
	}
	if events.count(event.LevelUp) != 1 {
		t.Errorf("LevelUp dispatched %d times, want 1", events.count(event.LevelUp))
	}
}

func TestProgression_ExtraKillsCarryOver(t *testing.T) {
	w, b := newTestWorld()
	ps := NewProgressionSystem(w, b.Spawn, event.NewDispatcher())

	// Несколько убийств за один тик: лишние идут в счёт следующего уровня
	w.Kills = b.Spawn.KillThreshold + 1
	ps.Update()
	if w.Level != 2 || w.Kills != 1 {
		t.Errorf("level/kills = %d/%d, want 2/1", w.Level, w.Kills)
	}
}

func TestProgression_RateCapped(t *testing.T) {
	w, b := newTestWorld()
	ps := NewProgressionSystem(w, b.Spawn, event.NewDispatcher())
	for i := 0; i < 100; i++ {
		w.Kills = b.Spawn.KillThreshold
		ps.Update()
	}
	if w.SpawnRate != b.Spawn.MaxRate {
		t.Errorf("spawn rate = %v, want cap %v", w.SpawnRate, b.Spawn.MaxRate)
	}
	if w.Level != 101 {
		t.Errorf("level = %d, want 101", w.Level)
	}
}

func TestStateSystem_Transitions(t *testing.T) {
	w, _ := newTestWorld()
	w.Phase = component.MenuPhase
	d := event.NewDispatcher()
	ctx := &fakeContext{}
	ss := NewStateSystem(w, ctx, d)
	events := &collector{}
	d.Subscribe(events, event.PhaseChanged, event.PlayerDied)

	ss.Update()
	if ss.Current() != component.MenuPhase {
		t.Fatalf("phase = %v, want Menu", ss.Current())
	}

	ss.HandleStart()
	if ss.Current() != component.PlayingPhase {
		t.Fatalf("phase = %v, want Playing", ss.Current())
	}
	ss.HandleStart()
	if ctx.resets != 0 {
		t.Error("start during play reset the world")
	}

	w.Player.TakeDamage(1000)
	ss.Update()
	if ss.Current() != component.GameOverPhase {
		t.Fatalf("phase = %v, want GameOver", ss.Current())
	}
	ss.Update()
	if events.count(event.PlayerDied) != 1 {
		t.Errorf("PlayerDied dispatched %d times, want 1", events.count(event.PlayerDied))
	}

	ss.HandleStart()
	if ctx.resets != 1 || ss.Current() != component.PlayingPhase {
		t.Errorf("resets = %d, phase = %v", ctx.resets, ss.Current())
	}
	if events.count(event.PhaseChanged) != 3 {
		t.Errorf("PhaseChanged dispatched %d times, want 3", events.count(event.PhaseChanged))
	}
}

func TestPlayerSystem_AwardsBounty(t *testing.T) {
	w, _ := newTestWorld()
	d := event.NewDispatcher()
	ps := NewPlayerSystem(w, d)

	d.Emit(event.EnemyKilled, event.KillInfo{Coins: 100, Points: 50})
	d.Emit(event.LevelUp, event.LevelInfo{Level: 2})
	if w.Player.Coins != 100 || w.Player.Points != 50 {
		t.Errorf("coins/points = %d/%d, want 100/50", w.Player.Coins, w.Player.Points)
	}

	start := w.Player.Pos
	ps.Update(input.Input{Right: true}, 0.5)
	if got := w.Player.Pos.X - start.X; math.Abs(got-w.Player.Speed*0.5) > 1e-9 {
		t.Errorf("moved %v, want %v", got, w.Player.Speed*0.5)
	}
}

func TestVisualEffects_BurstLifetime(t *testing.T) {
	w, b := newTestWorld()
	d := event.NewDispatcher()
	vs := NewVisualEffectSystem(w, b, d)

	d.Emit(event.EnemyKilled, event.KillInfo{Kind: component.KindMelee, Pos: geom.V(5, 5)})
	d.Emit(event.EnemyKilled, event.KillInfo{Kind: component.KindBoss, Pos: geom.V(50, 50)})
	if len(w.Bursts) != 2 {
		t.Fatalf("bursts = %+v", w.Bursts)
	}
	// Радиус кольца зависит от размера убитого вида
	if got, want := w.Bursts[0].MaxRadius, b.Enemies.Melee.Size*config.BurstRadiusFactor; got != want {
		t.Errorf("melee burst radius = %v, want %v", got, want)
	}
	if got, want := w.Bursts[1].MaxRadius, b.Enemies.Boss.Size*config.BurstRadiusFactor; got != want {
		t.Errorf("boss burst radius = %v, want %v", got, want)
	}
	vs.Update(0.1)
	if len(w.Bursts) != 2 {
		t.Fatal("burst removed too early")
	}
	vs.Update(1)
	if len(w.Bursts) != 0 {
		t.Error("finished burst not removed")
	}
}
