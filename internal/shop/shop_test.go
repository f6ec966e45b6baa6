package shop

import (
	"math"
	"testing"

	"go-survival-shooter/internal/defs"
	"go-survival-shooter/internal/entity"
	"pgregory.net/rapid"
)

func newTestPlayer(coins int) *entity.Player {
	p := entity.NewPlayer(defs.Default().Player)
	p.Coins = coins
	return p
}

func TestBuyHealth_ExactCoins(t *testing.T) {
	s := New(defs.Default().Shop)
	p := newTestPlayer(50)

	if !s.TryBuyHealth(p) {
		t.Fatal("purchase with exact coins failed")
	}
	if p.Coins != 0 {
		t.Errorf("coins = %d, want 0", p.Coins)
	}
	if p.Health.Max != 15 || p.Health.Current != 15 {
		t.Errorf("health = %d/%d, want 15/15", p.Health.Current, p.Health.Max)
	}
	if got := s.Offer(TrackHealth); got != (Offer{Cost: 100, Level: 2}) {
		t.Errorf("offer = %+v, want {Cost:100 Level:2}", got)
	}
}

func TestBuy_NotEnoughCoinsIsNoop(t *testing.T) {
	def := defs.Default().Shop
	for _, tr := range []Track{TrackHealth, TrackDamage, TrackSpeed, TrackFireRate} {
		t.Run(tr.String(), func(t *testing.T) {
			s := New(def)
			before := s.Offer(tr)
			p := newTestPlayer(before.Cost - 1)
			snapshot := *p

			r := s.Buy(tr, p)
			if r.OK {
				t.Fatal("purchase succeeded with cost-1 coins")
			}
			if s.Offer(tr) != before {
				t.Errorf("offer changed to %+v", s.Offer(tr))
			}
			if p.Coins != snapshot.Coins || p.Health != snapshot.Health || p.Damage != snapshot.Damage ||
				p.Speed != snapshot.Speed || p.FireCooldown != snapshot.FireCooldown {
				t.Errorf("player changed: %+v", p)
			}
		})
	}
}

func TestBuy_AppliesDeltas(t *testing.T) {
	s := New(defs.Default().Shop)
	p := newTestPlayer(10000)

	s.TryBuyDamage(p)
	s.TryBuySpeed(p)
	s.TryBuyFireRate(p)

	if p.Damage != 2 {
		t.Errorf("damage = %d, want 2", p.Damage)
	}
	if p.Speed != 360 {
		t.Errorf("speed = %v, want 360", p.Speed)
	}
	if math.Abs(p.FireInterval()-0.45) > 1e-12 {
		t.Errorf("fire interval = %v, want 0.45", p.FireInterval())
	}
	if want := 10000 - 500 - 200 - 400; p.Coins != want {
		t.Errorf("coins = %d, want %d", p.Coins, want)
	}
}

func TestBuyFireRate_Floor(t *testing.T) {
	s := New(defs.Default().Shop)
	p := newTestPlayer(1 << 30)
	for i := 0; i < 20; i++ {
		s.TryBuyFireRate(p)
	}
	if got := p.FireInterval(); math.Abs(got-0.05) > 1e-12 {
		t.Errorf("fire interval = %v, want floor 0.05", got)
	}
}

func TestOffer_CostSequence(t *testing.T) {
	s := New(defs.Default().Shop)
	p := newTestPlayer(1 << 30)
	// 50, 100, 150, 200: cost/level*(level+1) для стартовой цены 50
	want := []int{100, 150, 200, 250}
	for i, w := range want {
		r := s.Buy(TrackHealth, p)
		if r.NextCost != w || r.Level != i+2 {
			t.Errorf("purchase %d: next cost %d level %d, want %d level %d", i+1, r.NextCost, r.Level, w, i+2)
		}
	}
}

func TestOffer_CostStrictlyIncreases(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		o := Offer{
			Cost:  rapid.IntRange(1, 1_000_000).Draw(t, "cost"),
			Level: rapid.IntRange(1, 1000).Draw(t, "level"),
		}
		n := o.next()
		if n.Cost <= o.Cost {
			t.Fatalf("next(%+v) = %+v, cost did not increase", o, n)
		}
		if n.Level != o.Level+1 {
			t.Fatalf("next(%+v) level = %d", o, n.Level)
		}
	})
}

func TestBuy_CoinsNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := New(defs.Default().Shop)
		p := newTestPlayer(rapid.IntRange(0, 5000).Draw(t, "coins"))
		buys := rapid.SliceOfN(rapid.IntRange(0, 3), 0, 30).Draw(t, "buys")
		for _, b := range buys {
			s.TryBuy(Track(b), p)
			if p.Coins < 0 {
				t.Fatalf("coins went negative: %d", p.Coins)
			}
		}
	})
}

func TestBuy_UnknownTrack(t *testing.T) {
	s := New(defs.Default().Shop)
	p := newTestPlayer(1000)
	if s.TryBuy(Track(42), p) {
		t.Error("unknown track purchase succeeded")
	}
	if p.Coins != 1000 {
		t.Errorf("coins = %d, want 1000", p.Coins)
	}
}
