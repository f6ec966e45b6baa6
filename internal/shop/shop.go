// internal/shop/shop.go
package shop

import (
	"math"

	"go-survival-shooter/internal/defs"
	"go-survival-shooter/internal/entity"
)

// Track — ветка улучшений
type Track int

const (
	TrackHealth Track = iota
	TrackDamage
	TrackSpeed
	TrackFireRate
)

var tracks = [...]Track{TrackHealth, TrackDamage, TrackSpeed, TrackFireRate}

func (t Track) String() string {
	switch t {
	case TrackHealth:
		return "health"
	case TrackDamage:
		return "damage"
	case TrackSpeed:
		return "speed"
	case TrackFireRate:
		return "fire_rate"
	default:
		return "unknown"
	}
}

// Offer — текущая цена и уровень ветки. Уровень начинается с 1.
type Offer struct {
	Cost  int
	Level int
}

// Receipt — результат попытки покупки
type Receipt struct {
	Track     Track
	OK        bool
	Paid      int
	Level     int // уровень ветки после попытки
	NextCost  int
	CoinsLeft int
}

type upgrade struct {
	offer    Offer
	delta    float64
	minValue float64
}

// Shop продаёт улучшения игроку за монеты. Цена каждой ветки растёт после покупки.
type Shop struct {
	upgrades [len(tracks)]upgrade
}

// New создаёт магазин со стартовыми ценами из баланса
func New(def defs.ShopDefinition) *Shop {
	s := &Shop{}
	for _, t := range tracks {
		u := def.Health
		switch t {
		case TrackDamage:
			u = def.Damage
		case TrackSpeed:
			u = def.Speed
		case TrackFireRate:
			u = def.FireRate
		}
		s.upgrades[t] = upgrade{
			offer:    Offer{Cost: u.Cost, Level: 1},
			delta:    u.Delta,
			minValue: u.MinValue,
		}
	}
	return s
}

// Tracks возвращает ветки в порядке показа
func (s *Shop) Tracks() []Track {
	return tracks[:]
}

// Offer возвращает текущую цену и уровень ветки
func (s *Shop) Offer(t Track) Offer {
	if !t.valid() {
		return Offer{}
	}
	return s.upgrades[t].offer
}

// TryBuy покупает улучшение, если у игрока хватает монет.
// Если монет не хватает, ничего не меняется.
func (s *Shop) TryBuy(t Track, p *entity.Player) bool {
	return s.Buy(t, p).OK
}

// Buy is TryBuy with a detailed result.
func (s *Shop) Buy(t Track, p *entity.Player) Receipt {
	if !t.valid() {
		return Receipt{Track: t, CoinsLeft: p.Coins}
	}
	u := &s.upgrades[t]
	if p.Coins < u.offer.Cost {
		return Receipt{Track: t, Level: u.offer.Level, NextCost: u.offer.Cost, CoinsLeft: p.Coins}
	}

	paid := u.offer.Cost
	p.Coins -= paid
	u.apply(t, p)
	u.offer = u.offer.next()

	return Receipt{
		Track:     t,
		OK:        true,
		Paid:      paid,
		Level:     u.offer.Level,
		NextCost:  u.offer.Cost,
		CoinsLeft: p.Coins,
	}
}

func (s *Shop) TryBuyHealth(p *entity.Player) bool   { return s.TryBuy(TrackHealth, p) }
func (s *Shop) TryBuyDamage(p *entity.Player) bool   { return s.TryBuy(TrackDamage, p) }
func (s *Shop) TryBuySpeed(p *entity.Player) bool    { return s.TryBuy(TrackSpeed, p) }
func (s *Shop) TryBuyFireRate(p *entity.Player) bool { return s.TryBuy(TrackFireRate, p) }

func (u *upgrade) apply(t Track, p *entity.Player) {
	switch t {
	case TrackHealth:
		p.Health.Raise(int(math.Round(u.delta)))
	case TrackDamage:
		p.Damage += int(math.Round(u.delta))
	case TrackSpeed:
		p.Speed += u.delta
	case TrackFireRate:
		p.FireCooldown.Interval = math.Max(p.FireCooldown.Interval-u.delta, u.minValue)
	}
}

// next считает цену следующего уровня: cost*(level+1)/level.
// Цена всегда строго растёт.
func (o Offer) next() Offer {
	cost := o.Cost * (o.Level + 1) / o.Level
	if cost <= o.Cost {
		cost = o.Cost + 1
	}
	return Offer{Cost: cost, Level: o.Level + 1}
}

func (t Track) valid() bool {
	return t >= 0 && int(t) < len(tracks)
}
