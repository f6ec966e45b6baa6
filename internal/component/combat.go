package component

// cooldownEpsilon поглощает накопленную ошибку float: N тиков по Interval/N
// должны давать ровно один период.
const cooldownEpsilon = 1e-9

// Health — компонент здоровья
type Health struct {
	Current int
	Max     int
}

// NewHealth создаёт полное здоровье
func NewHealth(max int) Health {
	return Health{Current: max, Max: max}
}

// TakeDamage вычитает урон и не даёт здоровью уйти ниже нуля.
// Возвращает оставшееся здоровье. Отрицательный урон игнорируется.
func (h *Health) TakeDamage(amount int) int {
	if amount > 0 {
		h.Current -= amount
	}
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current
}

// Raise увеличивает и максимум, и текущее здоровье
func (h *Health) Raise(amount int) {
	h.Max += amount
	h.Current += amount
}

// IsDead reports whether health has reached zero.
func (h Health) IsDead() bool {
	return h.Current <= 0
}

// Fraction возвращает долю оставшегося здоровья в [0, 1]
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	f := float64(h.Current) / float64(h.Max)
	if f > 1 {
		return 1
	}
	return f
}

// Cooldown — таймер между повторяющимися действиями (выстрелами).
// Время копится из дельт кадров, действие разрешено, когда накоплен интервал.
type Cooldown struct {
	Interval float64
	Elapsed  float64
}

// Tick добавляет прошедшее время
func (c *Cooldown) Tick(dt float64) {
	c.Elapsed += dt
}

// Ready сообщает, прошёл ли интервал
func (c Cooldown) Ready() bool {
	return c.Elapsed+cooldownEpsilon >= c.Interval
}

// Reset начинает отсчёт заново
func (c *Cooldown) Reset() {
	c.Elapsed = 0
}

// Prime делает действие доступным немедленно
func (c *Cooldown) Prime() {
	c.Elapsed = c.Interval
}

// Bounty is the reward for a kill.
type Bounty struct {
	Coins  int
	Points int
}
