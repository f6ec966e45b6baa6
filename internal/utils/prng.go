// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-survival-shooter/internal/defs"
)

// PRNGService — обёртка над генератором случайных чисел, через которую
// проходит вся случайность симуляции. С одинаковым сидом и одинаковым вводом
// игра повторяется тик в тик.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService создаёт сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed возвращает фактически использованный сид
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Range возвращает случайное число в диапазоне [lo, hi)
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Chance возвращает true с вероятностью p. При p <= 0 всегда false, при p >= 1 всегда true.
func (s *PRNGService) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return s.rng.Float64() < p
}

// ChooseWeighted выполняет взвешенный выбор вида врага из таблицы появления.
// Суммирует веса, выбирает число в этом диапазоне и находит запись, которой оно соответствует.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) (defs.KindID, bool) {
	if len(entries) == 0 {
		return "", false
	}

	totalWeight := 0
	for _, entry := range entries {
		if entry.Weight > 0 {
			totalWeight += entry.Weight
		}
	}
	if totalWeight <= 0 {
		return entries[0].Kind, true
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > r {
			return entry.Kind, true
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].Kind, true
}
