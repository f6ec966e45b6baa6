package component

import "go-survival-shooter/internal/defs"

// Kind — вид врага. Набор закрыт: слабый ближнего боя, стрелок и босс.
type Kind int

const (
	KindMelee Kind = iota
	KindRanged
	KindBoss
)

func (k Kind) String() string {
	switch k {
	case KindMelee:
		return "Triangle"
	case KindRanged:
		return "Hexagon"
	case KindBoss:
		return "Boss"
	default:
		return "Unknown"
	}
}

// KindFromID переводит имя вида из файла баланса в Kind
func KindFromID(id defs.KindID) Kind {
	switch id {
	case defs.KindRanged:
		return KindRanged
	case defs.KindBoss:
		return KindBoss
	default:
		return KindMelee
	}
}

// ID возвращает имя вида для файла баланса
func (k Kind) ID() defs.KindID {
	switch k {
	case KindRanged:
		return defs.KindRanged
	case KindBoss:
		return defs.KindBoss
	default:
		return defs.KindMelee
	}
}
