package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_P       Position = "P"
	POS_D       Position = "D"
	POS_C       Position = "C"
	POS_A       Position = "A"
)

func ParsePosition(pos string) Position {
	pos = strings.ToLower(strings.TrimSpace(pos))
	switch pos {
	case "p", "por", "portiere":
		return POS_P
	case "d", "dif", "difensore":
		return POS_D
	case "c", "cen", "centrocampista":
		return POS_C
	case "a", "att", "attaccante":
		return POS_A
	default:
		return POS_UNKNOWN
	}
}

// Order returns the canonical on-field ordering used when sorting lists:
// P < D < C < A. Unknown positions sort after everything else.
func (p Position) Order() int {
	switch p {
	case POS_P:
		return 0
	case POS_D:
		return 1
	case POS_C:
		return 2
	case POS_A:
		return 3
	default:
		return 4
	}
}

func (p Position) Friendly() string {
	switch p {
	case POS_P:
		return "Portiere"
	case POS_D:
		return "Difensore"
	case POS_C:
		return "Centrocampista"
	case POS_A:
		return "Attaccante"
	default:
		return "Sconosciuto"
	}
}
