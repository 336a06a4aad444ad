package actions

import "fmt"

// Operator is the kind of an Action. The values are ordered the way
// actions are applied.
type Operator int

const (
	Enable Operator = iota
	Disable
	Reset
	Output
)

var sigils = map[byte]Operator{
	'+': Enable,
	'-': Disable,
	'%': Reset,
	'?': Output,
}

// OperatorFor returns the operator introduced by sigil.
func OperatorFor(sigil byte) (Operator, bool) {
	op, ok := sigils[sigil]
	return op, ok
}

// Sigil returns the character that introduces the operator on the command line.
func (o Operator) Sigil() byte {
	for s, op := range sigils {
		if op == o {
			return s
		}
	}
	return 0
}

func (o Operator) String() string {
	switch o {
	case Enable:
		return "enable"
	case Disable:
		return "disable"
	case Reset:
		return "reset"
	case Output:
		return "output"
	default:
		return fmt.Sprintf("operator(%d)", int(o))
	}
}
