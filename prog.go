package eval

import "strconv"

// instruction is one step of a compiled Program. op selects the
// operation; pool is a constant pool index, meaningful only for opConst;
// fn identifies a built-in function, meaningful only for opCall.
type instruction struct {
	op   opcode
	pool int
	fn   mathFunc
}

type opcode int8

const (
	opNone opcode = iota

	opConst // push constants[pool]
	opCall  // pop one value, push fn of it

	opNeg // negate the top of the stack
	opAdd // pop two values, push their sum
	opSub // pop two values, push their difference
	opMul // pop two values, push their product
	opDiv // pop two values, push their quotient
	opPow // pop two values, push the lower raised to the upper

	opEnd // pop one value, report it as a statement result
)

func (op opcode) String() string {
	switch op {
	case opNone:
		return "None"
	case opConst:
		return "Const"
	case opCall:
		return "Call"
	case opNeg:
		return "Neg"
	case opAdd:
		return "Add"
	case opSub:
		return "Sub"
	case opMul:
		return "Mul"
	case opDiv:
		return "Div"
	case opPow:
		return "Pow"
	case opEnd:
		return "End"
	default:
		return "opcode(" + strconv.Itoa(int(op)) + ")"
	}
}

// char returns the operator's literal character. Only the binary
// arithmetic opcodes have one.
func (op opcode) char() byte {
	switch op {
	case opAdd:
		return '+'
	case opSub:
		return '-'
	case opMul:
		return '*'
	case opDiv:
		return '/'
	case opPow:
		return '^'
	default:
		panic("eval: no operator character for " + op.String())
	}
}

// constant is one constant pool entry. text is the source spelling of
// the value, kept so that replays at higher precision than float64 can
// re-read it.
type constant struct {
	val  float64
	text string
}

// Program is the compiled form of one input line: a flat postfix
// instruction sequence over a constant pool. Each statement in the line
// ends with an opEnd instruction. A Program and its pool belong to the
// Parse call that built them; compiling the next line builds fresh ones.
type Program struct {
	code   []instruction
	consts []constant
}

// Statements returns the number of statements compiled into the program.
func (p *Program) Statements() int {
	n := 0
	for _, in := range p.code {
		if in.op == opEnd {
			n++
		}
	}
	return n
}
