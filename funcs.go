package eval

import (
	"math"
	"strconv"
)

// mathFunc identifies one of the built-in functions. The set is closed:
// the parser only ever emits these values, and both replays reject
// anything else.
type mathFunc int8

const (
	funcSin mathFunc = iota
	funcCos
	funcTan
	funcLog // natural logarithm
	funcExp
)

// funcNames resolves an identifier to a function id during parsing.
// Identifiers not present here fall through to variable lookup.
var funcNames = map[string]mathFunc{
	"sin": funcSin,
	"cos": funcCos,
	"tan": funcTan,
	"log": funcLog,
	"exp": funcExp,
}

// funcEval dispatches a function id to its float64 implementation.
// Not-a-number and infinity propagate as the math package dictates.
var funcEval = [...]func(float64) float64{
	funcSin: math.Sin,
	funcCos: math.Cos,
	funcTan: math.Tan,
	funcLog: math.Log,
	funcExp: math.Exp,
}

func (f mathFunc) String() string {
	switch f {
	case funcSin:
		return "sin"
	case funcCos:
		return "cos"
	case funcTan:
		return "tan"
	case funcLog:
		return "log"
	case funcExp:
		return "exp"
	default:
		return "mathFunc(" + strconv.Itoa(int(f)) + ")"
	}
}

// globalvars is the pre-seeded variable table. The spellings keep more
// digits than a float64 holds so that precision replays can re-read
// them.
var globalvars = map[string]constant{
	"e":  {math.E, "2.7182818284590452353603"},
	"pi": {math.Pi, "3.1415926535897932384626"},
}
