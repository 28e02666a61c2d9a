package eval

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// EvalPrec replays the program over a *big.Float stack with prec bits of
// precision and returns one result per statement, in source order.
// Constants are re-read from their source spelling at the requested
// precision, so a high-precision replay is not limited to the float64
// values Eval uses.
//
// Not every operation carries over from float64. sin, cos, and tan have
// no arbitrary-precision implementation and report a PrecisionError,
// and operations that would produce a NaN, which big.Float cannot
// represent, report a DomainError instead: 0/0, inf/inf, the logarithm
// of a non-positive value, and a negative base raised to a power.
//
// The same internal-consistency panics as Eval apply.
func (p *Program) EvalPrec(prec uint) ([]*big.Float, error) {
	consts := make([]*big.Float, len(p.consts))
	for i, c := range p.consts {
		consts[i] = parseConst(c.text, prec)
	}
	var results []*big.Float
	var stack []*big.Float
	pop := func() *big.Float {
		if len(stack) == 0 {
			panic("eval: pop on empty stack")
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}
	top := func() *big.Float {
		if len(stack) == 0 {
			panic("eval: pop on empty stack")
		}
		return stack[len(stack)-1]
	}
	for _, in := range p.code {
		switch in.op {
		case opConst:
			stack = append(stack, new(big.Float).SetPrec(prec).Set(consts[in.pool]))
		case opCall:
			b := pop()
			r := new(big.Float).SetPrec(prec)
			switch in.fn {
			case funcExp:
				bigfloat.Exp(r, b)
			case funcLog:
				if b.Sign() <= 0 {
					return nil, &DomainError{X: b, Func: "log"}
				}
				bigfloat.Log(r, b)
			case funcSin, funcCos, funcTan:
				return nil, &PrecisionError{Func: in.fn.String()}
			default:
				panic("eval: unknown function " + in.fn.String())
			}
			stack = append(stack, r)
		case opNeg:
			b := top()
			b.Neg(b)
		case opAdd:
			b := pop()
			a := top()
			a.Add(a, b)
		case opSub:
			b := pop()
			a := top()
			a.Sub(a, b)
		case opMul:
			b := pop()
			a := top()
			a.Mul(a, b)
		case opDiv:
			b := pop()
			a := top()
			// Quo panics on 0/0 and inf/inf.
			if a.Sign() == 0 && b.Sign() == 0 || a.IsInf() && b.IsInf() {
				return nil, &DomainError{X: b, Func: "/"}
			}
			a.Quo(a, b)
		case opPow:
			b := pop()
			a := top()
			if a.Signbit() {
				return nil, &DomainError{X: a, Func: "^"}
			}
			bigfloat.Pow(a, a, b)
		case opEnd:
			results = append(results, pop())
		default:
			panic("eval: invalid instruction " + in.op.String())
		}
	}
	if len(stack) != 0 {
		panic("eval: inconsistent stack: " + strconv.Itoa(len(stack)) + " values left")
	}
	return results, nil
}

// parseConst re-reads a constant's source spelling at the given
// precision.
func parseConst(text string, prec uint) *big.Float {
	r, _, err := big.ParseFloat(text, 10, prec, big.ToNearestEven)
	switch {
	case err == nil: // do nothing
	case err.Error() == "exponent overflow",
		strings.HasSuffix(err.Error(), ": value out of range"):
		// There isn't realistically any better way to detect this error.
		r = new(big.Float).SetInf(text[0] == '-')
	default:
		panic("eval: invalid constant " + strconv.Quote(text) + " (" + err.Error() + ")")
	}
	return r
}

// DomainError is an error reported when a precision replay meets a
// value outside an operation's domain.
type DomainError struct {
	// X is the out-of-domain value.
	X *big.Float
	// Func is the operation's name.
	Func string
}

func (err *DomainError) Error() string {
	return err.X.String() + " outside domain of " + err.Func
}

// PrecisionError is an error reported when a program calls a function
// that has no arbitrary-precision implementation.
type PrecisionError struct {
	// Func is the function's name.
	Func string
}

func (err *PrecisionError) Error() string {
	return err.Func + " is not implemented at arbitrary precision"
}
