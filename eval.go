package eval

import (
	"math"
	"strconv"
)

// Eval replays the program over a float64 stack and returns one result
// per statement, in source order. Arithmetic follows float64 semantics:
// division by zero yields an infinity, and operations with no defined
// value, such as a negative base raised to a fractional power, yield a
// NaN that propagates through the rest of the statement.
//
// Eval panics if the replay would pop an empty stack or leaves values
// behind after the last instruction. Both indicate a defect in the
// compiler, not bad input: Parse never emits such a program.
func (p *Program) Eval() []float64 {
	var results []float64
	var stack []float64
	pop := func() float64 {
		if len(stack) == 0 {
			panic("eval: pop on empty stack")
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}
	for _, in := range p.code {
		switch in.op {
		case opConst:
			stack = append(stack, p.consts[in.pool].val)
		case opCall:
			b := pop()
			stack = append(stack, funcEval[in.fn](b))
		case opNeg:
			b := pop()
			stack = append(stack, -b)
		case opAdd:
			b := pop()
			a := pop()
			stack = append(stack, a+b)
		case opSub:
			b := pop()
			a := pop()
			stack = append(stack, a-b)
		case opMul:
			b := pop()
			a := pop()
			stack = append(stack, a*b)
		case opDiv:
			b := pop()
			a := pop()
			stack = append(stack, a/b)
		case opPow:
			b := pop()
			a := pop()
			stack = append(stack, math.Pow(a, b))
		case opEnd:
			results = append(results, pop())
		default:
			panic("eval: invalid instruction " + in.op.String())
		}
	}
	if len(stack) != 0 {
		panic("eval: inconsistent stack: " + strconv.Itoa(len(stack)) + " values left")
	}
	return results
}

// EvalString is a shortcut to parse an input line and evaluate it with
// float64 arithmetic.
func EvalString(src string, opts ...ParseOption) ([]float64, error) {
	p, err := Parse(src, opts...)
	if err != nil {
		return nil, err
	}
	return p.Eval(), nil
}
