package eval

import (
	"strconv"
	"strings"
)

// String renders the program's fully parenthesized reconstruction by
// replaying the instruction sequence over a stack of text fragments.
// Each statement appears on its own line, terminated by ';'. Constants
// keep their source spelling, so the result re-parses to an equivalent
// program.
//
// String panics if the replay would pop an empty stack or leaves
// fragments behind after the last instruction. Both indicate a defect
// in the compiler, not bad input: Parse never emits such a program.
func (p *Program) String() string {
	var out strings.Builder
	var stack []string
	pop := func() string {
		if len(stack) == 0 {
			panic("eval: print on empty stack")
		}
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return s
	}
	for _, in := range p.code {
		switch in.op {
		case opConst:
			stack = append(stack, p.consts[in.pool].text)
		case opCall:
			b := pop()
			stack = append(stack, in.fn.String()+"("+b+")")
		case opNeg:
			b := pop()
			stack = append(stack, "(-"+b+")")
		case opAdd, opSub, opMul, opDiv, opPow:
			b := pop()
			a := pop()
			stack = append(stack, "("+a+string(in.op.char())+b+")")
		case opEnd:
			out.WriteString(pop())
			out.WriteString(";\n")
		default:
			panic("eval: invalid instruction " + in.op.String())
		}
	}
	if len(stack) != 0 {
		panic("eval: inconsistent stack: " + strconv.Itoa(len(stack)) + " fragments left")
	}
	return out.String()
}
