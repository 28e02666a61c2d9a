package eval

import "strconv"

// The grammar, loosest tier first:
//
//	Line  = [ Stmt { ';' Stmt } ] [ ';' ]
//	Stmt  = Sum
//	Sum   = Prod { ('+' | '-') Prod }
//	Prod  = Unary { ('*' | '/') Unary }
//	Unary = '-' Unary | Pow
//	Pow   = Atom { '^' Unary }
//	Atom  = num | name | funcname Unary | '(' Sum ')'
//
// Each tier compiles directly into the flat instruction sequence; there
// is no intermediate tree. Because the right operand of '^' parses
// through the unary tier, which re-enters the power tier, chained
// exponentiation is right-associative and a unary minus on the right
// scopes over the rest of the chain.

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
)

// parsectx holds the variable table for one parse.
type parsectx struct {
	vars map[string]constant
}

// seed copies the pre-seeded variable table on first write.
func (p *parsectx) seed() {
	if p.vars != nil {
		return
	}
	p.vars = make(map[string]constant, len(globalvars)+1)
	for k, v := range globalvars {
		p.vars[k] = v
	}
}

// WithVar sets the value of a variable for parsing. Setting a variable
// whose name is a built-in function has no effect, since identifier
// resolution consults the function set first.
func WithVar(name string, val float64) ParseOption {
	return varopt{name, val}
}

func (o varopt) parseOption(p parsectx) parsectx {
	p.seed()
	p.vars[o.name] = constant{o.val, strconv.FormatFloat(o.val, 'g', -1, 64)}
	return p
}

// WithVars sets the values of any number of variables for parsing.
func WithVars(vars map[string]float64) ParseOption {
	return varsopt(vars)
}

func (o varsopt) parseOption(p parsectx) parsectx {
	p.seed()
	for k, v := range o {
		p.vars[k] = constant{v, strconv.FormatFloat(v, 'g', -1, 64)}
	}
	return p
}

// Parse compiles one input line into a Program. A line holds one or
// more statements separated by ';'; an empty line compiles to an empty
// Program. The variable table starts with e and pi; options may add
// more names. Any syntax error aborts the whole line, and the returned
// error implements InputError.
func Parse(src string, opts ...ParseOption) (*Program, error) {
	var ctx parsectx
	for _, opt := range opts {
		ctx = opt.parseOption(ctx)
	}
	if ctx.vars == nil {
		ctx.vars = globalvars
	}
	p := parser{
		cursor: cursor{src: src},
		vars:   ctx.vars,
		prog:   &Program{},
	}
	p.eat()
	for p.pos < len(p.src) {
		if err := p.sum(); err != nil {
			return nil, err
		}
		if b := p.peek(); b != ';' && b != 0 {
			return nil, &SeparatorError{Col: p.col()}
		}
		p.emit(instruction{op: opEnd})
		if p.peek() == ';' {
			p.next()
		}
	}
	return p.prog, nil
}

// parser compiles an input line into a flat instruction sequence. Each
// tier of the grammar is one method; tighter-binding tiers are called
// from looser ones.
type parser struct {
	cursor
	vars map[string]constant
	prog *Program
}

func (p *parser) emit(in instruction) {
	p.prog.code = append(p.prog.code, in)
}

// pushConst appends c to the constant pool and emits the instruction
// pushing it.
func (p *parser) pushConst(c constant) {
	p.prog.consts = append(p.prog.consts, c)
	p.emit(instruction{op: opConst, pool: len(p.prog.consts) - 1})
}

// sum parses the loosest tier, a left-to-right chain of '+' and '-'. It
// is the entry point for a full statement.
func (p *parser) sum() error {
	if err := p.product(); err != nil {
		return err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return nil
		}
		p.next()
		if err := p.product(); err != nil {
			return err
		}
		if op == '+' {
			p.emit(instruction{op: opAdd})
		} else {
			p.emit(instruction{op: opSub})
		}
	}
}

// product parses a left-to-right chain of '*' and '/'.
func (p *parser) product() error {
	if err := p.unary(); err != nil {
		return err
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' {
			return nil
		}
		p.next()
		if err := p.unary(); err != nil {
			return err
		}
		if op == '*' {
			p.emit(instruction{op: opMul})
		} else {
			p.emit(instruction{op: opDiv})
		}
	}
}

// unary parses a leading '-'. The operand parses through this same tier
// recursively, so "- -x" nests and "-x^y" negates the whole power.
func (p *parser) unary() error {
	if p.peek() != '-' {
		return p.power()
	}
	p.next()
	if err := p.unary(); err != nil {
		return err
	}
	p.emit(instruction{op: opNeg})
	return nil
}

// power parses a chain of '^'. Each right operand parses through the
// unary tier, so "2^-3^2" compiles as 2^(-(3^2)).
func (p *parser) power() error {
	if err := p.atom(); err != nil {
		return err
	}
	for p.peek() == '^' {
		p.next()
		if err := p.unary(); err != nil {
			return err
		}
		p.emit(instruction{op: opPow})
	}
	return nil
}

// atom parses a numeric literal, an identifier, or a parenthesized
// subexpression. An identifier resolves to a built-in function first
// and a variable second; a function consumes one operand parsed through
// the unary tier, so "cos 2^3*4" compiles as (cos(2^3))*4.
func (p *parser) atom() error {
	switch b := p.peek(); {
	case isDigit(b):
		v, text := p.number()
		p.eat()
		p.pushConst(constant{val: v, text: text})
	case b == '(':
		p.next()
		if err := p.sum(); err != nil {
			return err
		}
		if p.peek() != ')' {
			return &BracketError{Col: p.col()}
		}
		p.next()
	case isAlpha(b), b == '_':
		name := p.name()
		p.eat()
		if fn, ok := funcNames[name]; ok {
			if err := p.unary(); err != nil {
				return err
			}
			p.emit(instruction{op: opCall, fn: fn})
			return nil
		}
		v, ok := p.vars[name]
		if !ok {
			return &NameError{Col: p.col(), Name: name}
		}
		p.pushConst(v)
	case b == 0:
		return &EOFError{Col: p.col()}
	default:
		return &CharError{Col: p.col(), Char: b}
	}
	return nil
}
