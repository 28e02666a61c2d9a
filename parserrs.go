package eval

import (
	"strconv"
	"strings"
)

// InputError is an error with position information. Every error
// resulting from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column of the input position at which the
	// error was detected.
	Pos() int
}

// NameError is an error indicating an identifier that is neither a
// built-in function nor a variable. It implements InputError.
type NameError struct {
	// Col is the position just past the identifier.
	Col int
	// Name is the identifier that was not recognized.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "unknown name: "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// BracketError is an error indicating a parenthesized group with no
// closing ')'. It implements InputError.
type BracketError struct {
	// Col is the position at which ')' was required.
	Col int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "expected ')'")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// SeparatorError is an error indicating a statement followed by neither
// a ';' nor the end of the input. It implements InputError.
type SeparatorError struct {
	// Col is the position of the first character after the statement.
	Col int
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "expected ';' or end of input")
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// CharError is an error indicating a character that cannot start a term.
// It implements InputError.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Char is the offending character.
	Char byte
}

func (err *CharError) Error() string {
	return errpos(err.Col, "unexpected character")
}

func (err *CharError) Pos() int {
	return err.Col
}

// EOFError is an error indicating input that ended where a term was
// required. It implements InputError.
type EOFError struct {
	// Col is the position just past the input.
	Col int
}

func (err *EOFError) Error() string {
	return errpos(err.Col, "unexpected end of input")
}

func (err *EOFError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// reportLen bounds the input snippet written by Report.
const reportLen = 20

// Report formats err as a diagnostic for the input line src: the error
// message, then up to reportLen characters of src starting at the
// failure position, then a caret line marking that position.
// Non-printable characters appear as escaped decimal values. If err
// carries no position, the result is just the message.
func Report(err error, src string) string {
	ie, ok := err.(InputError)
	if !ok {
		return err.Error()
	}
	var b strings.Builder
	b.WriteString(ie.Error())
	b.WriteByte('\n')
	k := ie.Pos() - 1
	if k < 0 {
		k = 0
	}
	if k > len(src) {
		k = len(src)
	}
	for i := k; i < len(src) && i < k+reportLen; i++ {
		ch := src[i]
		if ' ' <= ch && ch <= '~' {
			b.WriteByte(ch)
		} else {
			b.WriteByte('\\')
			b.WriteString(strconv.Itoa(int(ch)))
		}
	}
	b.WriteString("\n^")
	return b.String()
}

var (
	_ InputError = (*NameError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*CharError)(nil)
	_ InputError = (*EOFError)(nil)
)
