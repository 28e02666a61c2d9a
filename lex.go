package eval

import (
	"errors"
	"strconv"
)

// cursor scans one immutable input line. pos is the byte offset of the
// next unread character; the grammar is ASCII, so byte offsets and
// columns agree.
type cursor struct {
	src string
	pos int
}

// col is the 1-based column of the next unread character.
func (c *cursor) col() int {
	return c.pos + 1
}

// peek returns the next unread character, or 0 at the end of the input.
func (c *cursor) peek() byte {
	if c.pos >= len(c.src) {
		return 0
	}
	return c.src[c.pos]
}

// eat advances past whitespace.
func (c *cursor) eat() {
	for isSpace(c.peek()) {
		c.pos++
	}
}

// next advances one character and then past any whitespace.
func (c *cursor) next() {
	c.pos++
	c.eat()
}

// number scans a maximal numeric literal: digits, an optional fraction,
// and an optional exponent. The exponent marker only counts when at
// least one digit follows it (and an optional sign), so "2e" is the
// number 2 followed by the name "e". The caller has checked that the
// next character is a digit, so the scan cannot be empty, and no
// trailing delimiter is required: "12abc" is the number 12 followed by
// the name "abc".
func (c *cursor) number() (float64, string) {
	start := c.pos
	for isDigit(c.peek()) {
		c.pos++
	}
	if c.peek() == '.' {
		c.pos++
		for isDigit(c.peek()) {
			c.pos++
		}
	}
	if b := c.peek(); b == 'e' || b == 'E' {
		mark := c.pos
		c.pos++
		if b := c.peek(); b == '+' || b == '-' {
			c.pos++
		}
		if isDigit(c.peek()) {
			for isDigit(c.peek()) {
				c.pos++
			}
		} else {
			c.pos = mark
		}
	}
	text := c.src[start:c.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// The scan admits only spellings ParseFloat accepts; values out
		// of range are already clamped to an infinity.
		panic("eval: invalid number " + strconv.Quote(text) + ": " + err.Error())
	}
	return v, text
}

// name scans a maximal run of letters, digits, and underscores. The
// caller has checked that the next character is not a digit.
func (c *cursor) name() string {
	start := c.pos
	for isName(c.peek()) {
		c.pos++
	}
	return c.src[start:c.pos]
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isAlpha(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

func isName(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '_'
}
