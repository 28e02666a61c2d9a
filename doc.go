// Package eval evaluates arithmetic expressions supplied as text.
//
// An input line holds one or more statements separated by ';'. Parse
// compiles a line directly into a flat postfix instruction sequence with
// no intermediate tree. The same compiled Program drives two replays:
// String renders a fully parenthesized reconstruction showing how
// precedence and associativity were resolved, and Eval computes one
// float64 result per statement. For example, "2^-3^2" is understood as
// (2^(-(3^2))).
//
// Function application is prefix and needs no parentheses: "sin cos 2"
// is sin(cos(2)), and "sin 2^3" is sin(2^3).
package eval
