// Package graphalith parses and evaluates bracketed arithmetic expressions.
//
// Expressions are numbers joined by the four operators + - * / and grouped
// with any of the delimiter pairs (), [], {}, and <>. Text is split into
// tokens, checked for balanced delimiters, built into a binary tree, and
// collapsed into a single number using float64 arithmetic.
//
// By default, operators fold to the right with no precedence, so "8 - 4 - 2"
// is "8 - (4 - 2)". The LeftAssociative option folds to the left instead.
// Neither ordering gives multiplication priority over addition; use
// delimiters to group terms.
//
// Division by zero follows IEEE 754 and produces an infinity or NaN rather
// than an error. Unary operators and implicit multiplication are not
// supported, although a sign after an operator or an open delimiter is part of
// a number when the number is all that follows it, up to the end of the
// expression or group: "2 * -3" and "(-3)" are allowed, "2 * -3 + 1" is not.
//
package graphalith
