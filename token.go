package graphalith

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Kind is the classification of a token's text.
type Kind int8

const (
	KindNone Kind = iota
	// Number is any text strconv.ParseFloat accepts, including values out of
	// range.
	Number
	// Alpha is text made only of letters.
	Alpha
	// AlphaNumeric is text made of letters and digits, with at least one of
	// each.
	AlphaNumeric
	// DelimiterOpen is an opening delimiter, e.g. (.
	DelimiterOpen
	// DelimiterClosed is a closing delimiter, e.g. ).
	DelimiterClosed
	// OpAdd, OpSub, OpMul, and OpDiv are the operators +, -, *, and /.
	OpAdd
	OpSub
	OpMul
	OpDiv
	// Unknown is anything else.
	Unknown
)

var kindnames = [...]string{
	KindNone:        "None",
	Number:          "Number",
	Alpha:           "Alpha",
	AlphaNumeric:    "AlphaNumeric",
	DelimiterOpen:   "DelimiterOpen",
	DelimiterClosed: "DelimiterClosed",
	OpAdd:           "OpAdd",
	OpSub:           "OpSub",
	OpMul:           "OpMul",
	OpDiv:           "OpDiv",
	Unknown:         "Unknown",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// IsOperator returns whether k is one of the four binary operators.
func (k Kind) IsOperator() bool {
	return OpAdd <= k && k <= OpDiv
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// OpenDelimiters and CloseDelimiters contain the runes which group
// expressions. A delimiter in byte position k in OpenDelimiters is matched with
// the delimiter in byte position k in CloseDelimiters.
const (
	OpenDelimiters  = "<({["
	CloseDelimiters = ">)}]"
)

var opkinds = [...]Kind{OpAdd, OpSub, OpMul, OpDiv}

// MatchingDelimiter returns the delimiter that pairs with r, in either
// direction. ok is false if r is not a delimiter.
func MatchingDelimiter(r rune) (m rune, ok bool) {
	if k := strings.IndexRune(OpenDelimiters, r); k >= 0 {
		return rune(CloseDelimiters[k]), true
	}
	if k := strings.IndexRune(CloseDelimiters, r); k >= 0 {
		return rune(OpenDelimiters[k]), true
	}
	return 0, false
}

// Classify determines the kind of a piece of text. Surrounding whitespace is
// ignored. The result depends only on text.
func Classify(text string) Kind {
	text = strings.TrimSpace(text)
	if text == "" {
		return Unknown
	}
	if _, err := parseNum(text); err == nil {
		return Number
	}
	var letters, digits, other bool
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			letters = true
		case unicode.IsDigit(r):
			digits = true
		default:
			other = true
		}
	}
	switch {
	case other:
		// Fall through to the tables.
	case letters && !digits:
		return Alpha
	case letters && digits:
		return AlphaNumeric
	}
	if len(text) != 1 {
		return Unknown
	}
	c := rune(text[0])
	switch {
	case strings.ContainsRune(OpenDelimiters, c):
		return DelimiterOpen
	case strings.ContainsRune(CloseDelimiters, c):
		return DelimiterClosed
	}
	if k := strings.IndexRune(Operators, c); k >= 0 {
		return opkinds[k]
	}
	return Unknown
}

// Token is a classified piece of an expression. The zero Token has kind
// KindNone and is not produced by any function in this package.
type Token struct {
	text string
	kind Kind
	pos  int
}

// NewToken creates a token from its text. Its kind is Classify(text).
func NewToken(text string) Token {
	return Token{text: text, kind: Classify(text)}
}

// number creates a Number token from a value.
func number(v float64) Token {
	return Token{text: strconv.FormatFloat(v, 'g', -1, 64), kind: Number}
}

// Text returns the exact text of the token, including any whitespace it was
// scanned with.
func (t Token) Text() string {
	return t.text
}

// Value returns the token's text without surrounding whitespace.
func (t Token) Value() string {
	return strings.TrimSpace(t.text)
}

// Kind returns the token's classification.
func (t Token) Kind() Kind {
	return t.kind
}

// Pos returns the 1-based rune column at which the token started in the text
// it was scanned from, or 0 if the token was not scanned.
func (t Token) Pos() int {
	return t.pos
}

// Float parses the token as a number.
func (t Token) Float() (float64, error) {
	return parseNum(t.Value())
}

// parseNum parses a float64. Numbers too large in magnitude are infinite
// rather than errors.
func parseNum(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		err = nil
	}
	return v, err
}

// Equal reports whether two tokens have the same value and kind. Positions
// are not compared.
func (t Token) Equal(u Token) bool {
	return t.Value() == u.Value() && t.kind == u.kind
}

func (t Token) String() string {
	return t.kind.String() + ":" + t.Value() + "@" + strconv.Itoa(t.pos)
}
