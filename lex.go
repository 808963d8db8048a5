package graphalith

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits text into a flat sequence of tokens. Each operator and
// delimiter is its own token. Every maximal run of other runes, spaces
// included, is one token. Runs consisting only of whitespace are dropped, so
// concatenating the texts of the result gives back text less those runs.
//
// If all of text is a number, the result is a single Number token. This is
// what allows e.g. "-3" or "1e-9" as a whole input.
//
// Tokenize never fails. Text that isn't a valid part of an expression becomes
// tokens that BuildTree rejects.
func Tokenize(text string) []Token {
	if Classify(text) == Number {
		return []Token{{text: text, kind: Number, pos: 1 + leadingSpace(text)}}
	}
	var toks []Token
	start, col, startcol := 0, 1, 1
	flush := func(end int) {
		if start < end {
			s := text[start:end]
			if strings.TrimSpace(s) != "" {
				toks = append(toks, Token{text: s, kind: Classify(s), pos: startcol + leadingSpace(s)})
			}
		}
	}
	for i, r := range text {
		if isSingle(r) {
			flush(i)
			toks = append(toks, Token{text: string(r), kind: Classify(string(r)), pos: col})
			start = i + utf8.RuneLen(r)
			startcol = col + 1
		}
		col++
	}
	flush(len(text))
	return toks
}

// isSingle returns whether r is always a token by itself.
func isSingle(r rune) bool {
	return strings.ContainsRune(Operators+OpenDelimiters+CloseDelimiters, r)
}

// leadingSpace counts the whitespace runes at the start of s.
func leadingSpace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}

// joined concatenates the texts of toks.
func joined(toks []Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.text)
	}
	return b.String()
}

// literal attempts to read a number spread over several tokens at the start of
// toks, e.g. "-", "3" or "1e", "-", "9". It considers at most four tokens and
// never crosses a delimiter. The result is the token count consumed, or 0.
func literal(toks []Token) (Token, int) {
	n := len(toks)
	if n > 4 {
		n = 4
	}
	for k := n; k > 1; k-- {
		span := toks[:k]
		if hasDelimiter(span) {
			continue
		}
		s := joined(span)
		if _, err := parseNum(strings.TrimSpace(s)); err == nil {
			return Token{text: s, kind: Number, pos: toks[0].pos}, k
		}
	}
	return Token{}, 0
}

// signed reads all of toks as one number, as in "-", "3". It fails if toks
// contain a delimiter or join to anything other than a number.
func signed(toks []Token) (Token, bool) {
	if len(toks) == 0 || hasDelimiter(toks) {
		return Token{}, false
	}
	s := joined(toks)
	if _, err := parseNum(strings.TrimSpace(s)); err != nil {
		return Token{}, false
	}
	return Token{text: s, kind: Number, pos: toks[0].pos}, true
}

func hasDelimiter(toks []Token) bool {
	for _, t := range toks {
		if t.kind == DelimiterOpen || t.kind == DelimiterClosed {
			return true
		}
	}
	return false
}
