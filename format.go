package graphalith

import (
	"strings"
	"unicode"
)

// Normalize cleans up text typed by a person before it is parsed. It trims
// surrounding whitespace, replaces each run of whitespace with one space, and
// folds runs of signs, ignoring whitespace between them: "--" becomes "+",
// "+-" and "-+" become "-", and so on.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	var sign int
	space := false
	for _, r := range strings.TrimSpace(text) {
		switch {
		case unicode.IsSpace(r):
			space = true
		case r == '+', r == '-':
			if sign == 0 {
				if space {
					b.WriteByte(' ')
				}
				sign = 1
			}
			if r == '-' {
				sign = -sign
			}
			space = false
		default:
			if sign != 0 {
				b.WriteByte(signbyte(sign))
				sign = 0
			}
			if space {
				b.WriteByte(' ')
				space = false
			}
			b.WriteRune(r)
		}
	}
	if sign != 0 {
		b.WriteByte(signbyte(sign))
	}
	return b.String()
}

func signbyte(sign int) byte {
	if sign < 0 {
		return '-'
	}
	return '+'
}
