package graphalith

// IsBalanced reports whether every delimiter in text is matched by one of the
// same family, properly nested. Text with no delimiters, including the empty
// string, is balanced.
func IsBalanced(text string) bool {
	return CheckBalance(text) == nil
}

// CheckBalance is like IsBalanced, but reports the first problem as a
// *BracketError.
func CheckBalance(text string) error {
	var stack []opened
	col := 0
	for _, r := range text {
		col++
		if err := balanceStep(&stack, string(r), col); err != nil {
			return err
		}
	}
	return balanceEnd(stack)
}

// TokensBalanced checks the delimiters of a token sequence the same way
// CheckBalance checks text.
func TokensBalanced(toks []Token) error {
	var stack []opened
	for _, t := range toks {
		if err := balanceStep(&stack, t.Value(), t.pos); err != nil {
			return err
		}
	}
	return balanceEnd(stack)
}

// opened is an unclosed delimiter.
type opened struct {
	text string
	col  int
}

func balanceStep(stack *[]opened, text string, col int) error {
	switch Classify(text) {
	case DelimiterOpen:
		*stack = append(*stack, opened{text, col})
	case DelimiterClosed:
		s := *stack
		if len(s) == 0 {
			return &BracketError{Col: col, Right: text}
		}
		top := s[len(s)-1]
		*stack = s[:len(s)-1]
		if !matches(top.text, text) {
			return &BracketError{Col: col, Left: top.text, Right: text}
		}
	}
	return nil
}

func balanceEnd(stack []opened) error {
	if len(stack) == 0 {
		return nil
	}
	// Report the innermost unclosed delimiter.
	top := stack[len(stack)-1]
	return &BracketError{Col: top.col, Left: top.text}
}

// matches returns whether the delimiter close pairs with open.
func matches(open, close string) bool {
	if len(open) != 1 || len(close) != 1 {
		return false
	}
	m, ok := MatchingDelimiter(rune(open[0]))
	return ok && string(m) == close
}
