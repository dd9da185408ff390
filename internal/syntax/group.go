package syntax

// groupSpan holds the offsets of a group's opening and closing parentheses.
type groupSpan struct {
	open  int
	close int
}

// locateGroup finds the first top-level unescaped '(' in [lo, hi) and its
// matching ')'. Bracket expressions are skipped, so parentheses inside them
// are literal. A stray ')' before any '(' is reported as malformed.
func (p *parser) locateGroup(lo, hi int) (groupSpan, bool, error) {
	open := -1
	for i := lo; i < hi && open < 0; i++ {
		switch p.src[i] {
		case '\\':
			i++
		case '[':
			end, err := p.bracketEnd(i, hi)
			if err != nil {
				return groupSpan{}, false, err
			}
			i = end
		case ')':
			return groupSpan{}, false, malformed(i, "unmatched ')'")
		case '(':
			open = i
		}
	}
	if open < 0 {
		return groupSpan{}, false, nil
	}

	depth := 0
	for i := open + 1; i < hi; i++ {
		switch p.src[i] {
		case '\\':
			i++
		case '[':
			end, err := p.bracketEnd(i, hi)
			if err != nil {
				return groupSpan{}, false, err
			}
			i = end
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return groupSpan{open: open, close: i}, true, nil
			}
			depth--
		}
	}
	return groupSpan{}, false, malformed(open, "missing ')'")
}

// groupKind classifies the group opened at open and returns where its body starts.
func (p *parser) groupKind(open, close int) (GroupKind, int) {
	body := p.src[open+1 : close]
	for _, m := range groupMarkers {
		if hasPrefix(body, m.marker) {
			return m.kind, open + 1 + len([]rune(m.marker))
		}
	}
	return GroupCapture, open + 1
}

// bracketEnd returns the offset of the first unescaped ']' after the '[' at i.
func (p *parser) bracketEnd(i, hi int) (int, error) {
	for j := i + 1; j < hi; j++ {
		switch p.src[j] {
		case '\\':
			j++
		case ']':
			return j, nil
		}
	}
	return 0, malformed(i, "missing ']'")
}

func hasPrefix(s []rune, prefix string) bool {
	pr := []rune(prefix)
	if len(s) < len(pr) {
		return false
	}
	for i, r := range pr {
		if s[i] != r {
			return false
		}
	}
	return true
}
