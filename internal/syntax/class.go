package syntax

// buildClass expands the bracket expression whose '[' is at open and whose
// ']' is at close. A leading '^' makes the class the alphabet minus the
// listed characters.
//
// A '-' forms a range only between two plain literals. At either edge of the
// content, or next to an escape, it is a literal hyphen.
func (p *parser) buildClass(open, close int) (CharSet, error) {
	lo, hi := open+1, close
	negate := lo < hi && p.src[lo] == '^'
	if negate {
		lo++
	}

	var members []rune
	for i := lo; i < hi; {
		c := p.src[i]
		if c == '\\' {
			if i+1 >= hi {
				return nil, malformed(i, "trailing backslash in character class")
			}
			members = append(members, escapeSet(p.src[i+1])...)
			i += 2
			continue
		}

		if i+2 < hi && p.src[i+1] == '-' && p.src[i+2] != '\\' {
			to := p.src[i+2]
			if to < c {
				return nil, malformed(i, "invalid range %c-%c", c, to)
			}
			for r := c; r <= to; r++ {
				members = append(members, r)
			}
			i += 3
			continue
		}

		members = append(members, c)
		i++
	}

	set := setOf(members)
	if negate {
		set = Alphabet.Minus(set)
	}
	if set.Len() == 0 {
		return nil, emptyClass(open, "%q matches no characters", string(p.src[open:close+1]))
	}
	return set, nil
}
