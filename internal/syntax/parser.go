// Package syntax parses the pattern dialect into a tree of nodes.
//
// Parsing follows the decomposition of the generator: a segment is split
// into the text before its first top-level group, the group with its
// quantifier, and the text after it. Group-free text is cut at bracket
// expressions, and each bracket-free run is cut at '|' into alternatives.
// All structural errors are found here, so a parsed tree can always be
// generated from.
package syntax

// Strip returns the rune range of the pattern body. A leading '/' is a
// delimiter only when another '/' follows somewhere later; the body then
// ends at the last '/'.
func Strip(input []rune) (lo, hi int) {
	if len(input) == 0 || input[0] != '/' {
		return 0, len(input)
	}
	for j := len(input) - 1; j > 0; j-- {
		if input[j] == '/' {
			return 1, j
		}
	}
	return 0, len(input)
}

type parser struct {
	src     []rune
	ceiling int
}

// Parse parses input, stripping optional /.../ delimiters. ceiling replaces
// the missing upper bound of *, + and {n,}.
func Parse(input string, ceiling int) (Node, error) {
	p := &parser{src: []rune(input), ceiling: ceiling}
	lo, hi := Strip(p.src)
	return p.segment(lo, hi)
}

// segment parses src[lo:hi]. Every recursive call covers a strictly
// shorter range than its caller.
func (p *parser) segment(lo, hi int) (Node, error) {
	span, found, err := p.locateGroup(lo, hi)
	if err != nil {
		return nil, err
	}
	if !found {
		return p.groupFree(lo, hi)
	}

	seq := &Sequence{Offset: lo}
	if span.open > lo {
		prefix, err := p.segment(lo, span.open)
		if err != nil {
			return nil, err
		}
		seq.append(prefix)
	}

	quant, err := p.resolveQuantifier(span.close+1, hi)
	if err != nil {
		return nil, err
	}

	kind, bodyStart := p.groupKind(span.open, span.close)
	body, err := p.segment(bodyStart, span.close)
	if err != nil {
		return nil, err
	}
	seq.append(&Group{Offset: span.open, Kind: kind, Quant: quant, Body: body})

	if rest := span.close + 1 + quant.Consumed; rest < hi {
		suffix, err := p.segment(rest, hi)
		if err != nil {
			return nil, err
		}
		seq.append(suffix)
	}
	return seq, nil
}

// groupFree parses text without groups. A bracket expression and its
// quantifier form their own run, so '|' inside brackets stays literal.
func (p *parser) groupFree(lo, hi int) (Node, error) {
	seq := &Sequence{Offset: lo}
	runStart := lo
	for i := lo; i < hi; i++ {
		switch p.src[i] {
		case '\\':
			i++
		case '[':
			if i > runStart {
				run, err := p.alternation(runStart, i)
				if err != nil {
					return nil, err
				}
				seq.append(run)
			}
			rb, err := p.bracketEnd(i, hi)
			if err != nil {
				return nil, err
			}
			quant, err := p.resolveQuantifier(rb+1, hi)
			if err != nil {
				return nil, err
			}
			end := rb + 1 + quant.Consumed
			cls, err := p.tokens(i, end)
			if err != nil {
				return nil, err
			}
			seq.append(cls)
			runStart = end
			i = end - 1
		}
	}
	if runStart < hi {
		run, err := p.alternation(runStart, hi)
		if err != nil {
			return nil, err
		}
		seq.append(run)
	}
	return seq, nil
}

// alternation cuts a bracket-free run at every unescaped '|'.
func (p *parser) alternation(lo, hi int) (Node, error) {
	bounds := []int{lo - 1}
	for i := lo; i < hi; i++ {
		switch p.src[i] {
		case '\\':
			i++
		case '|':
			bounds = append(bounds, i)
		}
	}
	if len(bounds) == 1 {
		return p.tokens(lo, hi)
	}
	bounds = append(bounds, hi)

	alt := &Alternation{Offset: lo}
	for k := 0; k+1 < len(bounds); k++ {
		opt, err := p.tokens(bounds[k]+1, bounds[k+1])
		if err != nil {
			return nil, err
		}
		alt.Options = append(alt.Options, opt)
	}
	return alt, nil
}

// tokens parses a group-free run with no top-level '|' into a sequence of
// literals, classes and anchors, each with its quantifier.
func (p *parser) tokens(lo, hi int) (*Sequence, error) {
	seq := &Sequence{Offset: lo}
	for i := lo; i < hi; {
		var (
			node  Node
			width = 1
		)
		switch c := p.src[i]; c {
		case '\\':
			if i+1 >= hi {
				return nil, malformed(i, "trailing backslash")
			}
			width = 2
			e := p.src[i+1]
			if set, ok := EscapeClass(e); ok {
				node = &Class{Offset: i, Kind: ClassEscape, Set: set}
			} else {
				node = &Literal{Offset: i, Char: EscapeLiteral(e)}
			}
		case '[':
			rb, err := p.bracketEnd(i, hi)
			if err != nil {
				return nil, err
			}
			set, err := p.buildClass(i, rb)
			if err != nil {
				return nil, err
			}
			width = rb - i + 1
			node = &Class{Offset: i, Kind: ClassBracket, Set: set}
		case '.':
			node = &Class{Offset: i, Kind: ClassDot, Set: dotClass}
		case '^', '$':
			node = &Anchor{Offset: i, Char: c}
		default:
			node = &Literal{Offset: i, Char: c}
		}

		quant, err := p.resolveQuantifier(i+width, hi)
		if err != nil {
			return nil, err
		}
		switch n := node.(type) {
		case *Literal:
			n.Quant = quant
		case *Class:
			n.Quant = quant
		}
		seq.Items = append(seq.Items, node)
		i += width + quant.Consumed
	}
	return seq, nil
}

// append adds n, inlining nested sequences.
func (s *Sequence) append(n Node) {
	if inner, ok := n.(*Sequence); ok {
		s.Items = append(s.Items, inner.Items...)
		return
	}
	s.Items = append(s.Items, n)
}
