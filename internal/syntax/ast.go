package syntax

import (
	"regexp"
	"strconv"
	"strings"
)

// Node is an element of a parsed pattern tree.
type Node interface {
	// Pos returns the rune offset in the original input where the node starts.
	Pos() int

	// Regexp renders the node as an RE2 expression matching exactly the
	// strings the node can generate.
	Regexp() string
}

// Quantifier bounds how many times a token or group repeats.
type Quantifier struct {
	Min int
	Max int
	// Consumed is the number of pattern runes the quantifier occupied.
	Consumed int
}

// One is the implicit quantifier of an unquantified token.
var One = Quantifier{Min: 1, Max: 1}

// IsOne reports whether q is exactly one occurrence.
func (q Quantifier) IsOne() bool {
	return q.Min == 1 && q.Max == 1
}

func (q Quantifier) suffix() string {
	switch {
	case q.IsOne():
		return ""
	case q.Min == q.Max:
		return "{" + strconv.Itoa(q.Min) + "}"
	default:
		return "{" + strconv.Itoa(q.Min) + "," + strconv.Itoa(q.Max) + "}"
	}
}

// ClassKind tells where a Class came from.
type ClassKind int

const (
	ClassEscape  ClassKind = iota // \d \D \w \W \s \S
	ClassBracket                  // [...]
	ClassDot                      // .
)

// GroupKind classifies a parenthesized group by its opening marker.
type GroupKind int

const (
	GroupCapture GroupKind = iota
	GroupNonCapture
	GroupLookAhead
	GroupNegativeLookAhead
	GroupLookBehind
	GroupNegativeLookBehind
)

// groupMarkers lists the opening markers of non-capturing kinds, longest first.
var groupMarkers = []struct {
	marker string
	kind   GroupKind
}{
	{"?<=", GroupLookBehind},
	{"?<!", GroupNegativeLookBehind},
	{"?:", GroupNonCapture},
	{"?=", GroupLookAhead},
	{"?!", GroupNegativeLookAhead},
}

func (k GroupKind) String() string {
	switch k {
	case GroupCapture:
		return "capture"
	case GroupNonCapture:
		return "non-capturing"
	case GroupLookAhead:
		return "lookahead"
	case GroupNegativeLookAhead:
		return "negative lookahead"
	case GroupLookBehind:
		return "lookbehind"
	case GroupNegativeLookBehind:
		return "negative lookbehind"
	default:
		return "unknown"
	}
}

// ZeroWidth reports whether groups of this kind contribute no output.
func (k GroupKind) ZeroWidth() bool {
	return k != GroupCapture
}

// Literal emits one fixed character.
type Literal struct {
	Offset int
	Char   rune
	Quant  Quantifier
}

func (n *Literal) Pos() int { return n.Offset }

func (n *Literal) Regexp() string {
	return regexp.QuoteMeta(string(n.Char)) + n.Quant.suffix()
}

// Class draws one character per repetition from Set.
type Class struct {
	Offset int
	Kind   ClassKind
	Set    CharSet
	Quant  Quantifier
}

func (n *Class) Pos() int { return n.Offset }

func (n *Class) Regexp() string {
	return n.Set.Regexp() + n.Quant.suffix()
}

// Anchor is ^ or $. It never emits anything.
type Anchor struct {
	Offset int
	Char   rune
}

func (n *Anchor) Pos() int { return n.Offset }

func (n *Anchor) Regexp() string { return "" }

// Group is a parenthesized sub-pattern. Only capture groups emit output.
type Group struct {
	Offset int
	Kind   GroupKind
	Quant  Quantifier
	Body   Node
}

func (n *Group) Pos() int { return n.Offset }

func (n *Group) Regexp() string {
	if n.Kind.ZeroWidth() {
		return ""
	}
	return "(?:" + n.Body.Regexp() + ")" + n.Quant.suffix()
}

// Sequence concatenates its items in order.
type Sequence struct {
	Offset int
	Items  []Node
}

func (n *Sequence) Pos() int { return n.Offset }

func (n *Sequence) Regexp() string {
	var b strings.Builder
	for _, item := range n.Items {
		b.WriteString(item.Regexp())
	}
	return b.String()
}

// Alternation picks one of its options per evaluation.
type Alternation struct {
	Offset  int
	Options []Node
}

func (n *Alternation) Pos() int { return n.Offset }

func (n *Alternation) Regexp() string {
	parts := make([]string, len(n.Options))
	for i, opt := range n.Options {
		parts[i] = opt.Regexp()
	}
	return "(?:" + strings.Join(parts, "|") + ")"
}
