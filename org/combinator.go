package org

import "strings"

// ParseFn is the shape of every combinator in the kernel: given the
// remaining input, either match and return (new-input, element, true)
// or fail and return (unchanged-input, nil, false). Failure is plain
// control flow (spec.md §7) — callers try the next alternative, they
// never propagate a Go error for it.
type ParseFn func(Input) (Input, GreenElement, bool)

// Tag recognizes the literal prefix s and returns a token of kind.
func Tag(s string, kind Kind) ParseFn {
	return func(in Input) (Input, GreenElement, bool) {
		if !in.HasPrefix(s) {
			return in, nil, false
		}
		prefix, rest := in.TakeSplit(len(s))
		return rest, prefix.Token(kind), true
	}
}

// Fixed single/double-character tag matchers, one per literal the object
// and headline grammars recognize (spec.md §4.2).
var (
	LBracketTok  = Tag("[", L_BRACKET)
	RBracketTok  = Tag("]", R_BRACKET)
	LBracket2Tok = Tag("[[", L_BRACKET2)
	RBracket2Tok = Tag("]]", R_BRACKET2)
	LParensTok   = Tag("(", L_PARENS)
	RParensTok   = Tag(")", R_PARENS)
	LAngleTok    = Tag("<", L_ANGLE)
	RAngleTok    = Tag(">", R_ANGLE)
	LAngle2Tok   = Tag("<<", L_ANGLE2)
	RAngle2Tok   = Tag(">>", R_ANGLE2)
	LAngle3Tok   = Tag("<<<", L_ANGLE3)
	RAngle3Tok   = Tag(">>>", R_ANGLE3)
	LCurlyTok    = Tag("{", L_CURLY)
	RCurlyTok    = Tag("}", R_CURLY)
	LCurly3Tok   = Tag("{{{", L_CURLY3)
	RCurly3Tok   = Tag("}}}", R_CURLY3)
	AtTok        = Tag("@", AT)
	At2Tok       = Tag("@@", AT2)
	Minus2Tok    = Tag("--", MINUS2)
	Percent2Tok  = Tag("%%", PERCENT2)
	BackslashTok = Tag(`\`, BACKSLASH)
	UnderscoreTok = Tag("_", UNDERSCORE)
	PlusTok      = Tag("+", PLUS)
	MinusTok     = Tag("-", MINUS)
	ColonTok     = Tag(":", COLON)
	Colon2Tok    = Tag("::", COLON2)
	PipeTok      = Tag("|", PIPE)
	DollarTok    = Tag("$", DOLLAR)
	Dollar2Tok   = Tag("$$", DOLLAR2)
	HashPlusTok  = Tag("#+", HASH_PLUS)
	CaretTok     = Tag("^", CARET)
	HashTok      = Tag("#", HASH)
	DoubleArrowTok = Tag("=>", DOUBLE_ARROW)
)

// Verify only accepts p's result when pred holds of the consumed text.
func Verify(p ParseFn, pred func(text string) bool) ParseFn {
	return func(in Input) (Input, GreenElement, bool) {
		rest, elem, ok := p(in)
		if !ok || !pred(elem.Text()) {
			return in, nil, false
		}
		return rest, elem, true
	}
}

// Opt always succeeds: it returns p's result if p matches, or (in, nil,
// true) otherwise, so callers can PushOpt the result unconditionally.
func Opt(p ParseFn) ParseFn {
	return func(in Input) (Input, GreenElement, bool) {
		if rest, elem, ok := p(in); ok {
			return rest, elem, true
		}
		return in, nil, true
	}
}

// Alt tries each parser in order, returning the first match.
func Alt(parsers ...ParseFn) ParseFn {
	return func(in Input) (Input, GreenElement, bool) {
		for _, p := range parsers {
			if rest, elem, ok := p(in); ok {
				return rest, elem, true
			}
		}
		return in, nil, false
	}
}

// LosslessParser wraps p with the spec's lossless_parser! debug
// assertion (spec.md §4.2, §7): in debug mode it panics if the produced
// element's text does not equal the consumed prefix of the input.
func LosslessParser(p ParseFn) ParseFn {
	return func(in Input) (Input, GreenElement, bool) {
		rest, elem, ok := p(in)
		if !ok {
			return rest, elem, ok
		}
		if in.Cfg != nil && in.Cfg.Debug {
			consumed := in.S[:len(in.S)-len(rest.S)]
			if elem.Text() != consumed {
				panic("org: lossless parser produced \"" + elem.Text() + "\" for consumed \"" + consumed + "\"")
			}
		}
		return rest, elem, ok
	}
}

// BlankLines consumes a maximal prefix of lines that are either empty or
// only ASCII whitespace, emitting one BLANK_LINE token per line (the
// line terminator is included in the token). Grounded on
// original_source/src/syntax/combinator.rs::blank_lines.
func BlankLines(in Input) (Input, []GreenElement) {
	if in.IsEmpty() {
		return in, nil
	}
	var lines []GreenElement
	start := 0
	s := in.S
	for _, end := range lineEndsInclusive(s) {
		if end > len(s) {
			break
		}
		if start == end {
			break
		}
		line := s[start:end]
		if !isAllWhitespace(line) {
			break
		}
		lines = append(lines, NewGreenToken(BLANK_LINE, line))
		start = end
	}
	return in.Advance(start), lines
}

// lineEndsInclusive returns, for each line in s, the byte offset just
// past its terminator (\n, \r\n treated as one terminator, or bare \r),
// ending with len(s) for a final unterminated line.
func lineEndsInclusive(s string) []int {
	var ends []int
	i := 0
	for i < len(s) {
		switch s[i] {
		case '\n':
			ends = append(ends, i+1)
			i++
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				ends = append(ends, i+2)
				i += 2
			} else {
				ends = append(ends, i+1)
				i++
			}
		default:
			i++
		}
	}
	if len(ends) == 0 || ends[len(ends)-1] != len(s) {
		ends = append(ends, len(s))
	}
	return ends
}

// TrimLineEnd splits the current line into (content, trailing-whitespace,
// line-terminator) and returns the remaining input after that line.
// Grounded on combinator.rs::trim_line_end.
func TrimLineEnd(in Input) (Input, Input, Input, Input) {
	lineEnd := strings.IndexByte(in.S, '\n')
	var line, rest Input
	if lineEnd == -1 {
		line, rest = in, Input{S: "", Cfg: in.Cfg}
	} else {
		line, rest = in.TakeSplit(lineEnd + 1)
	}

	// find last non-whitespace byte in line
	cut := 0
	for i := len(line.S) - 1; i >= 0; i-- {
		if !isASCIIWhitespaceByte(line.S[i]) {
			cut = i + 1
			break
		}
	}
	content, wsAndNl := line.TakeSplit(cut)

	// split wsAndNl into (ws, nl): nl is the terminator at the very end
	nlStart := len(wsAndNl.S)
	switch {
	case strings.HasSuffix(wsAndNl.S, "\r\n"):
		nlStart = len(wsAndNl.S) - 2
	case strings.HasSuffix(wsAndNl.S, "\n"), strings.HasSuffix(wsAndNl.S, "\r"):
		nlStart = len(wsAndNl.S) - 1
	}
	ws, nl := wsAndNl.TakeSplit(nlStart)

	return rest, content, ws, nl
}

func isASCIIWhitespaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// LineStartsIter returns the byte offsets of every line start in s,
// including zero.
func LineStartsIter(s string) []int {
	starts := []int{0}
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' && i+1 <= len(s) {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// LineEndsIter returns the byte offsets just past every line terminator
// in s, ending with len(s).
func LineEndsIter(s string) []int {
	return lineEndsInclusive(s)
}
