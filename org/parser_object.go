package org

import "strings"

// ParseObject recognizes one inline object at the front of in (spec.md
// §4.7): link, timestamp, emphasis, entity, macro, footnote reference,
// radio target/target, LaTeX fragment, inline src/call, export snippet,
// line break, or (falling through every special-construct check) a run
// of plain TEXT up to the next byte that could start one. Grounded on
// teacher's `parseInlineWithPos` dispatch switch (org/inline.go),
// generalized from an AST-producing regex cascade into a green-token
// emitting combinator cascade.
// prev is the byte immediately preceding in.S in the enclosing object
// run (0 if in is at the start of that run, matching the teacher's
// utf8.RuneError sentinel for start-of-input); only parseEmphasis's
// admission rule needs it.
func ParseObject(in Input, prev byte) (Input, GreenElement, bool) {
	if in.IsEmpty() {
		return in, nil, false
	}
	for _, p := range objectParsers {
		if rest, elem, ok := p(in); ok {
			return rest, elem, true
		}
	}
	if rest, elem, ok := parseEmphasis(in, prev); ok {
		return rest, elem, true
	}
	return parseObjectText(in)
}

var objectParsers = []ParseFn{
	parseLineBreak,
	parseEntity,
	ParseTimestamp,
	parseRadioOrTarget,
	parseMacro,
	parseFootnoteReference,
	parseRegularLink,
	parsePlainLink,
	parseExportSnippet,
	parseLatexFragment,
	parseInlineSrc,
	parseInlineCall,
}

// lastConsumedByte returns the final byte an object parser just
// consumed, given the input immediately before and after the call. Its
// result feeds the next call's prev parameter so parseEmphasis can see
// across object boundaries (e.g. a link immediately followed by "*").
func lastConsumedByte(before, after Input) byte {
	n := before.Len() - after.Len()
	if n <= 0 {
		return 0
	}
	return before.S[n-1]
}

// parseObjectText consumes the maximal run up to (not including) the
// next byte that could begin a recognized object, or the whole rest of
// the input if none does. It never returns an empty token.
func parseObjectText(in Input) (Input, GreenElement, bool) {
	i := 1 // a lone special byte with no valid match still counts as text
	for i < len(in.S) && !isObjectStartByte(in.S[i]) && !isPlainLinkStart(in.S[i:]) &&
		!strings.HasPrefix(in.S[i:], "src_") && !strings.HasPrefix(in.S[i:], "call_") {
		i++
	}
	tok, rest := in.TakeSplit(i)
	return rest, tok.Token(TEXT), true
}

func isObjectStartByte(b byte) bool {
	switch b {
	case '\\', '<', '[', '{', '*', '/', '_', '+', '=', '~', '$', '@':
		return true
	}
	return false
}

// isPlainLinkStart reports whether s begins with a recognized URI
// scheme immediately followed by "://" (plainLinkScheme's detection,
// exposed separately so parseObjectText can stop a text run one byte
// early and let ParseObject's dispatch see the scheme from its start).
func isPlainLinkStart(s string) bool {
	_, ok := plainLinkScheme(s)
	return ok
}

// parseLineBreak recognizes a trailing "\\" at the end of a line,
// together with any spaces after it. A bracketed length after the
// "\\" is not recognized.
func parseLineBreak(in Input) (Input, GreenElement, bool) {
	if !in.HasPrefix(`\\`) {
		return in, nil, false
	}
	i := 2
	for i < len(in.S) && in.S[i] == ' ' {
		i++
	}
	if i < len(in.S) && in.S[i] != '\n' && in.S[i] != '\r' {
		return in, nil, false
	}
	tok, rest := in.TakeSplit(i)
	b := NewNodeBuilder(in.Cfg.Debug)
	b.Text(tok)
	return rest, b.Finish(LINE_BREAK), true
}

// parseEntity recognizes "\name" where name is a known entity, followed
// by an optional "{}" empty-brace terminator.
func parseEntity(in Input) (Input, GreenElement, bool) {
	if in.IsEmpty() || in.S[0] != '\\' {
		return in, nil, false
	}
	name := scanEntityName(in.S[1:])
	if name == "" || !isEntityName(name) {
		return in, nil, false
	}
	b := NewNodeBuilder(in.Cfg.Debug)
	backslash, rest := in.TakeSplit(1)
	b.Push(backslash.Token(BACKSLASH))
	nameTok, rest2 := rest.TakeSplit(len(name))
	b.Push(nameTok.Token(TEXT))
	if rest2.HasPrefix("{}") {
		brace, rest3 := rest2.TakeSplit(2)
		b.Push(brace.Token(TEXT))
		rest2 = rest3
	}
	return rest2, b.Finish(ENTITY), true
}

// parseRadioOrTarget recognizes "<<<name>>>" (radio target) or
// "<<name>>" (target). name must not contain "<", ">" or a newline.
func parseRadioOrTarget(in Input) (Input, GreenElement, bool) {
	if in.HasPrefix("<<<") {
		if end := strings.Index(in.S, ">>>"); end != -1 {
			if name := in.S[3:end]; name != "" && validTargetName(name) {
				open, rest := in.TakeSplit(3)
				body, rest2 := rest.TakeSplit(end - 3)
				close, rest3 := rest2.TakeSplit(3)
				b := NewNodeBuilder(in.Cfg.Debug)
				b.Push(open.Token(L_ANGLE3))
				b.Push(body.Token(TEXT))
				b.Push(close.Token(R_ANGLE3))
				return rest3, b.Finish(RADIO_TARGET), true
			}
		}
		return in, nil, false
	}
	if in.HasPrefix("<<") && !in.HasPrefix("<<<") {
		if end := strings.Index(in.S, ">>"); end != -1 {
			if name := in.S[2:end]; name != "" && validTargetName(name) {
				open, rest := in.TakeSplit(2)
				body, rest2 := rest.TakeSplit(end - 2)
				close, rest3 := rest2.TakeSplit(2)
				b := NewNodeBuilder(in.Cfg.Debug)
				b.Push(open.Token(L_ANGLE2))
				b.Push(body.Token(TEXT))
				b.Push(close.Token(R_ANGLE2))
				return rest3, b.Finish(TARGET), true
			}
		}
	}
	return in, nil, false
}

func validTargetName(s string) bool {
	return !strings.ContainsAny(s, "<>\n")
}

// parseMacro recognizes "{{{name(args)}}}"; args (with surrounding
// parens) are optional.
func parseMacro(in Input) (Input, GreenElement, bool) {
	if !in.HasPrefix("{{{") {
		return in, nil, false
	}
	end := strings.Index(in.S, "}}}")
	if end == -1 {
		return in, nil, false
	}
	inner := in.S[3:end]
	if inner == "" || !isASCIILetter(inner[0]) {
		return in, nil, false
	}
	open, rest := in.TakeSplit(3)
	body, rest2 := rest.TakeSplit(end - 3)
	close, rest3 := rest2.TakeSplit(3)
	b := NewNodeBuilder(in.Cfg.Debug)
	b.Push(open.Token(L_CURLY3))
	b.Push(body.Token(TEXT))
	b.Push(close.Token(R_CURLY3))
	return rest3, b.Finish(MACRO), true
}

// parseFootnoteReference recognizes "[fn:label]" or "[fn:label:def]"
// (in the inline-definition form, the text after the second colon is
// kept in the same TEXT token as the label, not parsed as objects).
func parseFootnoteReference(in Input) (Input, GreenElement, bool) {
	if !in.HasPrefix("[fn:") {
		return in, nil, false
	}
	end := strings.IndexByte(in.S, ']')
	if end == -1 {
		return in, nil, false
	}
	open, rest := in.TakeSplit(1)
	tag, rest2 := rest.TakeSplit(3)
	body, rest3 := rest2.TakeSplit(end - 4)
	close, rest4 := rest3.TakeSplit(1)
	b := NewNodeBuilder(in.Cfg.Debug)
	b.Push(open.Token(L_BRACKET))
	b.Push(tag.Token(TEXT))
	b.Text(body)
	b.Push(close.Token(R_BRACKET))
	return rest4, b.Finish(FOOTNOTE_REFERENCE), true
}

// parseRegularLink recognizes "[[target]]" or "[[target][description]]".
// description, when present, is kept as a single TEXT token.
func parseRegularLink(in Input) (Input, GreenElement, bool) {
	if !in.HasPrefix("[[") {
		return in, nil, false
	}
	targetEnd := strings.IndexByte(in.S, ']')
	if targetEnd == -1 || targetEnd+1 >= len(in.S) || (in.S[targetEnd+1] != ']' && in.S[targetEnd+1] != '[') {
		return in, nil, false
	}
	open, rest := in.TakeSplit(2)
	target, rest2 := rest.TakeSplit(targetEnd - 2)
	if strings.ContainsAny(target.S, "\n") {
		return in, nil, false
	}
	closeLen, closeKind := 2, R_BRACKET2
	if rest2.HasPrefix("][") {
		closeLen, closeKind = 1, R_BRACKET
	}
	close, rest3 := rest2.TakeSplit(closeLen)

	b := NewNodeBuilder(in.Cfg.Debug)
	b.Push(open.Token(L_BRACKET2))
	b.Text(target)
	b.Push(close.Token(closeKind))

	if closeKind == R_BRACKET {
		descEnd := strings.Index(rest3.S, "]]")
		if descEnd == -1 {
			return in, nil, false
		}
		descOpen, rest4 := rest3.TakeSplit(1)
		descBody, rest5 := rest4.TakeSplit(descEnd - 1)
		descClose, rest6 := rest5.TakeSplit(2)
		b.Push(descOpen.Token(L_BRACKET))
		b.Text(descBody)
		b.Push(descClose.Token(R_BRACKET2))
		rest3 = rest6
	}
	return rest3, b.Finish(LINK), true
}

// plainLinkSchemes are the URI schemes a bare, unbracketed link may
// start with. Grounded on the teacher's autolinkProtocols regexp
// (org/inline.go).
var plainLinkSchemes = []string{"https", "http", "ftp", "file"}

// validURLCharacters is the charset a plain link's path may continue
// through once its scheme is matched. Copied verbatim from the
// teacher's validURLCharacters (org/inline.go).
const validURLCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~:/?#[]@!$&'()*+,;="

// plainLinkScheme reports the length of a URI scheme at the front of s
// when immediately followed by "://".
func plainLinkScheme(s string) (n int, ok bool) {
	for _, scheme := range plainLinkSchemes {
		if strings.HasPrefix(s, scheme) && strings.HasPrefix(s[len(scheme):], "://") {
			return len(scheme), true
		}
	}
	return 0, false
}

// parsePlainLink recognizes a bare autolink with no brackets: a known
// URI scheme, "://", and a run of URL characters, e.g.
// "https://example.org/x". Builds a LINK node with a single TEXT child
// (its Description is absent, same as a bracketed link with none).
// Grounded on the teacher's AutoLink config flag and
// parseAutoLinkWithPos/validURLCharacters (org/inline.go), adapted to
// match at the front of the cursor instead of scanning forward for
// "://" and rewinding to recover the scheme already consumed.
func parsePlainLink(in Input) (Input, GreenElement, bool) {
	schemeLen, ok := plainLinkScheme(in.S)
	if !ok {
		return in, nil, false
	}
	end := schemeLen + len("://")
	for end < len(in.S) && strings.ContainsRune(validURLCharacters, rune(in.S[end])) {
		end++
	}
	url, rest := in.TakeSplit(end)
	b := NewNodeBuilder(in.Cfg.Debug)
	b.Text(url)
	return rest, b.Finish(LINK), true
}

// parseExportSnippet recognizes "@@backend:text@@".
func parseExportSnippet(in Input) (Input, GreenElement, bool) {
	if !in.HasPrefix("@@") {
		return in, nil, false
	}
	rest := in.S[2:]
	colon := strings.IndexByte(rest, ':')
	if colon <= 0 {
		return in, nil, false
	}
	end := strings.Index(rest[colon:], "@@")
	if end == -1 {
		return in, nil, false
	}
	end += colon
	open, r1 := in.TakeSplit(2)
	body, r2 := r1.TakeSplit(end)
	close, r3 := r2.TakeSplit(2)
	b := NewNodeBuilder(in.Cfg.Debug)
	b.Push(open.Token(AT2))
	b.Text(body)
	b.Push(close.Token(AT2))
	return r3, b.Finish(SNIPPET), true
}

// parseLatexFragment recognizes the four LaTeX delimiter pairs:
// \(...\), \[...\], $$...$$, $...$ (single-$ requires non-whitespace
// border characters, per the teacher's latexFragmentPairs rules).
func parseLatexFragment(in Input) (Input, GreenElement, bool) {
	switch {
	case in.HasPrefix(`\(`):
		return parseLatexPair(in, `\(`, `\)`)
	case in.HasPrefix(`\[`):
		return parseLatexPair(in, `\[`, `\]`)
	case in.HasPrefix("$$"):
		return parseLatexPair(in, "$$", "$$")
	case in.HasPrefix("$"):
		return parseLatexDollar(in)
	}
	return in, nil, false
}

func parseLatexPair(in Input, open, close string) (Input, GreenElement, bool) {
	end := strings.Index(in.S[len(open):], close)
	if end == -1 {
		return in, nil, false
	}
	end += len(open)
	openTok, rest := in.TakeSplit(len(open))
	body, rest2 := rest.TakeSplit(end - len(open))
	closeTok, rest3 := rest2.TakeSplit(len(close))
	b := NewNodeBuilder(in.Cfg.Debug)
	b.Text(openTok)
	b.Text(body)
	b.Text(closeTok)
	return rest3, b.Finish(LATEX_FRAGMENT), true
}

func parseLatexDollar(in Input) (Input, GreenElement, bool) {
	if in.Len() < 3 || in.S[1] == ' ' || in.S[1] == '$' {
		return in, nil, false
	}
	end := strings.IndexByte(in.S[1:], '$')
	if end == -1 {
		return in, nil, false
	}
	end += 1
	if in.S[end-1] == ' ' {
		return in, nil, false
	}
	openTok, rest := in.TakeSplit(1)
	body, rest2 := rest.TakeSplit(end - 1)
	closeTok, rest3 := rest2.TakeSplit(1)
	b := NewNodeBuilder(in.Cfg.Debug)
	b.Text(openTok)
	b.Text(body)
	b.Text(closeTok)
	return rest3, b.Finish(LATEX_FRAGMENT), true
}

// parseInlineSrc recognizes "src_lang[header]{body}" or "src_lang{body}".
func parseInlineSrc(in Input) (Input, GreenElement, bool) {
	if !in.HasPrefix("src_") {
		return in, nil, false
	}
	rest := in.S[4:]
	lang := scanUntilAny(rest, "[{ \t\n")
	if lang == "" {
		return in, nil, false
	}
	prefix, r := in.TakeSplit(4 + len(lang))
	b := NewNodeBuilder(in.Cfg.Debug)
	b.Text(prefix)
	if r.HasPrefix("[") {
		end := strings.IndexByte(r.S, ']')
		if end == -1 {
			return in, nil, false
		}
		hdr, r2 := r.TakeSplit(end + 1)
		b.Text(hdr)
		r = r2
	}
	if !r.HasPrefix("{") {
		return in, nil, false
	}
	end := strings.IndexByte(r.S, '}')
	if end == -1 {
		return in, nil, false
	}
	body, r2 := r.TakeSplit(end + 1)
	b.Text(body)
	return r2, b.Finish(INLINE_SRC), true
}

// parseInlineCall recognizes "call_name(args)" or "call_name[hdr](args)".
func parseInlineCall(in Input) (Input, GreenElement, bool) {
	if !in.HasPrefix("call_") {
		return in, nil, false
	}
	rest := in.S[5:]
	name := scanUntilAny(rest, "[( \t\n")
	if name == "" {
		return in, nil, false
	}
	prefix, r := in.TakeSplit(5 + len(name))
	b := NewNodeBuilder(in.Cfg.Debug)
	b.Text(prefix)
	if r.HasPrefix("[") {
		end := strings.IndexByte(r.S, ']')
		if end == -1 {
			return in, nil, false
		}
		hdr, r2 := r.TakeSplit(end + 1)
		b.Text(hdr)
		r = r2
	}
	if !r.HasPrefix("(") {
		return in, nil, false
	}
	end := strings.IndexByte(r.S, ')')
	if end == -1 {
		return in, nil, false
	}
	args, r2 := r.TakeSplit(end + 1)
	b.Text(args)
	return r2, b.Finish(INLINE_CALL), true
}

func scanUntilAny(s, cutset string) string {
	i := strings.IndexAny(s, cutset)
	if i == -1 {
		return s
	}
	return s[:i]
}

// emphasisMarkers maps each marker byte to its node kind, in the order
// the teacher's hasValidPreAndBorderChars table checks them
// (org/inline.go).
var emphasisMarkers = map[byte]Kind{
	'*': BOLD,
	'/': ITALIC,
	'_': UNDERLINE,
	'+': STRIKE,
	'=': VERBATIM,
	'~': CODE,
}

// isEmphasisPreChar reports whether prev, the byte immediately
// preceding an emphasis marker, admits it as an opener: start of
// input/line (the 0 sentinel ParseObject passes in place of the
// teacher's utf8.RuneError), whitespace, or one of a fixed set of
// opening punctuation bytes. Grounded on the teacher's isValidPreChar
// (org/inline.go), narrowed to the ASCII byte it actually receives here.
func isEmphasisPreChar(prev byte) bool {
	return prev == 0 || prev == ' ' || prev == '\t' || prev == '\n' ||
		strings.IndexByte(`-({'"`, prev) != -1
}

// isEmphasisPostChar reports whether post, the byte immediately
// following a closing emphasis marker, admits it as a closer: end of
// input/line (0, mirroring isEmphasisPreChar's sentinel), whitespace, or
// one of a fixed set of closing punctuation bytes. Grounded on the
// teacher's isValidPostChar (org/inline.go).
func isEmphasisPostChar(post byte) bool {
	return post == 0 || post == ' ' || post == '\t' || post == '\n' ||
		strings.IndexByte(`-.,:!?;'")}[\`, post) != -1
}

// parseEmphasis recognizes "*bold*", "/italic/", "_underline_",
// "+strike+", "=verbatim=", "~code~". The opening marker requires prev
// to be a valid pre-char and the byte right after it to be a
// non-whitespace border char; the closing marker requires the byte
// right before it to be a non-whitespace border char and the byte right
// after it to be a valid post-char. The body may not itself start or
// end with the marker byte and must fit on a single object run (no
// blank line). Grounded on the teacher's
// hasValidPreAndBorderChars/hasValidPostAndBorderChars (org/inline.go).
func parseEmphasis(in Input, prev byte) (Input, GreenElement, bool) {
	if in.IsEmpty() {
		return in, nil, false
	}
	marker := in.S[0]
	kind, ok := emphasisMarkers[marker]
	if !ok || !isEmphasisPreChar(prev) {
		return in, nil, false
	}
	if in.Len() < 3 || in.S[1] == ' ' || in.S[1] == '\t' || in.S[1] == '\n' || in.S[1] == marker {
		return in, nil, false
	}
	body := in.S[1:]
	closeRel := -1
	for i := 1; i < len(body); i++ {
		if body[i] != marker {
			continue
		}
		if body[i-1] == ' ' || body[i-1] == '\t' || body[i-1] == '\n' || body[i-1] == marker {
			continue
		}
		var post byte
		if i+1 < len(body) {
			post = body[i+1]
		}
		if !isEmphasisPostChar(post) {
			continue
		}
		closeRel = i
		break
	}
	if closeRel == -1 {
		return in, nil, false
	}
	if strings.ContainsRune(body[:closeRel], '\n') && strings.Count(body[:closeRel], "\n") > 1 {
		return in, nil, false // blank line inside emphasis span is not allowed
	}
	openTok, rest := in.TakeSplit(1)
	bodyTok, rest2 := rest.TakeSplit(closeRel)
	closeTok, rest3 := rest2.TakeSplit(1)
	b := NewNodeBuilder(in.Cfg.Debug)
	b.Push(openTok.Token(EMPHASIS_MARK))
	b.Text(bodyTok)
	b.Push(closeTok.Token(EMPHASIS_MARK))
	return rest3, b.Finish(kind), true
}
