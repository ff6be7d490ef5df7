package org

import "strings"

// ParseElement recognizes one section-level element: blank lines,
// clock line, footnote definition, list, table, drawer, greater block,
// horizontal rule, comment line, keyword line, or (falling through) a
// paragraph of inline
// objects. Grounded on teacher's lexFns/parseOne dispatch table
// (org/document.go), generalized from go-org's line-token model to the
// spec's recursive-descent-over-objects model.
func ParseElement(in Input) (Input, GreenElement, bool) {
	if rest, blanks := BlankLines(in); len(blanks) > 0 {
		b := NewNodeBuilder(in.Cfg.Debug)
		for _, e := range blanks {
			b.Push(e)
		}
		return rest, b.Finish(SECTION), true
	}
	for _, p := range elementParsers {
		if rest, elem, ok := p(in); ok {
			return rest, elem, true
		}
	}
	return parseParagraph(in)
}

var elementParsers = []func(Input) (Input, GreenElement, bool){
	parseClockLine,
	ParseFootnoteDefinition,
	ParseList,
	ParseTable,
	ParseDrawer,
	parseGreaterBlock,
	parseHorizontalRule,
	parseCommentLine,
	parseKeywordLine,
}

// parseClockLine recognizes a "CLOCK: <timestamp>[--<timestamp> =>
// duration]" line (spec.md §4.5), admitted only when the line's first
// token is "CLOCK:". Grounded on the same keyword-then-timestamp idiom
// as ParsePlanning (org/parser_planning.go), generalized for clock's
// optional "--<timestamp> => duration" suffix, which a planning line
// never has.
func parseClockLine(in Input) (Input, GreenElement, bool) {
	if !in.HasPrefix("CLOCK:") {
		return in, nil, false
	}
	rest, content, ws, nl := TrimLineEnd(in)

	kw, afterKw := content.TakeSplit(len("CLOCK:"))
	wsGap, afterWs := takeWs(afterKw)
	if wsGap.IsEmpty() {
		return in, nil, false
	}
	cursor, tsElem, ok := ParseTimestamp(afterWs)
	if !ok {
		return in, nil, false
	}

	b := NewNodeBuilder(in.Cfg.Debug)
	b.Text(kw)
	b.Ws(wsGap)
	b.Push(tsElem)

	if dashRest, dashElem, ok := Minus2Tok(cursor); ok {
		if endRest, endElem, ok := ParseTimestamp(dashRest); ok {
			b.Push(dashElem)
			b.Push(endElem)
			cursor = endRest
		}
	}

	if durGap, afterGap := takeWs(cursor); !durGap.IsEmpty() {
		if arrowRest, arrowElem, ok := DoubleArrowTok(afterGap); ok {
			b.Ws(durGap)
			b.Push(arrowElem)
			durGap2, afterDurWs := takeWs(arrowRest)
			b.Ws(durGap2)
			b.Text(afterDurWs)
			cursor = Input{Cfg: in.Cfg}
		}
	}

	if cursor.Len() > 0 {
		b.Text(cursor)
	}
	b.Ws(ws)
	b.Nl(nl)
	return rest, b.Finish(CLOCK), true
}

// parseGreaterBlock recognizes a "#+BEGIN_NAME ...\n" ... "#+END_NAME\n"
// greater block (center, quote, src, example, export, verse, comment;
// spec.md §4.5), preserving its body verbatim as FIXED_WIDTH lines so a
// source block's code isn't mistaken for paragraph text and scanned for
// inline objects. Grounded on the same opener/scan-to-closer idiom as
// ParseDrawer/ParsePropertyDrawer (org/parser_drawer.go): a malformed
// block (no matching "#+END_NAME" before running off the input) isn't
// admitted, same as a drawer missing ":END:".
func parseGreaterBlock(in Input) (Input, GreenElement, bool) {
	rest, headerLine, ws, nl := TrimLineEnd(in)
	name, ok := greaterBlockName(headerLine.S, "#+begin_")
	if !ok {
		return in, nil, false
	}

	b := NewNodeBuilder(in.Cfg.Debug)
	header := NewNodeBuilder(in.Cfg.Debug)
	header.Text(headerLine)
	header.Ws(ws)
	header.Nl(nl)
	b.Push(header.Finish(KEYWORD))

	cursor := rest
	for {
		if cursor.IsEmpty() {
			return in, nil, false
		}
		lineRest, line, lws, lnl := TrimLineEnd(cursor)
		if closing, ok := greaterBlockName(line.S, "#+end_"); ok && strings.EqualFold(closing, name) {
			end := NewNodeBuilder(in.Cfg.Debug)
			end.Text(line)
			end.Ws(lws)
			end.Nl(lnl)
			b.Push(end.Finish(KEYWORD))
			cursor = lineRest
			break
		}
		body := NewNodeBuilder(in.Cfg.Debug)
		body.Text(line)
		body.Ws(lws)
		body.Nl(lnl)
		b.Push(body.Finish(FIXED_WIDTH))
		cursor = lineRest
	}
	return cursor, b.Finish(BLOCK), true
}

// greaterBlockName reports the block-type name following prefix
// (case-insensitive) at the start of line, e.g. "src" from "#+BEGIN_SRC
// python", restricted to the fixed set of greater-block names spec.md
// §4.5 names.
func greaterBlockName(line, prefix string) (string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if len(trimmed) < len(prefix) || !strings.EqualFold(trimmed[:len(prefix)], prefix) {
		return "", false
	}
	after := trimmed[len(prefix):]
	end := 0
	for end < len(after) && after[end] != ' ' && after[end] != '\t' {
		end++
	}
	if end == 0 {
		return "", false
	}
	name := after[:end]
	switch strings.ToLower(name) {
	case "center", "quote", "src", "example", "export", "verse", "comment":
		return name, true
	}
	return "", false
}

func parseHorizontalRule(in Input) (Input, GreenElement, bool) {
	rest, line, ws, nl := TrimLineEnd(in)
	trimmed := strings.TrimLeft(line.S, " \t")
	if len(trimmed) < 5 || strings.Trim(trimmed, "-") != "" {
		return in, nil, false
	}
	for _, c := range trimmed {
		if c != '-' {
			return in, nil, false
		}
	}
	b := NewNodeBuilder(in.Cfg.Debug)
	b.Text(line)
	b.Ws(ws)
	b.Nl(nl)
	return rest, b.Finish(HORIZONTAL_RULE), true
}

func parseCommentLine(in Input) (Input, GreenElement, bool) {
	trimmedStart := strings.TrimLeft(in.S, " \t")
	lead := len(in.S) - len(trimmedStart)
	if !strings.HasPrefix(trimmedStart, "# ") && trimmedStart != "#" && !strings.HasPrefix(trimmedStart, "#\n") {
		return in, nil, false
	}
	rest, line, ws, nl := TrimLineEnd(in)
	_ = lead
	b := NewNodeBuilder(in.Cfg.Debug)
	b.Text(line)
	b.Ws(ws)
	b.Nl(nl)
	return rest, b.Finish(COMMENT_LINE), true
}

// parseKeywordLine recognizes "#+KEY: value" affiliated/document
// keyword lines (spec.md §4.4).
func parseKeywordLine(in Input) (Input, GreenElement, bool) {
	trimmedStart := strings.TrimLeft(in.S, " \t")
	if !strings.HasPrefix(trimmedStart, "#+") {
		return in, nil, false
	}
	rest, line, ws, nl := TrimLineEnd(in)
	body := strings.TrimLeft(line.S, " \t")
	if !strings.Contains(body, ":") {
		return in, nil, false
	}
	b := NewNodeBuilder(in.Cfg.Debug)
	b.Text(line)
	b.Ws(ws)
	b.Nl(nl)
	kind := AFFILIATED_KEYWORD
	if strings.HasPrefix(strings.ToUpper(body), "#+CAPTION:") || strings.HasPrefix(strings.ToUpper(body), "#+NAME:") {
		kind = AFFILIATED_KEYWORD
	} else {
		kind = KEYWORD
	}
	return rest, b.Finish(kind), true
}

// parseParagraph consumes lines of inline objects up to (not including)
// a blank line or the next recognized element, wrapping them in a
// PARAGRAPH node.
func parseParagraph(in Input) (Input, GreenElement, bool) {
	if in.IsEmpty() {
		return in, nil, false
	}
	end := paragraphExtent(in.S)
	if end == 0 {
		return in, nil, false
	}
	body, rest := in.TakeSplit(end)
	b := NewNodeBuilder(in.Cfg.Debug)
	cursor := body
	var prev byte
	for !cursor.IsEmpty() {
		next, elem, ok := ParseObject(cursor, prev)
		if !ok {
			break
		}
		b.Push(elem)
		prev = lastConsumedByte(cursor, next)
		cursor = next
	}
	if cursor.Len() > 0 {
		b.Text(cursor)
	}
	if b.Len() == 0 {
		return in, nil, false
	}
	return rest, b.Finish(PARAGRAPH), true
}

// paragraphExtent finds the end offset of the paragraph starting at s:
// up to (not including) a blank line or a line that starts a new
// headline/list/table/drawer/keyword/comment element.
func paragraphExtent(s string) int {
	offset := 0
	first := true
	for offset < len(s) {
		idx := strings.IndexByte(s[offset:], '\n')
		var line string
		var lineEnd int
		if idx == -1 {
			line = s[offset:]
			lineEnd = len(s)
		} else {
			line = s[offset : offset+idx]
			lineEnd = offset + idx + 1
		}
		if !first && startsNewElement(line) {
			return offset
		}
		if isAllWhitespace(line) {
			if first {
				return offset
			}
			return offset
		}
		first = false
		offset = lineEnd
	}
	return offset
}

func startsNewElement(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return true
	}
	if n := 0; func() bool {
		for n < len(trimmed) && trimmed[n] == '*' {
			n++
		}
		return n > 0 && (n == len(trimmed) || trimmed[n] == ' ' || trimmed[n] == '\t')
	}() {
		return true
	}
	if _, _, ok := listItemPrefix(trimmed); ok {
		return true
	}
	switch {
	case strings.HasPrefix(trimmed, "#+"),
		strings.HasPrefix(trimmed, "# "),
		strings.HasPrefix(trimmed, "- "),
		strings.HasPrefix(trimmed, "+ "),
		strings.HasPrefix(trimmed, "|"),
		strings.HasPrefix(trimmed, ":"):
		return true
	}
	return false
}
