package org

import "strings"

// ParseFootnoteDefinition recognizes "[fn:label] content..." starting a
// line, consuming subsequent lines of its body until a blank line or
// the next element of equal-or-lower precedence. Grounded on teacher's
// org/footnote.go (footnoteDefinitionRegexp, lexFootnoteDefinition).
func ParseFootnoteDefinition(in Input) (Input, GreenElement, bool) {
	if !in.HasPrefix("[fn:") {
		return in, nil, false
	}
	close := strings.IndexByte(in.S, ']')
	if close == -1 {
		return in, nil, false
	}
	label := in.S[4:close]
	if label == "" || strings.ContainsAny(label, " \t\n:") {
		return in, nil, false
	}
	lineEnd := strings.IndexByte(in.S, '\n')
	if lineEnd == -1 {
		lineEnd = len(in.S)
	} else {
		lineEnd++
	}
	if close+1 > lineEnd {
		return in, nil, false
	}

	bracket, rest := in.TakeSplit(close + 1)
	b := NewNodeBuilder(in.Cfg.Debug)
	b.Push(bracket.Token(TEXT))

	end := paragraphExtent(rest.S)
	body, after := rest.TakeSplit(end)
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
	return after, b.Finish(FOOTNOTE_DEFINITION), true
}
