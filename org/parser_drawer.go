package org

import "strings"

// ParsePropertyDrawer recognizes a ":PROPERTIES:" ... ":END:" block
// (spec.md §4.6), each line inside a ":KEY: value" node property.
// Returns false, consuming nothing, if the first line isn't
// ":PROPERTIES:" (blank-trimmed, compared case-insensitively) or no
// ":END:" line follows.
func ParsePropertyDrawer(in Input) (Input, GreenElement, bool) {
	rest, headerLine, ws, nl := TrimLineEnd(in)
	if !strings.EqualFold(headerLine.S, ":PROPERTIES:") {
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
			// ran off the end of input without seeing :END:
			return in, nil, false
		}
		lineRest, line, lws, lnl := TrimLineEnd(cursor)
		if strings.EqualFold(line.S, ":END:") {
			end := NewNodeBuilder(in.Cfg.Debug)
			end.Text(line)
			end.Ws(lws)
			end.Nl(lnl)
			b.Push(end.Finish(KEYWORD))
			cursor = lineRest
			break
		}
		if prop, ok := parseNodeProperty(line, lws, lnl, in.Cfg.Debug); ok {
			b.Push(prop)
		} else {
			verbatim := NewNodeBuilder(in.Cfg.Debug)
			verbatim.Text(line)
			verbatim.Ws(lws)
			verbatim.Nl(lnl)
			b.Push(verbatim.Finish(FIXED_WIDTH))
		}
		cursor = lineRest
	}
	return cursor, b.Finish(PROPERTY_DRAWER), true
}

// ParseDrawer recognizes a generic ":NAME:" ... ":END:" drawer (e.g.
// ":LOGBOOK:"), distinct from the dedicated PROPERTY_DRAWER form. The
// opening line must be a single ":NAME:" token with NAME not equal to
// "PROPERTIES" (that case is ParsePropertyDrawer's).
func ParseDrawer(in Input) (Input, GreenElement, bool) {
	rest, headerLine, ws, nl := TrimLineEnd(in)
	name := strings.TrimSpace(headerLine.S)
	if len(name) < 3 || name[0] != ':' || name[len(name)-1] != ':' {
		return in, nil, false
	}
	inner := name[1 : len(name)-1]
	if inner == "" || strings.EqualFold(inner, "PROPERTIES") || strings.ContainsAny(inner, ": \t") {
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
		if strings.EqualFold(strings.TrimSpace(line.S), ":END:") {
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
	return cursor, b.Finish(DRAWER), true
}

// parseNodeProperty recognizes ":KEY: value" (or ":KEY+: value" for the
// accumulating-property suffix).
func parseNodeProperty(line, ws, nl Input, debug bool) (GreenElement, bool) {
	s := line.S
	if len(s) < 2 || s[0] != ':' {
		return nil, false
	}
	end := strings.IndexByte(s[1:], ':')
	if end == -1 {
		return nil, false
	}
	end += 1
	key, rest := line.TakeSplit(end + 1)
	valueAndWs := rest
	i := 0
	for i < len(valueAndWs.S) && (valueAndWs.S[i] == ' ' || valueAndWs.S[i] == '\t') {
		i++
	}
	gap, value := valueAndWs.TakeSplit(i)

	b := NewNodeBuilder(debug)
	b.Push(key.Token(TEXT))
	if gap.Len() > 0 {
		b.Ws(gap)
	}
	b.Text(value)
	b.Ws(ws)
	b.Nl(nl)
	return b.Finish(NODE_PROPERTY), true
}
