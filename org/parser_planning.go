package org

// ParsePlanning recognizes a planning line directly following a
// headline: one or more of "CLOSED:", "DEADLINE:", "SCHEDULED:" each
// followed by whitespace and a timestamp, in any order, on a single
// line. Returns false (consuming nothing) if the line doesn't start
// with one of those three keywords — a line not recognized as planning
// falls through to the section/element parser instead.
func ParsePlanning(in Input) (GreenElement, Input, bool) {
	if _, _, ok := planningKeyword(in); !ok {
		return nil, in, false
	}

	rest, content, ws, nl := TrimLineEnd(in)

	b := NewNodeBuilder(in.Cfg.Debug)
	cursor := content
	count := 0
	for {
		kw, kwKind, ok := planningKeyword(cursor)
		if !ok {
			break
		}
		afterKw := cursor.Advance(kw.Len())
		if afterKw.IsEmpty() || afterKw.S[0] != ':' {
			break
		}
		colon, afterColon := afterKw.TakeSplit(1)
		wsGap, afterWs := takeWs(afterColon)
		if wsGap.IsEmpty() {
			break
		}
		tsRest, tsElem, ok := ParseTimestamp(afterWs)
		if !ok {
			break
		}

		sub := NewNodeBuilder(in.Cfg.Debug)
		sub.Text(kw)
		sub.Push(colon.Token(COLON))
		sub.Ws(wsGap)
		sub.Push(tsElem)
		b.Push(sub.Finish(kwKind))
		count++

		cursor = tsRest
		if cursor.Len() > 0 && cursor.S[0] == ' ' {
			gap, after := takeWs(cursor)
			b.Ws(gap)
			cursor = after
		}
	}
	if count == 0 {
		return nil, in, false
	}
	if cursor.Len() > 0 {
		b.Text(cursor)
	}
	b.Ws(ws)
	b.Nl(nl)
	return b.Finish(PLANNING), rest, true
}

func planningKeyword(in Input) (Input, Kind, bool) {
	switch {
	case in.HasPrefix("CLOSED"):
		tok, _ := in.TakeSplit(6)
		return tok, PLANNING_CLOSED, true
	case in.HasPrefix("DEADLINE"):
		tok, _ := in.TakeSplit(8)
		return tok, PLANNING_DEADLINE, true
	case in.HasPrefix("SCHEDULED"):
		tok, _ := in.TakeSplit(9)
		return tok, PLANNING_SCHEDULED, true
	}
	return Input{}, 0, false
}
