package org

import "strings"

// ParseTimestamp recognizes a timestamp object starting at in (spec.md
// §4.8): either `<...>` (active), `[...]` (inactive), or the diary form
// `<%%(...)>`. On success it returns the remaining input and the
// TIMESTAMP_* green node; both bodies of a `BODY--BODY` range are folded
// into one node, matching the first delimiter's kind.
func ParseTimestamp(in Input) (Input, GreenElement, bool) {
	if in.IsEmpty() {
		return in, nil, false
	}
	switch in.S[0] {
	case '<':
		if rest, elem, ok := parseDiaryTimestamp(in); ok {
			return rest, elem, ok
		}
		return parseDelimitedTimestampMaybeRange(in, '<', '>', L_ANGLE, R_ANGLE, TIMESTAMP_ACTIVE)
	case '[':
		return parseDelimitedTimestampMaybeRange(in, '[', ']', L_BRACKET, R_BRACKET, TIMESTAMP_INACTIVE)
	default:
		return in, nil, false
	}
}

func parseDiaryTimestamp(in Input) (Input, GreenElement, bool) {
	if !in.HasPrefix("<%%(") {
		return in, nil, false
	}
	closeIdx := strings.Index(in.S, ")>")
	if closeIdx == -1 {
		return in, nil, false
	}
	b := NewNodeBuilder(in.Cfg.Debug)
	lAngle, rest := in.TakeSplit(1)
	b.Push(lAngle.Token(L_ANGLE))
	percent2, rest2 := rest.TakeSplit(2)
	b.Push(percent2.Token(PERCENT2))
	lParens, rest3 := rest2.TakeSplit(1)
	b.Push(lParens.Token(L_PARENS))
	bodyLen := closeIdx - 4 // offset of ")>" minus consumed "<%%("
	body, rest4 := rest3.TakeSplit(bodyLen)
	b.Text(body)
	rParens, rest5 := rest4.TakeSplit(1)
	b.Push(rParens.Token(R_PARENS))
	rAngle, rest6 := rest5.TakeSplit(1)
	b.Push(rAngle.Token(R_ANGLE))
	return rest6, b.Finish(TIMESTAMP_DIARY), true
}

func parseDelimitedTimestampMaybeRange(in Input, openCh, closeCh byte, openKind, closeKind, nodeKind Kind) (Input, GreenElement, bool) {
	rest, firstElems, ok := parseOneDelimitedBody(in, openCh, closeCh, openKind, closeKind)
	if !ok {
		return in, nil, false
	}
	elems := firstElems
	if rest.HasPrefix("--") && rest.Len() > 2 && rest.S[2] == openCh {
		m1, afterDashes := rest.TakeSplit(1)
		m2, afterDashes2 := afterDashes.TakeSplit(1)
		if secondRest, secondElems, ok2 := parseOneDelimitedBody(afterDashes2, openCh, closeCh, openKind, closeKind); ok2 {
			elems = append(elems, m1.Token(MINUS), m2.Token(MINUS))
			elems = append(elems, secondElems...)
			rest = secondRest
		}
	}
	b := NewNodeBuilder(in.Cfg.Debug)
	for _, e := range elems {
		b.Push(e)
	}
	return rest, b.Finish(nodeKind), true
}

func parseOneDelimitedBody(in Input, openCh, closeCh byte, openKind, closeKind Kind) (Input, []GreenElement, bool) {
	if in.IsEmpty() || in.S[0] != openCh {
		return in, nil, false
	}
	closeIdx := strings.IndexByte(in.S, closeCh)
	if closeIdx == -1 {
		return in, nil, false
	}
	openTok, rest := in.TakeSplit(1)
	body, afterBody := rest.TakeSplit(closeIdx - 1)
	closeTok, afterClose := afterBody.TakeSplit(1)

	bodyElems, bodyRest, ok := parseTimestampBody(body)
	if !ok || !bodyRest.IsEmpty() {
		return in, nil, false
	}

	elems := make([]GreenElement, 0, len(bodyElems)+2)
	elems = append(elems, openTok.Token(openKind))
	elems = append(elems, bodyElems...)
	elems = append(elems, closeTok.Token(closeKind))
	return afterClose, elems, true
}

// parseTimestampBody parses the BODY grammar of spec.md §4.8 from a
// bracket-free slice (the content strictly between the delimiters).
func parseTimestampBody(in Input) ([]GreenElement, Input, bool) {
	var elems []GreenElement

	rest, dateElems, ok := parseTimestampDate(in)
	if !ok {
		return nil, in, false
	}
	elems = append(elems, dateElems...)

	// optional dayname
	if ws, afterWs, dn, afterDn, ok := parseTimestampDayname(rest); ok {
		elems = append(elems, ws.WsToken())
		elems = append(elems, dn.Token(TIMESTAMP_DAYNAME))
		rest = afterDn
		_ = afterWs
	}

	// optional time / time-range
	if ws, r2, timeElems, ok := parseOptWsThen(rest, parseTimestampTimeOrRange); ok {
		elems = append(elems, ws.WsToken())
		elems = append(elems, timeElems...)
		rest = r2
	}

	// optional repeater
	if ws, r2, repElems, ok := parseOptWsThen(rest, parseTimestampRepeater); ok {
		elems = append(elems, ws.WsToken())
		elems = append(elems, repElems...)
		rest = r2
	}

	// optional warning
	if ws, r2, warnElems, ok := parseOptWsThen(rest, parseTimestampWarning); ok {
		elems = append(elems, ws.WsToken())
		elems = append(elems, warnElems...)
		rest = r2
	}

	return elems, rest, true
}

// parseOptWsThen tries: consume 1+ spaces, then p; rolls back entirely if
// p fails (the whitespace belongs to whatever follows, never dangling).
func parseOptWsThen(in Input, p func(Input) ([]GreenElement, Input, bool)) (Input, Input, []GreenElement, bool) {
	i := 0
	for i < len(in.S) && in.S[i] == ' ' {
		i++
	}
	if i == 0 {
		return Input{}, in, nil, false
	}
	ws, rest := in.TakeSplit(i)
	elems, after, ok := p(rest)
	if !ok {
		return Input{}, in, nil, false
	}
	return ws, after, elems, true
}

func parseTimestampDate(in Input) (Input, []GreenElement, bool) {
	year, rest, ok := takeDigits(in, 4)
	if !ok {
		return in, nil, false
	}
	dash1, rest2, ok := takeByte(rest, '-')
	if !ok {
		return in, nil, false
	}
	month, rest3, ok := takeDigits(rest2, 2)
	if !ok {
		return in, nil, false
	}
	dash2, rest4, ok := takeByte(rest3, '-')
	if !ok {
		return in, nil, false
	}
	day, rest5, ok := takeDigits(rest4, 2)
	if !ok {
		return in, nil, false
	}
	return rest5, []GreenElement{
		year.Token(TIMESTAMP_VALUE),
		dash1.Token(MINUS),
		month.Token(TIMESTAMP_VALUE),
		dash2.Token(MINUS),
		day.Token(TIMESTAMP_VALUE),
	}, true
}

func parseTimestampDayname(in Input) (Input, Input, Input, Input, bool) {
	i := 0
	for i < len(in.S) && in.S[i] == ' ' {
		i++
	}
	if i == 0 {
		return Input{}, in, Input{}, in, false
	}
	ws, rest := in.TakeSplit(i)
	j := 0
	for j < len(rest.S) && isASCIILetter(rest.S[j]) {
		j++
	}
	if j == 0 {
		return Input{}, in, Input{}, in, false
	}
	dn, rest2 := rest.TakeSplit(j)
	return ws, rest, dn, rest2, true
}

func parseTimestampTimeOrRange(in Input) ([]GreenElement, Input, bool) {
	hh1, rest, ok := takeDigits(in, 2)
	if !ok {
		return nil, in, false
	}
	colon1, rest2, ok := takeByte(rest, ':')
	if !ok {
		return nil, in, false
	}
	mm1, rest3, ok := takeDigits(rest2, 2)
	if !ok {
		return nil, in, false
	}
	elems := []GreenElement{hh1.Token(TIMESTAMP_VALUE), colon1.Token(COLON), mm1.Token(TIMESTAMP_VALUE)}
	if rest3.Len() > 0 && rest3.S[0] == '-' && rest3.Len() > 1 && isDigitByte(rest3.S[1]) {
		dash, rest4 := rest3.TakeSplit(1)
		hh2, rest5, ok := takeDigits(rest4, 2)
		if !ok {
			return elems, rest3, true
		}
		colon2, rest6, ok := takeByte(rest5, ':')
		if !ok {
			return elems, rest3, true
		}
		mm2, rest7, ok := takeDigits(rest6, 2)
		if !ok {
			return elems, rest3, true
		}
		elems = append(elems, dash.Token(MINUS), hh2.Token(TIMESTAMP_VALUE), colon2.Token(COLON), mm2.Token(TIMESTAMP_VALUE))
		return elems, rest7, true
	}
	return elems, rest3, true
}

func parseTimestampRepeater(in Input) ([]GreenElement, Input, bool) {
	mark, rest, ok := takeRepeaterMark(in)
	if !ok {
		return nil, in, false
	}
	digits, rest2, ok := takeDigitsVar(rest)
	if !ok {
		return nil, in, false
	}
	unit, rest3, ok := takeUnit(rest2)
	if !ok {
		return nil, in, false
	}
	return []GreenElement{
		mark.Token(TIMESTAMP_REPEATER_MARK),
		digits.Token(TIMESTAMP_VALUE),
		unit.Token(TIMESTAMP_UNIT),
	}, rest3, true
}

func parseTimestampWarning(in Input) ([]GreenElement, Input, bool) {
	mark, rest, ok := takeWarningMark(in)
	if !ok {
		return nil, in, false
	}
	digits, rest2, ok := takeDigitsVar(rest)
	if !ok {
		return nil, in, false
	}
	unit, rest3, ok := takeUnit(rest2)
	if !ok {
		return nil, in, false
	}
	return []GreenElement{
		mark.Token(TIMESTAMP_DELAY_MARK),
		digits.Token(TIMESTAMP_VALUE),
		unit.Token(TIMESTAMP_UNIT),
	}, rest3, true
}

func takeRepeaterMark(in Input) (Input, Input, bool) {
	switch {
	case in.HasPrefix("++"):
		return takeSplitOK(in,2)
	case in.HasPrefix(".+"):
		return takeSplitOK(in,2)
	case in.HasPrefix("+"):
		return takeSplitOK(in,1)
	}
	return in, in, false
}

func takeWarningMark(in Input) (Input, Input, bool) {
	switch {
	case in.HasPrefix("--"):
		return takeSplitOK(in,2)
	case in.HasPrefix("-"):
		return takeSplitOK(in,1)
	}
	return in, in, false
}

func takeUnit(in Input) (Input, Input, bool) {
	if in.IsEmpty() {
		return in, in, false
	}
	switch in.S[0] {
	case 'h', 'd', 'w', 'm', 'y':
		return takeSplitOK(in,1)
	}
	return in, in, false
}

func takeDigits(in Input, n int) (Input, Input, bool) {
	if in.Len() < n {
		return in, in, false
	}
	for i := 0; i < n; i++ {
		if !isDigitByte(in.S[i]) {
			return in, in, false
		}
	}
	return takeSplitOK(in,n)
}

func takeDigitsVar(in Input) (Input, Input, bool) {
	i := 0
	for i < len(in.S) && isDigitByte(in.S[i]) {
		i++
	}
	if i == 0 {
		return in, in, false
	}
	return takeSplitOK(in,i)
}

func takeByte(in Input, c byte) (Input, Input, bool) {
	if in.IsEmpty() || in.S[0] != c {
		return in, in, false
	}
	return takeSplitOK(in,1)
}

// takeSplitOK is TakeSplit plus the success flag the take* helpers
// above return.
func takeSplitOK(in Input, n int) (Input, Input, bool) {
	prefix, rest := in.TakeSplit(n)
	return prefix, rest, true
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }
