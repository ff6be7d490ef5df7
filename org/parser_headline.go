package org

import "strings"

// ParseHeadline recognizes one headline and everything it owns: stars,
// optional keyword/priority/tags, title, the planning line, the property
// drawer, the section, and (recursively) every nested headline of
// greater star-depth. Grounded on
// original_source/src/syntax/headline.rs::headline_node_base.
func ParseHeadline(in Input) (Input, GreenElement, bool) {
	stars, rest, ok := headlineStars(in)
	if !ok {
		return in, nil, false
	}
	level := stars.Len()

	b := NewNodeBuilder(in.Cfg.Debug)
	b.Push(stars.Token(HEADLINE_STARS))

	// the stars must be followed by whitespace or a newline (a bare "*"
	// line with no title still owns its planning, section and children),
	// or reach end of input.
	if rest.IsEmpty() {
		return finishHeadlineNoBody(in, rest, b)
	}
	if rest.S[0] != ' ' && rest.S[0] != '\t' && rest.S[0] != '\n' {
		return in, nil, false
	}
	ws, rest2 := takeWs(rest)
	b.Ws(ws)
	rest = rest2

	rest, content, ws2, nl := TrimLineEnd(rest)
	// content is the line's text (stars/ws already excluded) up to but
	// not including trailing whitespace and the line terminator.

	contentRest, kwElem := headlineKeyword(content, in.Cfg)
	b.PushOpt(kwElem)
	if kwElem != nil {
		wsAfter, after := takeWsInput(contentRest)
		b.Ws(wsAfter)
		contentRest = after
	}

	contentRest2, prioElem := headlinePriorityNode(contentRest, in.Cfg.Debug)
	b.PushOpt(prioElem)
	if prioElem != nil {
		wsAfter, after := takeWsInput(contentRest2)
		b.Ws(wsAfter)
		contentRest2 = after
	}

	title, tagsText, hasTags := headlineTagsSplit(contentRest2.S)
	if title != "" {
		titleIn := Input{S: title, Cfg: in.Cfg}
		b.Push(parseTitleNode(titleIn))
	}
	if hasTags {
		// whitespace between title and the tag run, if the title is
		// non-empty; headlineTagsSplit already excluded it from title.
		gap := contentRest2.S[len(title) : len(contentRest2.S)-len(tagsText)]
		if gap != "" {
			b.Push(NewGreenToken(WHITESPACE, gap))
		}
		b.Push(headlineTagsNode(tagsText, in.Cfg.Debug))
	}

	b.Ws(ws2)
	b.Nl(nl)

	planningRest := rest
	if p, afterPlanning, ok := ParsePlanning(planningRest); ok {
		b.Push(p)
		planningRest = afterPlanning
	}
	if afterDrawer, d, ok := ParsePropertyDrawer(planningRest); ok {
		b.Push(d)
		planningRest = afterDrawer
	}

	sectionRest, sectionElem := parseSectionUntilHeadline(planningRest)
	b.PushOpt(sectionElem)

	for {
		childRest, child, ok := parseChildHeadline(sectionRest, level)
		if !ok {
			break
		}
		b.Push(child)
		sectionRest = childRest
	}

	return sectionRest, b.Finish(HEADLINE), true
}

// finishHeadlineNoBody handles the edge case of a headline whose star
// run reaches end-of-input with no title, planning, or section: a
// supplemented feature from original_source (the original
// bails out of headline_node_base immediately once there is no trailing
// newline left to consume).
func finishHeadlineNoBody(orig, rest Input, b *NodeBuilder) (Input, GreenElement, bool) {
	if !rest.IsEmpty() && rest.S[0] == '\n' {
		nl, after := rest.TakeSplit(1)
		b.Nl(nl)
		return after, b.Finish(HEADLINE), true
	}
	return rest, b.Finish(HEADLINE), true
}

func parseChildHeadline(in Input, parentLevel int) (Input, GreenElement, bool) {
	stars, ok := peekStars(in)
	if !ok || stars <= parentLevel {
		return in, nil, false
	}
	return ParseHeadline(in)
}

func peekStars(in Input) (int, bool) {
	i := 0
	for i < len(in.S) && in.S[i] == '*' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	if i < len(in.S) && in.S[i] != ' ' && in.S[i] != '\t' && in.S[i] != '\n' {
		return 0, false
	}
	return i, true
}

func headlineStars(in Input) (Input, Input, bool) {
	n, ok := peekStars(in)
	if !ok {
		return in, in, false
	}
	stars, rest := in.TakeSplit(n)
	return stars, rest, true
}

func takeWs(in Input) (Input, Input) {
	i := 0
	for i < len(in.S) && (in.S[i] == ' ' || in.S[i] == '\t') {
		i++
	}
	return in.TakeSplit(i)
}

func takeWsInput(in Input) (Input, Input) {
	return takeWs(in)
}

// headlineKeyword matches the longest prefix word against the
// configured active/done TODO keywords (spec.md §3.4). Grounded on
// original_source/src/syntax/headline.rs::headline_keyword_token.
func headlineKeyword(content Input, cfg *ParseConfig) (Input, GreenElement) {
	i := 0
	for i < len(content.S) && isASCIILetter(content.S[i]) {
		i++
	}
	if i == 0 {
		return content, nil
	}
	word := content.S[:i]
	if !cfg.TodoKeywords.contains(word) {
		return content, nil
	}
	tok, rest := content.TakeSplit(i)
	return rest, tok.Token(HEADLINE_KEYWORD)
}

// headlinePriorityNode matches "[#X]" where X is a single alphanumeric
// priority cookie. Grounded on headline.rs::headline_priority_node.
func headlinePriorityNode(content Input, debug bool) (Input, GreenElement) {
	if len(content.S) < 4 || content.S[0] != '[' || content.S[1] != '#' || content.S[3] != ']' {
		return content, nil
	}
	if !isASCIILetter(content.S[2]) && !isDigitByte(content.S[2]) {
		return content, nil
	}
	b := NewNodeBuilder(debug)
	lb, rest := content.TakeSplit(1)
	b.Push(lb.Token(L_BRACKET))
	hash, rest2 := rest.TakeSplit(1)
	b.Push(hash.Token(HASH))
	letter, rest3 := rest2.TakeSplit(1)
	b.Push(letter.Token(TEXT))
	rb, rest4 := rest3.TakeSplit(1)
	b.Push(rb.Token(R_BRACKET))
	return rest4, b.Finish(HEADLINE_PRIORITY)
}

// headlineTagsSplit performs the right-to-left colon scan of
// headline.rs::headline_tags_node: it finds the maximal well-formed run
// of ":tag:tag:...:" at the end of content, stopping the moment it meets
// a zero-length segment between two colons. The issue_15_16 edge case —
// a bare "::" with no tag between — still produces a tags node, just an
// empty one (two COLON tokens, no tag text), matching
// original_source/src/syntax/headline.rs's issue_15_16 test.
func headlineTagsSplit(content string) (title, tagsText string, ok bool) {
	end := len(content)
	for end > 0 && (content[end-1] == ' ' || content[end-1] == '\t') {
		end--
	}
	if end == 0 || content[end-1] != ':' {
		return content, "", false
	}
	pos := end - 1 // index of the last ':'
	tagCount := 0
	for pos > 0 {
		j := pos - 1
		k := j
		for k >= 0 && isTagChar(content[k]) {
			k--
		}
		if k == j {
			if tagCount > 0 || content[j] != ':' {
				break // real tags already found, or no "::" here; stop
			}
			// zero-length segment on the very first colon pair: content[j]
			// and content[pos] are themselves the whole tags node.
			if j > 0 && content[j-1] != ' ' && content[j-1] != '\t' {
				return content, "", false
			}
			titleEnd := j
			for titleEnd > 0 && (content[titleEnd-1] == ' ' || content[titleEnd-1] == '\t') {
				titleEnd--
			}
			return content[:titleEnd], content[j:end], true
		}
		if k < 0 || content[k] != ':' {
			break
		}
		tagCount++
		pos = k
	}
	if tagCount == 0 {
		return content, "", false
	}
	if pos > 0 && content[pos-1] != ' ' && content[pos-1] != '\t' {
		return content, "", false
	}
	titleEnd := pos
	for titleEnd > 0 && (content[titleEnd-1] == ' ' || content[titleEnd-1] == '\t') {
		titleEnd--
	}
	return content[:titleEnd], content[pos:end], true
}

func isTagChar(b byte) bool {
	return isASCIILetter(b) || isDigitByte(b) || b == '_' || b == '@' || b == '#' || b == '%'
}

// headlineTagsNode rebuilds the ":tag:tag:" text into a HEADLINE_TAGS
// node of alternating COLON and TEXT tokens.
func headlineTagsNode(tagsText string, debug bool) GreenElement {
	b := NewNodeBuilder(debug)
	rest := tagsText
	for len(rest) > 0 {
		if rest[0] == ':' {
			b.Push(NewGreenToken(COLON, ":"))
			rest = rest[1:]
			continue
		}
		i := 0
		for i < len(rest) && rest[i] != ':' {
			i++
		}
		b.Push(NewGreenToken(TEXT, rest[:i]))
		rest = rest[i:]
	}
	return b.Finish(HEADLINE_TAGS)
}

// parseTitleNode parses the title as a run of inline objects wrapped in
// a HEADLINE_TITLE node (spec.md §4.7 applies to headline titles too).
func parseTitleNode(in Input) GreenElement {
	b := NewNodeBuilder(in.Cfg.Debug)
	rest := in
	var prev byte
	for !rest.IsEmpty() {
		next, elem, ok := ParseObject(rest, prev)
		if !ok {
			break
		}
		b.Push(elem)
		prev = lastConsumedByte(rest, next)
		rest = next
	}
	if b.Len() == 0 {
		b.Text(in)
	}
	return b.Finish(HEADLINE_TITLE)
}

// parseSectionUntilHeadline consumes every element up to (not including)
// the next headline of any depth, or end of input. This serves both a
// headline's own section (a child headline ends it; parseChildHeadline
// alone decides whether that next headline is actually a child by
// comparing star counts) and the document's zeroth section, which has
// no level of its own to compare against anyway.
func parseSectionUntilHeadline(in Input) (Input, GreenElement) {
	end := len(in.S)
	rest := in.S
	offset := 0
	for {
		idx := strings.IndexByte(rest, '\n')
		lineStart := offset
		var lineContent string
		if idx == -1 {
			lineContent = rest
			offset = len(in.S)
		} else {
			lineContent = rest[:idx]
			offset = lineStart + idx + 1
		}
		if _, ok := peekStars(Input{S: lineContent + "\n"}); ok {
			end = lineStart
			break
		}
		if idx == -1 {
			break
		}
		rest = in.S[offset:]
	}
	if end == 0 {
		return in, nil
	}
	body, after := in.TakeSplit(end)
	return after, parseSectionBody(body)
}

func parseSectionBody(in Input) GreenElement {
	b := NewNodeBuilder(in.Cfg.Debug)
	rest := in
	for !rest.IsEmpty() {
		next, elem, ok := ParseElement(rest)
		if !ok {
			break
		}
		b.Push(elem)
		rest = next
	}
	if rest.Len() > 0 {
		b.Text(rest)
	}
	if b.Len() == 0 {
		return nil
	}
	return b.Finish(SECTION)
}
