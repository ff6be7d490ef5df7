package org

import (
	"strings"
)

// ParseList recognizes a run of consecutive list items at the same
// indentation: "- item", "+ item", "1. item", "1) item", and the
// description form "term :: description". Grounded on teacher's
// org/list.go (unorderedListRegexp, descriptiveListItemRegexp,
// listItemStatusRegexp, parseList/parseListItem).
func ParseList(in Input) (Input, GreenElement, bool) {
	indent, marker, ok := listItemPrefix(in.S)
	if !ok {
		return in, nil, false
	}

	b := NewNodeBuilder(in.Cfg.Debug)
	rest := in
	for {
		itemIndent, itemMarker, ok := listItemPrefix(rest.S)
		if !ok || itemIndent != indent || sameMarkerKind(marker, itemMarker) == false {
			break
		}
		next, item, ok := parseListItem(rest, itemIndent)
		if !ok {
			break
		}
		b.Push(item)
		rest = next
		if rest.IsEmpty() {
			break
		}
	}
	if b.Len() == 0 {
		return in, nil, false
	}
	return rest, b.Finish(LIST), true
}

// sameMarkerKind groups "-"/"+" together as unordered and any digit
// marker as ordered, so a list doesn't silently switch kind mid-run.
func sameMarkerKind(a, b string) bool {
	return isOrderedMarker(a) == isOrderedMarker(b)
}

func isOrderedMarker(m string) bool {
	return len(m) > 0 && isDigitByte(m[0])
}

// listItemPrefix reports the indentation and marker text ("-", "+", or
// an ordered marker like "1." / "1)") of the list item starting the
// first line of s, or ok=false if it isn't one.
func listItemPrefix(s string) (int, string, bool) {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	if i >= len(s) {
		return 0, "", false
	}
	switch s[i] {
	case '-', '+':
		if i+1 < len(s) && (s[i+1] == ' ' || s[i+1] == '\t') {
			return i, s[i : i+1], true
		}
		return 0, "", false
	}
	if isDigitByte(s[i]) {
		j := i
		for j < len(s) && isDigitByte(s[j]) {
			j++
		}
		if j < len(s) && (s[j] == '.' || s[j] == ')') && j+1 < len(s) && (s[j+1] == ' ' || s[j+1] == '\t') {
			return i, s[i : j+1], true
		}
	}
	return 0, "", false
}

// parseListItem parses one item's own line plus any continuation lines
// indented further than itemIndent, stopping at a blank line, a
// dedented line, or a sibling/lower item.
func parseListItem(in Input, itemIndent int) (Input, GreenElement, bool) {
	_, marker, ok := listItemPrefix(in.S)
	if !ok {
		return in, nil, false
	}
	end := listItemExtent(in.S, itemIndent)
	if end == 0 {
		return in, nil, false
	}
	body, rest := in.TakeSplit(end)

	bullet, afterBullet := body.TakeSplit(itemIndent + len(marker))
	b := NewNodeBuilder(in.Cfg.Debug)
	b.Text(bullet)

	// description list: "term :: description"
	contentStr := afterBullet.S
	if idx := strings.Index(contentStr, " :: "); idx != -1 && !strings.Contains(contentStr[:idx], "\n") {
		term, afterTerm := afterBullet.TakeSplit(idx)
		sep, afterSep := afterTerm.TakeSplit(4)
		b.Text(term)
		b.Push(sep.Token(COLON2))
		afterBullet = afterSep
	}

	cursor := afterBullet
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
	return rest, b.Finish(LIST_ITEM), true
}

// listItemExtent finds the end offset of one list item: its own line
// plus continuation lines indented more than itemIndent, stopping
// before a blank line or a line indented at itemIndent or less.
func listItemExtent(s string, itemIndent int) int {
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
		if !first {
			if isAllWhitespace(line) {
				return offset
			}
			lead := 0
			for lead < len(line) && line[lead] == ' ' {
				lead++
			}
			if lead <= itemIndent {
				return offset
			}
		}
		first = false
		offset = lineEnd
	}
	return offset
}
