package org

import "strings"

// ListKind distinguishes the three list marker families org-mode
// supports: "-"/"+" (unordered), "1."/"1)" (ordered), and the
// "term :: description" form (descriptive). Grounded on teacher's
// ListKind enum, now computed from the green tree's marker text instead
// of carried as parse state.
type ListKind int

const (
	UnorderedList ListKind = iota
	OrderedList
	DescriptiveList
)

func (k ListKind) String() string {
	switch k {
	case UnorderedList:
		return "unordered"
	case OrderedList:
		return "ordered"
	case DescriptiveList:
		return "descriptive"
	default:
		return "unknown"
	}
}

// List is the typed overlay of a LIST node (spec.md §3.1). Grounded on
// teacher's org/list.go (parseList), generalized from a regex-built AST
// to a projection over LIST_ITEM children of the green tree.
type List struct {
	syntax *RedNode
}

func (l *List) Kind() Kind          { return LIST }
func (l *List) Syntax() *RedNode    { return l.syntax }
func (l *List) setSyntax(n *RedNode) { l.syntax = n }

// Items returns every LIST_ITEM child, in order.
func (l *List) Items() []*ListItem {
	return ChildrenOf[ListItem, *ListItem](l.syntax)
}

// ListKind reports which marker family the list's first item uses.
func (l *List) ListKind() ListKind {
	items := l.Items()
	if len(items) == 0 {
		return UnorderedList
	}
	return items[0].markerKind()
}

// ListItem is the typed overlay of a LIST_ITEM node. Grounded on
// teacher's ListItem/DescriptiveListItem (org/list.go's
// listItemStatusRegexp for the "[ ]"/"[X]"/"[-]" checkbox cookie).
type ListItem struct {
	syntax *RedNode
}

func (i *ListItem) Kind() Kind          { return LIST_ITEM }
func (i *ListItem) Syntax() *RedNode    { return i.syntax }
func (i *ListItem) setSyntax(n *RedNode) { i.syntax = n }

// Bullet returns the item's marker text ("-", "+", "1.", "1)").
func (i *ListItem) Bullet() string {
	tok := i.syntax.FirstToken()
	if tok == nil {
		return ""
	}
	return strings.TrimLeft(tok.Text(), " ")
}

func (i *ListItem) markerKind() ListKind {
	b := i.Bullet()
	switch {
	case b == "-" || b == "+":
		if i.Term() != "" {
			return DescriptiveList
		}
		return UnorderedList
	case len(b) > 0 && isDigitByte(b[0]):
		return OrderedList
	}
	if i.Term() != "" {
		return DescriptiveList
	}
	return UnorderedList
}

// Status returns the checkbox cookie's letter ("space", "X", or "-"),
// and whether one was present. A checkbox cookie is the first "[c]"
// substring directly after the bullet.
func (i *ListItem) Status() (byte, bool) {
	tok := i.syntax.FirstToken()
	if tok == nil {
		return 0, false
	}
	rest := strings.TrimLeft(i.syntax.Text()[len(tok.Text()):], " \t")
	if len(rest) < 3 || rest[0] != '[' || rest[2] != ']' {
		return 0, false
	}
	switch rest[1] {
	case ' ', 'X', '-':
		return rest[1], true
	}
	return 0, false
}

// Term returns the description-list term (the text before " :: "), or
// "" if this item isn't a descriptive-list item.
func (i *ListItem) Term() string {
	text := i.syntax.Text()
	if idx := strings.Index(text, " :: "); idx != -1 {
		bullet := i.Bullet()
		return strings.TrimSpace(strings.TrimPrefix(text[:idx], bullet))
	}
	return ""
}

// Details returns the description-list definition (the text after
// " :: "), folding the teacher's separate DescriptiveListItem type into
// ListItem: the green tree has one LIST_ITEM kind regardless of marker
// family, so Term/Details simply return "" when not applicable instead
// of needing a distinct node kind and Go type.
func (i *ListItem) Details() string {
	text := i.syntax.Text()
	if idx := strings.Index(text, " :: "); idx != -1 {
		return strings.TrimSpace(text[idx+4:])
	}
	return ""
}
