package org

import "strings"

// Headline is the typed overlay of a HEADLINE node (spec.md §3.3).
// Grounded on original_source/src/ast/headline.rs.
type Headline struct {
	syntax *RedNode
}

func (h *Headline) Kind() Kind        { return HEADLINE }
func (h *Headline) Syntax() *RedNode  { return h.syntax }
func (h *Headline) setSyntax(n *RedNode) { h.syntax = n }

// Level is the number of stars.
func (h *Headline) Level() int {
	stars := h.syntax.ChildToken(HEADLINE_STARS)
	if stars == nil {
		return 0
	}
	return len(stars.Text())
}

// Keyword returns the TODO/DONE keyword token text, and whether one was
// present.
func (h *Headline) Keyword() (string, bool) {
	tok := h.syntax.ChildToken(HEADLINE_KEYWORD)
	if tok == nil {
		return "", false
	}
	return tok.Text(), true
}

// IsDone reports whether the headline's keyword is one of the
// configured "done" keywords.
func (h *Headline) IsDone(cfg *ParseConfig) bool {
	kw, ok := h.Keyword()
	return ok && cfg.TodoKeywords.IsDone(kw)
}

// Priority returns the headline's priority cookie, if any.
func (h *Headline) Priority() (*HeadlinePriority, bool) {
	return cast[HeadlinePriority, *HeadlinePriority](h.syntax.ChildNode(HEADLINE_PRIORITY))
}

// Title returns the headline's title node.
func (h *Headline) Title() (*HeadlineTitle, bool) {
	return cast[HeadlineTitle, *HeadlineTitle](h.syntax.ChildNode(HEADLINE_TITLE))
}

// Tags returns the headline's tag list node.
func (h *Headline) Tags() (*HeadlineTags, bool) {
	return cast[HeadlineTags, *HeadlineTags](h.syntax.ChildNode(HEADLINE_TAGS))
}

// IsCommented reports whether the title starts with the literal keyword
// COMMENT (org-mode's per-headline "don't export" marker).
func (h *Headline) IsCommented() bool {
	title, ok := h.Title()
	if !ok {
		return false
	}
	text := strings.TrimSpace(title.syntax.Text())
	return text == "COMMENT" || strings.HasPrefix(text, "COMMENT ") || strings.HasPrefix(text, "COMMENT\t")
}

// IsArchived reports whether the headline carries the literal "ARCHIVE"
// tag (exact match — "ARCHIVED" does not count, matching org-mode's own
// distinction between the two similarly-named tags).
func (h *Headline) IsArchived() bool {
	tags, ok := h.Tags()
	if !ok {
		return false
	}
	for _, t := range tags.Iter() {
		if t == "ARCHIVE" {
			return true
		}
	}
	return false
}

// Planning returns the headline's planning line node, if present.
func (h *Headline) Planning() (*Planning, bool) {
	return cast[Planning, *Planning](h.syntax.ChildNode(PLANNING))
}

// Closed, Scheduled, Deadline delegate to the planning line, if any.
func (h *Headline) Closed() (*Timestamp, bool) {
	p, ok := h.Planning()
	if !ok {
		return nil, false
	}
	return p.Closed()
}

func (h *Headline) Scheduled() (*Timestamp, bool) {
	p, ok := h.Planning()
	if !ok {
		return nil, false
	}
	return p.Scheduled()
}

func (h *Headline) Deadline() (*Timestamp, bool) {
	p, ok := h.Planning()
	if !ok {
		return nil, false
	}
	return p.Deadline()
}

// PropertyDrawer returns the headline's property drawer node, if
// present.
func (h *Headline) PropertyDrawer() (*PropertyDrawer, bool) {
	return cast[PropertyDrawer, *PropertyDrawer](h.syntax.ChildNode(PROPERTY_DRAWER))
}

// Section returns the headline's own section (the content directly
// under it, before any child headline).
func (h *Headline) Section() (*RedNode, bool) {
	n := h.syntax.ChildNode(SECTION)
	return n, n != nil
}

// Children returns the headline's immediate child headlines.
func (h *Headline) Children() []*Headline {
	return ChildrenOf[Headline, *Headline](h.syntax)
}

// HeadlineTitle is the typed overlay of a HEADLINE_TITLE node.
type HeadlineTitle struct {
	syntax *RedNode
}

func (t *HeadlineTitle) Kind() Kind          { return HEADLINE_TITLE }
func (t *HeadlineTitle) Syntax() *RedNode    { return t.syntax }
func (t *HeadlineTitle) setSyntax(n *RedNode) { t.syntax = n }

// Text returns the title's exact source text (objects and all).
func (t *HeadlineTitle) Text() string { return t.syntax.Text() }

// HeadlineTags is the typed overlay of a HEADLINE_TAGS node.
// Grounded on headline.rs::headline_tags_node / HeadlineTags::iter.
type HeadlineTags struct {
	syntax *RedNode
}

func (t *HeadlineTags) Kind() Kind          { return HEADLINE_TAGS }
func (t *HeadlineTags) Syntax() *RedNode    { return t.syntax }
func (t *HeadlineTags) setSyntax(n *RedNode) { t.syntax = n }

// Iter returns every tag name, in source order, skipping the COLON
// delimiters.
func (t *HeadlineTags) Iter() []string {
	var out []string
	for _, tok := range t.syntax.ChildTokens(TEXT) {
		out = append(out, tok.Text())
	}
	return out
}

// HeadlinePriority is the typed overlay of a HEADLINE_PRIORITY node:
// "[#" LETTER "]". Grounded on headline.rs::headline_priority_node and
// ast/headline.rs::HeadlinePriority::text_string.
type HeadlinePriority struct {
	syntax *RedNode
}

func (p *HeadlinePriority) Kind() Kind          { return HEADLINE_PRIORITY }
func (p *HeadlinePriority) Syntax() *RedNode    { return p.syntax }
func (p *HeadlinePriority) setSyntax(n *RedNode) { p.syntax = n }

// TextString returns just the priority cookie's letter/digit.
func (p *HeadlinePriority) TextString() string {
	for _, tok := range p.syntax.ChildTokens(TEXT) {
		return tok.Text()
	}
	return ""
}
