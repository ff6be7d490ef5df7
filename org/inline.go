package org

import "strings"

// The types below are the typed AST overlay for every inline object
// kind except Timestamp, which ast_timestamp.go owns (a timestamp can
// be one of three distinct green-node kinds and needs its own cast
// helper, unlike the single-kind types here). Grounded on teacher's
// org/inline.go: the type names LineBreak, Emphasis, LatexFragment and
// Macro are kept (the teacher's RegularLink is folded into Link, and
// plain text stays a TEXT token with no wrapper type), generalized from
// parseInlineWithPos's regex-driven construction to projections over
// the green tree built by org/parser_object.go.

// LineBreak is the typed overlay of a LINE_BREAK node ("\\" at the end
// of a line).
type LineBreak struct {
	syntax *RedNode
}

func (b *LineBreak) Kind() Kind           { return LINE_BREAK }
func (b *LineBreak) Syntax() *RedNode     { return b.syntax }
func (b *LineBreak) setSyntax(n *RedNode) { b.syntax = n }

// Emphasis is the typed overlay of a BOLD/ITALIC/UNDERLINE/STRIKE/
// VERBATIM/CODE node: all six share the same "mark, body, mark" shape,
// distinguished only by Kind.
type Emphasis struct {
	syntax *RedNode
}

func (e *Emphasis) Kind() Kind           { return e.syntax.Kind() }
func (e *Emphasis) Syntax() *RedNode     { return e.syntax }
func (e *Emphasis) setSyntax(n *RedNode) { e.syntax = n }

func emphasisFromNode(n *RedNode) (*Emphasis, bool) {
	if n == nil {
		return nil, false
	}
	switch n.Kind() {
	case BOLD, ITALIC, UNDERLINE, STRIKE, VERBATIM, CODE:
		return &Emphasis{syntax: n}, true
	}
	return nil, false
}

// Content returns the emphasized text without its marker characters.
func (e *Emphasis) Content() string {
	text := e.syntax.Text()
	marks := e.syntax.ChildTokens(EMPHASIS_MARK)
	if len(marks) == 2 {
		return text[len(marks[0].Text()) : len(text)-len(marks[1].Text())]
	}
	return text
}

// FirstEmphasis returns the first descendant emphasis span of n.
func FirstEmphasis(n *RedNode) (*Emphasis, bool) {
	var found *Emphasis
	n.Descendants(func(d *RedNode) bool {
		if found != nil {
			return false
		}
		if v, ok := emphasisFromNode(d); ok {
			found = v
			return false
		}
		return true
	})
	return found, found != nil
}

// LatexFragment is the typed overlay of a LATEX_FRAGMENT node (any of
// the four delimiter forms: \(...\), \[...\], $...$, $$...$$).
type LatexFragment struct {
	syntax *RedNode
}

func (f *LatexFragment) Kind() Kind           { return LATEX_FRAGMENT }
func (f *LatexFragment) Syntax() *RedNode     { return f.syntax }
func (f *LatexFragment) setSyntax(n *RedNode) { f.syntax = n }

// Macro is the typed overlay of a MACRO node ("{{{name(args)}}}").
type Macro struct {
	syntax *RedNode
}

func (m *Macro) Kind() Kind           { return MACRO }
func (m *Macro) Syntax() *RedNode     { return m.syntax }
func (m *Macro) setSyntax(n *RedNode) { m.syntax = n }

// Name returns the macro's name, the identifier before "(" or "}}}".
func (m *Macro) Name() string {
	body := m.bodyText()
	if i := strings.IndexByte(body, '('); i != -1 {
		return body[:i]
	}
	return body
}

// Args splits the macro's parenthesized argument list on ",".
func (m *Macro) Args() []string {
	body := m.bodyText()
	open := strings.IndexByte(body, '(')
	if open == -1 || !strings.HasSuffix(body, ")") {
		return nil
	}
	inner := body[open+1 : len(body)-1]
	if inner == "" {
		return nil
	}
	parts := strings.Split(inner, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func (m *Macro) bodyText() string {
	texts := m.syntax.ChildTokens(TEXT)
	if len(texts) == 0 {
		return ""
	}
	return texts[0].Text()
}

// LinkKind classifies a Link's protocol family, grounded on teacher's
// RegularLink.Kind().
type LinkKind int

const (
	LinkRegular LinkKind = iota
	LinkVideo
	LinkImage
)

// Link is the typed overlay of a LINK node ("[[target]]" or
// "[[target][description]]"), folding the teacher's separate
// RegularLink/FootnoteLink types into one: LINK already distinguishes
// itself from FOOTNOTE_REFERENCE at the tree-kind level, so a second
// Go type added nothing beyond the node kind.
type Link struct {
	syntax *RedNode
}

func (l *Link) Kind() Kind           { return LINK }
func (l *Link) Syntax() *RedNode     { return l.syntax }
func (l *Link) setSyntax(n *RedNode) { l.syntax = n }

// Target returns the link's URL/path text.
func (l *Link) Target() string {
	texts := l.syntax.ChildTokens(TEXT)
	if len(texts) == 0 {
		return ""
	}
	return texts[0].Text()
}

// Description returns the link's description text and whether one was
// present (a bare "[[target]]" has none).
func (l *Link) Description() (string, bool) {
	texts := l.syntax.ChildTokens(TEXT)
	if len(texts) < 2 {
		return "", false
	}
	return texts[1].Text(), true
}

func (l *Link) LinkKind() LinkKind {
	target := strings.ToLower(l.Target())
	switch {
	case strings.HasSuffix(target, ".mp4"), strings.HasSuffix(target, ".webm"):
		return LinkVideo
	case strings.HasSuffix(target, ".png"), strings.HasSuffix(target, ".jpg"),
		strings.HasSuffix(target, ".jpeg"), strings.HasSuffix(target, ".gif"),
		strings.HasSuffix(target, ".svg"), strings.HasSuffix(target, ".webp"):
		return LinkImage
	default:
		return LinkRegular
	}
}

// FootnoteReference is the typed overlay of a FOOTNOTE_REFERENCE node
// ("[fn:label]" or "[fn:label:inline definition]").
type FootnoteReference struct {
	syntax *RedNode
}

func (r *FootnoteReference) Kind() Kind           { return FOOTNOTE_REFERENCE }
func (r *FootnoteReference) Syntax() *RedNode     { return r.syntax }
func (r *FootnoteReference) setSyntax(n *RedNode) { r.syntax = n }

// Label returns the footnote reference's name (the "x" in "[fn:x]").
// The first TEXT child is the fixed "fn:" tag; the second is the body,
// which for an inline-definition reference ("[fn:x:definition]") also
// carries ":definition" after the name.
func (r *FootnoteReference) Label() string {
	texts := r.syntax.ChildTokens(TEXT)
	if len(texts) < 2 {
		return ""
	}
	body := texts[1].Text()
	if i := strings.IndexByte(body, ':'); i != -1 {
		return body[:i]
	}
	return body
}

// Definition returns the reference's inline definition body
// ("[fn:x:body]") and whether one was present.
func (r *FootnoteReference) Definition() (string, bool) {
	texts := r.syntax.ChildTokens(TEXT)
	if len(texts) < 2 {
		return "", false
	}
	body := texts[1].Text()
	i := strings.IndexByte(body, ':')
	if i == -1 {
		return "", false
	}
	return body[i+1:], true
}

// Entity is the typed overlay of an ENTITY node ("\alpha").
type Entity struct {
	syntax *RedNode
}

func (e *Entity) Kind() Kind           { return ENTITY }
func (e *Entity) Syntax() *RedNode     { return e.syntax }
func (e *Entity) setSyntax(n *RedNode) { e.syntax = n }

func (e *Entity) Name() string {
	texts := e.syntax.ChildTokens(TEXT)
	if len(texts) == 0 {
		return ""
	}
	return texts[0].Text()
}

// RadioTarget and Target are the typed overlays of RADIO_TARGET
// ("<<<name>>>") and TARGET ("<<name>>") nodes.
type RadioTarget struct{ syntax *RedNode }

func (t *RadioTarget) Kind() Kind           { return RADIO_TARGET }
func (t *RadioTarget) Syntax() *RedNode     { return t.syntax }
func (t *RadioTarget) setSyntax(n *RedNode) { t.syntax = n }
func (t *RadioTarget) Name() string         { return targetName(t.syntax) }

type Target struct{ syntax *RedNode }

func (t *Target) Kind() Kind           { return TARGET }
func (t *Target) Syntax() *RedNode     { return t.syntax }
func (t *Target) setSyntax(n *RedNode) { t.syntax = n }
func (t *Target) Name() string         { return targetName(t.syntax) }

func targetName(n *RedNode) string {
	texts := n.ChildTokens(TEXT)
	if len(texts) == 0 {
		return ""
	}
	return texts[0].Text()
}

// Snippet is the typed overlay of a SNIPPET node ("@@backend:text@@").
type Snippet struct{ syntax *RedNode }

func (s *Snippet) Kind() Kind           { return SNIPPET }
func (s *Snippet) Syntax() *RedNode     { return s.syntax }
func (s *Snippet) setSyntax(n *RedNode) { s.syntax = n }

func (s *Snippet) Backend() string {
	body := s.bodyText()
	if i := strings.IndexByte(body, ':'); i != -1 {
		return body[:i]
	}
	return ""
}

func (s *Snippet) Text() string {
	body := s.bodyText()
	if i := strings.IndexByte(body, ':'); i != -1 {
		return body[i+1:]
	}
	return body
}

func (s *Snippet) bodyText() string {
	texts := s.syntax.ChildTokens(TEXT)
	if len(texts) == 0 {
		return ""
	}
	return texts[0].Text()
}

// InlineSrc is the typed overlay of an INLINE_SRC node
// ("src_lang[switches]{body}").
type InlineSrc struct{ syntax *RedNode }

func (s *InlineSrc) Kind() Kind           { return INLINE_SRC }
func (s *InlineSrc) Syntax() *RedNode     { return s.syntax }
func (s *InlineSrc) setSyntax(n *RedNode) { s.syntax = n }

// Language returns the "lang" in "src_lang[header]{body}".
func (s *InlineSrc) Language() string {
	texts := s.syntax.ChildTokens(TEXT)
	if len(texts) == 0 {
		return ""
	}
	return strings.TrimPrefix(texts[0].Text(), "src_")
}

// Body returns the source body, without its surrounding braces.
func (s *InlineSrc) Body() string {
	texts := s.syntax.ChildTokens(TEXT)
	if len(texts) < 2 {
		return ""
	}
	return strings.TrimSuffix(strings.TrimPrefix(texts[len(texts)-1].Text(), "{"), "}")
}

// InlineCall is the typed overlay of an INLINE_CALL node
// ("call_name[header](args)").
type InlineCall struct{ syntax *RedNode }

func (c *InlineCall) Kind() Kind           { return INLINE_CALL }
func (c *InlineCall) Syntax() *RedNode     { return c.syntax }
func (c *InlineCall) setSyntax(n *RedNode) { c.syntax = n }

// Name returns the "name" in "call_name[header](args)".
func (c *InlineCall) Name() string {
	texts := c.syntax.ChildTokens(TEXT)
	if len(texts) == 0 {
		return ""
	}
	return strings.TrimPrefix(texts[0].Text(), "call_")
}

// Args returns the call's argument list text, without its surrounding
// parens.
func (c *InlineCall) Args() string {
	texts := c.syntax.ChildTokens(TEXT)
	if len(texts) < 2 {
		return ""
	}
	return strings.TrimSuffix(strings.TrimPrefix(texts[len(texts)-1].Text(), "("), ")")
}
