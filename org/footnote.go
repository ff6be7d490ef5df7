package org

import "strings"

// FootnoteDefinition is the typed overlay of a FOOTNOTE_DEFINITION
// node: "[fn:label] body..." (spec.md §4.9). Grounded on teacher's
// org/footnote.go (footnoteDefinitionRegexp's `[\w-]+` label shape),
// generalized from a regex-matched struct to a projection over the
// green tree built by ParseFootnoteDefinition
// (org/parser_footnote.go).
type FootnoteDefinition struct {
	syntax *RedNode
}

func (d *FootnoteDefinition) Kind() Kind          { return FOOTNOTE_DEFINITION }
func (d *FootnoteDefinition) Syntax() *RedNode    { return d.syntax }
func (d *FootnoteDefinition) setSyntax(n *RedNode) { d.syntax = n }

// Name returns the footnote label ("1" in "[fn:1] body").
func (d *FootnoteDefinition) Name() string {
	marker := d.syntax.FirstToken()
	if marker == nil {
		return ""
	}
	s := marker.Text()
	s = strings.TrimPrefix(s, "[fn:")
	s = strings.TrimSuffix(s, "]")
	return s
}

// Body returns the definition's body text after the label, with its
// leading spaces and tabs removed.
func (d *FootnoteDefinition) Body() string {
	text := d.syntax.Text()
	if idx := strings.IndexByte(text, ']'); idx != -1 {
		return strings.TrimLeft(text[idx+1:], " \t")
	}
	return ""
}
