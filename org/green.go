package org

import "strings"

// GreenElement is either a *GreenNode or a *GreenToken. Green values are
// persistent and structurally shared: once built they are never mutated,
// so the same subtree can be referenced from many parents (or many
// document versions) without copying.
type GreenElement interface {
	Kind() Kind
	Len() int
	Text() string
	isGreen()
}

// GreenToken is a leaf. Its Text is a literal, verbatim slice of the
// source.
type GreenToken struct {
	kind Kind
	text string
}

func NewGreenToken(kind Kind, text string) *GreenToken {
	if kind.IsNode() {
		panic("org: " + kind.String() + " is not a token kind")
	}
	return &GreenToken{kind: kind, text: text}
}

func (t *GreenToken) Kind() Kind    { return t.kind }
func (t *GreenToken) Len() int      { return len(t.text) }
func (t *GreenToken) Text() string  { return t.text }
func (t *GreenToken) isGreen()      {}

// GreenNode is a composite. Its length is the sum of its children's
// lengths (Invariant: offset monotonicity, spec.md §3.2).
type GreenNode struct {
	kind     Kind
	children []GreenElement
	length   int
}

func NewGreenNode(kind Kind, children []GreenElement) *GreenNode {
	if kind.IsToken() {
		panic("org: " + kind.String() + " is not a node kind")
	}
	if len(children) == 0 {
		panic("org: " + kind.String() + " node built with zero children")
	}
	length := 0
	for _, c := range children {
		length += c.Len()
	}
	return &GreenNode{kind: kind, children: children, length: length}
}

func (n *GreenNode) Kind() Kind             { return n.kind }
func (n *GreenNode) Len() int               { return n.length }
func (n *GreenNode) Children() []GreenElement { return n.children }
func (n *GreenNode) isGreen()               {}

// Text reconstructs this subtree's exact source text by concatenating
// every descendant token's text in left-to-right order (Invariant 1,
// spec.md §8 — round-trip).
func (n *GreenNode) Text() string {
	var b strings.Builder
	b.Grow(n.length)
	n.writeText(&b)
	return b.String()
}

func (n *GreenNode) writeText(b *strings.Builder) {
	for _, c := range n.children {
		switch v := c.(type) {
		case *GreenToken:
			b.WriteString(v.text)
		case *GreenNode:
			v.writeText(b)
		}
	}
}
