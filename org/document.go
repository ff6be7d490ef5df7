// Package org parses Org mode text into a lossless concrete syntax
// tree, plus a typed AST overlay over that tree for readers who want
// typed accessors instead of walking raw nodes.
//
// Parsing is a pure function of (text, config) to a Tree; it performs
// no I/O and never fails outright — a construct the grammar doesn't
// recognize is absorbed as plain text rather than aborting the parse.
//
//	tree := org.Parse("* TODO write some docs\n")
//	headline, ok := org.FirstNode[org.Headline, *org.Headline](tree.Root)
package org

// Tree is the result of parsing one document: the red root of the
// concrete syntax tree, the config it was parsed with, and any
// configuration errors caught before parsing started.
type Tree struct {
	Root   *RedNode
	Config *ParseConfig
	Errors []*ParseError
}

// Parse parses text with the default ParseConfig ({TODO} active,
// {DONE} done).
func Parse(text string) *Tree {
	return NewParseConfig().Parse(text)
}

// Parse parses text under this configuration into a Tree. The zeroth
// section (any content before the first headline) and every top-level
// headline are parsed in turn; ParseHeadline recurses into each
// headline's own children, so this loop only ever advances past
// sibling headlines at depth 1.
func (cfg *ParseConfig) Parse(text string) *Tree {
	tree := &Tree{Config: cfg}
	for _, err := range ValidateConfig(cfg) {
		tree.Errors = append(tree.Errors, err)
	}

	in := NewInput(text, cfg)
	b := NewNodeBuilder(cfg.Debug)

	rest, zeroth := parseSectionUntilHeadline(in)
	b.PushOpt(zeroth)

	for {
		if _, ok := peekStars(rest); !ok {
			break
		}
		next, headline, ok := LosslessParser(ParseHeadline)(rest)
		if !ok {
			break
		}
		b.Push(headline)
		rest = next
	}
	if rest.Len() > 0 {
		b.Text(rest)
	}

	var green *GreenNode
	if b.Len() == 0 {
		// an empty document still needs a non-empty DOCUMENT node; fall
		// back to a single empty-text placeholder token.
		green = NewGreenNode(DOCUMENT, []GreenElement{NewGreenToken(TEXT, "")})
	} else {
		green = b.Finish(DOCUMENT).(*GreenNode)
	}
	tree.Root = NewRoot(green)
	return tree
}

// String reconstructs the tree's exact source text (Invariant 1, spec.md
// §8 — round-trip: Parse(s).String() == s for every s).
func (t *Tree) String() string {
	return t.Root.Text()
}
