package org

// Headlines returns every top-level headline in the tree, in document
// order. Use Headline.Children to walk into nested headlines — the
// teacher's flat Outline/TOC index (org/document.go's addHeadline) has
// no equivalent here: walking the tree directly serves the same need
// without a second data structure to keep in sync.
func (t *Tree) Headlines() []*Headline {
	return ChildrenOf[Headline, *Headline](t.Root)
}

// ZerothSection returns the content before the first headline, if any.
func (t *Tree) ZerothSection() (*RedNode, bool) {
	n := t.Root.ChildNode(SECTION)
	return n, n != nil
}

// AllHeadlines returns every headline in the tree, depth-first,
// including nested ones.
func (t *Tree) AllHeadlines() []*Headline {
	var out []*Headline
	t.Root.Descendants(func(n *RedNode) bool {
		if h, ok := cast[Headline, *Headline](n); ok {
			out = append(out, h)
		}
		return true
	})
	return out
}
