package org

// RedNode is the lazy, cached projection of a GreenNode: it adds a
// parent back-reference and an absolute byte offset that the green tree
// (by design, to stay acyclic and structurally shared) does not carry.
//
// Red nodes are handles, not owners: they borrow the green tree they were
// built from and must not outlive it (spec.md §5). The parent link is a
// relation, not ownership — a child RedNode does not keep its parent
// alive beyond normal Go GC reachability from the caller's own root.
type RedNode struct {
	green    *GreenNode
	parent   *RedNode
	offset   int
	indexInP int

	childrenOnce bool
	children     []RedElement
}

// RedElement is either *RedNode or *RedToken.
type RedElement interface {
	Kind() Kind
	Offset() int
	Len() int
	Text() string
	Parent() *RedNode
}

// RedToken is the red projection of a GreenToken.
type RedToken struct {
	green    *GreenToken
	parent   *RedNode
	offset   int
	indexInP int
}

func (t *RedToken) Kind() Kind      { return t.green.kind }
func (t *RedToken) Offset() int     { return t.offset }
func (t *RedToken) Len() int        { return t.green.Len() }
func (t *RedToken) Text() string    { return t.green.text }
func (t *RedToken) Parent() *RedNode { return t.parent }
func (t *RedToken) Green() *GreenToken { return t.green }
func (t *RedToken) IndexInParent() int { return t.indexInP }

// NewRoot materializes the red root of a green tree. There is exactly
// one root per tree; every other RedNode is reached by walking down from
// it (Children/Parent), which is what keeps red-node construction lazy
// and cheap.
func NewRoot(green *GreenNode) *RedNode {
	return &RedNode{green: green, parent: nil, offset: 0, indexInP: -1}
}

func (n *RedNode) Kind() Kind        { return n.green.kind }
func (n *RedNode) Offset() int       { return n.offset }
func (n *RedNode) Len() int          { return n.green.Len() }
func (n *RedNode) Text() string      { return n.green.Text() }
func (n *RedNode) Parent() *RedNode  { return n.parent }
func (n *RedNode) Green() *GreenNode { return n.green }
func (n *RedNode) IndexInParent() int { return n.indexInP }

// ChildrenWithTokens returns every direct child (node or token),
// materializing and caching red wrappers on first access.
func (n *RedNode) ChildrenWithTokens() []RedElement {
	if n.childrenOnce {
		return n.children
	}
	greenChildren := n.green.children
	out := make([]RedElement, len(greenChildren))
	offset := n.offset
	for i, c := range greenChildren {
		switch v := c.(type) {
		case *GreenToken:
			out[i] = &RedToken{green: v, parent: n, offset: offset, indexInP: i}
		case *GreenNode:
			out[i] = &RedNode{green: v, parent: n, offset: offset, indexInP: i}
		}
		offset += c.Len()
	}
	n.children = out
	n.childrenOnce = true
	return out
}

// Children returns only the RedNode children (composite elements),
// skipping tokens.
func (n *RedNode) Children() []*RedNode {
	all := n.ChildrenWithTokens()
	out := make([]*RedNode, 0, len(all))
	for _, e := range all {
		if rn, ok := e.(*RedNode); ok {
			out = append(out, rn)
		}
	}
	return out
}

// FirstToken returns the first descendant token in document order, or
// nil if this subtree has no tokens (impossible for a well-formed tree
// per the well-nesting invariant, but nil-safe anyway).
func (n *RedNode) FirstToken() *RedToken {
	for _, c := range n.ChildrenWithTokens() {
		switch v := c.(type) {
		case *RedToken:
			return v
		case *RedNode:
			if t := v.FirstToken(); t != nil {
				return t
			}
		}
	}
	return nil
}

// LastToken returns the last descendant token in document order.
func (n *RedNode) LastToken() *RedToken {
	children := n.ChildrenWithTokens()
	for i := len(children) - 1; i >= 0; i-- {
		switch v := children[i].(type) {
		case *RedToken:
			return v
		case *RedNode:
			if t := v.LastToken(); t != nil {
				return t
			}
		}
	}
	return nil
}

// Descendants walks every node (not token) in this subtree, depth-first,
// pre-order, including n itself.
func (n *RedNode) Descendants(visit func(*RedNode) bool) {
	if !visit(n) {
		return
	}
	for _, c := range n.Children() {
		c.Descendants(visit)
	}
}

// DescendantTokens walks every token in this subtree, depth-first,
// left-to-right.
func (n *RedNode) DescendantTokens(visit func(*RedToken) bool) {
	for _, c := range n.ChildrenWithTokens() {
		switch v := c.(type) {
		case *RedToken:
			if !visit(v) {
				return
			}
		case *RedNode:
			v.DescendantTokens(visit)
		}
	}
}

// ChildToken returns the first direct-child token of the given kind.
func (n *RedNode) ChildToken(kind Kind) *RedToken {
	for _, c := range n.ChildrenWithTokens() {
		if t, ok := c.(*RedToken); ok && t.Kind() == kind {
			return t
		}
	}
	return nil
}

// ChildTokens returns every direct-child token of the given kind, in
// order.
func (n *RedNode) ChildTokens(kind Kind) []*RedToken {
	var out []*RedToken
	for _, c := range n.ChildrenWithTokens() {
		if t, ok := c.(*RedToken); ok && t.Kind() == kind {
			out = append(out, t)
		}
	}
	return out
}

// ChildNode returns the first direct-child node of the given kind.
func (n *RedNode) ChildNode(kind Kind) *RedNode {
	for _, c := range n.Children() {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// NextSibling returns the red node's next sibling node, or nil.
func (n *RedNode) NextSibling() *RedNode {
	if n.parent == nil {
		return nil
	}
	siblings := n.parent.ChildrenWithTokens()
	for i := n.indexInP + 1; i < len(siblings); i++ {
		if rn, ok := siblings[i].(*RedNode); ok {
			return rn
		}
	}
	return nil
}
