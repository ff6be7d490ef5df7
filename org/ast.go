package org

// AstNode is implemented by every typed AST wrapper (Headline,
// Timestamp, List, ...): each one is a thin, read-only projection of a
// *RedNode. A wrapper used with cast has one specific Kind, and its
// Kind must be safe to call on a nil receiver (it returns a fixed
// constant, never touching the wrapped node) so cast can check a
// candidate's kind before allocating. Timestamp and Emphasis cover
// several kinds, read Kind from the wrapped node, and are built by
// FirstTimestamp and FirstEmphasis instead of cast.
//
// Grounded on original_source/src/ast/mod.rs, genericized: the Rust
// original relies on an `AstNode: CastNode` trait with associated
// `can_cast`/`cast` functions; Go expresses the same discipline with
// the T/PT type-parameter pair below instead of a trait object.
type AstNode interface {
	Kind() Kind
	Syntax() *RedNode
}

type astNode interface {
	AstNode
	setSyntax(*RedNode)
}

// cast constructs a *T wrapper over n, or returns (nil, false) if n is
// nil or its Kind doesn't match T's. T is the wrapper's underlying
// struct (e.g. Headline); PT is always *T, carried as a separate
// type parameter because only *T has the setSyntax method generics need
// to call.
func cast[T any, PT interface {
	*T
	astNode
}](n *RedNode) (PT, bool) {
	var nilPt PT
	if n == nil || n.Kind() != nilPt.Kind() {
		return nil, false
	}
	pt := PT(new(T))
	pt.setSyntax(n)
	return pt, true
}

// FirstNode returns the first descendant of n (including n itself,
// depth-first pre-order) that casts to *T.
func FirstNode[T any, PT interface {
	*T
	astNode
}](n *RedNode) (PT, bool) {
	var found PT
	n.Descendants(func(d *RedNode) bool {
		if found != nil {
			return false
		}
		if v, ok := cast[T, PT](d); ok {
			found = v
			return false
		}
		return true
	})
	return found, found != nil
}

// LastChild returns the last direct child of n that casts to *T.
func LastChild[T any, PT interface {
	*T
	astNode
}](n *RedNode) (PT, bool) {
	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if v, ok := cast[T, PT](children[i]); ok {
			return v, true
		}
	}
	var zero PT
	return zero, false
}

// ChildrenOf returns every direct child of n that casts to *T, in
// document order.
func ChildrenOf[T any, PT interface {
	*T
	astNode
}](n *RedNode) []PT {
	var out []PT
	for _, c := range n.Children() {
		if v, ok := cast[T, PT](c); ok {
			out = append(out, v)
		}
	}
	return out
}

// blankLines counts the BLANK_LINE tokens directly preceding n among
// its parent's children. Grounded on
// original_source/src/ast/mod.rs::blank_lines.
func blankLines(n *RedNode) int {
	if n == nil || n.Parent() == nil {
		return 0
	}
	siblings := n.Parent().ChildrenWithTokens()
	count := 0
	for i := n.IndexInParent() - 1; i >= 0; i-- {
		if siblings[i].Kind() == BLANK_LINE {
			count++
			continue
		}
		break
	}
	return count
}

// lastChildToken returns the last direct-child token of n, or nil.
// Grounded on original_source/src/ast/mod.rs::last_token.
func lastChildToken(n *RedNode) *RedToken {
	children := n.ChildrenWithTokens()
	for i := len(children) - 1; i >= 0; i-- {
		if t, ok := children[i].(*RedToken); ok {
			return t
		}
	}
	return nil
}
