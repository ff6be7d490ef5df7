package org

import "strings"

// PropertyDrawer is the typed overlay of a PROPERTY_DRAWER node
// (spec.md §4.6).
type PropertyDrawer struct {
	syntax *RedNode
}

func (d *PropertyDrawer) Kind() Kind          { return PROPERTY_DRAWER }
func (d *PropertyDrawer) Syntax() *RedNode    { return d.syntax }
func (d *PropertyDrawer) setSyntax(n *RedNode) { d.syntax = n }

// Properties returns every NODE_PROPERTY child.
func (d *PropertyDrawer) Properties() []*NodeProperty {
	return ChildrenOf[NodeProperty, *NodeProperty](d.syntax)
}

// Get returns the value of the named property (case-insensitive key
// match, matching org-mode's own property lookup), and whether it was
// found.
func (d *PropertyDrawer) Get(key string) (string, bool) {
	for _, p := range d.Properties() {
		if strings.EqualFold(p.Key(), key) {
			return p.Value(), true
		}
	}
	return "", false
}

// NodeProperty is the typed overlay of a NODE_PROPERTY node: ":KEY:
// value".
type NodeProperty struct {
	syntax *RedNode
}

func (p *NodeProperty) Kind() Kind          { return NODE_PROPERTY }
func (p *NodeProperty) Syntax() *RedNode    { return p.syntax }
func (p *NodeProperty) setSyntax(n *RedNode) { p.syntax = n }

func (p *NodeProperty) Key() string {
	tok := p.syntax.ChildToken(TEXT)
	if tok == nil {
		return ""
	}
	return strings.Trim(tok.Text(), ":")
}

func (p *NodeProperty) Value() string {
	texts := p.syntax.ChildTokens(TEXT)
	if len(texts) < 2 {
		return ""
	}
	return texts[len(texts)-1].Text()
}

// Drawer is the typed overlay of a generic (non-property) DRAWER node
// (spec.md §4.6), e.g. ":LOGBOOK:".
type Drawer struct {
	syntax *RedNode
}

func (d *Drawer) Kind() Kind          { return DRAWER }
func (d *Drawer) Syntax() *RedNode    { return d.syntax }
func (d *Drawer) setSyntax(n *RedNode) { d.syntax = n }

// Name returns the drawer's name, e.g. "LOGBOOK" for ":LOGBOOK:".
func (d *Drawer) Name() string {
	children := d.syntax.Children()
	if len(children) == 0 {
		return ""
	}
	header := strings.TrimSpace(children[0].Text())
	return strings.Trim(header, ":")
}
