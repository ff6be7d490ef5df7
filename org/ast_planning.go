package org

// Planning is the typed overlay of a PLANNING node: the CLOSED/
// DEADLINE/SCHEDULED line directly under a headline (spec.md §4.6).
type Planning struct {
	syntax *RedNode
}

func (p *Planning) Kind() Kind          { return PLANNING }
func (p *Planning) Syntax() *RedNode    { return p.syntax }
func (p *Planning) setSyntax(n *RedNode) { p.syntax = n }

func (p *Planning) Closed() (*Timestamp, bool) {
	return timestampFromNode(p.syntax.ChildNode(PLANNING_CLOSED).firstTimestampChild())
}

func (p *Planning) Scheduled() (*Timestamp, bool) {
	return timestampFromNode(p.syntax.ChildNode(PLANNING_SCHEDULED).firstTimestampChild())
}

func (p *Planning) Deadline() (*Timestamp, bool) {
	return timestampFromNode(p.syntax.ChildNode(PLANNING_DEADLINE).firstTimestampChild())
}

// firstTimestampChild returns n's first direct child that is a
// timestamp node, tolerating a nil receiver (no PLANNING_CLOSED/
// SCHEDULED/DEADLINE sub-node present).
func (n *RedNode) firstTimestampChild() *RedNode {
	if n == nil {
		return nil
	}
	for _, c := range n.Children() {
		switch c.Kind() {
		case TIMESTAMP_ACTIVE, TIMESTAMP_INACTIVE, TIMESTAMP_DIARY:
			return c
		}
	}
	return nil
}
