package org

// Table is the typed overlay of a TABLE node: a run of consecutive
// "|...|" rows (spec.md §3.1). Grounded on org/parser_table.go, which
// has no teacher precedent in the retrieval pack and follows the
// list-parsing run-of-same-prefix-lines idiom instead.
type Table struct {
	syntax *RedNode
}

func (t *Table) Kind() Kind           { return TABLE }
func (t *Table) Syntax() *RedNode     { return t.syntax }
func (t *Table) setSyntax(n *RedNode) { t.syntax = n }

// Rows returns every TABLE_ROW child, in order.
func (t *Table) Rows() []*TableRow {
	return ChildrenOf[TableRow, *TableRow](t.syntax)
}

// TableRow is the typed overlay of a TABLE_ROW node: either a rule
// separator ("|---+---|") or a run of cells.
type TableRow struct {
	syntax *RedNode
}

func (r *TableRow) Kind() Kind           { return TABLE_ROW }
func (r *TableRow) Syntax() *RedNode     { return r.syntax }
func (r *TableRow) setSyntax(n *RedNode) { r.syntax = n }

// IsRule reports whether this row is a "|---+---|" separator: such a
// row has no TABLE_CELL children.
func (r *TableRow) IsRule() bool {
	return isRuleRow(r.syntax.Text()) && len(r.Cells()) == 0
}

// Cells returns every TABLE_CELL child, in order.
func (r *TableRow) Cells() []*TableCell {
	return ChildrenOf[TableCell, *TableCell](r.syntax)
}

// TableCell is the typed overlay of a TABLE_CELL node.
type TableCell struct {
	syntax *RedNode
}

func (c *TableCell) Kind() Kind           { return TABLE_CELL }
func (c *TableCell) Syntax() *RedNode     { return c.syntax }
func (c *TableCell) setSyntax(n *RedNode) { c.syntax = n }

// Text returns the cell's trimmed content.
func (c *TableCell) Text() string {
	return trimCellSpace(c.syntax.Text())
}

func trimCellSpace(s string) string {
	start, end := 0, len(s)
	for start < end && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[start:end]
}
