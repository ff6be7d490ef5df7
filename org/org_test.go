package org

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertRoundTrip checks Invariant 1 (spec.md §8): reconstructing the
// tree's text reproduces the exact source bytes. On mismatch it prints
// a unified diff, in the teacher's own style of diagnostic failure
// output.
func assertRoundTrip(t *testing.T, src string) *Tree {
	t.Helper()
	tree := Parse(src)
	got := tree.String()
	if got != src {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(src),
			B:        difflib.SplitLines(got),
			FromFile: "want",
			ToFile:   "got",
			Context:  2,
		})
		t.Fatalf("round-trip mismatch for %q:\n%s", src, diff)
	}
	return tree
}

// assertByteCoverage checks Invariant 2: the sum of every descendant
// token's length equals len(src).
func assertByteCoverage(t *testing.T, tree *Tree, src string) {
	t.Helper()
	sum := 0
	tree.Root.DescendantTokens(func(tok *RedToken) bool {
		sum += tok.Len()
		return true
	})
	assert.Equal(t, len(src), sum, "token length sum should cover every source byte")
}

func TestRoundTripAndByteCoverage(t *testing.T) {
	cases := []string{
		"",
		"* foo",
		"* TODO foo\nbar\n** baz\n",
		"** [#A] foo\n* baz",
		"* a \t:_:",
		"[2000-01-01 +1w]",
		"<2003-09-16 Tue 09:39>--<2003-09-16 Tue 10:39>",
		"* COMMENT hello",
		"* hello :ARCHIVE:",
		"* hello :ARCHIVED:",
		"plain paragraph\ntext\n\n* headline\n- a list\n- item two\n",
		"| a | b |\n|---+---|\n| 1 | 2 |\n",
		":PROPERTIES:\n:CUSTOM_ID: foo\n:END:\n",
		"[fn:1] a footnote definition\n",
	}
	for _, src := range cases {
		tree := assertRoundTrip(t, src)
		assertByteCoverage(t, tree, src)
	}
}

func TestKindDiscipline(t *testing.T) {
	tree := Parse("* foo\nbar\n")
	headlines := tree.Headlines()
	require.Len(t, headlines, 1)

	h := headlines[0]
	_, ok := cast[Headline, *Headline](h.Syntax())
	assert.True(t, ok, "a HEADLINE node must cast to *Headline")

	section, hasSection := h.Section()
	require.True(t, hasSection)
	_, ok = cast[Headline, *Headline](section)
	assert.False(t, ok, "a SECTION node must not cast to *Headline")
}

func TestHeadlineNesting(t *testing.T) {
	tree := Parse("* TODO foo\nbar\n** baz\n")
	headlines := tree.Headlines()
	require.Len(t, headlines, 1)

	outer := headlines[0]
	assert.Equal(t, 1, outer.Level())
	kw, ok := outer.Keyword()
	require.True(t, ok)
	assert.Equal(t, "TODO", kw)

	section, ok := outer.Section()
	require.True(t, ok)
	assert.Equal(t, "bar\n", section.Text())

	children := outer.Children()
	require.Len(t, children, 1)
	child := children[0]
	assert.Equal(t, 2, child.Level())
	assert.Greater(t, child.Level(), outer.Level())

	title, ok := child.Title()
	require.True(t, ok)
	assert.Equal(t, "baz", title.Text())
}

func TestHeadlineSiblingsUnderDocument(t *testing.T) {
	tree := Parse("** [#A] foo\n* baz")
	headlines := tree.Headlines()
	require.Len(t, headlines, 2)

	first := headlines[0]
	assert.Equal(t, 2, first.Level())
	prio, ok := first.Priority()
	require.True(t, ok)
	assert.Equal(t, "A", prio.TextString())
	title, ok := first.Title()
	require.True(t, ok)
	assert.Equal(t, "foo", title.Text())

	second := headlines[1]
	assert.Equal(t, 1, second.Level())
	title2, ok := second.Title()
	require.True(t, ok)
	assert.Equal(t, "baz", title2.Text())
}

func TestTagTokenAlphabet(t *testing.T) {
	tree := Parse("* a \t:_:")
	headlines := tree.Headlines()
	require.Len(t, headlines, 1)

	tags, ok := headlines[0].Tags()
	require.True(t, ok)
	names := tags.Iter()
	require.Equal(t, []string{"_"}, names)

	tags.Syntax().DescendantTokens(func(tok *RedToken) bool {
		if tok.Kind() != TEXT {
			return true
		}
		for _, b := range []byte(tok.Text()) {
			ok := b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9' ||
				b == '_' || b == '@' || b == '#' || b == '%'
			assert.True(t, ok, "tag byte %q outside allowed alphabet", b)
		}
		return true
	})
}

func TestZeroTagsEdgeCase(t *testing.T) {
	// A bare "::" with nothing between still builds a tags node, just an
	// empty one: two COLON tokens and zero tag names.
	tree := assertRoundTrip(t, "* title ::\n")
	headlines := tree.Headlines()
	require.Len(t, headlines, 1)
	tags, ok := headlines[0].Tags()
	require.True(t, ok)
	assert.Empty(t, tags.Iter())
}

func TestTimestampInactiveRepeater(t *testing.T) {
	tree := assertRoundTrip(t, "[2000-01-01 +1w]")
	ts, ok := FirstTimestamp(tree.Root)
	require.True(t, ok)
	assert.True(t, ts.IsInactive())
	assert.False(t, ts.IsActive())
	assert.False(t, ts.IsRange())

	rt, ok := ts.RepeaterType()
	require.True(t, ok)
	assert.Equal(t, RepeaterCumulative, rt)

	value, ok := ts.RepeaterValue()
	require.True(t, ok)
	assert.Equal(t, 1, value)

	unit, ok := ts.RepeaterUnit()
	require.True(t, ok)
	assert.Equal(t, TimeUnitWeek, unit)

	_, hasWarning := ts.WarningType()
	assert.False(t, hasWarning)
}

func TestTimestampRange(t *testing.T) {
	src := "<2003-09-16 Tue 09:39>--<2003-09-16 Tue 10:39>"
	tree := assertRoundTrip(t, src)
	ts, ok := FirstTimestamp(tree.Root)
	require.True(t, ok)
	assert.True(t, ts.IsActive())
	assert.True(t, ts.IsRange())

	start, ok := ts.StartToChrono()
	require.True(t, ok)
	assert.Equal(t, 2003, start.Year())
	assert.Equal(t, 9, int(start.Month()))
	assert.Equal(t, 16, start.Day())
	assert.Equal(t, 9, start.Hour())
	assert.Equal(t, 39, start.Minute())

	end, ok := ts.EndToChrono()
	require.True(t, ok)
	assert.Equal(t, 10, end.Hour())
	assert.Equal(t, 39, end.Minute())
}

// TestTimestampIdempotence is Invariant 6: parsing a syntactically valid
// timestamp string alone yields exactly one Timestamp node whose text
// equals the input.
func TestTimestampIdempotence(t *testing.T) {
	cases := []string{
		"[2000-01-01 +1w]",
		"<2003-09-16 Tue 09:39>",
		"<2003-09-16 Tue 09:39>--<2003-09-16 Tue 10:39>",
		"<%%(diary-float 1 3 2)>",
	}
	for _, src := range cases {
		in := NewInput(src, NewParseConfig())
		rest, elem, ok := ParseTimestamp(in)
		require.True(t, ok, "expected %q to parse as a timestamp", src)
		assert.True(t, rest.IsEmpty(), "expected %q to be fully consumed", src)
		assert.Equal(t, src, elem.Text())

		root := NewRoot(NewGreenNode(DOCUMENT, []GreenElement{elem}))
		count := 0
		root.Descendants(func(n *RedNode) bool {
			if _, ok := timestampFromNode(n); ok {
				count++
			}
			return true
		})
		assert.Equal(t, 1, count, "expected exactly one Timestamp node for %q", src)
	}
}

func TestHeadlineCommentedAndArchived(t *testing.T) {
	tree := Parse("* COMMENT hello")
	headlines := tree.Headlines()
	require.Len(t, headlines, 1)
	assert.True(t, headlines[0].IsCommented())

	archiveTree := Parse("* hello :ARCHIVE:")
	archived := archiveTree.Headlines()
	require.Len(t, archived, 1)
	assert.True(t, archived[0].IsArchived())

	notArchiveTree := Parse("* hello :ARCHIVED:")
	notArchived := notArchiveTree.Headlines()
	require.Len(t, notArchived, 1)
	assert.False(t, notArchived[0].IsArchived())
}

func TestPlanningAndPropertyDrawer(t *testing.T) {
	src := "* task\nSCHEDULED: <2020-01-01 Wed>\n:PROPERTIES:\n:CUSTOM_ID: abc\n:END:\nbody\n"
	tree := assertRoundTrip(t, src)
	headlines := tree.Headlines()
	require.Len(t, headlines, 1)

	h := headlines[0]
	sched, ok := h.Scheduled()
	require.True(t, ok)
	assert.True(t, sched.IsActive())

	drawer, ok := h.PropertyDrawer()
	require.True(t, ok)
	val, ok := drawer.Get("custom_id")
	require.True(t, ok)
	assert.Equal(t, "abc", val)
}

func TestListParsing(t *testing.T) {
	src := "- one\n- [X] two\n- term :: description\n"
	tree := assertRoundTrip(t, src)

	list, ok := FirstNode[List, *List](tree.Root)
	require.True(t, ok)
	items := list.Items()
	require.Len(t, items, 3)

	status, ok := items[1].Status()
	require.True(t, ok)
	assert.Equal(t, byte('X'), status)

	assert.Equal(t, "term", items[2].Term())
	assert.Equal(t, "description", items[2].Details())
}

func TestTableParsing(t *testing.T) {
	src := "| a | b |\n|---+---|\n| 1 | 2 |\n"
	tree := assertRoundTrip(t, src)

	table, ok := FirstNode[Table, *Table](tree.Root)
	require.True(t, ok)
	rows := table.Rows()
	require.Len(t, rows, 3)
	assert.False(t, rows[0].IsRule())
	assert.True(t, rows[1].IsRule())
	assert.False(t, rows[2].IsRule())

	cells := rows[0].Cells()
	require.Len(t, cells, 2)
	assert.Equal(t, "a", cells[0].Text())
	assert.Equal(t, "b", cells[1].Text())
}

func TestFootnoteDefinitionAndReference(t *testing.T) {
	src := "[fn:1] some note\n\nbody [fn:1] reference\n"
	tree := assertRoundTrip(t, src)

	def, ok := FirstNode[FootnoteDefinition, *FootnoteDefinition](tree.Root)
	require.True(t, ok)
	assert.Equal(t, "1", def.Name())
	assert.True(t, strings.HasPrefix(def.Body(), "some note"))

	ref, ok := FirstNode[FootnoteReference, *FootnoteReference](tree.Root)
	require.True(t, ok)
	assert.Equal(t, "1", ref.Label())
}

// firstDescendantOfKind scans n's subtree depth-first for the first node
// of kind k. Unlike FirstNode, it needs no typed AST overlay, which
// CLOCK and BLOCK don't have one of yet.
func firstDescendantOfKind(n *RedNode, k Kind) (*RedNode, bool) {
	var found *RedNode
	n.Descendants(func(d *RedNode) bool {
		if found != nil {
			return false
		}
		if d.Kind() == k {
			found = d
			return false
		}
		return true
	})
	return found, found != nil
}

func TestClockLineAndGreaterBlock(t *testing.T) {
	src := "* task\nCLOCK: [2000-01-01 Sat 10:00]--[2000-01-01 Sat 11:00] => 1:00\n\n#+BEGIN_SRC python\nprint(1)\n#+END_SRC\n"
	tree := assertRoundTrip(t, src)
	assertByteCoverage(t, tree, src)

	clock, ok := firstDescendantOfKind(tree.Root, CLOCK)
	require.True(t, ok)
	assert.Contains(t, clock.Text(), "CLOCK:")

	block, ok := firstDescendantOfKind(tree.Root, BLOCK)
	require.True(t, ok)
	assert.Contains(t, block.Text(), "print(1)")
}

func TestPlainLinkObject(t *testing.T) {
	src := "see https://example.org/x here\n"
	tree := assertRoundTrip(t, src)

	link, ok := FirstNode[Link, *Link](tree.Root)
	require.True(t, ok)
	assert.Equal(t, "https://example.org/x", link.Target())
	_, hasDesc := link.Description()
	assert.False(t, hasDesc)
}

func TestEmphasisPreAndPostCharRule(t *testing.T) {
	tree := assertRoundTrip(t, "foo *bar* baz\n")
	em, ok := FirstEmphasis(tree.Root)
	require.True(t, ok)
	assert.Equal(t, BOLD, em.Kind())
	assert.Equal(t, "bar", em.Content())

	// mid-word: the byte before "*" is "o", not whitespace or opening
	// punctuation, so it may not open emphasis at all.
	tree2 := assertRoundTrip(t, "foo*bar*baz\n")
	_, ok = FirstEmphasis(tree2.Root)
	assert.False(t, ok)
}

func TestConfigValidation(t *testing.T) {
	cfg := &ParseConfig{
		TodoKeywords: TodoKeywords{
			Active: []string{"TODO"},
			Done:   []string{"TODO"},
		},
	}
	errs := ValidateConfig(cfg)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrorTypeInvalidConfig, errs[0].Type)
}
