package org

import (
	"log"
	"os"
)

// TodoKeywords is the two disjoint ordered keyword sequences a headline
// keyword is matched against (spec.md §3.4). A keyword token is
// recognized only if it appears, by exact byte equality, in Active or
// Done.
type TodoKeywords struct {
	Active []string
	Done   []string
}

func (k TodoKeywords) contains(word string) bool {
	for _, w := range k.Active {
		if w == word {
			return true
		}
	}
	for _, w := range k.Done {
		if w == word {
			return true
		}
	}
	return false
}

// IsDone reports whether word is one of the configured "done" keywords.
func (k TodoKeywords) IsDone(word string) bool {
	for _, w := range k.Done {
		if w == word {
			return true
		}
	}
	return false
}

// ParseConfig carries every parse-time option: the recognized TODO
// keyword sets (spec.md §3.4/§6.3) plus a Debug switch that turns on the
// lossless_parser-equivalent invariant check of each top-level headline
// and NodeBuilder's whitespace/newline checks (spec.md §4.2, §7).
//
// A ParseConfig is read by every parser function but never mutated once
// parsing starts; the same config can be shared across concurrent parses
// (spec.md §5).
type ParseConfig struct {
	TodoKeywords TodoKeywords
	Debug        bool
	Log          *log.Logger
}

// NewParseConfig returns a ParseConfig with the conventional default
// split: {TODO} as the single active keyword, {DONE} as the single done
// keyword.
func NewParseConfig() *ParseConfig {
	return &ParseConfig{
		TodoKeywords: TodoKeywords{
			Active: []string{"TODO"},
			Done:   []string{"DONE"},
		},
		Log: log.New(os.Stderr, "go-orgize: ", 0),
	}
}
