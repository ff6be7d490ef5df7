package org

import (
	"fmt"
	"io"
)

// ErrorType narrows go-org's original error taxonomy down to the two
// kinds of error this parser can actually raise: the parser itself
// never fails (an unrecognized construct falls back to a TEXT/ERROR
// node rather than aborting, spec.md §4.2), so every ParseError here is
// a configuration problem caught before parsing starts.
// ErrorTypeLosslessViolation names the debug-mode invariant violation,
// but LosslessParser reports one by panicking, so no ParseError of that
// type is produced.
type ErrorType string

const (
	ErrorTypeInvalidConfig      ErrorType = "invalid_config"
	ErrorTypeLosslessViolation  ErrorType = "lossless_violation"
)

// ParseError is a structured error with a byte-offset location into the
// source text that was parsed.
type ParseError struct {
	Type    ErrorType
	Message string

	Offset int
	Length int

	Cause error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("offset %d: %s", e.Offset, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Cause }

func (e *ParseError) String() string {
	s := fmt.Sprintf("%s (type: %s)", e.Error(), e.Type)
	if e.Cause != nil {
		s += fmt.Sprintf("\n  caused by: %v", e.Cause)
	}
	return s
}

func NewParseError(typ ErrorType, message string, offset, length int, cause error) *ParseError {
	return &ParseError{Type: typ, Message: message, Offset: offset, Length: length, Cause: cause}
}

// AddError records a parse error on the tree. Reserved for
// configuration validation (ValidateConfig); the combinator kernel
// itself never calls it during a normal (non-debug) parse.
func (t *Tree) AddError(typ ErrorType, message string, offset, length int, cause error) {
	t.Errors = append(t.Errors, NewParseError(typ, message, offset, length, cause))
}

func (t *Tree) HasErrors() bool { return len(t.Errors) > 0 }

func (t *Tree) WriteErrors(w io.Writer) error {
	for _, err := range t.Errors {
		if _, writeErr := fmt.Fprintln(w, err.Error()); writeErr != nil {
			return writeErr
		}
	}
	return nil
}

func (t *Tree) ErrorCount() int { return len(t.Errors) }

func (t *Tree) GetErrorsByType(typ ErrorType) []*ParseError {
	var result []*ParseError
	for _, err := range t.Errors {
		if err.Type == typ {
			result = append(result, err)
		}
	}
	return result
}

// ValidateConfig checks a ParseConfig for the kind of mistake a caller
// can make before parsing even starts: a keyword listed as both active
// and done. It returns the errors rather than a bool so every problem
// can be reported at once, matching the teacher's GetErrorByType idiom
// for surfacing many errors from one pass.
func ValidateConfig(cfg *ParseConfig) []*ParseError {
	var errs []*ParseError
	seen := make(map[string]bool, len(cfg.TodoKeywords.Active))
	for _, w := range cfg.TodoKeywords.Active {
		seen[w] = true
	}
	for _, w := range cfg.TodoKeywords.Done {
		if seen[w] {
			errs = append(errs, NewParseError(ErrorTypeInvalidConfig,
				"keyword \""+w+"\" listed in both Active and Done", 0, 0, nil))
		}
	}
	return errs
}
