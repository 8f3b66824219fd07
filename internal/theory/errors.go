package theory

import (
	"errors"
	"fmt"
	"strconv"
)

// ParseError reports a malformed token. Outside lists Item is -1; for list failures
// Item is the 0-based position of the failing element and Err holds the element error.
type ParseError struct {
	Grammar string // notation being parsed, e.g. "note" or "degree list"
	Input   string // complete input text
	Token   string // offending substring
	Offset  int    // byte offset of Token in Input
	Item    int
	Reason  string
	Err     error
}

func (e *ParseError) Error() string {
	where := "at offset " + strconv.Itoa(e.Offset)
	if e.Item >= 0 {
		where = fmt.Sprintf("item %d %s", e.Item, where)
	}
	msg := fmt.Sprintf("parse %s %q: %s: %s %q", e.Grammar, e.Input, e.Reason, where, e.Token)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnknownNameError reports a name missing from a reverse index.
type UnknownNameError struct {
	Category string
	Name     string
	Input    string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown %s name %q in %q", e.Category, e.Name, e.Input)
}

func parseErr(grammar, input, token string, offset int, reason string) *ParseError {
	return &ParseError{
		Grammar: grammar,
		Input:   input,
		Token:   token,
		Offset:  offset,
		Item:    -1,
		Reason:  reason,
	}
}

// rootErr reports a bad root note against the whole chord or scale text. The root
// always starts the text, so the note error's offset carries over unchanged.
func rootErr(grammar, input string, err error) error {
	var perr *ParseError
	if !errors.As(err, &perr) {
		return err
	}
	return &ParseError{
		Grammar: grammar,
		Input:   input,
		Token:   perr.Token,
		Offset:  perr.Offset,
		Item:    -1,
		Reason:  "invalid root note",
		Err:     err,
	}
}
