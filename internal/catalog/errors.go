package catalog

import "fmt"

// IndexIntegrityError reports a record table that cannot be indexed consistently.
// It is fatal: an index is never published after one.
type IndexIntegrityError struct {
	Category string
	Key      string
	Reason   string
	Err      error
}

func (e *IndexIntegrityError) Error() string {
	msg := fmt.Sprintf("%s index: %s", e.Category, e.Reason)
	if e.Key != "" {
		msg = fmt.Sprintf("%s index: %q: %s", e.Category, e.Key, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *IndexIntegrityError) Unwrap() error { return e.Err }
