package shopbook

import "fmt"

// ValidationError reports a malformed or missing field on a create
// operation. The mutation is rejected and the book is left untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceError reports a failed durable write. The in-memory book has
// already been mutated and remains correct; the caller may retry the write
// with the next mutation.
type PersistenceError struct {
	Op  string // the mutation that triggered the write
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("could not persist book after %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
