package pinniped

import (
	"errors"
	"fmt"
)

var (
	// ErrBlockOutOfRange reports a block index outside the document.
	ErrBlockOutOfRange = errors.New("block index out of range")
	// ErrNotATable reports a table operation on a non-table block.
	ErrNotATable = errors.New("block is not a table")
	// ErrCellOutOfRange reports a cell position outside the table.
	ErrCellOutOfRange = errors.New("cell position out of range")
)

// ParseError is the only error Parse can return. Malformed Markdown never
// produces one; every unparseable construct degrades to literal text. The
// single genuine failure path is input that is not processable text at all
// (invalid UTF-8 or binary data).
type ParseError struct {
	msg string
	err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.msg)
}

func (e *ParseError) Unwrap() error {
	return e.err
}
