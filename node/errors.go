package node

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrEmptyName           = fmt.Errorf("empty name: %w", ErrInvalidArgument)
	ErrDescendantCycle     = errors.New("entity cannot be added to its own subtree")
	ErrTextChildConflict   = errors.New("entity with text cannot have children")
	ErrDuplicateEquivalent = errors.New("equivalent entity already exists")
	ErrDuplicateAttribute  = errors.New("duplicate attribute")
	ErrNotFound            = errors.New("not found")
	ErrNoOpRename          = errors.New("old and new names are identical")
)

// OpError records the operation and the name involved in a failed tree
// operation. It unwraps to one of the sentinel errors above.
type OpError struct {
	Op   string
	Name string
	Err  error
}

func (e *OpError) Error() string {
	if e.Name == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s %q: %s", e.Op, e.Name, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opError(op, name string, err error) error {
	return &OpError{Op: op, Name: name, Err: err}
}
