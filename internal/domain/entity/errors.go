package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrTreeInvariant marks a malformed tree. It indicates a defect and is
	// surfaced to the caller rather than recovered from.
	ErrTreeInvariant = errors.New("tree invariant violation")
	// ErrUnsupportedOperation is returned when a container variant lacks the
	// requested capability, such as the root's position.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrContainerNotFound is returned for identifiers unknown to the tree.
	ErrContainerNotFound = errors.New("container not found")
)

// InvariantError describes which operation found the tree malformed.
type InvariantError struct {
	Op     string
	ID     ContainerID
	Reason string
}

func (e *InvariantError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.ID, e.Reason)
}

func (e *InvariantError) Unwrap() error {
	return ErrTreeInvariant
}

func invariantErr(op string, id ContainerID, reason string) error {
	return &InvariantError{Op: op, ID: id, Reason: reason}
}

func notFoundErr(op string, id ContainerID) error {
	return fmt.Errorf("%s: %w: %s", op, ErrContainerNotFound, id)
}
