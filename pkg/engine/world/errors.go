package world

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidID         = errors.New("invalid cell id")
	ErrNotAdjacent       = errors.New("cells are not adjacent")
	ErrAlreadyOpen       = errors.New("passage already open")
	ErrAlreadyBlocked    = errors.New("passage already blocked")
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
)

// IntegrityError reports a request that would break the grid graph.
// These indicate a programming defect rather than a game condition.
type IntegrityError struct {
	CellID int
	Target int
	Err    error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("cell %d -> %d: %v", e.CellID, e.Target, e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}
