package game

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove is returned by Apply when a move violates the rules.
	// State is left untouched whenever it is returned.
	ErrIllegalMove = errors.New("illegal move")

	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidBoard    = errors.New("invalid board")
)

// IllegalMoveError carries the rejected move and why it was rejected.
// It matches ErrIllegalMove with errors.Is.
type IllegalMoveError struct {
	Move   Move
	Player Color
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s by %s: %s", e.Move, e.Player, e.Reason)
}

func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}
