package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyPole is returned when a disk is removed from a pole that has none.
var ErrEmptyPole = errors.New("cannot remove from empty pole")

// ErrInvalidPlacement is matched by every *PlacementError.
var ErrInvalidPlacement = errors.New("invalid placement")

// PlacementError is returned when a disk is pushed onto a smaller one.
type PlacementError struct {
	// Large is the disk that was being placed.
	Large Disk
	// Small is the top disk of the pole at the time.
	Small Disk
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("cannot place disk %d on disk %d", e.Large, e.Small)
}

// Is reports whether target is ErrInvalidPlacement.
func (e *PlacementError) Is(target error) bool {
	return target == ErrInvalidPlacement
}
