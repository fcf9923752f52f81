/*
Package domain contains the core model of the Tower of Hanoi puzzle.

It defines the Disk rank and the Pole stack that enforces the placement rule on
every mutation. This package is kept pure and free of external dependencies
like I/O or terminal output, so any host (a display loop, a solver) can build
on it.

# Key Entities

  - Disk: A ranked unit of puzzle state. A higher rank means a larger disk.
  - Pole: An ordered stack of disks. A disk may only be placed on an empty
    pole or on a disk that is not smaller than it.

# Errors

Invalid moves are reported as values, never as panics:

  - *PlacementError (matches ErrInvalidPlacement): Push of a disk larger than the top.
  - ErrEmptyPole: Pop from a pole with no disks.
*/
package domain
