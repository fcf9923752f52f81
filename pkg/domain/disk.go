package domain

// Disk represents a disk in the puzzle.
// The value is the "size" of the disk: a larger value is a larger disk.
type Disk uint8

// MaxDisks is the largest number of disks a single Fill can create.
const MaxDisks = int(^Disk(0))
