package domain

import (
	"fmt"
	"slices"
)

// Pole is a stack of disks. The last disk in the stack is the top.
//
// Reading the disks from bottom to top always yields non-increasing ranks.
// The zero value is an empty pole ready to use.
type Pole struct {
	disks []Disk
}

// NewPole creates an empty pole.
func NewPole() *Pole {
	return &Pole{}
}

// Fill deletes the current contents and fills the pole with n disks,
// from n at the bottom up to 1 at the top.
func (p *Pole) Fill(n uint8) {
	disks := make([]Disk, 0, n)
	for d := Disk(n); d > 0; d-- {
		disks = append(disks, d)
	}
	p.disks = disks
}

// Push places d on top of the pole.
// It fails with a *PlacementError if d is larger than the current top disk.
// Disks of equal rank may be stacked.
func (p *Pole) Push(d Disk) error {
	if top, ok := p.Top(); ok && d > top {
		return &PlacementError{Large: d, Small: top}
	}
	p.disks = append(p.disks, d)
	return nil
}

// Pop removes the top disk and returns it.
// It fails with ErrEmptyPole if the pole has no disks.
func (p *Pole) Pop() (Disk, error) {
	n := len(p.disks)
	if n == 0 {
		return 0, ErrEmptyPole
	}
	d := p.disks[n-1]
	p.disks = p.disks[:n-1]
	return d, nil
}

// Top returns the top disk without removing it.
func (p *Pole) Top() (Disk, bool) {
	if len(p.disks) == 0 {
		return 0, false
	}
	return p.disks[len(p.disks)-1], true
}

// Len returns the number of disks on the pole.
func (p *Pole) Len() int {
	return len(p.disks)
}

// IsEmpty reports whether the pole has no disks.
func (p *Pole) IsEmpty() bool {
	return len(p.disks) == 0
}

// Disks returns a copy of the disks from bottom to top.
func (p *Pole) Disks() []Disk {
	return slices.Clone(p.disks)
}

// Clone returns an independent copy of the pole.
func (p *Pole) Clone() *Pole {
	return &Pole{disks: slices.Clone(p.disks)}
}

// String returns the disks from bottom to top, e.g. [3 2 1].
func (p *Pole) String() string {
	return fmt.Sprint(p.disks)
}
