/*
Package hanoi models the Tower of Hanoi puzzle for the terminal.

The puzzle state lives in package domain: each Pole is a stack of ranked
disks that refuses a disk larger than its current top. The hanoi command sets
up three poles, stacks the disks on the first one and prints the title,
falling back to the alternate screen when the cursor position cannot be
detected.

# Usage

	p := domain.NewPole()
	p.Fill(3) // [3 2 1], bottom to top

	if err := p.Push(4); err != nil {
		var pe *domain.PlacementError
		if errors.As(err, &pe) {
			fmt.Println(pe) // cannot place disk 4 on disk 1
		}
	}

	d, _ := p.Pop() // 1
*/
package hanoi
