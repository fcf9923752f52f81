package cli

import "os"

// RunOptions carries the command line settings of a session.
type RunOptions struct {
	ConfigPath string
	Debug      bool

	// Stdin and Stdout default to the process streams.
	Stdin  *os.File
	Stdout *os.File
}

func (o RunOptions) streams() (in, out *os.File) {
	in, out = o.Stdin, o.Stdout
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return in, out
}
