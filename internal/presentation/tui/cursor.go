package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the cursor is queried on something that is not a TTY.
var ErrNotTerminal = errors.New("not a terminal")

// cursorQuery is the Device Status Report request for the cursor position.
const cursorQuery = "\x1b[6n"

// DetectCursor asks the terminal attached to in/out where the cursor is.
// Rows and columns are 1-based. The input is put in raw mode for the
// duration of the query.
func DetectCursor(ctx context.Context, in, out *os.File) (row, col int, err error) {
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return 0, 0, ErrNotTerminal
	}

	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(int(in.Fd()), state)

	return QueryCursor(ctx, in, out)
}

type cursorResult struct {
	row, col int
	err      error
}

// QueryCursor writes the position request to out and parses the reply read from in.
// If ctx ends first the pending read is cancelled, so no input is lost once
// QueryCursor returns. Readers without a file descriptor cannot be
// interrupted and keep their pending read.
func QueryCursor(ctx context.Context, in io.Reader, out io.Writer) (row, col int, err error) {
	cr, err := cancelreader.NewReader(in)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to watch cursor input: %w", err)
	}
	defer cr.Close()

	if _, err := io.WriteString(out, cursorQuery); err != nil {
		return 0, 0, fmt.Errorf("failed to write cursor query: %w", err)
	}

	done := make(chan cursorResult, 1)
	go func() {
		reply, err := readReport(cr)
		if err != nil {
			done <- cursorResult{err: err}
			return
		}
		r, c, err := ParseCursorReport(reply)
		done <- cursorResult{row: r, col: c, err: err}
	}()

	select {
	case res := <-done:
		return res.row, res.col, res.err
	case <-ctx.Done():
		// Wait for the reader to give up before the terminal leaves raw mode.
		if cr.Cancel() {
			<-done
		}
		return 0, 0, fmt.Errorf("no cursor report: %w", ctx.Err())
	}
}

// readReport reads one byte at a time up to the terminating 'R'
// so nothing past the report is consumed.
func readReport(in io.Reader) ([]byte, error) {
	var buf []byte
	b := make([]byte, 1)
	for len(buf) < 64 {
		n, err := in.Read(b)
		if n == 1 {
			buf = append(buf, b[0])
			if b[0] == 'R' {
				return buf, nil
			}
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read cursor report: %w", err)
		}
	}
	return nil, fmt.Errorf("cursor report too long: %q", buf)
}

// ParseCursorReport parses a reply of the form ESC [ row ; col R.
// Bytes before the last escape sequence are ignored.
func ParseCursorReport(reply []byte) (row, col int, err error) {
	start := bytes.LastIndex(reply, []byte("\x1b["))
	if start < 0 || len(reply) == 0 || reply[len(reply)-1] != 'R' {
		return 0, 0, fmt.Errorf("unexpected cursor report: %q", reply)
	}

	body := reply[start+2 : len(reply)-1]
	rowPart, colPart, ok := bytes.Cut(body, []byte(";"))
	if !ok {
		return 0, 0, fmt.Errorf("unexpected cursor report: %q", reply)
	}

	row, err = strconv.Atoi(string(rowPart))
	if err != nil {
		return 0, 0, fmt.Errorf("parsing cursor row: %w", err)
	}
	col, err = strconv.Atoi(string(colPart))
	if err != nil {
		return 0, 0, fmt.Errorf("parsing cursor column: %w", err)
	}
	// Positions are 1-based; anything else is a garbled reply.
	if row < 1 || col < 1 {
		return 0, 0, fmt.Errorf("cursor position out of range: %q", reply)
	}
	return row, col, nil
}
