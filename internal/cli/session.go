package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/hanoi"
	"github.com/aretw0/hanoi/internal/config"
	"github.com/aretw0/hanoi/internal/presentation/tui"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/muesli/termenv"
)

// PoleCount is the number of poles in a puzzle.
const PoleCount = 3

// Session is a puzzle ready to be drawn.
type Session struct {
	Poles [PoleCount]*domain.Pole

	// YOffset is the first row below the title, 1-based.
	YOffset int

	screen *tui.Screen
}

// InAltScreen reports whether the session fell back to the alternate screen.
func (s *Session) InAltScreen() bool {
	return s.screen.InAlt()
}

// Close restores the main screen if the session left it.
func (s *Session) Close() {
	s.screen.Restore()
}

type cursorFunc func(ctx context.Context) (row, col int, err error)

// RunSession sets up the poles and the terminal, then prints the title.
func RunSession(ctx context.Context, opts RunOptions) (*Session, error) {
	logger := createLogger(opts.Debug)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	in, out := opts.streams()
	detect := func(ctx context.Context) (int, int, error) {
		return tui.DetectCursor(ctx, in, out)
	}

	return startSession(ctx, cfg, logger, termenv.NewOutput(out), detect)
}

func startSession(ctx context.Context, cfg config.Config, logger *slog.Logger, out *termenv.Output, detect cursorFunc) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Session{screen: tui.NewScreen(out), YOffset: 1}
	for i := range s.Poles {
		s.Poles[i] = domain.NewPole()
	}
	s.Poles[0].Fill(uint8(cfg.Disks))
	logger.Debug("Poles ready", "disks", cfg.Disks, "source", s.Poles[0].String())

	switch cfg.AltScreen {
	case config.AltScreenAlways:
		s.screen.EnterAlt()
	case config.AltScreenNever:
	default:
		queryCtx, cancel := context.WithTimeout(ctx, cfg.CursorTimeout)
		row, col, err := detect(queryCtx)
		cancel()
		if err != nil {
			logger.Warn("failed to detect cursor position; falling back to alternate screen", "error", err)
			s.screen.EnterAlt()
		} else {
			logger.Debug("Cursor detected", "row", row, "col", col)
			s.YOffset = row
		}
	}

	s.YOffset += tui.TitleLines(hanoi.Version)
	tui.PrintBanner(out, hanoi.Version)

	return s, nil
}
