package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Title returns the welcome message printed above the poles.
func Title(version string) string {
	return fmt.Sprintf("Welcome to hanoi\nTower of Hanoi for the terminal | v%s\n", strings.TrimSpace(version))
}

// TitleLines is the number of rows the title occupies.
func TitleLines(version string) int {
	return strings.Count(Title(version), "\n")
}

// PrintBanner writes the title to out, one colour per line.
func PrintBanner(out *termenv.Output, version string) {
	colors := []string{"#818cf8", "#c084fc"}
	for i, line := range strings.Split(strings.TrimSuffix(Title(version), "\n"), "\n") {
		s := out.String(line).Foreground(out.Color(colors[i%len(colors)]))
		if i == 0 {
			s = s.Bold()
		}
		fmt.Fprintln(out, s)
	}
}
