package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerArt = []struct {
	line  string
	color string
}{
	{"   __                         ", "#34d399"},
	{"  / _|___ _ __   __ ___   __  ", "#2dd4bf"},
	{" | |_/ __| '_ \\ / _` \\ \\ / /  ", "#22d3ee"},
	{" |  _\\__ \\ | | | (_| |\\ V /   ", "#38bdf8"},
	{" |_| |___/_| |_|\\__,_| \\_/    ", "#60a5fa"},
}

// PrintBanner writes the startup banner with the version and session root.
// Colors degrade to plain text when w is not a color terminal.
func PrintBanner(w io.Writer, version, root string) {
	out := termenv.NewOutput(w)

	fmt.Fprintln(w)
	for _, row := range bannerArt {
		fmt.Fprintln(w, out.String(row.line).Foreground(out.Color(row.color)))
	}
	fmt.Fprintln(w, out.String(fmt.Sprintf(" v%s  root: %s", version, root)).Faint())
	fmt.Fprintln(w, out.String(" Commands: list, show <file>, open <dir>, detail <path>, back, exit").Faint())
	fmt.Fprintln(w)
}
