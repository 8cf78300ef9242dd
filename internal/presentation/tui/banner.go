package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the duet banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Same indigo to rose gradient, one step per line
	lines := []struct {
		text  string
		color string
	}{
		{"      _            _   ", "#818cf8"},
		{"   __| |_   _  ___| |_ ", "#a78bfa"},
		{"  / _` | | | |/ _ \\ __|", "#c084fc"},
		{" | (_| | |_| |  __/ |_ ", "#e879f9"},
		{"  \\__,_|\\__,_|\\___|\\__|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
