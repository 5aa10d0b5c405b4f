package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// Color palette
	promptColor = lipgloss.Color("#7D56F4")
	numberColor = lipgloss.Color("#04B575")
	errorColor  = lipgloss.Color("#FF4B4B")
)

// styles renders demo output for one writer.
type styles struct {
	prompt lipgloss.Style
	label  lipgloss.Style
	number lipgloss.Style
	err    lipgloss.Style
}

func newStyles(w io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		prompt: r.NewStyle().Foreground(promptColor).Bold(true),
		label:  r.NewStyle(),
		number: r.NewStyle().Foreground(numberColor),
		err:    r.NewStyle().Foreground(errorColor),
	}
}
