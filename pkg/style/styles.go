// Package style defines the lipgloss styles used for console output.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	SuccessColor = lipgloss.Color("10") // bright green
	ErrorColor   = lipgloss.Color("9")  // bright red
	PathColor    = lipgloss.Color("14") // bright cyan
	MutedColor   = lipgloss.Color("8")
)

// Base styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)
