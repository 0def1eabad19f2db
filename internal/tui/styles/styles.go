// Package styles provides Lip Gloss styles for todo listings and the
// entry picker.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Basic ANSI colours keep listings readable on any theme.
var (
	Red    = lipgloss.Color("1")
	Green  = lipgloss.Color("2")
	Yellow = lipgloss.Color("3")
	Cyan   = lipgloss.Color("6")
	Gray   = lipgloss.Color("8")
)

// Styles holds styles bound to one renderer, so colour detection follows
// the writer they are printed to.
type Styles struct {
	// Task is the entry description.
	Task lipgloss.Style
	// Urgent marks a status or deadline that is due.
	Urgent lipgloss.Style
	// Dimmed de-emphasises NotStarted entries and distant deadlines.
	Dimmed lipgloss.Style
	// Started is the in-progress status.
	Started lipgloss.Style
	// Resolved is the done status.
	Resolved lipgloss.Style

	// Title heads the picker.
	Title lipgloss.Style
	// Cursor marks the highlighted picker row.
	Cursor lipgloss.Style
	// Selected is the highlighted picker row.
	Selected lipgloss.Style
	// Muted is secondary picker text.
	Muted lipgloss.Style
}

// New creates styles for the given renderer.
func New(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Task:     r.NewStyle().Bold(true),
		Urgent:   r.NewStyle().Foreground(Red),
		Dimmed:   r.NewStyle().Faint(true),
		Started:  r.NewStyle().Foreground(Yellow),
		Resolved: r.NewStyle().Foreground(Green),

		Title:    r.NewStyle().Bold(true).MarginBottom(1),
		Cursor:   r.NewStyle().Foreground(Cyan).Bold(true),
		Selected: r.NewStyle().Bold(true),
		Muted:    r.NewStyle().Foreground(Gray),
	}
}

// Default creates styles for the default renderer (stdout).
func Default() *Styles {
	return New(lipgloss.DefaultRenderer())
}
