// Package render prints todo entries as colourised terminal lines.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/dbmrq/todo/internal/config"
	"github.com/dbmrq/todo/internal/deadline"
	"github.com/dbmrq/todo/internal/task"
	"github.com/dbmrq/todo/internal/tui/styles"
)

// EmptyMessage is printed when there are no entries.
const EmptyMessage = "Nothing todo, woooooo!"

// deadlineLayout renders as DD-MM HH:MM.
const deadlineLayout = "02-01 15:04"

// Renderer writes entry listings to one writer.
type Renderer struct {
	w      io.Writer
	styles *styles.Styles
}

// New creates a Renderer for w. ColorAuto detects the terminal behind w;
// a pipe or file gets plain text.
func New(w io.Writer, mode config.ColorMode) *Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{w: w, styles: styles.New(r)}
}

// Styles returns the styles bound to this renderer's writer.
func (r *Renderer) Styles() *styles.Styles {
	return r.styles
}

// List writes every entry, one per line, or EmptyMessage.
func (r *Renderer) List(entries []*task.Entry, now time.Time) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(r.w, EmptyMessage)
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(r.w, r.Entry(e, now)); err != nil {
			return err
		}
	}
	return nil
}

// Entry formats a single entry:
//
//	Task: <id> [Priority: <p>] | <task> | <status>
//	     Deadline: DD-MM HH:MM
//
// The deadline line is present only when the entry has one.
func (r *Renderer) Entry(e *task.Entry, now time.Time) string {
	urgent := deadline.IsUrgent(e.Deadline, e.Status.IsResolved(), now)

	var b strings.Builder
	b.WriteString("Task: ")
	b.WriteString(e.ID)
	if e.Priority > 0 {
		fmt.Fprintf(&b, " Priority: %d", e.Priority)
	}
	b.WriteString(" | ")
	b.WriteString(r.styles.Task.Render(e.Task))
	b.WriteString(" | ")
	b.WriteString(r.status(e.Status, urgent))

	if e.Deadline != nil {
		// Styles expand tabs, so the indent stays outside them.
		line := "Deadline: " + e.Deadline.In(now.Location()).Format(deadlineLayout)
		b.WriteString("\n\t ")
		if urgent {
			b.WriteString(r.styles.Urgent.Render(line))
		} else {
			b.WriteString(r.styles.Dimmed.Render(line))
		}
	}
	return b.String()
}

func (r *Renderer) status(s task.Status, urgent bool) string {
	label := s.Label()
	switch s {
	case task.StatusResolved:
		return r.styles.Resolved.Render(label)
	case task.StatusStarted:
		if urgent {
			return r.styles.Urgent.Render(label)
		}
		return r.styles.Started.Render(label)
	default:
		if urgent {
			return r.styles.Urgent.Render(label)
		}
		return r.styles.Dimmed.Render(label)
	}
}
