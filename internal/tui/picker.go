// Package tui provides the interactive entry picker used when start,
// resolve or remove is called without an id.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/todo/internal/task"
	"github.com/dbmrq/todo/internal/tui/styles"
)

// Picker is a bubbletea model that lets the user choose one entry.
type Picker struct {
	title    string
	entries  []*task.Entry
	cursor   int
	chosen   string
	canceled bool

	keys   KeyMap
	help   help.Model
	styles *styles.Styles
}

// NewPicker creates a picker over entries. A nil st uses the default styles.
func NewPicker(title string, entries []*task.Entry, st *styles.Styles) *Picker {
	if st == nil {
		st = styles.Default()
	}
	h := help.New()
	h.Styles.ShortKey = st.Cursor
	h.Styles.ShortDesc = st.Muted
	h.Styles.ShortSeparator = st.Muted

	return &Picker{
		title:   title,
		entries: entries,
		keys:    DefaultKeyMap(),
		help:    h,
		styles:  st,
	}
}

// Init implements tea.Model.
func (p *Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Cancel):
			p.canceled = true
			return p, tea.Quit
		case key.Matches(msg, p.keys.Select):
			if len(p.entries) == 0 {
				p.canceled = true
			} else {
				p.chosen = p.entries[p.cursor].ID
			}
			return p, tea.Quit
		case key.Matches(msg, p.keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, p.keys.Down):
			if p.cursor < len(p.entries)-1 {
				p.cursor++
			}
		case key.Matches(msg, p.keys.Top):
			p.cursor = 0
		case key.Matches(msg, p.keys.Bottom):
			if len(p.entries) > 0 {
				p.cursor = len(p.entries) - 1
			}
		}
	}
	return p, nil
}

// View implements tea.Model.
func (p *Picker) View() string {
	var b strings.Builder
	b.WriteString(p.styles.Title.Render(p.title))
	b.WriteString("\n")

	if len(p.entries) == 0 {
		b.WriteString(p.styles.Muted.Render("  no entries"))
		b.WriteString("\n")
	}

	for i, e := range p.entries {
		row := fmt.Sprintf("%s  %s", e.ID, e.Task)
		status := p.styles.Muted.Render("(" + e.Status.Label() + ")")
		if i == p.cursor {
			b.WriteString(p.styles.Cursor.Render("›") + " " + p.styles.Selected.Render(row) + " " + status)
		} else {
			b.WriteString("  " + row + " " + status)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.help.View(p.keys))
	b.WriteString("\n")
	return b.String()
}

// Cursor returns the highlighted row index.
func (p *Picker) Cursor() int {
	return p.cursor
}

// Chosen returns the selected entry id, or false if the picker was canceled.
func (p *Picker) Chosen() (string, bool) {
	if p.canceled || p.chosen == "" {
		return "", false
	}
	return p.chosen, true
}

// Pick runs a picker on in/out and returns the chosen entry id.
// With no entries it returns immediately without opening the picker.
func Pick(title string, entries []*task.Entry, in io.Reader, out io.Writer, st *styles.Styles) (string, bool, error) {
	if len(entries) == 0 {
		return "", false, nil
	}

	model := NewPicker(title, entries, st)
	program := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out))

	final, err := program.Run()
	if err != nil {
		return "", false, fmt.Errorf("picker failed: %w", err)
	}

	if pm, ok := final.(*Picker); ok {
		id, chosen := pm.Chosen()
		return id, chosen, nil
	}
	return "", false, nil
}
